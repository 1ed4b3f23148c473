package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bazaar",
	Short: "Bazaar — e-commerce backend",
	Long:  "Bazaar serves the user and product catalogue HTTP API.",
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(routeListCmd)
}
