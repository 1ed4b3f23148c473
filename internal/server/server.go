// Package server wires configuration, storage, and the HTTP stack
// together and runs the listener.
package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/shashiranjanraj/bazaar/app/controllers"
	"github.com/shashiranjanraj/bazaar/app/repositories"
	"github.com/shashiranjanraj/bazaar/app/routes"
	"github.com/shashiranjanraj/bazaar/app/services"
	"github.com/shashiranjanraj/bazaar/config"
	"github.com/shashiranjanraj/bazaar/pkg/cache"
	"github.com/shashiranjanraj/bazaar/pkg/database"
	"github.com/shashiranjanraj/bazaar/pkg/logger"
	"github.com/shashiranjanraj/bazaar/pkg/metrics"
	"github.com/shashiranjanraj/bazaar/pkg/middleware"
	"github.com/shashiranjanraj/bazaar/pkg/reqid"
	"github.com/shashiranjanraj/bazaar/pkg/router"
)

// Start runs the HTTP server until the listener fails.
func Start() error {
	if err := config.Load(); err != nil {
		return err
	}

	// The baked-in dev secret must never sign production tokens.
	if config.JWTSecretIsDefault() {
		switch config.AppEnv() {
		case "production", "prod":
			return errors.New("JWT_SECRET must be configured in production")
		default:
			logger.Warn("JWT_SECRET not configured, using insecure dev default")
		}
	}

	ctx := context.Background()
	if err := database.Connect(ctx); err != nil {
		return err
	}
	defer database.Disconnect(ctx) //nolint:errcheck

	// Redis is an optimisation, not a dependency: run uncached if it
	// is down.
	if err := cache.Connect(); err != nil {
		logger.Warn("cache unavailable, serving uncached", "error", err)
	}

	authController := controllers.NewAuthController(
		services.NewAuthService(repositories.NewUserRepository()),
	)
	productController := controllers.NewProductController(
		services.NewProductService(repositories.NewProductRepository()),
	)

	r := NewRouter(authController, productController)

	addr := ":" + config.AppPort()
	logger.Info("bazaar listening", "addr", addr, "env", config.AppEnv())
	return http.ListenAndServe(addr, r.Handler())
}

// NewRouter builds the full middleware chain and route table.
func NewRouter(auth *controllers.AuthController, products *controllers.ProductController) *router.Router {
	r := router.New()

	r.Use(reqid.Middleware())
	r.Use(metrics.Middleware())
	r.Use(middleware.Logger)
	r.Use(middleware.Recovery)
	r.Use(middleware.CORS(middleware.DefaultCORSOptions()))

	routes.RegisterAPI(r, auth, products)
	r.Get("/metrics", "metrics", metrics.Handler())

	return r
}
