// Package routes declares the HTTP route table.
package routes

import (
	"net/http"

	"github.com/shashiranjanraj/bazaar/app/controllers"
	"github.com/shashiranjanraj/bazaar/pkg/middleware"
	"github.com/shashiranjanraj/bazaar/pkg/response"
	"github.com/shashiranjanraj/bazaar/pkg/router"
)

// RegisterAPI mounts all application routes.
//
// Authorization policy: catalogue mutations and search require a bearer
// token; catalogue reads and the auth endpoints are public.
func RegisterAPI(r *router.Router, auth *controllers.AuthController, products *controllers.ProductController) {
	api := r.Group("/api")

	users := api.Group("/users")
	users.Post("/register", "users.register", auth.Register)
	users.Post("/login", "users.login", auth.Login)

	api.Get("/products", "products.index", products.List)
	api.Get("/products/{id}", "products.show", products.Show)

	protected := api.Group("", middleware.Authenticate)
	protected.Post("/products", "products.store", products.Create)
	protected.Put("/products/{id}", "products.update", products.Update)
	protected.Delete("/products/{id}", "products.destroy", products.Delete)
	protected.Get("/search/{key}", "products.search", products.Search)

	r.Get("/health", "health", func(w http.ResponseWriter, _ *http.Request) {
		response.Success(w, "ok", nil)
	})
}
