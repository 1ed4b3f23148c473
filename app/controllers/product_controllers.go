package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shashiranjanraj/bazaar/app/models"
	"github.com/shashiranjanraj/bazaar/app/repositories"
	"github.com/shashiranjanraj/bazaar/app/services"
	"github.com/shashiranjanraj/bazaar/pkg/logger"
	"github.com/shashiranjanraj/bazaar/pkg/paginate"
	"github.com/shashiranjanraj/bazaar/pkg/response"
	"github.com/shashiranjanraj/bazaar/pkg/validate"
)

type ProductController struct {
	service *services.ProductService
}

func NewProductController(service *services.ProductService) *ProductController {
	return &ProductController{service: service}
}

type productInput struct {
	Name     string  `json:"name"     validate:"required"`
	Price    float64 `json:"price"    validate:"required,gte=0"`
	Category string  `json:"category" validate:"required"`
	Company  string  `json:"company"  validate:"required"`
}

// Create handles POST /api/products.
func (c *ProductController) Create(w http.ResponseWriter, r *http.Request) {
	var input productInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.Fail(w, http.StatusBadRequest, "Invalid JSON body", err.Error())
		return
	}

	if errs := validate.Struct(input); validate.HasErrors(errs) {
		response.ValidationError(w, errs)
		return
	}

	product := models.Product{
		Name:     input.Name,
		Price:    input.Price,
		Category: input.Category,
		Company:  input.Company,
	}
	if err := c.service.Create(r.Context(), &product); err != nil {
		logger.WithCtx(r.Context()).Error("product create failed", "error", err)
		response.ServerError(w, err)
		return
	}

	response.Created(w, "Product added successfully", product)
}

// List handles GET /api/products with page/limit query parameters.
func (c *ProductController) List(w http.ResponseWriter, r *http.Request) {
	params := paginate.Parse(r.URL.Query().Get("page"), r.URL.Query().Get("limit"))

	page, err := c.service.List(r.Context(), params)
	if err != nil {
		logger.WithCtx(r.Context()).Error("product listing failed", "error", err)
		response.ServerError(w, err)
		return
	}

	response.Success(w, "Products fetched successfully", page)
}

// Show handles GET /api/products/{id}.
func (c *ProductController) Show(w http.ResponseWriter, r *http.Request) {
	product, err := c.service.Get(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, repositories.ErrNotFound) {
		response.NotFound(w, "Product not found")
		return
	}
	if err != nil {
		logger.WithCtx(r.Context()).Error("product fetch failed", "error", err)
		response.ServerError(w, err)
		return
	}

	response.Success(w, "Product fetched successfully", product)
}

// Update handles PUT /api/products/{id} with partial fields.
func (c *ProductController) Update(w http.ResponseWriter, r *http.Request) {
	var update models.ProductUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		response.Fail(w, http.StatusBadRequest, "Invalid JSON body", err.Error())
		return
	}

	product, err := c.service.Update(r.Context(), chi.URLParam(r, "id"), update)
	if errors.Is(err, repositories.ErrNotFound) {
		response.NotFound(w, "Product not found")
		return
	}
	if err != nil {
		logger.WithCtx(r.Context()).Error("product update failed", "error", err)
		response.ServerError(w, err)
		return
	}

	response.Success(w, "Product updated successfully", product)
}

// Delete handles DELETE /api/products/{id}.
func (c *ProductController) Delete(w http.ResponseWriter, r *http.Request) {
	product, err := c.service.Delete(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, repositories.ErrNotFound) {
		response.NotFound(w, "Product not found")
		return
	}
	if err != nil {
		logger.WithCtx(r.Context()).Error("product delete failed", "error", err)
		response.ServerError(w, err)
		return
	}

	response.Success(w, "Product deleted successfully", product)
}

// Search handles GET /api/search/{key}: case-insensitive regex match
// across name, category, and company.
func (c *ProductController) Search(w http.ResponseWriter, r *http.Request) {
	products, err := c.service.Search(r.Context(), chi.URLParam(r, "key"))
	if err != nil {
		logger.WithCtx(r.Context()).Error("product search failed", "error", err)
		response.ServerError(w, err)
		return
	}

	response.Success(w, "Products fetched successfully", products)
}
