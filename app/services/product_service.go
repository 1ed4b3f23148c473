package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shashiranjanraj/bazaar/app/models"
	"github.com/shashiranjanraj/bazaar/pkg/cache"
	"github.com/shashiranjanraj/bazaar/pkg/paginate"
)

const productCacheTTL = 10 * time.Minute

// ProductCatalog is the persistence collaborator for product records.
type ProductCatalog interface {
	Create(ctx context.Context, product *models.Product) error
	Find(ctx context.Context, skip, limit int64) ([]models.Product, error)
	Count(ctx context.Context) (int64, error)
	FindByID(ctx context.Context, id string) (models.Product, error)
	UpdateByID(ctx context.Context, id string, update models.ProductUpdate) (models.Product, error)
	DeleteByID(ctx context.Context, id string) (models.Product, error)
	Search(ctx context.Context, key string) ([]models.Product, error)
}

// ProductPage is one page of the catalogue listing.
type ProductPage struct {
	TotalProducts int64            `json:"totalProducts"`
	CurrentPage   int64            `json:"currentPage"`
	TotalPages    int64            `json:"totalPages"`
	Products      []models.Product `json:"products"`
}

// ProductService implements catalogue operations over the catalog
// collaborator, with a read-through cache on by-id lookups.
type ProductService struct {
	catalog ProductCatalog
}

func NewProductService(catalog ProductCatalog) *ProductService {
	return &ProductService{catalog: catalog}
}

func (s *ProductService) Create(ctx context.Context, product *models.Product) error {
	return s.catalog.Create(ctx, product)
}

// List returns the requested page plus pagination metadata. The page
// query and the total-count query are independent, so the count can
// drift from the page contents under concurrent writes.
func (s *ProductService) List(ctx context.Context, params paginate.Params) (ProductPage, error) {
	products, err := s.catalog.Find(ctx, params.Skip(), params.Limit)
	if err != nil {
		return ProductPage{}, fmt.Errorf("find products: %w", err)
	}

	total, err := s.catalog.Count(ctx)
	if err != nil {
		return ProductPage{}, fmt.Errorf("count products: %w", err)
	}

	return ProductPage{
		TotalProducts: total,
		CurrentPage:   params.Page,
		TotalPages:    params.Pages(total),
		Products:      products,
	}, nil
}

func (s *ProductService) Get(ctx context.Context, id string) (models.Product, error) {
	var product models.Product
	if cache.Get(productCacheKey(id), &product) {
		return product, nil
	}

	product, err := s.catalog.FindByID(ctx, id)
	if err != nil {
		return models.Product{}, err
	}

	_ = cache.Set(productCacheKey(id), product, productCacheTTL)
	return product, nil
}

func (s *ProductService) Update(ctx context.Context, id string, update models.ProductUpdate) (models.Product, error) {
	product, err := s.catalog.UpdateByID(ctx, id, update)
	if err != nil {
		return models.Product{}, err
	}

	_ = cache.Del(productCacheKey(id))
	return product, nil
}

func (s *ProductService) Delete(ctx context.Context, id string) (models.Product, error) {
	product, err := s.catalog.DeleteByID(ctx, id)
	if err != nil {
		return models.Product{}, err
	}

	_ = cache.Del(productCacheKey(id))
	return product, nil
}

func (s *ProductService) Search(ctx context.Context, key string) ([]models.Product, error) {
	return s.catalog.Search(ctx, key)
}

func productCacheKey(id string) string {
	return "product:" + id
}
