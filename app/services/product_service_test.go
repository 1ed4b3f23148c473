package services_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/shashiranjanraj/bazaar/app/models"
	"github.com/shashiranjanraj/bazaar/app/repositories"
	"github.com/shashiranjanraj/bazaar/app/services"
	"github.com/shashiranjanraj/bazaar/pkg/paginate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeCatalog is an in-memory stand-in for the Mongo product repository.
type fakeCatalog struct {
	products []models.Product
}

func (f *fakeCatalog) Create(_ context.Context, product *models.Product) error {
	product.ID = primitive.NewObjectID()
	f.products = append(f.products, *product)
	return nil
}

func (f *fakeCatalog) Find(_ context.Context, skip, limit int64) ([]models.Product, error) {
	if skip >= int64(len(f.products)) {
		return nil, nil
	}
	end := skip + limit
	if end > int64(len(f.products)) {
		end = int64(len(f.products))
	}
	return f.products[skip:end], nil
}

func (f *fakeCatalog) Count(_ context.Context) (int64, error) {
	return int64(len(f.products)), nil
}

func (f *fakeCatalog) FindByID(_ context.Context, id string) (models.Product, error) {
	for _, p := range f.products {
		if p.ID.Hex() == id {
			return p, nil
		}
	}
	return models.Product{}, repositories.ErrNotFound
}

func (f *fakeCatalog) UpdateByID(_ context.Context, id string, update models.ProductUpdate) (models.Product, error) {
	for i, p := range f.products {
		if p.ID.Hex() != id {
			continue
		}
		if update.Name != nil {
			p.Name = *update.Name
		}
		if update.Price != nil {
			p.Price = *update.Price
		}
		if update.Category != nil {
			p.Category = *update.Category
		}
		if update.Company != nil {
			p.Company = *update.Company
		}
		f.products[i] = p
		return p, nil
	}
	return models.Product{}, repositories.ErrNotFound
}

func (f *fakeCatalog) DeleteByID(_ context.Context, id string) (models.Product, error) {
	for i, p := range f.products {
		if p.ID.Hex() == id {
			f.products = append(f.products[:i], f.products[i+1:]...)
			return p, nil
		}
	}
	return models.Product{}, repositories.ErrNotFound
}

func (f *fakeCatalog) Search(_ context.Context, key string) ([]models.Product, error) {
	var out []models.Product
	for _, p := range f.products {
		if strings.Contains(strings.ToLower(p.Name), strings.ToLower(key)) ||
			strings.Contains(strings.ToLower(p.Category), strings.ToLower(key)) ||
			strings.Contains(strings.ToLower(p.Company), strings.ToLower(key)) {
			out = append(out, p)
		}
	}
	return out, nil
}

func seededCatalog(n int) *fakeCatalog {
	catalog := &fakeCatalog{}
	for i := 0; i < n; i++ {
		catalog.products = append(catalog.products, models.Product{
			ID:       primitive.NewObjectID(),
			Name:     fmt.Sprintf("product-%02d", i),
			Price:    float64(i) + 0.99,
			Category: "electronics",
			Company:  "acme",
		})
	}
	return catalog
}

func TestListPagination(t *testing.T) {
	svc := services.NewProductService(seededCatalog(25))

	page, err := svc.List(context.Background(), paginate.Parse("1", "10"))
	require.NoError(t, err)
	assert.Len(t, page.Products, 10)
	assert.EqualValues(t, 25, page.TotalProducts)
	assert.EqualValues(t, 1, page.CurrentPage)
	assert.EqualValues(t, 3, page.TotalPages)

	page, err = svc.List(context.Background(), paginate.Parse("3", "10"))
	require.NoError(t, err)
	assert.Len(t, page.Products, 5)
	assert.EqualValues(t, 3, page.CurrentPage)
}

func TestListZeroLimitUsesDefault(t *testing.T) {
	svc := services.NewProductService(seededCatalog(25))

	page, err := svc.List(context.Background(), paginate.Parse("1", "0"))
	require.NoError(t, err)
	assert.Len(t, page.Products, 10)
	assert.EqualValues(t, 3, page.TotalPages)
}

func TestListPastTheEnd(t *testing.T) {
	svc := services.NewProductService(seededCatalog(25))

	page, err := svc.List(context.Background(), paginate.Parse("9", "10"))
	require.NoError(t, err)
	assert.Empty(t, page.Products)
	assert.EqualValues(t, 25, page.TotalProducts)
}

func TestGetUpdateDelete(t *testing.T) {
	catalog := seededCatalog(3)
	svc := services.NewProductService(catalog)
	id := catalog.products[0].ID.Hex()

	got, err := svc.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "product-00", got.Name)

	price := 49.99
	updated, err := svc.Update(context.Background(), id, models.ProductUpdate{Price: &price})
	require.NoError(t, err)
	assert.Equal(t, 49.99, updated.Price)
	assert.Equal(t, "product-00", updated.Name, "unset fields stay untouched")

	deleted, err := svc.Delete(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, deleted.ID.Hex())

	_, err = svc.Get(context.Background(), id)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestUnknownIDIsNotFound(t *testing.T) {
	svc := services.NewProductService(seededCatalog(1))

	for _, id := range []string{primitive.NewObjectID().Hex(), "garbage"} {
		_, err := svc.Get(context.Background(), id)
		assert.ErrorIs(t, err, repositories.ErrNotFound, "id %q", id)
	}
}

func TestSearch(t *testing.T) {
	catalog := seededCatalog(3)
	catalog.products[1].Company = "Globex"
	svc := services.NewProductService(catalog)

	hits, err := svc.Search(context.Background(), "globex")
	require.NoError(t, err)
	assert.Len(t, hits, 1)
}
