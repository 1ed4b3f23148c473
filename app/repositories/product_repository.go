package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/shashiranjanraj/bazaar/app/models"
	"github.com/shashiranjanraj/bazaar/pkg/database"
	"github.com/shashiranjanraj/bazaar/pkg/metrics"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const productCollection = "products"

// ProductRepository handles database operations for Product.
type ProductRepository struct {
	col *mongo.Collection
}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{col: database.Collection(productCollection)}
}

// Create persists a new product and fills in its assigned ID.
func (r *ProductRepository) Create(ctx context.Context, product *models.Product) error {
	defer metrics.ObserveDBOp(productCollection, "insert_one", time.Now())

	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now

	res, err := r.col.InsertOne(ctx, product)
	if err != nil {
		return err
	}

	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		product.ID = id
	}
	return nil
}

// Find returns up to limit products starting at skip, newest first.
func (r *ProductRepository) Find(ctx context.Context, skip, limit int64) ([]models.Product, error) {
	defer metrics.ObserveDBOp(productCollection, "find", time.Now())

	opts := options.Find().
		SetSkip(skip).
		SetLimit(limit).
		SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	products := make([]models.Product, 0, limit)
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Count returns the total number of products.
func (r *ProductRepository) Count(ctx context.Context) (int64, error) {
	defer metrics.ObserveDBOp(productCollection, "count", time.Now())

	return r.col.CountDocuments(ctx, bson.M{})
}

// FindByID returns one product, or ErrNotFound. A malformed id counts
// as not found rather than an internal error.
func (r *ProductRepository) FindByID(ctx context.Context, id string) (models.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Product{}, ErrNotFound
	}

	defer metrics.ObserveDBOp(productCollection, "find_one", time.Now())

	var product models.Product
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Product{}, ErrNotFound
	}
	return product, err
}

// UpdateByID applies a partial update and returns the updated document.
func (r *ProductRepository) UpdateByID(ctx context.Context, id string, update models.ProductUpdate) (models.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Product{}, ErrNotFound
	}

	set := bson.M{"updated_at": time.Now()}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Price != nil {
		set["price"] = *update.Price
	}
	if update.Category != nil {
		set["category"] = *update.Category
	}
	if update.Company != nil {
		set["company"] = *update.Company
	}

	defer metrics.ObserveDBOp(productCollection, "update_one", time.Now())

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var product models.Product
	err = r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Product{}, ErrNotFound
	}
	return product, err
}

// DeleteByID removes one product and returns the deleted document.
func (r *ProductRepository) DeleteByID(ctx context.Context, id string) (models.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Product{}, ErrNotFound
	}

	defer metrics.ObserveDBOp(productCollection, "delete_one", time.Now())

	var product models.Product
	err = r.col.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Product{}, ErrNotFound
	}
	return product, err
}

// Search returns products whose name, category, or company matches key
// as a case-insensitive regular expression.
func (r *ProductRepository) Search(ctx context.Context, key string) ([]models.Product, error) {
	defer metrics.ObserveDBOp(productCollection, "find", time.Now())

	pattern := primitive.Regex{Pattern: key, Options: "i"}
	filter := bson.M{"$or": []bson.M{
		{"name": pattern},
		{"category": pattern},
		{"company": pattern},
	}}

	cursor, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	products := make([]models.Product, 0)
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}
