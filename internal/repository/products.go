// Package repository provides data access for products.
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/warewise/packaging-service/internal/domain/model"
)

// ProductsRepository provides methods for product operations.
type ProductsRepository struct {
	collection *mongo.Collection
}

// NewProductsRepository creates a new products repository.
func NewProductsRepository(db *MongoDB) *ProductsRepository {
	return &ProductsRepository{
		collection: db.Products,
	}
}

// GetByID returns the product with the given ID, or nil when it does not exist.
func (r *ProductsRepository) GetByID(ctx context.Context, id string) (*model.Product, error) {
	var product model.Product
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// GetByIDs returns the products matching the given IDs.
// Missing IDs are simply absent from the result.
func (r *ProductsRepository) GetByIDs(ctx context.Context, ids []string) ([]model.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var products []model.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}

	return products, nil
}

// Upsert creates or replaces a product document.
func (r *ProductsRepository) Upsert(ctx context.Context, product *model.Product) error {
	_, err := r.collection.ReplaceOne(
		ctx,
		bson.M{"_id": product.ID},
		product,
		options.Replace().SetUpsert(true),
	)
	return err
}

// List returns products sorted by ID. When activeOnly is set, discontinued
// products are filtered out.
func (r *ProductsRepository) List(ctx context.Context, activeOnly bool, limit int) ([]model.Product, error) {
	filter := bson.M{}
	if activeOnly {
		filter["active"] = true
	}

	opts := options.Find().SetSort(bson.M{"_id": 1})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var products []model.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}

	return products, nil
}
