// Package repository provides data access for packaging catalogs.
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/warewise/packaging-service/internal/domain/model"
)

// PackagingTypesRepository provides methods for packaging catalog operations.
type PackagingTypesRepository struct {
	collection *mongo.Collection
}

// NewPackagingTypesRepository creates a new packaging types repository.
func NewPackagingTypesRepository(db *MongoDB) *PackagingTypesRepository {
	return &PackagingTypesRepository{
		collection: db.PackagingTypes,
	}
}

// GetByID returns a single packaging type, or nil when it does not exist.
func (r *PackagingTypesRepository) GetByID(ctx context.Context, id string) (*model.PackagingType, error) {
	var pt model.PackagingType
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&pt)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &pt, nil
}

// ListByProduct returns every packaging type registered for a product,
// active and inactive alike. Conversion decisions happen in the engine,
// not in the query.
func (r *PackagingTypesRepository) ListByProduct(ctx context.Context, productID string) ([]model.PackagingType, error) {
	opts := options.Find().SetSort(bson.M{"base_unit_quantity": -1})

	cursor, err := r.collection.Find(ctx, bson.M{"product_id": productID}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var types []model.PackagingType
	if err := cursor.All(ctx, &types); err != nil {
		return nil, err
	}

	return types, nil
}

// Upsert creates or replaces a packaging type document.
func (r *PackagingTypesRepository) Upsert(ctx context.Context, pt *model.PackagingType) error {
	_, err := r.collection.ReplaceOne(
		ctx,
		bson.M{"_id": pt.ID},
		pt,
		options.Replace().SetUpsert(true),
	)
	return err
}

// Deactivate marks a packaging type inactive so it stops participating
// in conversions and pick plans without losing history.
func (r *PackagingTypesRepository) Deactivate(ctx context.Context, id string) error {
	_, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"active": false}},
	)
	return err
}
