// Package repository provides data access for stock records.
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/warewise/packaging-service/internal/domain/model"
)

// StockRecordsRepository provides methods for stock record operations.
type StockRecordsRepository struct {
	collection *mongo.Collection
}

// NewStockRecordsRepository creates a new stock records repository.
func NewStockRecordsRepository(db *MongoDB) *StockRecordsRepository {
	return &StockRecordsRepository{
		collection: db.StockRecords,
	}
}

// ListByProduct returns all stock records for a product across every
// location and packaging level.
func (r *StockRecordsRepository) ListByProduct(ctx context.Context, productID string) ([]model.StockRecord, error) {
	opts := options.Find().SetSort(bson.M{"location_id": 1})

	cursor, err := r.collection.Find(ctx, bson.M{"product_id": productID}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var records []model.StockRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}

	return records, nil
}

// Upsert creates or updates the stock quantity for one product, packaging
// type and location combination.
func (r *StockRecordsRepository) Upsert(ctx context.Context, record *model.StockRecord) error {
	filter := bson.M{
		"product_id":        record.ProductID,
		"packaging_type_id": record.PackagingTypeID,
		"location_id":       record.LocationID,
	}
	update := bson.M{
		"$set": bson.M{"quantity": record.Quantity},
		"$setOnInsert": bson.M{
			"product_id":        record.ProductID,
			"packaging_type_id": record.PackagingTypeID,
			"location_id":       record.LocationID,
		},
	}

	_, err := r.collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

// DeleteByProduct removes all stock records for a product.
func (r *StockRecordsRepository) DeleteByProduct(ctx context.Context, productID string) (int64, error) {
	result, err := r.collection.DeleteMany(ctx, bson.M{"product_id": productID})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
