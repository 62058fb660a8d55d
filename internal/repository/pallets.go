// Package repository provides data access for pallets and composition outcomes.
package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/warewise/packaging-service/internal/domain/model"
)

// CompositionOutcome records one accepted pallet composition. Outcomes feed
// the trailing-window efficiency aggregation that keeps each pallet's
// historical efficiency current.
type CompositionOutcome struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PalletID          string             `bson:"pallet_id" json:"pallet_id"`
	ProductCount      int                `bson:"product_count" json:"product_count"`
	TotalQuantity     float64            `bson:"total_quantity" json:"total_quantity"`
	TotalWeightKg     float64            `bson:"total_weight_kg" json:"total_weight_kg"`
	TotalVolumeM3     float64            `bson:"total_volume_m3" json:"total_volume_m3"`
	WeightUtilization float64            `bson:"weight_utilization" json:"weight_utilization"`
	VolumeUtilization float64            `bson:"volume_utilization" json:"volume_utilization"`
	AdjustedScore     float64            `bson:"adjusted_score" json:"adjusted_score"`
	CreatedAt         time.Time          `bson:"created_at" json:"created_at"`
}

// PalletsRepository provides methods for pallet operations.
type PalletsRepository struct {
	collection *mongo.Collection
	outcomes   *mongo.Collection
}

// NewPalletsRepository creates a new pallets repository.
func NewPalletsRepository(db *MongoDB) *PalletsRepository {
	return &PalletsRepository{
		collection: db.Pallets,
		outcomes:   db.Outcomes,
	}
}

// GetByID returns the pallet with the given ID, or nil when it does not exist.
func (r *PalletsRepository) GetByID(ctx context.Context, id string) (*model.Pallet, error) {
	var pallet model.Pallet
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&pallet)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &pallet, nil
}

// ListAvailable returns all pallets currently available for composition,
// sorted by ID for deterministic downstream scoring.
func (r *PalletsRepository) ListAvailable(ctx context.Context) ([]model.Pallet, error) {
	opts := options.Find().SetSort(bson.M{"_id": 1})

	cursor, err := r.collection.Find(ctx, bson.M{"status": model.PalletStatusAvailable}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var pallets []model.Pallet
	if err := cursor.All(ctx, &pallets); err != nil {
		return nil, err
	}

	return pallets, nil
}

// Upsert creates or replaces a pallet document.
func (r *PalletsRepository) Upsert(ctx context.Context, pallet *model.Pallet) error {
	_, err := r.collection.ReplaceOne(
		ctx,
		bson.M{"_id": pallet.ID},
		pallet,
		options.Replace().SetUpsert(true),
	)
	return err
}

// SetStatus updates a pallet's status.
func (r *PalletsRepository) SetStatus(ctx context.Context, id, status string) error {
	_, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status}},
	)
	return err
}

// RecordOutcome stores an accepted composition outcome for a pallet.
func (r *PalletsRepository) RecordOutcome(ctx context.Context, outcome *CompositionOutcome) error {
	if outcome.ID.IsZero() {
		outcome.ID = primitive.NewObjectID()
	}
	if outcome.CreatedAt.IsZero() {
		outcome.CreatedAt = time.Now()
	}

	_, err := r.outcomes.InsertOne(ctx, outcome)
	return err
}

// RefreshEfficiency recomputes a pallet's historical efficiency from the
// composition outcomes recorded within the trailing window and stores the
// result on the pallet document. The efficiency of one outcome is the mean
// of its weight and volume utilization. Returns the new value, or the
// current stored value when no outcomes fall inside the window.
func (r *PalletsRepository) RefreshEfficiency(ctx context.Context, palletID string, window time.Duration) (float64, error) {
	since := time.Now().Add(-window)

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"pallet_id":  palletID,
			"created_at": bson.M{"$gte": since},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id": "$pallet_id",
			"efficiency": bson.M{"$avg": bson.M{
				"$divide": bson.A{
					bson.M{"$add": bson.A{"$weight_utilization", "$volume_utilization"}},
					2,
				},
			}},
		}}},
	}

	cursor, err := r.outcomes.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var results []struct {
		Efficiency float64 `bson:"efficiency"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, err
	}

	if len(results) == 0 {
		pallet, err := r.GetByID(ctx, palletID)
		if err != nil {
			return 0, err
		}
		if pallet == nil {
			return model.DefaultHistoricalEfficiency, nil
		}
		return pallet.HistoricalEfficiency, nil
	}

	efficiency := results[0].Efficiency
	_, err = r.collection.UpdateOne(
		ctx,
		bson.M{"_id": palletID},
		bson.M{"$set": bson.M{"historical_efficiency": efficiency}},
	)
	if err != nil {
		return 0, err
	}

	return efficiency, nil
}

// ListOutcomes returns the most recent composition outcomes for a pallet.
func (r *PalletsRepository) ListOutcomes(ctx context.Context, palletID string, limit int) ([]CompositionOutcome, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.outcomes.Find(ctx, bson.M{"pallet_id": palletID}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var outcomes []CompositionOutcome
	if err := cursor.All(ctx, &outcomes); err != nil {
		return nil, err
	}

	return outcomes, nil
}
