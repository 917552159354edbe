package availabilityRepo

import (
	"context"
	"fmt"
	"time"

	"devmitra/database"
	"devmitra/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoAvailabilityRepo implements AvailabilityRepository using MongoDB.
type MongoAvailabilityRepo struct {
	coll *mongo.Collection
}

// NewMongoAvailabilityRepo creates a new AvailabilityRepository using MongoDB.
func NewMongoAvailabilityRepo() AvailabilityRepository {
	coll := database.DB().Collection("availability")
	repo := &MongoAvailabilityRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoAvailabilityRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "vendor", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new availability slot document.
func (r *MongoAvailabilityRepo) Create(slot *models.Availability) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	slot.CreatedAt = now
	slot.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, slot); err != nil {
		return fmt.Errorf("failed to create availability slot: %w", err)
	}
	return nil
}

// ListByVendor retrieves all slots for a vendor, booked or not. No explicit
// sort; documents come back in insertion order.
func (r *MongoAvailabilityRepo) ListByVendor(vendorID string) ([]models.Availability, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"vendor": vendorID})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve slots for vendor %s: %w", vendorID, err)
	}
	defer cursor.Close(ctx)

	var slots []models.Availability
	for cursor.Next(ctx) {
		var s models.Availability
		if err := cursor.Decode(&s); err != nil {
			return nil, fmt.Errorf("failed to decode availability slot: %w", err)
		}
		slots = append(slots, s)
	}
	return slots, nil
}
