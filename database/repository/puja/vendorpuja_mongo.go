package pujaRepo

import (
	"fmt"
	"time"

	"devmitra/database"
	"devmitra/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoVendorPujaRepo implements VendorPujaRepository using MongoDB.
type MongoVendorPujaRepo struct {
	coll *mongo.Collection
}

// NewMongoVendorPujaRepo creates a new VendorPujaRepository using MongoDB.
func NewMongoVendorPujaRepo() VendorPujaRepository {
	coll := database.DB().Collection("vendor_pujas")
	repo := &MongoVendorPujaRepo{coll: coll}

	ctx, cancel := newContext(10 * time.Second)
	defer cancel()
	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "vendor", Value: 1}, {Key: "puja", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// Create inserts a vendor-puja mapping.
func (r *MongoVendorPujaRepo) Create(mapping *models.VendorPuja) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	mapping.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, mapping); err != nil {
		return fmt.Errorf("failed to create vendor-puja mapping: %w", err)
	}
	return nil
}

// ListByVendor retrieves all mappings for a vendor.
func (r *MongoVendorPujaRepo) ListByVendor(vendorID string) ([]models.VendorPuja, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"vendor": vendorID})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve mappings for vendor %s: %w", vendorID, err)
	}
	defer cursor.Close(ctx)

	var mappings []models.VendorPuja
	for cursor.Next(ctx) {
		var m models.VendorPuja
		if err := cursor.Decode(&m); err != nil {
			return nil, fmt.Errorf("failed to decode vendor-puja mapping: %w", err)
		}
		mappings = append(mappings, m)
	}
	return mappings, nil
}
