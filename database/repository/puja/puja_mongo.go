package pujaRepo

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

// MongoPujaRepo implements PujaRepository using MongoDB.
type MongoPujaRepo struct {
	coll *mongo.Collection
}

// NewMongoPujaRepo creates a new instance of PujaRepository using MongoDB.
func NewMongoPujaRepo() PujaRepository {
	coll := database.DB().Collection("puja_types")
	repo := &MongoPujaRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes enforces catalog name uniqueness.
func (r *MongoPujaRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new puja type document.
func (r *MongoPujaRepo) Create(puja *models.PujaType) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	puja.CreatedAt = now
	puja.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, puja); err != nil {
		return fmt.Errorf("failed to create puja type: %w", err)
	}
	return nil
}

// GetByID retrieves a puja type by its unique ID.
func (r *MongoPujaRepo) GetByID(id string) (*models.PujaType, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var puja models.PujaType
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&puja); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch puja type with id %s: %w", id, err)
	}
	return &puja, nil
}

// ListActive retrieves all catalog entries with isActive=true.
func (r *MongoPujaRepo) ListActive() ([]models.PujaType, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"isActive": true})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve puja types: %w", err)
	}
	defer cursor.Close(ctx)

	var pujas []models.PujaType
	for cursor.Next(ctx) {
		var p models.PujaType
		if err := cursor.Decode(&p); err != nil {
			return nil, fmt.Errorf("failed to decode puja type: %w", err)
		}
		pujas = append(pujas, p)
	}
	return pujas, nil
}

// UpdateSetDocument applies a partial $set update and returns the updated
// document, or (nil, nil) if no puja type matched.
func (r *MongoPujaRepo) UpdateSetDocument(id string, updateDoc bson.M) (*models.PujaType, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	updateDoc["updatedAt"] = time.Now()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var puja models.PujaType
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": updateDoc}, opts).Decode(&puja)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update puja type with id %s: %w", id, err)
	}
	return &puja, nil
}
