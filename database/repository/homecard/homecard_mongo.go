package homecardRepo

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

// MongoHomeCardRepo implements HomeCardRepository using MongoDB.
type MongoHomeCardRepo struct {
	coll *mongo.Collection
}

// NewMongoHomeCardRepo creates a new HomeCardRepository using MongoDB.
func NewMongoHomeCardRepo() HomeCardRepository {
	coll := database.DB().Collection("home_cards")
	repo := &MongoHomeCardRepo{coll: coll}

	ctx, cancel := newContext(10 * time.Second)
	defer cancel()
	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// Create inserts a new card document.
func (r *MongoHomeCardRepo) Create(card *models.HomeCard) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	card.CreatedAt = now
	card.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, card); err != nil {
		return fmt.Errorf("failed to create home card: %w", err)
	}
	return nil
}

// ListActive retrieves all cards with isActive=true.
func (r *MongoHomeCardRepo) ListActive() ([]models.HomeCard, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"isActive": true})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve home cards: %w", err)
	}
	defer cursor.Close(ctx)

	var cards []models.HomeCard
	for cursor.Next(ctx) {
		var c models.HomeCard
		if err := cursor.Decode(&c); err != nil {
			return nil, fmt.Errorf("failed to decode home card: %w", err)
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// UpdateSetDocument applies a partial $set update and returns the updated
// document, or (nil, nil) if no card matched.
func (r *MongoHomeCardRepo) UpdateSetDocument(id string, updateDoc bson.M) (*models.HomeCard, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	updateDoc["updatedAt"] = time.Now()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var card models.HomeCard
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": updateDoc}, opts).Decode(&card)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update home card with id %s: %w", id, err)
	}
	return &card, nil
}
