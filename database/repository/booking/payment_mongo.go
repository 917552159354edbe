package bookingRepo

import (
	"fmt"
	"time"

	"devmitra/database"
	"devmitra/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoPaymentRepo implements PaymentRepository using MongoDB.
type MongoPaymentRepo struct {
	coll *mongo.Collection
}

// NewMongoPaymentRepo creates a new PaymentRepository using MongoDB.
func NewMongoPaymentRepo() PaymentRepository {
	coll := database.DB().Collection("payments")
	repo := &MongoPaymentRepo{coll: coll}

	ctx, cancel := newContext(10 * time.Second)
	defer cancel()
	_, err := coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "transactionId", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "booking", Value: 1}}},
	})
	if err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// Create inserts a payment record. Payment documents are append-only.
func (r *MongoPaymentRepo) Create(payment *models.Payment) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	payment.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, payment); err != nil {
		return fmt.Errorf("failed to create payment record: %w", err)
	}
	return nil
}

// ListByBooking retrieves all payment attempts for a booking.
func (r *MongoPaymentRepo) ListByBooking(bookingID string) ([]models.Payment, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"booking": bookingID})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve payments for booking %s: %w", bookingID, err)
	}
	defer cursor.Close(ctx)

	var payments []models.Payment
	for cursor.Next(ctx) {
		var p models.Payment
		if err := cursor.Decode(&p); err != nil {
			return nil, fmt.Errorf("failed to decode payment: %w", err)
		}
		payments = append(payments, p)
	}
	return payments, nil
}
