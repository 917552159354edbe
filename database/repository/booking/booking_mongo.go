package bookingRepo

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

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll     *mongo.Collection
	slotColl *mongo.Collection
}

// NewMongoBookingRepo creates a new BookingRepository using MongoDB. The
// availability collection handle is needed for the transactional writes.
func NewMongoBookingRepo() BookingRepository {
	db := database.DB()
	repo := &MongoBookingRepo{
		coll:     db.Collection("bookings"),
		slotColl: db.Collection("availability"),
	}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoBookingRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "customer", Value: 1}}},
		{Keys: bson.D{{Key: "vendor", Value: 1}, {Key: "status", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByID retrieves a booking by its unique ID.
func (r *MongoBookingRepo) GetByID(id string) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var booking models.Booking
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch booking with id %s: %w", id, err)
	}
	return &booking, nil
}

// UpdateFields applies a partial $set update and returns the updated
// document, or (nil, nil) if no booking matched.
func (r *MongoBookingRepo) UpdateFields(id string, fields bson.M) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	fields["updatedAt"] = time.Now()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var booking models.Booking
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": fields}, opts).Decode(&booking)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update booking with id %s: %w", id, err)
	}
	return &booking, nil
}

// ListByCustomer retrieves all bookings made by a customer.
func (r *MongoBookingRepo) ListByCustomer(customerID string) ([]models.Booking, error) {
	return r.list(bson.M{"customer": customerID})
}

// ListByVendor retrieves bookings assigned to a vendor, optionally filtered
// by status.
func (r *MongoBookingRepo) ListByVendor(vendorID string, status models.BookingStatus) ([]models.Booking, error) {
	filter := bson.M{"vendor": vendorID}
	if status != "" {
		filter["status"] = status
	}
	return r.list(filter)
}

func (r *MongoBookingRepo) list(filter bson.M) ([]models.Booking, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	for cursor.Next(ctx) {
		var b models.Booking
		if err := cursor.Decode(&b); err != nil {
			return nil, fmt.Errorf("failed to decode booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}
