package bookingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"devmitra/models"
	"devmitra/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateWithSlot inserts the booking and marks its availability slot booked
// in a single Mongo transaction, so a crash between the two writes cannot
// leave a booking against a free-looking slot. The slot filter requires
// isBooked=false, which also rejects a second booking racing for the same
// slot.
func (r *MongoBookingRepo) CreateWithSlot(ctx context.Context, booking *models.Booking, slotID string) error {
	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now

	txnFn := func(sc mongo.SessionContext) error {
		if _, err := r.coll.InsertOne(sc, booking); err != nil {
			return fmt.Errorf("insert booking failed: %w", err)
		}

		filter := bson.M{"id": slotID, "isBooked": false}
		update := bson.M{"$set": bson.M{"isBooked": true, "updatedAt": now}}

		res, err := r.slotColl.UpdateOne(sc, filter, update)
		if err != nil {
			return fmt.Errorf("mark slot booked failed: %w", err)
		}
		if res.MatchedCount == 0 {
			// One extra read tells a missing slot apart from a booked one.
			if err := r.slotColl.FindOne(sc, bson.M{"id": slotID}).Err(); err != nil {
				if errors.Is(err, mongo.ErrNoDocuments) {
					return &utils.NotFoundError{Resource: "availability slot", ID: slotID}
				}
				return fmt.Errorf("check slot failed: %w", err)
			}
			return &utils.ConflictError{Message: fmt.Sprintf("availability slot %s is already booked", slotID)}
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		return fmt.Errorf("booking transaction failed: %w", err)
	}

	return nil
}

// UpdateStatusFreeSlot sets the booking status and returns its availability
// slot to the free pool in a single transaction. Used by reject and cancel.
func (r *MongoBookingRepo) UpdateStatusFreeSlot(ctx context.Context, id string, status models.BookingStatus, slotID string) (*models.Booking, error) {
	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return nil, fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	now := time.Now()
	var booking models.Booking

	txnFn := func(sc mongo.SessionContext) error {
		opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
		update := bson.M{"$set": bson.M{"status": status, "updatedAt": now}}
		if err := r.coll.FindOneAndUpdate(sc, bson.M{"id": id}, update, opts).Decode(&booking); err != nil {
			return fmt.Errorf("update booking status failed: %w", err)
		}

		slotUpdate := bson.M{"$set": bson.M{"isBooked": false, "updatedAt": now}}
		if _, err := r.slotColl.UpdateOne(sc, bson.M{"id": slotID}, slotUpdate); err != nil {
			return fmt.Errorf("free slot failed: %w", err)
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		return nil, fmt.Errorf("booking transaction failed: %w", err)
	}

	return &booking, nil
}
