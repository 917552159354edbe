package bookingRepo

import (
	"context"

	"devmitra/models"

	"go.mongodb.org/mongo-driver/bson"
)

// BookingRepository defines data access for bookings. Get and update
// methods return (nil, nil) when no document matches.
type BookingRepository interface {
	// CreateWithSlot inserts the booking and marks its availability slot
	// booked in a single transaction; either both writes land or neither.
	CreateWithSlot(ctx context.Context, booking *models.Booking, slotID string) error
	// GetByID retrieves a booking by its unique ID.
	GetByID(id string) (*models.Booking, error)
	// UpdateFields applies a partial $set update and returns the updated
	// document.
	UpdateFields(id string, fields bson.M) (*models.Booking, error)
	// UpdateStatusFreeSlot sets the booking status and frees its
	// availability slot in a single transaction.
	UpdateStatusFreeSlot(ctx context.Context, id string, status models.BookingStatus, slotID string) (*models.Booking, error)
	// ListByCustomer retrieves all bookings made by a customer.
	ListByCustomer(customerID string) ([]models.Booking, error)
	// ListByVendor retrieves bookings assigned to a vendor, optionally
	// filtered by status (empty means all).
	ListByVendor(vendorID string, status models.BookingStatus) ([]models.Booking, error)
}

// PaymentRepository stores immutable payment attempt records.
type PaymentRepository interface {
	// Create inserts a payment record. Records are never updated.
	Create(payment *models.Payment) error
	// ListByBooking retrieves all payment attempts for a booking.
	ListByBooking(bookingID string) ([]models.Payment, error)
}
