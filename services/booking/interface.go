package booking

import (
	"context"

	availabilityRepo "devmitra/database/repository/availability"
	bookingRepo "devmitra/database/repository/booking"
	"devmitra/models"

	"go.uber.org/zap"
)

// CreateBookingInput is the payload for creating a booking.
type CreateBookingInput struct {
	Customer     string               `json:"customer"`
	Vendor       string               `json:"vendor,omitempty"`
	Puja         string               `json:"puja"`
	Availability string               `json:"availability"`
	TotalAmount  float64              `json:"totalAmount"`
	BookingItems []models.BookingItem `json:"bookingItems,omitempty"`
}

// BookingService mediates the booking lifecycle: creation, vendor
// assignment, accept/reject/cancel and the read queries.
type BookingService interface {
	CreateBooking(ctx context.Context, input CreateBookingInput) (*models.Booking, error)
	AssignVendor(ctx context.Context, bookingID, vendorID string) (*models.Booking, error)
	AcceptBooking(ctx context.Context, bookingID, actorID string) (*models.Booking, error)
	RejectBooking(ctx context.Context, bookingID, actorID string) (*models.Booking, error)
	CancelBooking(ctx context.Context, bookingID, actorID string) (*models.Booking, error)
	ListByCustomer(ctx context.Context, customerID string) ([]models.Booking, error)
	ListByVendor(ctx context.Context, vendorID string, status models.BookingStatus) ([]models.Booking, error)
}

// AvailabilityService is the ledger of vendor-declared time slots.
type AvailabilityService interface {
	DeclareSlot(ctx context.Context, input DeclareSlotInput, actorID string) (*models.Availability, error)
	ListSlots(ctx context.Context, vendorID string) ([]models.Availability, error)
}

// PaymentService records simulated payment attempts and reconciles the
// booking's payment and lifecycle status.
type PaymentService interface {
	SimulatePayment(ctx context.Context, bookingID, actorID string, outcome models.PaymentResult) (*models.Payment, *models.Booking, error)
	ListByBooking(ctx context.Context, bookingID, actorID string, role models.UserRole) ([]models.Payment, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo   bookingRepo.BookingRepository
	Logger *zap.Logger
}

// DefaultAvailabilityService implements AvailabilityService.
type DefaultAvailabilityService struct {
	Repo   availabilityRepo.AvailabilityRepository
	Logger *zap.Logger
}

// DefaultPaymentService implements PaymentService.
type DefaultPaymentService struct {
	Bookings bookingRepo.BookingRepository
	Payments bookingRepo.PaymentRepository
	Logger   *zap.Logger
}
