package booking

import (
	"context"

	"devmitra/models"
	"devmitra/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// CreateBooking constructs a booking in status pending / payment pending and
// marks the referenced availability slot booked. The two writes run in one
// repository transaction so a crash between them cannot strand a booking
// against a free-looking slot.
func (svc *DefaultBookingService) CreateBooking(ctx context.Context, input CreateBookingInput) (*models.Booking, error) {
	if input.Customer == "" {
		return nil, utils.NewValidationError("customer is required")
	}
	if input.Puja == "" {
		return nil, utils.NewValidationError("puja is required")
	}
	if input.Availability == "" {
		return nil, utils.NewValidationError("availability is required")
	}
	if input.TotalAmount <= 0 {
		return nil, utils.NewValidationError("totalAmount must be greater than zero")
	}
	for i, item := range input.BookingItems {
		if item.Name == "" || item.Quantity <= 0 {
			return nil, utils.NewValidationError("bookingItems[%d] needs a name and a positive quantity", i)
		}
	}

	b := &models.Booking{
		ID:            uuid.New().String(),
		Customer:      input.Customer,
		Vendor:        input.Vendor,
		Puja:          input.Puja,
		Availability:  input.Availability,
		BookingItems:  input.BookingItems,
		TotalAmount:   input.TotalAmount,
		Status:        models.BookingPending,
		PaymentStatus: models.PaymentPending,
	}

	if err := svc.Repo.CreateWithSlot(ctx, b, input.Availability); err != nil {
		return nil, err
	}

	svc.Logger.Info("booking created",
		zap.String("booking", b.ID),
		zap.String("customer", b.Customer),
		zap.String("availability", b.Availability))
	return b, nil
}

// AssignVendor sets the vendor reference and forces the status to
// `requested` regardless of the prior status. This is a privileged admin
// override, not a guarded transition.
func (svc *DefaultBookingService) AssignVendor(ctx context.Context, bookingID, vendorID string) (*models.Booking, error) {
	if vendorID == "" {
		return nil, utils.NewValidationError("vendorId is required")
	}

	updated, err := svc.Repo.UpdateFields(bookingID, bson.M{
		"vendor": vendorID,
		"status": models.BookingRequested,
	})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, &utils.NotFoundError{Resource: "booking", ID: bookingID}
	}

	svc.Logger.Info("vendor assigned",
		zap.String("booking", bookingID),
		zap.String("vendor", vendorID))
	return updated, nil
}

// AcceptBooking moves a requested booking to accepted. The actor must be
// the assigned vendor.
func (svc *DefaultBookingService) AcceptBooking(ctx context.Context, bookingID, actorID string) (*models.Booking, error) {
	b, err := svc.loadForVendor(bookingID, actorID)
	if err != nil {
		return nil, err
	}

	next, err := nextStatus(b.Status, eventAccept)
	if err != nil {
		return nil, err
	}

	updated, err := svc.Repo.UpdateFields(bookingID, bson.M{"status": next})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, &utils.NotFoundError{Resource: "booking", ID: bookingID}
	}

	svc.Logger.Info("booking accepted", zap.String("booking", bookingID), zap.String("vendor", actorID))
	return updated, nil
}

// RejectBooking moves a requested booking to rejected and returns its slot
// to the free pool. The actor must be the assigned vendor.
func (svc *DefaultBookingService) RejectBooking(ctx context.Context, bookingID, actorID string) (*models.Booking, error) {
	b, err := svc.loadForVendor(bookingID, actorID)
	if err != nil {
		return nil, err
	}

	next, err := nextStatus(b.Status, eventReject)
	if err != nil {
		return nil, err
	}

	updated, err := svc.Repo.UpdateStatusFreeSlot(ctx, bookingID, next, b.Availability)
	if err != nil {
		return nil, err
	}

	svc.Logger.Info("booking rejected", zap.String("booking", bookingID), zap.String("vendor", actorID))
	return updated, nil
}

// CancelBooking moves a booking to cancelled and frees its slot. The actor
// must be the booking's customer.
func (svc *DefaultBookingService) CancelBooking(ctx context.Context, bookingID, actorID string) (*models.Booking, error) {
	b, err := svc.Repo.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, &utils.NotFoundError{Resource: "booking", ID: bookingID}
	}
	if b.Customer != actorID {
		return nil, &utils.ForbiddenError{Message: "only the booking's customer may cancel it"}
	}

	next, err := nextStatus(b.Status, eventCancel)
	if err != nil {
		return nil, err
	}

	updated, err := svc.Repo.UpdateStatusFreeSlot(ctx, bookingID, next, b.Availability)
	if err != nil {
		return nil, err
	}

	svc.Logger.Info("booking cancelled", zap.String("booking", bookingID), zap.String("customer", actorID))
	return updated, nil
}

// ListByCustomer returns all bookings made by a customer.
func (svc *DefaultBookingService) ListByCustomer(ctx context.Context, customerID string) ([]models.Booking, error) {
	return svc.Repo.ListByCustomer(customerID)
}

// ListByVendor returns bookings assigned to a vendor, optionally filtered
// by status.
func (svc *DefaultBookingService) ListByVendor(ctx context.Context, vendorID string, status models.BookingStatus) ([]models.Booking, error) {
	if status != "" && !models.ValidBookingStatus(status) {
		return nil, utils.NewValidationError("unknown booking status %q", status)
	}
	return svc.Repo.ListByVendor(vendorID, status)
}

// loadForVendor fetches a booking and checks that actorID is its assigned
// vendor.
func (svc *DefaultBookingService) loadForVendor(bookingID, actorID string) (*models.Booking, error) {
	b, err := svc.Repo.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, &utils.NotFoundError{Resource: "booking", ID: bookingID}
	}
	if b.Vendor == "" || b.Vendor != actorID {
		return nil, &utils.ForbiddenError{Message: "only the assigned vendor may act on this booking"}
	}
	return b, nil
}
