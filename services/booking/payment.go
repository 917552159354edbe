package booking

import (
	"context"

	"devmitra/models"
	"devmitra/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// SimulatePayment records one simulated payment attempt for a booking and
// reconciles the booking's payment status. Only the booking's customer may
// pay. On success the booking becomes paid and completed; on failure the
// payment status becomes failed and the lifecycle status is left untouched.
// The Payment record is immutable; repeated attempts accumulate.
func (svc *DefaultPaymentService) SimulatePayment(ctx context.Context, bookingID, actorID string, outcome models.PaymentResult) (*models.Payment, *models.Booking, error) {
	if bookingID == "" {
		return nil, nil, utils.NewValidationError("bookingId is required")
	}
	if outcome != models.PaymentSuccess && outcome != models.PaymentFailure {
		return nil, nil, utils.NewValidationError("status must be %q or %q", models.PaymentSuccess, models.PaymentFailure)
	}

	b, err := svc.Bookings.GetByID(bookingID)
	if err != nil {
		return nil, nil, err
	}
	if b == nil {
		return nil, nil, &utils.NotFoundError{Resource: "booking", ID: bookingID}
	}
	if b.Customer != actorID {
		return nil, nil, &utils.ForbiddenError{Message: "only the booking's customer may pay for it"}
	}

	payment := &models.Payment{
		ID:            uuid.New().String(),
		Booking:       bookingID,
		Amount:        b.TotalAmount,
		TransactionID: "TXN-" + uuid.New().String(),
		Status:        outcome,
	}
	if err := svc.Payments.Create(payment); err != nil {
		return nil, nil, err
	}

	var fields bson.M
	if outcome == models.PaymentSuccess {
		fields = bson.M{
			"paymentStatus": models.PaymentPaid,
			"status":        models.BookingCompleted,
		}
	} else {
		fields = bson.M{"paymentStatus": models.PaymentFailed}
	}

	updated, err := svc.Bookings.UpdateFields(bookingID, fields)
	if err != nil {
		return nil, nil, err
	}
	if updated == nil {
		return nil, nil, &utils.NotFoundError{Resource: "booking", ID: bookingID}
	}

	svc.Logger.Info("payment processed",
		zap.String("booking", bookingID),
		zap.String("transaction", payment.TransactionID),
		zap.String("outcome", string(outcome)))
	return payment, updated, nil
}

// ListByBooking returns every payment attempt recorded for a booking. Only
// the booking's customer, its assigned vendor and admins may read the
// history.
func (svc *DefaultPaymentService) ListByBooking(ctx context.Context, bookingID, actorID string, role models.UserRole) ([]models.Payment, error) {
	if bookingID == "" {
		return nil, utils.NewValidationError("bookingId is required")
	}

	b, err := svc.Bookings.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, &utils.NotFoundError{Resource: "booking", ID: bookingID}
	}
	if role != models.RoleAdmin && actorID != b.Customer && (b.Vendor == "" || actorID != b.Vendor) {
		return nil, &utils.ForbiddenError{Message: "only the booking's customer or assigned vendor may view its payments"}
	}

	return svc.Payments.ListByBooking(bookingID)
}
