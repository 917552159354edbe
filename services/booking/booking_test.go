package booking_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"devmitra/models"
	"devmitra/services/booking"
	"devmitra/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// fakeBookingRepo is an in-memory BookingRepository that also tracks slot
// booked flags, so tests can observe the slot side of transactional writes.
type fakeBookingRepo struct {
	bookings map[string]*models.Booking
	slots    map[string]bool // slot id -> isBooked
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{
		bookings: make(map[string]*models.Booking),
		slots:    make(map[string]bool),
	}
}

func (f *fakeBookingRepo) CreateWithSlot(ctx context.Context, b *models.Booking, slotID string) error {
	booked, ok := f.slots[slotID]
	if !ok {
		return &utils.NotFoundError{Resource: "availability slot", ID: slotID}
	}
	if booked {
		return &utils.ConflictError{Message: "availability slot " + slotID + " is already booked"}
	}
	cp := *b
	f.bookings[b.ID] = &cp
	f.slots[slotID] = true
	return nil
}

func (f *fakeBookingRepo) GetByID(id string) (*models.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (f *fakeBookingRepo) UpdateFields(id string, fields bson.M) (*models.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, nil
	}
	for k, v := range fields {
		switch k {
		case "vendor":
			b.Vendor = v.(string)
		case "status":
			b.Status = v.(models.BookingStatus)
		case "paymentStatus":
			b.PaymentStatus = v.(models.PaymentStatus)
		}
	}
	cp := *b
	return &cp, nil
}

func (f *fakeBookingRepo) UpdateStatusFreeSlot(ctx context.Context, id string, status models.BookingStatus, slotID string) (*models.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, nil
	}
	b.Status = status
	f.slots[slotID] = false
	cp := *b
	return &cp, nil
}

func (f *fakeBookingRepo) ListByCustomer(customerID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.Customer == customerID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) ListByVendor(vendorID string, status models.BookingStatus) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.Vendor != vendorID {
			continue
		}
		if status != "" && b.Status != status {
			continue
		}
		out = append(out, *b)
	}
	return out, nil
}

func newBookingService(repo *fakeBookingRepo) *booking.DefaultBookingService {
	return &booking.DefaultBookingService{Repo: repo, Logger: zap.NewNop()}
}

func validInput() booking.CreateBookingInput {
	return booking.CreateBookingInput{
		Customer:     "cust-1",
		Puja:         "puja-1",
		Availability: "slot-1",
		TotalAmount:  500,
		BookingItems: []models.BookingItem{
			{Name: "Flowers", Quantity: 2, ModifiedBy: "customer"},
		},
	}
}

func seedBooking(repo *fakeBookingRepo, status models.BookingStatus, vendor string) *models.Booking {
	b := &models.Booking{
		ID:            "bk-1",
		Customer:      "cust-1",
		Vendor:        vendor,
		Puja:          "puja-1",
		Availability:  "slot-1",
		TotalAmount:   500,
		Status:        status,
		PaymentStatus: models.PaymentPending,
	}
	repo.bookings[b.ID] = b
	repo.slots["slot-1"] = true
	return b
}

func TestCreateBookingStartsPending(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.slots["slot-1"] = false
	svc := newBookingService(repo)

	created, err := svc.CreateBooking(context.Background(), validInput())
	if err != nil {
		t.Fatalf("CreateBooking failed: %v", err)
	}
	if created.Status != models.BookingPending {
		t.Errorf("status = %q, want %q", created.Status, models.BookingPending)
	}
	if created.PaymentStatus != models.PaymentPending {
		t.Errorf("paymentStatus = %q, want %q", created.PaymentStatus, models.PaymentPending)
	}
	if created.ID == "" {
		t.Error("expected a generated booking id")
	}
	if !repo.slots["slot-1"] {
		t.Error("expected the availability slot to be marked booked")
	}
}

func TestCreateBookingRejectsBookedSlot(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.slots["slot-1"] = true
	svc := newBookingService(repo)

	_, err := svc.CreateBooking(context.Background(), validInput())
	var ce *utils.ConflictError
	if !errors.As(err, &ce) {
		t.Fatalf("expected ConflictError for an already booked slot, got %v", err)
	}
}

func TestCreateBookingMissingSlot(t *testing.T) {
	svc := newBookingService(newFakeBookingRepo())

	_, err := svc.CreateBooking(context.Background(), validInput())
	var nf *utils.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError for a missing slot, got %v", err)
	}
}

func TestCreateBookingValidation(t *testing.T) {
	svc := newBookingService(newFakeBookingRepo())

	cases := map[string]func(*booking.CreateBookingInput){
		"missing customer":     func(in *booking.CreateBookingInput) { in.Customer = "" },
		"missing puja":         func(in *booking.CreateBookingInput) { in.Puja = "" },
		"missing availability": func(in *booking.CreateBookingInput) { in.Availability = "" },
		"zero amount":          func(in *booking.CreateBookingInput) { in.TotalAmount = 0 },
		"item without name":    func(in *booking.CreateBookingInput) { in.BookingItems[0].Name = "" },
		"item zero quantity":   func(in *booking.CreateBookingInput) { in.BookingItems[0].Quantity = 0 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			in := validInput()
			mutate(&in)
			_, err := svc.CreateBooking(context.Background(), in)
			var ve *utils.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
		})
	}
}

func TestAssignVendorForcesRequested(t *testing.T) {
	// Assignment is an unconditional override: it must force `requested`
	// whatever the prior status, even on terminal ones.
	for _, prior := range []models.BookingStatus{
		models.BookingPending,
		models.BookingAccepted,
		models.BookingRejected,
		models.BookingCompleted,
		models.BookingCancelled,
	} {
		t.Run(string(prior), func(t *testing.T) {
			repo := newFakeBookingRepo()
			seedBooking(repo, prior, "")
			svc := newBookingService(repo)

			updated, err := svc.AssignVendor(context.Background(), "bk-1", "vendor-1")
			if err != nil {
				t.Fatalf("AssignVendor failed: %v", err)
			}
			if updated.Status != models.BookingRequested {
				t.Errorf("status = %q, want %q", updated.Status, models.BookingRequested)
			}
			if updated.Vendor != "vendor-1" {
				t.Errorf("vendor = %q, want vendor-1", updated.Vendor)
			}
		})
	}
}

func TestAssignVendorUnknownBooking(t *testing.T) {
	svc := newBookingService(newFakeBookingRepo())

	_, err := svc.AssignVendor(context.Background(), "missing", "vendor-1")
	var nf *utils.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestAcceptBooking(t *testing.T) {
	repo := newFakeBookingRepo()
	seedBooking(repo, models.BookingRequested, "vendor-1")
	svc := newBookingService(repo)

	updated, err := svc.AcceptBooking(context.Background(), "bk-1", "vendor-1")
	if err != nil {
		t.Fatalf("AcceptBooking failed: %v", err)
	}
	if updated.Status != models.BookingAccepted {
		t.Errorf("status = %q, want %q", updated.Status, models.BookingAccepted)
	}
}

func TestAcceptBookingGuardedByStateMachine(t *testing.T) {
	// Accepting is only legal from `requested`.
	repo := newFakeBookingRepo()
	seedBooking(repo, models.BookingPending, "vendor-1")
	svc := newBookingService(repo)

	_, err := svc.AcceptBooking(context.Background(), "bk-1", "vendor-1")
	var te *utils.TransitionError
	if !errors.As(err, &te) {
		t.Fatalf("expected TransitionError, got %v", err)
	}
	if !strings.Contains(te.Error(), "pending") {
		t.Errorf("error should name the current status: %v", te)
	}
}

func TestAcceptBookingWrongVendor(t *testing.T) {
	repo := newFakeBookingRepo()
	seedBooking(repo, models.BookingRequested, "vendor-1")
	svc := newBookingService(repo)

	_, err := svc.AcceptBooking(context.Background(), "bk-1", "vendor-2")
	var fe *utils.ForbiddenError
	if !errors.As(err, &fe) {
		t.Fatalf("expected ForbiddenError, got %v", err)
	}
}

func TestAcceptBookingUnassigned(t *testing.T) {
	// An empty vendor field must never match an empty actor id.
	repo := newFakeBookingRepo()
	seedBooking(repo, models.BookingRequested, "")
	svc := newBookingService(repo)

	_, err := svc.AcceptBooking(context.Background(), "bk-1", "")
	var fe *utils.ForbiddenError
	if !errors.As(err, &fe) {
		t.Fatalf("expected ForbiddenError, got %v", err)
	}
}

func TestRejectBookingFreesSlot(t *testing.T) {
	repo := newFakeBookingRepo()
	seedBooking(repo, models.BookingRequested, "vendor-1")
	svc := newBookingService(repo)

	updated, err := svc.RejectBooking(context.Background(), "bk-1", "vendor-1")
	if err != nil {
		t.Fatalf("RejectBooking failed: %v", err)
	}
	if updated.Status != models.BookingRejected {
		t.Errorf("status = %q, want %q", updated.Status, models.BookingRejected)
	}
	if repo.slots["slot-1"] {
		t.Error("expected the slot to be freed on rejection")
	}
}

func TestCancelBookingFreesSlot(t *testing.T) {
	for _, prior := range []models.BookingStatus{
		models.BookingPending,
		models.BookingRequested,
		models.BookingAccepted,
	} {
		t.Run(string(prior), func(t *testing.T) {
			repo := newFakeBookingRepo()
			seedBooking(repo, prior, "vendor-1")
			svc := newBookingService(repo)

			updated, err := svc.CancelBooking(context.Background(), "bk-1", "cust-1")
			if err != nil {
				t.Fatalf("CancelBooking failed: %v", err)
			}
			if updated.Status != models.BookingCancelled {
				t.Errorf("status = %q, want %q", updated.Status, models.BookingCancelled)
			}
			if repo.slots["slot-1"] {
				t.Error("expected the slot to be freed on cancellation")
			}
		})
	}
}

func TestCancelBookingTerminalStatus(t *testing.T) {
	for _, prior := range []models.BookingStatus{
		models.BookingRejected,
		models.BookingCompleted,
		models.BookingCancelled,
	} {
		t.Run(string(prior), func(t *testing.T) {
			repo := newFakeBookingRepo()
			seedBooking(repo, prior, "vendor-1")
			svc := newBookingService(repo)

			_, err := svc.CancelBooking(context.Background(), "bk-1", "cust-1")
			var te *utils.TransitionError
			if !errors.As(err, &te) {
				t.Fatalf("expected TransitionError, got %v", err)
			}
		})
	}
}

func TestCancelBookingWrongCustomer(t *testing.T) {
	repo := newFakeBookingRepo()
	seedBooking(repo, models.BookingPending, "")
	svc := newBookingService(repo)

	_, err := svc.CancelBooking(context.Background(), "bk-1", "cust-2")
	var fe *utils.ForbiddenError
	if !errors.As(err, &fe) {
		t.Fatalf("expected ForbiddenError, got %v", err)
	}
}

func TestListByVendorRejectsUnknownStatus(t *testing.T) {
	svc := newBookingService(newFakeBookingRepo())

	_, err := svc.ListByVendor(context.Background(), "vendor-1", "bogus")
	var ve *utils.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestListByVendorFiltersByStatus(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.bookings["bk-1"] = &models.Booking{ID: "bk-1", Customer: "c", Vendor: "vendor-1", Status: models.BookingRequested}
	repo.bookings["bk-2"] = &models.Booking{ID: "bk-2", Customer: "c", Vendor: "vendor-1", Status: models.BookingAccepted}
	svc := newBookingService(repo)

	got, err := svc.ListByVendor(context.Background(), "vendor-1", models.BookingAccepted)
	if err != nil {
		t.Fatalf("ListByVendor failed: %v", err)
	}
	if len(got) != 1 || got[0].ID != "bk-2" {
		t.Errorf("got %d bookings, want only bk-2", len(got))
	}
}
