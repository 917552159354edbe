package booking_test

import (
	"context"
	"errors"
	"testing"

	"devmitra/models"
	"devmitra/services/booking"
	"devmitra/utils"

	"go.uber.org/zap"
)

type fakeAvailabilityRepo struct {
	slots []models.Availability
}

func (f *fakeAvailabilityRepo) Create(slot *models.Availability) error {
	f.slots = append(f.slots, *slot)
	return nil
}

func (f *fakeAvailabilityRepo) ListByVendor(vendorID string) ([]models.Availability, error) {
	var out []models.Availability
	for _, s := range f.slots {
		if s.Vendor == vendorID {
			out = append(out, s)
		}
	}
	return out, nil
}

func TestDeclareSlot(t *testing.T) {
	repo := &fakeAvailabilityRepo{}
	svc := &booking.DefaultAvailabilityService{Repo: repo, Logger: zap.NewNop()}

	input := booking.DeclareSlotInput{
		Vendor:    "vendor-1",
		Date:      "2026-09-01",
		StartTime: "10:00",
		EndTime:   "12:00",
	}
	slot, err := svc.DeclareSlot(context.Background(), input, "vendor-1")
	if err != nil {
		t.Fatalf("DeclareSlot failed: %v", err)
	}
	if slot.IsBooked {
		t.Error("a new slot must start free")
	}
	if slot.ID == "" {
		t.Error("expected a generated slot id")
	}
}

func TestDeclareSlotForOtherVendor(t *testing.T) {
	svc := &booking.DefaultAvailabilityService{Repo: &fakeAvailabilityRepo{}, Logger: zap.NewNop()}

	input := booking.DeclareSlotInput{
		Vendor:    "vendor-1",
		Date:      "2026-09-01",
		StartTime: "10:00",
		EndTime:   "12:00",
	}
	_, err := svc.DeclareSlot(context.Background(), input, "vendor-2")
	var fe *utils.ForbiddenError
	if !errors.As(err, &fe) {
		t.Fatalf("expected ForbiddenError, got %v", err)
	}
}

func TestDeclareSlotMissingFields(t *testing.T) {
	svc := &booking.DefaultAvailabilityService{Repo: &fakeAvailabilityRepo{}, Logger: zap.NewNop()}

	input := booking.DeclareSlotInput{Vendor: "vendor-1", Date: "2026-09-01"}
	_, err := svc.DeclareSlot(context.Background(), input, "vendor-1")
	var ve *utils.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestListSlots(t *testing.T) {
	repo := &fakeAvailabilityRepo{slots: []models.Availability{
		{ID: "s1", Vendor: "vendor-1"},
		{ID: "s2", Vendor: "vendor-1", IsBooked: true},
		{ID: "s3", Vendor: "vendor-2"},
	}}
	svc := &booking.DefaultAvailabilityService{Repo: repo, Logger: zap.NewNop()}

	slots, err := svc.ListSlots(context.Background(), "vendor-1")
	if err != nil {
		t.Fatalf("ListSlots failed: %v", err)
	}
	if len(slots) != 2 {
		t.Errorf("got %d slots, want 2 (booked slots included)", len(slots))
	}
}
