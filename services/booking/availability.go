package booking

import (
	"context"

	"devmitra/models"
	"devmitra/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DeclareSlotInput is the payload for declaring an availability slot.
type DeclareSlotInput struct {
	Vendor    string `json:"vendor"`
	Date      string `json:"date"`      // YYYY-MM-DD
	StartTime string `json:"startTime"` // HH:mm
	EndTime   string `json:"endTime"`   // HH:mm
}

// DeclareSlot creates an availability slot with isBooked=false. Only the
// vendor themselves may declare their slots. Overlap with existing slots is
// not validated.
func (svc *DefaultAvailabilityService) DeclareSlot(ctx context.Context, input DeclareSlotInput, actorID string) (*models.Availability, error) {
	if input.Vendor == "" {
		return nil, utils.NewValidationError("vendor is required")
	}
	if actorID != input.Vendor {
		return nil, &utils.ForbiddenError{Message: "vendors may only declare their own availability"}
	}
	if input.Date == "" || input.StartTime == "" || input.EndTime == "" {
		return nil, utils.NewValidationError("date, startTime and endTime are required")
	}

	slot := &models.Availability{
		ID:        uuid.New().String(),
		Vendor:    input.Vendor,
		Date:      input.Date,
		StartTime: input.StartTime,
		EndTime:   input.EndTime,
		IsBooked:  false,
	}
	if err := svc.Repo.Create(slot); err != nil {
		return nil, err
	}

	svc.Logger.Info("availability declared",
		zap.String("slot", slot.ID),
		zap.String("vendor", slot.Vendor),
		zap.String("date", slot.Date))
	return slot, nil
}

// ListSlots returns all slots for a vendor, booked or not, in insertion
// order.
func (svc *DefaultAvailabilityService) ListSlots(ctx context.Context, vendorID string) ([]models.Availability, error) {
	return svc.Repo.ListByVendor(vendorID)
}
