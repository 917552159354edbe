package availabilityRepo

import "devmitra/models"

// AvailabilityRepository defines data access for vendor time slots. Get
// methods return (nil, nil) when no document matches.
type AvailabilityRepository interface {
	// Create inserts a new availability slot.
	Create(slot *models.Availability) error
	// ListByVendor retrieves all slots for a vendor in insertion order,
	// booked or not.
	ListByVendor(vendorID string) ([]models.Availability, error)
}
