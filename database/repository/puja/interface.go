package pujaRepo

import (
	"devmitra/models"

	"go.mongodb.org/mongo-driver/bson"
)

// PujaRepository defines data access for the puja catalog. Get methods
// return (nil, nil) when no document matches.
type PujaRepository interface {
	// Create inserts a new puja type.
	Create(puja *models.PujaType) error
	// GetByID retrieves a puja type by its unique ID.
	GetByID(id string) (*models.PujaType, error)
	// ListActive retrieves all catalog entries with isActive=true.
	ListActive() ([]models.PujaType, error)
	// UpdateSetDocument applies a partial $set update and returns the
	// updated document.
	UpdateSetDocument(id string, updateDoc bson.M) (*models.PujaType, error)
}

// VendorPujaRepository records which vendors can perform which puja types.
type VendorPujaRepository interface {
	// Create inserts a vendor-puja mapping.
	Create(mapping *models.VendorPuja) error
	// ListByVendor retrieves all mappings for a vendor.
	ListByVendor(vendorID string) ([]models.VendorPuja, error)
}
