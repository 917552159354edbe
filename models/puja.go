package models

import "time"

// PujaItem is a default line item suggested for a puja type.
type PujaItem struct {
	Name            string `bson:"name" json:"name"`
	DefaultQuantity int    `bson:"defaultQuantity" json:"defaultQuantity"`
}

// PujaType is a bookable service catalog entry. Deletion is a soft flag
// flip (IsActive=false); documents are never physically removed.
type PujaType struct {
	ID              string     `bson:"id" json:"id"`
	Name            string     `bson:"name" json:"name"`
	Description     string     `bson:"description" json:"description"`
	BasePrice       float64    `bson:"basePrice" json:"basePrice"`
	Image           string     `bson:"image" json:"image"`
	DurationMinutes int        `bson:"durationMinutes" json:"durationMinutes"`
	DefaultItems    []PujaItem `bson:"defaultItems,omitempty" json:"defaultItems,omitempty"`
	IsActive        bool       `bson:"isActive" json:"isActive"`
	CreatedAt       time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time  `bson:"updatedAt" json:"updatedAt"`
}

// VendorPuja records that a vendor is qualified to perform a puja type.
type VendorPuja struct {
	ID        string    `bson:"id" json:"id"`
	Vendor    string    `bson:"vendor" json:"vendor"`
	Puja      string    `bson:"puja" json:"puja"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
