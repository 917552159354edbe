package models

import "time"

// Availability is a vendor-declared time slot. IsBooked flips to true when a
// booking commits the slot and back to false when that booking is rejected
// or cancelled.
type Availability struct {
	ID        string    `bson:"id" json:"id"`
	Vendor    string    `bson:"vendor" json:"vendor"`
	Date      string    `bson:"date" json:"date"`           // YYYY-MM-DD
	StartTime string    `bson:"startTime" json:"startTime"` // HH:mm
	EndTime   string    `bson:"endTime" json:"endTime"`     // HH:mm
	IsBooked  bool      `bson:"isBooked" json:"isBooked"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
