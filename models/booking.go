package models

import "time"

// BookingStatus is the lifecycle axis of a booking.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingRequested BookingStatus = "requested"
	BookingAccepted  BookingStatus = "accepted"
	BookingRejected  BookingStatus = "rejected"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

// PaymentStatus is the orthogonal payment axis of a booking.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

// ValidBookingStatus reports whether s is a known lifecycle status.
func ValidBookingStatus(s BookingStatus) bool {
	switch s {
	case BookingPending, BookingRequested, BookingAccepted,
		BookingRejected, BookingCompleted, BookingCancelled:
		return true
	}
	return false
}

// BookingItem is one line item on a booking, tagged with who last touched it.
type BookingItem struct {
	Name       string `bson:"name" json:"name"`
	Quantity   int    `bson:"quantity" json:"quantity"`
	ModifiedBy string `bson:"modifiedBy" json:"modifiedBy"` // customer, vendor or admin
}

// Booking is the central transactional entity. Vendor is empty until an
// admin assigns one.
type Booking struct {
	ID            string        `bson:"id" json:"id"`
	Customer      string        `bson:"customer" json:"customer"`
	Vendor        string        `bson:"vendor,omitempty" json:"vendor,omitempty"`
	Puja          string        `bson:"puja" json:"puja"`
	Availability  string        `bson:"availability" json:"availability"`
	BookingItems  []BookingItem `bson:"bookingItems,omitempty" json:"bookingItems,omitempty"`
	TotalAmount   float64       `bson:"totalAmount" json:"totalAmount"`
	Status        BookingStatus `bson:"status" json:"status"`
	PaymentStatus PaymentStatus `bson:"paymentStatus" json:"paymentStatus"`
	CreatedAt     time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time     `bson:"updatedAt" json:"updatedAt"`
}
