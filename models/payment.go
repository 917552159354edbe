package models

import "time"

// PaymentResult is the outcome of one simulated payment attempt.
type PaymentResult string

const (
	PaymentSuccess PaymentResult = "success"
	PaymentFailure PaymentResult = "failed"
)

// Payment is an immutable record of one simulated payment attempt. A booking
// may accumulate several of these; none is ever mutated after creation.
type Payment struct {
	ID            string        `bson:"id" json:"id"`
	Booking       string        `bson:"booking" json:"booking"`
	Amount        float64       `bson:"amount" json:"amount"`
	TransactionID string        `bson:"transactionId" json:"transactionId"`
	Status        PaymentResult `bson:"status" json:"status"`
	CreatedAt     time.Time     `bson:"createdAt" json:"createdAt"`
}
