package models

import "time"

// HomeCard is presentational content for the app home screen.
type HomeCard struct {
	ID          string    `bson:"id" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description" json:"description"`
	ButtonText  string    `bson:"buttonText" json:"buttonText"`
	Image       string    `bson:"image,omitempty" json:"image,omitempty"`
	CardColor   string    `bson:"cardColor" json:"cardColor"`
	IsActive    bool      `bson:"isActive" json:"isActive"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}
