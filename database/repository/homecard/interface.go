package homecardRepo

import (
	"devmitra/models"

	"go.mongodb.org/mongo-driver/bson"
)

// HomeCardRepository defines data access for home screen cards.
type HomeCardRepository interface {
	// Create inserts a new card.
	Create(card *models.HomeCard) error
	// ListActive retrieves all cards with isActive=true.
	ListActive() ([]models.HomeCard, error)
	// UpdateSetDocument applies a partial $set update and returns the
	// updated document, or (nil, nil) when no card matched.
	UpdateSetDocument(id string, updateDoc bson.M) (*models.HomeCard, error)
}
