package userRepo

import (
	"devmitra/models"

	"go.mongodb.org/mongo-driver/bson"
)

// UserRepository defines methods for user data access. Get methods return
// (nil, nil) when no document matches.
type UserRepository interface {
	// Create inserts a new user record.
	Create(user *models.User) error
	// UpdateSetDocument applies a partial $set update and returns the
	// updated document.
	UpdateSetDocument(id string, updateDoc bson.M) (*models.User, error)
	// GetByID retrieves a user by its unique ID.
	GetByID(id string) (*models.User, error)
	// GetByPhone retrieves a user by phone number.
	GetByPhone(phone string) (*models.User, error)
	// ListByRole retrieves all users holding the given role.
	ListByRole(role models.UserRole) ([]models.User, error)
}
