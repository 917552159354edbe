package user

import (
	"context"

	userRepo "devmitra/database/repository/user"
	"devmitra/models"
	"devmitra/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// CreateUserInput is the admin payload for creating a vendor or customer.
type CreateUserInput struct {
	FirstName       string           `json:"firstName"`
	LastName        string           `json:"lastName"`
	Phone           string           `json:"phone"`
	Email           string           `json:"email,omitempty"`
	City            string           `json:"city,omitempty"`
	Address         string           `json:"address,omitempty"`
	Location        *models.GeoPoint `json:"location,omitempty"`
	PoojariCategory string           `json:"poojariCategory,omitempty"`
	Languages       []string         `json:"languages,omitempty"`
	StudyPlace      string           `json:"studyPlace,omitempty"`
	Experience      int              `json:"experience,omitempty"`
	ProfileImage    string           `json:"profileImage,omitempty"`
}

// UserService covers admin-driven vendor and customer management.
type UserService interface {
	CreateVendor(ctx context.Context, input CreateUserInput) (*models.User, error)
	CreateCustomer(ctx context.Context, input CreateUserInput) (*models.User, error)
	ListVendors(ctx context.Context) ([]models.User, error)
	ListCustomers(ctx context.Context) ([]models.User, error)
	ApproveVendor(ctx context.Context, id string) (*models.User, error)
	BlockVendor(ctx context.Context, id string) (*models.User, error)
}

// DefaultUserService implements UserService.
type DefaultUserService struct {
	Repo   userRepo.UserRepository
	Logger *zap.Logger
}

func (svc *DefaultUserService) create(input CreateUserInput, role models.UserRole, approved bool) (*models.User, error) {
	if input.FirstName == "" || input.LastName == "" {
		return nil, utils.NewValidationError("firstName and lastName are required")
	}
	if input.Phone == "" {
		return nil, utils.NewValidationError("phone is required")
	}

	u := &models.User{
		ID:              uuid.New().String(),
		FirstName:       input.FirstName,
		LastName:        input.LastName,
		Phone:           input.Phone,
		Email:           input.Email,
		Role:            role,
		City:            input.City,
		Address:         input.Address,
		Location:        input.Location,
		PoojariCategory: input.PoojariCategory,
		Languages:       input.Languages,
		StudyPlace:      input.StudyPlace,
		Experience:      input.Experience,
		ProfileImage:    input.ProfileImage,
		IsApproved:      approved,
	}
	if err := svc.Repo.Create(u); err != nil {
		return nil, err
	}

	svc.Logger.Info("user created",
		zap.String("user", u.ID),
		zap.String("name", u.FullName()),
		zap.String("role", string(role)),
		zap.String("phone", u.Phone))
	return u, nil
}

// CreateVendor creates a vendor account. Vendors start unapproved and stay
// invisible to assignment until an admin approves them.
func (svc *DefaultUserService) CreateVendor(ctx context.Context, input CreateUserInput) (*models.User, error) {
	return svc.create(input, models.RoleVendor, false)
}

// CreateCustomer creates a customer account. Customers are auto-approved.
func (svc *DefaultUserService) CreateCustomer(ctx context.Context, input CreateUserInput) (*models.User, error) {
	return svc.create(input, models.RoleCustomer, true)
}

// ListVendors returns all vendor accounts.
func (svc *DefaultUserService) ListVendors(ctx context.Context) ([]models.User, error) {
	return svc.Repo.ListByRole(models.RoleVendor)
}

// ListCustomers returns all customer accounts.
func (svc *DefaultUserService) ListCustomers(ctx context.Context) ([]models.User, error) {
	return svc.Repo.ListByRole(models.RoleCustomer)
}

// ApproveVendor flips the approval flag on a vendor account.
func (svc *DefaultUserService) ApproveVendor(ctx context.Context, id string) (*models.User, error) {
	updated, err := svc.Repo.UpdateSetDocument(id, bson.M{"isApproved": true})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, &utils.NotFoundError{Resource: "vendor", ID: id}
	}
	svc.Logger.Info("vendor approved", zap.String("vendor", id))
	return updated, nil
}

// BlockVendor flips the blocked flag on a vendor account. Blocked users
// cannot log in.
func (svc *DefaultUserService) BlockVendor(ctx context.Context, id string) (*models.User, error) {
	updated, err := svc.Repo.UpdateSetDocument(id, bson.M{"isBlocked": true})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, &utils.NotFoundError{Resource: "vendor", ID: id}
	}
	svc.Logger.Info("vendor blocked", zap.String("vendor", id))
	return updated, nil
}
