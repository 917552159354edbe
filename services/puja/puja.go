package puja

import (
	"context"
	"encoding/json"
	"time"

	pujaRepo "devmitra/database/repository/puja"
	"devmitra/models"
	"devmitra/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

const (
	activePujasCacheKey = "pujas:active"
	catalogCacheTTL     = 10 * time.Minute
)

// CreatePujaInput is the payload for creating a catalog entry.
type CreatePujaInput struct {
	Name            string            `json:"name"`
	Description     string            `json:"description"`
	BasePrice       float64           `json:"basePrice"`
	Image           string            `json:"image"`
	DurationMinutes int               `json:"durationMinutes"`
	DefaultItems    []models.PujaItem `json:"defaultItems,omitempty"`
}

// UpdatePujaInput carries optional catalog fields; nil pointers are left
// untouched.
type UpdatePujaInput struct {
	Name            *string            `json:"name,omitempty"`
	Description     *string            `json:"description,omitempty"`
	BasePrice       *float64           `json:"basePrice,omitempty"`
	Image           *string            `json:"image,omitempty"`
	DurationMinutes *int               `json:"durationMinutes,omitempty"`
	DefaultItems    *[]models.PujaItem `json:"defaultItems,omitempty"`
}

// VendorPujaView is a vendor-puja mapping hydrated with its catalog entry.
type VendorPujaView struct {
	models.VendorPuja
	PujaDetails *models.PujaType `json:"pujaDetails,omitempty"`
}

// PujaService manages the puja catalog and vendor qualifications.
type PujaService interface {
	CreatePuja(ctx context.Context, input CreatePujaInput) (*models.PujaType, error)
	ListActivePujas(ctx context.Context) ([]models.PujaType, error)
	UpdatePuja(ctx context.Context, id string, input UpdatePujaInput) (*models.PujaType, error)
	DeactivatePuja(ctx context.Context, id string) error
	AssignPujaToVendor(ctx context.Context, vendorID, pujaID string) (*models.VendorPuja, error)
	GetVendorPujas(ctx context.Context, vendorID string) ([]VendorPujaView, error)
}

// DefaultPujaService implements PujaService. Cache may be nil, which
// disables the catalog cache.
type DefaultPujaService struct {
	Repo        pujaRepo.PujaRepository
	VendorPujas pujaRepo.VendorPujaRepository
	Cache       *redis.Client
	Logger      *zap.Logger
}

// CreatePuja inserts a new catalog entry. Duration defaults to 120 minutes.
func (svc *DefaultPujaService) CreatePuja(ctx context.Context, input CreatePujaInput) (*models.PujaType, error) {
	if input.Name == "" {
		return nil, utils.NewValidationError("name is required")
	}
	if input.Description == "" {
		return nil, utils.NewValidationError("description is required")
	}
	if input.BasePrice <= 0 {
		return nil, utils.NewValidationError("basePrice must be greater than zero")
	}
	if input.Image == "" {
		return nil, utils.NewValidationError("image is required")
	}
	if input.DurationMinutes == 0 {
		input.DurationMinutes = 120
	}

	p := &models.PujaType{
		ID:              uuid.New().String(),
		Name:            input.Name,
		Description:     input.Description,
		BasePrice:       input.BasePrice,
		Image:           input.Image,
		DurationMinutes: input.DurationMinutes,
		DefaultItems:    input.DefaultItems,
		IsActive:        true,
	}
	if err := svc.Repo.Create(p); err != nil {
		return nil, err
	}

	svc.invalidateCache(ctx)
	svc.Logger.Info("puja created", zap.String("puja", p.ID), zap.String("name", p.Name))
	return p, nil
}

// ListActivePujas returns the active catalog, served from the Redis cache
// when warm.
func (svc *DefaultPujaService) ListActivePujas(ctx context.Context) ([]models.PujaType, error) {
	if svc.Cache != nil {
		if data, err := svc.Cache.Get(ctx, activePujasCacheKey).Result(); err == nil {
			var pujas []models.PujaType
			if json.Unmarshal([]byte(data), &pujas) == nil {
				return pujas, nil
			}
		}
	}

	pujas, err := svc.Repo.ListActive()
	if err != nil {
		return nil, err
	}

	if svc.Cache != nil {
		if data, err := json.Marshal(pujas); err == nil {
			if err := svc.Cache.Set(ctx, activePujasCacheKey, data, catalogCacheTTL).Err(); err != nil {
				svc.Logger.Warn("failed to cache puja catalog", zap.Error(err))
			}
		}
	}
	return pujas, nil
}

// UpdatePuja applies the provided fields and returns the updated entry.
func (svc *DefaultPujaService) UpdatePuja(ctx context.Context, id string, input UpdatePujaInput) (*models.PujaType, error) {
	fields := bson.M{}
	if input.Name != nil {
		fields["name"] = *input.Name
	}
	if input.Description != nil {
		fields["description"] = *input.Description
	}
	if input.BasePrice != nil {
		fields["basePrice"] = *input.BasePrice
	}
	if input.Image != nil {
		fields["image"] = *input.Image
	}
	if input.DurationMinutes != nil {
		fields["durationMinutes"] = *input.DurationMinutes
	}
	if input.DefaultItems != nil {
		fields["defaultItems"] = *input.DefaultItems
	}
	if len(fields) == 0 {
		return nil, utils.NewValidationError("no fields to update")
	}

	updated, err := svc.Repo.UpdateSetDocument(id, fields)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, &utils.NotFoundError{Resource: "puja", ID: id}
	}

	svc.invalidateCache(ctx)
	return updated, nil
}

// DeactivatePuja soft-deletes a catalog entry by flipping isActive. The
// document is never physically removed.
func (svc *DefaultPujaService) DeactivatePuja(ctx context.Context, id string) error {
	updated, err := svc.Repo.UpdateSetDocument(id, bson.M{"isActive": false})
	if err != nil {
		return err
	}
	if updated == nil {
		return &utils.NotFoundError{Resource: "puja", ID: id}
	}

	svc.invalidateCache(ctx)
	svc.Logger.Info("puja deactivated", zap.String("puja", id))
	return nil
}

// AssignPujaToVendor records that a vendor is qualified for a puja type.
func (svc *DefaultPujaService) AssignPujaToVendor(ctx context.Context, vendorID, pujaID string) (*models.VendorPuja, error) {
	if vendorID == "" || pujaID == "" {
		return nil, utils.NewValidationError("vendorId and pujaId are required")
	}

	mapping := &models.VendorPuja{
		ID:     uuid.New().String(),
		Vendor: vendorID,
		Puja:   pujaID,
	}
	if err := svc.VendorPujas.Create(mapping); err != nil {
		return nil, err
	}
	return mapping, nil
}

// GetVendorPujas lists a vendor's qualifications with their catalog entries
// attached.
func (svc *DefaultPujaService) GetVendorPujas(ctx context.Context, vendorID string) ([]VendorPujaView, error) {
	mappings, err := svc.VendorPujas.ListByVendor(vendorID)
	if err != nil {
		return nil, err
	}

	views := make([]VendorPujaView, 0, len(mappings))
	for _, m := range mappings {
		view := VendorPujaView{VendorPuja: m}
		if p, err := svc.Repo.GetByID(m.Puja); err == nil {
			view.PujaDetails = p
		}
		views = append(views, view)
	}
	return views, nil
}

func (svc *DefaultPujaService) invalidateCache(ctx context.Context) {
	if svc.Cache == nil {
		return
	}
	if err := svc.Cache.Del(ctx, activePujasCacheKey).Err(); err != nil {
		svc.Logger.Warn("failed to invalidate puja cache", zap.Error(err))
	}
}
