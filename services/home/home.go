package home

import (
	"context"
	"encoding/json"
	"time"

	homecardRepo "devmitra/database/repository/homecard"
	"devmitra/models"
	"devmitra/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

const (
	cardsCacheKey = "home:cards"
	cardsCacheTTL = 10 * time.Minute
)

// CreateCardInput is the admin payload for a home screen card.
type CreateCardInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ButtonText  string `json:"buttonText"`
	Image       string `json:"image,omitempty"`
	CardColor   string `json:"cardColor"`
}

// HomeService manages home screen content cards.
type HomeService interface {
	ListActiveCards(ctx context.Context) ([]models.HomeCard, error)
	CreateCard(ctx context.Context, input CreateCardInput) (*models.HomeCard, error)
	UpdateCard(ctx context.Context, id string, fields map[string]interface{}) (*models.HomeCard, error)
	DeactivateCard(ctx context.Context, id string) error
}

// DefaultHomeService implements HomeService. Cache may be nil.
type DefaultHomeService struct {
	Repo   homecardRepo.HomeCardRepository
	Cache  *redis.Client
	Logger *zap.Logger
}

// ListActiveCards returns the active cards, served from cache when warm.
func (svc *DefaultHomeService) ListActiveCards(ctx context.Context) ([]models.HomeCard, error) {
	if svc.Cache != nil {
		if data, err := svc.Cache.Get(ctx, cardsCacheKey).Result(); err == nil {
			var cards []models.HomeCard
			if json.Unmarshal([]byte(data), &cards) == nil {
				return cards, nil
			}
		}
	}

	cards, err := svc.Repo.ListActive()
	if err != nil {
		return nil, err
	}

	if svc.Cache != nil {
		if data, err := json.Marshal(cards); err == nil {
			if err := svc.Cache.Set(ctx, cardsCacheKey, data, cardsCacheTTL).Err(); err != nil {
				svc.Logger.Warn("failed to cache home cards", zap.Error(err))
			}
		}
	}
	return cards, nil
}

// CreateCard inserts a new active card.
func (svc *DefaultHomeService) CreateCard(ctx context.Context, input CreateCardInput) (*models.HomeCard, error) {
	if input.Title == "" || input.Description == "" {
		return nil, utils.NewValidationError("title and description are required")
	}
	if input.ButtonText == "" || input.CardColor == "" {
		return nil, utils.NewValidationError("buttonText and cardColor are required")
	}

	card := &models.HomeCard{
		ID:          uuid.New().String(),
		Title:       input.Title,
		Description: input.Description,
		ButtonText:  input.ButtonText,
		Image:       input.Image,
		CardColor:   input.CardColor,
		IsActive:    true,
	}
	if err := svc.Repo.Create(card); err != nil {
		return nil, err
	}

	svc.invalidateCache(ctx)
	return card, nil
}

// UpdateCard applies the provided fields and returns the updated card.
func (svc *DefaultHomeService) UpdateCard(ctx context.Context, id string, fields map[string]interface{}) (*models.HomeCard, error) {
	if len(fields) == 0 {
		return nil, utils.NewValidationError("no fields to update")
	}

	updated, err := svc.Repo.UpdateSetDocument(id, bson.M(fields))
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, &utils.NotFoundError{Resource: "home card", ID: id}
	}

	svc.invalidateCache(ctx)
	return updated, nil
}

// DeactivateCard hides a card by flipping isActive.
func (svc *DefaultHomeService) DeactivateCard(ctx context.Context, id string) error {
	updated, err := svc.Repo.UpdateSetDocument(id, bson.M{"isActive": false})
	if err != nil {
		return err
	}
	if updated == nil {
		return &utils.NotFoundError{Resource: "home card", ID: id}
	}

	svc.invalidateCache(ctx)
	return nil
}

func (svc *DefaultHomeService) invalidateCache(ctx context.Context) {
	if svc.Cache == nil {
		return
	}
	if err := svc.Cache.Del(ctx, cardsCacheKey).Err(); err != nil {
		svc.Logger.Warn("failed to invalidate home card cache", zap.Error(err))
	}
}
