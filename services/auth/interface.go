package auth

import (
	"context"

	userRepo "devmitra/database/repository/user"
	"devmitra/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// AuthService implements phone + OTP authentication. OTP is the sole
// authentication factor; verification yields a signed token carrying the
// caller identity (id + role).
type AuthService interface {
	SendOTP(ctx context.Context, phone string) error
	VerifyOTP(ctx context.Context, phone, otp string) (string, *models.User, error)
}

// SMSSender delivers an OTP to a phone number.
type SMSSender interface {
	SendOTP(ctx context.Context, phone, otp string) error
}

// DefaultAuthService implements AuthService. Throttle may be nil, which
// disables the resend cooldown (used in tests).
type DefaultAuthService struct {
	Repo     userRepo.UserRepository
	SMS      SMSSender
	Throttle *redis.Client
	Logger   *zap.Logger
}
