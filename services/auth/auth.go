package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"devmitra/models"
	"devmitra/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	otpLength      = 6
	otpTTL         = 5 * time.Minute
	resendCooldown = time.Minute
	tokenTTL       = 7 * 24 * time.Hour
)

// normalizePhone ensures the Indian country code prefix.
func normalizePhone(phone string) string {
	if strings.HasPrefix(phone, "91") {
		return phone
	}
	return "91" + phone
}

// SendOTP generates a one-time password for the phone number, stores its
// bcrypt hash with a 5-minute expiry on the user document, and hands the
// clear OTP to the SMS collaborator. Unknown phone numbers get a fresh
// customer account. Resends are throttled to one per minute per phone.
func (svc *DefaultAuthService) SendOTP(ctx context.Context, phone string) error {
	if phone == "" {
		return utils.NewValidationError("phone is required")
	}
	phone = normalizePhone(phone)

	if svc.Throttle != nil {
		key := "otp:send:" + phone
		ok, err := svc.Throttle.SetNX(ctx, key, 1, resendCooldown).Result()
		if err != nil {
			svc.Logger.Warn("otp throttle check failed", zap.Error(err))
		} else if !ok {
			return utils.NewValidationError("OTP recently sent; retry in a minute")
		}
	}

	user, err := svc.Repo.GetByPhone(phone)
	if err != nil {
		return err
	}
	if user == nil {
		user = &models.User{
			ID:        uuid.New().String(),
			Phone:     phone,
			FirstName: "New",
			LastName:  "User",
			Role:      models.RoleCustomer,
		}
		if err := svc.Repo.Create(user); err != nil {
			return err
		}
	}

	otp, err := utils.GenerateNumericOTP(otpLength)
	if err != nil {
		return fmt.Errorf("failed to generate OTP: %w", err)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(otp), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash OTP: %w", err)
	}
	expiry := time.Now().Add(otpTTL)

	if _, err := svc.Repo.UpdateSetDocument(user.ID, bson.M{
		"otpHash":   string(hash),
		"otpExpiry": expiry,
	}); err != nil {
		return err
	}

	if err := svc.SMS.SendOTP(ctx, phone, otp); err != nil {
		svc.Logger.Error("failed to deliver OTP", zap.String("phone", phone), zap.Error(err))
		return fmt.Errorf("failed to send OTP: %w", err)
	}

	svc.Logger.Info("OTP sent", zap.String("phone", phone), zap.String("user", user.ID))
	return nil
}

// VerifyOTP checks the presented OTP against the stored hash and expiry.
// On success the OTP fields are cleared and a signed token with the user's
// id and role is returned. Blocked users cannot log in.
func (svc *DefaultAuthService) VerifyOTP(ctx context.Context, phone, otp string) (string, *models.User, error) {
	if phone == "" || otp == "" {
		return "", nil, utils.NewValidationError("phone and otp are required")
	}
	phone = normalizePhone(phone)

	user, err := svc.Repo.GetByPhone(phone)
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, &utils.NotFoundError{Resource: "user", ID: phone}
	}
	if user.IsBlocked {
		return "", nil, &utils.ForbiddenError{Message: "account is blocked"}
	}

	if user.OTPHash == "" || user.OTPExpiry == nil || user.OTPExpiry.Before(time.Now()) {
		return "", nil, utils.NewValidationError("Invalid or expired OTP")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.OTPHash), []byte(otp)) != nil {
		return "", nil, utils.NewValidationError("Invalid or expired OTP")
	}

	updated, err := svc.Repo.UpdateSetDocument(user.ID, bson.M{
		"otpHash":   "",
		"otpExpiry": nil,
	})
	if err != nil {
		return "", nil, err
	}
	if updated == nil {
		return "", nil, &utils.NotFoundError{Resource: "user", ID: user.ID}
	}

	token, err := utils.GenerateToken(updated.ID, updated.Role, tokenTTL)
	if err != nil {
		return "", nil, fmt.Errorf("failed to issue token: %w", err)
	}

	svc.Logger.Info("OTP verified", zap.String("user", updated.ID), zap.String("role", string(updated.Role)))
	return token, updated, nil
}
