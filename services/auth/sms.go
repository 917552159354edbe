package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// TwoFactorSender delivers OTPs through the 2Factor transactional SMS API.
type TwoFactorSender struct {
	APIKey  string
	AppHash string
	Client  *http.Client
}

// NewTwoFactorSender builds a sender with a sane request timeout.
func NewTwoFactorSender(apiKey, appHash string) *TwoFactorSender {
	return &TwoFactorSender{
		APIKey:  apiKey,
		AppHash: appHash,
		Client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// SendOTP posts the OTP to 2Factor's ADDON_SERVICES transactional SMS
// endpoint using the devmitra template.
func (s *TwoFactorSender) SendOTP(ctx context.Context, phone, otp string) error {
	payload := map[string]string{
		"From":         "DEVMIT",
		"To":           phone,
		"TemplateName": "devmitra",
		"VAR1":         otp,
		"VAR2":         s.AppHash,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode SMS payload: %w", err)
	}

	url := fmt.Sprintf("https://2factor.in/API/V1/%s/ADDON_SERVICES/SEND/TSMS", s.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build SMS request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.Client.Do(req)
	if err != nil {
		return fmt.Errorf("SMS request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("SMS gateway returned status %d", resp.StatusCode)
	}
	return nil
}

// LogSender logs the OTP instead of delivering it. Used in development when
// no 2Factor API key is configured.
type LogSender struct {
	Logger *zap.Logger
}

func (s *LogSender) SendOTP(ctx context.Context, phone, otp string) error {
	s.Logger.Sugar().Infof("Sending OTP %s to phone %s (dev sender)", otp, phone)
	return nil
}
