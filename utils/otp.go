package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// GenerateNumericOTP generates a secure random numeric OTP of the given
// length. Each digit is drawn independently from crypto/rand.
func GenerateNumericOTP(length int) (string, error) {
	const digits = "0123456789"
	buf := make([]byte, length)
	for i := range buf {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(digits))))
		if err != nil {
			return "", fmt.Errorf("failed to generate random digit: %w", err)
		}
		buf[i] = digits[n.Int64()]
	}
	return string(buf), nil
}
