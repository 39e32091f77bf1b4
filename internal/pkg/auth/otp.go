package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"math/big"
	"time"
)

const (
	// OTPLength is the number of digits in a one-time code
	OTPLength = 6
	// OTPTTL is how long a one-time code stays valid after issuance
	OTPTTL = 10 * time.Minute
)

var otpMax = big.NewInt(1000000)

// GenerateOTP generates a 6-digit numeric one-time code using crypto/rand.
func GenerateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, otpMax)
	if err != nil {
		return "", fmt.Errorf("failed to generate one-time code: %w", err)
	}
	return fmt.Sprintf("%0*d", OTPLength, n.Int64()), nil
}

// OTPExpiry returns the expiry timestamp for a code issued at issuedAt.
func OTPExpiry(issuedAt time.Time) time.Time {
	return issuedAt.Add(OTPTTL)
}

// VerifyOTP reports whether a submitted code matches the stored code and the
// stored code has not expired at now. Every failure path returns false: no
// stored code, an expired code, and a wrong code are indistinguishable to the
// caller. The stored state is never mutated here; clearing a consumed code is
// the caller's responsibility.
func VerifyOTP(submitted, stored string, expiresAt, now time.Time) bool {
	if stored == "" || submitted == "" {
		return false
	}
	if now.After(expiresAt) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(submitted), []byte(stored)) == 1
}
