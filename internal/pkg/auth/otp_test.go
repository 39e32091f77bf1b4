package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOTP_FormatIsSixDigits(t *testing.T) {
	for i := 0; i < 50; i++ {
		code, err := GenerateOTP()
		require.NoError(t, err)
		require.Len(t, code, OTPLength)
		for _, c := range code {
			require.True(t, c >= '0' && c <= '9', "code must be numeric, got %q", code)
		}
	}
}

func TestOTPExpiry(t *testing.T) {
	issued := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	require.Equal(t, issued.Add(10*time.Minute), OTPExpiry(issued))
}

func TestVerifyOTP(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	valid := now.Add(5 * time.Minute)
	expired := now.Add(-1 * time.Second)

	tests := []struct {
		name      string
		submitted string
		stored    string
		expiresAt time.Time
		want      bool
	}{
		{"matching unexpired code", "482913", "482913", valid, true},
		{"no code stored", "482913", "", valid, false},
		{"empty submission", "", "482913", valid, false},
		{"wrong code", "000000", "482913", valid, false},
		{"expired code", "482913", "482913", expired, false},
		{"expired and wrong are the same failure", "000000", "482913", expired, false},
		{"boundary: expires exactly now", "482913", "482913", now, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, VerifyOTP(tt.submitted, tt.stored, tt.expiresAt, now))
		})
	}
}

// Verification must not consume the code by itself; a second verify with the
// same stored state succeeds, and only clearing the stored code (empty stored
// value) makes subsequent verifies fail.
func TestVerifyOTP_DoesNotMutateState(t *testing.T) {
	now := time.Now()
	stored := "123456"
	expiry := OTPExpiry(now)

	require.True(t, VerifyOTP("123456", stored, expiry, now))
	require.True(t, VerifyOTP("123456", stored, expiry, now))

	// caller cleared the code after successful verification
	stored = ""
	require.False(t, VerifyOTP("123456", stored, expiry, now))
}
