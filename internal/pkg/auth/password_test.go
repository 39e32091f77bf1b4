package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashPassword_ProducesDistinctHashes(t *testing.T) {
	first, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	second, err := HashPassword("s3cret-pass")
	require.NoError(t, err)

	// per-call random salt: same plaintext never yields the same hash
	require.NotEqual(t, first, second)
	require.NotEqual(t, "s3cret-pass", first)
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)

	require.True(t, CheckPassword(hash, "s3cret-pass"))
	require.False(t, CheckPassword(hash, "wrong-pass"))
	require.False(t, CheckPassword("not-a-hash", "s3cret-pass"))
}
