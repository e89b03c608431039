package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret-pass", 4)
	require.NoError(t, err)
	require.NotEqual(t, "s3cret-pass", hash)

	require.True(t, VerifyPassword(hash, "s3cret-pass"))
	require.False(t, VerifyPassword(hash, "wrong"))
}

func TestHashTokenRawIsDeterministic(t *testing.T) {
	a := HashTokenRaw("abc123")
	b := HashTokenRaw("abc123")
	require.Equal(t, a, b)
	require.Len(t, a, 64) // hex SHA-256
	require.NotEqual(t, a, HashTokenRaw("abc124"))
}

func TestRefreshAndResetTokensDiffer(t *testing.T) {
	r1, err := NewRefreshToken(7)
	require.NoError(t, err)
	r2, err := NewRefreshToken(7)
	require.NoError(t, err)
	require.NotEqual(t, r1.Raw, r2.Raw)
	require.True(t, r1.Exp.After(r1.Exp.AddDate(0, 0, -1)))

	p, err := NewResetToken(30)
	require.NoError(t, err)
	require.NotEmpty(t, p.Raw)
}

func TestAccessTokenCarriesClaims(t *testing.T) {
	tok, err := NewAccessToken("test-secret", 42, "CUSTOMER", 15)
	require.NoError(t, err)
	require.NotEmpty(t, tok.Token)
	require.False(t, tok.Exp.IsZero())
}
