package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/internal/cache"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestJWTService_SessionLastsExactly24Hours(t *testing.T) {
	issued := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	svc := NewJWTService("test-secret").WithClock(fixedClock(issued))

	token, claims, err := svc.GenerateSessionToken("admin@gmail.com", "Administrateur")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NotEmpty(t, claims.ID)
	assert.Equal(t, 24*time.Hour, claims.ExpiresAt.Sub(claims.IssuedAt.Time))

	tests := []struct {
		name  string
		at    time.Time
		valid bool
	}{
		{"just issued", issued, true},
		{"one second before expiry", issued.Add(SessionTTL - time.Second), true},
		{"at expiry", issued.Add(SessionTTL), false},
		{"a day later", issued.Add(48 * time.Hour), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := svc.WithClock(fixedClock(tt.at)).ValidateToken(token)
			if tt.valid {
				require.NoError(t, err)
				assert.Equal(t, "admin@gmail.com", parsed.Email)
				assert.Equal(t, "Administrateur", parsed.Name)
				assert.Equal(t, claims.ID, parsed.ID)
			} else {
				assert.ErrorIs(t, err, ErrInvalidToken)
			}
		})
	}
}

func TestJWTService_RejectsForeignTokens(t *testing.T) {
	svc := NewJWTService("test-secret")

	forged, _, err := NewJWTService("other-secret").GenerateSessionToken("admin@gmail.com", "A")
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		Email:            "admin@gmail.com",
		RegisteredClaims: jwt.RegisteredClaims{ID: "abc"},
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	wrongAlg, err := jwt.NewWithClaims(jwt.SigningMethodHS512, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        "abc",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	for name, token := range map[string]string{
		"garbage":      "not-a-token",
		"other secret": forged,
		"no expiry":    noExpiry,
		"wrong alg":    wrongAlg,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.ValidateToken(token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestTokenStore_FailsSafeWithoutRedis(t *testing.T) {
	store := NewTokenStore(cache.New("", "", 0))
	ctx := context.Background()

	assert.NoError(t, store.Revoke(ctx, "jti", time.Hour))
	assert.False(t, store.IsRevoked(ctx, "jti"))
	assert.NoError(t, store.Revoke(ctx, "jti", -time.Second))
}
