package security

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/waytopg/accommodation-service/internal/domain"
	"github.com/waytopg/accommodation-service/internal/ports"
)

func TestNewJWTSignerRequiresSecret(t *testing.T) {
	_, err := NewJWTSigner("")
	require.Error(t, err)
}

func TestSignAndParseRoundTrip(t *testing.T) {
	signer, err := NewJWTSigner("unit-test-secret")
	require.NoError(t, err)

	now := time.Now().UTC().Truncate(time.Second)
	want := ports.AuthClaims{
		UserID:    uuid.New(),
		Email:     "user@example.com",
		Role:      domain.RoleOwner,
		IssuedAt:  now,
		ExpiresAt: now.Add(24 * time.Hour),
	}

	raw, err := signer.Sign(want)
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	got, err := signer.ParseAndValidate(raw)
	require.NoError(t, err)
	assert.Equal(t, want.UserID, got.UserID)
	assert.Equal(t, want.Email, got.Email)
	assert.Equal(t, want.Role, got.Role)
	assert.Equal(t, want.IssuedAt, got.IssuedAt)
	assert.Equal(t, want.ExpiresAt, got.ExpiresAt)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	signer, err := NewJWTSigner("unit-test-secret")
	require.NoError(t, err)

	now := time.Now().UTC()
	raw, err := signer.Sign(ports.AuthClaims{
		UserID:    uuid.New(),
		Email:     "user@example.com",
		Role:      domain.RoleStudent,
		IssuedAt:  now.Add(-25 * time.Hour),
		ExpiresAt: now.Add(-time.Hour),
	})
	require.NoError(t, err)

	_, err = signer.ParseAndValidate(raw)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	signer, err := NewJWTSigner("secret-a")
	require.NoError(t, err)
	other, err := NewJWTSigner("secret-b")
	require.NoError(t, err)

	now := time.Now().UTC()
	raw, err := signer.Sign(ports.AuthClaims{
		UserID:    uuid.New(),
		Email:     "user@example.com",
		Role:      domain.RoleStudent,
		IssuedAt:  now,
		ExpiresAt: now.Add(time.Hour),
	})
	require.NoError(t, err)

	_, err = other.ParseAndValidate(raw)
	assert.Error(t, err)
}

func TestParseRejectsForeignSigningMethod(t *testing.T) {
	signer, err := NewJWTSigner("unit-test-secret")
	require.NoError(t, err)

	now := time.Now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, authJWTClaims{
		UserID: uuid.NewString(),
		Email:  "user@example.com",
		Role:   "student",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	})
	raw, err := token.SignedString([]byte("unit-test-secret"))
	require.NoError(t, err)

	_, err = signer.ParseAndValidate(raw)
	assert.Error(t, err)
}

func TestParseRejectsMissingRole(t *testing.T) {
	signer, err := NewJWTSigner("unit-test-secret")
	require.NoError(t, err)

	now := time.Now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS512, authJWTClaims{
		UserID: uuid.NewString(),
		Email:  "user@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	})
	raw, err := token.SignedString([]byte("unit-test-secret"))
	require.NoError(t, err)

	_, err = signer.ParseAndValidate(raw)
	assert.Error(t, err)
}
