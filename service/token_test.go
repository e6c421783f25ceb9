package service

import (
	"testing"
	"time"

	"github.com/guilhermerodrigues17/messages-backend/config"
	"github.com/guilhermerodrigues17/messages-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		AccessSecret:    "access-secret-for-tests",
		RefreshSecret:   "refresh-secret-for-tests",
		JWTIssuer:       "messages-backend",
		JWTAudience:     "messages-clients",
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 72 * time.Hour,
	}
}

func testUser() models.User {
	return models.User{
		ID:     models.NewUserID(),
		Email:  "a@b.com",
		Name:   "Test User",
		Active: true,
	}
}

func TestMintPairRoundTrip(t *testing.T) {
	svc := NewTokenService(testConfig())
	user := testUser()

	pair, err := svc.MintPair(user)
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)

	access, err := svc.VerifyAccess(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID.Hex(), access.Subject)
	assert.Equal(t, user.Email, access.Email)
	assert.Equal(t, "messages-backend", access.Issuer)
	assert.True(t, access.VerifyAudience("messages-clients", true))
	assert.True(t, access.ExpiresAt.After(time.Now()))
	assert.NotEmpty(t, access.ID)

	refresh, err := svc.VerifyRefresh(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID.Hex(), refresh.Subject)
	assert.True(t, refresh.ExpiresAt.After(access.ExpiresAt.Time))
}

func TestVerifyAccessExpired(t *testing.T) {
	cfg := testConfig()
	cfg.AccessTokenTTL = -time.Minute
	svc := NewTokenService(cfg)

	pair, err := svc.MintPair(testUser())
	require.NoError(t, err)

	_, err = svc.VerifyAccess(pair.AccessToken)
	assert.ErrorIs(t, err, models.ErrTokenExpired)

	// Rejection is idempotent: an expired token stays expired.
	_, err = svc.VerifyAccess(pair.AccessToken)
	assert.ErrorIs(t, err, models.ErrTokenExpired)
}

func TestVerifyTamperedSignature(t *testing.T) {
	svc := NewTokenService(testConfig())

	other := testConfig()
	other.AccessSecret = "a-completely-different-secret"
	forged, err := NewTokenService(other).MintPair(testUser())
	require.NoError(t, err)

	_, err = svc.VerifyAccess(forged.AccessToken)
	assert.ErrorIs(t, err, models.ErrTokenInvalid)
}

func TestVerifyGarbage(t *testing.T) {
	svc := NewTokenService(testConfig())

	_, err := svc.VerifyAccess("not-a-token")
	assert.ErrorIs(t, err, models.ErrTokenInvalid)

	_, err = svc.VerifyRefresh("")
	assert.ErrorIs(t, err, models.ErrTokenInvalid)
}

func TestTokenKindsAreDisjoint(t *testing.T) {
	svc := NewTokenService(testConfig())

	pair, err := svc.MintPair(testUser())
	require.NoError(t, err)

	// A refresh token must never be accepted where an access token is
	// expected, and vice versa.
	_, err = svc.VerifyAccess(pair.RefreshToken)
	assert.ErrorIs(t, err, models.ErrTokenInvalid)

	_, err = svc.VerifyRefresh(pair.AccessToken)
	assert.ErrorIs(t, err, models.ErrTokenInvalid)
}

func TestVerifyIssuerMismatch(t *testing.T) {
	other := testConfig()
	other.JWTIssuer = "another-issuer"
	pair, err := NewTokenService(other).MintPair(testUser())
	require.NoError(t, err)

	svc := NewTokenService(testConfig())
	_, err = svc.VerifyAccess(pair.AccessToken)
	assert.ErrorIs(t, err, models.ErrTokenInvalid)
}

func TestVerifyAudienceMismatch(t *testing.T) {
	other := testConfig()
	other.JWTAudience = "another-audience"
	pair, err := NewTokenService(other).MintPair(testUser())
	require.NoError(t, err)

	svc := NewTokenService(testConfig())
	_, err = svc.VerifyRefresh(pair.RefreshToken)
	assert.ErrorIs(t, err, models.ErrTokenInvalid)
}
