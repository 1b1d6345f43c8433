package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PiotrO9/elearning/models"
)

func TestTokenService_RoundTrip(t *testing.T) {
	t.Parallel()

	svc := NewTokenService(testConfig())

	access, err := svc.GenerateAccessToken(42, "jan@example.com", models.RoleAdmin)
	require.NoError(t, err)

	claims, err := svc.VerifyAccessToken(access)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "jan@example.com", claims.Email)
	assert.Equal(t, models.RoleAdmin, claims.Role)
	assert.NotEmpty(t, claims.ID)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(svc.AccessTTL()), claims.ExpiresAt.Time, time.Minute)
}

func TestTokenService_CredentialKindsDoNotCross(t *testing.T) {
	t.Parallel()

	svc := NewTokenService(testConfig())

	access, err := svc.GenerateAccessToken(42, "jan@example.com", models.RoleUser)
	require.NoError(t, err)
	refresh, err := svc.GenerateRefreshToken(42, "jan@example.com", models.RoleUser)
	require.NoError(t, err)

	// Each credential kind is signed with its own secret.
	_, err = svc.VerifyRefreshToken(access)
	assert.Error(t, err)
	_, err = svc.VerifyAccessToken(refresh)
	assert.Error(t, err)

	_, err = svc.VerifyAccessToken("not-a-token")
	assert.Error(t, err)
}

func TestTokenService_Expiry(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.AccessTokenTTL = -time.Minute
	svc := NewTokenService(cfg)

	token, err := svc.GenerateAccessToken(42, "jan@example.com", models.RoleUser)
	require.NoError(t, err)

	_, err = svc.VerifyAccessToken(token)
	assert.Error(t, err)
}
