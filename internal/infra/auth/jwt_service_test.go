package auth

import (
	"testing"
	"time"

	"solhub/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenConfig() *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			AccessTokenTTL:  10 * 24 * time.Hour,
			RefreshTokenTTL: 30 * 24 * time.Hour,
		},
	}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_IssueAndVerifyRoundTrip(t *testing.T) {
	svc, err := NewJWTService(newTestTokenConfig())
	require.NoError(t, err)

	subjectID := uuid.New()

	accessToken, err := svc.IssueAccess(subjectID)
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)

	refreshToken, err := svc.IssueRefresh(subjectID)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshToken)

	gotAccess, err := svc.VerifyAccess(accessToken)
	require.NoError(t, err)
	assert.Equal(t, subjectID, gotAccess)

	gotRefresh, err := svc.VerifyRefresh(refreshToken)
	require.NoError(t, err)
	assert.Equal(t, subjectID, gotRefresh)
}

func TestJWTService_CrossSecretIsolation(t *testing.T) {
	svc, err := NewJWTService(newTestTokenConfig())
	require.NoError(t, err)

	subjectID := uuid.New()

	accessToken, err := svc.IssueAccess(subjectID)
	require.NoError(t, err)
	refreshToken, err := svc.IssueRefresh(subjectID)
	require.NoError(t, err)

	// A refresh token must never verify as an access token, and vice versa.
	_, err = svc.VerifyAccess(refreshToken)
	assert.Error(t, err)

	_, err = svc.VerifyRefresh(accessToken)
	assert.Error(t, err)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	cfg := newTestTokenConfig()
	cfg.Auth.AccessTokenTTL = -time.Minute // already expired at issuance

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	token, err := svc.IssueAccess(uuid.New())
	require.NoError(t, err)

	_, err = svc.VerifyAccess(token)
	assert.Error(t, err)
}

func TestJWTService_MalformedToken(t *testing.T) {
	svc, err := NewJWTService(newTestTokenConfig())
	require.NoError(t, err)

	_, err = svc.VerifyAccess("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
}

func TestJWTService_EmptySecrets(t *testing.T) {
	cfg := newTestTokenConfig()
	cfg.SecretKey.Access = ""
	cfg.SecretKey.Refresh = ""

	svc, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, svc)
	assert.Contains(t, err.Error(), "jwt secrets must be provided")
}

func TestJWTService_AccessTokenDuration(t *testing.T) {
	svc, err := NewJWTService(newTestTokenConfig())
	require.NoError(t, err)

	assert.Equal(t, 10*24*time.Hour, svc.AccessTokenDuration())
}
