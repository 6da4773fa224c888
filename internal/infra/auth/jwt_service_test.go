package auth

import (
	"testing"
	"time"

	"portal/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJWTTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-access-secret"
	cfg.SecretKey.Refresh = "test-refresh-secret"

	return cfg
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	service, err := NewJWTService(newJWTTestConfig())
	require.NoError(t, err)

	userID := uuid.New()
	roles := []string{"admin", "coach"}

	accessToken, refreshToken, err := service.GenerateTokens(userID, roles)
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)
	assert.NotEqual(t, accessToken, refreshToken)

	claims, err := service.ValidateToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, roles, claims.Roles)
	assert.Equal(t, "access", claims.Type)
}

func TestJWTService_ValidateToken_RefreshTokenRejected(t *testing.T) {
	service, err := NewJWTService(newJWTTestConfig())
	require.NoError(t, err)

	// Refresh tokens are signed with a different secret; they must not pass
	// access-token validation.
	_, refreshToken, err := service.GenerateTokens(uuid.New(), nil)
	require.NoError(t, err)

	claims, err := service.ValidateToken(refreshToken)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_ValidateToken_Garbage(t *testing.T) {
	service, err := NewJWTService(newJWTTestConfig())
	require.NoError(t, err)

	claims, err := service.ValidateToken("not.a.token")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_MissingSecrets(t *testing.T) {
	cfg := &config.Config{}

	service, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, service)
}

func TestJWTService_GetRefreshTokenDuration(t *testing.T) {
	service, err := NewJWTService(newJWTTestConfig())
	require.NoError(t, err)

	assert.Equal(t, time.Hour*24*7, service.GetRefreshTokenDuration())
}
