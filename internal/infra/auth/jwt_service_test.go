package auth

import (
	"testing"
	"time"

	"bazaar/config"
	"bazaar/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(t *testing.T) *jwtService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-access-secret"

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	concrete, ok := svc.(*jwtService)
	require.True(t, ok)

	return concrete
}

func TestNewJWTService(t *testing.T) {
	t.Run("requires an access secret", func(t *testing.T) {
		_, err := NewJWTService(&config.Config{})
		assert.Error(t, err)
	})
}

func TestJWTService_ValidateToken(t *testing.T) {
	svc := newTestJWTService(t)
	userID := uuid.New()

	t.Run("accepts a valid buyer token", func(t *testing.T) {
		token, err := svc.signAccessToken(userID, service.UserTypeBuyer, time.Minute)
		require.NoError(t, err)

		identity, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, userID, identity.UserID)
		assert.Equal(t, service.UserTypeBuyer, identity.UserType)
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		token, err := svc.signAccessToken(userID, service.UserTypeBuyer, -time.Minute)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.Error(t, err)
	})

	t.Run("rejects a token signed with a different secret", func(t *testing.T) {
		otherCfg := &config.Config{}
		otherCfg.SecretKey.Access = "other-secret"
		other, err := NewJWTService(otherCfg)
		require.NoError(t, err)

		token, err := other.(*jwtService).signAccessToken(userID, service.UserTypeBuyer, time.Minute)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.Error(t, err)
	})

	t.Run("rejects an unknown user type", func(t *testing.T) {
		token, err := svc.signAccessToken(userID, "admin", time.Minute)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.Error(t, err)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := svc.ValidateToken("not.a.token")
		assert.Error(t, err)
	})
}
