package auth

import (
	"testing"
	"time"

	"nearbite/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *jwtService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-secret"

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)

	return signed
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	cfg := &config.Config{}
	_, err := NewJWTService(cfg)
	assert.Error(t, err)
}

func TestValidateToken(t *testing.T) {
	svc := newTestService(t)
	userID := uuid.New()

	tokenString := signToken(t, "test-secret", jwt.MapClaims{
		"sub":   userID.String(),
		"exp":   time.Now().Add(time.Hour).Unix(),
		"roles": []string{"admin"},
	})

	claims, err := svc.ValidateToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, []string{"admin"}, claims.Roles)
}

func TestValidateToken_Rejections(t *testing.T) {
	svc := newTestService(t)
	userID := uuid.New()

	t.Run("wrong secret", func(t *testing.T) {
		tokenString := signToken(t, "other-secret", jwt.MapClaims{
			"sub": userID.String(),
			"exp": time.Now().Add(time.Hour).Unix(),
		})

		_, err := svc.ValidateToken(tokenString)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		tokenString := signToken(t, "test-secret", jwt.MapClaims{
			"sub": userID.String(),
			"exp": time.Now().Add(-time.Hour).Unix(),
		})

		_, err := svc.ValidateToken(tokenString)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("missing subject", func(t *testing.T) {
		tokenString := signToken(t, "test-secret", jwt.MapClaims{
			"exp": time.Now().Add(time.Hour).Unix(),
		})

		_, err := svc.ValidateToken(tokenString)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.ValidateToken("not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
