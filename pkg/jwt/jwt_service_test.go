package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nutriscan-api/domain"
)

func newTestService() *jwtService {
	return &jwtService{secretKey: "test-secret", issuer: "NUTRISCAN"}
}

func TestJWTService_UserTokenRoundTrip(t *testing.T) {
	service := newTestService()

	token := service.GenerateTokenUser("2b1f8a9e-5c44-4f14-9d38-67c1f54ad001", domain.RoleUser)
	require.NotEmpty(t, token)

	id, role, err := service.GetUserIDByToken(token)
	require.NoError(t, err)
	assert.Equal(t, "2b1f8a9e-5c44-4f14-9d38-67c1f54ad001", id)
	assert.Equal(t, domain.RoleUser, role)
}

func TestJWTService_GetUserIDByToken_WrongSecret(t *testing.T) {
	token := (&jwtService{secretKey: "other-secret", issuer: "NUTRISCAN"}).
		GenerateTokenUser("user-1", domain.RoleUser)

	_, _, err := newTestService().GetUserIDByToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestJWTService_GetUserIDByToken_Garbage(t *testing.T) {
	_, _, err := newTestService().GetUserIDByToken("not.a.token")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestJWTService_VerifyEmailTokenRoundTrip(t *testing.T) {
	service := newTestService()

	token, err := service.GenerateTokenVerifyEmail(map[string]any{"user_id": "user-1"}, time.Hour)
	require.NoError(t, err)

	claims, err := service.ValidateTokenVerifyEmail(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims["user_id"])
	assert.Equal(t, "NUTRISCAN", claims["iss"])
}

func TestJWTService_VerifyEmailToken_Expired(t *testing.T) {
	service := newTestService()

	token, err := service.GenerateTokenVerifyEmail(map[string]any{"user_id": "user-1"}, -time.Minute)
	require.NoError(t, err)

	_, err = service.ValidateTokenVerifyEmail(token)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}
