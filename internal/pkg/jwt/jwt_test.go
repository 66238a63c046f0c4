//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"staybook/internal/domain/user"
	"staybook/internal/pkg/clock"
	"staybook/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	userID := uuid.New()
	svc := jwt.NewService("test-secret-key", time.Hour, clock.NewRealClock())

	token, err := svc.GenerateToken(userID, user.RoleOwner)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "owner", claims.Role)
}

func TestValidateToken_Expired(t *testing.T) {
	past := clock.NewMockClock(time.Now().Add(-2 * time.Hour))
	svc := jwt.NewService("test-secret-key", time.Hour, past)

	token, err := svc.GenerateToken(uuid.New(), user.RoleClient)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	require.ErrorIs(t, err, jwt.ErrExpiredToken)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	issuer := jwt.NewService("issuer-secret", time.Hour, clock.NewRealClock())
	verifier := jwt.NewService("other-secret", time.Hour, clock.NewRealClock())

	token, err := issuer.GenerateToken(uuid.New(), user.RoleClient)
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	require.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestValidateToken_Garbage(t *testing.T) {
	svc := jwt.NewService("test-secret-key", time.Hour, clock.NewRealClock())

	_, err := svc.ValidateToken("not.a.token")
	require.ErrorIs(t, err, jwt.ErrInvalidToken)
}
