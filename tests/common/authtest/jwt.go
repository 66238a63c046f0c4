//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"staybook/internal/domain/user"
	"staybook/internal/pkg/clock"
	"staybook/internal/pkg/config"
	"staybook/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	service := jwt.NewService(h.cfg.Secret, duration, clock.NewRealClock())
	token, err := service.GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	issuedAt := clock.NewMockClock(time.Now().Add(-time.Hour))
	service := jwt.NewService(h.cfg.Secret, time.Minute, issuedAt)
	token, err := service.GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}
