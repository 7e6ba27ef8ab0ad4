//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"retrack/internal/pkg/config"
	"retrack/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const (
	RoleAuthenticated = "authenticated"
	RoleService       = "service_role"
)

// JWTHelper mints tokens the way the identity provider would, signed with the shared secret.
type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, email, role string) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, h.cfg.Issuer)
	token, err := service.GenerateToken(userID, email, role, time.Hour)
	require.NoError(t, err)
	return token
}

// SellerToken returns a fresh user id with a matching end-user token.
func (h *JWTHelper) SellerToken(t *testing.T) (uuid.UUID, string) {
	t.Helper()
	userID := uuid.New()
	return userID, h.GenerateToken(t, userID, userID.String()[:8]+"@example.com", RoleAuthenticated)
}

func (h *JWTHelper) ServiceToken(t *testing.T) string {
	t.Helper()
	return h.GenerateToken(t, uuid.New(), "ops@example.com", RoleService)
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, h.cfg.Issuer)
	token, err := service.GenerateToken(userID, "expired@example.com", RoleAuthenticated, -time.Minute)
	require.NoError(t, err)
	return token
}
