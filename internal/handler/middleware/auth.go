package middleware

import (
	"log/slog"
	"net/http"

	"retrack/internal/domain/auth"
	"retrack/internal/handler/httperr"
	"retrack/internal/pkg/config"
	"retrack/internal/pkg/cookie"
	"retrack/internal/pkg/errs"
	"retrack/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
	cookieName     string
	serviceRoles   []string
}

const (
	ctxIdentityKey = "identity"
)

var (
	errMissingToken = errs.New("access token required")
	errInvalidToken = errs.New("invalid or expired token")
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator, cfg config.Config) *AuthMiddleware {
	roles := cfg.JWT.ServiceRoles
	if len(roles) == 0 {
		roles = []string{auth.RoleService.String()}
	}
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
		cookieName:     cfg.JWT.CookieName,
		serviceRoles:   roles,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookie.TokenFromRequest(c, m.cookieName)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errMissingToken, "Access token required", nil)
			return
		}

		identity, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, errs.Wrap(err, errInvalidToken.Error()), "Invalid or expired token", nil)
			return
		}

		c.Set(ctxIdentityKey, identity)
		c.Set("jwt_claims", map[string]any{
			"user_id": identity.UserID().String(),
			"role":    identity.Role().String(),
		})
		c.Next()
	}
}

// RequireServiceRole must run after RequireAuth.
func (m *AuthMiddleware) RequireServiceRole() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := GetIdentity(c)
		if !ok {
			httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("identity missing from context"), "Internal server error", nil)
			return
		}
		if !identity.HasAnyRole(m.serviceRoles...) {
			httperr.AbortWithError(c, http.StatusForbidden, errs.ErrForbidden, "Insufficient permissions", nil)
			return
		}
		c.Next()
	}
}

func GetIdentity(c *gin.Context) (auth.Identity, bool) {
	v, exists := c.Get(ctxIdentityKey)
	if !exists {
		return auth.Identity{}, false
	}
	identity, ok := v.(auth.Identity)
	return identity, ok
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	identity, ok := GetIdentity(c)
	if !ok {
		return uuid.Nil, false
	}
	return identity.UserID(), true
}
