//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"retrack/internal/handler/middleware"
	"retrack/internal/pkg/config"
	"retrack/internal/pkg/jwt"
	"retrack/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthRouter(t *testing.T) (*gin.Engine, *jwt.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.NewTestConfig()
	svc := jwt.NewService(cfg.JWT.Secret, cfg.JWT.Issuer)
	m := middleware.NewAuthMiddleware(usecase.NewTokenValidator(svc), cfg)

	r := gin.New()
	r.GET("/me", m.RequireAuth(), func(c *gin.Context) {
		id, ok := middleware.GetUserID(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"user_id": id.String()})
	})
	r.GET("/admin", m.RequireAuth(), m.RequireServiceRole(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r, svc
}

func TestRequireAuth(t *testing.T) {
	router, svc := newAuthRouter(t)
	userID := uuid.New()

	valid, err := svc.GenerateToken(userID, "seller@example.com", "authenticated", time.Hour)
	require.NoError(t, err)
	expired, err := svc.GenerateToken(userID, "seller@example.com", "authenticated", -time.Minute)
	require.NoError(t, err)
	foreign, err := jwt.NewService("some-other-secret-of-sufficient-length", "").
		GenerateToken(userID, "seller@example.com", "authenticated", time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name       string
		prepare    func(r *http.Request)
		wantStatus int
	}{
		{
			name:       "bearer header",
			prepare:    func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+valid) },
			wantStatus: http.StatusOK,
		},
		{
			name: "url-encoded session cookie",
			prepare: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: "sb-access-token", Value: url.QueryEscape(valid)})
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing token",
			prepare:    func(r *http.Request) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "expired token",
			prepare:    func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+expired) },
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "signed with another secret",
			prepare:    func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+foreign) },
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "non-bearer scheme",
			prepare:    func(r *http.Request) { r.Header.Set("Authorization", "Basic "+valid) },
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			tt.prepare(req)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code, w.Body.String())
			if tt.wantStatus == http.StatusOK {
				assert.Contains(t, w.Body.String(), userID.String())
			}
		})
	}
}

func TestRequireServiceRole(t *testing.T) {
	router, svc := newAuthRouter(t)

	tests := []struct {
		name       string
		role       string
		wantStatus int
	}{
		{name: "service role", role: "service_role", wantStatus: http.StatusNoContent},
		{name: "end user", role: "authenticated", wantStatus: http.StatusForbidden},
		{name: "role defaults to authenticated", role: "", wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := svc.GenerateToken(uuid.New(), "ops@example.com", tt.role, time.Hour)
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code, w.Body.String())
		})
	}
}
