//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"retrack/internal/handler/middleware"
	"retrack/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newCORSRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.NewCORSMiddleware(config.CORSConfig{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           time.Hour,
	}))
	ok := func(c *gin.Context) { c.Status(http.StatusOK) }
	r.GET("/api/products", ok)
	r.POST("/api/webhooks/stripe", ok)
	return r
}

func TestCORSMiddleware(t *testing.T) {
	r := newCORSRouter()

	tests := []struct {
		name       string
		method     string
		path       string
		origin     string
		wantStatus int
		check      func(t *testing.T, h http.Header)
	}{
		{
			name:       "allowed origin sees the request id header",
			method:     http.MethodGet,
			path:       "/api/products",
			origin:     "http://localhost:3000",
			wantStatus: http.StatusOK,
			check: func(t *testing.T, h http.Header) {
				assert.Equal(t, "http://localhost:3000", h.Get("Access-Control-Allow-Origin"))
				assert.Contains(t, strings.ToLower(h.Get("Access-Control-Expose-Headers")), "x-request-id")
			},
		},
		{
			name:       "foreign origin is rejected on app routes",
			method:     http.MethodGet,
			path:       "/api/products",
			origin:     "https://evil.example",
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "webhook deliveries bypass origin checks",
			method:     http.MethodPost,
			path:       "/api/webhooks/stripe",
			origin:     "https://hooks.stripe.example",
			wantStatus: http.StatusOK,
			check: func(t *testing.T, h http.Header) {
				assert.Empty(t, h.Get("Access-Control-Allow-Origin"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			req.Header.Set("Origin", tt.origin)
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.check != nil {
				tt.check(t, rec.Header())
			}
		})
	}
}
