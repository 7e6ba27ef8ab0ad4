//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"retrack/internal/handler/httperr"
	"retrack/internal/handler/middleware"
	"retrack/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestErrorMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.CustomRecovery(), middleware.ErrorHandler())
	r.GET("/panic", func(*gin.Context) { panic("boom") })
	r.GET("/private", func(c *gin.Context) { _ = c.Error(errs.New("db down")) })
	r.GET("/public", func(c *gin.Context) {
		httperr.AbortWithError(c, http.StatusConflict, errs.ErrProductAlreadySold, "Product already sold", nil)
	})

	tests := []struct {
		path       string
		wantStatus int
		wantBody   string
	}{
		{"/panic", http.StatusInternalServerError, `{"error":{"message":"Internal server error"}}`},
		{"/private", http.StatusInternalServerError, `{"error":{"message":"Internal server error"}}`},
		{"/public", http.StatusConflict, `{"error":{"message":"Product already sold"}}`},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
