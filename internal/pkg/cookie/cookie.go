package cookie

import (
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
)

const DefaultAccessTokenCookieName = "sb-access-token"

// GetAccessToken reads the session token the hosted auth provider stores in a cookie.
// The provider may URL-encode the value.
func GetAccessToken(c *gin.Context, name string) string {
	if name == "" {
		name = DefaultAccessTokenCookieName
	}
	v, err := c.Cookie(name)
	if err != nil {
		return ""
	}
	if decoded, derr := url.QueryUnescape(v); derr == nil {
		v = decoded
	}
	return strings.TrimSpace(v)
}

// TokenFromRequest prefers the session cookie and falls back to an Authorization bearer header.
func TokenFromRequest(c *gin.Context, cookieName string) string {
	if token := GetAccessToken(c, cookieName); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}
