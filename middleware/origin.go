package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OriginChecker returns the handshake predicate used by the WebSocket
// upgrader. Matching is exact string comparison: trailing-slash variants
// are distinct origins and must be listed explicitly. A request without
// an Origin header (curl, health probes) is allowed through.
func OriginChecker(allowed []string) func(r *http.Request) bool {
	set := make(map[string]struct{}, len(allowed))
	for _, o := range allowed {
		if o != "" {
			set[o] = struct{}{}
		}
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		_, ok := set[origin]
		return ok
	}
}

// Origin is the HTTP-side companion of OriginChecker: it mirrors the
// allow-list onto the plain routes (health check) as CORS headers.
func Origin(allowed []string) gin.HandlerFunc {
	check := OriginChecker(allowed)
	return func(c *gin.Context) {
		if origin := c.Request.Header.Get("Origin"); origin != "" && check(c.Request) {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Methods", "GET, POST")
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
