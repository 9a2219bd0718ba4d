package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// CORSOptions configures cross-origin behavior for both router styles.
type CORSOptions struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	AllowCredentials bool
}

// WithCORS wraps a ServeMux handler pattern with CORS headers and preflight
// handling. The returned pair is suitable for mux.HandleFunc.
func WithCORS(pattern string, handler http.HandlerFunc, opts CORSOptions) (string, http.HandlerFunc) {
	return pattern, func(w http.ResponseWriter, r *http.Request) {
		applyCORSHeaders(w, r.Header.Get("Origin"), opts)
		handler(w, r)
	}
}

// PreflightHandler answers OPTIONS requests for CORS-enabled mux routes.
func PreflightHandler(opts CORSOptions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		applyCORSHeaders(w, r.Header.Get("Origin"), opts)
		w.WriteHeader(http.StatusNoContent)
	}
}

func applyCORSHeaders(w http.ResponseWriter, origin string, opts CORSOptions) {
	if origin == "" || !isOriginAllowed(origin, opts.AllowedOrigins) {
		return
	}
	w.Header().Set("Access-Control-Allow-Origin", origin)
	w.Header().Set("Access-Control-Allow-Methods", strings.Join(opts.AllowedMethods, ", "))
	w.Header().Set("Access-Control-Allow-Headers", strings.Join(opts.AllowedHeaders, ", "))
	if opts.AllowCredentials {
		w.Header().Set("Access-Control-Allow-Credentials", "true")
	}
}

// CORSMiddleware provides the same behavior for gin-routed endpoints.
func CORSMiddleware(opts CORSOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" && isOriginAllowed(origin, opts.AllowedOrigins) {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Methods", strings.Join(opts.AllowedMethods, ", "))
			c.Header("Access-Control-Allow-Headers", strings.Join(opts.AllowedHeaders, ", "))
			if opts.AllowCredentials {
				c.Header("Access-Control-Allow-Credentials", "true")
			}
			if c.Request.Method == http.MethodOptions {
				c.AbortWithStatus(http.StatusNoContent)
				return
			}
		}
		c.Next()
	}
}

func isOriginAllowed(origin string, allowedOrigins []string) bool {
	for _, allowed := range allowedOrigins {
		if allowed == "*" || allowed == origin {
			return true
		}
	}
	return false
}
