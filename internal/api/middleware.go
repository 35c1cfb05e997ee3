package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/cors"
)

// Constants for context keys and headers
const (
	ContextRequestIDKey  = "requestID"
	RequestIDHeader      = "X-Request-ID"
	AnimationStateHeader = "X-Animation-State"
)

// RequestIDMiddleware tags every request with an ID, reusing the caller's
// X-Request-ID when it is a valid UUID.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Set(ContextRequestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// NewCORSHandler wraps the engine so browser clients on other origins can
// read the JSON API.
func NewCORSHandler(handler http.Handler, allowedOrigins []string) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", RequestIDHeader},
		ExposedHeaders: []string{RequestIDHeader, AnimationStateHeader},
	})
	return c.Handler(handler)
}

// Helper to return JSON error response and abort request
func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}

// Helper function to get the request ID from context (used by handlers)
func getRequestIDFromContext(c *gin.Context) string {
	id, ok := c.Get(ContextRequestIDKey)
	if !ok {
		return "-"
	}
	idStr, _ := id.(string)
	return idStr
}
