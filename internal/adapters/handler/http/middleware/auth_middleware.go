package middleware

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/comitanigiacomo/hydrate-sync-engine/internal/core/domain"
	"github.com/gin-gonic/gin"
)

const (
	authorizationHeader = "Authorization"
	authorizationType   = "Bearer"
	// browsers cannot set headers on websocket upgrades
	tokenQueryParam     = "access_token"
	ContextProfileIDKey = "profileID"
)

type TokenValidator interface {
	ValidateToken(tokenString string) (string, error)
}

func AuthMiddleware(tokens TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := extractToken(c)
		if !ok {
			return
		}

		profileID, err := tokens.ValidateToken(tokenString)
		if errors.Is(err, domain.ErrUnauthorized) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}
		if err != nil {
			log.Printf("[AUTH] Token check failed: %v", err)
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "could not verify token, please try again"})
			return
		}

		c.Set(ContextProfileIDKey, profileID)

		c.Next()
	}
}

func extractToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader(authorizationHeader)
	if authHeader == "" {
		if token := c.Query(tokenQueryParam); token != "" {
			return token, true
		}
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization header required"})
		return "", false
	}

	fields := strings.Fields(authHeader)
	if len(fields) < 2 || fields[0] != authorizationType {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
		return "", false
	}

	return fields[1], true
}

func GetProfileID(c *gin.Context) (string, bool) {
	id, exists := c.Get(ContextProfileIDKey)
	if !exists {
		return "", false
	}
	idStr, ok := id.(string)
	return idStr, ok
}
