package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kutbudev/agri-api/internal/token"
)

const claimsKey = "claims"

// RequireAuth validates the bearer credential on the request and stores its
// claims in the gin context. Requests without a valid credential are
// rejected with a generic 401.
func (h *Handler) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c)
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			abortUnauthorized(c)
			return
		}

		claims, err := h.tokens.Parse(parts[1])
		if err != nil {
			abortUnauthorized(c)
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// currentClaims returns the claims stored by RequireAuth, or nil when the
// request was not authenticated.
func currentClaims(c *gin.Context) *token.Claims {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*token.Claims)
	return claims
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
}
