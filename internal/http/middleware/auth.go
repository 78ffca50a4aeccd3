package middleware

import (
	"net/http"

	"campuschat/internal/auth"
	"campuschat/internal/chat"

	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

// AuthMiddleware verifies the bearer token with the same verifier the
// websocket gateway uses, so both surfaces enforce identical rules.
func AuthMiddleware(v *auth.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := v.Verify(auth.TokenFromRequest(c.Request))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "authentication required"})
			return
		}
		c.Set(identityKey, identity)
		c.Next()
	}
}

func MustIdentity(c *gin.Context) chat.Identity {
	v, _ := c.Get(identityKey)
	return v.(chat.Identity)
}
