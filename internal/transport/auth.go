package transport

import (
	"context"
	"net/http"
	"strings"

	"github.com/cogwell/cogniscreen/internal/access"
	"github.com/gin-gonic/gin"
)

// ActorResolver resolves an actor ID from a bearer token. It stands in for
// the external identity collaborator.
type ActorResolver interface {
	ResolveActor(ctx context.Context, token string) (string, error)
}

// AuthMiddleware enforces bearer token authentication and injects the
// resolved actor identity into the request context.
func AuthMiddleware(resolver ActorResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		token := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		actorID, err := resolver.ResolveActor(c.Request.Context(), token)
		if err != nil || actorID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid bearer token"})
			return
		}

		ctx := access.WithActor(c.Request.Context(), actorID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
