package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/salonops/backoffice/internal/repository/mongodb"
	"github.com/salonops/backoffice/internal/service/auth"
)

const actorKey = "actor"

// Authenticate verifies the bearer token, resolves the caller's role
// permissions and stores an auth.Actor in the gin context. Requests without a
// valid session are rejected with 401 before any handler runs.
func Authenticate(authSvc *auth.Service, users mongodb.UserRepository, logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required."})
			return
		}

		userID, err := authSvc.VerifyToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required."})
			return
		}

		id, err := primitive.ObjectIDFromHex(userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required."})
			return
		}

		user, err := users.FindByID(c.Request.Context(), id)
		if err != nil {
			logger.Warn("token references unknown user", zap.String("user_id", userID), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required."})
			return
		}

		role, err := users.FindRole(c.Request.Context(), user.Role)
		if err != nil {
			logger.Warn("failed resolving role", zap.String("user_id", userID), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required."})
			return
		}

		c.Set(actorKey, auth.Actor{
			UserID:        user.ID.Hex(),
			Authenticated: true,
			Permissions:   role.Permissions,
		})
		c.Next()
	}
}

// SetActor stores an actor in the gin context, the same way Authenticate
// does. Exists so handler tests can run without a token round trip.
func SetActor(c *gin.Context, actor auth.Actor) {
	c.Set(actorKey, actor)
}

// ActorFromContext returns the actor stored by Authenticate. A request that
// bypassed the middleware yields the zero, unauthenticated Actor.
func ActorFromContext(c *gin.Context) auth.Actor {
	if value, exists := c.Get(actorKey); exists {
		if actor, ok := value.(auth.Actor); ok {
			return actor
		}
	}
	return auth.Actor{}
}
