package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	apperrors "github.com/petbloom/backend/pkg/errors"
	"github.com/petbloom/backend/services"
)

const (
	UserContextKey  = "userID"
	EmailContextKey = "userEmail"
)

// AuthMiddleware resolves the Authorization header into a principal and
// aborts with 401 before any storage access when it cannot.
func AuthMiddleware(tokens *services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, err := tokens.ResolveBearer(c.GetHeader("Authorization"))
		if err != nil {
			apperrors.HandleGin(c, err)
			c.Abort()
			return
		}

		userID, err := uuid.Parse(principal.Subject)
		if err != nil {
			apperrors.HandleGin(c, apperrors.Wrap(apperrors.ErrInvalidToken, err))
			c.Abort()
			return
		}

		c.Set(UserContextKey, userID)
		c.Set(EmailContextKey, principal.Email)
		c.Next()
	}
}

// GetUserID returns the authenticated user's id from the gin context.
func GetUserID(c *gin.Context) (uuid.UUID, error) {
	if val, ok := c.Get(UserContextKey); ok {
		if id, ok := val.(uuid.UUID); ok {
			return id, nil
		}
	}
	return uuid.Nil, errors.New("user ID not found in context")
}
