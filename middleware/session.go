package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kendall-kelly/renovation-manager-api/models"
)

const currentUserKey = "current_user"

// CurrentUserProvider returns the logged-in user, or an error when nobody is
type CurrentUserProvider interface {
	Current() (models.User, error)
}

// RequireCurrentUser rejects requests while nobody is logged in and stores
// the current user in the Gin context for handlers
func RequireCurrentUser(sessions CurrentUserProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := sessions.Current()
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "NOT_AUTHENTICATED",
					"message": "Log in to access this resource",
				},
			})
			c.Abort()
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

// GetCurrentUser extracts the current user from the Gin context
func GetCurrentUser(c *gin.Context) (models.User, error) {
	value, exists := c.Get(currentUserKey)
	if !exists {
		return models.User{}, &AuthError{Code: "MISSING_USER", Message: "Current user not found in context"}
	}

	user, ok := value.(models.User)
	if !ok {
		return models.User{}, &AuthError{Code: "INVALID_USER", Message: "Current user is not in the expected format"}
	}

	return user, nil
}

// AuthError represents an authentication error
type AuthError struct {
	Code    string
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}
