package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/MK-1512/gadget-galaxy/apperrors"
	"github.com/MK-1512/gadget-galaxy/services"
)

// EmailKey is the context key the auth guard stores the session email under.
const EmailKey = "email"

// AuthMiddleware requires a valid bearer session token that matches the
// currently logged-in user. Rejections are attached as errors for the
// error middleware to render.
func AuthMiddleware(tokens *services.TokenService, auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.Error(apperrors.New(http.StatusUnauthorized, "missing bearer token", nil))
			c.Abort()
			return
		}

		email, err := tokens.Validate(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.Error(apperrors.New(http.StatusUnauthorized, "invalid or expired token", err))
			c.Abort()
			return
		}

		current := auth.Current()
		if !current.IsAuthenticated || current.User == nil || current.User.Email != email {
			c.Error(apperrors.New(http.StatusUnauthorized, "no active session for token", nil))
			c.Abort()
			return
		}

		c.Set(EmailKey, email)
		c.Next()
	}
}
