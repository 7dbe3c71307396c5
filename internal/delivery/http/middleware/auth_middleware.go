package middleware

import (
	"context"
	"net/http"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/auth"
	"go-jobboard-backend/pkg/logger"
	"go-jobboard-backend/pkg/security"

	"github.com/gin-gonic/gin"
)

// TokenCookie carries the session token issued by POST /jwt.
const TokenCookie = "token"

const unauthorizedMessage = "unauthorized access"

// AuthMiddleware verifies the session cookie and exposes the token email to
// handlers (gin context) and usecases (request context).
func AuthMiddleware(tokens *auth.TokenService, secLog *security.SecurityLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(TokenCookie)
		if err != nil || tokenString == "" {
			logSecurityEvent(c, secLog, security.EventMissingToken, "", nil)
			response.Error(c, http.StatusUnauthorized, unauthorizedMessage)
			c.Abort()
			return
		}

		identity, err := tokens.Parse(tokenString)
		if err != nil {
			logSecurityEvent(c, secLog, security.EventInvalidToken, "", map[string]interface{}{
				"error": err.Error(),
			})
			response.Error(c, http.StatusUnauthorized, unauthorizedMessage)
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUserEmail), identity.Email)
		c.Set(string(domain.KeyClaims), identity.Claims)

		ctx := context.WithValue(c.Request.Context(), domain.KeyUserEmail, identity.Email)
		ctx = context.WithValue(ctx, domain.KeyClaims, identity.Claims)
		c.Request = c.Request.WithContext(logger.WithEmail(ctx, identity.Email))

		c.Next()
	}
}

// RequireRole admits the request only when the stored user behind the token
// currently holds role. Must run after AuthMiddleware.
func RequireRole(users domain.UserUsecase, role string, secLog *security.SecurityLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString(string(domain.KeyUserEmail))
		if email == "" {
			response.Error(c, http.StatusUnauthorized, unauthorizedMessage)
			c.Abort()
			return
		}

		ok, err := users.HasRole(c.Request.Context(), email, role)
		if err != nil {
			c.Error(err)
			c.Abort()
			return
		}
		if !ok {
			logSecurityEvent(c, secLog, security.EventRoleDenied, email, map[string]interface{}{
				"required_role": role,
			})
			response.Error(c, http.StatusUnauthorized, unauthorizedMessage)
			c.Abort()
			return
		}

		c.Next()
	}
}

func logSecurityEvent(c *gin.Context, secLog *security.SecurityLogger, event security.EventType, email string, details map[string]interface{}) {
	secLog.Log(c.Request.Context(), security.SecurityEvent{
		Event:     event,
		Email:     email,
		IP:        c.ClientIP(),
		UserAgent: c.GetHeader("User-Agent"),
		RequestID: c.GetString(string(domain.KeyRequestID)),
		Path:      c.FullPath(),
		Details:   details,
	})
}
