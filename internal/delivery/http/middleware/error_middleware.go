package middleware

import (
	"errors"
	"net/http"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/logger"
	"go-jobboard-backend/pkg/security"

	"github.com/gin-gonic/gin"
)

const internalErrorMessage = "An unexpected error occurred. Please try again later."

func ErrorHandler(secLog *security.SecurityLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if !errors.As(err, &appErr) {
			// Never expose internal error details to clients.
			logger.FromContext(c.Request.Context()).Error("request failed", "error", err, "path", c.FullPath())
			response.Error(c, http.StatusInternalServerError, internalErrorMessage)
			return
		}

		if appErr.Code >= http.StatusInternalServerError {
			logger.FromContext(c.Request.Context()).Error("request failed", "error", appErr.Err, "path", c.FullPath())
			response.Error(c, appErr.Code, internalErrorMessage)
			return
		}

		if appErr.Code == http.StatusForbidden {
			logSecurityEvent(c, secLog, security.EventIdentityMismatch, c.GetString(string(domain.KeyUserEmail)), map[string]interface{}{
				"path_email_hash": security.HashValue(c.Param("email")),
			})
		}

		if appErr.Plain {
			response.Plain(c, appErr.Code, appErr.Message)
			return
		}
		response.Error(c, appErr.Code, appErr.Message)
	}
}

// Recovery turns a panic anywhere below it into the generic 500 body.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.FromContext(c.Request.Context()).Error("panic recovered", "panic", recovered, "path", c.FullPath())
		response.Error(c, http.StatusInternalServerError, internalErrorMessage)
		c.Abort()
	})
}
