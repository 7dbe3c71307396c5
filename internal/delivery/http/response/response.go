package response

import (
	"github.com/gin-gonic/gin"
)

// ErrorBody is the JSON envelope of every non-plain error response
type ErrorBody struct {
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// Success writes data as the bare JSON body. Store documents, arrays and
// acknowledgements go out exactly as the frontend reads them.
func Success(c *gin.Context, code int, data interface{}) {
	c.JSON(code, data)
}

// Error sends an error response
func Error(c *gin.Context, code int, message string) {
	reqID, _ := c.Get("RequestID")
	idStr, _ := reqID.(string) // Safe type assertion

	c.JSON(code, ErrorBody{
		Message:   message,
		RequestID: idStr,
	})
}

// Plain sends message as a text/plain body.
func Plain(c *gin.Context, code int, message string) {
	c.String(code, message)
}
