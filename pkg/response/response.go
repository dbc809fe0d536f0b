package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK sends 200 with a success message.
func OK(c *gin.Context, message string) {
	c.JSON(http.StatusOK, Resp{
		Success: true,
		Message: message,
	})
}

// Skipped sends 200 for events the relay deliberately does not handle.
// The source platform retries failed deliveries, so unsupported events
// must be acknowledged as success rather than rejected.
func Skipped(c *gin.Context) {
	c.JSON(http.StatusOK, Resp{
		Success: true,
		Message: MessageSkipped,
	})
}

// ValidationError sends 400 with the full list of field-level issues.
func ValidationError(c *gin.Context, issues []string) {
	c.JSON(http.StatusBadRequest, Resp{
		Success: false,
		Error:   issues,
	})
}

// Forbidden sends 403.
func Forbidden(c *gin.Context) {
	c.JSON(http.StatusForbidden, Resp{
		Success: false,
		Error:   "Forbidden",
	})
}

// MethodNotAllowed sends 405.
func MethodNotAllowed(c *gin.Context) {
	c.JSON(http.StatusMethodNotAllowed, Resp{
		Success: false,
		Error:   "Method not allowed",
	})
}

// NotFound sends 404.
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, Resp{
		Success: false,
		Error:   "Not found",
	})
}

// TooManyRequests sends 429.
func TooManyRequests(c *gin.Context) {
	c.JSON(http.StatusTooManyRequests, Resp{
		Success: false,
		Error:   "Rate limit exceeded",
	})
}

// InternalError sends 500 with a deliberately generic message so
// upstream failures never leak internals to the caller.
func InternalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, Resp{
		Success: false,
		Error:   DefaultErrorMessage,
	})
}
