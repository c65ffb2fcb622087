package response

import (
	"github.com/gin-gonic/gin"
)

// The mobile clients were built against flat JSON bodies: payload
// fields at the top level on success, {"error": "..."} on failure.
// Keep that contract instead of wrapping everything in an envelope.

// JSON writes a success payload as-is.
func JSON(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// Error writes {"error": message} with the given status code.
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"error": message})
}

// Common error responses
func BadRequest(c *gin.Context, message string) {
	Error(c, 400, message)
}

func Unauthorized(c *gin.Context, message string) {
	Error(c, 401, message)
}

func NotFound(c *gin.Context, message string) {
	Error(c, 404, message)
}

func MethodNotAllowed(c *gin.Context) {
	Error(c, 405, "Method Not Allowed")
}

func InternalServerError(c *gin.Context, message string) {
	Error(c, 500, message)
}
