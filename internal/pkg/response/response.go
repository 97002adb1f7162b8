package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
	})
}

// SuccessWithMessage renders data together with a human readable message.
func SuccessWithMessage(c *gin.Context, statusCode int, data interface{}, message string) {
	c.JSON(statusCode, gin.H{
		"success": true,
		"data":    data,
		"message": message,
	})
}

func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
		"message": message,
	})
}

func ErrorWithDetails(c *gin.Context, statusCode int, code string, message string, details any) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
			"details": details,
		},
		"message": message,
	})
}

// AbortError writes the error envelope and stops the handler chain.
func AbortError(c *gin.Context, statusCode int, code string, message string) {
	Error(c, statusCode, code, message)
	c.Abort()
}

// Internal renders a 500. The underlying error is attached to the gin context
// for the request logger and only echoed to the client in debug mode.
func Internal(c *gin.Context, err error, message string) {
	if err != nil {
		_ = c.Error(err)
	}
	if err != nil && gin.Mode() == gin.DebugMode {
		ErrorWithDetails(c, http.StatusInternalServerError, "INTERNAL_ERROR", message, err.Error())
		return
	}
	Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", message)
}
