package helpers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ResponseSuccess writes the standard success envelope.
func ResponseSuccess(c *gin.Context, data interface{}, status int, message string) {
	c.JSON(status, gin.H{
		"success": true,
		"message": message,
		"data":    data,
	})
}

// ResponseError writes the standard error envelope, resolving the status
// from the error's taxonomy.
func ResponseError(c *gin.Context, err error) {
	status := StatusOf(err)
	message := err.Error()

	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Err != nil {
		c.JSON(status, gin.H{
			"success": false,
			"message": message,
			"error":   appErr.Err.Error(),
		})
		return
	}
	if status == http.StatusInternalServerError {
		message = "internal server error"
	}
	c.JSON(status, gin.H{
		"success": false,
		"message": message,
	})
}
