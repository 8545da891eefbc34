package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"karthika_back_end/internal/config"
)

// Every JSON response uses the same envelope:
// { success, data?, message?, error?, errors?, count? }

func respondData(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

func respondList(c *gin.Context, count int, data interface{}) {
	c.JSON(http.StatusOK, gin.H{"success": true, "count": count, "data": data})
}

func respondMessage(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": true, "message": message})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "message": message})
}

func respondValidation(c *gin.Context, messages []string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"message": "Validation error",
		"errors":  messages,
	})
}

// respondServerError hides raw error detail outside development mode.
func respondServerError(c *gin.Context, message string, err error) {
	body := gin.H{"success": false, "message": message}
	if err != nil && config.IsDevelopment() {
		body["error"] = err.Error()
	}
	c.JSON(http.StatusInternalServerError, body)
}
