package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ValidationErrorResponse describes a request parameter that failed to bind
type ValidationErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Field   string `json:"field"`
	Input   string `json:"input"`
}

// NotFoundHandler answers every request that matches no registered route
func NotFoundHandler(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"error":   "not_found",
		"message": "Not Found",
	})
}
