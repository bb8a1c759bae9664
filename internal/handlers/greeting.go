// Package handlers contains HTTP request handlers for the QTS service.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// MessageResponse is the body shared by the root and greeting endpoints
type MessageResponse struct {
	Message string `json:"message"`
}

// GreetingHandler handles personalized greeting requests
// GET /hello/:name
func GreetingHandler(c *gin.Context) {
	name := c.Param("name")

	c.JSON(http.StatusOK, MessageResponse{
		Message: "Olá, " + name + "!",
	})
}
