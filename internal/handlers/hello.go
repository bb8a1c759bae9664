package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RootMessage is the fixed greeting served at the root endpoint
const RootMessage = "Olá QTS"

// HelloHandler handles the root endpoint
func HelloHandler(c *gin.Context) {
	c.JSON(http.StatusOK, MessageResponse{
		Message: RootMessage,
	})
}
