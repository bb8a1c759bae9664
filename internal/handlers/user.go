package handlers

import (
	"math/big"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// UserURI holds the path parameters of the user endpoint
type UserURI struct {
	UserID string `uri:"user_id"`
}

// UserResponse echoes the requested user ID and the optional q parameter.
// UserID is arbitrary precision; Q is nil when the query string carries no q at all.
type UserResponse struct {
	UserID *big.Int `json:"user_id"`
	Q      *string  `json:"q"`
}

// parseUserID accepts any base-10 integer, ignoring surrounding whitespace
func parseUserID(raw string) (*big.Int, bool) {
	return new(big.Int).SetString(strings.TrimSpace(raw), 10)
}

// UserHandler echoes a user ID and optional query value
// GET /user/:user_id?q=...
func UserHandler(c *gin.Context) {
	var uri UserURI
	if err := c.ShouldBindUri(&uri); err != nil {
		invalidUserID(c, c.Param("user_id"))
		return
	}

	userID, ok := parseUserID(uri.UserID)
	if !ok {
		invalidUserID(c, uri.UserID)
		return
	}

	var q *string
	if value, ok := c.GetQuery("q"); ok {
		q = &value
	}

	c.JSON(http.StatusOK, UserResponse{
		UserID: userID,
		Q:      q,
	})
}

func invalidUserID(c *gin.Context, input string) {
	c.JSON(http.StatusUnprocessableEntity, ValidationErrorResponse{
		Error:   "validation_error",
		Message: "Input should be a valid integer",
		Field:   "user_id",
		Input:   input,
	})
}
