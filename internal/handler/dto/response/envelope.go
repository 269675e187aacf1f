package response

import (
	"net/http"

	"legal-storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// Envelope wraps every successful payload. Failures use httperr.Response.
type Envelope[T any] struct {
	Success bool `json:"success"`
	Data    T    `json:"data"`
}

type LoginResponse struct {
	Success     bool             `json:"success"`
	User        queries.UserView `json:"user"`
	AccessToken string           `json:"accessToken"`
}

type MessageData struct {
	Message string `json:"message"`
}

type URLData struct {
	URL string `json:"url"`
}

type FavoriteData struct {
	Favorite bool `json:"favorite"`
}

func OK[T any](c *gin.Context, data T) {
	c.JSON(http.StatusOK, Envelope[T]{Success: true, Data: data})
}

func Created[T any](c *gin.Context, data T) {
	c.JSON(http.StatusCreated, Envelope[T]{Success: true, Data: data})
}

func Message(c *gin.Context, msg string) {
	OK(c, MessageData{Message: msg})
}
