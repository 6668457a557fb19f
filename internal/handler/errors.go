package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/scslimpo/hotspots-backend-go/internal/store"
	"github.com/scslimpo/hotspots-backend-go/pkg/response"
)

// fail translates store errors into HTTP responses
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, store.ErrInvalidTransition):
		response.Conflict(c, err.Error())
	case errors.Is(err, store.ErrInvalidInput):
		response.BadRequest(c, err.Error())
	default:
		response.InternalError(c, err.Error())
	}
}
