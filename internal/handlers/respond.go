package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/ecoevent/internal/helpers"
	"github.com/joshua-takyi/ecoevent/internal/services"
)

// respondError maps service errors onto status codes. Anything unknown is
// handed to the error middleware, which answers 500.
func respondError(c *gin.Context, err error) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, helpers.ErrorResponse(verr.Message))
	case errors.Is(err, services.ErrAlreadyJoined):
		c.JSON(http.StatusBadRequest, helpers.ErrorResponse("Already joined!"))
	case errors.Is(err, services.ErrForbidden):
		c.JSON(http.StatusForbidden, helpers.ErrorResponse("Access denied"))
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, helpers.ErrorResponse("Event not found"))
	default:
		_ = c.Error(err)
	}
}
