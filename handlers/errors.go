package handlers

import (
	"errors"
	"net/http"

	"petshop/services/booking"
	"petshop/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondBookingError maps the booking engine's typed errors onto HTTP
// statuses. Anything unrecognized is a 500 with a generic message; the real
// cause goes to the log, not the wire.
func respondBookingError(c *gin.Context, err error) {
	var (
		validationErr *booking.ValidationError
		notFoundErr   *booking.NotFoundError
		capacityErr   *booking.CapacityError
		transitionErr *booking.TransitionError
	)
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error(), "field": validationErr.Field})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundErr.Error()})
	case errors.As(err, &capacityErr):
		c.JSON(http.StatusConflict, gin.H{"error": capacityErr.Error()})
	case errors.As(err, &transitionErr):
		c.JSON(http.StatusConflict, gin.H{"error": transitionErr.Error()})
	default:
		utils.GetLogger().Error("unhandled booking error", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "internal server error", "")
	}
}
