package utils

import (
	"errors"
	"net/http"

	"github.com/acastell/restobook/models"
	"github.com/gin-gonic/gin"
)

type JSONResponse struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondJSON(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, JSONResponse{
		Status:  code >= 200 && code < 300,
		Message: message,
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, err error) {
	c.JSON(code, JSONResponse{
		Status:  false,
		Message: err.Error(),
		Data:    nil,
	})
}

// RespondDomainError maps a business-rule error kind to its HTTP status.
// Anything unrecognized counts as a storage failure.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrCustomerNotFound),
		errors.Is(err, models.ErrTableNotFound),
		errors.Is(err, models.ErrReservationNotFound):
		RespondError(c, http.StatusNotFound, err)
	case errors.Is(err, models.ErrOverlappingReservation),
		errors.Is(err, models.ErrTableUnavailable),
		errors.Is(err, models.ErrDuplicateKey),
		errors.Is(err, models.ErrHasActiveReservations),
		errors.Is(err, models.ErrTableHasReservations),
		errors.Is(err, models.ErrInvalidTransition):
		RespondError(c, http.StatusConflict, err)
	case errors.Is(err, models.ErrOutOfHours),
		errors.Is(err, models.ErrPastStartTime),
		errors.Is(err, models.ErrCapacityExceeded),
		errors.Is(err, models.ErrCancellationNotAllowed):
		RespondError(c, http.StatusBadRequest, err)
	default:
		ErrorLogger.Printf("unexpected error: %v", err)
		RespondError(c, http.StatusInternalServerError, err)
	}
}
