package main

import (
	"errors"
	"net/http"

	"glacierwatch/models"
	"glacierwatch/pkg/geo"

	"github.com/gin-gonic/gin"
)

// Error taxonomy shared by the repository layer; handlers translate these to
// HTTP statuses in one place.
var (
	errNotFound     = errors.New("not found")
	errConflict     = errors.New("already exists")
	errUnauthorized = errors.New("invalid API key")
)

func httpStatus(err error) int {
	switch {
	case errors.Is(err, errNotFound):
		return http.StatusNotFound
	case errors.Is(err, errUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, errConflict),
		errors.Is(err, models.ErrUnknownStatus),
		errors.Is(err, geo.ErrMalformedGeometry):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// abortWithError logs and writes the JSON error response. Internal failures
// are not echoed back to the client.
func abortWithError(c *gin.Context, err error, keysAndValues ...any) {
	status := httpStatus(err)
	logger.Errorw(err.Error(), append(keysAndValues, "status", status)...)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "internal server error"
	}
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}
