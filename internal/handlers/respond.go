package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/RogerFilm/accounting/internal/apperrors"
	"github.com/RogerFilm/accounting/internal/dto"
)

// respondError maps service errors onto HTTP status codes. Validation errors
// carry their per-line details through to the client so a submitted entry can
// be fixed in one round trip.
func respondError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	var verr *apperrors.ValidationError
	switch {
	case errors.As(err, &verr):
		logger.Warn("Validation error", slog.String("error", verr.Message))
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message, "lineErrors": verr.LineErrors})
	case errors.Is(err, apperrors.ErrValidation),
		errors.Is(err, apperrors.ErrInvalidRange),
		errors.Is(err, apperrors.ErrUnknownBusinessType),
		errors.Is(err, apperrors.ErrUnsupportedMethod):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate),
		errors.Is(err, apperrors.ErrImmutableEntry):
		logger.Warn("Conflicting request", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

// bindPeriod reads the from/to query parameters every report endpoint takes.
func bindPeriod(c *gin.Context) (time.Time, time.Time, bool) {
	from, err := dto.ParseDate(c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid or missing 'from' date, expected YYYY-MM-DD"})
		return time.Time{}, time.Time{}, false
	}
	to, err := dto.ParseDate(c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid or missing 'to' date, expected YYYY-MM-DD"})
		return time.Time{}, time.Time{}, false
	}
	return from, to, true
}

// period echoes the requested range back in report responses.
func period(from, to time.Time) dto.ReportPeriod {
	return dto.ReportPeriod{From: from.Format(dto.DateLayout), To: to.Format(dto.DateLayout)}
}
