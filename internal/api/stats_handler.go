package api

import (
	"net/http"
	"strconv"
	"time"

	"fittrack/backend/internal/domain"
	"fittrack/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// StatsHandler serves the derived streak/badge summary.
type StatsHandler struct {
	statsService service.StatsService
	location     *time.Location
}

// NewStatsHandler creates a new StatsHandler. location is the fallback
// timezone when the client sends no tz_offset.
func NewStatsHandler(statsService service.StatsService, location *time.Location) *StatsHandler {
	if location == nil {
		location = time.UTC
	}
	return &StatsHandler{
		statsService: statsService,
		location:     location,
	}
}

// GetStats returns totals, current streak, and badge state. The streak
// is evaluated against the caller's "today": ?tz_offset=<minutes east
// of UTC> shifts the evaluation date for clients in other timezones.
func (h *StatsHandler) GetStats(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	today := domain.DateOf(time.Now().In(h.location))
	if raw := c.Query("tz_offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "tz_offset must be an integer number of minutes")
			return
		}
		today = domain.DateAtOffset(time.Now(), offset)
	}

	summary, err := h.statsService.Summary(c.Request.Context(), userID, today)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to compute stats")
		return
	}

	c.JSON(http.StatusOK, summary)
}
