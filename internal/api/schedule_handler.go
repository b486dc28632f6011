package api

import (
	"errors"
	"fmt"
	"net/http"

	"fittrack/backend/internal/domain"
	"fittrack/backend/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ScheduleHandler serves the workout calendar endpoints.
type ScheduleHandler struct {
	scheduleService service.ScheduleService
}

// NewScheduleHandler creates a new ScheduleHandler.
func NewScheduleHandler(scheduleService service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleService: scheduleService}
}

type CreateScheduleRequest struct {
	WorkoutID string `json:"workoutId" binding:"required"`
	Date      string `json:"date" binding:"required"`
}

// CreateSchedule puts a workout on the calendar for a specific date.
func (h *ScheduleHandler) CreateSchedule(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	var req CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	workoutID, err := primitive.ObjectIDFromHex(req.WorkoutID)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid workout ID format")
		return
	}
	date, err := domain.ParseDate(req.Date)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	schedule, err := h.scheduleService.Create(c.Request.Context(), userID, workoutID, date)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrWorkoutNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrNotWorkoutOwner):
			abortWithError(c, http.StatusForbidden, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to create schedule")
		}
		return
	}

	c.JSON(http.StatusCreated, schedule)
}

// GetSchedule lists the caller's entries, optionally filtered by
// ?date=YYYY-MM-DD, with workouts embedded.
func (h *ScheduleHandler) GetSchedule(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	var date *domain.Date
	if raw := c.Query("date"); raw != "" {
		parsed, err := domain.ParseDate(raw)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		date = &parsed
	}

	schedules, err := h.scheduleService.List(c.Request.Context(), userID, date)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to fetch schedule")
		return
	}

	c.JSON(http.StatusOK, schedules)
}

// GetScheduleByID returns a single entry with its workout embedded.
func (h *ScheduleHandler) GetScheduleByID(c *gin.Context) {
	scheduleID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid schedule ID format")
		return
	}

	schedule, err := h.scheduleService.Get(c.Request.Context(), scheduleID)
	if err != nil {
		if errors.Is(err, service.ErrScheduleNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to fetch schedule")
		}
		return
	}

	c.JSON(http.StatusOK, schedule)
}

// ToggleComplete flips the completion flag of an entry.
func (h *ScheduleHandler) ToggleComplete(c *gin.Context) {
	scheduleID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid schedule ID format")
		return
	}

	schedule, err := h.scheduleService.ToggleCompletion(c.Request.Context(), scheduleID)
	if err != nil {
		if errors.Is(err, service.ErrScheduleNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to update schedule")
		}
		return
	}

	c.JSON(http.StatusOK, schedule)
}

// DeleteSchedule removes an entry the caller owns.
func (h *ScheduleHandler) DeleteSchedule(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	scheduleID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid schedule ID format")
		return
	}

	deletedID, err := h.scheduleService.Delete(c.Request.Context(), scheduleID, userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrScheduleNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrNotScheduleOwner):
			abortWithError(c, http.StatusForbidden, "Not authorized to delete this schedule")
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to delete schedule")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": deletedID.Hex(), "message": "Schedule deleted"})
}
