package api

import (
	"errors"
	"fmt"
	"net/http"

	"fittrack/backend/internal/domain"
	"fittrack/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// WorkoutHandler serves the workout-template endpoints.
type WorkoutHandler struct {
	workoutService service.WorkoutService
}

// NewWorkoutHandler creates a new WorkoutHandler.
func NewWorkoutHandler(workoutService service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService}
}

type CreateWorkoutRequest struct {
	Name      string            `json:"name" binding:"required"`
	Type      string            `json:"type" binding:"required"`
	Exercises []domain.Exercise `json:"exercises" binding:"required,min=1,dive"`
}

// CreateWorkout creates a workout template owned by the caller.
func (h *WorkoutHandler) CreateWorkout(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	var req CreateWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	workout, err := h.workoutService.Create(c.Request.Context(), userID, req.Name, req.Type, req.Exercises)
	if err != nil {
		if errors.Is(err, service.ErrInvalidWorkout) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to create workout")
		}
		return
	}

	c.JSON(http.StatusCreated, workout)
}

// GetWorkouts lists the caller's workout templates.
func (h *WorkoutHandler) GetWorkouts(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	workouts, err := h.workoutService.List(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to fetch workouts")
		return
	}

	c.JSON(http.StatusOK, workouts)
}
