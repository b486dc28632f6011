package api

import (
	"errors"
	"fmt"
	"net/http"

	"fittrack/backend/internal/domain"
	"fittrack/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// OnboardingHandler serves the plan-generation endpoint.
type OnboardingHandler struct {
	onboardingService service.OnboardingService
}

// NewOnboardingHandler creates a new OnboardingHandler.
func NewOnboardingHandler(onboardingService service.OnboardingService) *OnboardingHandler {
	return &OnboardingHandler{onboardingService: onboardingService}
}

type OnboardingRequest struct {
	Age          int    `json:"age" binding:"required,gt=0"`
	Weight       int    `json:"weight" binding:"required,gt=0"`
	Goal         string `json:"goal" binding:"required"`
	FitnessLevel string `json:"fitnessLevel" binding:"required"`
	Equipment    string `json:"equipment" binding:"required"`
	// Minutes east of UTC; decides which calendar day "today" is for
	// the caller. Optional: omitted means the server's configured zone.
	TzOffsetMinutes *int `json:"tzOffsetMinutes"`
}

type OnboardingResponse struct {
	Message  string           `json:"message"`
	Created  bool             `json:"created"`
	Schedule *domain.Schedule `json:"schedule"`
}

// GeneratePlan saves onboarding answers and schedules the starter
// workout for today. 201 when an entry was created, 200 when today's
// entry already existed.
func (h *OnboardingHandler) GeneratePlan(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	var req OnboardingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	answers := domain.OnboardingAnswers{
		Age:          req.Age,
		Weight:       req.Weight,
		Goal:         domain.Goal(req.Goal),
		FitnessLevel: req.FitnessLevel,
		Equipment:    req.Equipment,
	}

	schedule, created, err := h.onboardingService.GeneratePlan(c.Request.Context(), userID, answers, req.TzOffsetMinutes)
	if err != nil {
		if errors.Is(err, service.ErrMissingAnswers) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else if errors.Is(err, service.ErrUserNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to generate plan")
		}
		return
	}

	status := http.StatusOK
	message := "Plan already generated for today"
	if created {
		status = http.StatusCreated
		message = "Plan generated successfully"
	}

	c.JSON(status, OnboardingResponse{
		Message:  message,
		Created:  created,
		Schedule: schedule,
	})
}
