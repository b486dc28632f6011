package api

import (
	"net/http"
	"time"

	"fittrack/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// SetupRoutes wires all handlers onto the Gin engine.
func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	location *time.Location,
	authService service.AuthService,
	userService service.UserService,
	onboardingService service.OnboardingService,
	workoutService service.WorkoutService,
	scheduleService service.ScheduleService,
	statsService service.StatsService,
) {
	authHandler := NewAuthHandler(authService)
	userHandler := NewUserHandler(userService, authService)
	onboardingHandler := NewOnboardingHandler(onboardingService)
	workoutHandler := NewWorkoutHandler(workoutService)
	scheduleHandler := NewScheduleHandler(scheduleService)
	statsHandler := NewStatsHandler(statsService, location)

	authMiddleware := AuthMiddleware(jwtSecret)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		// --- Profile ---
		userGroup := protected.Group("/users/me")
		{
			userGroup.GET("", userHandler.GetMe)
			userGroup.PUT("", userHandler.UpdateMe)
			userGroup.POST("/avatar/upload-url", userHandler.AvatarUploadURL)
			userGroup.GET("/avatar/download-url", userHandler.AvatarDownloadURL)
		}

		// --- Onboarding ---
		protected.POST("/onboarding", onboardingHandler.GeneratePlan)

		// --- Workout templates ---
		workoutGroup := protected.Group("/workouts")
		{
			workoutGroup.POST("", workoutHandler.CreateWorkout)
			workoutGroup.GET("", workoutHandler.GetWorkouts)
		}

		// --- Calendar ---
		scheduleGroup := protected.Group("/schedule")
		{
			scheduleGroup.POST("", scheduleHandler.CreateSchedule)
			scheduleGroup.GET("", scheduleHandler.GetSchedule)
			scheduleGroup.GET("/:id", scheduleHandler.GetScheduleByID)
			scheduleGroup.PUT("/:id/complete", scheduleHandler.ToggleComplete)
			scheduleGroup.DELETE("/:id", scheduleHandler.DeleteSchedule)
		}

		// --- Stats ---
		protected.GET("/stats", statsHandler.GetStats)
	}
}
