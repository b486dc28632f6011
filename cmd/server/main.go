package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fittrack/backend/internal/api"
	"fittrack/backend/internal/config"
	"fittrack/backend/internal/job"
	"fittrack/backend/internal/notify"
	"fittrack/backend/internal/repository/mongo"
	"fittrack/backend/internal/service"
	"fittrack/backend/internal/storage"

	"github.com/gin-gonic/gin"
)

func main() {
	log.Println("Starting FitTrack server...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}

	location, err := time.LoadLocation(cfg.Reminder.Timezone)
	if err != nil {
		log.Fatalf("FATAL: Invalid reminder timezone %q: %v", cfg.Reminder.Timezone, err)
	}

	// --- Database Connection ---
	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		log.Fatalf("FATAL: Could not connect to MongoDB: %v", err)
	}
	defer func() {
		log.Println("Disconnecting MongoDB...")
		if err := mongo.DisconnectDB(dbClient); err != nil {
			log.Printf("ERROR: Failed to disconnect MongoDB: %v", err)
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)
	log.Println("Database connection established.")

	// --- Ensure Indexes ---
	// The schedule indexes include the unique key the onboarding
	// insert-if-absent relies on, so failures here are worth logging.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()
		if err := mongo.EnsureUserIndexes(ctx, appDB.Collection("users")); err != nil {
			log.Printf("WARN: user index creation failed: %v", err)
		}
		if err := mongo.EnsureWorkoutIndexes(ctx, appDB.Collection("workouts")); err != nil {
			log.Printf("WARN: workout index creation failed: %v", err)
		}
		if err := mongo.EnsureScheduleIndexes(ctx, appDB.Collection("schedules")); err != nil {
			log.Printf("WARN: schedule index creation failed: %v", err)
		}
	}()

	// --- Initialize Storage ---
	fileStorage, err := storage.NewS3Storage(cfg.S3)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize S3 storage: %v", err)
	}

	// --- Initialize Repositories ---
	userRepo := mongo.NewMongoUserRepository(appDB)
	workoutRepo := mongo.NewMongoWorkoutRepository(appDB)
	scheduleRepo := mongo.NewMongoScheduleRepository(appDB)

	// --- Initialize Services ---
	authService := service.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.Expiration)
	userService := service.NewUserService(userRepo, fileStorage)
	onboardingService := service.NewOnboardingService(userRepo, workoutRepo, scheduleRepo, location)
	workoutService := service.NewWorkoutService(workoutRepo)
	scheduleService := service.NewScheduleService(scheduleRepo, workoutRepo)
	statsService := service.NewStatsService(scheduleRepo)

	// --- Reminder Job ---
	jobCtx, cancelJob := context.WithCancel(context.Background())
	defer cancelJob()
	if cfg.Reminder.Enabled {
		mailer, err := notify.NewSESMailer(cfg.Email)
		if err != nil {
			log.Fatalf("FATAL: Failed to initialize SES mailer: %v", err)
		}
		reminder := job.NewReminder(scheduleRepo, workoutRepo, userRepo, mailer,
			location, cfg.Reminder.Hour, cfg.Email.DashboardURL)
		go reminder.Start(jobCtx)
	} else {
		log.Println("Reminder job disabled by configuration.")
	}

	// --- Initialize Gin Engine ---
	router := gin.Default() // Includes Logger and Recovery middleware

	// --- Setup Routes ---
	api.SetupRoutes(router, cfg.JWT.Secret, location,
		authService, userService, onboardingService,
		workoutService, scheduleService, statsService)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("Server starting on %s", cfg.Server.Address)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: ListenAndServe Error: %v", err)
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")
	cancelJob()

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("FATAL: Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}
