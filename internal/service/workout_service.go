package service

import (
	"context"
	"errors"

	"fittrack/backend/internal/domain"
	"fittrack/backend/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrInvalidWorkout = errors.New("workout name, type, and at least one exercise are required")

// WorkoutService manages user-created workout templates.
type WorkoutService interface {
	Create(ctx context.Context, userID primitive.ObjectID, name, workoutType string, exercises []domain.Exercise) (*domain.Workout, error)
	List(ctx context.Context, userID primitive.ObjectID) ([]domain.Workout, error)
}

type workoutService struct {
	workoutRepo repository.WorkoutRepository
}

// NewWorkoutService creates a new instance of workoutService.
func NewWorkoutService(workoutRepo repository.WorkoutRepository) WorkoutService {
	return &workoutService{workoutRepo: workoutRepo}
}

func (s *workoutService) Create(ctx context.Context, userID primitive.ObjectID, name, workoutType string, exercises []domain.Exercise) (*domain.Workout, error) {
	if name == "" || workoutType == "" || len(exercises) == 0 {
		return nil, ErrInvalidWorkout
	}

	workout := &domain.Workout{
		UserID:    userID,
		Name:      name,
		Type:      workoutType,
		Exercises: exercises,
	}
	if _, err := s.workoutRepo.Create(ctx, workout); err != nil {
		return nil, err
	}
	return workout, nil
}

func (s *workoutService) List(ctx context.Context, userID primitive.ObjectID) ([]domain.Workout, error) {
	return s.workoutRepo.GetByUserID(ctx, userID)
}
