package service

import (
	"context"
	"errors"

	"fittrack/backend/internal/domain"
	"fittrack/backend/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrScheduleNotFound = errors.New("schedule not found")
	ErrWorkoutNotFound  = errors.New("workout not found")
	ErrNotScheduleOwner = errors.New("schedule does not belong to this user")
	ErrNotWorkoutOwner  = errors.New("workout does not belong to this user")
)

// ScheduleService manages the workout calendar.
type ScheduleService interface {
	Create(ctx context.Context, userID, workoutID primitive.ObjectID, date domain.Date) (*domain.Schedule, error)
	List(ctx context.Context, userID primitive.ObjectID, date *domain.Date) ([]domain.ScheduleWithWorkout, error)
	Get(ctx context.Context, id primitive.ObjectID) (*domain.ScheduleWithWorkout, error)
	// ToggleCompletion flips the completed flag: calling it twice puts
	// the entry back where it started. Kept as a toggle, and isolated
	// here, so a switch to idempotent mark-complete touches one method.
	ToggleCompletion(ctx context.Context, id primitive.ObjectID) (*domain.Schedule, error)
	// Delete removes an entry after verifying ownership and returns the
	// removed id.
	Delete(ctx context.Context, id, requestingUserID primitive.ObjectID) (primitive.ObjectID, error)
}

type scheduleService struct {
	scheduleRepo repository.ScheduleRepository
	workoutRepo  repository.WorkoutRepository
}

// NewScheduleService creates a new instance of scheduleService.
func NewScheduleService(scheduleRepo repository.ScheduleRepository, workoutRepo repository.WorkoutRepository) ScheduleService {
	return &scheduleService{
		scheduleRepo: scheduleRepo,
		workoutRepo:  workoutRepo,
	}
}

// Create schedules a workout the user owns for a specific date.
func (s *scheduleService) Create(ctx context.Context, userID, workoutID primitive.ObjectID, date domain.Date) (*domain.Schedule, error) {
	workout, err := s.workoutRepo.GetByID(ctx, workoutID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}
	if workout.UserID != userID {
		return nil, ErrNotWorkoutOwner
	}

	entry := &domain.Schedule{
		UserID:    userID,
		WorkoutID: workoutID,
		Date:      date,
		Completed: false,
		Source:    domain.SourceManual,
	}
	if _, err := s.scheduleRepo.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// List returns the user's entries, optionally for one day, with each
// entry's workout embedded.
func (s *scheduleService) List(ctx context.Context, userID primitive.ObjectID, date *domain.Date) ([]domain.ScheduleWithWorkout, error) {
	schedules, err := s.scheduleRepo.GetByUserID(ctx, userID, date)
	if err != nil {
		return nil, err
	}

	// Several entries commonly share a workout template; fetch each
	// template once.
	workouts := make(map[primitive.ObjectID]*domain.Workout)
	result := make([]domain.ScheduleWithWorkout, 0, len(schedules))
	for _, entry := range schedules {
		workout, ok := workouts[entry.WorkoutID]
		if !ok {
			workout, err = s.workoutRepo.GetByID(ctx, entry.WorkoutID)
			if err != nil && !errors.Is(err, repository.ErrNotFound) {
				return nil, err
			}
			workouts[entry.WorkoutID] = workout // nil when the template vanished
		}
		result = append(result, domain.ScheduleWithWorkout{Schedule: entry, Workout: workout})
	}
	return result, nil
}

// Get returns a single entry with its workout embedded.
func (s *scheduleService) Get(ctx context.Context, id primitive.ObjectID) (*domain.ScheduleWithWorkout, error) {
	entry, err := s.scheduleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrScheduleNotFound
		}
		return nil, err
	}

	workout, err := s.workoutRepo.GetByID(ctx, entry.WorkoutID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	return &domain.ScheduleWithWorkout{Schedule: *entry, Workout: workout}, nil
}

func (s *scheduleService) ToggleCompletion(ctx context.Context, id primitive.ObjectID) (*domain.Schedule, error) {
	entry, err := s.scheduleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrScheduleNotFound
		}
		return nil, err
	}

	entry.Completed = !entry.Completed
	if err := s.scheduleRepo.SetCompleted(ctx, id, entry.Completed); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrScheduleNotFound
		}
		return nil, err
	}
	return entry, nil
}

func (s *scheduleService) Delete(ctx context.Context, id, requestingUserID primitive.ObjectID) (primitive.ObjectID, error) {
	entry, err := s.scheduleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return primitive.NilObjectID, ErrScheduleNotFound
		}
		return primitive.NilObjectID, err
	}

	if entry.UserID != requestingUserID {
		return primitive.NilObjectID, ErrNotScheduleOwner
	}

	if err := s.scheduleRepo.Delete(ctx, id); err != nil {
		return primitive.NilObjectID, err
	}
	return id, nil
}
