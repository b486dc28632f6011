package service

import (
	"context"
	"errors"
	"log"
	"time"

	"fittrack/backend/internal/domain"
	"fittrack/backend/internal/plan"
	"fittrack/backend/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrMissingAnswers = errors.New("age, weight, goal, fitness level, and equipment are required")
	ErrUserNotFound   = errors.New("user not found")
)

// OnboardingService turns questionnaire answers into the user's first
// scheduled workout.
type OnboardingService interface {
	// GeneratePlan persists the answers on the user, selects a starter
	// template for their goal, and schedules it for today. Running it
	// again on the same calendar day is a no-op: the existing entry is
	// returned with created=false.
	//
	// tzOffsetMinutes is the caller's offset east of UTC and decides
	// which calendar day "today" is; nil falls back to the configured
	// server location.
	GeneratePlan(ctx context.Context, userID primitive.ObjectID, answers domain.OnboardingAnswers, tzOffsetMinutes *int) (*domain.Schedule, bool, error)
}

type onboardingService struct {
	userRepo     repository.UserRepository
	workoutRepo  repository.WorkoutRepository
	scheduleRepo repository.ScheduleRepository
	location     *time.Location
	now          func() time.Time
}

// NewOnboardingService creates a new instance of onboardingService.
func NewOnboardingService(
	userRepo repository.UserRepository,
	workoutRepo repository.WorkoutRepository,
	scheduleRepo repository.ScheduleRepository,
	location *time.Location,
) OnboardingService {
	if location == nil {
		location = time.UTC
	}
	return &onboardingService{
		userRepo:     userRepo,
		workoutRepo:  workoutRepo,
		scheduleRepo: scheduleRepo,
		location:     location,
		now:          time.Now,
	}
}

func (s *onboardingService) GeneratePlan(ctx context.Context, userID primitive.ObjectID, answers domain.OnboardingAnswers, tzOffsetMinutes *int) (*domain.Schedule, bool, error) {
	// 1. Validate the answers before touching storage.
	if answers.Age <= 0 || answers.Weight <= 0 || answers.Goal == "" ||
		answers.FitnessLevel == "" || answers.Equipment == "" {
		return nil, false, ErrMissingAnswers
	}

	// 2. Persist answers onto the user record. Idempotent: a re-run
	// overwrites with the latest answers.
	if err := s.userRepo.SetOnboardingAnswers(ctx, userID, answers); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, false, ErrUserNotFound
		}
		return nil, false, err
	}

	// 3. Resolve "today" as a calendar date in the caller's timezone.
	today := s.today(tzOffsetMinutes)

	// 4. Build the starter workout for the goal.
	template := plan.Select(answers.Goal)
	workout := &domain.Workout{
		UserID:    userID,
		Name:      template.WorkoutName,
		Type:      string(answers.Goal),
		Exercises: template.Exercises,
	}
	workoutID, err := s.workoutRepo.Create(ctx, workout)
	if err != nil {
		return nil, false, err
	}

	// 5. Atomic insert-if-absent keyed on (user, today, onboarding).
	// The workout has to exist before the upsert, so when the entry was
	// already there we delete the template we just created instead of
	// leaving an orphan.
	entry := &domain.Schedule{
		UserID:    userID,
		WorkoutID: workoutID,
		Date:      today,
		Completed: false,
		Source:    domain.SourceOnboarding,
	}
	schedule, created, err := s.scheduleRepo.CreateIfAbsent(ctx, entry)
	if err != nil {
		return nil, false, err
	}
	if !created {
		if err := s.workoutRepo.Delete(ctx, workoutID); err != nil {
			log.Printf("WARN: failed to clean up unused onboarding workout %s: %v", workoutID.Hex(), err)
		}
	}

	return schedule, created, nil
}

func (s *onboardingService) today(tzOffsetMinutes *int) domain.Date {
	if tzOffsetMinutes != nil {
		return domain.DateAtOffset(s.now(), *tzOffsetMinutes)
	}
	return domain.DateOf(s.now().In(s.location))
}
