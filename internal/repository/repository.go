package repository

import (
	"context"

	"fittrack/backend/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Error constants for the repository layer.
var (
	ErrNotFound     = RepositoryError("not found")
	ErrDuplicate    = RepositoryError("duplicate")
	ErrUpdateFailed = RepositoryError("update failed")
	ErrDeleteFailed = RepositoryError("delete failed")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	// SetOnboardingAnswers persists the questionnaire answers and marks
	// the user onboarded. Re-running overwrites the previous answers.
	SetOnboardingAnswers(ctx context.Context, id primitive.ObjectID, answers domain.OnboardingAnswers) error
}

// WorkoutRepository defines the interface for interacting with workout templates.
type WorkoutRepository interface {
	Create(ctx context.Context, workout *domain.Workout) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Workout, error)
	GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.Workout, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// ScheduleRepository defines the interface for interacting with schedule entries.
type ScheduleRepository interface {
	Create(ctx context.Context, schedule *domain.Schedule) (primitive.ObjectID, error)
	// CreateIfAbsent atomically inserts the entry unless one with the
	// same (user, date, source) already exists, in which case the
	// existing entry is returned with created=false. Backed by a unique
	// index, not a read-then-write.
	CreateIfAbsent(ctx context.Context, schedule *domain.Schedule) (*domain.Schedule, bool, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Schedule, error)
	GetByUserID(ctx context.Context, userID primitive.ObjectID, date *domain.Date) ([]domain.Schedule, error)
	// GetPendingByDate returns all incomplete entries for a calendar
	// date across all users (reminder job scan).
	GetPendingByDate(ctx context.Context, date domain.Date) ([]domain.Schedule, error)
	SetCompleted(ctx context.Context, id primitive.ObjectID, completed bool) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}
