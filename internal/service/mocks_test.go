package service

import (
	"context"
	"time"

	"fittrack/backend/internal/domain"
	"fittrack/backend/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory repository fakes. They mirror the Mongo implementations'
// observable behavior, including the unique-key semantics of
// CreateIfAbsent, so service logic can be exercised without a database.

type memUserRepo struct {
	users map[primitive.ObjectID]*domain.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[primitive.ObjectID]*domain.User)}
}

func (r *memUserRepo) Create(_ context.Context, user *domain.User) (primitive.ObjectID, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return primitive.NilObjectID, repository.ErrDuplicate
		}
	}
	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now().UTC()
	user.UpdatedAt = user.CreatedAt
	clone := *user
	r.users[user.ID] = &clone
	return user.ID, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memUserRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *memUserRepo) Update(_ context.Context, user *domain.User) error {
	u, ok := r.users[user.ID]
	if !ok {
		return repository.ErrNotFound
	}
	u.Name = user.Name
	u.Avatar = user.Avatar
	u.PasswordHash = user.PasswordHash
	u.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *memUserRepo) SetOnboardingAnswers(_ context.Context, id primitive.ObjectID, answers domain.OnboardingAnswers) error {
	u, ok := r.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	u.Age = answers.Age
	u.Weight = answers.Weight
	u.Goal = answers.Goal
	u.FitnessLevel = answers.FitnessLevel
	u.Equipment = answers.Equipment
	u.IsOnboarded = true
	return nil
}

type memWorkoutRepo struct {
	workouts map[primitive.ObjectID]*domain.Workout
}

func newMemWorkoutRepo() *memWorkoutRepo {
	return &memWorkoutRepo{workouts: make(map[primitive.ObjectID]*domain.Workout)}
}

func (r *memWorkoutRepo) Create(_ context.Context, workout *domain.Workout) (primitive.ObjectID, error) {
	workout.ID = primitive.NewObjectID()
	workout.CreatedAt = time.Now().UTC()
	workout.UpdatedAt = workout.CreatedAt
	clone := *workout
	r.workouts[workout.ID] = &clone
	return workout.ID, nil
}

func (r *memWorkoutRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Workout, error) {
	w, ok := r.workouts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	clone := *w
	return &clone, nil
}

func (r *memWorkoutRepo) GetByUserID(_ context.Context, userID primitive.ObjectID) ([]domain.Workout, error) {
	result := []domain.Workout{}
	for _, w := range r.workouts {
		if w.UserID == userID {
			result = append(result, *w)
		}
	}
	return result, nil
}

func (r *memWorkoutRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := r.workouts[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.workouts, id)
	return nil
}

type memScheduleRepo struct {
	schedules map[primitive.ObjectID]*domain.Schedule
}

func newMemScheduleRepo() *memScheduleRepo {
	return &memScheduleRepo{schedules: make(map[primitive.ObjectID]*domain.Schedule)}
}

func (r *memScheduleRepo) Create(_ context.Context, schedule *domain.Schedule) (primitive.ObjectID, error) {
	if schedule.Source == "" {
		schedule.Source = domain.SourceManual
	}
	schedule.ID = primitive.NewObjectID()
	schedule.CreatedAt = time.Now().UTC()
	schedule.UpdatedAt = schedule.CreatedAt
	clone := *schedule
	r.schedules[schedule.ID] = &clone
	return schedule.ID, nil
}

func (r *memScheduleRepo) CreateIfAbsent(ctx context.Context, schedule *domain.Schedule) (*domain.Schedule, bool, error) {
	for _, s := range r.schedules {
		if s.UserID == schedule.UserID && s.Date == schedule.Date && s.Source == schedule.Source {
			clone := *s
			return &clone, false, nil
		}
	}
	if _, err := r.Create(ctx, schedule); err != nil {
		return nil, false, err
	}
	clone := *schedule
	return &clone, true, nil
}

func (r *memScheduleRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Schedule, error) {
	s, ok := r.schedules[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	clone := *s
	return &clone, nil
}

func (r *memScheduleRepo) GetByUserID(_ context.Context, userID primitive.ObjectID, date *domain.Date) ([]domain.Schedule, error) {
	result := []domain.Schedule{}
	for _, s := range r.schedules {
		if s.UserID != userID {
			continue
		}
		if date != nil && s.Date != *date {
			continue
		}
		result = append(result, *s)
	}
	return result, nil
}

func (r *memScheduleRepo) GetPendingByDate(_ context.Context, date domain.Date) ([]domain.Schedule, error) {
	result := []domain.Schedule{}
	for _, s := range r.schedules {
		if s.Date == date && !s.Completed {
			result = append(result, *s)
		}
	}
	return result, nil
}

func (r *memScheduleRepo) SetCompleted(_ context.Context, id primitive.ObjectID, completed bool) error {
	s, ok := r.schedules[id]
	if !ok {
		return repository.ErrNotFound
	}
	s.Completed = completed
	s.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *memScheduleRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := r.schedules[id]; !ok {
		return repository.ErrDeleteFailed
	}
	delete(r.schedules, id)
	return nil
}

// Interface conformance checks.
var (
	_ repository.UserRepository     = (*memUserRepo)(nil)
	_ repository.WorkoutRepository  = (*memWorkoutRepo)(nil)
	_ repository.ScheduleRepository = (*memScheduleRepo)(nil)
)
