package service

import (
	"context"
	"testing"

	"fittrack/backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newScheduleFixture(t *testing.T) (ScheduleService, *memWorkoutRepo, *memScheduleRepo, primitive.ObjectID, primitive.ObjectID) {
	t.Helper()
	workoutRepo := newMemWorkoutRepo()
	scheduleRepo := newMemScheduleRepo()

	userID := primitive.NewObjectID()
	workoutID, err := workoutRepo.Create(context.Background(), &domain.Workout{
		UserID: userID,
		Name:   "Leg Day",
		Type:   "Strength",
		Exercises: []domain.Exercise{
			{Name: "Bodyweight Squats", Sets: 4, Reps: "15"},
		},
	})
	require.NoError(t, err)

	return NewScheduleService(scheduleRepo, workoutRepo), workoutRepo, scheduleRepo, userID, workoutID
}

func TestCreateScheduleChecksWorkoutOwnership(t *testing.T) {
	ctx := context.Background()
	svc, _, _, userID, workoutID := newScheduleFixture(t)

	schedule, err := svc.Create(ctx, userID, workoutID, "2026-08-28")
	require.NoError(t, err)
	assert.Equal(t, domain.SourceManual, schedule.Source)
	assert.False(t, schedule.Completed)

	_, err = svc.Create(ctx, primitive.NewObjectID(), workoutID, "2026-08-28")
	assert.ErrorIs(t, err, ErrNotWorkoutOwner)

	_, err = svc.Create(ctx, userID, primitive.NewObjectID(), "2026-08-28")
	assert.ErrorIs(t, err, ErrWorkoutNotFound)
}

func TestListEmbedsWorkout(t *testing.T) {
	ctx := context.Background()
	svc, _, _, userID, workoutID := newScheduleFixture(t)

	_, err := svc.Create(ctx, userID, workoutID, "2026-08-28")
	require.NoError(t, err)
	_, err = svc.Create(ctx, userID, workoutID, "2026-08-29")
	require.NoError(t, err)

	all, err := svc.List(ctx, userID, nil)
	require.NoError(t, err)
	require.Len(t, all, 2)
	for _, entry := range all {
		require.NotNil(t, entry.Workout)
		assert.Equal(t, "Leg Day", entry.Workout.Name)
	}

	day := domain.Date("2026-08-29")
	filtered, err := svc.List(ctx, userID, &day)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, day, filtered[0].Date)
}

func TestToggleCompletionIsAToggle(t *testing.T) {
	ctx := context.Background()
	svc, _, scheduleRepo, userID, workoutID := newScheduleFixture(t)

	schedule, err := svc.Create(ctx, userID, workoutID, "2026-08-28")
	require.NoError(t, err)
	require.False(t, schedule.Completed)

	once, err := svc.ToggleCompletion(ctx, schedule.ID)
	require.NoError(t, err)
	assert.True(t, once.Completed)

	// Toggling again returns the entry to its original state: this is
	// flip semantics, not mark-complete.
	twice, err := svc.ToggleCompletion(ctx, schedule.ID)
	require.NoError(t, err)
	assert.False(t, twice.Completed)

	stored, err := scheduleRepo.GetByID(ctx, schedule.ID)
	require.NoError(t, err)
	assert.False(t, stored.Completed)
}

func TestToggleCompletionNotFound(t *testing.T) {
	svc, _, _, _, _ := newScheduleFixture(t)

	_, err := svc.ToggleCompletion(context.Background(), primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrScheduleNotFound)
}

func TestDeleteRequiresOwnership(t *testing.T) {
	ctx := context.Background()
	svc, _, scheduleRepo, userID, workoutID := newScheduleFixture(t)

	schedule, err := svc.Create(ctx, userID, workoutID, "2026-08-28")
	require.NoError(t, err)

	// A stranger may not delete the entry, and it must survive the attempt.
	_, err = svc.Delete(ctx, schedule.ID, primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrNotScheduleOwner)

	_, err = scheduleRepo.GetByID(ctx, schedule.ID)
	require.NoError(t, err, "entry must still exist after rejected delete")

	deletedID, err := svc.Delete(ctx, schedule.ID, userID)
	require.NoError(t, err)
	assert.Equal(t, schedule.ID, deletedID)

	_, err = svc.Get(ctx, schedule.ID)
	assert.ErrorIs(t, err, ErrScheduleNotFound)
}

func TestDeleteNotFound(t *testing.T) {
	svc, _, _, userID, _ := newScheduleFixture(t)

	_, err := svc.Delete(context.Background(), primitive.NewObjectID(), userID)
	assert.ErrorIs(t, err, ErrScheduleNotFound)
}
