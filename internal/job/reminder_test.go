package job

import (
	"context"
	"errors"
	"testing"
	"time"

	"fittrack/backend/internal/domain"
	"fittrack/backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- fakes ---

type fakeScheduleRepo struct {
	pending []domain.Schedule
	err     error
}

func (f *fakeScheduleRepo) GetPendingByDate(_ context.Context, _ domain.Date) ([]domain.Schedule, error) {
	return f.pending, f.err
}
func (f *fakeScheduleRepo) Create(context.Context, *domain.Schedule) (primitive.ObjectID, error) {
	panic("not used")
}
func (f *fakeScheduleRepo) CreateIfAbsent(context.Context, *domain.Schedule) (*domain.Schedule, bool, error) {
	panic("not used")
}
func (f *fakeScheduleRepo) GetByID(context.Context, primitive.ObjectID) (*domain.Schedule, error) {
	panic("not used")
}
func (f *fakeScheduleRepo) GetByUserID(context.Context, primitive.ObjectID, *domain.Date) ([]domain.Schedule, error) {
	panic("not used")
}
func (f *fakeScheduleRepo) SetCompleted(context.Context, primitive.ObjectID, bool) error {
	panic("not used")
}
func (f *fakeScheduleRepo) Delete(context.Context, primitive.ObjectID) error {
	panic("not used")
}

type fakeUserRepo struct {
	users map[primitive.ObjectID]*domain.User
}

func (f *fakeUserRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return u, nil
}
func (f *fakeUserRepo) Create(context.Context, *domain.User) (primitive.ObjectID, error) {
	panic("not used")
}
func (f *fakeUserRepo) GetByEmail(context.Context, string) (*domain.User, error) {
	panic("not used")
}
func (f *fakeUserRepo) Update(context.Context, *domain.User) error {
	panic("not used")
}
func (f *fakeUserRepo) SetOnboardingAnswers(context.Context, primitive.ObjectID, domain.OnboardingAnswers) error {
	panic("not used")
}

type fakeWorkoutRepo struct {
	workouts map[primitive.ObjectID]*domain.Workout
}

func (f *fakeWorkoutRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.Workout, error) {
	w, ok := f.workouts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return w, nil
}
func (f *fakeWorkoutRepo) Create(context.Context, *domain.Workout) (primitive.ObjectID, error) {
	panic("not used")
}
func (f *fakeWorkoutRepo) GetByUserID(context.Context, primitive.ObjectID) ([]domain.Workout, error) {
	panic("not used")
}
func (f *fakeWorkoutRepo) Delete(context.Context, primitive.ObjectID) error {
	panic("not used")
}

type fakeMailer struct {
	sent   []string // recipient addresses, in order
	failTo map[string]bool
}

func (f *fakeMailer) Send(_ context.Context, to, _, _ string) error {
	if f.failTo[to] {
		return errors.New("delivery refused")
	}
	f.sent = append(f.sent, to)
	return nil
}

// --- fixtures ---

type reminderFixture struct {
	job      *Reminder
	mailer   *fakeMailer
	schedule *fakeScheduleRepo
}

func newReminderFixture(users []*domain.User, workouts []*domain.Workout, pending []domain.Schedule) *reminderFixture {
	userRepo := &fakeUserRepo{users: map[primitive.ObjectID]*domain.User{}}
	for _, u := range users {
		userRepo.users[u.ID] = u
	}
	workoutRepo := &fakeWorkoutRepo{workouts: map[primitive.ObjectID]*domain.Workout{}}
	for _, w := range workouts {
		workoutRepo.workouts[w.ID] = w
	}
	scheduleRepo := &fakeScheduleRepo{pending: pending}
	mailer := &fakeMailer{failTo: map[string]bool{}}

	job := NewReminder(scheduleRepo, workoutRepo, userRepo, mailer, time.UTC, 9, "http://localhost:3000")
	return &reminderFixture{job: job, mailer: mailer, schedule: scheduleRepo}
}

func pendingEntry(userID, workoutID primitive.ObjectID) domain.Schedule {
	return domain.Schedule{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		WorkoutID: workoutID,
		Date:      "2026-08-28",
	}
}

// --- tests ---

func TestRunNoPendingIsNoOp(t *testing.T) {
	f := newReminderFixture(nil, nil, nil)

	err := f.job.Run(context.Background())
	require.NoError(t, err)
	assert.Empty(t, f.mailer.sent)
}

func TestRunSendsOneEmailPerEntry(t *testing.T) {
	alice := &domain.User{ID: primitive.NewObjectID(), Name: "Alice Smith", Email: "alice@example.com"}
	bob := &domain.User{ID: primitive.NewObjectID(), Name: "Bob Jones", Email: "bob@example.com"}
	workout := &domain.Workout{ID: primitive.NewObjectID(), Name: "Fat Burner Starter"}

	f := newReminderFixture(
		[]*domain.User{alice, bob},
		[]*domain.Workout{workout},
		[]domain.Schedule{
			pendingEntry(alice.ID, workout.ID),
			pendingEntry(bob.ID, workout.ID),
		},
	)

	err := f.job.Run(context.Background())
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"alice@example.com", "bob@example.com"}, f.mailer.sent)
}

func TestRunSkipsEntriesWithBadAddress(t *testing.T) {
	noEmail := &domain.User{ID: primitive.NewObjectID(), Name: "Ghost"}
	malformed := &domain.User{ID: primitive.NewObjectID(), Name: "Typo", Email: "not-an-address"}
	ok := &domain.User{ID: primitive.NewObjectID(), Name: "Alice Smith", Email: "alice@example.com"}
	workout := &domain.Workout{ID: primitive.NewObjectID(), Name: "Stamina Builder"}

	f := newReminderFixture(
		[]*domain.User{noEmail, malformed, ok},
		[]*domain.Workout{workout},
		[]domain.Schedule{
			pendingEntry(noEmail.ID, workout.ID),
			pendingEntry(malformed.ID, workout.ID),
			pendingEntry(ok.ID, workout.ID),
		},
	)

	err := f.job.Run(context.Background())
	require.Error(t, err, "skipped entries are reported at the job level")
	assert.Equal(t, []string{"alice@example.com"}, f.mailer.sent, "valid recipient still gets their reminder")
}

func TestRunContinuesPastDeliveryFailure(t *testing.T) {
	alice := &domain.User{ID: primitive.NewObjectID(), Name: "Alice Smith", Email: "alice@example.com"}
	bob := &domain.User{ID: primitive.NewObjectID(), Name: "Bob Jones", Email: "bob@example.com"}
	workout := &domain.Workout{ID: primitive.NewObjectID(), Name: "Mobility & Flow"}

	f := newReminderFixture(
		[]*domain.User{alice, bob},
		[]*domain.Workout{workout},
		[]domain.Schedule{
			pendingEntry(alice.ID, workout.ID),
			pendingEntry(bob.ID, workout.ID),
		},
	)
	f.mailer.failTo["alice@example.com"] = true

	err := f.job.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2")
	assert.Equal(t, []string{"bob@example.com"}, f.mailer.sent)
}

func TestRunMissingWorkoutFallsBackToGenericName(t *testing.T) {
	alice := &domain.User{ID: primitive.NewObjectID(), Name: "Alice Smith", Email: "alice@example.com"}

	f := newReminderFixture(
		[]*domain.User{alice},
		nil, // workout template was deleted after scheduling
		[]domain.Schedule{pendingEntry(alice.ID, primitive.NewObjectID())},
	)

	err := f.job.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"alice@example.com"}, f.mailer.sent)
}

func TestUntilNextFire(t *testing.T) {
	f := newReminderFixture(nil, nil, nil)

	// Before the fire hour: later today.
	f.job.now = func() time.Time { return time.Date(2026, 8, 28, 7, 0, 0, 0, time.UTC) }
	assert.Equal(t, 2*time.Hour, f.job.untilNextFire())

	// After the fire hour: tomorrow.
	f.job.now = func() time.Time { return time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC) }
	assert.Equal(t, 23*time.Hour, f.job.untilNextFire())

	// Exactly at the fire hour: tomorrow, never zero.
	f.job.now = func() time.Time { return time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC) }
	assert.Equal(t, 24*time.Hour, f.job.untilNextFire())
}
