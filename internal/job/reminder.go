// Package job holds background work that runs independently of request
// handling.
package job

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"fittrack/backend/internal/domain"
	"fittrack/backend/internal/notify"
	"fittrack/backend/internal/repository"
)

// Reminder emails every user who still has an incomplete workout
// scheduled for today. Failures are isolated per entry: a bad address
// or a rejected send is logged and counted, never aborts the run.
type Reminder struct {
	scheduleRepo repository.ScheduleRepository
	workoutRepo  repository.WorkoutRepository
	userRepo     repository.UserRepository
	mailer       notify.Mailer
	location     *time.Location
	hour         int
	dashboardURL string
	now          func() time.Time
}

// NewReminder creates the daily reminder job. hour is the local hour of
// day (0-23) at which the job fires, evaluated in location.
func NewReminder(
	scheduleRepo repository.ScheduleRepository,
	workoutRepo repository.WorkoutRepository,
	userRepo repository.UserRepository,
	mailer notify.Mailer,
	location *time.Location,
	hour int,
	dashboardURL string,
) *Reminder {
	if location == nil {
		location = time.UTC
	}
	if hour < 0 || hour > 23 {
		hour = 9
	}
	return &Reminder{
		scheduleRepo: scheduleRepo,
		workoutRepo:  workoutRepo,
		userRepo:     userRepo,
		mailer:       mailer,
		location:     location,
		hour:         hour,
		dashboardURL: dashboardURL,
		now:          time.Now,
	}
}

// Start runs the job once per day at the configured local hour until
// ctx is cancelled. It runs on its own goroutine-friendly loop and
// never panics the process: run failures are logged and the next fire
// is scheduled regardless.
func (r *Reminder) Start(ctx context.Context) {
	log.Printf("Reminder job active: daily at %02d:00 %s", r.hour, r.location)
	for {
		timer := time.NewTimer(r.untilNextFire())
		select {
		case <-ctx.Done():
			timer.Stop()
			log.Println("Reminder job stopping.")
			return
		case <-timer.C:
			if err := r.Run(ctx); err != nil {
				log.Printf("ERROR: reminder run failed: %v", err)
			}
		}
	}
}

// untilNextFire computes the duration until the next configured local
// hour, always in the future.
func (r *Reminder) untilNextFire() time.Duration {
	now := r.now().In(r.location)
	next := time.Date(now.Year(), now.Month(), now.Day(), r.hour, 0, 0, 0, r.location)
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next.Sub(now)
}

// Run performs a single reminder sweep for today's calendar date.
func (r *Reminder) Run(ctx context.Context) error {
	today := domain.DateOf(r.now().In(r.location))

	pending, err := r.scheduleRepo.GetPendingByDate(ctx, today)
	if err != nil {
		return fmt.Errorf("query pending schedules: %w", err)
	}
	if len(pending) == 0 {
		log.Println("Reminder sweep: no pending workouts for today.")
		return nil
	}

	log.Printf("Reminder sweep: %d pending workout(s) for %s", len(pending), today)

	failures := 0
	for _, entry := range pending {
		if err := r.remind(ctx, entry); err != nil {
			failures++
			log.Printf("WARN: reminder for schedule %s skipped: %v", entry.ID.Hex(), err)
		}
	}

	if failures > 0 {
		return fmt.Errorf("reminder sweep finished with %d of %d deliveries failed", failures, len(pending))
	}
	return nil
}

func (r *Reminder) remind(ctx context.Context, entry domain.Schedule) error {
	user, err := r.userRepo.GetByID(ctx, entry.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("owner %s not found", entry.UserID.Hex())
		}
		return err
	}
	if user.Email == "" || !strings.Contains(user.Email, "@") {
		return fmt.Errorf("owner %s has no usable email address", user.ID.Hex())
	}

	workoutName := "Today's Workout"
	if workout, err := r.workoutRepo.GetByID(ctx, entry.WorkoutID); err == nil {
		workoutName = workout.Name
	}

	subject := notify.ReminderSubject(workoutName)
	body := notify.ReminderBody(user.Name, workoutName, r.dashboardURL)
	if err := r.mailer.Send(ctx, user.Email, subject, body); err != nil {
		return err
	}

	log.Printf("Reminder sent to %s for workout %q", user.Email, workoutName)
	return nil
}
