package service

import (
	"context"
	"sort"

	"fittrack/backend/internal/domain"
	"fittrack/backend/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Badge is a derived achievement. Unlocked state is recomputed from the
// completed-entry history on every read and never persisted, so editing
// or deleting history can relock a badge without any stale state.
type Badge struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
	Unlocked    bool   `json:"unlocked"`
}

// StatsSummary is the dashboard payload: totals, current streak, badges.
type StatsSummary struct {
	TotalCompleted int     `json:"totalCompleted"`
	Streak         int     `json:"streak"`
	Badges         []Badge `json:"badges"`
}

// StatsService derives streak and badge state from the schedule history.
type StatsService interface {
	Summary(ctx context.Context, userID primitive.ObjectID, today domain.Date) (*StatsSummary, error)
}

type statsService struct {
	scheduleRepo repository.ScheduleRepository
}

// NewStatsService creates a new instance of statsService.
func NewStatsService(scheduleRepo repository.ScheduleRepository) StatsService {
	return &statsService{scheduleRepo: scheduleRepo}
}

func (s *statsService) Summary(ctx context.Context, userID primitive.ObjectID, today domain.Date) (*StatsSummary, error) {
	schedules, err := s.scheduleRepo.GetByUserID(ctx, userID, nil)
	if err != nil {
		return nil, err
	}

	completed := make([]domain.Date, 0, len(schedules))
	for _, entry := range schedules {
		if entry.Completed {
			completed = append(completed, entry.Date)
		}
	}

	streak := ComputeStreak(completed, today)
	return &StatsSummary{
		TotalCompleted: len(completed),
		Streak:         streak,
		Badges:         computeBadges(completed, streak),
	}, nil
}

// ComputeStreak counts consecutive calendar days with at least one
// completed workout, ending today or yesterday relative to the given
// evaluation date. A skipped day resets the streak to zero immediately,
// it does not keep counting down from the last active day.
func ComputeStreak(completed []domain.Date, today domain.Date) int {
	if len(completed) == 0 {
		return 0
	}

	// Distinct dates, newest first. Date strings sort chronologically.
	seen := make(map[domain.Date]struct{}, len(completed))
	dates := make([]domain.Date, 0, len(completed))
	for _, d := range completed {
		if _, ok := seen[d]; !ok {
			seen[d] = struct{}{}
			dates = append(dates, d)
		}
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i] > dates[j] })

	// The streak is alive only if the most recent completion was today
	// or yesterday.
	if dates[0] != today && dates[0] != today.AddDays(-1) {
		return 0
	}

	streak := 1
	for i := 0; i < len(dates)-1; i++ {
		if dates[i].DaysSince(dates[i+1]) != 1 {
			break
		}
		streak++
	}
	return streak
}

func computeBadges(completed []domain.Date, streak int) []Badge {
	total := len(completed)

	hasWeekend := false
	for _, d := range completed {
		if d.IsWeekend() {
			hasWeekend = true
			break
		}
	}

	return []Badge{
		{ID: 1, Name: "First Step", Icon: "👟", Description: "Complete your first workout", Unlocked: total >= 1},
		{ID: 2, Name: "On Fire", Icon: "🔥", Description: "Achieve a 3-day streak", Unlocked: streak >= 3},
		{ID: 3, Name: "Iron Will", Icon: "💪", Description: "Complete 10 total workouts", Unlocked: total >= 10},
		{ID: 4, Name: "Weekend Warrior", Icon: "🌴", Description: "Workout on a Saturday or Sunday", Unlocked: hasWeekend},
	}
}
