package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ScheduleSource records how a schedule entry came to exist.
type ScheduleSource string

const (
	// SourceOnboarding marks the single auto-generated entry the
	// onboarding flow creates per user per day.
	SourceOnboarding ScheduleSource = "onboarding"
	// SourceManual marks entries the user scheduled explicitly.
	SourceManual ScheduleSource = "manual"
)

// Schedule is one planned occurrence of a Workout on a calendar date.
// The date is stored as a calendar-date value, never an instant, so a
// workout planned for "2026-08-28" stays on that day in every timezone.
type Schedule struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	WorkoutID primitive.ObjectID `bson:"workoutId" json:"workoutId"`
	Date      Date               `bson:"date" json:"date"`
	Completed bool               `bson:"completed" json:"completed"`
	Source    ScheduleSource     `bson:"source" json:"source"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ScheduleWithWorkout is a schedule entry enriched with its workout
// template, the shape the calendar and reminder views consume.
type ScheduleWithWorkout struct {
	Schedule
	Workout *Workout `json:"workout"`
}
