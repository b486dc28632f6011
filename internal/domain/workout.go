package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Exercise is a single entry inside a workout template.
// Reps holds either a count ("12") or a duration ("45 sec", "15 min"),
// matching how users describe timed exercises.
type Exercise struct {
	Name        string `bson:"name" json:"name"`
	Sets        int    `bson:"sets" json:"sets"`
	Reps        string `bson:"reps" json:"reps"`
	DurationMin *int   `bson:"duration,omitempty" json:"duration,omitempty"`
}

// Workout is a named, reusable exercise template owned by a user.
// It is a template, not a log of what was actually performed; schedule
// entries reference it, possibly for several different dates.
type Workout struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	Name      string             `bson:"name" json:"name"` // e.g. "Fat Burner Starter"
	Type      string             `bson:"type" json:"type"` // Strength, Cardio, goal name, ...
	Exercises []Exercise         `bson:"exercises" json:"exercises"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
