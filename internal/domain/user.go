package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role type to distinguish between user roles
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Goal is the training goal a user picks during onboarding.
// It drives plan selection; any value outside the known set is
// treated as GoalGeneral.
type Goal string

const (
	GoalWeightLoss Goal = "Weight Loss"
	GoalMuscleGain Goal = "Muscle Gain"
	GoalEndurance  Goal = "Endurance"
	GoalGeneral    Goal = "General"
)

// DefaultAvatarURL is assigned at registration until the user uploads their own.
const DefaultAvatarURL = "https://api.dicebear.com/7.x/avataaars/svg?seed=Felix"

// User represents an account in the system.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"` // Unique index
	PasswordHash string             `bson:"passwordHash" json:"-"`
	Avatar       string             `bson:"avatar,omitempty" json:"avatar,omitempty"`
	Role         Role               `bson:"role" json:"role"`
	IsOnboarded  bool               `bson:"isOnboarded" json:"isOnboarded"`

	// Onboarding answers. Zero values mean the user has not completed
	// onboarding yet (IsOnboarded stays false until they do).
	Age          int    `bson:"age,omitempty" json:"age,omitempty"`
	Weight       int    `bson:"weight,omitempty" json:"weight,omitempty"` // kilograms
	Goal         Goal   `bson:"goal,omitempty" json:"goal,omitempty"`
	FitnessLevel string `bson:"fitnessLevel,omitempty" json:"fitnessLevel,omitempty"`
	Equipment    string `bson:"equipment,omitempty" json:"equipment,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
