// Package plan encodes the goal -> starter-workout mapping used by the
// onboarding flow. Selection is a pure lookup: every goal value,
// including unknown ones, resolves to a template with a non-empty
// exercise list.
package plan

import "fittrack/backend/internal/domain"

// Template is a named starter workout for a training goal.
type Template struct {
	WorkoutName string
	Exercises   []domain.Exercise
}

func minutes(n int) *int { return &n }

var templates = map[domain.Goal]Template{
	domain.GoalWeightLoss: {
		WorkoutName: "Fat Burner Starter",
		Exercises: []domain.Exercise{
			{Name: "Jumping Jacks", Sets: 3, Reps: "30"},
			{Name: "Burpees", Sets: 3, Reps: "10"},
			{Name: "Mountain Climbers", Sets: 3, Reps: "20"},
			{Name: "High Knees", Sets: 3, Reps: "30"},
		},
	},
	domain.GoalMuscleGain: {
		WorkoutName: "Full Body Strength",
		Exercises: []domain.Exercise{
			{Name: "Push-ups", Sets: 3, Reps: "12"},
			{Name: "Bodyweight Squats", Sets: 4, Reps: "15"},
			{Name: "Lunges", Sets: 3, Reps: "12"},
			{Name: "Plank", Sets: 3, Reps: "45 sec"},
		},
	},
	domain.GoalEndurance: {
		WorkoutName: "Stamina Builder",
		Exercises: []domain.Exercise{
			{Name: "Run / Jog", Sets: 1, Reps: "15 min", DurationMin: minutes(15)},
			{Name: "Jump Rope", Sets: 3, Reps: "1 min"},
			{Name: "Box Jumps", Sets: 3, Reps: "12"},
		},
	},
}

// defaultTemplate covers General and any unrecognized or missing goal.
var defaultTemplate = Template{
	WorkoutName: "Mobility & Flow",
	Exercises: []domain.Exercise{
		{Name: "Yoga Flow", Sets: 1, Reps: "10 min", DurationMin: minutes(10)},
		{Name: "Cat-Cow Stretch", Sets: 3, Reps: "10"},
		{Name: "Child's Pose", Sets: 3, Reps: "30 sec"},
	},
}

// Select maps a training goal to its starter template. Total and
// deterministic: unknown goals fall back to the default template.
func Select(goal domain.Goal) Template {
	if t, ok := templates[goal]; ok {
		return t
	}
	return defaultTemplate
}
