package plan

import (
	"testing"

	"fittrack/backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectKnownGoals(t *testing.T) {
	tests := []struct {
		goal        domain.Goal
		workoutName string
	}{
		{domain.GoalWeightLoss, "Fat Burner Starter"},
		{domain.GoalMuscleGain, "Full Body Strength"},
		{domain.GoalEndurance, "Stamina Builder"},
	}

	for _, tt := range tests {
		t.Run(string(tt.goal), func(t *testing.T) {
			template := Select(tt.goal)
			assert.Equal(t, tt.workoutName, template.WorkoutName)
			require.NotEmpty(t, template.Exercises)
			for _, ex := range template.Exercises {
				assert.NotEmpty(t, ex.Name)
				assert.Positive(t, ex.Sets)
				assert.NotEmpty(t, ex.Reps)
			}
		})
	}
}

func TestSelectFallsBackToDefault(t *testing.T) {
	for _, goal := range []domain.Goal{domain.GoalGeneral, "", "Get Shredded", "weight loss"} {
		template := Select(goal)
		assert.Equal(t, "Mobility & Flow", template.WorkoutName, "goal %q", goal)
		assert.NotEmpty(t, template.Exercises)
	}
}

func TestSelectIsDeterministic(t *testing.T) {
	first := Select(domain.GoalWeightLoss)
	second := Select(domain.GoalWeightLoss)
	assert.Equal(t, first, second)
}
