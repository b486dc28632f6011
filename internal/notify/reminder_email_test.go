package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReminderSubject(t *testing.T) {
	assert.Equal(t, "💪 Workout Reminder: Fat Burner Starter", ReminderSubject("Fat Burner Starter"))
}

func TestReminderBodyUsesFirstName(t *testing.T) {
	body := ReminderBody("Alice Smith", "Full Body Strength", "http://localhost:3000")

	assert.Contains(t, body, "Hey Alice!")
	assert.NotContains(t, body, "Alice Smith")
	assert.Contains(t, body, "Full Body Strength")
	assert.Contains(t, body, `href="http://localhost:3000"`)
}

func TestReminderBodySingleWordName(t *testing.T) {
	body := ReminderBody("Madonna", "Mobility & Flow", "https://fittrack.example.com")

	assert.Contains(t, body, "Hey Madonna!")
	assert.Contains(t, body, "Mobility & Flow")
}
