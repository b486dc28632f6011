package notify

import (
	"fmt"
	"strings"
)

// ReminderSubject builds the subject line for a daily workout reminder.
func ReminderSubject(workoutName string) string {
	return fmt.Sprintf("💪 Workout Reminder: %s", workoutName)
}

// ReminderBody builds the HTML body for a daily workout reminder.
func ReminderBody(userName, workoutName, dashboardURL string) string {
	firstName := userName
	if idx := strings.IndexByte(userName, ' '); idx > 0 {
		firstName = userName[:idx]
	}

	return fmt.Sprintf(`
      <div style="font-family: Arial, sans-serif; padding: 20px; border: 1px solid #eee; border-radius: 10px;">
        <h2 style="color: #2563EB;">Hey %s!</h2>
        <p>Don't forget to crush your goals today.</p>

        <div style="background: #F3F4F6; padding: 15px; border-radius: 8px; margin: 20px 0;">
          <strong>📅 Today's Mission:</strong> %s
        </div>

        <p>Log in to track your progress:</p>
        <a href="%s" style="background: #2563EB; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px;">Go to Dashboard</a>

        <p style="margin-top: 30px; font-size: 12px; color: #888;">Keep pushing! - The FitTrack Team</p>
      </div>`,
		firstName, workoutName, dashboardURL)
}
