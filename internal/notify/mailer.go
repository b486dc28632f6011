// Package notify handles outbound user notifications. The reminder job
// talks to the Mailer interface so delivery can be faked in tests.
package notify

import "context"

// Mailer sends a single email message.
type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}
