// Package mail hands email notifications to an external delivery service.
//
// Delivery is fire-and-forget from the backend's perspective: messages are
// published to an outbox queue and a separate mailer consumes them. A mail
// provider outage can therefore never block or roll back the operation that
// triggered the notification.
package mail

import (
	"encoding/json"
	"time"

	"github.com/rs/zerolog/log"
)

// Kinds of notifications the backend sends.
const (
	KindVerification    = "verification"
	KindAccountDeletion = "account-deletion"
)

// Message is a single email notification for the mailer.
type Message struct {
	Kind      string    `json:"kind"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Token     string    `json:"token,omitempty"` // Verification token, only set for verification mails
	Timestamp time.Time `json:"timestamp"`
}

// ToJSON converts the message to JSON bytes.
func (m Message) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// MessageFromJSON creates a message from JSON bytes.
func MessageFromJSON(data []byte) (Message, error) {
	var msg Message
	err := json.Unmarshal(data, &msg)
	return msg, err
}

// Sender publishes email notifications.
type Sender interface {
	Send(msg Message) error
}

// LogSender logs notifications instead of sending them. It is used in
// development and in tests when no outbox queue is configured.
type LogSender struct{}

func (LogSender) Send(msg Message) error {
	log.Info().
		Str("kind", msg.Kind).
		Str("email", msg.Email).
		Msg("mail notification suppressed, no outbox configured")
	return nil
}
