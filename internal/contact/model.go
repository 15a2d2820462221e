package contact

import "time"

// Message is a contact-form submission. Write-only: nothing reads it back over
// the API.
type Message struct {
	ID      string    `json:"id,omitempty"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	Phone   string    `json:"phone"`
	Subject string    `json:"subject"`
	Body    string    `json:"message"`
	SentAt  time.Time `json:"sentAt"`
}
