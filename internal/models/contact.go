package models

import "time"

const (
	ContactStatusNew  = "new"
	ContactStatusRead = "read"
)

// ContactSubmission is an inbound message from the public website form.
// The only mutation it ever sees is the new -> read status transition.
type ContactSubmission struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}
