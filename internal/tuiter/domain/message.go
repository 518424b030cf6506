package domain

import "time"

// Message is a direct message between two users.
type Message struct {
	ID      string    `json:"id"`
	Message string    `json:"message"`
	From    string    `json:"from"`
	To      string    `json:"to"`
	SentOn  time.Time `json:"sentOn"`
}
