package domain

import "time"

// Message is a single candygram. Sender and Recipient hold normalized
// usernames; Alias is the display name the sender chose for this message and
// is independent of Sender. ID and Timestamp are assigned by the store.
type Message struct {
	ID        int64
	Sender    string
	Recipient string
	Alias     string
	Content   string
	Timestamp time.Time
}
