package dto

import "time"

// SendRequest is the JSON body for POST /send.
type SendRequest struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Alias   string `json:"alias"`
	Content string `json:"content"`
}

// InboxMessage is one entry of an inbox listing. The recipient is implicit
// (it is the requested user) and the real sender is deliberately not exposed.
type InboxMessage struct {
	Alias     string    `json:"alias"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// InboxResponse is the payload for GET /inbox/{username}.
type InboxResponse struct {
	Success  bool           `json:"success"`
	Messages []InboxMessage `json:"messages"`
}

// AdminMessage is one entry of the operator dump, all fields included.
type AdminMessage struct {
	ID        int64     `json:"id"`
	Sender    string    `json:"sender"`
	Recipient string    `json:"recipient"`
	Alias     string    `json:"alias"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// AdminMessagesResponse is the payload for GET /admin/messages.
type AdminMessagesResponse struct {
	Success  bool           `json:"success"`
	Messages []AdminMessage `json:"messages"`
}
