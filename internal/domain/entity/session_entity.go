package entity

import "time"

// Session is the server-side record of the most recently issued token.
// A token is only honoured while its SessionID matches the stored one.
type Session struct {
	UserID    string
	SessionID string
	Email     string
	Name      string
	CreatedAt time.Time
}
