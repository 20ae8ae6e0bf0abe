package domain

import "time"

// Session is the result of a successful sign-in.
type Session struct {
	Username  string
	Token     string
	ExpiresAt time.Time
}
