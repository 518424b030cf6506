package domain

import "time"

// Session is a server-side session record. The client holds an opaque token
// in a cookie; only its fingerprint is stored here. The payload is exactly
// one field: the signed-in user's Profile, denormalized at signup/login time
// so profile reads never touch the user store.
type Session struct {
	ID        string
	TokenHash string
	UserID    string
	Profile   Profile
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired reports whether the session has passed its expiry.
func (s Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
