package entity

import "time"

// Identity is the authenticated principal recovered from a verified bearer token.
// It lives only for the duration of a request.
type Identity struct {
	UserID int64
	Email  string
}

// IssuedToken is a freshly signed bearer token together with its validity window.
type IssuedToken struct {
	Token     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}
