package sessions

import "time"

// Session is a live login instance. Token is the opaque key the store looks
// sessions up by; UserID points at the owning identity but carries no
// ownership semantics.
type Session struct {
	Token     string
	UserID    string
	CreatedAt time.Time
}
