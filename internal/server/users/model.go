package users

import "time"

// User is a registered identity. ID and UserName are both unique; ID is
// assigned at creation and never reused. PasswordHash is a bcrypt hash with
// the per-user salt embedded in the hash material.
type User struct {
	ID           string
	UserName     string
	PasswordHash string
	CreatedAt    time.Time
}
