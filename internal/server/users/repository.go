package users

import (
	"context"
)

// Repository is the credential-store capability set. Implementations must
// make Create atomic with respect to the username uniqueness check: two
// concurrent Create calls for the same username may not both succeed.
type Repository interface {
	Create(ctx context.Context, user *User) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	Delete(ctx context.Context, id string) error
}
