package sessions

import (
	"context"
)

// Repository is the session-store capability set, keyed by token.
type Repository interface {
	Create(ctx context.Context, session *Session) error
	Get(ctx context.Context, token string) (*Session, error)
	Delete(ctx context.Context, token string) error
}
