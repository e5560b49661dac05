package sessions

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/authsvc/internal/common"
)

// InMemoryRepository keeps sessions in a token-keyed map behind a mutex.
// There is no per-identity index: multiple live sessions per identity are
// allowed and lookups only ever go through the token.
type InMemoryRepository struct {
	mu      sync.RWMutex
	byToken map[string]*Session
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		byToken: make(map[string]*Session),
	}
}

func (r *InMemoryRepository) Create(ctx context.Context, session *Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *session
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}

	r.byToken[stored.Token] = &stored
	return nil
}

func (r *InMemoryRepository) Get(ctx context.Context, token string) (*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.byToken[token]
	if !ok {
		return nil, common.ErrorNotFound
	}

	out := *session
	return &out, nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byToken[token]; !ok {
		return common.ErrorNotFound
	}

	delete(r.byToken, token)
	return nil
}
