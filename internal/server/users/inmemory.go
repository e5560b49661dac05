package users

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/authsvc/internal/common"
)

// InMemoryRepository keeps users in two map indexes, by id and by username,
// guarded by a single mutex. The lock is held for the full duration of every
// method, so the uniqueness check and the insert in Create cannot interleave
// with another Create for the same username.
type InMemoryRepository struct {
	mu         sync.RWMutex
	byID       map[string]*User
	byUsername map[string]*User
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		byID:       make(map[string]*User),
		byUsername: make(map[string]*User),
	}
}

func (r *InMemoryRepository) Create(ctx context.Context, user *User) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byUsername[user.UserName]; ok {
		return nil, common.ErrorDuplicateUsername
	}

	stored := *user
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}

	r.byID[stored.ID] = &stored
	r.byUsername[stored.UserName] = &stored

	out := stored
	return &out, nil
}

func (r *InMemoryRepository) GetByUsername(ctx context.Context, username string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byUsername[username]
	if !ok {
		return nil, common.ErrorNotFound
	}

	out := *user
	return &out, nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.byID[id]
	if !ok {
		return common.ErrorNotFound
	}

	delete(r.byID, id)
	delete(r.byUsername, user.UserName)
	return nil
}
