package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/authsvc/internal/common"
	"github.com/dmitrijs2005/authsvc/internal/server/config"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Service implements registration, authentication and removal of identities
// on top of a Repository. Password hashing and verification use bcrypt; the
// salt is generated by bcrypt and embedded in the stored hash string.
type Service struct {
	repo       Repository
	bcryptCost int
}

func NewService(repo Repository, cfg *config.Config) *Service {
	return &Service{
		repo:       repo,
		bcryptCost: cfg.BcryptCost,
	}
}

// Register creates a new identity with a fresh unique id and a salted hash
// of password. Returns common.ErrorDuplicateUsername if the username is
// already taken (case-sensitive, exact match).
func (s *Service) Register(ctx context.Context, username, password string) (*User, error) {

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &User{
		ID:           uuid.NewString(),
		UserName:     username,
		PasswordHash: string(hash),
	}

	user, err = s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorDuplicateUsername) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

// Authenticate returns the identity id if username exists and password
// verifies against the stored hash. Unknown username, malformed stored hash
// and wrong password all return common.ErrorUnauthorized so that callers
// cannot tell them apart.
func (s *Service) Authenticate(ctx context.Context, username, password string) (string, error) {

	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorUnauthorized
		}
		return "", common.ErrorInternal
	}

	// bcrypt's compare is constant-time over the digest; any failure,
	// including a malformed stored hash, reads as bad credentials.
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", common.ErrorUnauthorized
	}

	return user.ID, nil
}

// Delete removes the identity from both indexes. An absent id returns
// common.ErrorNotFound; callers treat that as a no-op.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
