package sessions

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/authsvc/internal/common"
	"github.com/dmitrijs2005/authsvc/internal/server/config"
)

// Service issues and revokes opaque session tokens on top of a Repository.
type Service struct {
	repo      Repository
	tokenSize int
}

func NewService(repo Repository, cfg *config.Config) *Service {
	return &Service{
		repo:      repo,
		tokenSize: cfg.SessionTokenSize,
	}
}

// Issue generates a fresh unguessable token and records a session for
// userID. It does not check for existing sessions: an identity may hold any
// number of concurrent sessions.
func (s *Service) Issue(ctx context.Context, userID string) (string, error) {

	token, err := common.MakeRandHexString(s.tokenSize)
	if err != nil {
		return "", fmt.Errorf("error generating session token: %w", err)
	}

	if err := s.repo.Create(ctx, &Session{Token: token, UserID: userID}); err != nil {
		return "", fmt.Errorf("error storing session: %w", err)
	}

	return token, nil
}

// Revoke removes the session for token. Revoking an unknown token is a
// no-op: sign-out is idempotent.
func (s *Service) Revoke(ctx context.Context, token string) error {
	if err := s.repo.Delete(ctx, token); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil
		}
		return err
	}
	return nil
}
