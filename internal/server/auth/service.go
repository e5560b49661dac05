// Package auth composes the credential and session stores into the three
// operations the service exposes: sign-up, sign-in and sign-out.
package auth

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/authsvc/internal/common"
	"github.com/dmitrijs2005/authsvc/internal/logging"
	"github.com/dmitrijs2005/authsvc/internal/server/sessions"
	"github.com/dmitrijs2005/authsvc/internal/server/users"
)

// SignInResult carries the session token and identity id of a successful
// sign-in. It is never partially filled: a failed sign-in produces no result
// at all.
type SignInResult struct {
	SessionToken string
	UserID       string
}

// Service is the orchestrator. It holds no state of its own; each operation
// is a single pass over the stores. The authenticate-then-issue sequence in
// SignIn takes the two store locks one after another, not jointly, so a
// concurrent DeleteUser may leave a session for an identity that no longer
// exists.
type Service struct {
	users    *users.Service
	sessions *sessions.Service
	logger   logging.Logger
}

func NewService(us *users.Service, ss *sessions.Service, l logging.Logger) *Service {
	return &Service{
		users:    us,
		sessions: ss,
		logger:   l.With("module", "auth"),
	}
}

// SignUp registers a new identity. Returns common.ErrorDuplicateUsername if
// the username is taken; any hashing failure surfaces as a plain error.
func (s *Service) SignUp(ctx context.Context, username, password string) error {
	_, err := s.users.Register(ctx, username, password)
	return err
}

// SignIn authenticates the credentials and, on success, issues a session.
// Invalid credentials of any kind return common.ErrorUnauthorized.
func (s *Service) SignIn(ctx context.Context, username, password string) (*SignInResult, error) {

	userID, err := s.users.Authenticate(ctx, username, password)
	if err != nil {
		return nil, err
	}

	token, err := s.sessions.Issue(ctx, userID)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return &SignInResult{SessionToken: token, UserID: userID}, nil
}

// SignOut revokes the session for token. Unknown tokens are ignored, so the
// operation always succeeds.
func (s *Service) SignOut(ctx context.Context, token string) error {
	return s.sessions.Revoke(ctx, token)
}

// DeleteUser removes an identity. It is not exposed over the wire. Existing
// sessions for the identity are left in place; there is no cascade.
func (s *Service) DeleteUser(ctx context.Context, id string) {
	if err := s.users.Delete(ctx, id); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.logger.Warn(ctx, "delete of unknown user id", "user_id", id)
			return
		}
		s.logger.Error(ctx, "error deleting user", "user_id", id, "error", err)
	}
}
