// Package cli implements the one-shot command-line client for the auth
// service: signup, signin and signout commands against a running server.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/authsvc/internal/client/client"
	"github.com/dmitrijs2005/authsvc/internal/common"
)

// authClient is what App needs from the transport; *client.GRPCClient
// satisfies it, tests substitute fakes.
type authClient interface {
	SignUp(ctx context.Context, username, password string) (bool, error)
	SignIn(ctx context.Context, username, password string) (*client.SignInResult, bool, error)
	SignOut(ctx context.Context, token string) (bool, error)
}

type App struct {
	client authClient
	in     *bufio.Reader
	out    io.Writer
}

func NewApp(c authClient, in io.Reader, out io.Writer) *App {
	return &App{
		client: c,
		in:     bufio.NewReader(in),
		out:    out,
	}
}

// Run dispatches a single command. Supported commands: signup, signin,
// signout <token>.
func (a *App) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "signup":
		return a.runSignUp(ctx)
	case "signin":
		return a.runSignIn(ctx)
	case "signout":
		if len(args) != 1 {
			return fmt.Errorf("usage: signout <session_token>")
		}
		return a.runSignOut(ctx, args[0])
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

func (a *App) promptCredentials() (string, []byte, error) {
	username, err := GetSimpleText(a.in, "Username", a.out)
	if err != nil {
		return "", nil, err
	}

	password, err := GetPassword(a.out)
	if err != nil {
		return "", nil, err
	}

	return username, password, nil
}

func (a *App) runSignUp(ctx context.Context) error {
	username, password, err := a.promptCredentials()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	ok, err := a.client.SignUp(ctx, username, string(password))
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "sign-up failed")
		return nil
	}

	fmt.Fprintln(a.out, "registered")
	return nil
}

func (a *App) runSignIn(ctx context.Context) error {
	username, password, err := a.promptCredentials()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	result, ok, err := a.client.SignIn(ctx, username, string(password))
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "sign-in failed")
		return nil
	}

	fmt.Fprintf(a.out, "signed in\nuser_id: %s\nsession_token: %s\n", result.UserID, result.SessionToken)
	return nil
}

func (a *App) runSignOut(ctx context.Context, token string) error {
	if _, err := a.client.SignOut(ctx, token); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "signed out")
	return nil
}
