// Package client wraps the gRPC connection to the auth service behind a
// small typed API used by the CLI.
package client

import (
	"context"

	pb "github.com/dmitrijs2005/authsvc/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.AuthClient
}

// SignInResult mirrors a successful sign-in response.
type SignInResult struct {
	SessionToken string
	UserID       string
}

func NewGRPCClient(endpointURL string) (*GRPCClient, error) {
	conn, err := grpc.NewClient(endpointURL, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, err
	}

	return &GRPCClient{
		endpointURL: endpointURL,
		conn:        conn,
		client:      pb.NewAuthClient(conn),
	}, nil
}

func (c *GRPCClient) Close() error {
	return c.conn.Close()
}

// SignUp registers the credentials. The boolean reports the service-level
// status; a transport failure is returned as error.
func (c *GRPCClient) SignUp(ctx context.Context, username, password string) (bool, error) {
	resp, err := c.client.SignUp(ctx, &pb.SignUpRequest{Username: username, Password: password})
	if err != nil {
		return false, err
	}
	return resp.GetStatusCode() == pb.StatusCode_SUCCESS, nil
}

// SignIn authenticates and returns the issued session. On a FAILURE status
// the result is nil and ok is false.
func (c *GRPCClient) SignIn(ctx context.Context, username, password string) (*SignInResult, bool, error) {
	resp, err := c.client.SignIn(ctx, &pb.SignInRequest{Username: username, Password: password})
	if err != nil {
		return nil, false, err
	}
	if resp.GetStatusCode() != pb.StatusCode_SUCCESS {
		return nil, false, nil
	}
	return &SignInResult{
		SessionToken: resp.GetSessionToken(),
		UserID:       resp.GetUserUuid(),
	}, true, nil
}

// SignOut revokes the session token. The service treats unknown tokens as
// success, so ok is false only on transport failure.
func (c *GRPCClient) SignOut(ctx context.Context, token string) (bool, error) {
	resp, err := c.client.SignOut(ctx, &pb.SignOutRequest{SessionToken: token})
	if err != nil {
		return false, err
	}
	return resp.GetStatusCode() == pb.StatusCode_SUCCESS, nil
}
