package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/authsvc/internal/logging"
	pb "github.com/dmitrijs2005/authsvc/internal/proto"
	"github.com/dmitrijs2005/authsvc/internal/server/auth"
	"google.golang.org/grpc"
)

// authSvc is what the handlers need from the orchestrator; *auth.Service
// satisfies it, tests substitute fakes.
type authSvc interface {
	SignUp(ctx context.Context, username, password string) error
	SignIn(ctx context.Context, username, password string) (*auth.SignInResult, error)
	SignOut(ctx context.Context, token string) error
}

type GRPCServer struct {
	pb.UnimplementedAuthServer
	address string
	auth    authSvc
	logger  logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, as *auth.Service) (*GRPCServer, error) {
	return &GRPCServer{
		address: a,
		logger:  l.With("module", "grpc_server"),
		auth:    as,
	}, nil
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	// creates gRPC-server
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.requestLogInterceptor))

	// registers service
	pb.RegisterAuthServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
