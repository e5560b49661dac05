package grpc

import (
	"context"

	pb "github.com/dmitrijs2005/authsvc/internal/proto"
)

// Handlers map domain outcomes onto the two-valued StatusCode. Domain
// failures (duplicate username, bad credentials, hashing errors) never
// surface as transport errors: the response carries FAILURE and empty
// payload fields instead.

func (s *GRPCServer) SignUp(ctx context.Context, req *pb.SignUpRequest) (*pb.SignUpResponse, error) {

	s.logger.Info(ctx, "SignUp request", "username", req.Username)

	if err := s.auth.SignUp(ctx, req.Username, req.Password); err != nil {
		s.logger.Warn(ctx, "SignUp failed", "username", req.Username, "error", err)
		return &pb.SignUpResponse{StatusCode: pb.StatusCode_FAILURE}, nil
	}

	s.logger.Info(ctx, "Registered", "username", req.Username)
	return &pb.SignUpResponse{StatusCode: pb.StatusCode_SUCCESS}, nil
}

func (s *GRPCServer) SignIn(ctx context.Context, req *pb.SignInRequest) (*pb.SignInResponse, error) {

	s.logger.Info(ctx, "SignIn request", "username", req.Username)

	result, err := s.auth.SignIn(ctx, req.Username, req.Password)
	if err != nil {
		// empty strings, never omitted: the sentinel for "no value"
		return &pb.SignInResponse{
			StatusCode:   pb.StatusCode_FAILURE,
			SessionToken: "",
			UserUuid:     "",
		}, nil
	}

	return &pb.SignInResponse{
		StatusCode:   pb.StatusCode_SUCCESS,
		SessionToken: result.SessionToken,
		UserUuid:     result.UserID,
	}, nil
}

func (s *GRPCServer) SignOut(ctx context.Context, req *pb.SignOutRequest) (*pb.SignOutResponse, error) {

	if err := s.auth.SignOut(ctx, req.SessionToken); err != nil {
		// revocation is idempotent; an internal error is logged but the
		// operation still reports success to the caller
		s.logger.Error(ctx, "SignOut error", "error", err)
	}

	return &pb.SignOutResponse{StatusCode: pb.StatusCode_SUCCESS}, nil
}
