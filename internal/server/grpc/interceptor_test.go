package grpc

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/dmitrijs2005/authsvc/internal/logging"
	"google.golang.org/grpc"
)

func newLoggingServer(t *testing.T) (*GRPCServer, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return &GRPCServer{
		address: "127.0.0.1:0",
		auth:    &fakeAuth{},
		logger:  logging.NewSlogLogger(slog.New(h)),
	}, &buf
}

func TestRequestLogInterceptor_PassesThroughResponse(t *testing.T) {
	s, buf := newLoggingServer(t)

	info := &grpc.UnaryServerInfo{FullMethod: "/authentication.Auth/SignUp"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return "resp", nil
	}

	resp, err := s.requestLogInterceptor(context.Background(), "req", info, handler)
	if err != nil {
		t.Fatalf("interceptor error: %v", err)
	}
	if resp != "resp" {
		t.Fatalf("unexpected response: %v", resp)
	}
	if !strings.Contains(buf.String(), "/authentication.Auth/SignUp") {
		t.Fatalf("expected method in log output:\n%s", buf.String())
	}
}

func TestRequestLogInterceptor_PassesThroughError(t *testing.T) {
	s, _ := newLoggingServer(t)

	info := &grpc.UnaryServerInfo{FullMethod: "/authentication.Auth/SignIn"}
	wantErr := errors.New("boom")
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return nil, wantErr
	}

	_, err := s.requestLogInterceptor(context.Background(), "req", info, handler)
	if !errors.Is(err, wantErr) {
		t.Fatalf("want handler error back, got %v", err)
	}
}
