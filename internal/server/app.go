// Package server initializes and runs the auth server application:
// it wires the in-memory stores into the services, installs signal
// handling and starts the gRPC endpoint.
package server

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/authsvc/internal/logging"
	"github.com/dmitrijs2005/authsvc/internal/server/auth"
	"github.com/dmitrijs2005/authsvc/internal/server/config"
	"github.com/dmitrijs2005/authsvc/internal/server/sessions"
	"github.com/dmitrijs2005/authsvc/internal/server/users"

	gs "github.com/dmitrijs2005/authsvc/internal/server/grpc"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	authService *auth.Service
}

func NewApp(c *config.Config) (*App, error) {

	slogger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(slogger)

	// the stores live in memory only; state does not survive a restart
	userService := users.NewService(users.NewInMemoryRepository(), c)
	sessionService := sessions.NewService(sessions.NewInMemoryRepository(), c)

	authService := auth.NewService(userService, sessionService, logger)

	return &App{config: c, logger: logger, authService: authService}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s, err := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.authService)

	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
		return
	}

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()
}
