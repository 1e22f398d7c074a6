package keeper

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/xy-planning-network/tollgate"
	"github.com/xy-planning-network/tollgate/http/resp"
	"github.com/xy-planning-network/tollgate/http/router"
	"github.com/xy-planning-network/tollgate/logger"
)

// A Keeper manages and exposes all components of a tollgate service to one another.
type Keeper struct {
	*resp.Responder
	*router.Router

	ctx          context.Context
	env          tollgate.Environment
	l            logger.Logger
	maxBodyBytes int64
	srv          *http.Server
}

// New constructs a *Keeper from the provided options.
// Components no option configures are built from environment variables,
// see the package documentation.
func New(opts ...KeeperOption) (*Keeper, error) {
	k := new(Keeper)
	for _, opt := range opts {
		if err := opt(k); err != nil {
			return nil, fmt.Errorf("%w: %s", tollgate.ErrBadConfig, err)
		}
	}

	if k.ctx == nil {
		k.ctx = context.Background()
	}

	if k.env == "" {
		k.env = tollgate.EnvVarOrEnv(EnvironmentEnvVar, tollgate.Development)
	}

	if k.l == nil {
		k.l = defaultLogger(k.env)
	}

	if k.maxBodyBytes == 0 {
		k.maxBodyBytes = int64(tollgate.EnvVarOrInt(maxBodyBytesEnvVar, int(DefaultMaxBodyBytes)))
	}

	if k.Responder == nil {
		k.Responder = defaultResponder(k.l)
	}

	if k.Router == nil {
		k.Router = defaultRouter(k.env, k.l, k.Responder, k.maxBodyBytes)
	}

	if k.srv == nil {
		k.srv = defaultServer(k.ctx)
	}

	if k.srv.Handler == nil {
		k.srv.Handler = k.Router
	}

	k.l.Debug(fmt.Sprintf("keeper configured for %s", k.env), nil)

	return k, nil
}

// Logger returns the logger.Logger the *Keeper logs with.
func (k *Keeper) Logger() logger.Logger { return k.l }

// Open begins the web server.
//
// These, and (*Keeper).Shutdown, stop Open:
//
// - cancelling the context.Context passed to WithContext
// - os.Interrupt
// - syscall.SIGHUP
// - syscall.SIGINT
// - syscall.SIGQUIT
// - syscall.SIGTERM
func (k *Keeper) Open() error {
	ctx, stop := signal.NotifyContext(
		k.ctx,
		os.Interrupt,
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGQUIT,
		syscall.SIGTERM,
	)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)

		k.l.Info(fmt.Sprintf("running web server at %s", k.srv.Addr), nil)
		if err := k.srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("could not listen: %w", err)
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		k.l.Info(fmt.Sprint("received shutdown signal: ", context.Cause(ctx)), nil)
	}

	return k.Shutdown()
}

// Shutdown shuts down the web server,
// waiting up to 5 seconds for open requests to finish.
func (k *Keeper) Shutdown() error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	k.l.Info("shutting down web server", nil)
	if err := k.srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("could not shutdown: %w", err)
	}

	k.l.Info("web server shutdown successfully", nil)
	return nil
}
