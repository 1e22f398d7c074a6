package keeper

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/xy-planning-network/tollgate"
	"github.com/xy-planning-network/tollgate/http/resp"
	"github.com/xy-planning-network/tollgate/http/router"
	"github.com/xy-planning-network/tollgate/logger"
)

// A KeeperOption configures a *Keeper under construction.
type KeeperOption func(k *Keeper) error

// WithContext sets the context.Context the web server runs under.
// Cancelling ctx stops (*Keeper).Open.
func WithContext(ctx context.Context) KeeperOption {
	return func(k *Keeper) error {
		if ctx == nil {
			return errors.New("nil context")
		}

		k.ctx = ctx
		return nil
	}
}

// WithEnv sets the tollgate.Environment the *Keeper runs in.
func WithEnv(env tollgate.Environment) KeeperOption {
	return func(k *Keeper) error {
		if err := env.Valid(); err != nil {
			return fmt.Errorf("env %q: %w", env, err)
		}

		k.env = env
		return nil
	}
}

// WithLogger sets the logger.Logger every component logs with.
func WithLogger(l logger.Logger) KeeperOption {
	return func(k *Keeper) error {
		k.l = l
		return nil
	}
}

// WithMaxBodyBytes caps how much of a request body is read into a *req.Request.
func WithMaxBodyBytes(n int64) KeeperOption {
	return func(k *Keeper) error {
		if n <= 0 {
			return fmt.Errorf("max body bytes must be positive, got %d", n)
		}

		k.maxBodyBytes = n
		return nil
	}
}

// WithResponder sets the *resp.Responder handlers and Rules respond through.
func WithResponder(r *resp.Responder) KeeperOption {
	return func(k *Keeper) error {
		k.Responder = r
		return nil
	}
}

// WithRouter sets the *router.Router the web server routes requests with.
// The router is used as is; none of the default middlewares are added to it.
func WithRouter(r *router.Router) KeeperOption {
	return func(k *Keeper) error {
		k.Router = r
		return nil
	}
}

// WithServer sets the *http.Server to run.
// If s has no Handler, the *Keeper's router becomes its Handler.
func WithServer(s *http.Server) KeeperOption {
	return func(k *Keeper) error {
		k.srv = s
		return nil
	}
}
