package middleware

import (
	"net/http"
)

// An Adapter allows chaining middlewares together.
type Adapter func(http.Handler) http.Handler

// An ErrorHandler responds to an HTTP request a middleware cannot let through.
//
// (*resp.Responder).Err is an ErrorHandler.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// Chain glues the set of adapters to the handler.
func Chain(handler http.Handler, adapters ...Adapter) http.Handler {
	//NOTE: Loop in reverse to preserve middleware order
	for i := len(adapters) - 1; i >= 0; i-- {
		handler = adapters[i](handler)
	}

	return handler
}

// NoopAdapter passes the handler through untouched.
func NoopAdapter(h http.Handler) http.Handler { return h }
