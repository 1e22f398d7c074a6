package middleware

import (
	"net/http"

	"github.com/xy-planning-network/tollgate/http/req"
)

// LoadRequest reads the body, query params and path params of an HTTP request
// into a *req.Request and stashes it in the request's context,
// unless one is stashed there already.
//
// A request whose body cannot be read is handed to onErr and goes no further.
//
// If onErr is nil, NoopAdapter returns and this middleware does nothing.
func LoadRequest(onErr ErrorHandler, opts ...req.LoadOpt) Adapter {
	if onErr == nil {
		return NoopAdapter
	}

	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r, _, err := loadRequest(r, opts)
			if err != nil {
				onErr(w, r, err)
				return
			}

			h.ServeHTTP(w, r)
		})
	}
}

// Shape runs rules, in order, over the *req.Request of an HTTP request.
// If LoadRequest has not stashed a *req.Request in the request's context,
// Shape loads and stashes one with default options.
//
// The first rule returning an error stops the rest;
// the request is handed to onErr with that error and goes no further.
// Otherwise, the next handler can retrieve the shaped *req.Request with req.FromContext.
//
// Shape panics if onErr is nil.
func Shape(onErr ErrorHandler, rules ...req.Rule) Adapter {
	if onErr == nil {
		panic("tollgate/http/middleware: Shape called with nil ErrorHandler")
	}

	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r, data, err := loadRequest(r, nil)
			if err != nil {
				onErr(w, r, err)
				return
			}

			for _, rule := range rules {
				if err := rule(data); err != nil {
					onErr(w, r, err)
					return
				}
			}

			h.ServeHTTP(w, r)
		})
	}
}

// loadRequest retrieves the *req.Request stashed in r's context,
// loading and stashing one if none is.
func loadRequest(r *http.Request, opts []req.LoadOpt) (*http.Request, *req.Request, error) {
	if data, ok := req.FromContext(r.Context()); ok {
		return r, data, nil
	}

	data, err := req.Load(r, opts...)
	if err != nil {
		return r, nil, err
	}

	return r.WithContext(req.NewContext(r.Context(), data)), data, nil
}
