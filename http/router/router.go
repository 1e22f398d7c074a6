package router

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/xy-planning-network/tollgate"
	"github.com/xy-planning-network/tollgate/http/middleware"
	"github.com/xy-planning-network/tollgate/http/req"
)

// A Route maps a path and HTTP method to an [http.HandlerFunc].
// Additional [middleware.Adapter] can be called when a server handles
// a request matching the Route.
//
// Rules run, through [middleware.Shape], after every [middleware.Adapter].
// Path variables in Path, like "/items/{id}", become the [req.Params] of the request.
type Route struct {
	Path        string
	Method      string
	Handler     http.HandlerFunc
	Middlewares []middleware.Adapter
	Rules       []req.Rule
}

// Router routes requests for resources to their handlers.
type Router struct {
	Env           tollgate.Environment
	everyReqStack []middleware.Adapter
	logReq        middleware.Adapter
	onErr         middleware.ErrorHandler
	r             *mux.Router
}

// New constructs a [*Router] for the given environment.
//
// onErr responds to requests failing the Rules of a Route.
func New(env tollgate.Environment, logReq middleware.Adapter, onErr middleware.ErrorHandler) *Router {
	if logReq == nil {
		logReq = middleware.NoopAdapter
	}

	return &Router{Env: env, logReq: logReq, onErr: onErr, r: mux.NewRouter()}
}

// CatchAll sets up a handler for all routes to funnel to for e.g. maintenance mode.
func (r *Router) CatchAll(handler http.HandlerFunc) {
	r.r.PathPrefix("/").Handler(
		middleware.ReportPanic(r.Env)(middleware.Chain(handler, r.everyReqStack...)),
	)
}

// Handle applies the [Route] to the [*Router].
func (r *Router) Handle(route Route) {
	r.HandleRoutes([]Route{route})
}

// HandleNotFound sets the provided [http.HandlerFunc] as the default function
// for when no other registered Route is matched.
func (r *Router) HandleNotFound(handler http.HandlerFunc) {
	r.r.NotFoundHandler = middleware.ReportPanic(r.Env)(middleware.Chain(handler, r.logReq))
}

// HandleRoutes registers the set of Routes on the Router
// and includes all the [middleware.Adapter] on each Route.
// Any [middleware.Adapter] already assigned to a Route is appended to middlewares,
// so are called after the default set.
//
// HandleRoutes panics if a Route has Rules but New was given no [middleware.ErrorHandler].
func (r *Router) HandleRoutes(routes []Route, middlewares ...middleware.Adapter) {
	for _, route := range routes {
		mws := make([]middleware.Adapter, 0, len(r.everyReqStack)+len(middlewares)+len(route.Middlewares)+1)
		mws = append(mws, r.everyReqStack...)
		mws = append(mws, middlewares...)
		mws = append(mws, route.Middlewares...)
		if len(route.Rules) > 0 {
			mws = append(mws, middleware.Shape(r.onErr, route.Rules...))
		}

		handler := middleware.ReportPanic(r.Env)(middleware.Chain(route.Handler, mws...))
		r.r.Handle(route.Path, handler).Methods(route.Method)
	}
}

// OnEveryRequest appends the middlewares to the existing stack
// that the [*Router] will apply to every request.
func (r *Router) OnEveryRequest(middlewares ...middleware.Adapter) {
	r.everyReqStack = append(r.everyReqStack, middlewares...)
}

// ServeHTTP responds to an HTTP request.
func (r *Router) ServeHTTP(w http.ResponseWriter, hr *http.Request) {
	r.r.ServeHTTP(w, hr)
}

// Subrouter constructs a [Router] that handles requests to endpoints matching the prefix.
//
// e.g., r.Subrouter("/api/v1") handles requests to endpoints like /api/v1/users
func (r *Router) Subrouter(prefix string) *Router {
	return &Router{
		Env:           r.Env,
		r:             r.r.PathPrefix(prefix).Subrouter(),
		logReq:        r.logReq,
		onErr:         r.onErr,
		everyReqStack: append([]middleware.Adapter(nil), r.everyReqStack...),
	}
}
