package keeper

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/xy-planning-network/tollgate"
	"github.com/xy-planning-network/tollgate/http/middleware"
	"github.com/xy-planning-network/tollgate/http/req"
	"github.com/xy-planning-network/tollgate/http/resp"
	"github.com/xy-planning-network/tollgate/http/router"
	"github.com/xy-planning-network/tollgate/logger"
)

const (
	// Environment defaults
	EnvironmentEnvVar = "TOLLGATE_ENV"

	// Log defaults
	logLevelEnvVar = "TOLLGATE_LOG_LEVEL"

	// Request defaults
	maxBodyBytesEnvVar  = "TOLLGATE_MAX_BODY_BYTES"
	DefaultMaxBodyBytes = req.DefaultMaxBodyBytes
	corsOriginEnvVar    = "TOLLGATE_CORS_ORIGIN"
	forceHTTPSEnvVar    = "TOLLGATE_FORCE_HTTPS"
	rateLimitEnvVar     = "TOLLGATE_RATE_LIMIT"
	DefaultRateLimit    = 5
	rateBurstEnvVar     = "TOLLGATE_RATE_BURST"
	DefaultRateBurst    = 20

	// Response defaults
	contactErrMsgEnvVar  = "TOLLGATE_CONTACT_ERR_MSG"
	DefaultContactErrMsg = "Something went wrong, please try again later."

	// Web server defaults
	addrEnvVar                = "TOLLGATE_ADDR"
	DefaultAddr               = ":8080"
	serverReadTimeoutEnvVar   = "TOLLGATE_SERVER_READ_TIMEOUT"
	DefaultServerReadTimeout  = 5 * time.Second
	serverIdleTimeoutEnvVar   = "TOLLGATE_SERVER_IDLE_TIMEOUT"
	DefaultServerIdleTimeout  = 120 * time.Second
	serverWriteTimeoutEnvVar  = "TOLLGATE_SERVER_WRITE_TIMEOUT"
	DefaultServerWriteTimeout = 5 * time.Second
)

// defaultLogger constructs a logger.Logger configured for use in the service.
func defaultLogger(env tollgate.Environment) logger.Logger {
	return logger.New(
		logger.WithEnv(env.String()),
		logger.WithLevel(tollgate.EnvVarOrLogLevel(logLevelEnvVar, logger.LogLevelInfo)),
	)
}

// defaultResponder configures the [*resp.Responder] to be used by http.Handlers.
func defaultResponder(l logger.Logger) *resp.Responder {
	return resp.NewResponder(
		resp.WithContactErrMsg(tollgate.EnvVarOrString(contactErrMsgEnvVar, DefaultContactErrMsg)),
		resp.WithLogger(l),
	)
}

// defaultRouter constructs a [*router.Router] to be used by the web server,
// applying these middlewares to every request, in order:
//
//   - middleware.RateLimit
//   - middleware.ForceHTTPS, if TOLLGATE_FORCE_HTTPS is true
//   - middleware.RequestID
//   - middleware.InjectIPAddress
//   - middleware.CORS
//   - middleware.LogRequest
//   - middleware.LoadRequest
func defaultRouter(env tollgate.Environment, l logger.Logger, rp *resp.Responder, maxBodyBytes int64) *router.Router {
	logReq := middleware.LogRequest(l)
	visitors := middleware.NewVisitorsWithLimit(
		float64(tollgate.EnvVarOrInt(rateLimitEnvVar, DefaultRateLimit)),
		tollgate.EnvVarOrInt(rateBurstEnvVar, DefaultRateBurst),
	)

	var forceHTTPS middleware.Adapter = middleware.NoopAdapter
	if tollgate.EnvVarOrBool(forceHTTPSEnvVar, false) {
		forceHTTPS = middleware.ForceHTTPS(env, rp.Err)
	}

	r := router.New(env, logReq, rp.Err)
	r.OnEveryRequest(
		middleware.RateLimit(visitors),
		forceHTTPS,
		middleware.RequestID(),
		middleware.InjectIPAddress(),
		middleware.CORS(tollgate.EnvVarOrString(corsOriginEnvVar, "")),
		logReq,
		middleware.LoadRequest(rp.Err, req.WithMaxBodyBytes(maxBodyBytes)),
	)

	r.HandleNotFound(func(w http.ResponseWriter, hr *http.Request) {
		rp.Err(w, hr, &req.Error{Status: http.StatusNotFound, Message: http.StatusText(http.StatusNotFound)})
	})

	return r
}

// defaultServer constructs a default [*http.Server].
func defaultServer(ctx context.Context) *http.Server {
	addr := tollgate.EnvVarOrString(addrEnvVar, DefaultAddr)
	if _, _, err := net.SplitHostPort(addr); err != nil {
		addr = ":" + addr
	}

	return &http.Server{
		Addr:         addr,
		BaseContext:  func(_ net.Listener) context.Context { return ctx },
		IdleTimeout:  tollgate.EnvVarOrDuration(serverIdleTimeoutEnvVar, DefaultServerIdleTimeout),
		ReadTimeout:  tollgate.EnvVarOrDuration(serverReadTimeoutEnvVar, DefaultServerReadTimeout),
		WriteTimeout: tollgate.EnvVarOrDuration(serverWriteTimeoutEnvVar, DefaultServerWriteTimeout),
	}
}
