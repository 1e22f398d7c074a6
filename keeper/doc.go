/*
Package keeper initializes and manages a tollgate service with sane defaults.

# Keeper

The main entrypoint to package keeper is the [Keeper] type,
constructed with [New].
A [Keeper] embeds the [*resp.Responder] and [*router.Router] it builds,
so routes can be registered on it directly:

	k, err := keeper.New()
	if err != nil {
		log.Fatal(err)
	}

	k.Handle(router.Route{
		Path:    "/items/{id}",
		Method:  http.MethodPut,
		Handler: updateItem,
		Rules: []req.Rule{
			req.ToInts("id"),
			req.ObjectifyRequestData([]string{"id", "name"}, true),
		},
	})

	if err := k.Open(); err != nil {
		log.Fatal(err)
	}

Upon calling [*Keeper.Open], all routes configured up to that point are now active.
Stop that web server with [*Keeper.Shutdown],
by cancelling the context passed to [WithContext],
or by sending a signal [*Keeper.Open] listens for.

# Configuration

Environment variables ought to be set in a file called ".env"
found at the same directory the service is executed from.

Here are the available environment variables.
  - SENTRY_DSN: reports errors to Sentry when set
  - TOLLGATE_ADDR: the address the web server listens on; default: :8080
  - TOLLGATE_CONTACT_ERR_MSG: the message clients see in place of unexpected errors
  - TOLLGATE_CORS_ORIGIN: the origin allowed to make cross-origin requests; default: none
  - TOLLGATE_ENV: the environment the service is running in; cf. [tollgate.Environment]
  - TOLLGATE_FORCE_HTTPS: redirects HTTP requests to HTTPS outside of development; default: false
  - TOLLGATE_LOG_LEVEL: the level at which to begin logging; default: INFO; cf. [logger.LogLevel]
  - TOLLGATE_MAX_BODY_BYTES: the largest request body read; default: 1048576
  - TOLLGATE_RATE_LIMIT: requests per second allowed per IP address; default: 5
  - TOLLGATE_RATE_BURST: requests allowed in a burst per IP address; default: 20
  - TOLLGATE_SERVER_IDLE_TIMEOUT: the timeout - as understood by [time.ParseDuration] - for idling between requests when using keep-alives; default: 120s
  - TOLLGATE_SERVER_READ_TIMEOUT: the timeout for reading HTTP requests; default: 5s
  - TOLLGATE_SERVER_WRITE_TIMEOUT: the timeout for writing HTTP responses; default: 5s
*/
package keeper
