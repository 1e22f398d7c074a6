package middleware

import (
	"time"

	sentryhttp "github.com/getsentry/sentry-go/http"
	"github.com/xy-planning-network/tollgate"
)

// ReportPanic recovers panics in the handler, reports them to Sentry and panics again,
// so the server's own recovery still applies.
//
// A Rule like req.BodyMustHave panics when misconfigured;
// ReportPanic surfaces those in every environment but development,
// where NoopAdapter returns and this middleware does nothing.
func ReportPanic(env tollgate.Environment) Adapter {
	if env.IsDevelopment() {
		return NoopAdapter
	}

	sh := sentryhttp.New(sentryhttp.Options{
		Repanic:         true,
		WaitForDelivery: true,
		Timeout:         2 * time.Second,
	})

	return sh.Handle
}
