package resp

import (
	"net/http"

	"github.com/xy-planning-network/tollgate"
	"github.com/xy-planning-network/tollgate/logger"
)

// newLogContext helps structure a logger.LogContext from the provided parts.
func newLogContext(r *http.Request, err error, data map[string]any) *logger.LogContext {
	if r == nil && err == nil && data == nil {
		return nil
	}

	ctx := &logger.LogContext{Request: r, Error: err, Data: data}
	if r == nil {
		return ctx
	}

	if id, ok := r.Context().Value(tollgate.RequestIDKey).(string); ok {
		if ctx.Data == nil {
			ctx.Data = make(map[string]any)
		}

		ctx.Data["requestID"] = id
	}

	return ctx
}
