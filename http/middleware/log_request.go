package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/xy-planning-network/tollgate"
	"github.com/xy-planning-network/tollgate/logger"
)

// LogRequest logs the request's originating IP address, method, requested URL and response status
// using the enclosed implementation of logger.Logger.
//
// LogRequest masks query values under logger.MaskedKeys.
//
// if logger.Logger is nil, NoopAdapter returns and this middleware does nothing.
func LogRequest(ls logger.Logger) Adapter {
	if ls == nil {
		return NoopAdapter
	}

	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w}
			h.ServeHTTP(sw, r)

			uri := r.URL.Path
			q := r.URL.Query()
			tollgate.Mask(q)
			if query := q.Encode(); query != "" {
				uri += "?" + query
			}

			strs := []string{r.Method, uri, http.StatusText(sw.status())}
			if ip, ok := r.Context().Value(tollgate.IpAddrKey).(string); ok {
				strs = append([]string{ip}, strs...)
			}

			data := map[string]any{
				"duration": time.Since(start).String(),
				"size":     sw.size,
				"status":   sw.status(),
			}

			if id, ok := r.Context().Value(tollgate.RequestIDKey).(string); ok {
				data["requestID"] = id
			}

			ls.Info(strings.Join(strs, " "), &logger.LogContext{Data: data})
		})
	}
}

// statusWriter records the status code and size of a response.
type statusWriter struct {
	http.ResponseWriter
	code int
	size int
}

func (w *statusWriter) WriteHeader(code int) {
	if w.code == 0 {
		w.code = code
	}

	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.code == 0 {
		w.code = http.StatusOK
	}

	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}

func (w *statusWriter) Unwrap() http.ResponseWriter { return w.ResponseWriter }

func (w *statusWriter) status() int {
	if w.code == 0 {
		return http.StatusOK
	}

	return w.code
}
