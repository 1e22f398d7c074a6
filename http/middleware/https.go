package middleware

import (
	"net/http"
	"net/url"

	"github.com/xy-planning-network/tollgate"
	"github.com/xy-planning-network/tollgate/http/req"
)

// ForwardedProtoHeader names the header a proxy sets to the scheme the client used.
const ForwardedProtoHeader = "X-Forwarded-Proto"

// ForceHTTPS moves plain HTTP requests to HTTPS outside of development.
//
// GET, HEAD and OPTIONS requests are redirected with 308 Permanent Redirect.
// Any other request has already sent its payload in the clear,
// so it is handed to onErr with a 403 *req.Error instead of being replayed.
// If onErr is nil, those requests are redirected as well.
//
// The scheme is read from ForwardedProtoHeader when running behind a proxy,
// and from the connection otherwise.
func ForceHTTPS(env tollgate.Environment, onErr ErrorHandler) Adapter {
	if env.IsDevelopment() {
		return NoopAdapter
	}

	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isHTTPS(r) {
				h.ServeHTTP(w, r)
				return
			}

			switch r.Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
			default:
				if onErr != nil {
					onErr(w, r, req.NewStatusError(http.StatusForbidden, tollgate.ErrNotValid, "%s requires HTTPS", r.URL.Path))
					return
				}
			}

			u := new(url.URL)
			*u = *r.URL
			u.Scheme = "https"
			u.Host = r.Host

			http.Redirect(w, r, u.String(), http.StatusPermanentRedirect)
		})
	}
}

func isHTTPS(r *http.Request) bool {
	if proto := r.Header.Get(ForwardedProtoHeader); proto != "" {
		return proto == "https"
	}

	return r.TLS != nil
}
