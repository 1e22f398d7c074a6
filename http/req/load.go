package req

import (
	"bytes"
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"net/url"

	"github.com/gorilla/mux"
	"github.com/xy-planning-network/tollgate"
)

// DefaultMaxBodyBytes caps how much of a request body Load reads.
const DefaultMaxBodyBytes int64 = 1 << 20

// A LoadOpt configures how Load reads an *http.Request.
type LoadOpt func(*loader)

type loader struct {
	maxBodyBytes int64
}

// WithMaxBodyBytes caps how much of a request body Load reads.
// Non-positive values leave DefaultMaxBodyBytes in place.
func WithMaxBodyBytes(n int64) LoadOpt {
	return func(l *loader) {
		if n > 0 {
			l.maxBodyBytes = n
		}
	}
}

// Load reads the body, query params and path params of r into a *Request.
//
// A JSON body must be an object; its numbers are kept as [encoding/json.Number].
// Form bodies are read from r.PostForm.
// Bodies of any other media type leave the Body Source empty and r.Body unread.
// Otherwise, Load replaces r.Body so handlers can read it again.
//
// A body over the size cap fails with a 413 *Error,
// one that cannot be parsed with a 400 *Error;
// both wrap tollgate.ErrBadFormat.
//
// Query and form values set once become a string;
// those set many times become a []string.
// Path params come from [github.com/gorilla/mux.Vars].
func Load(r *http.Request, opts ...LoadOpt) (*Request, error) {
	l := &loader{maxBodyBytes: DefaultMaxBodyBytes}
	for _, opt := range opts {
		opt(l)
	}

	body, err := l.body(r)
	if err != nil {
		return nil, err
	}

	params := make(Values)
	for k, v := range mux.Vars(r) {
		params[k] = v
	}

	return NewRequest(body, fromURLValues(r.URL.Query()), params), nil
}

func (l *loader) body(r *http.Request) (Values, error) {
	if r.Body == nil || r.Body == http.NoBody {
		return make(Values), nil
	}

	mt, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mt {
	case "", "application/json", "application/x-www-form-urlencoded", "multipart/form-data":
	default:
		return make(Values), nil
	}

	b, err := io.ReadAll(io.LimitReader(r.Body, l.maxBodyBytes+1))
	r.Body.Close()
	r.Body = io.NopCloser(bytes.NewReader(b))
	if err != nil {
		return nil, NewStatusError(http.StatusBadRequest, tollgate.ErrBadFormat, "request body could not be read")
	}

	if int64(len(b)) > l.maxBodyBytes {
		return nil, NewStatusError(
			http.StatusRequestEntityTooLarge,
			tollgate.ErrBadFormat,
			"request body exceeds %d bytes", l.maxBodyBytes,
		)
	}

	switch mt {
	case "application/x-www-form-urlencoded":
		defer func() { r.Body = io.NopCloser(bytes.NewReader(b)) }()
		if err := r.ParseForm(); err != nil {
			return nil, NewStatusError(http.StatusBadRequest, tollgate.ErrBadFormat, "request body is not a valid form")
		}

		return fromURLValues(r.PostForm), nil

	case "multipart/form-data":
		defer func() { r.Body = io.NopCloser(bytes.NewReader(b)) }()
		if err := r.ParseMultipartForm(l.maxBodyBytes); err != nil {
			return nil, NewStatusError(http.StatusBadRequest, tollgate.ErrBadFormat, "request body is not a valid multipart form")
		}

		return fromURLValues(r.MultipartForm.Value), nil
	}

	if len(bytes.TrimSpace(b)) == 0 {
		return make(Values), nil
	}

	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()

	body := make(Values)
	if err := dec.Decode(&body); err != nil {
		return nil, NewStatusError(http.StatusBadRequest, tollgate.ErrBadFormat, "request body must be a JSON object")
	}

	return body, nil
}

func fromURLValues(uv url.Values) Values {
	vals := make(Values, len(uv))
	for k, v := range uv {
		switch len(v) {
		case 0:
			vals[k] = ""
		case 1:
			vals[k] = v[0]
		default:
			vals[k] = append([]string(nil), v...)
		}
	}

	return vals
}
