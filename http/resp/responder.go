package resp

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/xy-planning-network/tollgate"
	"github.com/xy-planning-network/tollgate/http/req"
	"github.com/xy-planning-network/tollgate/logger"
)

const (
	responderFrames = 0

	jsonMediaType = "application/json; charset=UTF-8"
)

// Responder maintains reusable pieces for responding to HTTP requests with JSON.
//
// Most oftentimes, setting up a single instance of a Responder suffices for an application.
type Responder struct {
	logger logger.Logger

	// Pool of *bytes.Buffer to prerender responses into
	pool *sync.Pool

	// Message clients see when an unexpected error occurs
	contactErrMsg string
}

// NewResponder constructs a *Responder using the ResponderOptFns passed in.
func NewResponder(opts ...ResponderOptFn) *Responder {
	d := &Responder{
		pool: &sync.Pool{New: func() any { return new(bytes.Buffer) }},
	}
	for _, opt := range opts {
		opt(d)
	}

	if d.logger == nil {
		d.logger = logger.New()
	}

	if l, ok := d.logger.(logger.SkipLogger); ok {
		d.logger = l.AddSkip(responderFrames)
	}

	return d
}

type jsonSchema struct {
	D any `json:"data,omitempty"`
}

// Json responds with the value Data set, in JSON format:
//
//	{
//		"data": {}
//	}
//
// The default status code is 200.
func (doer *Responder) Json(w http.ResponseWriter, r *http.Request, opts ...Fn) error {
	rr, err := doer.do(w, r, opts...)
	if err != nil {
		return err
	}

	if rr.code == 0 {
		rr.code = http.StatusOK
	}

	return doer.write(w, r, rr.code, jsonSchema{D: rr.data})
}

// Err responds with err in JSON format.
//
// A *req.Error is written as is, with its own status code:
//
//	{"status":400,"message":"bodyArg exists in more than one object"}
//
// Any other error is written with status code 500
// and the message WithContactErrMsg sets, so its details stay out of the response.
//
// Err logs 4xx errors at the warn level and 5xx errors at the error level.
//
// Err has the shape of a middleware.ErrorHandler.
func (doer *Responder) Err(w http.ResponseWriter, r *http.Request, err error) {
	if err == nil {
		err = fmt.Errorf("%w: Err called with nil error", tollgate.ErrUnexpected)
	}

	var body *req.Error
	if !errors.As(err, &body) {
		msg := doer.contactErrMsg
		if msg == "" {
			msg = http.StatusText(http.StatusInternalServerError)
		}

		body = &req.Error{Status: http.StatusInternalServerError, Message: msg}
	}

	if body.Status >= http.StatusInternalServerError {
		doer.logger.Error(err.Error(), newLogContext(r, err, nil))
	} else {
		doer.logger.Warn(err.Error(), newLogContext(r, err, nil))
	}

	doer.write(w, r, body.Status, body)
}

// do applies all options to the passed in http.ResponseWriter and *http.Request.
//
// Should all options apply successfully, do returns a validly formed *Response.
func (doer *Responder) do(w http.ResponseWriter, r *http.Request, opts ...Fn) (*Response, error) {
	resp := &Response{w: w, r: r}
	for _, opt := range opts {
		select {
		case <-r.Context().Done():
			return nil, fmt.Errorf("%w", ErrDone)
		default:
			if err := opt(*doer, resp); err != nil {
				return nil, err
			}
		}
	}

	return resp, nil
}

// write encodes payload as JSON and writes it with code.
func (doer *Responder) write(w http.ResponseWriter, r *http.Request, code int, payload any) error {
	b := doer.pool.Get().(*bytes.Buffer)
	b.Reset()
	defer doer.pool.Put(b)

	if err := json.NewEncoder(b).Encode(payload); err != nil {
		err = fmt.Errorf("tollgate/http/resp: failed encoding response: %w", err)
		doer.logger.Error(err.Error(), newLogContext(r, err, nil))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return err
	}

	w.Header().Set("Content-Type", jsonMediaType)
	w.WriteHeader(code)
	if _, err := b.WriteTo(w); err != nil {
		return err
	}

	return nil
}
