package resp

import (
	"fmt"
	"net/http"
)

// A Fn is a functional option that mutates the state of the Response.
type Fn func(Responder, *Response) error

// A Response is the internal object a Responder response method builds while applying all
// functional options.
type Response struct {
	w    http.ResponseWriter
	r    *http.Request
	code int
	data any
}

// Code sets the response status code.
//
// Code returns ErrInvalid for values outside the range of HTTP status codes.
func Code(c int) Fn {
	return func(_ Responder, r *Response) error {
		if c < http.StatusContinue || c > 599 {
			return fmt.Errorf("%w: status code %d", ErrInvalid, c)
		}

		r.code = c
		return nil
	}
}

// Data stores the provided value for writing to the client.
func Data(d any) Fn {
	return func(_ Responder, r *Response) error {
		r.data = d
		return nil
	}
}
