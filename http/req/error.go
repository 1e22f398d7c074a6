package req

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/xy-planning-network/tollgate"
)

// An Error is a request that cannot proceed past a Rule.
//
// An Error marshals into JSON as:
//
//	{"status":400,"message":"bodyArg exists in more than one object"}
//
// Errors is only set by presence checks.
// Every Rule fails with status 400; Load also fails with 413 for oversized bodies.
type Error struct {
	Status  int               `json:"status"`
	Message string            `json:"message"`
	Errors  []ValidationError `json:"errors,omitempty"`

	kind error
}

// newError constructs a 400 *Error wrapping kind.
func newError(kind error, format string, args ...any) *Error {
	return &Error{
		Status:  http.StatusBadRequest,
		Message: fmt.Sprintf(format, args...),
		kind:    kind,
	}
}

// NewStatusError constructs an *Error with status wrapping kind,
// for failures outside a Rule that still answer with the Error shape.
func NewStatusError(status int, kind error, format string, args ...any) *Error {
	e := newError(kind, format, args...)
	e.Status = status
	return e
}

func (e *Error) Error() string { return e.Message }

// Unwrap exposes the tollgate sentinel the Error is,
// such as tollgate.ErrConflict or tollgate.ErrBadFormat.
func (e *Error) Unwrap() error { return e.kind }

// A ValidationError is an issue with a concrete value not matching the rule set on its field.
type ValidationError struct {
	Field   string `json:"field"`
	Got     any    `json:"got"`
	Rule    string `json:"rule,omitempty"`
	Message string `json:"message,omitempty"`
}

// ValidationErrors is a set of ValidationError.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msg := fmt.Sprintf("field=%q rule=%q got=%q", err.Field, err.Rule, fmt.Sprint(err.Got))
		if err.Message != "" {
			msg += fmt.Sprintf(" message=%q", err.Message)
		}

		msgs = append(msgs, msg)
	}

	return strings.Join(msgs, "\n")
}

func (v ValidationErrors) MarshalJSON() ([]byte, error) {
	var errs struct {
		E []ValidationError `json:"validationErrors,omitempty"`
	}

	errs.E = append(errs.E, v...)

	return json.Marshal(errs)
}

func (ValidationErrors) Unwrap() error { return tollgate.ErrNotValid }
