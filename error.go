package tollgate

import "errors"

var (
	ErrBadAny         = errors.New("bad any")
	ErrBadConfig      = errors.New("bad config")
	ErrBadFormat      = errors.New("bad format")
	ErrConflict       = errors.New("conflict")
	ErrMissingField   = errors.New("missing field")
	ErrNotImplemented = errors.New("not implemented")
	ErrNotValid       = errors.New("invalid")
	ErrUnexpected     = errors.New("unexpected")
)
