package req

import (
	"slices"

	"github.com/xy-planning-network/tollgate"
)

// ObjectifyRequestData gathers fields from the Body, Query and Params of a *Request
// into *Request.Data.
//
// Each field is looked up in every Source.
// A field set in more than one Source fails with tollgate.ErrConflict,
// even when the values are equal.
// A field set nowhere is left out of *Request.Data,
// unless required is true, in which case it fails with tollgate.ErrMissingField.
// A set field is kept whatever its value, including "", 0, false and nil.
//
// The first failure stops the remaining fields from being looked up
// and leaves *Request.Data untouched.
func ObjectifyRequestData(fields []string, required bool) Rule {
	fields = slices.Clone(fields)

	return func(r *Request) error {
		data := make(Values, len(fields))
		for _, field := range fields {
			var (
				val   any
				found bool
			)

			for _, src := range Sources() {
				v, ok := r.From(src).Lookup(field)
				if !ok {
					continue
				}

				if found {
					return newError(tollgate.ErrConflict, "%s exists in more than one object", field)
				}

				val, found = v, true
			}

			if !found {
				if required {
					return newError(tollgate.ErrMissingField, "%s is not found anywhere", field)
				}

				continue
			}

			data[field] = val
		}

		r.Data = data
		return nil
	}
}
