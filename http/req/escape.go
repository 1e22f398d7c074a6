package req

import (
	"fmt"
	"regexp"
	"slices"
)

// Escape replaces the value of each field in src with a copy
// safe to embed in a regular expression as a literal.
//
// Strings and each string in a []string are escaped.
// Unset fields and values of other types are left alone.
//
// Escape panics if src is not a known Source.
func Escape(src Source, fields ...string) Rule {
	if err := src.Valid(); err != nil {
		panic(fmt.Sprintf("tollgate/http/req: Escape called with %q: %s", src, err))
	}

	fields = slices.Clone(fields)

	return func(r *Request) error {
		vals := r.From(src)
		for _, field := range fields {
			switch val := vals[field].(type) {
			case string:
				vals[field] = regexp.QuoteMeta(val)

			case []string:
				escaped := make([]string, len(val))
				for i, s := range val {
					escaped[i] = regexp.QuoteMeta(s)
				}

				vals[field] = escaped
			}
		}

		return nil
	}
}
