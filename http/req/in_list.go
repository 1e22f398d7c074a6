package req

import (
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/xy-planning-network/tollgate"
)

// InList fails with tollgate.ErrNotValid unless the value at path,
// read as a comma-separated list, holds only allowed elements.
//
// path is dotted, as in "query.fields", see (*Request).Resolve.
// An unset path fails.
func InList(path string, allowed ...string) Rule {
	set := mapset.NewSet(allowed...)
	listed := strings.Join(allowed, ", ")

	return func(r *Request) error {
		val, ok := r.Resolve(path)
		if ok {
			if elems, ok := splitList(val); ok && set.Contains(elems...) {
				return nil
			}
		}

		return newError(tollgate.ErrNotValid, "%s must be one of [%s]", path, listed)
	}
}

// splitList splits strings in val on commas.
// val may be a string, a []string, or a []any holding only strings.
func splitList(val any) ([]string, bool) {
	var raw []string
	switch v := val.(type) {
	case string:
		raw = []string{v}
	case []string:
		raw = v
	case []any:
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}

			raw = append(raw, s)
		}
	default:
		return nil, false
	}

	var elems []string
	for _, s := range raw {
		for _, elem := range strings.Split(s, ",") {
			elems = append(elems, strings.TrimSpace(elem))
		}
	}

	return elems, len(elems) > 0
}
