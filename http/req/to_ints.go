package req

import (
	"encoding/json"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/xy-planning-network/tollgate"
)

// ToInts converts each field found in the Query or Body into an int, in place.
//
// Strings are read as base-10 integers, so "0102" becomes 102.
// Numbers without a fractional part are converted as well.
//
// A field that neither Source holds as an integer fails with tollgate.ErrNotValid.
func ToInts(fields ...string) Rule {
	fields = slices.Clone(fields)

	return func(r *Request) error {
		for _, field := range fields {
			var converted bool
			for _, vals := range []Values{r.Query, r.Body} {
				val, ok := vals.Lookup(field)
				if !ok {
					continue
				}

				n, ok := toInt(val)
				if !ok {
					continue
				}

				vals[field] = n
				converted = true
			}

			if !converted {
				return newError(tollgate.ErrNotValid, "%s must be an integer", field)
			}
		}

		return nil
	}
}

func toInt(val any) (int, bool) {
	switch v := val.(type) {
	case int:
		return v, true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case float64:
		return wholeFloat(v)
	case json.Number:
		if n, err := strconv.ParseInt(string(v), 10, 0); err == nil {
			return int(n), true
		}

		f, err := v.Float64()
		if err != nil {
			return 0, false
		}

		return wholeFloat(f)
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 0)
		if err != nil {
			return 0, false
		}

		return int(n), true
	default:
		return 0, false
	}
}

func wholeFloat(f float64) (int, bool) {
	if math.IsInf(f, 0) || math.IsNaN(f) || f != math.Trunc(f) {
		return 0, false
	}

	if f > math.MaxInt || f < math.MinInt {
		return 0, false
	}

	return int(f), true
}
