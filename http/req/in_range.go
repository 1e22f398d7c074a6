package req

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xy-planning-network/tollgate"
)

// InRange fails with tollgate.ErrNotValid unless the value at path
// is a number between min and max, inclusive.
// Numeric strings count as numbers.
//
// path is dotted, as in "query.num1", see (*Request).Resolve.
// An unset path fails.
func InRange(path string, min, max float64) Rule {
	lo, hi := decimal.NewFromFloat(min), decimal.NewFromFloat(max)

	return func(r *Request) error {
		val, ok := r.Resolve(path)
		if ok {
			if d, ok := toDecimal(val); ok && d.GreaterThanOrEqual(lo) && d.LessThanOrEqual(hi) {
				return nil
			}
		}

		return newError(tollgate.ErrNotValid, "%s must be between %s and %s", path, lo, hi)
	}
}

func toDecimal(val any) (decimal.Decimal, bool) {
	switch v := val.(type) {
	case int:
		return decimal.NewFromInt(int64(v)), true
	case int32:
		return decimal.NewFromInt32(v), true
	case int64:
		return decimal.NewFromInt(v), true
	case float32:
		return decimal.NewFromFloat32(v), true
	case float64:
		return decimal.NewFromFloat(v), true
	case json.Number:
		return parseDecimal(string(v))
	case string:
		return parseDecimal(v)
	default:
		return decimal.Decimal{}, false
	}
}

func parseDecimal(s string) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Decimal{}, false
	}

	return d, true
}
