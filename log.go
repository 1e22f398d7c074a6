package tollgate

import (
	"net/url"

	"github.com/xy-planning-network/tollgate/logger"
)

const LogMaskVal = logger.MaskVal

// Mask replaces every value set for each key in vals with a single LogMaskVal.
// Without keys, Mask hides logger.MaskedKeys, the same keys LogContext hides in request bodies.
// Keys not set in vals are skipped.
func Mask(vals url.Values, keys ...string) {
	if len(keys) == 0 {
		keys = logger.MaskedKeys
	}

	for _, key := range keys {
		if _, ok := vals[key]; ok {
			vals[key] = []string{LogMaskVal}
		}
	}
}
