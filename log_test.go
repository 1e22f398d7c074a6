package tollgate_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/tollgate"
)

func TestMask(t *testing.T) {
	tcs := []struct {
		name     string
		vals     url.Values
		keys     []string
		expected url.Values
	}{
		{"Empty", url.Values{}, nil, url.Values{}},
		{
			"Default-Keys",
			url.Values{"q": {"go"}, "password": {"hunter2"}, "token": {"abc", "def"}},
			nil,
			url.Values{"q": {"go"}, "password": {tollgate.LogMaskVal}, "token": {tollgate.LogMaskVal}},
		},
		{
			"Named-Key",
			url.Values{"q": {"go"}, "password": {"hunter2"}},
			[]string{"q"},
			url.Values{"q": {tollgate.LogMaskVal}, "password": {"hunter2"}},
		},
		{
			"Unset-Key",
			url.Values{"page": {"2"}},
			[]string{"ssn"},
			url.Values{"page": {"2"}},
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			tollgate.Mask(tc.vals, tc.keys...)

			// Assert
			require.Equal(t, tc.expected, tc.vals)
		})
	}
}
