package req_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/tollgate"
	"github.com/xy-planning-network/tollgate/http/req"
)

func TestObjectifyRequestData(t *testing.T) {
	tcs := []struct {
		name     string
		fields   []string
		required bool
		r        *req.Request
		expected req.Values
		err      error
		msg      string
	}{
		{
			name:     "One-Per-Source",
			fields:   []string{"bodyArg", "paramsArg", "queryArg"},
			r:        req.NewRequest(req.Values{"bodyArg": "b"}, req.Values{"queryArg": "q"}, req.Values{"paramsArg": "p"}),
			expected: req.Values{"bodyArg": "b", "paramsArg": "p", "queryArg": "q"},
		},
		{
			name:   "Unrequested-Fields-Ignored",
			fields: []string{"bodyArg"},
			r: req.NewRequest(
				req.Values{"bodyArg": 1, "other": 2},
				req.Values{"another": "3"},
				nil,
			),
			expected: req.Values{"bodyArg": 1},
		},
		{
			name:   "Repeated-Conflicts",
			fields: []string{"bodyArg", "repeatedArg"},
			r: req.NewRequest(
				req.Values{"bodyArg": "b", "repeatedArg": "1"},
				req.Values{"repeatedArg": "2"},
				nil,
			),
			err: tollgate.ErrConflict,
			msg: "repeatedArg exists in more than one object",
		},
		{
			name:   "Equal-Values-Conflict",
			fields: []string{"id"},
			r:      req.NewRequest(nil, req.Values{"id": "7"}, req.Values{"id": "7"}),
			err:    tollgate.ErrConflict,
			msg:    "id exists in more than one object",
		},
		{
			name:     "Missing-Not-Required",
			fields:   []string{"bodyArg", "notFoundArg"},
			r:        req.NewRequest(req.Values{"bodyArg": "b"}, nil, nil),
			expected: req.Values{"bodyArg": "b"},
		},
		{
			name:     "Missing-Required",
			fields:   []string{"bodyArg", "notFoundArg"},
			required: true,
			r:        req.NewRequest(req.Values{"bodyArg": "b"}, nil, nil),
			err:      tollgate.ErrMissingField,
			msg:      "notFoundArg is not found anywhere",
		},
		{
			name:     "Constructor-Not-Inherited",
			fields:   []string{"constructor"},
			required: true,
			r:        req.NewRequest(req.Values{"a": 1}, req.Values{"b": 2}, req.Values{"c": 3}),
			err:      tollgate.ErrMissingField,
			msg:      "constructor is not found anywhere",
		},
		{
			name:     "Constructor-Set",
			fields:   []string{"constructor"},
			required: true,
			r:        req.NewRequest(nil, req.Values{"constructor": "yes"}, nil),
			expected: req.Values{"constructor": "yes"},
		},
		{
			name:     "Zero-Values-Kept",
			fields:   []string{"empty", "zero", "no", "null"},
			required: true,
			r: req.NewRequest(
				req.Values{"empty": "", "zero": 0},
				req.Values{"no": false},
				req.Values{"null": nil},
			),
			expected: req.Values{"empty": "", "zero": 0, "no": false, "null": nil},
		},
		{
			name:     "No-Fields",
			r:        req.NewRequest(req.Values{"a": 1}, nil, nil),
			expected: req.Values{},
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			err := req.ObjectifyRequestData(tc.fields, tc.required)(tc.r)

			// Assert
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				require.EqualError(t, err, tc.msg)

				var actual *req.Error
				require.ErrorAs(t, err, &actual)
				require.Equal(t, http.StatusBadRequest, actual.Status)
				require.Nil(t, tc.r.Data)
				return
			}

			require.Nil(t, err)
			require.Equal(t, tc.expected, tc.r.Data)
		})
	}
}

func TestObjectifyRequestDataFresh(t *testing.T) {
	// Arrange
	rule := req.ObjectifyRequestData([]string{"a", "b"}, false)
	first := req.NewRequest(req.Values{"a": 1}, nil, nil)
	second := req.NewRequest(nil, req.Values{"b": 2}, nil)

	// Act
	require.Nil(t, rule(first))
	require.Nil(t, rule(second))

	// Assert
	require.Equal(t, req.Values{"a": 1}, first.Data)
	require.Equal(t, req.Values{"b": 2}, second.Data)
}
