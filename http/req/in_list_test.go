package req_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/tollgate"
	"github.com/xy-planning-network/tollgate/http/req"
)

func TestInList(t *testing.T) {
	tcs := []struct {
		name string
		r    *req.Request
		ok   bool
	}{
		{"Single", req.NewRequest(nil, req.Values{"fields": "name"}, nil), true},
		{"Comma-Separated", req.NewRequest(nil, req.Values{"fields": "name, email"}, nil), true},
		{"Repeated", req.NewRequest(nil, req.Values{"fields": []string{"name", "email,age"}}, nil), true},
		{"JSON-Array", req.NewRequest(nil, req.Values{"fields": []any{"age"}}, nil), true},
		{"Foreign", req.NewRequest(nil, req.Values{"fields": "name,password"}, nil), false},
		{"Empty-Element", req.NewRequest(nil, req.Values{"fields": "name,"}, nil), false},
		{"Not-String", req.NewRequest(nil, req.Values{"fields": 1}, nil), false},
		{"Mixed-Array", req.NewRequest(nil, req.Values{"fields": []any{"age", 1}}, nil), false},
		{"Missing", req.NewRequest(req.Values{"fields": "name"}, nil, nil), false},
	}

	rule := req.InList("query.fields", "name", "email", "age")

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			err := rule(tc.r)

			// Assert
			if tc.ok {
				require.Nil(t, err)
				return
			}

			require.ErrorIs(t, err, tollgate.ErrNotValid)
			require.EqualError(t, err, "query.fields must be one of [name, email, age]")
		})
	}
}
