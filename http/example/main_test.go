package main

import (
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/tollgate"
	"github.com/xy-planning-network/tollgate/http/req"
	"github.com/xy-planning-network/tollgate/keeper"
	"github.com/xy-planning-network/tollgate/logger"
)

func TestRoutes(t *testing.T) {
	// Arrange
	k, err := keeper.New(
		keeper.WithEnv(tollgate.Testing),
		keeper.WithLogger(logger.New(logger.WithLogger(log.New(io.Discard, "", 0)))),
	)
	require.Nil(t, err)

	h := &handler{Keeper: k, parser: req.NewParser()}
	k.HandleRoutes(h.routes())

	tcs := []struct {
		name     string
		method   string
		target   string
		body     string
		code     int
		expected string
	}{
		{
			"Search",
			http.MethodGet,
			"/search?q=a.b&fields=name,email&page=2",
			"",
			http.StatusOK,
			`{"data":{"pattern":"^a\\.b","fields":"name,email","page":2}}`,
		},
		{
			"Search-Repeated-Query",
			http.MethodGet,
			"/search?q=a&q=b.c&fields=name&page=2",
			"",
			http.StatusOK,
			`{"data":{"pattern":"^(?:a|b\\.c)","fields":"name","page":2}}`,
		},
		{
			"Search-Missing-Query",
			http.MethodGet,
			"/search?fields=name&page=2",
			"",
			http.StatusBadRequest,
			`{"status":400,"message":"Invalid parameter","errors":[{"field":"q","got":null,"rule":"required","message":"q must not be empty"}]}`,
		},
		{
			"Search-Bad-Field",
			http.MethodGet,
			"/search?q=a&fields=password&page=2",
			"",
			http.StatusBadRequest,
			`{"status":400,"message":"query.fields must be one of [name, email, age]"}`,
		},
		{
			"Search-Page-Out-Of-Range",
			http.MethodGet,
			"/search?q=a&fields=name&page=0",
			"",
			http.StatusBadRequest,
			`{"status":400,"message":"query.page must be between 1 and 100"}`,
		},
		{
			"Update-Item",
			http.MethodPut,
			"/items/7",
			`{"name":"gopher","tags":["a","b"]}`,
			http.StatusOK,
			`{"data":{"id":7,"name":"gopher","tags":["a","b"]}}`,
		},
		{
			"Update-Item-Invalid",
			http.MethodPut,
			"/items/0",
			`{"name":"gopher"}`,
			http.StatusUnprocessableEntity,
			`{"data":{"validationErrors":[{"field":"id","got":0,"rule":"gte=1; int"}]}}`,
		},
		{
			"Update-Item-Conflict",
			http.MethodPut,
			"/items/7?name=other",
			`{"name":"gopher"}`,
			http.StatusBadRequest,
			`{"status":400,"message":"name exists in more than one object"}`,
		},
		{
			"Objects",
			http.MethodPost,
			"/objects/p?queryArg=q",
			`{"bodyArg":"b"}`,
			http.StatusOK,
			`{"data":{"bodyArg":"b","paramsArg":"p","queryArg":"q"}}`,
		},
		{
			"Objects-Malformed-Body",
			http.MethodPost,
			"/objects/p?queryArg=q",
			`{"bodyArg":`,
			http.StatusBadRequest,
			`{"status":400,"message":"request body must be a JSON object"}`,
		},
		{
			"Objects-Repeated",
			http.MethodPost,
			"/objects/p?queryArg=q&bodyArg=b",
			`{"bodyArg":"b"}`,
			http.StatusBadRequest,
			`{"status":400,"message":"bodyArg exists in more than one object"}`,
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			w := httptest.NewRecorder()
			r := httptest.NewRequest(tc.method, tc.target, strings.NewReader(tc.body))
			if tc.body != "" {
				r.Header.Set("Content-Type", "application/json")
			}

			// Act
			k.ServeHTTP(w, r)

			// Assert
			require.Equal(t, tc.code, w.Code)
			require.JSONEq(t, tc.expected, w.Body.String())
		})
	}
}
