package keeper_test

import (
	"context"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/tollgate"
	"github.com/xy-planning-network/tollgate/http/req"
	"github.com/xy-planning-network/tollgate/http/resp"
	"github.com/xy-planning-network/tollgate/http/router"
	"github.com/xy-planning-network/tollgate/keeper"
	"github.com/xy-planning-network/tollgate/logger"
)

func quietLogger() logger.Logger {
	return logger.New(logger.WithLogger(log.New(io.Discard, "", 0)))
}

func TestNewBadConfig(t *testing.T) {
	var ctx context.Context

	tcs := []struct {
		name string
		opt  keeper.KeeperOption
	}{
		{"Env", keeper.WithEnv("mars")},
		{"Max-Body-Bytes", keeper.WithMaxBodyBytes(0)},
		{"Context", keeper.WithContext(ctx)},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			k, err := keeper.New(tc.opt, keeper.WithLogger(quietLogger()))

			// Assert
			require.ErrorIs(t, err, tollgate.ErrBadConfig)
			require.Nil(t, k)
		})
	}
}

func TestKeeperServeHTTP(t *testing.T) {
	// Arrange
	k, err := keeper.New(keeper.WithEnv(tollgate.Testing), keeper.WithLogger(quietLogger()))
	require.Nil(t, err)

	k.Handle(router.Route{
		Path:   "/items/{id}",
		Method: http.MethodPut,
		Handler: func(w http.ResponseWriter, r *http.Request) {
			data, _ := req.FromContext(r.Context())
			k.Json(w, r, resp.Data(data.Data))
		},
		Rules: []req.Rule{
			req.ToInts("num"),
			req.ObjectifyRequestData([]string{"id", "name", "num"}, true),
		},
	})

	tcs := []struct {
		name     string
		target   string
		body     string
		code     int
		expected string
	}{
		{
			"Shaped",
			"/items/7?num=0102",
			`{"name":"gopher"}`,
			http.StatusOK,
			`{"data":{"id":"7","name":"gopher","num":102}}`,
		},
		{
			"Conflict",
			"/items/7?name=gopher",
			`{"name":"gopher","num":1}`,
			http.StatusBadRequest,
			`{"status":400,"message":"name exists in more than one object"}`,
		},
		{
			"Missing",
			"/items/7?num=1",
			`{}`,
			http.StatusBadRequest,
			`{"status":400,"message":"name is not found anywhere"}`,
		},
		{
			"Not-Int",
			"/items/7?num=many",
			`{"name":"gopher"}`,
			http.StatusBadRequest,
			`{"status":400,"message":"num must be an integer"}`,
		},
		{
			"Not-Found",
			"/nowhere",
			``,
			http.StatusNotFound,
			`{"status":404,"message":"Not Found"}`,
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPut, tc.target, strings.NewReader(tc.body))
			r.Header.Set("Content-Type", "application/json")

			// Act
			k.ServeHTTP(w, r)

			// Assert
			require.Equal(t, tc.code, w.Code)
			require.JSONEq(t, tc.expected, w.Body.String())
		})
	}

	t.Run("Request-ID", func(t *testing.T) {
		// Arrange
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPut, "/items/7?num=1", strings.NewReader(`{"name":"gopher"}`))
		r.Header.Set("Content-Type", "application/json")

		// Act
		k.ServeHTTP(w, r)

		// Assert
		_, err := uuid.Parse(w.Header().Get("X-Request-Id"))
		require.Nil(t, err)
	})
}

func TestKeeperOpen(t *testing.T) {
	t.Run("Cancelled", func(t *testing.T) {
		// Arrange
		ctx, cancel := context.WithCancel(context.Background())
		k, err := keeper.New(
			keeper.WithContext(ctx),
			keeper.WithLogger(quietLogger()),
			keeper.WithServer(&http.Server{Addr: "127.0.0.1:0"}),
		)
		require.Nil(t, err)

		done := make(chan error, 1)

		// Act
		go func() { done <- k.Open() }()
		cancel()

		// Assert
		require.Nil(t, <-done)
	})

	t.Run("Bad-Addr", func(t *testing.T) {
		// Arrange
		k, err := keeper.New(
			keeper.WithLogger(quietLogger()),
			keeper.WithServer(&http.Server{Addr: "127.0.0.1:-1"}),
		)
		require.Nil(t, err)

		// Act
		err = k.Open()

		// Assert
		require.ErrorContains(t, err, "could not listen")
	})
}
