package middleware_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/tollgate"
	"github.com/xy-planning-network/tollgate/http/middleware"
)

func TestReportPanic(t *testing.T) {
	// Arrange + Act
	actual := middleware.ReportPanic(tollgate.Development)

	// Assert
	require.Equal(t, fmt.Sprintf("%p", middleware.NoopAdapter), fmt.Sprintf("%p", actual))

	// Arrange
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "https://example.com", nil)
	h := middleware.ReportPanic(tollgate.Testing)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("misconfigured")
	}))

	// Act + Assert
	require.PanicsWithValue(t, "misconfigured", func() { h.ServeHTTP(w, r) })
}
