package middleware_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/tollgate"
	"github.com/xy-planning-network/tollgate/http/middleware"
	"github.com/xy-planning-network/tollgate/logger"
)

func TestLogRequest(t *testing.T) {
	// Arrange + Act
	actual := middleware.LogRequest(nil)

	// Assert
	require.Equal(t, fmt.Sprintf("%p", middleware.NoopAdapter), fmt.Sprintf("%p", actual))

	// Arrange
	ip := "192.168.0.0"

	tcs := []struct {
		name     string
		method   string
		ip       string
		url      *url.URL
		status   int
		expected string
	}{
		{"Zero-Value", http.MethodGet, "", &url.URL{Path: "/"}, 0, "GET / OK"},
		{"With-IP", http.MethodPost, ip, &url.URL{Path: "/"}, http.StatusCreated, ip + " POST / Created"},
		{
			"With-Query-Params",
			http.MethodPut,
			ip,
			&url.URL{Path: "/hitting/the/gate", RawQuery: "param=true"},
			http.StatusBadRequest,
			ip + " PUT /hitting/the/gate?param=true Bad Request",
		},
		{
			"With-Query-Params-Hid",
			http.MethodGet,
			ip,
			&url.URL{Path: "/", RawQuery: "param=true&password=hunter2&token=abc"},
			0,
			ip + " GET /?param=true&password=" + tollgate.LogMaskVal + "&token=" + tollgate.LogMaskVal + " OK",
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			w := httptest.NewRecorder()
			r := httptest.NewRequest(tc.method, tc.url.String(), nil)
			r = r.WithContext(context.WithValue(r.Context(), tollgate.RequestIDKey, "test-id"))
			if tc.ip != "" {
				r = r.WithContext(context.WithValue(r.Context(), tollgate.IpAddrKey, tc.ip))
			}

			expectedStatus := tc.status
			if expectedStatus == 0 {
				expectedStatus = http.StatusOK
			}

			l := logger.NewMockLogger(gomock.NewController(t))
			l.EXPECT().Info(tc.expected, gomock.Any()).Do(func(_ string, ctx *logger.LogContext) {
				require.Equal(t, "test-id", ctx.Data["requestID"])
				require.Equal(t, expectedStatus, ctx.Data["status"])
				require.Equal(t, len("test"), ctx.Data["size"])
			})

			// Act
			middleware.LogRequest(l)(http.HandlerFunc(func(wx http.ResponseWriter, rx *http.Request) {
				if tc.status != 0 {
					wx.WriteHeader(tc.status)
				}
				fmt.Fprint(wx, "test")
			})).ServeHTTP(w, r)

			// Assert
			require.Equal(t, "test", w.Body.String())
			require.Equal(t, expectedStatus, w.Code)
		})
	}
}
