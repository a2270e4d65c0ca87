package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/grachmannico95/gig-earnings/pkg/logger"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestID(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{name: "trace header", headers: map[string]string{HeaderTraceID: "trace-1"}, want: "trace-1"},
		{name: "request id header", headers: map[string]string{echo.HeaderXRequestID: "req-1"}, want: "req-1"},
		{
			name:    "trace header wins",
			headers: map[string]string{HeaderTraceID: "trace-1", echo.HeaderXRequestID: "req-1"},
			want:    "trace-1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var seen string
			err := RequestID()(func(c echo.Context) error {
				seen = logger.GetTraceID(c.Request().Context())
				return nil
			})(c)

			require.NoError(t, err)
			assert.Equal(t, tt.want, seen)
			assert.Equal(t, tt.want, rec.Header().Get(HeaderTraceID))
		})
	}
}

func TestRequestID_Generates(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	require.NoError(t, RequestID()(func(c echo.Context) error { return nil })(c))
	assert.Len(t, rec.Header().Get(HeaderTraceID), 36)
}

func TestLogging_LevelByStatus(t *testing.T) {
	tests := []struct {
		name      string
		handler   echo.HandlerFunc
		wantLevel zapcore.Level
		wantCode  int
	}{
		{
			name:      "ok",
			handler:   func(c echo.Context) error { return c.NoContent(http.StatusOK) },
			wantLevel: zapcore.InfoLevel,
			wantCode:  http.StatusOK,
		},
		{
			name:      "client error",
			handler:   func(c echo.Context) error { return c.NoContent(http.StatusBadRequest) },
			wantLevel: zapcore.WarnLevel,
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "returned error",
			handler:   func(c echo.Context) error { return echo.NewHTTPError(http.StatusServiceUnavailable) },
			wantLevel: zapcore.ErrorLevel,
			wantCode:  http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.DebugLevel)
			log := logger.FromZap(zap.New(core))

			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), rec)

			require.NoError(t, Logging(log)(tt.handler)(c))
			assert.Equal(t, tt.wantCode, rec.Code)

			require.Equal(t, 1, logs.Len())
			entry := logs.All()[0]
			assert.Equal(t, tt.wantLevel, entry.Level)
			assert.EqualValues(t, tt.wantCode, entry.ContextMap()["status"])
			assert.Equal(t, "/health", entry.ContextMap()["path"])
		})
	}
}
