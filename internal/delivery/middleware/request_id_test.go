package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "pushsvc/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func serveWithRequestID(t *testing.T, header string) (*httptest.ResponseRecorder, string) {
	t.Helper()

	e := echo.New()
	mw := NewRequestIDMiddleware(slog.New(slog.DiscardHandler))

	var seen string
	e.GET("/", func(c echo.Context) error {
		seen = deliverycontext.GetRequestIDFromContext(c.Request().Context())
		assert.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

		return c.NoContent(http.StatusOK)
	}, mw.Process)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, header)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec, seen
}

func TestRequestIDMiddleware_KeepsValidClientID(t *testing.T) {
	rec, seen := serveWithRequestID(t, "req-42")

	assert.Equal(t, "req-42", seen)
	assert.Equal(t, "req-42", rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestRequestIDMiddleware_ReplacesUnsafeClientID(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{name: "missing", header: ""},
		{name: "oversized", header: strings.Repeat("x", 500)},
		{name: "embedded space", header: "req 42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, seen := serveWithRequestID(t, tt.header)

			assert.NotEqual(t, tt.header, seen)
			assert.True(t, deliverycontext.ValidRequestID(seen))
			assert.Equal(t, seen, rec.Header().Get(deliverycontext.HeaderXRequestID))
		})
	}
}
