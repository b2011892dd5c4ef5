package http

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/matryer/is"
)

func TestResponseJSON(t *testing.T) {

	t.Run("encoding failures go to the request logger", func(t *testing.T) {
		is := is.New(t)

		var logs bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&logs, nil)).With("request_id", "abc-123")
		r := httptest.NewRequest(http.MethodGet, "/games", nil)
		r = r.WithContext(context.WithValue(r.Context(), loggerKey{}, logger))
		w := httptest.NewRecorder()

		responseJSON(w, r, http.StatusOK, map[string]any{"broken": func() {}})

		is.Equal(w.Code, http.StatusOK)
		is.True(strings.Contains(logs.String(), "encoding response"))
		is.True(strings.Contains(logs.String(), "request_id=abc-123"))
	})
}
