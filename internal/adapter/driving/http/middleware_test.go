package httphandler

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	incoming := uuid.NewString()

	tests := []struct {
		name     string
		header   string
		wantSame bool
	}{
		{"generates when absent", "", false},
		{"reuses a valid id", incoming, true},
		{"replaces a malformed id", "not-a-uuid\r\nX-Evil: 1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen string
			h := ApplyMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = RequestID(r.Context())
			}), slog.Default())

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(RequestIDHeader, tt.header)
			}
			rec := httptest.NewRecorder()

			h.ServeHTTP(rec, req)

			got := rec.Header().Get(RequestIDHeader)
			require.NotEmpty(t, got)
			assert.Equal(t, seen, got)
			_, err := uuid.Parse(got)
			require.NoError(t, err)
			if tt.wantSame {
				assert.Equal(t, tt.header, got)
			} else {
				assert.NotEqual(t, tt.header, got)
			}
		})
	}
}

func TestRecoveryMiddleware(t *testing.T) {
	h := ApplyMiddleware(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}), slog.Default())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))
}

func TestStatusWriterCapturesStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	sw := &statusWriter{ResponseWriter: rec, status: http.StatusOK}

	sw.WriteHeader(http.StatusTeapot)

	assert.Equal(t, http.StatusTeapot, sw.status)
	assert.Equal(t, http.StatusTeapot, rec.Code)
}
