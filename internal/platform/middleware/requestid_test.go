package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

func serveWithRequestID(t *testing.T, header string) *httptest.ResponseRecorder {
	t.Helper()
	var next http.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := RequestID()(next)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(chimiddleware.RequestIDHeader, header)
	}
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	return resp
}

func TestRequestIDGeneratesUUID(t *testing.T) {
	resp := serveWithRequestID(t, "")
	id := resp.Header().Get(chimiddleware.RequestIDHeader)
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("expected generated UUID, got %q: %v", id, err)
	}
}

func TestRequestIDReusesValidHeader(t *testing.T) {
	resp := serveWithRequestID(t, "client-id-123")
	if got := resp.Header().Get(chimiddleware.RequestIDHeader); got != "client-id-123" {
		t.Errorf("expected client id reused, got %q", got)
	}
}

func TestRequestIDRejectsInvalidHeader(t *testing.T) {
	cases := []string{
		"bad\nid",
		strings.Repeat("x", maxRequestIDLength+1),
		"id-with-\x00-byte",
	}
	for _, header := range cases {
		resp := serveWithRequestID(t, header)
		got := resp.Header().Get(chimiddleware.RequestIDHeader)
		if got == header {
			t.Errorf("expected invalid header %q to be replaced", header)
		}
		if _, err := uuid.Parse(got); err != nil {
			t.Errorf("expected replacement UUID, got %q", got)
		}
	}
}
