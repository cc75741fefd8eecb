package apierror

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestFieldErrorsMarshalKeepsOrder(t *testing.T) {
	fe := FieldErrors{
		{Field: "fullName", Message: "Full name is required"},
		{Field: "email", Message: "Email is required"},
		{Field: "phone", Message: "Phone is required"},
	}

	data, err := json.Marshal(fe)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	want := `{"fullName":"Full name is required","email":"Email is required","phone":"Phone is required"}`
	if string(data) != want {
		t.Errorf("expected %s, got %s", want, data)
	}
}

func TestFieldErrorsMarshalEmpty(t *testing.T) {
	data, err := json.Marshal(FieldErrors{})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != "{}" {
		t.Errorf("expected {}, got %s", data)
	}
}

func TestValidationShape(t *testing.T) {
	e := Validation(context.Background(), FieldErrors{{Field: "email", Message: "Email is required"}})

	if e.GetStatus() != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", e.GetStatus())
	}
	if e.Label != LabelValidation {
		t.Errorf("expected %q, got %q", LabelValidation, e.Label)
	}
	if e.Timestamp == "" {
		t.Error("expected timestamp to be set")
	}
	if e.Message != "" {
		t.Errorf("classified response must not carry a message, got %q", e.Message)
	}
}

func TestNotFoundShape(t *testing.T) {
	e := NotFound(context.Background(), 42)

	if e.GetStatus() != http.StatusNotFound {
		t.Errorf("expected 404, got %d", e.GetStatus())
	}
	if e.Label != LabelNotFound {
		t.Errorf("expected %q, got %q", LabelNotFound, e.Label)
	}
	if len(e.FieldErrors) != 1 || e.FieldErrors[0].Field != "id" {
		t.Fatalf("expected single id field error, got %v", e.FieldErrors)
	}
	if e.FieldErrors[0].Message != "Record not found with ID: 42" {
		t.Errorf("unexpected message: %s", e.FieldErrors[0].Message)
	}
}

func TestInternalHidesDetail(t *testing.T) {
	e := Internal(context.Background(), errors.New("pg: connection refused"))

	data, err := json.Marshal(e.Response)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	body := string(data)
	if strings.Contains(body, "connection refused") {
		t.Errorf("internal detail leaked: %s", body)
	}
	if !strings.Contains(body, `"message":"Internal server error"`) {
		t.Errorf("expected generic message, got %s", body)
	}
	if strings.Contains(body, "fieldErrors") {
		t.Errorf("unclassified response must not carry fieldErrors: %s", body)
	}
}

func TestNotFoundHandler(t *testing.T) {
	handler := NotFoundHandler()
	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	resp := httptest.NewRecorder()

	handler(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
	var body Response
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Label != LabelNotFound {
		t.Errorf("expected %q, got %q", LabelNotFound, body.Label)
	}
	if body.Path != "/nope" {
		t.Errorf("expected path /nope, got %s", body.Path)
	}
}

func TestRecovererRendersInternalShape(t *testing.T) {
	var panicking http.Handler = http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})
	handler := Recoverer()(panicking)

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}
	if strings.Contains(resp.Body.String(), "boom") {
		t.Errorf("panic detail leaked: %s", resp.Body.String())
	}
}
