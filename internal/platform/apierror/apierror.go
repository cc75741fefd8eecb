// Package apierror renders every failure leaving the API in one of two
// stable shapes: classified failures (validation, conflict, not-found) carry
// {fieldErrors, timestamp, status, error, path}; anything unclassified is
// reduced to {message, status, timestamp} with no field detail.
package apierror

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"runtime/debug"
	"sync"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	"github.com/bruno-soares-web/techmanage/internal/platform/logging"
	"github.com/bruno-soares-web/techmanage/internal/platform/timeutil"
)

const (
	// LabelValidation categorizes validation and uniqueness failures.
	LabelValidation = "Validation error"
	// LabelNotFound categorizes lookups of ids that do not exist.
	LabelNotFound = "Resource not found"

	msgInternal    = "Internal server error"
	msgInvalidJSON = "Invalid JSON format"
)

// FieldError is a single field-level failure.
type FieldError struct {
	Field   string
	Message string
}

// FieldErrors marshals as a JSON object whose keys keep insertion order.
type FieldErrors []FieldError

// MarshalJSON implements json.Marshaler, emitting an ordered object.
func (fe FieldErrors) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range fe {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(f.Field)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(f.Message)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Response is the externally visible error body.
type Response struct {
	FieldErrors FieldErrors `json:"fieldErrors,omitempty"`
	Message     string      `json:"message,omitempty"`
	Timestamp   string      `json:"timestamp"`
	Status      int         `json:"status"`
	Label       string      `json:"error,omitempty"`
	Path        string      `json:"path,omitempty"`
}

// Error carries a Response through huma's error pipeline.
type Error struct {
	Response
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Label != "" {
		return e.Label
	}
	return e.Message
}

// GetStatus implements huma.StatusError.
func (e *Error) GetStatus() int {
	return e.Status
}

// Validation builds a 400 response listing field violations.
func Validation(ctx context.Context, fieldErrors FieldErrors) *Error {
	return classified(ctx, http.StatusBadRequest, LabelValidation, fieldErrors)
}

// Conflict builds a 400 response for an email or phone uniqueness violation.
func Conflict(ctx context.Context, field, message string) *Error {
	return classified(ctx, http.StatusBadRequest, LabelValidation, FieldErrors{{Field: field, Message: message}})
}

// NotFound builds a 404 response for a missing record id.
func NotFound(ctx context.Context, id int64) *Error {
	return classified(ctx, http.StatusNotFound, LabelNotFound, FieldErrors{
		{Field: "id", Message: fmt.Sprintf("Record not found with ID: %d", id)},
	})
}

// Internal builds the unclassified 500 response. The underlying error is
// logged but never surfaced to the caller.
func Internal(ctx context.Context, err error) *Error {
	logging.LogError(ctx, "unclassified failure", err)
	return &Error{Response: Response{
		Message:   msgInternal,
		Status:    http.StatusInternalServerError,
		Timestamp: timestamp(),
	}}
}

func classified(ctx context.Context, status int, label string, fieldErrors FieldErrors) *Error {
	e := &Error{Response: Response{
		FieldErrors: fieldErrors,
		Timestamp:   timestamp(),
		Status:      status,
		Label:       label,
		Path:        logging.PathFromContext(ctx),
	}}
	logging.LogWarn(ctx, label,
		zap.Int("status", status),
		zap.Any("fieldErrors", fieldErrors),
	)
	return e
}

func timestamp() string {
	return time.Now().UTC().Format(timeutil.RFC3339Millis)
}

var installOnce sync.Once

// Install routes huma's own error construction (malformed bodies,
// unresolvable parameters, unexpected handler errors) through the shared
// response shapes.
func Install() {
	installOnce.Do(func() {
		huma.NewError = func(status int, msg string, errs ...error) huma.StatusError {
			return fromStatus(context.Background(), status, msg, errs)
		}
		huma.NewErrorWithContext = func(hctx huma.Context, status int, msg string, errs ...error) huma.StatusError {
			ctx := context.Background()
			if hctx != nil {
				ctx = hctx.Context()
			}
			return fromStatus(ctx, status, msg, errs)
		}
	})
}

// fromStatus classifies framework-level failures. Body decode and parameter
// errors become 400 validation responses; everything at 500 or above is
// unclassified.
func fromStatus(ctx context.Context, status int, msg string, errs []error) *Error {
	switch {
	case status >= http.StatusInternalServerError:
		return Internal(ctx, joinedOrMessage(msg, errs))
	case status == http.StatusNotFound:
		return classified(ctx, http.StatusNotFound, LabelNotFound, nil)
	default:
		return classified(ctx, http.StatusBadRequest, LabelValidation, FieldErrors{
			{Field: "request", Message: msgInvalidJSON},
		})
	}
}

func joinedOrMessage(msg string, errs []error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return fmt.Errorf("%s", msg)
}

// Write serializes an error response directly to a ResponseWriter, for
// handlers outside huma's pipeline.
func Write(w http.ResponseWriter, e *Error) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(e.Status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(e.Response)
}

// NotFoundHandler renders unmatched routes in the shared 404 shape.
func NotFoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		e := classified(r.Context(), http.StatusNotFound, LabelNotFound, nil)
		e.Path = r.URL.Path
		if err := Write(w, e); err != nil {
			logging.LogError(r.Context(), "failed to render not found", err)
		}
	}
}

// MethodNotAllowedHandler renders unsupported methods in the shared shape.
func MethodNotAllowedHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		e := &Error{Response: Response{
			Message:   http.StatusText(http.StatusMethodNotAllowed),
			Status:    http.StatusMethodNotAllowed,
			Timestamp: timestamp(),
		}}
		if err := Write(w, e); err != nil {
			logging.LogError(r.Context(), "failed to render method not allowed", err)
		}
	}
}

// Recoverer converts panics into the unclassified 500 response.
func Recoverer() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					var err error
					switch v := rec.(type) {
					case error:
						err = v
					default:
						err = fmt.Errorf("%v", v)
					}
					err = fmt.Errorf("%w\n%s", err, debug.Stack())
					if writeErr := Write(w, Internal(r.Context(), err)); writeErr != nil {
						logging.LogError(r.Context(), "failed to render internal error", writeErr)
					}
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
