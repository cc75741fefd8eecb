// Package user implements the user-record domain: validation, phone display
// formatting, email/phone uniqueness, and the create/read/update/delete
// orchestration on top of a pluggable store.
package user

import (
	"fmt"

	"github.com/bruno-soares-web/techmanage/internal/platform/timeutil"
)

// UserType classifies a user's role.
type UserType string

// Known user types.
const (
	TypeAdmin  UserType = "ADMIN"
	TypeEditor UserType = "EDITOR"
	TypeViewer UserType = "VIEWER"
)

// ParseUserType decodes a raw token into a UserType. The second return value
// reports whether the token names a known type; decoding is explicit so an
// invalid token can be reported as its own violation rather than inferred
// from a deserialization error.
func ParseUserType(token string) (UserType, bool) {
	switch UserType(token) {
	case TypeAdmin, TypeEditor, TypeViewer:
		return UserType(token), true
	}
	return "", false
}

// User is a stored user record. ID is assigned by the store on first save and
// never changes afterwards. Phone holds the raw submitted value; the canonical
// display form is applied only when rendering the record (see FormatPhone).
type User struct {
	ID        int64
	FullName  string
	Email     string
	Phone     string
	BirthDate timeutil.Date
	UserType  UserType
	Address   string
}

// Input is the caller-supplied record shape for create and update. BirthDate
// and UserType arrive as raw tokens and are decoded during validation.
type Input struct {
	FullName  string
	Email     string
	Phone     string
	BirthDate string
	UserType  string
	Address   string
}

// Violation is a single field-level validation failure.
type Violation struct {
	Field   string
	Message string
}

// ValidationError reports one or more field violations, in field order.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e.Violations))
}

// ConflictError reports a uniqueness violation on "email" or "phone".
type ConflictError struct {
	Field string
}

func (e *ConflictError) Error() string {
	return e.Field + " already in use"
}

// Message returns the externally visible conflict message.
func (e *ConflictError) Message() string {
	if e.Field == "phone" {
		return "Phone already in use"
	}
	return "Email already in use"
}

// NotFoundError reports a lookup of an id that does not exist.
type NotFoundError struct {
	ID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("record not found with ID: %d", e.ID)
}
