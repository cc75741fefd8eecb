package user

import (
	"regexp"
	"strings"
	"time"

	"github.com/bruno-soares-web/techmanage/internal/platform/timeutil"
)

var (
	emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	// phoneRe is the delimited international format accepted on input,
	// e.g. "+55 11 99999-9999".
	phoneRe = regexp.MustCompile(`^\+\d{1,3} \d{2} \d{4,5}-\d{4}$`)
)

// Validation messages.
const (
	msgFullNameRequired = "Full name is required"
	msgEmailRequired    = "Email is required"
	msgEmailInvalid     = "Email must have a valid format"
	msgPhoneRequired    = "Phone is required"
	msgPhoneInvalid     = "Phone must be in international format (e.g. +55 11 99999-9999)"
	msgBirthRequired    = "Birth date is required"
	msgBirthInvalid     = "Birth date must be a valid date (yyyy-mm-dd)"
	msgBirthPast        = "Birth date must be in the past"
	msgTypeRequired     = "User type is required"
	msgTypeInvalid      = "Invalid user type. Accepted values: ADMIN, EDITOR, VIEWER"
)

// Validate checks an input record and returns its violations in the fixed
// field order fullName, email, phone, birthDate, userType. At most one
// violation is reported per field; the first failing rule wins.
func Validate(in Input) []Violation {
	return validateAt(in, time.Now().UTC())
}

func validateAt(in Input, now time.Time) []Violation {
	var violations []Violation

	if strings.TrimSpace(in.FullName) == "" {
		violations = append(violations, Violation{Field: "fullName", Message: msgFullNameRequired})
	}

	switch {
	case strings.TrimSpace(in.Email) == "":
		violations = append(violations, Violation{Field: "email", Message: msgEmailRequired})
	case !emailRe.MatchString(in.Email):
		violations = append(violations, Violation{Field: "email", Message: msgEmailInvalid})
	}

	switch {
	case strings.TrimSpace(in.Phone) == "":
		violations = append(violations, Violation{Field: "phone", Message: msgPhoneRequired})
	case !phoneRe.MatchString(in.Phone):
		violations = append(violations, Violation{Field: "phone", Message: msgPhoneInvalid})
	}

	if v, ok := validateBirthDate(in.BirthDate, now); !ok {
		violations = append(violations, v)
	}

	switch {
	case strings.TrimSpace(in.UserType) == "":
		violations = append(violations, Violation{Field: "userType", Message: msgTypeRequired})
	default:
		if _, ok := ParseUserType(in.UserType); !ok {
			violations = append(violations, Violation{Field: "userType", Message: msgTypeInvalid})
		}
	}

	return violations
}

func validateBirthDate(raw string, now time.Time) (Violation, bool) {
	if strings.TrimSpace(raw) == "" {
		return Violation{Field: "birthDate", Message: msgBirthRequired}, false
	}
	d, err := timeutil.ParseDate(raw)
	if err != nil {
		return Violation{Field: "birthDate", Message: msgBirthInvalid}, false
	}
	today := timeutil.NewDate(now)
	if !d.Before(today.Time) {
		return Violation{Field: "birthDate", Message: msgBirthPast}, false
	}
	return Violation{}, true
}
