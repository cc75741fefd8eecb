package user

import "testing"

func TestFormatPhoneUnformatted(t *testing.T) {
	got := FormatPhone("+5511999999999")
	if got != "+55 11 99999-9999" {
		t.Errorf("expected +55 11 99999-9999, got %s", got)
	}
}

func TestFormatPhoneTenDigits(t *testing.T) {
	got := FormatPhone("+5511999912")
	if got != "+55 11 99-9912" {
		t.Errorf("expected +55 11 99-9912, got %s", got)
	}
}

func TestFormatPhoneAlreadyFormatted(t *testing.T) {
	got := FormatPhone("+55 11 99999-9999")
	if got != "+55 11 99999-9999" {
		t.Errorf("expected already formatted value unchanged, got %s", got)
	}
}

func TestFormatPhoneInvalid(t *testing.T) {
	got := FormatPhone("invalid-phone")
	if got != "invalid-phone" {
		t.Errorf("expected invalid value unchanged, got %s", got)
	}
}

func TestFormatPhoneTooShort(t *testing.T) {
	got := FormatPhone("+55119999")
	if got != "+55119999" {
		t.Errorf("expected short value unchanged, got %s", got)
	}
}

func TestFormatPhoneEmpty(t *testing.T) {
	if got := FormatPhone(""); got != "" {
		t.Errorf("expected empty value unchanged, got %s", got)
	}
}

func TestFormatPhoneIdempotent(t *testing.T) {
	inputs := []string{
		"+5511999999999",
		"+55 11 99999-9999",
		"invalid-phone",
		"+55119999",
		"",
		"+358401234567",
	}
	for _, in := range inputs {
		once := FormatPhone(in)
		twice := FormatPhone(once)
		if once != twice {
			t.Errorf("format not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}
