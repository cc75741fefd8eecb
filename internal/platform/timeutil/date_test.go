package timeutil

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDateMarshal(t *testing.T) {
	d := NewDate(time.Date(1990, 5, 20, 15, 4, 5, 0, time.UTC))
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `"1990-05-20"` {
		t.Errorf("expected \"1990-05-20\", got %s", data)
	}
}

func TestDateUnmarshal(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte(`"1990-05-20"`), &d); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if d.String() != "1990-05-20" {
		t.Errorf("expected 1990-05-20, got %s", d)
	}
}

func TestDateUnmarshalNullPreservesValue(t *testing.T) {
	d, _ := ParseDate("1990-05-20")
	if err := json.Unmarshal([]byte(`null`), &d); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if d.String() != "1990-05-20" {
		t.Errorf("expected value preserved on null, got %s", d)
	}
}

func TestParseDateInvalid(t *testing.T) {
	for _, s := range []string{"", "20/05/1990", "1990-13-01", "not-a-date"} {
		if _, err := ParseDate(s); err == nil {
			t.Errorf("expected %q to fail", s)
		}
	}
}

func TestNewDateTruncatesToMidnightUTC(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	d := NewDate(time.Date(1990, 5, 21, 1, 30, 0, 0, loc)) // 1990-05-20 22:30 UTC
	if d.String() != "1990-05-20" {
		t.Errorf("expected 1990-05-20, got %s", d)
	}
	if h, m, s := d.Clock(); h != 0 || m != 0 || s != 0 {
		t.Errorf("expected midnight, got %02d:%02d:%02d", h, m, s)
	}
}
