package validator

import (
	"testing"
	"time"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected bool
	}{
		{"empty string", "", true},
		{"whitespace only", "   \t\n", true},
		{"non-empty", "hello", false},
		{"padded value", "  x  ", false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := IsEmpty(c.input); got != c.expected {
				t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.expected)
			}
		})
	}
}

func TestIsValidEmail(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected bool
	}{
		{"simple", "jane@example.com", true},
		{"subdomain", "jane.doe@mail.example.co", true},
		{"plus tag", "jane+hr@example.com", true},
		{"missing at", "jane.example.com", false},
		{"missing tld", "jane@example", false},
		{"empty", "", false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := IsValidEmail(c.input); got != c.expected {
				t.Errorf("IsValidEmail(%q) = %v, want %v", c.input, got, c.expected)
			}
		})
	}
}

func TestIsValidUUID(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected bool
	}{
		{"lowercase v4", "a3bb189e-8bf9-4888-9912-ace4e6543002", true},
		{"uppercase accepted", "A3BB189E-8BF9-4888-9912-ACE4E6543002", true},
		{"bad variant nibble", "a3bb189e-8bf9-4888-1912-ace4e6543002", false},
		{"missing segment", "a3bb189e-8bf9-4888-9912", false},
		{"not a uuid", "hello", false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := IsValidUUID(c.input); got != c.expected {
				t.Errorf("IsValidUUID(%q) = %v, want %v", c.input, got, c.expected)
			}
		})
	}
}

func TestIsNumeric(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected bool
	}{
		{"digits", "012345", true},
		{"with letters", "12a45", false},
		{"negative sign", "-12", false},
		{"empty", "", false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := IsNumeric(c.input); got != c.expected {
				t.Errorf("IsNumeric(%q) = %v, want %v", c.input, got, c.expected)
			}
		})
	}
}

func TestIsValidDate(t *testing.T) {
	date, ok := IsValidDate("2026-09-01")
	if !ok {
		t.Fatal("expected 2026-09-01 to be a valid date")
	}
	if !date.Equal(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("parsed date = %v, want 2026-09-01 UTC", date)
	}

	invalid := []string{"2026-13-01", "2026-09-32", "01-09-2026", "2026/09/01", "not-a-date", ""}
	for _, s := range invalid {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidDateTime(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected bool
	}{
		{"utc", "2026-09-01T10:30:00Z", true},
		{"offset", "2026-09-01T10:30:00+07:00", true},
		{"nanoseconds", "2026-09-01T10:30:00.123456789Z", true},
		{"date only", "2026-09-01", false},
		{"garbage", "yesterday", false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, got := IsValidDateTime(c.input); got != c.expected {
				t.Errorf("IsValidDateTime(%q) = %v, want %v", c.input, got, c.expected)
			}
		})
	}
}

func TestIsValidUsername(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected bool
	}{
		{"simple", "jdoe", true},
		{"with separators", "jane.doe_hr-2", true},
		{"too short", "jd", false},
		{"spaces", "jane doe", false},
		{"special chars", "jane@doe", false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := IsValidUsername(c.input); got != c.expected {
				t.Errorf("IsValidUsername(%q) = %v, want %v", c.input, got, c.expected)
			}
		})
	}
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "username", Message: "username is required"},
		{Field: "email", Message: "email must be valid"},
	}

	m := errs.ToMap()
	if len(m) != 2 {
		t.Fatalf("ToMap returned %d entries, want 2", len(m))
	}
	if m["username"] != "username is required" {
		t.Errorf("username message = %q", m["username"])
	}
	if m["email"] != "email must be valid" {
		t.Errorf("email message = %q", m["email"])
	}

	if errs.Error() != "username: username is required; email: email must be valid" {
		t.Errorf("Error() = %q", errs.Error())
	}
}
