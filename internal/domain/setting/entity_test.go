package setting

import "testing"

func TestValidateValue(t *testing.T) {
	cases := []struct {
		name        string
		settingType string
		value       string
		expected    bool
	}{
		{"string accepts anything", TypeString, "whatever", true},
		{"string accepts empty", TypeString, "", true},
		{"integer valid", TypeInteger, "42", true},
		{"integer negative", TypeInteger, "-7", true},
		{"integer rejects float", TypeInteger, "4.2", false},
		{"integer rejects word", TypeInteger, "eight", false},
		{"decimal valid", TypeDecimal, "3.14", true},
		{"decimal whole number", TypeDecimal, "8", true},
		{"decimal rejects word", TypeDecimal, "pi", false},
		{"boolean true", TypeBoolean, "true", true},
		{"boolean numeric", TypeBoolean, "1", true},
		{"boolean rejects yes", TypeBoolean, "yes", false},
		{"date plain", TypeDate, "2026-01-01", true},
		{"date rfc3339", TypeDate, "2026-01-01T09:00:00Z", true},
		{"date with time", TypeDate, "2026-01-01 09:00:00", true},
		{"date rejects garbage", TypeDate, "january first", false},
		{"json object", TypeJSON, `{"a":1}`, true},
		{"json array", TypeJSON, `[1,2,3]`, true},
		{"json rejects malformed", TypeJSON, `{"a":`, false},
		{"unknown type accepts anything", "color", "#ff00ff", true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := ValidateValue(c.settingType, c.value); got != c.expected {
				t.Errorf("ValidateValue(%q, %q) = %v, want %v", c.settingType, c.value, got, c.expected)
			}
		})
	}
}
