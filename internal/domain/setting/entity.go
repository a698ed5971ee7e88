package setting

import (
	"encoding/json"
	"strconv"
	"time"
)

// Setting is a typed key/value configuration entry. Read-only rows cannot be
// updated or deleted through the API.
type Setting struct {
	ID          string
	Key         string
	Value       string
	Description string
	Type        string
	Category    string
	IsReadOnly  bool
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

const (
	TypeString  = "string"
	TypeInteger = "integer"
	TypeDecimal = "decimal"
	TypeBoolean = "boolean"
	TypeDate    = "date"
	TypeJSON    = "json"
)

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"2006-01-02 15:04:05",
}

// ValidateValue checks a raw value against the declared type. Unrecognized
// types behave like "string" and accept anything.
func ValidateValue(settingType, value string) bool {
	switch settingType {
	case TypeInteger:
		_, err := strconv.Atoi(value)
		return err == nil
	case TypeDecimal:
		_, err := strconv.ParseFloat(value, 64)
		return err == nil
	case TypeBoolean:
		_, err := strconv.ParseBool(value)
		return err == nil
	case TypeDate:
		for _, layout := range dateLayouts {
			if _, err := time.Parse(layout, value); err == nil {
				return true
			}
		}
		return false
	case TypeJSON:
		return json.Valid([]byte(value))
	default:
		return true
	}
}
