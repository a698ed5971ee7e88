package setting

import (
	"time"

	"github.com/workforcehq/hrm-backend-go/internal/pkg/validator"
)

type CreateSettingRequest struct {
	Key         string `json:"key"`
	Value       string `json:"value"`
	Description string `json:"description,omitempty"`
	Type        string `json:"type"`
	Category    string `json:"category"`
	IsReadOnly  bool   `json:"is_read_only"`
}

func (r *CreateSettingRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Key) {
		errs = append(errs, validator.ValidationError{Field: "key", Message: "key is required"})
	}
	if len(r.Key) > 100 {
		errs = append(errs, validator.ValidationError{Field: "key", Message: "key must not exceed 100 characters"})
	}
	if validator.IsEmpty(r.Type) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "type is required"})
	} else if !ValidateValue(r.Type, r.Value) {
		errs = append(errs, validator.ValidationError{Field: "value", Message: "value does not match type " + r.Type})
	}
	if validator.IsEmpty(r.Category) {
		errs = append(errs, validator.ValidationError{Field: "category", Message: "category is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateSettingRequest struct {
	Value       string `json:"value"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
}

// Validate has no field checks: the value/type check needs the stored
// setting's type, which the service performs during Update.
func (r *UpdateSettingRequest) Validate() error {
	return nil
}

type SettingResponse struct {
	ID          string     `json:"id"`
	Key         string     `json:"key"`
	Value       string     `json:"value"`
	Description string     `json:"description,omitempty"`
	Type        string     `json:"type"`
	Category    string     `json:"category"`
	IsReadOnly  bool       `json:"is_read_only"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

func ToResponse(s Setting) SettingResponse {
	return SettingResponse{
		ID:          s.ID,
		Key:         s.Key,
		Value:       s.Value,
		Description: s.Description,
		Type:        s.Type,
		Category:    s.Category,
		IsReadOnly:  s.IsReadOnly,
		UpdatedAt:   s.UpdatedAt,
	}
}
