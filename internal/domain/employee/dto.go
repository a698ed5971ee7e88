package employee

import (
	"time"

	"github.com/workforcehq/hrm-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	UserID       string  `json:"user_id"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	Email        string  `json:"email,omitempty"`
	Phone        string  `json:"phone,omitempty"`
	DateOfBirth  string  `json:"date_of_birth,omitempty"`
	HireDate     string  `json:"hire_date"`
	Address      string  `json:"address,omitempty"`
	City         string  `json:"city,omitempty"`
	State        string  `json:"state,omitempty"`
	ZipCode      string  `json:"zip_code,omitempty"`
	Country      string  `json:"country,omitempty"`
	JobTitle     string  `json:"job_title,omitempty"`
	Salary       float64 `json:"salary,omitempty"`
	DepartmentID *string `json:"department_id,omitempty"`
	ManagerID    *string `json:"manager_id,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{Field: "user_id", Message: "user_id is required"})
	}
	errs = append(errs, validateProfileFields(r.FirstName, r.LastName, r.Email, r.DateOfBirth, r.HireDate, r.Salary)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// CreateMyProfileRequest is the self-service variant: the user id comes from
// the authenticated identity, never from the body.
type CreateMyProfileRequest struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	DateOfBirth string `json:"date_of_birth,omitempty"`
	HireDate    string `json:"hire_date"`
	Address     string `json:"address,omitempty"`
	City        string `json:"city,omitempty"`
	State       string `json:"state,omitempty"`
	ZipCode     string `json:"zip_code,omitempty"`
	Country     string `json:"country,omitempty"`
	JobTitle    string `json:"job_title,omitempty"`
}

func (r *CreateMyProfileRequest) Validate() error {
	errs := validateProfileFields(r.FirstName, r.LastName, r.Email, r.DateOfBirth, r.HireDate, 0)
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	Email        string  `json:"email,omitempty"`
	Phone        string  `json:"phone,omitempty"`
	DateOfBirth  string  `json:"date_of_birth,omitempty"`
	HireDate     string  `json:"hire_date"`
	Address      string  `json:"address,omitempty"`
	City         string  `json:"city,omitempty"`
	State        string  `json:"state,omitempty"`
	ZipCode      string  `json:"zip_code,omitempty"`
	Country      string  `json:"country,omitempty"`
	JobTitle     string  `json:"job_title,omitempty"`
	Salary       float64 `json:"salary,omitempty"`
	DepartmentID *string `json:"department_id,omitempty"`
	ManagerID    *string `json:"manager_id,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	errs := validateProfileFields(r.FirstName, r.LastName, r.Email, r.DateOfBirth, r.HireDate, r.Salary)
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateProfileFields(firstName, lastName, email, dateOfBirth, hireDate string, salary float64) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if validator.IsEmpty(firstName) {
		errs = append(errs, validator.ValidationError{Field: "first_name", Message: "first_name is required"})
	}
	if len(firstName) > 50 {
		errs = append(errs, validator.ValidationError{Field: "first_name", Message: "first_name must not exceed 50 characters"})
	}
	if validator.IsEmpty(lastName) {
		errs = append(errs, validator.ValidationError{Field: "last_name", Message: "last_name is required"})
	}
	if len(lastName) > 50 {
		errs = append(errs, validator.ValidationError{Field: "last_name", Message: "last_name must not exceed 50 characters"})
	}
	if email != "" && !validator.IsValidEmail(email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email is not valid"})
	}
	if dateOfBirth != "" {
		if _, ok := validator.IsValidDate(dateOfBirth); !ok {
			errs = append(errs, validator.ValidationError{Field: "date_of_birth", Message: "date_of_birth must be YYYY-MM-DD"})
		}
	}
	if validator.IsEmpty(hireDate) {
		errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "hire_date is required"})
	} else if _, ok := validator.IsValidDate(hireDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "hire_date must be YYYY-MM-DD"})
	}
	if salary < 0 {
		errs = append(errs, validator.ValidationError{Field: "salary", Message: "salary must not be negative"})
	}

	return errs
}

type EmployeeResponse struct {
	ID             string     `json:"id"`
	FirstName      string     `json:"first_name"`
	LastName       string     `json:"last_name"`
	Email          string     `json:"email,omitempty"`
	Phone          string     `json:"phone,omitempty"`
	JobTitle       string     `json:"job_title,omitempty"`
	HireDate       time.Time  `json:"hire_date"`
	DepartmentID   *string    `json:"department_id,omitempty"`
	DepartmentName *string    `json:"department_name,omitempty"`
	ManagerID      *string    `json:"manager_id,omitempty"`
	ManagerName    *string    `json:"manager_name,omitempty"`
	UserID         string     `json:"user_id"`
	CreatedAt      time.Time  `json:"created_at"`
	DateOfBirth    *time.Time `json:"date_of_birth,omitempty"`
}

// EmployeeDetailResponse adds the address/compensation block the list
// endpoint leaves out.
type EmployeeDetailResponse struct {
	EmployeeResponse
	Address string  `json:"address,omitempty"`
	City    string  `json:"city,omitempty"`
	State   string  `json:"state,omitempty"`
	ZipCode string  `json:"zip_code,omitempty"`
	Country string  `json:"country,omitempty"`
	Salary  float64 `json:"salary,omitempty"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:             e.ID,
		FirstName:      e.FirstName,
		LastName:       e.LastName,
		Email:          e.Email,
		Phone:          e.Phone,
		JobTitle:       e.JobTitle,
		HireDate:       e.HireDate,
		DepartmentID:   e.DepartmentID,
		DepartmentName: e.DepartmentName,
		ManagerID:      e.ManagerID,
		ManagerName:    e.ManagerName,
		UserID:         e.UserID,
		CreatedAt:      e.CreatedAt,
		DateOfBirth:    e.DateOfBirth,
	}
}

func ToDetailResponse(e Employee) EmployeeDetailResponse {
	return EmployeeDetailResponse{
		EmployeeResponse: ToResponse(e),
		Address:          e.Address,
		City:             e.City,
		State:            e.State,
		ZipCode:          e.ZipCode,
		Country:          e.Country,
		Salary:           e.Salary,
	}
}
