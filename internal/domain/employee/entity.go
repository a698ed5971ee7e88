package employee

import "time"

// Employee is the HR profile owned by exactly one user. Manager is a
// self-reference; both manager and department are optional.
type Employee struct {
	ID          string
	FirstName   string
	LastName    string
	Email       string
	Phone       string
	DateOfBirth *time.Time
	HireDate    time.Time
	Address     string
	City        string
	State       string
	ZipCode     string
	Country     string
	JobTitle    string
	Salary      float64

	DepartmentID *string
	ManagerID    *string
	UserID       string

	CreatedAt time.Time
	UpdatedAt *time.Time

	// Resolved for responses
	DepartmentName *string
	ManagerName    *string
}

func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
