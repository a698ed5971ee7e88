package department

// Department groups employees. The manager reference is informational only
// and is not enforced as a foreign key.
type Department struct {
	ID          string
	Name        string
	Description string
	ManagerID   *string

	// Resolved for responses
	ManagerName   *string
	EmployeeCount int64
}
