package department

import "errors"

var (
	ErrDepartmentNotFound = errors.New("department not found")
	ErrDepartmentNotEmpty = errors.New("cannot delete department with employees")
)
