package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrManagerNotFound  = errors.New("manager not found")
	ErrProfileExists    = errors.New("user already has an employee record")
)
