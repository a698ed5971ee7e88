package employee

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/workforcehq/hrm-backend-go/internal/domain/department"
	"github.com/workforcehq/hrm-backend-go/internal/domain/employee"
	"github.com/workforcehq/hrm-backend-go/internal/domain/identity"
	"github.com/workforcehq/hrm-backend-go/internal/pkg/database"
)

type Service struct {
	db database.TxBeginner
	employee.EmployeeRepository
	department.DepartmentRepository
}

func NewService(db database.TxBeginner, employeeRepository employee.EmployeeRepository, departmentRepository department.DepartmentRepository) *Service {
	return &Service{
		db:                   db,
		EmployeeRepository:   employeeRepository,
		DepartmentRepository: departmentRepository,
	}
}

// Create adds an employee profile for the given user.
func (s *Service) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	if _, err := s.EmployeeRepository.GetByUserID(ctx, req.UserID); err == nil {
		return employee.Employee{}, employee.ErrProfileExists
	} else if !errors.Is(err, employee.ErrEmployeeNotFound) {
		return employee.Employee{}, fmt.Errorf("failed to check existing profile: %w", err)
	}

	e, err := s.buildEmployee(ctx, req)
	if err != nil {
		return employee.Employee{}, err
	}
	e.UserID = req.UserID

	created, err := s.EmployeeRepository.Create(ctx, e)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return s.EmployeeRepository.GetByID(ctx, created.ID)
}

// CreateMyProfile is the self-service variant used right after registration.
func (s *Service) CreateMyProfile(ctx context.Context, req employee.CreateMyProfileRequest) (employee.Employee, error) {
	cu, err := identity.FromContext(ctx)
	if err != nil {
		return employee.Employee{}, err
	}

	full := employee.CreateEmployeeRequest{
		UserID:      cu.UserID,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Phone:       req.Phone,
		DateOfBirth: req.DateOfBirth,
		HireDate:    req.HireDate,
		Address:     req.Address,
		City:        req.City,
		State:       req.State,
		ZipCode:     req.ZipCode,
		Country:     req.Country,
		JobTitle:    req.JobTitle,
	}
	return s.Create(ctx, full)
}

// GetMyProfile resolves the caller's own employee record.
func (s *Service) GetMyProfile(ctx context.Context) (employee.Employee, error) {
	cu, err := identity.FromContext(ctx)
	if err != nil {
		return employee.Employee{}, err
	}
	return s.EmployeeRepository.GetByUserID(ctx, cu.UserID)
}

// Get returns one employee by id.
func (s *Service) Get(ctx context.Context, id string) (employee.Employee, error) {
	return s.EmployeeRepository.GetByID(ctx, id)
}

// List returns all employees.
func (s *Service) List(ctx context.Context) ([]employee.Employee, error) {
	return s.EmployeeRepository.List(ctx)
}

// Update replaces the mutable profile fields of an employee.
func (s *Service) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	existing, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.Employee{}, err
	}

	e, err := s.buildEmployee(ctx, employee.CreateEmployeeRequest{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		DateOfBirth:  req.DateOfBirth,
		HireDate:     req.HireDate,
		Address:      req.Address,
		City:         req.City,
		State:        req.State,
		ZipCode:      req.ZipCode,
		Country:      req.Country,
		JobTitle:     req.JobTitle,
		Salary:       req.Salary,
		DepartmentID: req.DepartmentID,
		ManagerID:    req.ManagerID,
	})
	if err != nil {
		return employee.Employee{}, err
	}
	e.ID = existing.ID
	e.UserID = existing.UserID

	if err := s.EmployeeRepository.Update(ctx, e); err != nil {
		return employee.Employee{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return s.EmployeeRepository.GetByID(ctx, id)
}

// Delete removes an employee profile.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.EmployeeRepository.Delete(ctx, id)
}

func (s *Service) buildEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	hireDate, err := time.Parse("2006-01-02", req.HireDate)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to parse hire date: %w", err)
	}

	var dateOfBirth *time.Time
	if req.DateOfBirth != "" {
		dob, err := time.Parse("2006-01-02", req.DateOfBirth)
		if err != nil {
			return employee.Employee{}, fmt.Errorf("failed to parse date of birth: %w", err)
		}
		dateOfBirth = &dob
	}

	if req.DepartmentID != nil {
		if _, err := s.DepartmentRepository.GetByID(ctx, *req.DepartmentID); err != nil {
			return employee.Employee{}, err
		}
	}
	if req.ManagerID != nil {
		if _, err := s.EmployeeRepository.GetByID(ctx, *req.ManagerID); err != nil {
			if errors.Is(err, employee.ErrEmployeeNotFound) {
				return employee.Employee{}, employee.ErrManagerNotFound
			}
			return employee.Employee{}, err
		}
	}

	return employee.Employee{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		DateOfBirth:  dateOfBirth,
		HireDate:     hireDate,
		Address:      req.Address,
		City:         req.City,
		State:        req.State,
		ZipCode:      req.ZipCode,
		Country:      req.Country,
		JobTitle:     req.JobTitle,
		Salary:       req.Salary,
		DepartmentID: req.DepartmentID,
		ManagerID:    req.ManagerID,
	}, nil
}
