package department

import (
	"context"
	"fmt"

	"github.com/workforcehq/hrm-backend-go/internal/domain/department"
	"github.com/workforcehq/hrm-backend-go/internal/pkg/database"
)

type Service struct {
	db database.TxBeginner
	department.DepartmentRepository
}

func NewService(db database.TxBeginner, departmentRepository department.DepartmentRepository) *Service {
	return &Service{
		db:                   db,
		DepartmentRepository: departmentRepository,
	}
}

func (s *Service) Create(ctx context.Context, req department.CreateDepartmentRequest) (department.Department, error) {
	created, err := s.DepartmentRepository.Create(ctx, department.Department{
		Name:        req.Name,
		Description: req.Description,
		ManagerID:   req.ManagerID,
	})
	if err != nil {
		return department.Department{}, fmt.Errorf("failed to create department: %w", err)
	}

	return s.DepartmentRepository.GetByID(ctx, created.ID)
}

func (s *Service) Get(ctx context.Context, id string) (department.Department, error) {
	return s.DepartmentRepository.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]department.Department, error) {
	return s.DepartmentRepository.List(ctx)
}

func (s *Service) Update(ctx context.Context, id string, req department.UpdateDepartmentRequest) (department.Department, error) {
	existing, err := s.DepartmentRepository.GetByID(ctx, id)
	if err != nil {
		return department.Department{}, err
	}

	existing.Name = req.Name
	existing.Description = req.Description
	existing.ManagerID = req.ManagerID

	if err := s.DepartmentRepository.Update(ctx, existing); err != nil {
		return department.Department{}, fmt.Errorf("failed to update department: %w", err)
	}

	return s.DepartmentRepository.GetByID(ctx, id)
}

// Delete refuses to remove a department that still has employees.
func (s *Service) Delete(ctx context.Context, id string) error {
	count, err := s.DepartmentRepository.CountEmployees(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to count employees: %w", err)
	}
	if count > 0 {
		return department.ErrDepartmentNotEmpty
	}

	return s.DepartmentRepository.Delete(ctx, id)
}
