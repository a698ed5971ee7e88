package leave

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/workforcehq/hrm-backend-go/internal/domain/identity"
	"github.com/workforcehq/hrm-backend-go/internal/domain/leave"
	"github.com/workforcehq/hrm-backend-go/internal/pkg/database"
	"github.com/workforcehq/hrm-backend-go/internal/repository/postgresql"
)

type Service struct {
	db  database.TxBeginner
	now func() time.Time
	leave.LeaveTypeRepository
	leave.LeaveBalanceRepository
	leave.LeaveRepository
}

func NewService(
	db database.TxBeginner,
	leaveTypeRepository leave.LeaveTypeRepository,
	leaveBalanceRepository leave.LeaveBalanceRepository,
	leaveRepository leave.LeaveRepository,
) *Service {
	return &Service{
		db:                     db,
		now:                    time.Now,
		LeaveTypeRepository:    leaveTypeRepository,
		LeaveBalanceRepository: leaveBalanceRepository,
		LeaveRepository:        leaveRepository,
	}
}

// Submit files a leave request for the caller. The balance row is created
// lazily for the year of the start date and the days are reserved in the
// same transaction as the insert.
func (s *Service) Submit(ctx context.Context, req leave.CreateLeaveRequest) (leave.Leave, error) {
	cu, err := identity.FromContext(ctx)
	if err != nil {
		return leave.Leave{}, err
	}
	employeeID, err := cu.RequireEmployee()
	if err != nil {
		return leave.Leave{}, err
	}

	leaveType, err := s.LeaveTypeRepository.GetByID(ctx, req.LeaveTypeID)
	if err != nil {
		return leave.Leave{}, err
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return leave.Leave{}, fmt.Errorf("failed to parse start date: %w", err)
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return leave.Leave{}, fmt.Errorf("failed to parse end date: %w", err)
	}

	if endDate.Before(startDate) {
		return leave.Leave{}, leave.ErrInvalidDateRange
	}
	today := s.now()
	today = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	if startDate.Before(today) {
		return leave.Leave{}, leave.ErrStartDateInPast
	}

	days := leave.InclusiveDays(startDate, endDate)
	year := startDate.Year()

	var created leave.Leave
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		balance, err := s.LeaveBalanceRepository.GetByEmployeeTypeYear(txCtx, employeeID, leaveType.ID, year)
		if errors.Is(err, leave.ErrBalanceNotFound) {
			balance, err = s.LeaveBalanceRepository.Create(txCtx, leave.LeaveBalance{
				EmployeeID:   employeeID,
				LeaveTypeID:  leaveType.ID,
				Year:         year,
				AllottedDays: leaveType.DefaultDays,
			})
		}
		if err != nil {
			return fmt.Errorf("failed to resolve leave balance: %w", err)
		}

		if err := s.LeaveBalanceRepository.ReserveDays(txCtx, balance.ID, days); err != nil {
			return err
		}

		created, err = s.LeaveRepository.Create(txCtx, leave.Leave{
			EmployeeID:  employeeID,
			LeaveTypeID: leaveType.ID,
			StartDate:   startDate,
			EndDate:     endDate,
			Reason:      req.Reason,
			Status:      leave.StatusPending,
		})
		if err != nil {
			return fmt.Errorf("failed to create leave request: %w", err)
		}

		return nil
	})
	if err != nil {
		return leave.Leave{}, err
	}

	return s.LeaveRepository.GetByID(ctx, created.ID)
}

// Decide approves or rejects a pending request. Rejection credits the
// reserved days back.
func (s *Service) Decide(ctx context.Context, leaveID, approverEmployeeID string, req leave.DecideLeaveRequest) (leave.Leave, error) {
	request, err := s.LeaveRepository.GetByID(ctx, leaveID)
	if err != nil {
		return leave.Leave{}, err
	}
	if request.Status != leave.StatusPending {
		return leave.Leave{}, leave.ErrAlreadyProcessed
	}

	decidedAt := s.now()
	if req.Approved {
		request.Status = leave.StatusApproved
	} else {
		request.Status = leave.StatusRejected
	}
	request.ApprovedByID = &approverEmployeeID
	request.ApprovalDate = &decidedAt
	request.Comments = req.Comments

	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.LeaveRepository.Update(txCtx, request); err != nil {
			return fmt.Errorf("failed to update leave request: %w", err)
		}

		if !req.Approved {
			err := s.LeaveBalanceRepository.RestoreDays(txCtx,
				request.EmployeeID, request.LeaveTypeID, request.StartDate.Year(), request.Days())
			if err != nil && !errors.Is(err, leave.ErrBalanceNotFound) {
				return fmt.Errorf("failed to restore leave balance: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return leave.Leave{}, err
	}

	return s.LeaveRepository.GetByID(ctx, leaveID)
}

// Cancel withdraws a pending request and credits the days back. Only the
// owner or an admin may cancel.
func (s *Service) Cancel(ctx context.Context, leaveID string) error {
	cu, err := identity.FromContext(ctx)
	if err != nil {
		return err
	}

	request, err := s.LeaveRepository.GetByID(ctx, leaveID)
	if err != nil {
		return err
	}
	if !cu.IsAdmin {
		employeeID, err := cu.RequireEmployee()
		if err != nil {
			return err
		}
		if request.EmployeeID != employeeID {
			return identity.ErrNotResourceOwner
		}
	}
	if request.Status != leave.StatusPending {
		return leave.ErrAlreadyProcessed
	}

	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		err := s.LeaveBalanceRepository.RestoreDays(txCtx,
			request.EmployeeID, request.LeaveTypeID, request.StartDate.Year(), request.Days())
		if err != nil && !errors.Is(err, leave.ErrBalanceNotFound) {
			return fmt.Errorf("failed to restore leave balance: %w", err)
		}

		if err := s.LeaveRepository.Delete(txCtx, leaveID); err != nil {
			return fmt.Errorf("failed to delete leave request: %w", err)
		}

		return nil
	})
}

// Get returns a single request. Non-admins may only read their own.
func (s *Service) Get(ctx context.Context, id string) (leave.Leave, error) {
	cu, err := identity.FromContext(ctx)
	if err != nil {
		return leave.Leave{}, err
	}

	request, err := s.LeaveRepository.GetByID(ctx, id)
	if err != nil {
		return leave.Leave{}, err
	}
	if !cu.IsAdmin {
		if cu.EmployeeID == nil || *cu.EmployeeID != request.EmployeeID {
			return leave.Leave{}, identity.ErrNotResourceOwner
		}
	}

	return request, nil
}

func (s *Service) List(ctx context.Context) ([]leave.Leave, error) {
	return s.LeaveRepository.List(ctx)
}

// ListMine returns the caller's own requests.
func (s *Service) ListMine(ctx context.Context) ([]leave.Leave, error) {
	cu, err := identity.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	employeeID, err := cu.RequireEmployee()
	if err != nil {
		return nil, err
	}
	return s.LeaveRepository.ListByEmployee(ctx, employeeID)
}

// Balances reports the caller's current-year ledger for every leave type,
// synthesizing defaults for types that have no stored row yet. The read
// never writes.
func (s *Service) Balances(ctx context.Context) ([]leave.BalanceResponse, error) {
	cu, err := identity.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	employeeID, err := cu.RequireEmployee()
	if err != nil {
		return nil, err
	}

	year := s.now().Year()

	types, err := s.LeaveTypeRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave types: %w", err)
	}
	stored, err := s.LeaveBalanceRepository.ListByEmployeeYear(ctx, employeeID, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave balances: %w", err)
	}

	byType := make(map[string]leave.LeaveBalance, len(stored))
	for _, b := range stored {
		byType[b.LeaveTypeID] = b
	}

	responses := make([]leave.BalanceResponse, 0, len(types))
	for _, lt := range types {
		if b, ok := byType[lt.ID]; ok {
			responses = append(responses, leave.BalanceResponse{
				ID:            b.ID,
				LeaveTypeID:   lt.ID,
				LeaveTypeName: lt.Name,
				AllottedDays:  b.AllottedDays,
				UsedDays:      b.UsedDays,
				RemainingDays: b.RemainingDays(),
				Year:          year,
			})
			continue
		}
		responses = append(responses, leave.BalanceResponse{
			LeaveTypeID:   lt.ID,
			LeaveTypeName: lt.Name,
			AllottedDays:  lt.DefaultDays,
			UsedDays:      0,
			RemainingDays: lt.DefaultDays,
			Year:          year,
		})
	}

	return responses, nil
}

// ListTypes returns the leave type catalog.
func (s *Service) ListTypes(ctx context.Context) ([]leave.LeaveType, error) {
	return s.LeaveTypeRepository.List(ctx)
}

func (s *Service) CreateType(ctx context.Context, req leave.CreateLeaveTypeRequest) (leave.LeaveType, error) {
	created, err := s.LeaveTypeRepository.Create(ctx, leave.LeaveType{
		Name:             req.Name,
		Description:      req.Description,
		DefaultDays:      req.DefaultDays,
		RequiresApproval: req.RequiresApproval,
	})
	if err != nil {
		return leave.LeaveType{}, fmt.Errorf("failed to create leave type: %w", err)
	}
	return created, nil
}

func (s *Service) UpdateType(ctx context.Context, id string, req leave.CreateLeaveTypeRequest) (leave.LeaveType, error) {
	existing, err := s.LeaveTypeRepository.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveType{}, err
	}

	existing.Name = req.Name
	existing.Description = req.Description
	existing.DefaultDays = req.DefaultDays
	existing.RequiresApproval = req.RequiresApproval

	if err := s.LeaveTypeRepository.Update(ctx, existing); err != nil {
		return leave.LeaveType{}, fmt.Errorf("failed to update leave type: %w", err)
	}
	return existing, nil
}

func (s *Service) DeleteType(ctx context.Context, id string) error {
	return s.LeaveTypeRepository.Delete(ctx, id)
}
