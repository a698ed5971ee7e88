package claim

import (
	"context"
	"fmt"
	"time"

	"github.com/workforcehq/hrm-backend-go/internal/domain/claim"
	"github.com/workforcehq/hrm-backend-go/internal/domain/identity"
	"github.com/workforcehq/hrm-backend-go/internal/pkg/database"
)

type Service struct {
	db  database.TxBeginner
	now func() time.Time
	claim.ClaimTypeRepository
	claim.ClaimRepository
}

func NewService(db database.TxBeginner, claimTypeRepository claim.ClaimTypeRepository, claimRepository claim.ClaimRepository) *Service {
	return &Service{
		db:                  db,
		now:                 time.Now,
		ClaimTypeRepository: claimTypeRepository,
		ClaimRepository:     claimRepository,
	}
}

// Submit files an expense claim for the caller after validating it against
// the claim type's rules.
func (s *Service) Submit(ctx context.Context, req claim.CreateClaimRequest) (claim.Claim, error) {
	cu, err := identity.FromContext(ctx)
	if err != nil {
		return claim.Claim{}, err
	}
	employeeID, err := cu.RequireEmployee()
	if err != nil {
		return claim.Claim{}, err
	}

	claimType, err := s.ClaimTypeRepository.GetByID(ctx, req.ClaimTypeID)
	if err != nil {
		return claim.Claim{}, err
	}

	if req.Amount <= 0 {
		return claim.Claim{}, claim.ErrInvalidAmount
	}
	if claimType.MaximumAmount > 0 && req.Amount > claimType.MaximumAmount {
		return claim.Claim{}, claim.ErrAmountExceedsLimit
	}

	claimDate, err := time.Parse("2006-01-02", req.ClaimDate)
	if err != nil {
		return claim.Claim{}, fmt.Errorf("failed to parse claim date: %w", err)
	}
	today := s.now()
	endOfToday := time.Date(today.Year(), today.Month(), today.Day(), 23, 59, 59, 0, time.UTC)
	if claimDate.After(endOfToday) {
		return claim.Claim{}, claim.ErrClaimDateInFuture
	}

	if claimType.RequiresReceipt && (req.ReceiptURL == nil || *req.ReceiptURL == "") {
		return claim.Claim{}, claim.ErrReceiptRequired
	}

	created, err := s.ClaimRepository.Create(ctx, claim.Claim{
		EmployeeID:  employeeID,
		ClaimTypeID: claimType.ID,
		Title:       req.Title,
		Description: req.Description,
		Amount:      req.Amount,
		ClaimDate:   claimDate,
		Status:      claim.StatusPending,
		ReceiptURL:  req.ReceiptURL,
	})
	if err != nil {
		return claim.Claim{}, fmt.Errorf("failed to create claim: %w", err)
	}

	return s.ClaimRepository.GetByID(ctx, created.ID)
}

// Decide approves or rejects a pending claim.
func (s *Service) Decide(ctx context.Context, claimID, approverEmployeeID string, req claim.DecideClaimRequest) (claim.Claim, error) {
	c, err := s.ClaimRepository.GetByID(ctx, claimID)
	if err != nil {
		return claim.Claim{}, err
	}
	if c.Status != claim.StatusPending {
		return claim.Claim{}, claim.ErrAlreadyProcessed
	}

	decidedAt := s.now()
	if req.Approved {
		c.Status = claim.StatusApproved
	} else {
		c.Status = claim.StatusRejected
	}
	c.ApprovedByID = &approverEmployeeID
	c.ApprovalDate = &decidedAt
	c.Comments = req.Comments

	if err := s.ClaimRepository.Update(ctx, c); err != nil {
		return claim.Claim{}, fmt.Errorf("failed to update claim: %w", err)
	}

	return s.ClaimRepository.GetByID(ctx, claimID)
}

// Cancel withdraws a pending claim. Only the owner or an admin may cancel.
func (s *Service) Cancel(ctx context.Context, claimID string) error {
	cu, err := identity.FromContext(ctx)
	if err != nil {
		return err
	}

	c, err := s.ClaimRepository.GetByID(ctx, claimID)
	if err != nil {
		return err
	}
	if !cu.IsAdmin {
		employeeID, err := cu.RequireEmployee()
		if err != nil {
			return err
		}
		if c.EmployeeID != employeeID {
			return identity.ErrNotResourceOwner
		}
	}
	if c.Status != claim.StatusPending {
		return claim.ErrAlreadyProcessed
	}

	return s.ClaimRepository.Delete(ctx, claimID)
}

// Get returns a single claim. Non-admins may only read their own.
func (s *Service) Get(ctx context.Context, id string) (claim.Claim, error) {
	cu, err := identity.FromContext(ctx)
	if err != nil {
		return claim.Claim{}, err
	}

	c, err := s.ClaimRepository.GetByID(ctx, id)
	if err != nil {
		return claim.Claim{}, err
	}
	if !cu.IsAdmin {
		if cu.EmployeeID == nil || *cu.EmployeeID != c.EmployeeID {
			return claim.Claim{}, identity.ErrNotResourceOwner
		}
	}

	return c, nil
}

func (s *Service) List(ctx context.Context) ([]claim.Claim, error) {
	return s.ClaimRepository.List(ctx)
}

// ListMine returns the caller's own claims.
func (s *Service) ListMine(ctx context.Context) ([]claim.Claim, error) {
	cu, err := identity.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	employeeID, err := cu.RequireEmployee()
	if err != nil {
		return nil, err
	}
	return s.ClaimRepository.ListByEmployee(ctx, employeeID)
}

// Summary aggregates the caller's current-calendar-year claims by status.
func (s *Service) Summary(ctx context.Context) (claim.SummaryResponse, error) {
	cu, err := identity.FromContext(ctx)
	if err != nil {
		return claim.SummaryResponse{}, err
	}
	employeeID, err := cu.RequireEmployee()
	if err != nil {
		return claim.SummaryResponse{}, err
	}

	year := s.now().Year()
	claims, err := s.ClaimRepository.ListByEmployeeYear(ctx, employeeID, year)
	if err != nil {
		return claim.SummaryResponse{}, fmt.Errorf("failed to list claims: %w", err)
	}

	return claim.Summarize(year, claims), nil
}

// ListTypes returns the claim type catalog.
func (s *Service) ListTypes(ctx context.Context) ([]claim.ClaimType, error) {
	return s.ClaimTypeRepository.List(ctx)
}
