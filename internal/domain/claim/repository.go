package claim

import "context"

// ClaimTypeRepository - interface for the claim_types table
type ClaimTypeRepository interface {
	Create(ctx context.Context, ct ClaimType) (ClaimType, error)
	GetByID(ctx context.Context, id string) (ClaimType, error)
	List(ctx context.Context) ([]ClaimType, error)
	Update(ctx context.Context, ct ClaimType) error
	Delete(ctx context.Context, id string) error
}

// ClaimRepository - interface for the claims table
type ClaimRepository interface {
	Create(ctx context.Context, c Claim) (Claim, error)
	GetByID(ctx context.Context, id string) (Claim, error)
	List(ctx context.Context) ([]Claim, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Claim, error)
	ListByEmployeeYear(ctx context.Context, employeeID string, year int) ([]Claim, error)
	Update(ctx context.Context, c Claim) error
	Delete(ctx context.Context, id string) error
}
