package claim

import "time"

// ClaimType is the expense catalog entry: what can be claimed, up to how
// much, and whether a receipt must accompany the claim.
type ClaimType struct {
	ID              string
	Name            string
	Description     string
	MaximumAmount   float64
	RequiresReceipt bool
	RequiresApproval bool
}

type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

// Claim is an expense reimbursement request. Unlike leave there is no
// ledger; deciding or cancelling only touches status fields.
type Claim struct {
	ID           string
	EmployeeID   string
	ClaimTypeID  string
	Title        string
	Description  string
	Amount       float64
	ClaimDate    time.Time
	Status       Status
	ApprovedByID *string
	ApprovalDate *time.Time
	Comments     *string
	ReceiptURL   *string
	CreatedAt    time.Time
	UpdatedAt    *time.Time

	// Resolved for responses
	EmployeeName   *string
	ClaimTypeName  *string
	ApprovedByName *string
}
