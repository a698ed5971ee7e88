package claim

import (
	"time"

	"github.com/workforcehq/hrm-backend-go/internal/pkg/validator"
)

type CreateClaimRequest struct {
	ClaimTypeID string  `json:"claim_type_id"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Amount      float64 `json:"amount"`
	ClaimDate   string  `json:"claim_date"`
	ReceiptURL  *string `json:"receipt_url,omitempty"`
}

func (r *CreateClaimRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ClaimTypeID) {
		errs = append(errs, validator.ValidationError{Field: "claim_type_id", Message: "claim_type_id is required"})
	}
	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "title is required"})
	}
	if len(r.Title) > 200 {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "title must not exceed 200 characters"})
	}
	if len(r.Description) > 500 {
		errs = append(errs, validator.ValidationError{Field: "description", Message: "description must not exceed 500 characters"})
	}
	if _, ok := validator.IsValidDate(r.ClaimDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "claim_date", Message: "claim_date must be YYYY-MM-DD"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DecideClaimRequest struct {
	Approved bool    `json:"approved"`
	Comments *string `json:"comments,omitempty"`
}

func (r *DecideClaimRequest) Validate() error {
	if r.Comments != nil && len(*r.Comments) > 500 {
		return validator.ValidationErrors{{Field: "comments", Message: "comments must not exceed 500 characters"}}
	}
	return nil
}

type ClaimResponse struct {
	ID             string     `json:"id"`
	EmployeeID     string     `json:"employee_id"`
	EmployeeName   *string    `json:"employee_name,omitempty"`
	ClaimTypeID    string     `json:"claim_type_id"`
	ClaimTypeName  *string    `json:"claim_type_name,omitempty"`
	Title          string     `json:"title"`
	Description    string     `json:"description,omitempty"`
	Amount         float64    `json:"amount"`
	ClaimDate      time.Time  `json:"claim_date"`
	Status         Status     `json:"status"`
	ApprovedByID   *string    `json:"approved_by_id,omitempty"`
	ApprovedByName *string    `json:"approved_by_name,omitempty"`
	ApprovalDate   *time.Time `json:"approval_date,omitempty"`
	Comments       *string    `json:"comments,omitempty"`
	ReceiptURL     *string    `json:"receipt_url,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

func ToResponse(c Claim) ClaimResponse {
	return ClaimResponse{
		ID:             c.ID,
		EmployeeID:     c.EmployeeID,
		EmployeeName:   c.EmployeeName,
		ClaimTypeID:    c.ClaimTypeID,
		ClaimTypeName:  c.ClaimTypeName,
		Title:          c.Title,
		Description:    c.Description,
		Amount:         c.Amount,
		ClaimDate:      c.ClaimDate,
		Status:         c.Status,
		ApprovedByID:   c.ApprovedByID,
		ApprovedByName: c.ApprovedByName,
		ApprovalDate:   c.ApprovalDate,
		Comments:       c.Comments,
		ReceiptURL:     c.ReceiptURL,
		CreatedAt:      c.CreatedAt,
	}
}

type ClaimTypeResponse struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Description      string  `json:"description,omitempty"`
	MaximumAmount    float64 `json:"maximum_amount"`
	RequiresReceipt  bool    `json:"requires_receipt"`
	RequiresApproval bool    `json:"requires_approval"`
}

func ToTypeResponse(ct ClaimType) ClaimTypeResponse {
	return ClaimTypeResponse{
		ID:               ct.ID,
		Name:             ct.Name,
		Description:      ct.Description,
		MaximumAmount:    ct.MaximumAmount,
		RequiresReceipt:  ct.RequiresReceipt,
		RequiresApproval: ct.RequiresApproval,
	}
}

// SummaryResponse aggregates the caller's claims for one calendar year.
type SummaryResponse struct {
	Year           int     `json:"year"`
	TotalClaims    int     `json:"total_claims"`
	TotalAmount    float64 `json:"total_amount"`
	PendingClaims  int     `json:"pending_claims"`
	PendingAmount  float64 `json:"pending_amount"`
	ApprovedClaims int     `json:"approved_claims"`
	ApprovedAmount float64 `json:"approved_amount"`
	RejectedClaims int     `json:"rejected_claims"`
	RejectedAmount float64 `json:"rejected_amount"`
}

// Summarize groups claims by status into counts and amount sums.
func Summarize(year int, claims []Claim) SummaryResponse {
	s := SummaryResponse{Year: year}
	for _, c := range claims {
		s.TotalClaims++
		s.TotalAmount += c.Amount
		switch c.Status {
		case StatusPending:
			s.PendingClaims++
			s.PendingAmount += c.Amount
		case StatusApproved:
			s.ApprovedClaims++
			s.ApprovedAmount += c.Amount
		case StatusRejected:
			s.RejectedClaims++
			s.RejectedAmount += c.Amount
		}
	}
	return s
}
