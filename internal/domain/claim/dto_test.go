package claim

import "testing"

func TestSummarize(t *testing.T) {
	claims := []Claim{
		{Status: StatusPending, Amount: 120.50},
		{Status: StatusPending, Amount: 80},
		{Status: StatusApproved, Amount: 300},
		{Status: StatusRejected, Amount: 45.25},
	}

	s := Summarize(2026, claims)

	if s.Year != 2026 {
		t.Errorf("Year = %d, want 2026", s.Year)
	}
	if s.TotalClaims != 4 {
		t.Errorf("TotalClaims = %d, want 4", s.TotalClaims)
	}
	if s.TotalAmount != 545.75 {
		t.Errorf("TotalAmount = %v, want 545.75", s.TotalAmount)
	}
	if s.PendingClaims != 2 || s.PendingAmount != 200.50 {
		t.Errorf("pending = %d/%v, want 2/200.50", s.PendingClaims, s.PendingAmount)
	}
	if s.ApprovedClaims != 1 || s.ApprovedAmount != 300 {
		t.Errorf("approved = %d/%v, want 1/300", s.ApprovedClaims, s.ApprovedAmount)
	}
	if s.RejectedClaims != 1 || s.RejectedAmount != 45.25 {
		t.Errorf("rejected = %d/%v, want 1/45.25", s.RejectedClaims, s.RejectedAmount)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(2025, nil)
	if s.TotalClaims != 0 || s.TotalAmount != 0 {
		t.Errorf("empty summary = %+v, want zeroes", s)
	}
	if s.Year != 2025 {
		t.Errorf("Year = %d, want 2025", s.Year)
	}
}

func TestCreateClaimRequestValidate(t *testing.T) {
	valid := CreateClaimRequest{
		ClaimTypeID: "a3bb189e-8bf9-4888-9912-ace4e6543002",
		Title:       "Taxi to client site",
		Amount:      42.50,
		ClaimDate:   "2026-08-28",
	}
	if err := valid.Validate(); err != nil {
		t.Errorf("valid request returned error: %v", err)
	}

	missing := CreateClaimRequest{ClaimDate: "28-08-2026"}
	err := missing.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	errs, ok := err.(interface{ ToMap() map[string]string })
	if !ok {
		t.Fatalf("error type %T has no ToMap", err)
	}
	m := errs.ToMap()
	for _, field := range []string{"claim_type_id", "title", "claim_date"} {
		if _, present := m[field]; !present {
			t.Errorf("expected validation error for %q, got %v", field, m)
		}
	}
}
