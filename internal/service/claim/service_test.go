package claim

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workforcehq/hrm-backend-go/internal/domain/claim"
	"github.com/workforcehq/hrm-backend-go/internal/domain/identity"
)

type fakeTx struct{ pgx.Tx }

func (fakeTx) Commit(context.Context) error   { return nil }
func (fakeTx) Rollback(context.Context) error { return nil }

type fakeDB struct{}

func (fakeDB) BeginTx(context.Context) (pgx.Tx, error) { return fakeTx{}, nil }

type mockClaimTypeRepo struct {
	types map[string]claim.ClaimType
}

func (m *mockClaimTypeRepo) Create(_ context.Context, ct claim.ClaimType) (claim.ClaimType, error) {
	ct.ID = fmt.Sprintf("ctype-%d", len(m.types)+1)
	m.types[ct.ID] = ct
	return ct, nil
}

func (m *mockClaimTypeRepo) GetByID(_ context.Context, id string) (claim.ClaimType, error) {
	ct, ok := m.types[id]
	if !ok {
		return claim.ClaimType{}, claim.ErrClaimTypeNotFound
	}
	return ct, nil
}

func (m *mockClaimTypeRepo) List(_ context.Context) ([]claim.ClaimType, error) {
	var out []claim.ClaimType
	for _, ct := range m.types {
		out = append(out, ct)
	}
	return out, nil
}

func (m *mockClaimTypeRepo) Update(_ context.Context, ct claim.ClaimType) error {
	m.types[ct.ID] = ct
	return nil
}

func (m *mockClaimTypeRepo) Delete(_ context.Context, id string) error {
	delete(m.types, id)
	return nil
}

type mockClaimRepo struct {
	claims map[string]claim.Claim
	seq    int
}

func (m *mockClaimRepo) Create(_ context.Context, c claim.Claim) (claim.Claim, error) {
	m.seq++
	c.ID = fmt.Sprintf("claim-%d", m.seq)
	c.CreatedAt = time.Now()
	m.claims[c.ID] = c
	return c, nil
}

func (m *mockClaimRepo) GetByID(_ context.Context, id string) (claim.Claim, error) {
	c, ok := m.claims[id]
	if !ok {
		return claim.Claim{}, claim.ErrClaimNotFound
	}
	return c, nil
}

func (m *mockClaimRepo) List(_ context.Context) ([]claim.Claim, error) {
	var out []claim.Claim
	for _, c := range m.claims {
		out = append(out, c)
	}
	return out, nil
}

func (m *mockClaimRepo) ListByEmployee(_ context.Context, employeeID string) ([]claim.Claim, error) {
	var out []claim.Claim
	for _, c := range m.claims {
		if c.EmployeeID == employeeID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *mockClaimRepo) ListByEmployeeYear(_ context.Context, employeeID string, year int) ([]claim.Claim, error) {
	var out []claim.Claim
	for _, c := range m.claims {
		if c.EmployeeID == employeeID && c.ClaimDate.Year() == year {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *mockClaimRepo) Update(_ context.Context, c claim.Claim) error {
	if _, ok := m.claims[c.ID]; !ok {
		return claim.ErrClaimNotFound
	}
	m.claims[c.ID] = c
	return nil
}

func (m *mockClaimRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.claims[id]; !ok {
		return claim.ErrClaimNotFound
	}
	delete(m.claims, id)
	return nil
}

var testNow = time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

func newTestService() (*Service, *mockClaimRepo) {
	types := &mockClaimTypeRepo{types: map[string]claim.ClaimType{
		"travel": {ID: "travel", Name: "Travel", MaximumAmount: 2000, RequiresReceipt: true},
		"other":  {ID: "other", Name: "Other", MaximumAmount: 1000, RequiresReceipt: false},
	}}
	claims := &mockClaimRepo{claims: make(map[string]claim.Claim)}

	svc := NewService(fakeDB{}, types, claims)
	svc.now = func() time.Time { return testNow }
	return svc, claims
}

func employeeContext(employeeID string) context.Context {
	return identity.WithCurrentUser(context.Background(), identity.CurrentUser{
		UserID:     "user-1",
		Username:   "jdoe",
		EmployeeID: &employeeID,
	})
}

func adminContext() context.Context {
	return identity.WithCurrentUser(context.Background(), identity.CurrentUser{
		UserID:   "admin-1",
		Username: "admin",
		IsAdmin:  true,
	})
}

func TestClaimService_Submit_Success(t *testing.T) {
	svc, _ := newTestService()
	receipt := "https://files.example.com/receipt.pdf"

	created, err := svc.Submit(employeeContext("emp-1"), claim.CreateClaimRequest{
		ClaimTypeID: "travel",
		Title:       "Taxi to client site",
		Amount:      42.50,
		ClaimDate:   "2026-08-28",
		ReceiptURL:  &receipt,
	})

	require.NoError(t, err)
	assert.Equal(t, claim.StatusPending, created.Status)
	assert.Equal(t, "emp-1", created.EmployeeID)
	assert.Equal(t, 42.50, created.Amount)
	assert.Equal(t, time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC), created.ClaimDate)
}

func TestClaimService_Submit_InvalidAmount(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Submit(employeeContext("emp-1"), claim.CreateClaimRequest{
		ClaimTypeID: "other",
		Title:       "Nothing",
		Amount:      0,
		ClaimDate:   "2026-08-28",
	})
	assert.ErrorIs(t, err, claim.ErrInvalidAmount)
}

func TestClaimService_Submit_AmountExceedsLimit(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Submit(employeeContext("emp-1"), claim.CreateClaimRequest{
		ClaimTypeID: "other",
		Title:       "Expensive chair",
		Amount:      1500,
		ClaimDate:   "2026-08-28",
	})
	assert.ErrorIs(t, err, claim.ErrAmountExceedsLimit)
}

func TestClaimService_Submit_FutureDate(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Submit(employeeContext("emp-1"), claim.CreateClaimRequest{
		ClaimTypeID: "other",
		Title:       "Tomorrow's lunch",
		Amount:      20,
		ClaimDate:   "2026-09-02",
	})
	assert.ErrorIs(t, err, claim.ErrClaimDateInFuture)
}

func TestClaimService_Submit_SameDayAllowed(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Submit(employeeContext("emp-1"), claim.CreateClaimRequest{
		ClaimTypeID: "other",
		Title:       "Today's lunch",
		Amount:      20,
		ClaimDate:   "2026-09-01",
	})
	assert.NoError(t, err)
}

func TestClaimService_Submit_ReceiptRequired(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Submit(employeeContext("emp-1"), claim.CreateClaimRequest{
		ClaimTypeID: "travel",
		Title:       "Flight to conference",
		Amount:      800,
		ClaimDate:   "2026-08-28",
	})
	assert.ErrorIs(t, err, claim.ErrReceiptRequired)

	empty := ""
	_, err = svc.Submit(employeeContext("emp-1"), claim.CreateClaimRequest{
		ClaimTypeID: "travel",
		Title:       "Flight to conference",
		Amount:      800,
		ClaimDate:   "2026-08-28",
		ReceiptURL:  &empty,
	})
	assert.ErrorIs(t, err, claim.ErrReceiptRequired)
}

func TestClaimService_Decide_Approve(t *testing.T) {
	svc, _ := newTestService()
	ctx := employeeContext("emp-1")

	created, err := svc.Submit(ctx, claim.CreateClaimRequest{
		ClaimTypeID: "other",
		Title:       "Team lunch",
		Amount:      85,
		ClaimDate:   "2026-08-28",
	})
	require.NoError(t, err)

	decided, err := svc.Decide(ctx, created.ID, "mgr-1", claim.DecideClaimRequest{Approved: true})

	require.NoError(t, err)
	assert.Equal(t, claim.StatusApproved, decided.Status)
	require.NotNil(t, decided.ApprovedByID)
	assert.Equal(t, "mgr-1", *decided.ApprovedByID)
	assert.NotNil(t, decided.ApprovalDate)
}

func TestClaimService_Decide_AlreadyProcessed(t *testing.T) {
	svc, _ := newTestService()
	ctx := employeeContext("emp-1")

	created, err := svc.Submit(ctx, claim.CreateClaimRequest{
		ClaimTypeID: "other",
		Title:       "Team lunch",
		Amount:      85,
		ClaimDate:   "2026-08-28",
	})
	require.NoError(t, err)

	_, err = svc.Decide(ctx, created.ID, "mgr-1", claim.DecideClaimRequest{Approved: false})
	require.NoError(t, err)

	_, err = svc.Decide(ctx, created.ID, "mgr-1", claim.DecideClaimRequest{Approved: true})
	assert.ErrorIs(t, err, claim.ErrAlreadyProcessed)
}

func TestClaimService_Cancel_Owner(t *testing.T) {
	svc, claims := newTestService()
	ctx := employeeContext("emp-1")

	created, err := svc.Submit(ctx, claim.CreateClaimRequest{
		ClaimTypeID: "other",
		Title:       "Team lunch",
		Amount:      85,
		ClaimDate:   "2026-08-28",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Cancel(ctx, created.ID))

	_, err = claims.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, claim.ErrClaimNotFound)
}

func TestClaimService_Cancel_NotOwner(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.Submit(employeeContext("emp-1"), claim.CreateClaimRequest{
		ClaimTypeID: "other",
		Title:       "Team lunch",
		Amount:      85,
		ClaimDate:   "2026-08-28",
	})
	require.NoError(t, err)

	err = svc.Cancel(employeeContext("emp-2"), created.ID)
	assert.ErrorIs(t, err, identity.ErrNotResourceOwner)
}

func TestClaimService_Get_Owner(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.Submit(employeeContext("emp-1"), claim.CreateClaimRequest{
		ClaimTypeID: "other",
		Title:       "Team lunch",
		Amount:      85,
		ClaimDate:   "2026-08-28",
	})
	require.NoError(t, err)

	got, err := svc.Get(employeeContext("emp-1"), created.ID)

	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

func TestClaimService_Get_NotOwner(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.Submit(employeeContext("emp-1"), claim.CreateClaimRequest{
		ClaimTypeID: "other",
		Title:       "Team lunch",
		Amount:      85,
		ClaimDate:   "2026-08-28",
	})
	require.NoError(t, err)

	_, err = svc.Get(employeeContext("emp-2"), created.ID)
	assert.ErrorIs(t, err, identity.ErrNotResourceOwner)
}

func TestClaimService_Get_AdminSeesAny(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.Submit(employeeContext("emp-1"), claim.CreateClaimRequest{
		ClaimTypeID: "other",
		Title:       "Team lunch",
		Amount:      85,
		ClaimDate:   "2026-08-28",
	})
	require.NoError(t, err)

	got, err := svc.Get(adminContext(), created.ID)

	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

func TestClaimService_Summary(t *testing.T) {
	svc, _ := newTestService()
	ctx := employeeContext("emp-1")

	first, err := svc.Submit(ctx, claim.CreateClaimRequest{
		ClaimTypeID: "other",
		Title:       "Lunch",
		Amount:      50,
		ClaimDate:   "2026-03-10",
	})
	require.NoError(t, err)
	_, err = svc.Submit(ctx, claim.CreateClaimRequest{
		ClaimTypeID: "other",
		Title:       "Parking",
		Amount:      15,
		ClaimDate:   "2026-05-02",
	})
	require.NoError(t, err)

	_, err = svc.Decide(ctx, first.ID, "mgr-1", claim.DecideClaimRequest{Approved: true})
	require.NoError(t, err)

	summary, err := svc.Summary(ctx)

	require.NoError(t, err)
	assert.Equal(t, 2026, summary.Year)
	assert.Equal(t, 2, summary.TotalClaims)
	assert.Equal(t, 65.0, summary.TotalAmount)
	assert.Equal(t, 1, summary.ApprovedClaims)
	assert.Equal(t, 50.0, summary.ApprovedAmount)
	assert.Equal(t, 1, summary.PendingClaims)
	assert.Equal(t, 15.0, summary.PendingAmount)
}
