package leave

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workforcehq/hrm-backend-go/internal/domain/identity"
	"github.com/workforcehq/hrm-backend-go/internal/domain/leave"
)

type fakeTx struct{ pgx.Tx }

func (fakeTx) Commit(context.Context) error   { return nil }
func (fakeTx) Rollback(context.Context) error { return nil }

type fakeDB struct{}

func (fakeDB) BeginTx(context.Context) (pgx.Tx, error) { return fakeTx{}, nil }

type mockLeaveTypeRepo struct {
	types map[string]leave.LeaveType
}

func (m *mockLeaveTypeRepo) Create(_ context.Context, lt leave.LeaveType) (leave.LeaveType, error) {
	lt.ID = fmt.Sprintf("type-%d", len(m.types)+1)
	m.types[lt.ID] = lt
	return lt, nil
}

func (m *mockLeaveTypeRepo) GetByID(_ context.Context, id string) (leave.LeaveType, error) {
	lt, ok := m.types[id]
	if !ok {
		return leave.LeaveType{}, leave.ErrLeaveTypeNotFound
	}
	return lt, nil
}

func (m *mockLeaveTypeRepo) List(_ context.Context) ([]leave.LeaveType, error) {
	var out []leave.LeaveType
	for _, lt := range m.types {
		out = append(out, lt)
	}
	return out, nil
}

func (m *mockLeaveTypeRepo) Update(_ context.Context, lt leave.LeaveType) error {
	if _, ok := m.types[lt.ID]; !ok {
		return leave.ErrLeaveTypeNotFound
	}
	m.types[lt.ID] = lt
	return nil
}

func (m *mockLeaveTypeRepo) Delete(_ context.Context, id string) error {
	delete(m.types, id)
	return nil
}

type mockBalanceRepo struct {
	balances map[string]leave.LeaveBalance
	seq      int
}

func (m *mockBalanceRepo) Create(_ context.Context, b leave.LeaveBalance) (leave.LeaveBalance, error) {
	m.seq++
	b.ID = fmt.Sprintf("bal-%d", m.seq)
	m.balances[b.ID] = b
	return b, nil
}

func (m *mockBalanceRepo) GetByEmployeeTypeYear(_ context.Context, employeeID, leaveTypeID string, year int) (leave.LeaveBalance, error) {
	for _, b := range m.balances {
		if b.EmployeeID == employeeID && b.LeaveTypeID == leaveTypeID && b.Year == year {
			return b, nil
		}
	}
	return leave.LeaveBalance{}, leave.ErrBalanceNotFound
}

func (m *mockBalanceRepo) ListByEmployeeYear(_ context.Context, employeeID string, year int) ([]leave.LeaveBalance, error) {
	var out []leave.LeaveBalance
	for _, b := range m.balances {
		if b.EmployeeID == employeeID && b.Year == year {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *mockBalanceRepo) ReserveDays(_ context.Context, balanceID string, days int) error {
	b, ok := m.balances[balanceID]
	if !ok {
		return leave.ErrBalanceNotFound
	}
	if b.UsedDays+days > b.AllottedDays {
		return leave.ErrInsufficientBalance
	}
	b.UsedDays += days
	m.balances[balanceID] = b
	return nil
}

func (m *mockBalanceRepo) RestoreDays(_ context.Context, employeeID, leaveTypeID string, year, days int) error {
	for id, b := range m.balances {
		if b.EmployeeID == employeeID && b.LeaveTypeID == leaveTypeID && b.Year == year {
			b.UsedDays -= days
			if b.UsedDays < 0 {
				b.UsedDays = 0
			}
			m.balances[id] = b
			return nil
		}
	}
	return leave.ErrBalanceNotFound
}

type mockLeaveRepo struct {
	leaves map[string]leave.Leave
	seq    int
}

func (m *mockLeaveRepo) Create(_ context.Context, l leave.Leave) (leave.Leave, error) {
	m.seq++
	l.ID = fmt.Sprintf("leave-%d", m.seq)
	l.CreatedAt = time.Now()
	m.leaves[l.ID] = l
	return l, nil
}

func (m *mockLeaveRepo) GetByID(_ context.Context, id string) (leave.Leave, error) {
	l, ok := m.leaves[id]
	if !ok {
		return leave.Leave{}, leave.ErrLeaveNotFound
	}
	return l, nil
}

func (m *mockLeaveRepo) List(_ context.Context) ([]leave.Leave, error) {
	var out []leave.Leave
	for _, l := range m.leaves {
		out = append(out, l)
	}
	return out, nil
}

func (m *mockLeaveRepo) ListByEmployee(_ context.Context, employeeID string) ([]leave.Leave, error) {
	var out []leave.Leave
	for _, l := range m.leaves {
		if l.EmployeeID == employeeID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (m *mockLeaveRepo) Update(_ context.Context, l leave.Leave) error {
	if _, ok := m.leaves[l.ID]; !ok {
		return leave.ErrLeaveNotFound
	}
	m.leaves[l.ID] = l
	return nil
}

func (m *mockLeaveRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.leaves[id]; !ok {
		return leave.ErrLeaveNotFound
	}
	delete(m.leaves, id)
	return nil
}

type testEnv struct {
	svc      *Service
	types    *mockLeaveTypeRepo
	balances *mockBalanceRepo
	leaves   *mockLeaveRepo
}

func newTestEnv(now time.Time) testEnv {
	types := &mockLeaveTypeRepo{types: map[string]leave.LeaveType{
		"annual": {ID: "annual", Name: "Annual Leave", DefaultDays: 14, RequiresApproval: true},
		"sick":   {ID: "sick", Name: "Sick Leave", DefaultDays: 10, RequiresApproval: true},
	}}
	balances := &mockBalanceRepo{balances: make(map[string]leave.LeaveBalance)}
	leaves := &mockLeaveRepo{leaves: make(map[string]leave.Leave)}

	svc := NewService(fakeDB{}, types, balances, leaves)
	svc.now = func() time.Time { return now }

	return testEnv{svc: svc, types: types, balances: balances, leaves: leaves}
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

var testNow = time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

func TestLeaveService_Submit_ReservesDays(t *testing.T) {
	env := newTestEnv(testNow)
	ctx := employeeContext("emp-1")

	created, err := env.svc.Submit(ctx, leave.CreateLeaveRequest{
		LeaveTypeID: "annual",
		StartDate:   "2026-09-14",
		EndDate:     "2026-09-18",
		Reason:      "family trip",
	})

	require.NoError(t, err)
	assert.Equal(t, leave.StatusPending, created.Status)
	assert.Equal(t, "emp-1", created.EmployeeID)
	assert.Equal(t, 5, created.Days())

	balance, err := env.balances.GetByEmployeeTypeYear(ctx, "emp-1", "annual", 2026)
	require.NoError(t, err)
	assert.Equal(t, 14, balance.AllottedDays)
	assert.Equal(t, 5, balance.UsedDays)
}

func TestLeaveService_Submit_InsufficientBalance(t *testing.T) {
	env := newTestEnv(testNow)
	ctx := employeeContext("emp-1")

	// 15 days against a 14 day allotment.
	_, err := env.svc.Submit(ctx, leave.CreateLeaveRequest{
		LeaveTypeID: "annual",
		StartDate:   "2026-09-07",
		EndDate:     "2026-09-21",
	})
	assert.ErrorIs(t, err, leave.ErrInsufficientBalance)

	// The failed submission must not leave a request behind.
	all, err := env.leaves.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestLeaveService_Submit_StartDateInPast(t *testing.T) {
	env := newTestEnv(testNow)

	_, err := env.svc.Submit(employeeContext("emp-1"), leave.CreateLeaveRequest{
		LeaveTypeID: "annual",
		StartDate:   "2026-08-28",
		EndDate:     "2026-08-29",
	})
	assert.ErrorIs(t, err, leave.ErrStartDateInPast)
}

func TestLeaveService_Submit_InvalidDateRange(t *testing.T) {
	env := newTestEnv(testNow)

	_, err := env.svc.Submit(employeeContext("emp-1"), leave.CreateLeaveRequest{
		LeaveTypeID: "annual",
		StartDate:   "2026-09-18",
		EndDate:     "2026-09-14",
	})
	assert.ErrorIs(t, err, leave.ErrInvalidDateRange)
}

func TestLeaveService_Submit_UnknownType(t *testing.T) {
	env := newTestEnv(testNow)

	_, err := env.svc.Submit(employeeContext("emp-1"), leave.CreateLeaveRequest{
		LeaveTypeID: "sabbatical",
		StartDate:   "2026-09-14",
		EndDate:     "2026-09-18",
	})
	assert.ErrorIs(t, err, leave.ErrLeaveTypeNotFound)
}

func TestLeaveService_Decide_Approve(t *testing.T) {
	env := newTestEnv(testNow)
	ctx := employeeContext("emp-1")

	created, err := env.svc.Submit(ctx, leave.CreateLeaveRequest{
		LeaveTypeID: "annual",
		StartDate:   "2026-09-14",
		EndDate:     "2026-09-18",
	})
	require.NoError(t, err)

	decided, err := env.svc.Decide(ctx, created.ID, "mgr-1", leave.DecideLeaveRequest{Approved: true})

	require.NoError(t, err)
	assert.Equal(t, leave.StatusApproved, decided.Status)
	require.NotNil(t, decided.ApprovedByID)
	assert.Equal(t, "mgr-1", *decided.ApprovedByID)
	assert.NotNil(t, decided.ApprovalDate)

	// Approval keeps the reservation.
	balance, err := env.balances.GetByEmployeeTypeYear(ctx, "emp-1", "annual", 2026)
	require.NoError(t, err)
	assert.Equal(t, 5, balance.UsedDays)
}

func TestLeaveService_Decide_RejectRestoresDays(t *testing.T) {
	env := newTestEnv(testNow)
	ctx := employeeContext("emp-1")

	created, err := env.svc.Submit(ctx, leave.CreateLeaveRequest{
		LeaveTypeID: "annual",
		StartDate:   "2026-09-14",
		EndDate:     "2026-09-18",
	})
	require.NoError(t, err)

	comments := "coverage gap that week"
	decided, err := env.svc.Decide(ctx, created.ID, "mgr-1", leave.DecideLeaveRequest{
		Approved: false,
		Comments: &comments,
	})

	require.NoError(t, err)
	assert.Equal(t, leave.StatusRejected, decided.Status)

	balance, err := env.balances.GetByEmployeeTypeYear(ctx, "emp-1", "annual", 2026)
	require.NoError(t, err)
	assert.Equal(t, 0, balance.UsedDays)
}

func TestLeaveService_Decide_AlreadyProcessed(t *testing.T) {
	env := newTestEnv(testNow)
	ctx := employeeContext("emp-1")

	created, err := env.svc.Submit(ctx, leave.CreateLeaveRequest{
		LeaveTypeID: "annual",
		StartDate:   "2026-09-14",
		EndDate:     "2026-09-18",
	})
	require.NoError(t, err)

	_, err = env.svc.Decide(ctx, created.ID, "mgr-1", leave.DecideLeaveRequest{Approved: true})
	require.NoError(t, err)

	_, err = env.svc.Decide(ctx, created.ID, "mgr-1", leave.DecideLeaveRequest{Approved: false})
	assert.ErrorIs(t, err, leave.ErrAlreadyProcessed)
}

func TestLeaveService_Cancel_OwnerRestoresDays(t *testing.T) {
	env := newTestEnv(testNow)
	ctx := employeeContext("emp-1")

	created, err := env.svc.Submit(ctx, leave.CreateLeaveRequest{
		LeaveTypeID: "annual",
		StartDate:   "2026-09-14",
		EndDate:     "2026-09-18",
	})
	require.NoError(t, err)

	require.NoError(t, env.svc.Cancel(ctx, created.ID))

	_, err = env.leaves.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, leave.ErrLeaveNotFound)

	balance, err := env.balances.GetByEmployeeTypeYear(ctx, "emp-1", "annual", 2026)
	require.NoError(t, err)
	assert.Equal(t, 0, balance.UsedDays)
}

func TestLeaveService_Cancel_NotOwner(t *testing.T) {
	env := newTestEnv(testNow)

	created, err := env.svc.Submit(employeeContext("emp-1"), leave.CreateLeaveRequest{
		LeaveTypeID: "annual",
		StartDate:   "2026-09-14",
		EndDate:     "2026-09-18",
	})
	require.NoError(t, err)

	err = env.svc.Cancel(employeeContext("emp-2"), created.ID)
	assert.ErrorIs(t, err, identity.ErrNotResourceOwner)
}

func TestLeaveService_Get_Owner(t *testing.T) {
	env := newTestEnv(testNow)

	created, err := env.svc.Submit(employeeContext("emp-1"), leave.CreateLeaveRequest{
		LeaveTypeID: "annual",
		StartDate:   "2026-09-14",
		EndDate:     "2026-09-18",
	})
	require.NoError(t, err)

	got, err := env.svc.Get(employeeContext("emp-1"), created.ID)

	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

func TestLeaveService_Get_NotOwner(t *testing.T) {
	env := newTestEnv(testNow)

	created, err := env.svc.Submit(employeeContext("emp-1"), leave.CreateLeaveRequest{
		LeaveTypeID: "annual",
		StartDate:   "2026-09-14",
		EndDate:     "2026-09-18",
	})
	require.NoError(t, err)

	_, err = env.svc.Get(employeeContext("emp-2"), created.ID)
	assert.ErrorIs(t, err, identity.ErrNotResourceOwner)
}

func TestLeaveService_Get_AdminSeesAny(t *testing.T) {
	env := newTestEnv(testNow)

	created, err := env.svc.Submit(employeeContext("emp-1"), leave.CreateLeaveRequest{
		LeaveTypeID: "annual",
		StartDate:   "2026-09-14",
		EndDate:     "2026-09-18",
	})
	require.NoError(t, err)

	got, err := env.svc.Get(adminContext(), created.ID)

	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

func TestLeaveService_Cancel_AdminMayCancelAnyPending(t *testing.T) {
	env := newTestEnv(testNow)

	created, err := env.svc.Submit(employeeContext("emp-1"), leave.CreateLeaveRequest{
		LeaveTypeID: "annual",
		StartDate:   "2026-09-14",
		EndDate:     "2026-09-18",
	})
	require.NoError(t, err)

	assert.NoError(t, env.svc.Cancel(adminContext(), created.ID))
}

func TestLeaveService_Cancel_ApprovedIsFinal(t *testing.T) {
	env := newTestEnv(testNow)
	ctx := employeeContext("emp-1")

	created, err := env.svc.Submit(ctx, leave.CreateLeaveRequest{
		LeaveTypeID: "annual",
		StartDate:   "2026-09-14",
		EndDate:     "2026-09-18",
	})
	require.NoError(t, err)

	_, err = env.svc.Decide(ctx, created.ID, "mgr-1", leave.DecideLeaveRequest{Approved: true})
	require.NoError(t, err)

	err = env.svc.Cancel(ctx, created.ID)
	assert.ErrorIs(t, err, leave.ErrAlreadyProcessed)
}

func TestLeaveService_Balances_SynthesizesDefaults(t *testing.T) {
	env := newTestEnv(testNow)
	ctx := employeeContext("emp-1")

	// One stored row for annual leave, none for sick leave.
	_, err := env.svc.Submit(ctx, leave.CreateLeaveRequest{
		LeaveTypeID: "annual",
		StartDate:   "2026-09-14",
		EndDate:     "2026-09-16",
	})
	require.NoError(t, err)

	balances, err := env.svc.Balances(ctx)
	require.NoError(t, err)
	require.Len(t, balances, 2)

	byType := make(map[string]leave.BalanceResponse)
	for _, b := range balances {
		byType[b.LeaveTypeID] = b
	}

	annual := byType["annual"]
	assert.NotEmpty(t, annual.ID)
	assert.Equal(t, 14, annual.AllottedDays)
	assert.Equal(t, 3, annual.UsedDays)
	assert.Equal(t, 11, annual.RemainingDays)

	sick := byType["sick"]
	assert.Empty(t, sick.ID)
	assert.Equal(t, 10, sick.AllottedDays)
	assert.Equal(t, 0, sick.UsedDays)
	assert.Equal(t, 10, sick.RemainingDays)
	assert.Equal(t, 2026, sick.Year)
}
