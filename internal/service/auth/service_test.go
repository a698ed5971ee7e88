package auth

import (
	"context"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/workforcehq/hrm-backend-go/internal/domain/auth"
	"github.com/workforcehq/hrm-backend-go/internal/domain/employee"
	"github.com/workforcehq/hrm-backend-go/internal/domain/identity"
	"github.com/workforcehq/hrm-backend-go/internal/domain/role"
	"github.com/workforcehq/hrm-backend-go/internal/domain/user"
	"github.com/workforcehq/hrm-backend-go/internal/pkg/jwt"
)

type fakeTx struct{ pgx.Tx }

func (fakeTx) Commit(context.Context) error   { return nil }
func (fakeTx) Rollback(context.Context) error { return nil }

type fakeDB struct{}

func (fakeDB) BeginTx(context.Context) (pgx.Tx, error) { return fakeTx{}, nil }

type mockUserRepo struct {
	users map[string]user.User
	seq   int
}

func (m *mockUserRepo) Create(_ context.Context, u user.User) (user.User, error) {
	m.seq++
	u.ID = fmt.Sprintf("user-%d", m.seq)
	m.users[u.ID] = u
	return u, nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (user.User, error) {
	u, ok := m.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (m *mockUserRepo) GetByUsername(_ context.Context, username string) (user.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (m *mockUserRepo) Update(_ context.Context, u user.User) error {
	m.users[u.ID] = u
	return nil
}

type mockRoleRepo struct {
	roles map[string]role.Role
}

func (m *mockRoleRepo) Create(_ context.Context, r role.Role) (role.Role, error) {
	m.roles[r.ID] = r
	return r, nil
}

func (m *mockRoleRepo) GetByID(_ context.Context, id string) (role.Role, error) {
	r, ok := m.roles[id]
	if !ok {
		return role.Role{}, role.ErrRoleNotFound
	}
	return r, nil
}

func (m *mockRoleRepo) GetByName(_ context.Context, name string) (role.Role, error) {
	for _, r := range m.roles {
		if r.Name == name {
			return r, nil
		}
	}
	return role.Role{}, role.ErrRoleNotFound
}

func (m *mockRoleRepo) GetDefault(_ context.Context) (role.Role, error) {
	for _, r := range m.roles {
		if r.IsDefault {
			return r, nil
		}
	}
	return role.Role{}, role.ErrRoleNotFound
}

func (m *mockRoleRepo) List(_ context.Context) ([]role.Role, error) { return nil, nil }

func (m *mockRoleRepo) Update(_ context.Context, r role.Role) error {
	m.roles[r.ID] = r
	return nil
}

func (m *mockRoleRepo) Delete(_ context.Context, id string) error {
	delete(m.roles, id)
	return nil
}

func (m *mockRoleRepo) ReplacePermissions(_ context.Context, _ string, _ []string) error {
	return nil
}

func (m *mockRoleRepo) ListPermissions(_ context.Context, _ string) ([]role.Permission, error) {
	return nil, nil
}

type assignment struct{ userID, roleID string }

type mockUserRoleRepo struct {
	assignments []assignment
}

func (m *mockUserRoleRepo) Assign(_ context.Context, userID, roleID string) error {
	m.assignments = append(m.assignments, assignment{userID, roleID})
	return nil
}

func (m *mockUserRoleRepo) Remove(_ context.Context, _, _ string) error { return nil }

func (m *mockUserRoleRepo) Exists(_ context.Context, userID, roleID string) (bool, error) {
	for _, a := range m.assignments {
		if a.userID == userID && a.roleID == roleID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockUserRoleRepo) CountByUser(_ context.Context, userID string) (int64, error) {
	var n int64
	for _, a := range m.assignments {
		if a.userID == userID {
			n++
		}
	}
	return n, nil
}

func (m *mockUserRoleRepo) CountByRole(_ context.Context, roleID string) (int64, error) {
	var n int64
	for _, a := range m.assignments {
		if a.roleID == roleID {
			n++
		}
	}
	return n, nil
}

func (m *mockUserRoleRepo) ListUsersInRole(_ context.Context, _ string) ([]role.RoleUser, error) {
	return nil, nil
}

type mockEmployeeRepo struct {
	byUserID map[string]employee.Employee
}

func (m *mockEmployeeRepo) Create(_ context.Context, e employee.Employee) (employee.Employee, error) {
	return e, nil
}

func (m *mockEmployeeRepo) GetByID(_ context.Context, _ string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (m *mockEmployeeRepo) GetByUserID(_ context.Context, userID string) (employee.Employee, error) {
	e, ok := m.byUserID[userID]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (m *mockEmployeeRepo) List(_ context.Context) ([]employee.Employee, error) { return nil, nil }
func (m *mockEmployeeRepo) Update(_ context.Context, _ employee.Employee) error { return nil }
func (m *mockEmployeeRepo) Delete(_ context.Context, _ string) error            { return nil }

type authTestEnv struct {
	svc       *Service
	users     *mockUserRepo
	roles     *mockRoleRepo
	userRoles *mockUserRoleRepo
	employees *mockEmployeeRepo
}

func newAuthTestEnv() authTestEnv {
	users := &mockUserRepo{users: make(map[string]user.User)}
	roles := &mockRoleRepo{roles: map[string]role.Role{
		"role-admin": {ID: "role-admin", Name: "Admin", IsSystem: true},
		"role-user":  {ID: "role-user", Name: "User", IsSystem: true, IsDefault: true},
	}}
	userRoles := &mockUserRoleRepo{}
	employees := &mockEmployeeRepo{byUserID: make(map[string]employee.Employee)}

	jwtSvc := jwt.NewJWTService("test-secret-key", "15m", "168h")
	return authTestEnv{
		svc:       NewService(fakeDB{}, jwtSvc, users, roles, userRoles, employees),
		users:     users,
		roles:     roles,
		userRoles: userRoles,
		employees: employees,
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	env := newAuthTestEnv()
	ctx := context.Background()

	created, err := env.svc.Register(ctx, auth.RegisterRequest{
		Username:  "jdoe",
		Password:  "correct-horse",
		Email:     "jdoe@example.com",
		FirstName: "Jane",
		LastName:  "Doe",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "User", created.Role)
	assert.True(t, created.IsActive)

	// Password is stored hashed, never verbatim.
	assert.NotEqual(t, "correct-horse", created.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("correct-horse")))

	assigned, err := env.userRoles.Exists(ctx, created.ID, "role-user")
	require.NoError(t, err)
	assert.True(t, assigned)
}

func TestAuthService_Register_UsernameTaken(t *testing.T) {
	env := newAuthTestEnv()
	ctx := context.Background()

	_, err := env.svc.Register(ctx, auth.RegisterRequest{Username: "jdoe", Password: "correct-horse"})
	require.NoError(t, err)

	_, err = env.svc.Register(ctx, auth.RegisterRequest{Username: "jdoe", Password: "other-password"})
	assert.ErrorIs(t, err, user.ErrUsernameTaken)
}

func TestAuthService_Register_NoDefaultRole(t *testing.T) {
	env := newAuthTestEnv()
	delete(env.roles.roles, "role-user")

	_, err := env.svc.Register(context.Background(), auth.RegisterRequest{
		Username: "jdoe", Password: "correct-horse",
	})
	assert.ErrorIs(t, err, auth.ErrDefaultRoleMissing)
}

func TestAuthService_Login_Success(t *testing.T) {
	env := newAuthTestEnv()
	ctx := context.Background()

	created, err := env.svc.Register(ctx, auth.RegisterRequest{Username: "jdoe", Password: "correct-horse"})
	require.NoError(t, err)
	env.employees.byUserID[created.ID] = employee.Employee{ID: "emp-1", UserID: created.ID}

	tokens, err := env.svc.Login(ctx, auth.LoginRequest{Username: "jdoe", Password: "correct-horse"})

	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
	assert.Greater(t, tokens.RefreshTokenExpiresAt, tokens.AccessTokenExpiresAt)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	env := newAuthTestEnv()
	ctx := context.Background()

	_, err := env.svc.Register(ctx, auth.RegisterRequest{Username: "jdoe", Password: "correct-horse"})
	require.NoError(t, err)

	_, err = env.svc.Login(ctx, auth.LoginRequest{Username: "jdoe", Password: "wrong-horse"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	env := newAuthTestEnv()

	_, err := env.svc.Login(context.Background(), auth.LoginRequest{Username: "ghost", Password: "whatever"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Login_InactiveUser(t *testing.T) {
	env := newAuthTestEnv()
	ctx := context.Background()

	created, err := env.svc.Register(ctx, auth.RegisterRequest{Username: "jdoe", Password: "correct-horse"})
	require.NoError(t, err)

	created.IsActive = false
	require.NoError(t, env.users.Update(ctx, created))

	_, err = env.svc.Login(ctx, auth.LoginRequest{Username: "jdoe", Password: "correct-horse"})
	assert.ErrorIs(t, err, auth.ErrUserInactive)
}

func TestAuthService_Refresh_Success(t *testing.T) {
	env := newAuthTestEnv()
	ctx := context.Background()

	_, err := env.svc.Register(ctx, auth.RegisterRequest{Username: "jdoe", Password: "correct-horse"})
	require.NoError(t, err)

	tokens, err := env.svc.Login(ctx, auth.LoginRequest{Username: "jdoe", Password: "correct-horse"})
	require.NoError(t, err)

	refreshed, err := env.svc.Refresh(ctx, auth.RefreshRequest{RefreshToken: tokens.RefreshToken})

	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.NotEmpty(t, refreshed.RefreshToken)
}

func TestAuthService_Refresh_RejectsAccessToken(t *testing.T) {
	env := newAuthTestEnv()
	ctx := context.Background()

	_, err := env.svc.Register(ctx, auth.RegisterRequest{Username: "jdoe", Password: "correct-horse"})
	require.NoError(t, err)

	tokens, err := env.svc.Login(ctx, auth.LoginRequest{Username: "jdoe", Password: "correct-horse"})
	require.NoError(t, err)

	_, err = env.svc.Refresh(ctx, auth.RefreshRequest{RefreshToken: tokens.AccessToken})
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestAuthService_Refresh_Garbage(t *testing.T) {
	env := newAuthTestEnv()

	_, err := env.svc.Refresh(context.Background(), auth.RefreshRequest{RefreshToken: "not-a-token"})
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestAuthService_Me(t *testing.T) {
	env := newAuthTestEnv()
	ctx := context.Background()

	created, err := env.svc.Register(ctx, auth.RegisterRequest{
		Username: "jdoe", Password: "correct-horse", Email: "jdoe@example.com",
	})
	require.NoError(t, err)

	employeeID := "emp-1"
	cuCtx := identity.WithCurrentUser(ctx, identity.CurrentUser{
		UserID:     created.ID,
		Username:   created.Username,
		EmployeeID: &employeeID,
	})

	me, err := env.svc.Me(cuCtx)

	require.NoError(t, err)
	assert.Equal(t, created.ID, me.UserID)
	assert.Equal(t, "jdoe", me.Username)
	assert.Equal(t, "jdoe@example.com", me.Email)
	assert.False(t, me.IsAdmin)
	require.NotNil(t, me.EmployeeID)
	assert.Equal(t, "emp-1", *me.EmployeeID)
}

func TestAuthService_Me_NoIdentity(t *testing.T) {
	env := newAuthTestEnv()

	_, err := env.svc.Me(context.Background())
	assert.ErrorIs(t, err, identity.ErrNoIdentity)
}
