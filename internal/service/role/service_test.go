package role

import (
	"context"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workforcehq/hrm-backend-go/internal/domain/role"
	"github.com/workforcehq/hrm-backend-go/internal/domain/user"
)

type fakeTx struct{ pgx.Tx }

func (fakeTx) Commit(context.Context) error   { return nil }
func (fakeTx) Rollback(context.Context) error { return nil }

type fakeDB struct{}

func (fakeDB) BeginTx(context.Context) (pgx.Tx, error) { return fakeTx{}, nil }

type mockRoleRepo struct {
	roles       map[string]role.Role
	permissions map[string][]string
	seq         int
}

func newMockRoleRepo() *mockRoleRepo {
	return &mockRoleRepo{
		roles:       make(map[string]role.Role),
		permissions: make(map[string][]string),
	}
}

func (m *mockRoleRepo) Create(_ context.Context, r role.Role) (role.Role, error) {
	m.seq++
	r.ID = fmt.Sprintf("role-%d", m.seq)
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

func (m *mockRoleRepo) List(_ context.Context) ([]role.Role, error) {
	var out []role.Role
	for _, r := range m.roles {
		out = append(out, r)
	}
	return out, nil
}

func (m *mockRoleRepo) Update(_ context.Context, r role.Role) error {
	if _, ok := m.roles[r.ID]; !ok {
		return role.ErrRoleNotFound
	}
	m.roles[r.ID] = r
	return nil
}

func (m *mockRoleRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.roles[id]; !ok {
		return role.ErrRoleNotFound
	}
	delete(m.roles, id)
	return nil
}

func (m *mockRoleRepo) ReplacePermissions(_ context.Context, roleID string, permissionIDs []string) error {
	m.permissions[roleID] = permissionIDs
	return nil
}

func (m *mockRoleRepo) ListPermissions(_ context.Context, roleID string) ([]role.Permission, error) {
	var out []role.Permission
	for _, id := range m.permissions[roleID] {
		out = append(out, role.Permission{ID: id})
	}
	return out, nil
}

type mockPermissionRepo struct {
	permissions map[string]role.Permission
}

func (m *mockPermissionRepo) GetByID(_ context.Context, id string) (role.Permission, error) {
	p, ok := m.permissions[id]
	if !ok {
		return role.Permission{}, role.ErrPermissionNotFound
	}
	return p, nil
}

func (m *mockPermissionRepo) List(_ context.Context) ([]role.Permission, error) {
	var out []role.Permission
	for _, p := range m.permissions {
		out = append(out, p)
	}
	return out, nil
}

func (m *mockPermissionRepo) HasPermission(_ context.Context, _, _, _ string) (bool, error) {
	return false, nil
}

type assignment struct{ userID, roleID string }

type mockUserRoleRepo struct {
	assignments []assignment
}

func (m *mockUserRoleRepo) Assign(_ context.Context, userID, roleID string) error {
	for _, a := range m.assignments {
		if a.userID == userID && a.roleID == roleID {
			return role.ErrRoleAlreadyAssigned
		}
	}
	m.assignments = append(m.assignments, assignment{userID, roleID})
	return nil
}

func (m *mockUserRoleRepo) Remove(_ context.Context, userID, roleID string) error {
	for i, a := range m.assignments {
		if a.userID == userID && a.roleID == roleID {
			m.assignments = append(m.assignments[:i], m.assignments[i+1:]...)
			return nil
		}
	}
	return role.ErrAssignmentNotFound
}

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

func (m *mockUserRoleRepo) ListUsersInRole(_ context.Context, roleID string) ([]role.RoleUser, error) {
	var out []role.RoleUser
	for _, a := range m.assignments {
		if a.roleID == roleID {
			out = append(out, role.RoleUser{UserID: a.userID})
		}
	}
	return out, nil
}

type mockUserRepo struct {
	users map[string]user.User
}

func (m *mockUserRepo) Create(_ context.Context, u user.User) (user.User, error) {
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

type roleTestEnv struct {
	svc       *Service
	roles     *mockRoleRepo
	perms     *mockPermissionRepo
	userRoles *mockUserRoleRepo
	users     *mockUserRepo
}

func newRoleTestEnv() roleTestEnv {
	roles := newMockRoleRepo()
	perms := &mockPermissionRepo{permissions: map[string]role.Permission{
		"perm-view": {ID: "perm-view", Module: role.ModuleEmployee, Action: role.ActionView},
		"perm-edit": {ID: "perm-edit", Module: role.ModuleEmployee, Action: role.ActionEdit},
	}}
	userRoles := &mockUserRoleRepo{}
	users := &mockUserRepo{users: map[string]user.User{
		"user-1": {ID: "user-1", Username: "jdoe", IsActive: true},
	}}

	return roleTestEnv{
		svc:       NewService(fakeDB{}, roles, perms, userRoles, users),
		roles:     roles,
		perms:     perms,
		userRoles: userRoles,
		users:     users,
	}
}

func TestRoleService_Create_Success(t *testing.T) {
	env := newRoleTestEnv()
	ctx := context.Background()

	created, err := env.svc.Create(ctx, role.CreateRoleRequest{
		Name:          "Team Lead",
		Description:   "approves leave for their team",
		PermissionIDs: []string{"perm-view", "perm-edit"},
	})

	require.NoError(t, err)
	assert.Equal(t, "Team Lead", created.Name)
	assert.False(t, created.IsSystem)
	assert.Equal(t, []string{"perm-view", "perm-edit"}, env.roles.permissions[created.ID])
}

func TestRoleService_Create_NameTaken(t *testing.T) {
	env := newRoleTestEnv()
	ctx := context.Background()

	_, err := env.svc.Create(ctx, role.CreateRoleRequest{Name: "Team Lead"})
	require.NoError(t, err)

	_, err = env.svc.Create(ctx, role.CreateRoleRequest{Name: "Team Lead"})
	assert.ErrorIs(t, err, role.ErrRoleNameTaken)
}

func TestRoleService_Create_UnknownPermission(t *testing.T) {
	env := newRoleTestEnv()

	_, err := env.svc.Create(context.Background(), role.CreateRoleRequest{
		Name:          "Team Lead",
		PermissionIDs: []string{"perm-view", "perm-bogus"},
	})
	assert.ErrorIs(t, err, role.ErrPermissionNotFound)
}

func TestRoleService_Update_SystemRole(t *testing.T) {
	env := newRoleTestEnv()
	ctx := context.Background()

	admin, err := env.roles.Create(ctx, role.Role{Name: "Admin", IsSystem: true})
	require.NoError(t, err)

	_, err = env.svc.Update(ctx, admin.ID, role.UpdateRoleRequest{Name: "Superadmin"})
	assert.ErrorIs(t, err, role.ErrSystemRoleImmutable)
}

func TestRoleService_Update_ReplacesPermissions(t *testing.T) {
	env := newRoleTestEnv()
	ctx := context.Background()

	created, err := env.svc.Create(ctx, role.CreateRoleRequest{
		Name:          "Team Lead",
		PermissionIDs: []string{"perm-view", "perm-edit"},
	})
	require.NoError(t, err)

	updated, err := env.svc.Update(ctx, created.ID, role.UpdateRoleRequest{
		Name:          "Team Lead",
		PermissionIDs: []string{"perm-view"},
	})

	require.NoError(t, err)
	assert.Equal(t, "Team Lead", updated.Name)
	assert.Equal(t, []string{"perm-view"}, env.roles.permissions[created.ID])
}

func TestRoleService_Delete_SystemRole(t *testing.T) {
	env := newRoleTestEnv()
	ctx := context.Background()

	admin, err := env.roles.Create(ctx, role.Role{Name: "Admin", IsSystem: true})
	require.NoError(t, err)

	err = env.svc.Delete(ctx, admin.ID)
	assert.ErrorIs(t, err, role.ErrSystemRoleImmutable)
}

func TestRoleService_Delete_RoleInUse(t *testing.T) {
	env := newRoleTestEnv()
	ctx := context.Background()

	created, err := env.svc.Create(ctx, role.CreateRoleRequest{Name: "Team Lead"})
	require.NoError(t, err)
	require.NoError(t, env.userRoles.Assign(ctx, "user-1", created.ID))

	err = env.svc.Delete(ctx, created.ID)
	assert.ErrorIs(t, err, role.ErrRoleInUse)
}

func TestRoleService_Delete_Success(t *testing.T) {
	env := newRoleTestEnv()
	ctx := context.Background()

	created, err := env.svc.Create(ctx, role.CreateRoleRequest{Name: "Team Lead"})
	require.NoError(t, err)

	require.NoError(t, env.svc.Delete(ctx, created.ID))

	_, err = env.roles.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, role.ErrRoleNotFound)
}

func TestRoleService_Assign_UnknownUser(t *testing.T) {
	env := newRoleTestEnv()
	ctx := context.Background()

	created, err := env.svc.Create(ctx, role.CreateRoleRequest{Name: "Team Lead"})
	require.NoError(t, err)

	err = env.svc.Assign(ctx, role.AssignRoleRequest{UserID: "ghost", RoleID: created.ID})
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestRoleService_Assign_Duplicate(t *testing.T) {
	env := newRoleTestEnv()
	ctx := context.Background()

	created, err := env.svc.Create(ctx, role.CreateRoleRequest{Name: "Team Lead"})
	require.NoError(t, err)

	req := role.AssignRoleRequest{UserID: "user-1", RoleID: created.ID}
	require.NoError(t, env.svc.Assign(ctx, req))

	err = env.svc.Assign(ctx, req)
	assert.ErrorIs(t, err, role.ErrRoleAlreadyAssigned)
}

func TestRoleService_Remove_LastRole(t *testing.T) {
	env := newRoleTestEnv()
	ctx := context.Background()

	created, err := env.svc.Create(ctx, role.CreateRoleRequest{Name: "Team Lead"})
	require.NoError(t, err)
	require.NoError(t, env.svc.Assign(ctx, role.AssignRoleRequest{UserID: "user-1", RoleID: created.ID}))

	err = env.svc.Remove(ctx, "user-1", created.ID)
	assert.ErrorIs(t, err, role.ErrLastRole)
}

func TestRoleService_Remove_Success(t *testing.T) {
	env := newRoleTestEnv()
	ctx := context.Background()

	first, err := env.svc.Create(ctx, role.CreateRoleRequest{Name: "Team Lead"})
	require.NoError(t, err)
	second, err := env.svc.Create(ctx, role.CreateRoleRequest{Name: "Auditor"})
	require.NoError(t, err)

	require.NoError(t, env.svc.Assign(ctx, role.AssignRoleRequest{UserID: "user-1", RoleID: first.ID}))
	require.NoError(t, env.svc.Assign(ctx, role.AssignRoleRequest{UserID: "user-1", RoleID: second.ID}))

	require.NoError(t, env.svc.Remove(ctx, "user-1", second.ID))

	count, err := env.userRoles.CountByUser(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestRoleService_Remove_NotAssigned(t *testing.T) {
	env := newRoleTestEnv()
	ctx := context.Background()

	created, err := env.svc.Create(ctx, role.CreateRoleRequest{Name: "Team Lead"})
	require.NoError(t, err)

	err = env.svc.Remove(ctx, "user-1", created.ID)
	assert.ErrorIs(t, err, role.ErrAssignmentNotFound)
}
