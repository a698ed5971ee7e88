package fixtures

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/workforcehq/hrm-backend-go/internal/domain/role"
	"github.com/workforcehq/hrm-backend-go/internal/domain/user"
	"github.com/workforcehq/hrm-backend-go/internal/pkg/database"
)

// Seed inserts the baseline reference data: system roles, the permission
// matrix, default leave and claim types, departments, settings and the
// bootstrap admin account. Every statement is idempotent so Seed can run on
// each startup.
func Seed(ctx context.Context, db *database.DB, adminPassword string) error {
	if err := seedRoles(ctx, db); err != nil {
		return fmt.Errorf("failed to seed roles: %w", err)
	}
	if err := seedPermissions(ctx, db); err != nil {
		return fmt.Errorf("failed to seed permissions: %w", err)
	}
	if err := seedRolePermissions(ctx, db); err != nil {
		return fmt.Errorf("failed to seed role permissions: %w", err)
	}
	if err := seedLeaveTypes(ctx, db); err != nil {
		return fmt.Errorf("failed to seed leave types: %w", err)
	}
	if err := seedClaimTypes(ctx, db); err != nil {
		return fmt.Errorf("failed to seed claim types: %w", err)
	}
	if err := seedDepartments(ctx, db); err != nil {
		return fmt.Errorf("failed to seed departments: %w", err)
	}
	if err := seedSettings(ctx, db); err != nil {
		return fmt.Errorf("failed to seed settings: %w", err)
	}
	if err := seedAdminUser(ctx, db, adminPassword); err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	slog.Info("Seed data applied")
	return nil
}

func seedRoles(ctx context.Context, db *database.DB) error {
	roles := []struct {
		name        string
		description string
		isDefault   bool
	}{
		{user.RoleAdmin, "Full access to every module", false},
		{user.RoleUser, "Standard employee access", true},
		{user.RoleDeveloper, "Technical access for integrations", false},
	}

	for _, r := range roles {
		_, err := db.Pool.Exec(ctx, `
			INSERT INTO roles (name, description, is_default, is_system)
			VALUES ($1, $2, $3, TRUE)
			ON CONFLICT (name) DO NOTHING`,
			r.name, r.description, r.isDefault)
		if err != nil {
			return err
		}
	}
	return nil
}

func seedPermissions(ctx context.Context, db *database.DB) error {
	modules := []string{
		role.ModuleDashboard,
		role.ModuleEmployee,
		role.ModuleLeave,
		role.ModuleClaim,
		role.ModuleAttendance,
		role.ModuleSettings,
	}
	actions := []string{
		role.ActionView,
		role.ActionCreate,
		role.ActionEdit,
		role.ActionDelete,
		role.ActionApprove,
	}

	for _, m := range modules {
		for _, a := range actions {
			_, err := db.Pool.Exec(ctx, `
				INSERT INTO permissions (name, description, module, action)
				VALUES ($1, $2, $3, $4)
				ON CONFLICT (module, action) DO NOTHING`,
				m+"."+a, fmt.Sprintf("%s access on the %s module", a, m), m, a)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func seedRolePermissions(ctx context.Context, db *database.DB) error {
	// Admin holds the full matrix.
	_, err := db.Pool.Exec(ctx, `
		INSERT INTO role_permissions (role_id, permission_id)
		SELECT r.id, p.id FROM roles r CROSS JOIN permissions p
		WHERE r.name = $1
		ON CONFLICT (role_id, permission_id) DO NOTHING`,
		user.RoleAdmin)
	if err != nil {
		return err
	}

	// Standard users see the shared modules and can file their own requests.
	// Leave and claim listings stay admin-only; employees reach their own
	// records through the /me routes.
	grants := []struct {
		module string
		action string
	}{
		{role.ModuleDashboard, role.ActionView},
		{role.ModuleEmployee, role.ActionView},
		{role.ModuleLeave, role.ActionCreate},
		{role.ModuleClaim, role.ActionCreate},
		{role.ModuleAttendance, role.ActionView},
		{role.ModuleAttendance, role.ActionCreate},
	}
	for _, g := range grants {
		_, err := db.Pool.Exec(ctx, `
			INSERT INTO role_permissions (role_id, permission_id)
			SELECT r.id, p.id FROM roles r JOIN permissions p ON p.module = $2 AND p.action = $3
			WHERE r.name = $1
			ON CONFLICT (role_id, permission_id) DO NOTHING`,
			user.RoleUser, g.module, g.action)
		if err != nil {
			return err
		}
	}
	return nil
}

func seedLeaveTypes(ctx context.Context, db *database.DB) error {
	types := []struct {
		name        string
		description string
		defaultDays int
	}{
		{"Annual Leave", "Paid yearly vacation allowance", 14},
		{"Sick Leave", "Paid leave for illness or medical care", 10},
		{"Maternity Leave", "Leave for childbirth and recovery", 90},
		{"Paternity Leave", "Leave for new fathers", 7},
		{"Unpaid Leave", "Leave without pay", 30},
	}

	for _, t := range types {
		_, err := db.Pool.Exec(ctx, `
			INSERT INTO leave_types (name, description, default_days, requires_approval)
			SELECT $1, $2, $3, TRUE
			WHERE NOT EXISTS (SELECT 1 FROM leave_types WHERE name = $1)`,
			t.name, t.description, t.defaultDays)
		if err != nil {
			return err
		}
	}
	return nil
}

func seedClaimTypes(ctx context.Context, db *database.DB) error {
	types := []struct {
		name            string
		description     string
		maximumAmount   float64
		requiresReceipt bool
	}{
		{"Travel", "Business travel and transportation", 2000, true},
		{"Meals", "Meals during business activities", 200, true},
		{"Office Supplies", "Equipment and supplies for work", 500, true},
		{"Training", "Courses, certifications and conferences", 3000, true},
		{"Other", "Miscellaneous work related expenses", 1000, false},
	}

	for _, t := range types {
		_, err := db.Pool.Exec(ctx, `
			INSERT INTO claim_types (name, description, maximum_amount, requires_receipt, requires_approval)
			SELECT $1, $2, $3, $4, TRUE
			WHERE NOT EXISTS (SELECT 1 FROM claim_types WHERE name = $1)`,
			t.name, t.description, t.maximumAmount, t.requiresReceipt)
		if err != nil {
			return err
		}
	}
	return nil
}

func seedDepartments(ctx context.Context, db *database.DB) error {
	departments := []struct {
		name        string
		description string
	}{
		{"Human Resources", "People operations and recruitment"},
		{"Information Technology", "Infrastructure and software"},
		{"Finance", "Accounting, payroll and budgeting"},
		{"Marketing", "Brand, campaigns and communications"},
		{"Operations", "Day to day business operations"},
	}

	for _, d := range departments {
		_, err := db.Pool.Exec(ctx, `
			INSERT INTO departments (name, description)
			SELECT $1, $2
			WHERE NOT EXISTS (SELECT 1 FROM departments WHERE name = $1)`,
			d.name, d.description)
		if err != nil {
			return err
		}
	}
	return nil
}

func seedSettings(ctx context.Context, db *database.DB) error {
	settings := []struct {
		key        string
		value      string
		settingTyp string
		category   string
		readOnly   bool
	}{
		{"CompanyName", "WorkforceHQ", "string", "General", false},
		{"WorkDayStart", "09:00", "string", "Attendance", false},
		{"WorkDayEnd", "17:00", "string", "Attendance", false},
		{"StandardWorkHours", "8", "integer", "Attendance", false},
		{"LeaveYearStart", "01-01", "string", "Leave", false},
		{"AllowNegativeBalance", "false", "boolean", "Leave", false},
		{"SystemVersion", "1.0.0", "string", "System", true},
	}

	for _, s := range settings {
		_, err := db.Pool.Exec(ctx, `
			INSERT INTO settings (key, value, type, category, is_read_only)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (key) DO NOTHING`,
			s.key, s.value, s.settingTyp, s.category, s.readOnly)
		if err != nil {
			return err
		}
	}
	return nil
}

func seedAdminUser(ctx context.Context, db *database.DB, password string) error {
	var exists bool
	err := db.Pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE LOWER(username) = 'admin')`).Scan(&exists)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = db.Pool.Exec(ctx, `
		INSERT INTO users (username, password_hash, role, email, first_name, last_name, is_active)
		VALUES ('admin', $1, $2, '', 'System', 'Administrator', TRUE)
		ON CONFLICT (username) DO NOTHING`,
		string(hash), user.RoleAdmin)
	if err != nil {
		return err
	}

	_, err = db.Pool.Exec(ctx, `
		INSERT INTO user_roles (user_id, role_id)
		SELECT u.id, r.id FROM users u JOIN roles r ON r.name = $1
		WHERE u.username = 'admin'
		ON CONFLICT (user_id, role_id) DO NOTHING`,
		user.RoleAdmin)
	if err != nil {
		return err
	}

	slog.Info("Bootstrap admin account ensured", "username", "admin")
	return nil
}
