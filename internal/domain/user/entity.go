package user

import "time"

// User is the authentication principal. A user owns at most one employee
// record; role assignments beyond the primary role label live in user_roles.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	Role         string
	Email        string
	FirstName    string
	LastName     string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

const (
	RoleAdmin     = "Admin"
	RoleUser      = "User"
	RoleDeveloper = "Developer"
)

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
