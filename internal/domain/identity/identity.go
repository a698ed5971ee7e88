package identity

import (
	"context"
	"errors"
)

var (
	ErrNoIdentity       = errors.New("no authenticated identity in request")
	ErrNoEmployeeRecord = errors.New("employee record not found for this user")
	ErrNotResourceOwner = errors.New("caller does not own this resource")
)

// CurrentUser is the per-request identity resolved from the bearer token.
// It is placed into the request context by the identity middleware and never
// shared across requests.
type CurrentUser struct {
	UserID     string
	Username   string
	EmployeeID *string
	Role       string
	IsAdmin    bool
}

// RequireEmployee returns the employee id or fails when the caller has no
// employee profile yet.
func (c CurrentUser) RequireEmployee() (string, error) {
	if c.EmployeeID == nil || *c.EmployeeID == "" {
		return "", ErrNoEmployeeRecord
	}
	return *c.EmployeeID, nil
}

type contextKey struct{}

func WithCurrentUser(ctx context.Context, cu CurrentUser) context.Context {
	return context.WithValue(ctx, contextKey{}, cu)
}

func FromContext(ctx context.Context) (CurrentUser, error) {
	cu, ok := ctx.Value(contextKey{}).(CurrentUser)
	if !ok {
		return CurrentUser{}, ErrNoIdentity
	}
	return cu, nil
}
