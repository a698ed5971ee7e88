package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/workforcehq/hrm-backend-go/internal/domain/auth"
	"github.com/workforcehq/hrm-backend-go/internal/domain/employee"
	"github.com/workforcehq/hrm-backend-go/internal/domain/identity"
	"github.com/workforcehq/hrm-backend-go/internal/handler/http/response"
)

// EmployeeResolver looks up the employee record backing a user account.
type EmployeeResolver interface {
	GetByUserID(ctx context.Context, userID string) (employee.Employee, error)
}

// ResolveIdentity copies the token claims into a per-request CurrentUser so
// handlers and services never touch raw JWT claims. Tokens minted before the
// caller created an employee profile carry no employee_id claim, so the
// middleware falls back to the store rather than forcing a re-login.
func ResolveIdentity(employees EmployeeResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			userID, ok := claims["user_id"].(string)
			if !ok || userID == "" {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			cu := identity.CurrentUser{UserID: userID}
			if username, ok := claims["username"].(string); ok {
				cu.Username = username
			}
			if role, ok := claims["role"].(string); ok {
				cu.Role = role
			}
			if admin, ok := claims["is_admin"].(bool); ok {
				cu.IsAdmin = admin
			}
			if employeeID, ok := claims["employee_id"].(string); ok && employeeID != "" {
				cu.EmployeeID = &employeeID
			}

			if cu.EmployeeID == nil {
				emp, err := employees.GetByUserID(r.Context(), userID)
				switch {
				case err == nil:
					cu.EmployeeID = &emp.ID
				case errors.Is(err, employee.ErrEmployeeNotFound):
					// No profile yet; RequireEmployee rejects downstream.
				default:
					response.HandleError(w, err)
					return
				}
			}

			ctx := identity.WithCurrentUser(r.Context(), cu)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
