package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/workforcehq/hrm-backend-go/internal/domain/identity"
	"github.com/workforcehq/hrm-backend-go/internal/domain/role"
	"github.com/workforcehq/hrm-backend-go/internal/handler/http/response"
)

// RequirePermission checks the caller's roles for a (module, action) grant.
// Admins bypass the lookup.
func RequirePermission(permissions role.PermissionRepository, module, action string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cu, err := identity.FromContext(r.Context())
			if err != nil {
				response.HandleError(w, err)
				return
			}

			if cu.IsAdmin {
				next.ServeHTTP(w, r)
				return
			}

			allowed, err := permissions.HasPermission(r.Context(), cu.UserID, module, action)
			if err != nil {
				slog.Error("permission check failed", "error", err, "user_id", cu.UserID)
				response.InternalServerError(w, "An unexpected error occurred")
				return
			}
			if !allowed {
				response.Forbidden(w, fmt.Sprintf("Insufficient permissions: required '%s:%s'", module, action))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
