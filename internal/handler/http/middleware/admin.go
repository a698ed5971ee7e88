package middleware

import (
	"net/http"

	"github.com/workforcehq/hrm-backend-go/internal/domain/identity"
	"github.com/workforcehq/hrm-backend-go/internal/domain/user"
	"github.com/workforcehq/hrm-backend-go/internal/handler/http/response"
)

// AdminOnly guards a route group behind the admin flag of the resolved
// identity. Must run after ResolveIdentity.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cu, err := identity.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, err)
			return
		}
		if !cu.IsAdmin {
			response.HandleError(w, user.ErrAdminPrivilegeRequired)
			return
		}
		next.ServeHTTP(w, r)
	})
}
