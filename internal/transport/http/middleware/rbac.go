package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/oleeahmmed/UniworldHrm/internal/domain/auth"
	"github.com/oleeahmmed/UniworldHrm/internal/transport/http/api"
)

type PermissionStore interface {
	HasPermission(ctx context.Context, roleID, permission string) (bool, error)
}

// PrincipalHandler is a handler that has already been authorised.
type PrincipalHandler func(w http.ResponseWriter, r *http.Request, p auth.Principal)

// Require answers 401 without a principal and 403 when its role lacks the
// capability; otherwise it hands the principal to fn.
func Require(store PermissionStore, capability string, fn PrincipalHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := GetUser(r.Context())
		if !ok {
			api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", GetRequestID(r.Context()))
			return
		}

		allowed, err := store.HasPermission(r.Context(), user.RoleID, capability)
		if err != nil {
			slog.Error("permission check failed", "err", err, "capability", capability, "user_id", user.UserID)
			api.Fail(w, http.StatusInternalServerError, "permission_error", "permission check failed", GetRequestID(r.Context()))
			return
		}
		if !allowed {
			api.Fail(w, http.StatusForbidden, "forbidden", "insufficient permissions", GetRequestID(r.Context()))
			return
		}

		fn(w, r, user)
	}
}

func RequirePermission(permission string, store PermissionStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return Require(store, permission, func(w http.ResponseWriter, r *http.Request, _ auth.Principal) {
			next.ServeHTTP(w, r)
		})
	}
}
