// Package middleware provides the session and role guards mounted in
// front of protected route groups.
package middleware

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/wementor/mentor-directory-api/internal/apierror"
	"github.com/wementor/mentor-directory-api/internal/model"
	"github.com/wementor/mentor-directory-api/internal/usecase"
)

type contextKey string

const adminContextKey contextKey = "admin"

// LoginPath is where unauthenticated requests are sent.
const LoginPath = "/v1/auth/login"

// AdminFromContext returns the authenticated admin injected by RequireAuth.
func AdminFromContext(ctx context.Context) (*model.Admin, bool) {
	admin, ok := ctx.Value(adminContextKey).(*model.Admin)
	return admin, ok
}

// ContextWithAdmin injects an admin into the context. Exposed for tests.
func ContextWithAdmin(ctx context.Context, admin *model.Admin) context.Context {
	return context.WithValue(ctx, adminContextKey, admin)
}

// RequireAuth resolves the session cookie into an admin and injects it
// into the request context. Requests without a valid session are
// redirected to the login route.
func RequireAuth(authUsecase usecase.AuthUsecase, cookieName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(cookieName)
			if err != nil {
				http.Redirect(w, r, LoginPath, http.StatusFound)
				return
			}

			admin, err := authUsecase.SessionAdmin(r.Context(), cookie.Value)
			if err != nil {
				http.Redirect(w, r, LoginPath, http.StatusFound)
				return
			}

			next.ServeHTTP(w, r.WithContext(ContextWithAdmin(r.Context(), admin)))
		})
	}
}

// RequireSuperAdmin rejects authenticated admins without the super admin
// role. The role is re-read from the database so a revocation takes
// effect on the next request.
func RequireSuperAdmin(adminUsecase usecase.AdminUsecase, logger *zerolog.Logger, environment string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			admin, ok := AdminFromContext(r.Context())
			if !ok {
				http.Redirect(w, r, LoginPath, http.StatusFound)
				return
			}

			current, err := adminUsecase.GetAdminByEmail(r.Context(), admin.Email)
			if err != nil || !current.IsSuperAdmin {
				apierror.Write(w, logger, environment,
					apierror.Forbidden("not authorized, only super admins are allowed"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
