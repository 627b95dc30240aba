package router

import (
	"log/slog"
	"net/http"

	"github.com/casbin/casbin/v3"
	"github.com/rakasatria/eventum/internal/pkg/jwt"
)

func middlewareAuthorization(enforcer *casbin.Enforcer, publicEndpoints map[string]map[string]struct{}) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if enforcer == nil || isPublicEndpoint(r, publicEndpoints) {
				next.ServeHTTP(w, r)
				return
			}

			claims := jwt.GetAuth(r.Context())
			if claims == nil {
				writeJSON(w, errorResponse{Message: "Authentication required"}, http.StatusUnauthorized)
				return
			}

			allowed, err := enforcer.Enforce(claims.Role, matchedRoutePath(r), r.Method)
			if err != nil {
				slog.ErrorContext(r.Context(), "authorization check failed", "error", err)
				writeJSON(w, errorResponse{Message: "Internal server error"}, http.StatusInternalServerError)
				return
			}
			if !allowed {
				writeJSON(w, errorResponse{Message: "You are not allowed to perform this action"}, http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
