package middleware

import (
	"net/http"

	"github.com/UserHub/userhub-backend/internal/auth"
	"github.com/UserHub/userhub-backend/internal/utils"
)

func writeJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(`{"message":"` + message + `"}`))
}

// OptionalAuth verifies the token cookie when one is present and injects the
// requester into the context. A missing or invalid cookie is not an error —
// the request just continues as a guest.
func OptionalAuth(tokens *auth.TokenService, cookies auth.SessionCookies) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			value, ok := cookies.Read(r)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := tokens.Verify(value)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			requester := &auth.Requester{ID: claims.UserID, Role: claims.Role}
			ctx := utils.WithRequester(r.Context(), requester)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth rejects requests without a valid token cookie.
func RequireAuth(tokens *auth.TokenService, cookies auth.SessionCookies) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			value, ok := cookies.Read(r)
			if !ok {
				writeJSONError(w, http.StatusUnauthorized, "Authentication required")
				return
			}

			claims, err := tokens.Verify(value)
			if err != nil {
				writeJSONError(w, http.StatusUnauthorized, "Invalid or expired session")
				return
			}

			requester := &auth.Requester{ID: claims.UserID, Role: claims.Role}
			ctx := utils.WithRequester(r.Context(), requester)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CORSMiddleware echoes the origin back only if it is on the allow-list
// built at startup.
func CORSMiddleware(allowed map[string]struct{}) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			if _, ok := allowed[origin]; ok {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Vary", "Origin") // important for caches
				w.Header().Set("Access-Control-Allow-Credentials", "true")
				w.Header().Set("Access-Control-Allow-Methods",
					"GET, POST, PUT, PATCH, DELETE, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers",
					"Content-Type, Authorization")
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
