package middleware

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"plotdesk/pkg/requestcontext"
)

// RequireAdminToken guards back-office routes with the X-Admin-Token header.
// When a bcrypt hash is configured the presented token is verified against
// it; otherwise the plaintext token is compared constant-time to avoid a
// timing oracle.
func RequireAdminToken(expectedToken, expectedHash string, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get("X-Admin-Token")
			if !adminTokenValid(token, expectedToken, expectedHash) {
				ctx := r.Context()
				logger.WarnContext(ctx, "admin token mismatch",
					"request_id", requestcontext.RequestID(ctx),
				)
				w.WriteHeader(http.StatusForbidden)
				_, _ = w.Write([]byte(`{"error":"forbidden","error_description":"admin token required"}`))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func adminTokenValid(token, expectedToken, expectedHash string) bool {
	if token == "" {
		return false
	}
	if expectedHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(expectedHash), []byte(token)) == nil
	}
	if expectedToken == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(token), []byte(expectedToken)) == 1
}
