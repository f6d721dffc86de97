package admin

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	dErrors "companyatlas/pkg/domain-errors"
	"companyatlas/pkg/platform/httputil"
	"companyatlas/pkg/requestcontext"
)

// TokenHeader carries the shared admin token.
const TokenHeader = "X-Admin-Token"

// ActorHeader optionally names the operator for logs.
const ActorHeader = "X-Admin-Actor"

// RequireAdminToken rejects requests whose X-Admin-Token does not match
// expectedToken. An empty expectedToken rejects everything.
func RequireAdminToken(expectedToken string, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get(TokenHeader)
			// Use constant-time comparison to prevent timing attacks
			if expectedToken == "" || subtle.ConstantTimeCompare([]byte(token), []byte(expectedToken)) != 1 {
				ctx := r.Context()
				logger.WarnContext(ctx, "admin token mismatch",
					"request_id", requestcontext.RequestID(ctx),
					"path", r.URL.Path,
				)
				httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "admin token required"))
				return
			}

			actor := r.Header.Get(ActorHeader)
			if actor == "" {
				actor = "admin"
			}
			next.ServeHTTP(w, r.WithContext(requestcontext.WithAdminActor(r.Context(), actor)))
		})
	}
}
