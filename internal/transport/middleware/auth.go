package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/heartmarshall/meetroom-backend/internal/service/auth"
	"github.com/heartmarshall/meetroom-backend/pkg/ctxutil"
)

//go:generate moq -out token_validator_mock_test.go -pkg middleware . tokenValidator

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (auth.Identity, error)
}

// Auth resolves a bearer token into the request identity. Requests without
// a token pass through anonymously; the services reject them where an
// identity is required. A present but invalid token is answered with 401.
func Auth(validator tokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r) // Anonymous
				return
			}
			id, err := validator.ValidateToken(r.Context(), token)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "unauthorized")
				return
			}
			if h := identityHolderFromCtx(r.Context()); h != nil {
				h.set, h.userID, h.companyID = true, id.UserID.String(), id.CompanyID.String()
			}
			ctx := ctxutil.WithIdentity(r.Context(), id.UserID, id.CompanyID, id.Role.String())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
