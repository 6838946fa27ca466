package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/sitebook/sitebook-backend/internal/domain/auth"
	"github.com/sitebook/sitebook-backend/internal/handler/http/response"
	"github.com/sitebook/sitebook-backend/internal/pkg/jwt"
)

// AuthRequired rejects requests without a valid access token and stores the
// token's principal in the request context. It must run after jwtauth.Verifier.
func AuthRequired(next http.Handler) http.Handler {
	hfn := func(w http.ResponseWriter, r *http.Request) {
		token, claims, err := jwtauth.FromContext(r.Context())
		if err != nil || token == nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		tokenType, ok := claims[jwt.ClaimType].(string)
		if !ok || tokenType != jwt.TokenTypeAccess {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		userID, _ := claims[jwt.ClaimUserID].(string)
		if userID == "" {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}
		email, _ := claims[jwt.ClaimEmail].(string)

		ctx := auth.WithPrincipal(r.Context(), auth.Principal{UserID: userID, Email: email})
		next.ServeHTTP(w, r.WithContext(ctx))
	}
	return http.HandlerFunc(hfn)
}
