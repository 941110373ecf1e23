package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/reestr-app/reestr-backend-go/internal/handler/http/response"
)

// AuthRequired rejects requests without a valid access token. The external
// identity of the caller is whatever the verified token says it is; handlers
// read it from the request context.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())

			if err != nil || token == nil {
				response.Unauthorized(w, "Unauthenticated")
				return
			}

			claims, err := token.AsMap(r.Context())
			if err != nil {
				response.Unauthorized(w, "Unauthenticated")
				return
			}
			tokenType, ok := claims["type"].(string)
			if !ok || tokenType != "access" {
				response.Unauthorized(w, "Unauthenticated")
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}
