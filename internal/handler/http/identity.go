package http

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/reestr-app/reestr-backend-go/internal/domain/auth"
)

// currentUserID resolves the authenticated user's id from the verified JWT in
// the request context. Numeric claims come back as float64 after JSON
// round-tripping.
func currentUserID(r *http.Request) (int64, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return 0, auth.ErrInvalidToken
	}
	switch v := claims["user_id"].(type) {
	case float64:
		return int64(v), nil
	case int64:
		return v, nil
	default:
		return 0, auth.ErrInvalidToken
	}
}
