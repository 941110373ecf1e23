package auth

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reestr-app/reestr-backend-go/internal/pkg/validator"
)

func TestRegisterRequest_Validate(t *testing.T) {
	cases := []struct {
		name    string
		request RegisterRequest
		fields  []string
	}{
		{
			name:    "valid",
			request: RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "password123"},
		},
		{
			name:    "missing name",
			request: RegisterRequest{Email: "alice@example.com", Password: "password123"},
			fields:  []string{"name"},
		},
		{
			name:    "invalid email",
			request: RegisterRequest{Name: "Alice", Email: "not-an-email", Password: "password123"},
			fields:  []string{"email"},
		},
		{
			name:    "short password",
			request: RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "short"},
			fields:  []string{"password"},
		},
		{
			name:    "everything missing",
			request: RegisterRequest{},
			fields:  []string{"name", "email", "password"},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.request.Validate()
			if len(c.fields) == 0 {
				assert.NoError(t, err)
				return
			}

			var errs validator.ValidationErrors
			require.ErrorAs(t, err, &errs)
			details := errs.ToMap()
			require.Len(t, details, len(c.fields))
			for _, field := range c.fields {
				assert.NotEmpty(t, details[field])
			}
		})
	}
}

func TestLoginRequest_Validate(t *testing.T) {
	valid := LoginRequest{Email: "alice@example.com", Password: "password123"}
	assert.NoError(t, valid.Validate())

	empty := LoginRequest{}
	var errs validator.ValidationErrors
	require.ErrorAs(t, empty.Validate(), &errs)
	details := errs.ToMap()
	assert.NotEmpty(t, details["email"])
	assert.NotEmpty(t, details["password"])
}

func TestTokenResponse_RefreshTokenNeverInBody(t *testing.T) {
	encoded, err := json.Marshal(TokenResponse{
		AccessToken:           "access",
		AccessTokenExpiresIn:  123,
		RefreshToken:          "refresh-secret",
		RefreshTokenExpiresIn: 456,
	})
	require.NoError(t, err)
	assert.NotContains(t, string(encoded), "refresh-secret")
	assert.Contains(t, string(encoded), `"access_token":"access"`)
}
