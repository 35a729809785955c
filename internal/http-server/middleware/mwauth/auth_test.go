package mwauth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"saharaweb/internal/lib/logger/handlers/slogdiscard"
	"saharaweb/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var secret = []byte("test-secret")

func sign(t *testing.T, method jwt.SigningMethod, key interface{}, claims Claims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)

	return token
}

func validClaims() Claims {
	return Claims{
		Namespace: "UTS",
		Name:      "mdiponio",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "sahara-auth",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}

func TestAuthMiddleware(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name           string
		header         func(t *testing.T) string
		expectedStatus int
	}{
		{
			name: "Valid token",
			header: func(t *testing.T) string {
				return "Bearer " + sign(t, jwt.SigningMethodHS256, secret, validClaims())
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Missing header",
			header:         func(t *testing.T) string { return "" },
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "Wrong scheme",
			header: func(t *testing.T) string {
				return "Basic " + sign(t, jwt.SigningMethodHS256, secret, validClaims())
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "Wrong secret",
			header: func(t *testing.T) string {
				return "Bearer " + sign(t, jwt.SigningMethodHS256, []byte("other"), validClaims())
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "Unexpected signing method",
			header: func(t *testing.T) string {
				return "Bearer " + sign(t, jwt.SigningMethodHS512, secret, validClaims())
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "Expired token",
			header: func(t *testing.T) string {
				c := validClaims()
				c.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
				return "Bearer " + sign(t, jwt.SigningMethodHS256, secret, c)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "No expiry",
			header: func(t *testing.T) string {
				c := validClaims()
				c.ExpiresAt = nil
				return "Bearer " + sign(t, jwt.SigningMethodHS256, secret, c)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "Wrong issuer",
			header: func(t *testing.T) string {
				c := validClaims()
				c.Issuer = "someone-else"
				return "Bearer " + sign(t, jwt.SigningMethodHS256, secret, c)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "Missing identity",
			header: func(t *testing.T) string {
				c := validClaims()
				c.Namespace = ""
				return "Bearer " + sign(t, jwt.SigningMethodHS256, secret, c)
			},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var got models.Identity
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				identity, ok := IdentityFrom(r.Context())
				require.True(t, ok)
				got = identity
				w.WriteHeader(http.StatusOK)
			})

			handler := New(slogdiscard.NewDiscardLogger(), secret, "sahara-auth")(next)

			req := httptest.NewRequest(http.MethodGet, "/bookings/existing", nil)
			if h := tc.header(t); h != "" {
				req.Header.Set("Authorization", h)
			}
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.expectedStatus == http.StatusOK {
				assert.Equal(t, models.Identity{Namespace: "UTS", Name: "mdiponio"}, got)
			} else {
				assert.JSONEq(t, `{"status":"Error","error":"unauthorized"}`, rr.Body.String())
			}
		})
	}
}

func TestIdentityFromEmptyContext(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)

	_, ok := IdentityFrom(req.Context())
	assert.False(t, ok)
}
