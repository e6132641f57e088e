package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSignAndVerifyJWT(t *testing.T) {
	secret := "test-secret"
	claims := TokenClaims{
		Sub:      "user-123",
		Role:     "admin",
		Exp:      time.Now().Add(time.Hour).Unix(),
		Issuer:   "tester",
		Audience: "clients",
	}
	token, err := SignJWT(secret, claims)
	require.NoError(t, err)

	parsed, err := VerifyJWT(secret, token)
	require.NoError(t, err)
	require.Equal(t, claims.Sub, parsed.Sub)
	require.Equal(t, claims.Role, parsed.Role)
}

func TestVerifyJWTInvalidSignature(t *testing.T) {
	token, err := SignJWT("secret-a", TokenClaims{Sub: "user-123", Exp: time.Now().Add(time.Hour).Unix()})
	require.NoError(t, err)

	_, err = VerifyJWT("secret-b", token)
	require.Error(t, err)
}

func TestVerifyJWTExpired(t *testing.T) {
	token, err := SignJWT("secret", TokenClaims{Sub: "user-123", Exp: time.Now().Add(-time.Minute).Unix()})
	require.NoError(t, err)

	_, err = VerifyJWT("secret", token)
	require.Error(t, err)
}

func TestRequireAuthStatusCodes(t *testing.T) {
	secret := "secret"
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := RequireAuth(secret)(ok)

	tests := []struct {
		name  string
		token string
		want  int
	}{
		{name: "missing token", token: "", want: http.StatusUnauthorized},
		{name: "garbage token", token: "not.a.jwt", want: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/donations/my-history", nil)
			if tt.token != "" {
				req.Header.Set(AuthHeader, tt.token)
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)
			require.Equal(t, tt.want, rr.Code)
		})
	}

	expired, err := SignJWT(secret, TokenClaims{Sub: "u1", Exp: time.Now().Add(-time.Minute).Unix()})
	require.NoError(t, err)
	req := httptest.NewRequest("GET", "/donations/my-history", nil)
	req.Header.Set(AuthHeader, expired)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRequireAuthAttachesIdentity(t *testing.T) {
	secret := "secret"
	var gotUser, gotRole string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser = UserIDFromContext(r.Context())
		gotRole = RoleFromContext(r.Context())
	})
	token, err := SignJWT(secret, TokenClaims{Sub: "user-42", Role: "user", Exp: time.Now().Add(time.Hour).Unix()})
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/donations/my-history", nil)
	req.Header.Set(AuthHeader, token)
	RequireAuth(secret)(inner).ServeHTTP(httptest.NewRecorder(), req)

	require.Equal(t, "user-42", gotUser)
	require.Equal(t, "user", gotRole)
}

func TestRequireRoleForbidsMismatch(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := RequireRole("admin")(ok)

	req := httptest.NewRequest("GET", "/admin/stats", nil)
	req = req.WithContext(ContextWithIdentity(req.Context(), "user-1", "user"))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	require.Equal(t, http.StatusForbidden, rr.Code)

	req = httptest.NewRequest("GET", "/admin/stats", nil)
	req = req.WithContext(ContextWithIdentity(req.Context(), "admin-1", "admin"))
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)
}
