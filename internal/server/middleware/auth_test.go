package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeValidator accepts a single known token.
type fakeValidator struct {
	token  string
	userID string
}

type fakeClaims struct{ userID string }

func (c *fakeClaims) GetUserID() string { return c.userID }

func (v *fakeValidator) ValidateToken(tokenString string) (UserIDGetter, error) {
	if tokenString != v.token {
		return nil, errors.New("invalid token")
	}
	return &fakeClaims{userID: v.userID}, nil
}

func newProtectedHandler(t *testing.T, validator TokenValidator) http.Handler {
	t.Helper()
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := GetUserID(r)
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(userID))
	})
	return AuthMiddleware(validator)(inner)
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	handler := newProtectedHandler(t, &fakeValidator{token: "good-token", userID: "user-42"})

	req := httptest.NewRequest("GET", "/interviews", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-42", rec.Body.String())
}

func TestAuthMiddleware_CaseInsensitiveBearer(t *testing.T) {
	handler := newProtectedHandler(t, &fakeValidator{token: "good-token", userID: "user-42"})

	req := httptest.NewRequest("GET", "/interviews", nil)
	req.Header.Set("Authorization", "bearer good-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	handler := newProtectedHandler(t, &fakeValidator{token: "good-token"})

	req := httptest.NewRequest("GET", "/interviews", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	handler := newProtectedHandler(t, &fakeValidator{token: "good-token"})

	for _, header := range []string{"good-token", "Basic good-token", "Bearer", "Bearer a b"} {
		req := httptest.NewRequest("GET", "/interviews", nil)
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	handler := newProtectedHandler(t, &fakeValidator{token: "good-token"})

	req := httptest.NewRequest("GET", "/interviews", nil)
	req.Header.Set("Authorization", "Bearer wrong-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_NilValidatorPassesThrough(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := AuthMiddleware(nil)(inner)

	req := httptest.NewRequest("GET", "/interviews", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetUserID_NotSet(t *testing.T) {
	req := httptest.NewRequest("GET", "/interviews", nil)
	_, err := GetUserID(req)
	assert.Error(t, err)
}

func TestGetUserID_Set(t *testing.T) {
	req := httptest.NewRequest("GET", "/interviews", nil)
	ctx := context.WithValue(req.Context(), UserIDKey(), "user-7")
	userID, err := GetUserID(req.WithContext(ctx))
	require.NoError(t, err)
	assert.Equal(t, "user-7", userID)
}
