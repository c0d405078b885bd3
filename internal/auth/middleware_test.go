package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/redmonkez12/go-auth-api/internal/httputil"
	"github.com/redmonkez12/go-auth-api/internal/user"
)

func TestMiddleware_RequireAuth(t *testing.T) {
	tokens := NewJWTService([]byte("secret"))
	store := user.NewMemoryRepository()
	u, err := store.Create(context.Background(), user.CreateParams{Email: "a@b.com", PasswordHash: "h"})
	require.NoError(t, err)

	valid, err := tokens.CreateToken(u.ID, u.Email, time.Minute)
	require.NoError(t, err)
	expired, err := tokens.CreateToken(u.ID, u.Email, -time.Minute)
	require.NoError(t, err)
	orphan, err := tokens.CreateToken(uuid.New(), "gone@b.com", time.Minute)
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantCode   string
	}{
		{name: "valid", header: "Bearer " + valid, wantStatus: http.StatusOK},
		{name: "missing", header: "", wantStatus: http.StatusUnauthorized, wantCode: httputil.CodeMissingAuth},
		{name: "basic scheme", header: "Basic dXNlcjpwYXNz", wantStatus: http.StatusUnauthorized, wantCode: httputil.CodeInvalidAuthHeader},
		{name: "no token", header: "Bearer ", wantStatus: http.StatusUnauthorized, wantCode: httputil.CodeInvalidAuthHeader},
		{name: "lowercase scheme", header: "bearer " + valid, wantStatus: http.StatusUnauthorized, wantCode: httputil.CodeInvalidAuthHeader},
		{name: "garbled", header: "Bearer abc.def.ghi", wantStatus: http.StatusUnauthorized, wantCode: httputil.CodeInvalidToken},
		{name: "expired", header: "Bearer " + expired, wantStatus: http.StatusUnauthorized, wantCode: httputil.CodeTokenExpired},
		{name: "user gone", header: "Bearer " + orphan, wantStatus: http.StatusUnauthorized, wantCode: httputil.CodeUserNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen *user.User
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen, _ = user.FromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			r := httptest.NewRequest(http.MethodGet, "/user/me", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			NewMiddleware(tokens, store).RequireAuth(next).ServeHTTP(rec, r)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Nil(t, seen)
				assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
				return
			}
			require.NotNil(t, seen)
			assert.Equal(t, u.ID, seen.ID)
		})
	}
}

func TestMiddleware_RequireAuth_BadSubject(t *testing.T) {
	tokens := &MockTokenService{}
	tokens.On("VerifyToken", "tok").Return(&TokenClaims{UserID: "not-a-uuid"}, nil)

	r := httptest.NewRequest(http.MethodGet, "/user/me", nil)
	r.Header.Set("Authorization", "Bearer tok")
	rec := httptest.NewRecorder()

	NewMiddleware(tokens, &MockUserStore{}).RequireAuth(http.NotFoundHandler()).ServeHTTP(rec, r)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, httputil.CodeInvalidTokenUserID, decodeError(t, rec).Code)
}

func TestMiddleware_RequireAuth_StoreFailure(t *testing.T) {
	id := uuid.New()
	tokens := &MockTokenService{}
	tokens.On("VerifyToken", "tok").Return(&TokenClaims{UserID: id.String()}, nil)
	store := &MockUserStore{}
	store.On("GetByID", mock.Anything, id).Return(nil, errors.New("db down"))

	r := httptest.NewRequest(http.MethodGet, "/user/me", nil)
	r.Header.Set("Authorization", "Bearer tok")
	rec := httptest.NewRecorder()

	NewMiddleware(tokens, store).RequireAuth(http.NotFoundHandler()).ServeHTTP(rec, r)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, httputil.CodeInternalError, decodeError(t, rec).Code)
}
