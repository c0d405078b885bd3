package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/redmonkez12/go-auth-api/internal/logging"
	"github.com/redmonkez12/go-auth-api/internal/user"
)

const testTTL = 15 * time.Minute

func newTestService(store UserStore, tokens TokenService) *Service {
	return NewService(store, fastHasher(), tokens, logging.NewDiscardLogger(), testTTL)
}

func TestService_SignUp(t *testing.T) {
	ctx := context.Background()
	first := "Roger"
	created := &user.User{ID: uuid.New(), Email: "a@b.com"}

	store := &MockUserStore{}
	tokens := &MockTokenService{}
	store.On("Create", ctx, mock.MatchedBy(func(p user.CreateParams) bool {
		return p.Email == "a@b.com" &&
			p.PasswordHash != "pw12345" &&
			p.FirstName != nil && *p.FirstName == "Roger" &&
			p.LastName == nil
	})).Return(created, nil).Once()
	tokens.On("CreateToken", created.ID, "a@b.com", testTTL).Return("signed-token", nil).Once()

	svc := newTestService(store, tokens)
	got, err := svc.SignUp(ctx, SignUpInput{Email: "a@b.com", Password: "pw12345", FirstName: &first})

	require.NoError(t, err)
	assert.Equal(t, "signed-token", got.AccessToken)
	store.AssertExpectations(t)
	tokens.AssertExpectations(t)
}

func TestService_SignUp_StoresVerifiableHash(t *testing.T) {
	store := user.NewMemoryRepository()
	svc := newTestService(store, NewJWTService([]byte("secret")))

	_, err := svc.SignUp(context.Background(), SignUpInput{Email: "a@b.com", Password: "pw12345"})
	require.NoError(t, err)

	u, err := store.GetByEmail(context.Background(), "a@b.com")
	require.NoError(t, err)
	ok, err := fastHasher().Verify(u.PasswordHash, "pw12345")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestService_SignUp_CredentialsTaken(t *testing.T) {
	ctx := context.Background()
	store := &MockUserStore{}
	tokens := &MockTokenService{}
	store.On("Create", ctx, mock.Anything).Return(nil, user.ErrDuplicateEmail).Once()

	svc := newTestService(store, tokens)
	got, err := svc.SignUp(ctx, SignUpInput{Email: "a@b.com", Password: "pw12345"})

	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrCredentialsTaken)
	tokens.AssertNotCalled(t, "CreateToken", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_SignUp_StoreFailure(t *testing.T) {
	ctx := context.Background()
	dbErr := errors.New("connection reset")
	store := &MockUserStore{}
	tokens := &MockTokenService{}
	store.On("Create", ctx, mock.Anything).Return(nil, dbErr).Once()

	svc := newTestService(store, tokens)
	_, err := svc.SignUp(ctx, SignUpInput{Email: "a@b.com", Password: "pw12345"})

	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, ErrCredentialsTaken)
	tokens.AssertNotCalled(t, "CreateToken", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_SignUp_MissingSecret(t *testing.T) {
	svc := newTestService(user.NewMemoryRepository(), NewJWTService(nil))

	_, err := svc.SignUp(context.Background(), SignUpInput{Email: "a@b.com", Password: "pw12345"})

	assert.ErrorIs(t, err, ErrMissingSecret)
}

func TestService_SignIn(t *testing.T) {
	ctx := context.Background()
	hash, err := fastHasher().Hash("pw12345")
	require.NoError(t, err)
	existing := &user.User{ID: uuid.New(), Email: "a@b.com", PasswordHash: hash}

	tests := []struct {
		name     string
		password string
		found    *user.User
		findErr  error
		wantErr  error
		wantSign bool
	}{
		{name: "correct password", password: "pw12345", found: existing, wantSign: true},
		{name: "wrong password", password: "wrong", found: existing, wantErr: ErrCredentialsIncorrect},
		{name: "unknown email", password: "pw12345", findErr: user.ErrNotFound, wantErr: ErrCredentialsIncorrect},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &MockUserStore{}
			tokens := &MockTokenService{}
			store.On("GetByEmail", ctx, "a@b.com").Return(tt.found, tt.findErr).Once()
			if tt.wantSign {
				tokens.On("CreateToken", existing.ID, "a@b.com", testTTL).Return("signed-token", nil).Once()
			}

			got, err := newTestService(store, tokens).SignIn(ctx, "a@b.com", tt.password)

			if tt.wantErr != nil {
				assert.Nil(t, got)
				assert.ErrorIs(t, err, tt.wantErr)
				tokens.AssertNotCalled(t, "CreateToken", mock.Anything, mock.Anything, mock.Anything)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "signed-token", got.AccessToken)
			}
			store.AssertNumberOfCalls(t, "GetByEmail", 1)
			tokens.AssertExpectations(t)
		})
	}
}

func TestService_SignIn_MalformedStoredHash(t *testing.T) {
	ctx := context.Background()
	store := &MockUserStore{}
	tokens := &MockTokenService{}
	store.On("GetByEmail", ctx, "a@b.com").
		Return(&user.User{ID: uuid.New(), Email: "a@b.com", PasswordHash: "not-a-hash"}, nil).Once()

	_, err := newTestService(store, tokens).SignIn(ctx, "a@b.com", "pw12345")

	assert.ErrorIs(t, err, ErrMalformedHash)
	assert.NotErrorIs(t, err, ErrCredentialsIncorrect)
	tokens.AssertNotCalled(t, "CreateToken", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_SignUpThenSignIn(t *testing.T) {
	ctx := context.Background()
	tokens := NewJWTService([]byte("secret"))
	svc := newTestService(user.NewMemoryRepository(), tokens)

	signedUp, err := svc.SignUp(ctx, SignUpInput{Email: "a@b.com", Password: "pw12345"})
	require.NoError(t, err)
	signedIn, err := svc.SignIn(ctx, "a@b.com", "pw12345")
	require.NoError(t, err)

	for _, tok := range []string{signedUp.AccessToken, signedIn.AccessToken} {
		claims, err := tokens.VerifyToken(tok)
		require.NoError(t, err)
		assert.Equal(t, "a@b.com", claims.Email)
	}

	_, err = svc.SignUp(ctx, SignUpInput{Email: "a@b.com", Password: "other"})
	assert.ErrorIs(t, err, ErrCredentialsTaken)
}
