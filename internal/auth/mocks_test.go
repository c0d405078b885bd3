package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/redmonkez12/go-auth-api/internal/user"
)

// MockUserStore mocks the UserStore interface
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) Create(ctx context.Context, params user.CreateParams) (*user.User, error) {
	args := m.Called(ctx, params)
	u, _ := args.Get(0).(*user.User)
	return u, args.Error(1)
}

func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*user.User)
	return u, args.Error(1)
}

func (m *MockUserStore) GetByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*user.User)
	return u, args.Error(1)
}

// MockTokenService mocks the TokenService interface
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) CreateToken(userID uuid.UUID, email string, duration time.Duration) (string, error) {
	args := m.Called(userID, email, duration)
	return args.String(0), args.Error(1)
}

func (m *MockTokenService) VerifyToken(tokenStr string) (*TokenClaims, error) {
	args := m.Called(tokenStr)
	c, _ := args.Get(0).(*TokenClaims)
	return c, args.Error(1)
}

// MockAuthenticator mocks the Authenticator interface
type MockAuthenticator struct {
	mock.Mock
}

func (m *MockAuthenticator) SignUp(ctx context.Context, in SignUpInput) (*AuthTokens, error) {
	args := m.Called(ctx, in)
	t, _ := args.Get(0).(*AuthTokens)
	return t, args.Error(1)
}

func (m *MockAuthenticator) SignIn(ctx context.Context, email, password string) (*AuthTokens, error) {
	args := m.Called(ctx, email, password)
	t, _ := args.Get(0).(*AuthTokens)
	return t, args.Error(1)
}

// fastHasher keeps argon2 cheap in tests.
func fastHasher() *Argon2Hasher {
	return NewArgon2Hasher(WithArgon2Time(1), WithArgon2Memory(1024), WithArgon2Threads(1))
}
