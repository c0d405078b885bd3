package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redmonkez12/go-auth-api/internal/logging"
	"github.com/redmonkez12/go-auth-api/internal/user"
)

var (
	ErrCredentialsTaken     = errors.New("credentials taken")
	ErrCredentialsIncorrect = errors.New("credentials incorrect")
)

// AuthTokens is returned by successful signup and signin.
type AuthTokens struct {
	AccessToken string `json:"access_token"`
}

// SignUpInput carries a new account's credentials and optional names.
type SignUpInput struct {
	Email     string
	Password  string
	FirstName *string
	LastName  *string
}

// Service handles authentication business logic
type Service struct {
	users               UserStore
	hasher              PasswordHasher
	tokens              TokenService
	logger              *logging.Logger
	accessTokenDuration time.Duration
}

func NewService(
	users UserStore,
	hasher PasswordHasher,
	tokens TokenService,
	logger *logging.Logger,
	accessTokenDuration time.Duration,
) *Service {
	return &Service{
		users:               users,
		hasher:              hasher,
		tokens:              tokens,
		logger:              logger,
		accessTokenDuration: accessTokenDuration,
	}
}

// SignUp creates a user and returns an access token for it.
// A taken email yields ErrCredentialsTaken; other store errors are returned wrapped.
func (s *Service) SignUp(ctx context.Context, in SignUpInput) (*AuthTokens, error) {
	passwordHash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	newUser, err := s.users.Create(ctx, user.CreateParams{
		Email:        in.Email,
		PasswordHash: passwordHash,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
	})
	if err != nil {
		if errors.Is(err, user.ErrDuplicateEmail) {
			return nil, ErrCredentialsTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("user signed up", "user_id", newUser.ID)

	return s.issueTokens(newUser)
}

// SignIn checks email and password and returns an access token.
// An unknown email and a wrong password both yield ErrCredentialsIncorrect.
func (s *Service) SignIn(ctx context.Context, email, password string) (*AuthTokens, error) {
	existingUser, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, ErrCredentialsIncorrect
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	ok, err := s.hasher.Verify(existingUser.PasswordHash, password)
	if err != nil {
		return nil, fmt.Errorf("failed to verify password for user %s: %w", existingUser.ID, err)
	}
	if !ok {
		return nil, ErrCredentialsIncorrect
	}

	return s.issueTokens(existingUser)
}

func (s *Service) issueTokens(u *user.User) (*AuthTokens, error) {
	accessToken, err := s.tokens.CreateToken(u.ID, u.Email, s.accessTokenDuration)
	if err != nil {
		return nil, fmt.Errorf("failed to create access token: %w", err)
	}

	return &AuthTokens{AccessToken: accessToken}, nil
}
