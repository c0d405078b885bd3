package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/redmonkez12/go-auth-api/internal/httputil"
	"github.com/redmonkez12/go-auth-api/internal/logging"
	"github.com/redmonkez12/go-auth-api/internal/validation"
)

// Authenticator is the service behavior the HTTP handlers depend on.
type Authenticator interface {
	SignUp(ctx context.Context, in SignUpInput) (*AuthTokens, error)
	SignIn(ctx context.Context, email, password string) (*AuthTokens, error)
}

// Handler contains HTTP handlers for authentication endpoints
type Handler struct {
	service Authenticator
}

func NewHandler(service Authenticator) *Handler {
	return &Handler{service: service}
}

// SignUpRequest represents the signup request body
type SignUpRequest struct {
	Email     string  `json:"email" validate:"required,email"`
	Password  string  `json:"password" validate:"required"`
	FirstName *string `json:"firstName,omitempty" validate:"omitempty"`
	LastName  *string `json:"lastName,omitempty" validate:"omitempty"`
}

// SignInRequest represents the signin request body
type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SignUp handles account creation
// @Summary      Sign up
// @Description  Create an account and receive an access token. Unknown body fields are rejected.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body SignUpRequest true "Signup credentials"
// @Success      201 {object} AuthTokens
// @Failure      400 {object} httputil.ErrorResponse "Invalid request or validation error"
// @Failure      403 {object} httputil.ErrorResponse "Credentials taken"
// @Failure      500 {object} httputil.ErrorResponse "Internal server error"
// @Router       /auth/signup [post]
func (h *Handler) SignUp(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	var req SignUpRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	tokens, err := h.service.SignUp(r.Context(), SignUpInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		if errors.Is(err, ErrCredentialsTaken) {
			logger.Warn("signup failed: credentials taken")
			httputil.RespondErrorWithCode(w, "Credentials taken", httputil.CodeCredentialsTaken, http.StatusForbidden)
			return
		}
		logger.Error("signup failed: internal error", "error", err.Error())
		httputil.RespondErrorWithCode(w, "internal server error", httputil.CodeInternalError, http.StatusInternalServerError)
		return
	}

	httputil.RespondJSON(w, tokens, http.StatusCreated)
}

// SignIn handles login
// @Summary      Sign in
// @Description  Authenticate with email and password and receive an access token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body SignInRequest true "Signin credentials"
// @Success      200 {object} AuthTokens
// @Failure      400 {object} httputil.ErrorResponse "Invalid request or validation error"
// @Failure      403 {object} httputil.ErrorResponse "Credentials incorrect"
// @Failure      500 {object} httputil.ErrorResponse "Internal server error"
// @Router       /auth/signin [post]
func (h *Handler) SignIn(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	var req SignInRequest
	if !decodeAndValidate(w, r, logger, &req) {
		return
	}

	tokens, err := h.service.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrCredentialsIncorrect) {
			logger.Warn("signin failed: credentials incorrect")
			httputil.RespondErrorWithCode(w, "Credentials incorrect", httputil.CodeCredentialsIncorrect, http.StatusForbidden)
			return
		}
		logger.Error("signin failed: internal error", "error", err.Error())
		httputil.RespondErrorWithCode(w, "internal server error", httputil.CodeInternalError, http.StatusInternalServerError)
		return
	}

	httputil.RespondJSON(w, tokens, http.StatusOK)
}

// decodeAndValidate writes a 400 and returns false when the body is unusable.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, logger *logging.Logger, dst any) bool {
	if err := httputil.DecodeJSON(w, r, dst); err != nil {
		logger.Warn("invalid request body", "error", err.Error())
		httputil.RespondErrorWithCode(w, "invalid request body", httputil.CodeInvalidRequestBody, http.StatusBadRequest)
		return false
	}

	if err := validation.Validate(dst); err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			httputil.RespondValidationError(w, verr)
			return false
		}
		logger.Error("request validation failed", "error", err.Error())
		httputil.RespondErrorWithCode(w, "invalid request body", httputil.CodeInvalidRequestBody, http.StatusBadRequest)
		return false
	}

	return true
}
