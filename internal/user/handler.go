package user

import (
	"net/http"

	"github.com/redmonkez12/go-auth-api/internal/httputil"
	"github.com/redmonkez12/go-auth-api/internal/logging"
)

// Handler serves endpoints for the authenticated user. Routes must be mounted
// behind the auth guard, which puts the user into the request context.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// Me returns the current user
// @Summary      Current user
// @Description  Return the authenticated user. The password hash is never included.
// @Tags         user
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} User
// @Failure      401 {object} httputil.ErrorResponse "Unauthorized"
// @Router       /user/me [get]
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	u, ok := FromContext(r.Context())
	if !ok {
		httputil.RespondErrorWithCode(w, "missing authentication", httputil.CodeMissingAuth, http.StatusUnauthorized)
		return
	}

	httputil.RespondJSON(w, u, http.StatusOK)
}

// Update is a placeholder for profile edits and changes nothing.
// @Summary      Update current user
// @Description  Accepted but not implemented; no fields are changed.
// @Tags         user
// @Security     BearerAuth
// @Success      204
// @Failure      401 {object} httputil.ErrorResponse "Unauthorized"
// @Router       /user [patch]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	if u, ok := FromContext(r.Context()); ok {
		logging.GetLoggerFromContext(r.Context()).Debug("user update requested", "user_id", u.ID)
	}
	w.WriteHeader(http.StatusNoContent)
}
