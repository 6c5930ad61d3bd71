package authhandler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"

	"github.com/oleeahmmed/UniworldHrm/internal/domain/auth"
	"github.com/oleeahmmed/UniworldHrm/internal/transport/http/api"
	"github.com/oleeahmmed/UniworldHrm/internal/transport/http/middleware"
	"github.com/oleeahmmed/UniworldHrm/internal/transport/http/shared"
)

type Authenticator interface {
	Login(ctx context.Context, email, password string) (auth.Session, error)
	Permissions(ctx context.Context, p auth.Principal) ([]string, error)
}

type Handler struct {
	Service Authenticator
}

func NewHandler(service Authenticator) *Handler {
	return &Handler{Service: service}
}

// RegisterPublic mounts the routes that work without a token.
func (h *Handler) RegisterPublic(r chi.Router) {
	r.Post("/auth/login", h.HandleLogin)
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/me", h.HandleMe)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	var payload loginRequest
	if err := shared.DecodeJSON(r, &payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}
	v := shared.NewValidator()
	v.Required("email", payload.Email, "this field is required")
	v.Required("password", payload.Password, "this field is required")
	if v.Reject(w, reqID) {
		return
	}

	session, err := h.Service.Login(r.Context(), payload.Email, payload.Password)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		api.Fail(w, http.StatusUnauthorized, "invalid_credentials", "invalid credentials", reqID)
		return
	}
	if err != nil {
		slog.Error("login failed", "err", err)
		api.Fail(w, http.StatusInternalServerError, "login_failed", "failed to sign in", reqID)
		return
	}
	api.Success(w, session, reqID)
}

func (h *Handler) HandleMe(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", reqID)
		return
	}
	perms, err := h.Service.Permissions(r.Context(), user)
	if err != nil {
		slog.Error("load permissions failed", "err", err, "user_id", user.UserID)
		api.Fail(w, http.StatusInternalServerError, "me_failed", "failed to load permissions", reqID)
		return
	}
	api.Success(w, map[string]any{"user": user, "permissions": perms}, reqID)
}
