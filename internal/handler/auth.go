package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/wementor/mentor-directory-api/internal/apierror"
	"github.com/wementor/mentor-directory-api/internal/middleware"
	"github.com/wementor/mentor-directory-api/internal/payload"
	"github.com/wementor/mentor-directory-api/internal/usecase"
)

const stateCookieName = "oauth_state"

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	cookieName  string
	environment string
	logger      *zerolog.Logger
}

func NewAuthHandler(
	authUsecase usecase.AuthUsecase,
	cookieName string,
	environment string,
	logger *zerolog.Logger,
) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		cookieName:  cookieName,
		environment: environment,
		logger:      logger,
	}
}

// Login starts the OAuth flow by redirecting to the Google consent page.
// The state value is pinned in a short-lived cookie and checked on
// callback.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	state := uuid.NewString()

	http.SetCookie(w, &http.Cookie{
		Name:     stateCookieName,
		Value:    state,
		Path:     "/",
		HttpOnly: true,
		MaxAge:   600,
	})

	http.Redirect(w, r, h.authUsecase.AuthCodeURL(state), http.StatusFound)
}

// GoogleCallback completes the OAuth flow, resolves the profile to an
// admin and opens a session. A missing code or a state mismatch sends
// the caller back to the login route.
func (h *AuthHandler) GoogleCallback(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     stateCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})

	code := r.URL.Query().Get("code")
	stateCookie, err := r.Cookie(stateCookieName)
	if code == "" || err != nil || stateCookie.Value != r.URL.Query().Get("state") {
		http.Redirect(w, r, middleware.LoginPath, http.StatusFound)
		return
	}

	admin, err := h.authUsecase.HandleGoogleCallback(r.Context(), code)
	if err != nil {
		apierror.Write(w, h.logger, h.environment, err)
		return
	}

	session, err := h.authUsecase.CreateSession(r.Context(), admin.ID)
	if err != nil {
		apierror.Write(w, h.logger, h.environment, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    session.Token,
		Path:     "/",
		HttpOnly: true,
		Expires:  session.ExpiresAt,
	})

	http.Redirect(w, r, "/v1/auth/success", http.StatusFound)
}

// Success returns the authenticated admin's profile.
func (h *AuthHandler) Success(w http.ResponseWriter, r *http.Request) {
	admin, ok := middleware.AdminFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, middleware.LoginPath, http.StatusFound)
		return
	}

	respondJSON(w, http.StatusOK, payload.NewAdminResponse(admin))
}

// Logout destroys the session and clears the cookie.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(h.cookieName); err == nil {
		if err := h.authUsecase.DestroySession(r.Context(), cookie.Value); err != nil {
			h.logger.Warn().Err(err).Msg("failed to destroy session")
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
	})

	http.Redirect(w, r, middleware.LoginPath, http.StatusFound)
}
