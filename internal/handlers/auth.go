package handlers

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"parlor/internal/app"
	"parlor/web/src/templates/layouts"
	"parlor/web/src/templates/pages"
)

// AuthHandler handles the login and logout surface.
type AuthHandler struct {
	sessions *app.Manager
	validate *validator.Validate
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(sessions *app.Manager) *AuthHandler {
	return &AuthHandler{
		sessions: sessions,
		validate: validator.New(),
	}
}

// LoginGet serves the login screen, or sends an already authenticated
// session straight to the chat (GET /).
func (h *AuthHandler) LoginGet(c echo.Context) error {
	sid, err := sessionID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to open session").SetInternal(err)
	}

	ctrl := h.sessions.Get(sid)
	if ctrl.LoggedIn() {
		return c.Redirect(http.StatusSeeOther, "/chat")
	}

	snap := ctrl.Snapshot()
	page := layouts.Base("Login", pages.Login(pages.LoginData{
		Error:     snap.LoginError,
		IsLoading: snap.IsLoadingLogin,
	}))
	return c.Render(http.StatusOK, "login", page)
}

// LoginPost handles the login form submission (POST /login). A failed login
// re-renders the form with the inline error and the draft preserved; a
// successful one redirects into the chat, which the controller has already
// populated.
func (h *AuthHandler) LoginPost(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body").SetInternal(err)
	}
	if err := h.validate.Struct(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid username").SetInternal(err)
	}

	sid, err := sessionID(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to open session").SetInternal(err)
	}
	ctrl := h.sessions.Get(sid)

	// The form trims before submitting the intent, like the original UI.
	if err := ctrl.Login(c.Request().Context(), strings.TrimSpace(req.Username)); err != nil {
		snap := ctrl.Snapshot()
		page := layouts.Base("Login", pages.Login(pages.LoginData{
			Draft: req.Username,
			Error: snap.LoginError,
		}))
		return c.Render(http.StatusOK, "login", page)
	}

	return c.Redirect(http.StatusSeeOther, "/chat")
}

// Logout drops the session's controller and expires the cookie (GET /logout).
func (h *AuthHandler) Logout(c echo.Context) error {
	sid, err := sessionID(c)
	if err == nil {
		h.sessions.Drop(sid)
	}
	if err := clearSession(c); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to clear session").SetInternal(err)
	}
	return c.Redirect(http.StatusSeeOther, "/")
}
