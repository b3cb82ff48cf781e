package handlers

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"parlor/internal/app"
	"parlor/internal/domain"
	"parlor/web/src/templates/layouts"
	"parlor/web/src/templates/pages"
)

// ChatHandler translates browser requests into controller intents and
// renders the chat surface, either as a full page or as htmx fragments.
type ChatHandler struct {
	sessions *app.Manager
	validate *validator.Validate
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(sessions *app.Manager) *ChatHandler {
	return &ChatHandler{
		sessions: sessions,
		validate: validator.New(),
	}
}

// controller resolves the session's controller, or redirects to the login
// screen when the session is not authenticated.
func (h *ChatHandler) controller(c echo.Context) (*app.Controller, error) {
	sid, err := sessionID(c)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusInternalServerError, "Failed to open session").SetInternal(err)
	}

	ctrl := h.sessions.Get(sid)
	if !ctrl.LoggedIn() {
		// htmx requests get a client-side redirect header; plain requests a
		// regular one.
		if c.Request().Header.Get("HX-Request") != "" {
			c.Response().Header().Set("HX-Redirect", "/")
			return nil, c.NoContent(http.StatusOK)
		}
		return nil, c.Redirect(http.StatusSeeOther, "/")
	}
	return ctrl, nil
}

// ChatGet serves the full chat page (GET /chat).
func (h *ChatHandler) ChatGet(c echo.Context) error {
	ctrl, err := h.controller(c)
	if ctrl == nil {
		return err
	}

	body := pages.ChatBody(pages.ChatData{Snapshot: ctrl.Snapshot()})
	return c.Render(http.StatusOK, "chat", layouts.Base("Chat", body))
}

// SelectRoom handles the room selection intent (POST /chat/rooms/:id/select)
// and returns the refreshed chat body fragment.
func (h *ChatHandler) SelectRoom(c echo.Context) error {
	ctrl, err := h.controller(c)
	if ctrl == nil {
		return err
	}

	var req SelectRoomRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request").SetInternal(err)
	}
	if err := h.validate.Struct(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid room id").SetInternal(err)
	}

	// The selection intent carries the full room value, taken from the
	// served room list.
	room, ok := findRoom(ctrl.Snapshot().Rooms, req.RoomID)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Unknown room")
	}

	ctrl.SelectRoom(c.Request().Context(), room)
	body := pages.ChatBody(pages.ChatData{Snapshot: ctrl.Snapshot()})
	return c.Render(http.StatusOK, "chat-body", body)
}

// SendMessage handles the composer submission (POST /chat/messages) and
// returns the refreshed chat body fragment. The draft is cleared only on
// success; a failed send re-renders the composer with the draft intact.
func (h *ChatHandler) SendMessage(c echo.Context) error {
	ctrl, err := h.controller(c)
	if ctrl == nil {
		return err
	}

	var req SendMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request").SetInternal(err)
	}
	if err := h.validate.Struct(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid message").SetInternal(err)
	}

	draft := ""
	if err := ctrl.SendMessage(c.Request().Context(), strings.TrimSpace(req.Text)); err != nil {
		draft = req.Text
	}

	body := pages.ChatBody(pages.ChatData{Snapshot: ctrl.Snapshot(), Draft: draft})
	return c.Render(http.StatusOK, "chat-body", body)
}

func findRoom(rooms []domain.Room, id string) (domain.Room, bool) {
	for _, room := range rooms {
		if room.ID == id {
			return room, true
		}
	}
	return domain.Room{}, false
}
