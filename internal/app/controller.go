package app

import (
	"context"
	"log/slog"
	"sync"

	"parlor/internal/domain"
	"parlor/internal/pubsub"
)

// Display strings for the three async zones. Validation failures surface
// their own message; everything else maps to the generic string of the zone
// that caught it.
const (
	errLoginEmptyName = "Username cannot be empty."
	errLoginUnknown   = "An unknown error occurred during login."
	errRoomsFetch     = "Failed to fetch rooms."
	errMessagesFetch  = "Failed to load messages for this room."
	errSendEmptyText  = "Failed to send: Message cannot be empty."
	errSendUnknown    = "Failed to send message. Please try again."
)

// Controller is the single stateful orchestrator for one session. It owns
// the client-side snapshot of the current user, the room collection, the
// selected room and its messages, and sequences data-service calls in
// response to user intents.
//
// Each of the three async zones (login, rooms, messages) tracks its own
// loading and error state. The rooms and messages zones additionally carry a
// generation counter: issuing a new fetch bumps the counter, and a resolving
// fetch applies its result only if its generation is still current. A stale
// message fetch from a previous room can therefore never overwrite the
// selected room's messages.
type Controller struct {
	svc    domain.ChatService
	events pubsub.Publisher
	logger *slog.Logger

	mu           sync.Mutex
	currentUser  *domain.User
	rooms        []domain.Room
	selectedRoom *domain.Room
	messages     []domain.Message

	isLoadingLogin bool
	loginError     string

	isLoadingRooms bool
	roomsError     string
	roomsGen       uint64

	isLoadingMessages bool
	isSendingMessage  bool
	messagesError     string
	messagesGen       uint64
}

// NewController creates a controller bound to one session.
func NewController(svc domain.ChatService, events pubsub.Publisher) *Controller {
	return &Controller{
		svc:    svc,
		events: events,
		logger: slog.Default().With("component", "controller"),
	}
}

// Snapshot is an immutable copy of the controller state handed to the
// presentation components. Views are pure functions of a Snapshot.
type Snapshot struct {
	CurrentUser  *domain.User
	Rooms        []domain.Room
	SelectedRoom *domain.Room
	Messages     []domain.Message

	IsLoadingLogin bool
	LoginError     string

	IsLoadingRooms bool
	RoomsError     string

	IsLoadingMessages bool
	IsSendingMessage  bool
	MessagesError     string
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := Snapshot{
		IsLoadingLogin:    c.isLoadingLogin,
		LoginError:        c.loginError,
		IsLoadingRooms:    c.isLoadingRooms,
		RoomsError:        c.roomsError,
		IsLoadingMessages: c.isLoadingMessages,
		IsSendingMessage:  c.isSendingMessage,
		MessagesError:     c.messagesError,
	}
	if c.currentUser != nil {
		user := *c.currentUser
		snap.CurrentUser = &user
	}
	if c.selectedRoom != nil {
		room := *c.selectedRoom
		snap.SelectedRoom = &room
	}
	snap.Rooms = make([]domain.Room, len(c.rooms))
	copy(snap.Rooms, c.rooms)
	snap.Messages = make([]domain.Message, len(c.messages))
	copy(snap.Messages, c.messages)
	return snap
}

// Login handles the login intent. On success the session moves to the
// authenticated state and the room list fetch is triggered, which in turn
// auto-selects the first room and fetches its messages.
func (c *Controller) Login(ctx context.Context, name string) error {
	c.mu.Lock()
	c.isLoadingLogin = true
	c.loginError = ""
	c.mu.Unlock()

	user, err := c.svc.Login(ctx, name)

	c.mu.Lock()
	c.isLoadingLogin = false
	if err != nil {
		if domain.IsValidation(err) {
			c.loginError = errLoginEmptyName
		} else {
			c.loginError = errLoginUnknown
		}
		c.mu.Unlock()
		return err
	}
	c.currentUser = &user
	c.mu.Unlock()

	c.publish(ctx, TopicUserLoggedIn, user.ID, UserLoggedIn{UserID: user.ID, Name: user.Name})

	// Entering the authenticated state triggers the room list fetch.
	c.FetchRooms(ctx)
	return nil
}

// FetchRooms refreshes the room collection. If no room is selected yet and
// the fetched list is non-empty, the first room (in served order) is
// auto-selected, which triggers a message fetch for it.
func (c *Controller) FetchRooms(ctx context.Context) {
	c.mu.Lock()
	if c.currentUser == nil {
		c.mu.Unlock()
		return
	}
	c.isLoadingRooms = true
	c.roomsError = ""
	c.roomsGen++
	gen := c.roomsGen
	c.mu.Unlock()

	rooms, err := c.svc.ListRooms(ctx)

	c.mu.Lock()
	if gen != c.roomsGen {
		c.mu.Unlock()
		return
	}
	c.isLoadingRooms = false
	if err != nil {
		c.roomsError = errRoomsFetch
		c.mu.Unlock()
		return
	}
	c.rooms = rooms

	var autoSelect *domain.Room
	if c.selectedRoom == nil && len(rooms) > 0 {
		autoSelect = &rooms[0]
	}
	c.mu.Unlock()

	if autoSelect != nil {
		c.SelectRoom(ctx, *autoSelect)
	}
}

// SelectRoom handles the room selection intent. The message list and the
// message-zone error are cleared synchronously, before the fetch resolves.
func (c *Controller) SelectRoom(ctx context.Context, room domain.Room) {
	c.mu.Lock()
	selected := room
	c.selectedRoom = &selected
	c.messages = nil
	c.messagesError = ""
	c.isLoadingMessages = true
	c.messagesGen++
	gen := c.messagesGen
	c.mu.Unlock()

	c.fetchMessages(ctx, room.ID, gen)
}

// fetchMessages resolves one message fetch. Results tagged with a stale
// generation are dropped.
func (c *Controller) fetchMessages(ctx context.Context, roomID string, gen uint64) {
	messages, err := c.svc.ListMessages(ctx, roomID)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.messagesGen {
		c.logger.Debug("Dropping stale message fetch", "room_id", roomID)
		return
	}
	c.isLoadingMessages = false
	if err != nil {
		c.messagesError = errMessagesFetch
		return
	}
	c.messages = messages
}

// SendMessage handles the send intent. It is a no-op unless both a user and
// a room are present. On success the returned message is appended locally
// instead of re-fetching the thread, and any prior message-zone error is
// cleared. On failure the existing messages are left untouched and the
// shared message-zone error slot is set.
func (c *Controller) SendMessage(ctx context.Context, text string) error {
	c.mu.Lock()
	if c.currentUser == nil || c.selectedRoom == nil {
		c.mu.Unlock()
		return nil
	}
	sender := *c.currentUser
	roomID := c.selectedRoom.ID
	c.isSendingMessage = true
	c.mu.Unlock()

	msg, err := c.svc.SendMessage(ctx, roomID, text, sender)

	c.mu.Lock()
	c.isSendingMessage = false
	if err != nil {
		if domain.IsValidation(err) {
			c.messagesError = errSendEmptyText
		} else {
			c.messagesError = errSendUnknown
		}
		c.mu.Unlock()
		return err
	}
	c.messages = append(c.messages, msg)
	c.messagesError = ""
	c.mu.Unlock()

	c.publish(ctx, TopicMessageSent, sender.ID, MessageSent{
		MessageID: msg.ID,
		RoomID:    msg.RoomID,
		UserID:    sender.ID,
	})
	return nil
}

// LoggedIn reports whether the session has a current user.
func (c *Controller) LoggedIn() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.currentUser != nil
}
