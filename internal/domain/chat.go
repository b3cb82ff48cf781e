package domain

import "context"

// User represents a chat participant. Users are created on first login and
// reused (matched case-insensitively by name) on subsequent logins.
type User struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Room is a named channel containing an ordered sequence of messages.
// The room set is fixed at startup; no creation path is exposed.
type Room struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedBy string `json:"createdBy,omitempty"`
	CreatedAt int64  `json:"createdAt,omitempty"`
}

// Message is a timestamped, attributed unit of text within one room.
// Timestamp is milliseconds since the Unix epoch, assigned at send time.
type Message struct {
	ID        string `json:"id"`
	RoomID    string `json:"roomId"`
	Sender    User   `json:"sender"`
	Text      string `json:"text"`
	Timestamp int64  `json:"timestamp"`
}

// ChatService defines the contract the presentation layer depends on.
// It lives in the domain because it's a requirement OF the domain, not
// of the storage implementation behind it.
type ChatService interface {
	// Login returns the existing user with the given name (case-insensitive)
	// or creates a new one. Fails with a ValidationError when the trimmed
	// name is empty.
	Login(ctx context.Context, name string) (User, error)

	// ListRooms returns a snapshot of all rooms, sorted by name with a
	// locale-aware collator. It never fails with a domain error.
	ListRooms(ctx context.Context) ([]Room, error)

	// ListMessages returns the messages of a room sorted ascending by
	// timestamp. An unknown room yields an empty slice, not an error.
	ListMessages(ctx context.Context, roomID string) ([]Message, error)

	// SendMessage appends a new message to a room and returns it. Fails
	// with a ValidationError when the trimmed text is empty.
	SendMessage(ctx context.Context, roomID, text string, sender User) (Message, error)
}
