package handlers

// LoginRequest carries the login form submission. Emptiness of the username
// is a domain concern handled by the data service; the HTTP layer only
// bounds the size.
type LoginRequest struct {
	Username string `form:"username" validate:"max=50"`
}

// SelectRoomRequest carries the room selection intent.
type SelectRoomRequest struct {
	RoomID string `param:"id" validate:"required"`
}

// SendMessageRequest carries the composer submission.
type SendMessageRequest struct {
	Text string `form:"text" validate:"max=2000"`
}
