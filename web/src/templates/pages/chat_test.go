package pages

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"maragu.dev/gomponents"

	"parlor/internal/app"
	"parlor/internal/domain"
)

func mustRender(t *testing.T, node gomponents.Node) string {
	t.Helper()
	var sb strings.Builder
	require.NoError(t, node.Render(&sb))
	return sb.String()
}

func TestChatShell_NoRoomSelected(t *testing.T) {
	out := mustRender(t, ChatShell(ChatData{Snapshot: app.Snapshot{}}))
	assert.Contains(t, out, "Welcome to the Chat!")
	assert.NotContains(t, out, "message-scroll")
}

func TestChatShell_StatesArePrioritized(t *testing.T) {
	room := domain.Room{ID: "general", Name: "🚀 General Discussion"}
	base := app.Snapshot{SelectedRoom: &room}

	// Loading wins over everything else.
	snap := base
	snap.IsLoadingMessages = true
	snap.MessagesError = "Failed to load messages for this room."
	out := mustRender(t, ChatShell(ChatData{Snapshot: snap}))
	assert.Contains(t, out, "Loading messages...")
	assert.NotContains(t, out, "Oops!")

	// Error wins over empty state.
	snap = base
	snap.MessagesError = "Failed to load messages for this room."
	out = mustRender(t, ChatShell(ChatData{Snapshot: snap}))
	assert.Contains(t, out, "Oops! Something went wrong.")
	assert.Contains(t, out, "Failed to load messages for this room.")

	// Empty state.
	snap = base
	out = mustRender(t, ChatShell(ChatData{Snapshot: snap}))
	assert.Contains(t, out, "No messages in this room yet.")

	// Message list.
	user := domain.User{ID: "u1", Name: "Alice"}
	snap = base
	snap.CurrentUser = &user
	snap.Messages = []domain.Message{
		{ID: "m1", RoomID: "general", Sender: user, Text: "hello there", Timestamp: 1700000000000},
	}
	out = mustRender(t, ChatShell(ChatData{Snapshot: snap}))
	assert.Contains(t, out, "hello there")
	assert.Contains(t, out, "1 message")
}

func TestMessageItem_OwnVsOther(t *testing.T) {
	current := domain.User{ID: "u1", Name: "Alice"}
	other := domain.User{ID: "u2", Name: "Bob"}

	own := mustRender(t, MessageItem(domain.Message{Sender: current, Text: "mine"}, current))
	assert.Contains(t, own, "justify-end")
	assert.NotContains(t, own, "Alice", "own messages hide the sender name")

	theirs := mustRender(t, MessageItem(domain.Message{Sender: other, Text: "yours"}, current))
	assert.Contains(t, theirs, "justify-start")
	assert.Contains(t, theirs, "Bob")
}

func TestRoomList_HighlightsSelection(t *testing.T) {
	user := domain.User{ID: "u1", Name: "Alice"}
	rooms := []domain.Room{
		{ID: "general", Name: "🚀 General Discussion"},
		{ID: "random", Name: "🎉 Random Chats"},
	}
	snap := app.Snapshot{
		CurrentUser:  &user,
		Rooms:        rooms,
		SelectedRoom: &rooms[0],
	}

	out := mustRender(t, RoomList(snap))
	assert.Contains(t, out, "Hi, ")
	assert.Contains(t, out, "Alice")
	assert.Contains(t, out, `aria-pressed="true"`)
	assert.Contains(t, out, "/chat/rooms/general/select")
	assert.Contains(t, out, "/chat/rooms/random/select")
}

func TestRoomList_EmptyAndLoadingStates(t *testing.T) {
	snap := app.Snapshot{IsLoadingRooms: true}
	out := mustRender(t, RoomList(snap))
	assert.Contains(t, out, "animate-spin")

	snap = app.Snapshot{}
	out = mustRender(t, RoomList(snap))
	assert.Contains(t, out, "No rooms available at the moment.")
}

func TestComposer_PreservesDraft(t *testing.T) {
	out := mustRender(t, Composer(app.Snapshot{}, "unsent text"))
	assert.Contains(t, out, `value="unsent text"`)
	assert.Contains(t, out, "/chat/messages")

	sending := mustRender(t, Composer(app.Snapshot{IsSendingMessage: true}, ""))
	assert.Contains(t, sending, "disabled")
}

func TestChatBody_RoomErrorToast(t *testing.T) {
	user := domain.User{ID: "u1", Name: "Alice"}
	snap := app.Snapshot{CurrentUser: &user, RoomsError: "Failed to fetch rooms."}

	out := mustRender(t, ChatBody(ChatData{Snapshot: snap}))
	assert.Contains(t, out, "Failed to fetch rooms.")
	assert.Contains(t, out, `role="alert"`)
}

func TestFormatTimestamp(t *testing.T) {
	out := FormatTimestamp(1700000000000)
	assert.Regexp(t, `^\d{2}:\d{2}$`, out)
}
