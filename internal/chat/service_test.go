package chat

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parlor/internal/domain"
)

// newTestService builds a seeded service with no simulated latency.
func newTestService() *Service {
	store := NewStore()
	store.ApplySeed(DefaultSeed())
	return NewService(store, WithDelays(Delays{}))
}

func TestService_LoginIsIdempotentPerName(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	first, err := svc.Login(ctx, "Alice")
	require.NoError(t, err)
	require.NotEmpty(t, first.ID)
	assert.Equal(t, "Alice", first.Name)

	// Same name with different casing must return the same user.
	second, err := svc.Login(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Alice", second.Name)
}

func TestService_LoginRejectsEmptyName(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	for _, name := range []string{"", "   "} {
		_, err := svc.Login(ctx, name)
		require.Error(t, err)
		assert.True(t, domain.IsValidation(err))
		assert.ErrorIs(t, err, domain.ErrEmptyUsername)
	}

	// No user was created; a later login with a real name gets a fresh id.
	_, ok := svc.store.FindUserByName("")
	assert.False(t, ok)
}

func TestService_ListRoomsSortedByCollator(t *testing.T) {
	svc := newTestService()

	rooms, err := svc.ListRooms(context.Background())
	require.NoError(t, err)
	require.Len(t, rooms, 3)

	// Assert the order the collator actually produces rather than assuming
	// ASCII order of the emoji prefixes.
	for i := 1; i < len(rooms); i++ {
		cmp := svc.store.collator.CompareString(rooms[i-1].Name, rooms[i].Name)
		assert.LessOrEqual(t, cmp, 0, "rooms out of collator order: %q before %q", rooms[i-1].Name, rooms[i].Name)
	}

	names := []string{rooms[0].Name, rooms[1].Name, rooms[2].Name}
	assert.ElementsMatch(t, names, []string{
		"🚀 General Discussion",
		"💻 Tech Talk",
		"🎉 Random Chats",
	})
}

func TestService_ListMessagesFiltersAndSorts(t *testing.T) {
	store := NewStore()
	store.ApplySeed(Seed{
		Rooms: []domain.Room{{ID: "a", Name: "A"}, {ID: "b", Name: "B"}},
		Messages: []domain.Message{
			{ID: "m3", RoomID: "a", Text: "third", Timestamp: 300},
			{ID: "m1", RoomID: "a", Text: "first", Timestamp: 100},
			{ID: "m2", RoomID: "b", Text: "other room", Timestamp: 200},
		},
	})
	svc := NewService(store, WithDelays(Delays{}))

	msgs, err := svc.ListMessages(context.Background(), "a")
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "m1", msgs[0].ID)
	assert.Equal(t, "m3", msgs[1].ID)

	// Unknown room: empty slice, no error.
	msgs, err = svc.ListMessages(context.Background(), "nope")
	require.NoError(t, err)
	assert.Empty(t, msgs)
}

func TestService_SendMessageRejectsEmptyText(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	sender := domain.User{ID: "u1", Name: "Alice"}
	before, err := svc.ListMessages(ctx, "general")
	require.NoError(t, err)

	_, err = svc.SendMessage(ctx, "general", "   ", sender)
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
	assert.ErrorIs(t, err, domain.ErrEmptyMessage)

	after, err := svc.ListMessages(ctx, "general")
	require.NoError(t, err)
	assert.Len(t, after, len(before), "rejected message must not be stored")
}

func TestService_SendMessageAppends(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	sender := domain.User{ID: "u1", Name: "Alice"}
	start := time.Now().UnixMilli()

	msg, err := svc.SendMessage(ctx, "general", "hello", sender)
	require.NoError(t, err)
	assert.NotEmpty(t, msg.ID)
	assert.Equal(t, "general", msg.RoomID)
	assert.Equal(t, "hello", msg.Text)
	assert.Equal(t, sender, msg.Sender)
	assert.GreaterOrEqual(t, msg.Timestamp, start)

	msgs, err := svc.ListMessages(ctx, "general")
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, msg.ID, msgs[len(msgs)-1].ID, "new message must sort last")
}

func TestService_WaitHonorsContextCancellation(t *testing.T) {
	store := NewStore()
	store.ApplySeed(DefaultSeed())
	svc := NewService(store, WithDelays(Delays{Login: time.Second}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Login(ctx, "Alice")
	assert.ErrorIs(t, err, context.Canceled)
}
