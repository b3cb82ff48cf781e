package chat

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parlor/internal/domain"
)

func TestStore_ApplySeedSortsRooms(t *testing.T) {
	store := NewStore()
	store.ApplySeed(Seed{
		Rooms: []domain.Room{
			{ID: "c", Name: "cherry"},
			{ID: "a", Name: "Apple"},
			{ID: "b", Name: "banana"},
		},
	})

	rooms := store.Rooms()
	require.Len(t, rooms, 3)
	// Case-insensitive collator order, not byte order.
	assert.Equal(t, []string{"Apple", "banana", "cherry"},
		[]string{rooms[0].Name, rooms[1].Name, rooms[2].Name})
}

// The store is a singleton shared by every session, so its read paths must
// tolerate parallel callers. Run with -race.
func TestStore_ConcurrentReadersAndWriters(t *testing.T) {
	store := NewStore()
	store.ApplySeed(DefaultSeed())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				_ = store.Rooms()
				_ = store.MessagesByRoom("general")
				_, _ = store.FindUserByName("Alice")
				if j%50 == 0 {
					store.AddMessage(domain.Message{
						ID:     NewMessageID(),
						RoomID: "general",
						Text:   fmt.Sprintf("w%d-%d", n, j),
					})
				}
			}
		}(i)
	}
	wg.Wait()

	rooms := store.Rooms()
	assert.Len(t, rooms, 3)
	assert.NotEmpty(t, store.MessagesByRoom("general"))
}
