package chat

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSeed(t *testing.T) {
	seed := DefaultSeed()

	require.Len(t, seed.Rooms, 3)
	require.Len(t, seed.Messages, 3)

	// One welcome message per room, each attributed to System.
	roomIDs := map[string]bool{}
	for _, r := range seed.Rooms {
		roomIDs[r.ID] = true
	}
	for _, m := range seed.Messages {
		assert.True(t, roomIDs[m.RoomID], "seed message %s references unknown room %s", m.ID, m.RoomID)
		assert.Equal(t, "System", m.Sender.Name)
		assert.NotEmpty(t, m.Text)
	}
}

func TestLoadSeed(t *testing.T) {
	fs := afero.NewMemMapFs()
	content := `{
		"rooms": [{"id": "lobby", "name": "Lobby"}],
		"messages": [{"id": "m1", "roomId": "lobby", "sender": {"id": "s", "name": "System"}, "text": "hi", "timestamp": 42}]
	}`
	require.NoError(t, afero.WriteFile(fs, "/etc/parlor/seed.json", []byte(content), 0o644))

	seed, err := LoadSeed(fs, "/etc/parlor/seed.json")
	require.NoError(t, err)
	require.Len(t, seed.Rooms, 1)
	assert.Equal(t, "Lobby", seed.Rooms[0].Name)
	require.Len(t, seed.Messages, 1)
	assert.Equal(t, int64(42), seed.Messages[0].Timestamp)
}

func TestLoadSeed_MissingFile(t *testing.T) {
	fs := afero.NewMemMapFs()

	_, err := LoadSeed(fs, "/does/not/exist.json")
	assert.Error(t, err)
}

func TestLoadSeed_InvalidJSON(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/seed.json", []byte("{nope"), 0o644))

	_, err := LoadSeed(fs, "/seed.json")
	assert.Error(t, err)
}
