package chat

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/afero"

	"parlor/internal/domain"
)

// Seed is the startup dataset for the store: the fixed room set and any
// pre-existing messages.
type Seed struct {
	Rooms    []domain.Room    `json:"rooms"`
	Messages []domain.Message `json:"messages"`
}

// DefaultSeed returns the built-in dataset: three rooms, each with a welcome
// message from the System user dated shortly before startup.
func DefaultSeed() Seed {
	now := time.Now().UnixMilli()
	return Seed{
		Rooms: []domain.Room{
			{ID: "general", Name: "🚀 General Discussion"},
			{ID: "tech-talk", Name: "💻 Tech Talk"},
			{ID: "random", Name: "🎉 Random Chats"},
		},
		Messages: []domain.Message{
			{
				ID:        "msg-seed-1",
				RoomID:    "general",
				Sender:    domain.User{ID: "system-1", Name: "System"},
				Text:      "Welcome to General Discussion! Feel free to chat about anything.",
				Timestamp: now - 15000,
			},
			{
				ID:        "msg-seed-2",
				RoomID:    "tech-talk",
				Sender:    domain.User{ID: "system-2", Name: "System"},
				Text:      "Welcome to Tech Talk! Discuss your favorite technologies here.",
				Timestamp: now - 8000,
			},
			{
				ID:        "msg-seed-3",
				RoomID:    "random",
				Sender:    domain.User{ID: "system-3", Name: "System"},
				Text:      "Welcome to Random! Let the fun begin.",
				Timestamp: now - 3000,
			},
		},
	}
}

// LoadSeed reads a seed dataset from a JSON file on the given filesystem.
// The afero abstraction lets tests feed an in-memory filesystem.
func LoadSeed(fs afero.Fs, path string) (Seed, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return Seed{}, fmt.Errorf("failed to read seed file %q: %w", path, err)
	}

	var seed Seed
	if err := json.Unmarshal(data, &seed); err != nil {
		return Seed{}, fmt.Errorf("failed to parse seed file %q: %w", path, err)
	}
	return seed, nil
}
