package chat

import (
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"parlor/internal/domain"
)

// Store owns the authoritative in-memory collections of users, rooms and
// messages. All access goes through its methods; callers only ever see
// copies. Mutations are single-step appends under one mutex, so no
// cross-operation transactional discipline is needed.
type Store struct {
	mu       sync.RWMutex
	users    []domain.User
	rooms    []domain.Room
	messages []domain.Message
	collator *collate.Collator
}

// NewStore creates an empty store. Room names are ordered with an English
// collator to match locale-aware comparison rather than raw byte order.
func NewStore() *Store {
	return &Store{
		collator: collate.New(language.English),
	}
}

// FindUserByName looks up a user by case-insensitive name match.
func (s *Store) FindUserByName(name string) (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := lo.Find(s.users, func(u domain.User) bool {
		return strings.EqualFold(u.Name, name)
	})
	return user, ok
}

// AddUser creates a user with a fresh id and appends it to the collection.
func (s *Store) AddUser(name string) domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := domain.User{
		ID:   "user-" + uuid.NewString(),
		Name: name,
	}
	s.users = append(s.users, user)
	return user
}

// Rooms returns a snapshot copy of all rooms sorted ascending by name.
// The slice is kept sorted by ApplySeed, so concurrent readers never touch
// the collator, which is not safe for concurrent use.
func (s *Store) Rooms() []domain.Room {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rooms := make([]domain.Room, len(s.rooms))
	copy(rooms, s.rooms)
	return rooms
}

// MessagesByRoom returns the messages of one room sorted ascending by
// timestamp. An unknown room yields an empty slice; no existence check is
// performed.
func (s *Store) MessagesByRoom(roomID string) []domain.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	messages := lo.Filter(s.messages, func(m domain.Message, _ int) bool {
		return m.RoomID == roomID
	})
	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].Timestamp < messages[j].Timestamp
	})
	return messages
}

// AddMessage appends a prepared message to the collection.
func (s *Store) AddMessage(msg domain.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, msg)
}

// NewMessageID generates a unique message identifier.
func NewMessageID() string {
	return "msg-" + uuid.NewString()
}

// ApplySeed loads the seed's rooms and messages into the store. It is meant
// to be called once at startup, before the store is handed to the service.
// The room set is fixed after seeding, so this is the only place the
// collator runs; it does so under the exclusive lock.
func (s *Store) ApplySeed(seed Seed) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rooms = append(s.rooms, seed.Rooms...)
	sort.SliceStable(s.rooms, func(i, j int) bool {
		return s.collator.CompareString(s.rooms[i].Name, s.rooms[j].Name) < 0
	})
	s.messages = append(s.messages, seed.Messages...)
}
