package chat

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"parlor/internal/domain"
)

// Delays holds the simulated network latency applied to each operation
// before it touches the store. Zero values mean no delay.
type Delays struct {
	Login    time.Duration
	Rooms    time.Duration
	Messages time.Duration
	Send     time.Duration
}

// DefaultDelays mirrors the latency of the backend this service stands in
// for: login is the slowest round trip, send the fastest.
func DefaultDelays() Delays {
	return Delays{
		Login:    500 * time.Millisecond,
		Rooms:    300 * time.Millisecond,
		Messages: 200 * time.Millisecond,
		Send:     100 * time.Millisecond,
	}
}

// Service implements domain.ChatService over an in-memory store, simulating
// network latency on every operation. Validation failures are rejected
// immediately, before the delay, and never reach the store.
type Service struct {
	store  *Store
	delays Delays
	logger *slog.Logger
}

// Option is a function that configures a Service.
type Option func(*Service)

// WithDelays overrides the simulated latency. Tests use this to shrink or
// zero the delays.
func WithDelays(d Delays) Option {
	return func(s *Service) {
		s.delays = d
	}
}

// NewService creates a Service backed by the given store.
func NewService(store *Store, opts ...Option) *Service {
	svc := &Service{
		store:  store,
		delays: DefaultDelays(),
		logger: slog.Default().With("service", "chat"),
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// wait blocks for the simulated latency or until the context is canceled.
func (s *Service) wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Login returns the existing user with the given name (case-insensitive) or
// creates a new one. Login is idempotent per name.
func (s *Service) Login(ctx context.Context, name string) (domain.User, error) {
	if strings.TrimSpace(name) == "" {
		return domain.User{}, domain.NewValidationError(domain.ErrEmptyUsername)
	}

	if err := s.wait(ctx, s.delays.Login); err != nil {
		return domain.User{}, err
	}

	if user, ok := s.store.FindUserByName(name); ok {
		s.logger.Info("User logged in", "user_id", user.ID, "name", user.Name)
		return user, nil
	}

	user := s.store.AddUser(name)
	s.logger.Info("User created", "user_id", user.ID, "name", user.Name)
	return user, nil
}

// ListRooms returns a snapshot of all rooms in collator order.
func (s *Service) ListRooms(ctx context.Context) ([]domain.Room, error) {
	if err := s.wait(ctx, s.delays.Rooms); err != nil {
		return nil, err
	}
	return s.store.Rooms(), nil
}

// ListMessages returns a room's messages sorted ascending by timestamp.
func (s *Service) ListMessages(ctx context.Context, roomID string) ([]domain.Message, error) {
	if err := s.wait(ctx, s.delays.Messages); err != nil {
		return nil, err
	}
	return s.store.MessagesByRoom(roomID), nil
}

// SendMessage appends a new message to a room. The text is stored as given;
// callers are expected to trim before submitting.
func (s *Service) SendMessage(ctx context.Context, roomID, text string, sender domain.User) (domain.Message, error) {
	if strings.TrimSpace(text) == "" {
		return domain.Message{}, domain.NewValidationError(domain.ErrEmptyMessage)
	}

	if err := s.wait(ctx, s.delays.Send); err != nil {
		return domain.Message{}, err
	}

	msg := domain.Message{
		ID:        NewMessageID(),
		RoomID:    roomID,
		Sender:    sender,
		Text:      text,
		Timestamp: time.Now().UnixMilli(),
	}
	s.store.AddMessage(msg)

	s.logger.Debug("Message stored", "message_id", msg.ID, "room_id", roomID, "sender", sender.Name)
	return msg, nil
}

var _ domain.ChatService = (*Service)(nil)
