package pubsub

import "context"

// Message is the envelope passed between components on the bus.
type Message struct {
	// Topic identifies the channel the message belongs to (e.g., "parlor.message.sent").
	Topic string
	// UserID identifies the user whose action produced the message, if any.
	UserID string
	// Payload contains the raw event data, usually JSON.
	Payload []byte
}

// Handler defines the function signature for processing a received message.
type Handler func(ctx context.Context, msg Message) error

// Publisher defines the contract for sending messages to the bus.
type Publisher interface {
	Publish(ctx context.Context, msg Message) error
	Close() error
}

// Subscriber defines the contract for receiving messages from the bus.
type Subscriber interface {
	// Subscribe starts listening to the given topic. It returns once the
	// subscription is active; messages are handled on a background goroutine.
	Subscribe(ctx context.Context, topic string, handler Handler) error
	Close() error
}
