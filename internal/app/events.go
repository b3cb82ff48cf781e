package app

import (
	"context"
	"encoding/json"
	"log/slog"

	"parlor/internal/pubsub"
)

// Topics published by the controller.
const (
	TopicUserLoggedIn = "parlor.user.loggedin"
	TopicMessageSent  = "parlor.message.sent"
)

// UserLoggedIn is emitted after a successful login.
type UserLoggedIn struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
}

// MessageSent is emitted after a message has been stored.
type MessageSent struct {
	MessageID string `json:"messageId"`
	RoomID    string `json:"roomId"`
	UserID    string `json:"userId"`
}

// publish sends an event on the bus. Event delivery is best-effort; a
// failure is logged and never surfaces to the user flow that produced it.
func (c *Controller) publish(ctx context.Context, topic, userID string, event any) {
	if c.events == nil {
		return
	}
	payload, err := json.Marshal(event)
	if err != nil {
		c.logger.Error("Failed to marshal event", "topic", topic, "error", err)
		return
	}
	if err := c.events.Publish(ctx, pubsub.Message{Topic: topic, UserID: userID, Payload: payload}); err != nil {
		c.logger.Error("Failed to publish event", "topic", topic, "error", err)
	}
}

// RegisterAuditLogger subscribes a slog-backed audit trail to the
// controller's topics. It is wired once at server start.
func RegisterAuditLogger(ctx context.Context, sub pubsub.Subscriber) error {
	logger := slog.Default().With("component", "audit")

	for _, topic := range []string{TopicUserLoggedIn, TopicMessageSent} {
		topic := topic
		err := sub.Subscribe(ctx, topic, func(ctx context.Context, msg pubsub.Message) error {
			logger.Info("Event", "topic", topic, "user_id", msg.UserID, "payload", string(msg.Payload))
			return nil
		})
		if err != nil {
			return err
		}
	}
	return nil
}
