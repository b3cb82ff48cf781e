package pubsub

import (
	"context"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const metaKeyUserID = "user_id"

// Bus implements Publisher and Subscriber on top of watermill's in-memory
// GoChannel. It is the only transport the application needs: all events stay
// in-process. Publish and handler execution are traced; the default tracer
// is a no-op.
type Bus struct {
	pub    message.Publisher
	sub    message.Subscriber
	tracer trace.Tracer
}

// Option is a function that configures a Bus.
type Option func(*Bus)

// WithTracer sets the tracer used for publish and process spans.
func WithTracer(tracer trace.Tracer) Option {
	return func(b *Bus) {
		b.tracer = tracer
	}
}

// NewBus initializes the in-memory bus.
func NewBus(opts ...Option) *Bus {
	goChannel := gochannel.NewGoChannel(
		gochannel.Config{},
		watermill.NewStdLogger(false, false),
	)
	b := &Bus{
		pub:    goChannel,
		sub:    goChannel,
		tracer: noop.NewTracerProvider().Tracer("parlor-pubsub"),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Publish implements the Publisher interface.
func (b *Bus) Publish(ctx context.Context, msg Message) error {
	spanCtx, span := b.tracer.Start(ctx, "pubsub.publish."+msg.Topic,
		trace.WithAttributes(
			attribute.String("messaging.system", "watermill"),
			attribute.String("messaging.operation", "publish"),
			attribute.String("messaging.destination", msg.Topic),
			attribute.String("user.id", msg.UserID),
			attribute.Int("messaging.message_payload_size_bytes", len(msg.Payload)),
		),
	)
	defer span.End()

	wmMsg := message.NewMessage(watermill.NewUUID(), msg.Payload)
	wmMsg.SetContext(spanCtx)
	if msg.UserID != "" {
		wmMsg.Metadata.Set(metaKeyUserID, msg.UserID)
	}

	if err := b.pub.Publish(msg.Topic, wmMsg); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

// Subscribe implements the Subscriber interface. The handler runs on a
// background goroutine until the context is canceled or the bus is closed.
func (b *Bus) Subscribe(ctx context.Context, topic string, handler Handler) error {
	messages, err := b.sub.Subscribe(ctx, topic)
	if err != nil {
		return err
	}

	go func() {
		for wmMsg := range messages {
			msg := Message{
				Topic:   topic,
				UserID:  wmMsg.Metadata.Get(metaKeyUserID),
				Payload: wmMsg.Payload,
			}
			spanCtx, span := b.tracer.Start(wmMsg.Context(), "pubsub.process."+topic,
				trace.WithAttributes(
					attribute.String("messaging.system", "watermill"),
					attribute.String("messaging.operation", "process"),
					attribute.String("messaging.destination", topic),
					attribute.String("messaging.message_id", wmMsg.UUID),
					attribute.String("user.id", msg.UserID),
				),
			)
			if err := handler(spanCtx, msg); err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
				span.End()
				slog.Error("Failed to handle bus message", "topic", topic, "msg_id", wmMsg.UUID, "error", err)
				wmMsg.Nack()
				continue
			}
			span.End()
			wmMsg.Ack()
		}
	}()

	return nil
}

// Close shuts the bus down, ending all subscription loops.
func (b *Bus) Close() error {
	return b.sub.Close()
}
