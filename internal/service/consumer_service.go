package service

import (
	"context"
	"encoding/json"
	"time"

	"swimtrack-be/internal/pkg/logger"
	"swimtrack-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService feeds events from an in-process watermill channel to a
// handler. Used when NATS is not configured.
type consumerService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	handler   events.Handler
	logger    logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	handler events.Handler,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:    pubSub,
		topicName: topicName,
		handler:   handler,
		logger:    log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

// processMessage acks every message; a handler error is logged only.
func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	defer msg.Ack()

	var payload map[string]interface{}
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("Consumer", "Failed to unmarshal message", map[string]interface{}{
			"message_id": msg.UUID,
			"error":      err.Error(),
		})
		return
	}

	occurredAt := time.Now()
	if raw, ok := payload["occurred_at"].(string); ok {
		if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
			occurredAt = t
		}
	}

	event := events.BaseEvent{
		Type:       msg.Metadata.Get(eventTypeMetadata),
		Data:       payload,
		OccurredAt: occurredAt,
	}

	if err := cs.handler(ctx, event); err != nil {
		cs.logger.Error("Consumer", "Handler failed", map[string]interface{}{
			"message_id": msg.UUID,
			"type":       event.Type,
			"error":      err.Error(),
		})
	}
}
