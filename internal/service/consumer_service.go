package service

import (
	"context"
	"encoding/json"

	"ai-assistant-be/internal/pkg/logger"
	"ai-assistant-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
)

const consumerModule = "ConsumerService"

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService writes every in-process message event to the audit log.
// It only runs when events stay in-process; with NATS configured,
// subscribers live outside this service.
type consumerService struct {
	subscriber message.Subscriber
	logger     logger.ILogger
}

func NewConsumerService(subscriber message.Subscriber, log logger.ILogger) IConsumerService {
	return &consumerService{
		subscriber: subscriber,
		logger:     log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.subscriber.Subscribe(ctx, events.Subject(events.TypeAiMessageCreated))
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(msg *message.Message) {
	defer msg.Ack()

	var payload map[string]interface{}
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Warn(consumerModule, "Dropping undecodable event", map[string]interface{}{
			"uuid":  msg.UUID,
			"error": err.Error(),
		})
		return
	}

	cs.logger.Info(consumerModule, "Message stored", map[string]interface{}{
		"event_type": msg.Metadata.Get("event_type"),
		"message_id": payload["message_id"],
		"session_id": payload["session_id"],
		"tenant_id":  payload["tenant_id"],
		"role":       payload["role"],
	})
}
