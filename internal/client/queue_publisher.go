package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/zyzyva/mailqueue/internal/core/domain"
)

type Publisher interface {
	Publish(ctx context.Context, queue string, payload []byte) error
}

// QueuePublisher serializes outbound messages and pushes them onto the
// configured queue through the broker transport.
type QueuePublisher struct {
	publisher Publisher
	queue     string
}

func NewQueuePublisher(publisher Publisher, queue string) *QueuePublisher {
	return &QueuePublisher{
		publisher: publisher,
		queue:     queue,
	}
}

// Publish returns the message id as the opaque send identifier once the
// broker has routed the payload.
func (q *QueuePublisher) Publish(ctx context.Context, message domain.OutboundMessage) (string, error) {
	payload, err := json.Marshal(message)
	if err != nil {
		return "", fmt.Errorf("failed to marshal outbound message: %w", err)
	}

	if err := q.publisher.Publish(ctx, q.queue, payload); err != nil {
		return "", err
	}

	return message.MessageID, nil
}
