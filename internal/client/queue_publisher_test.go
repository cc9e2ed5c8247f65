package client

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zyzyva/mailqueue/internal/core/domain"
)

type capturingPublisher struct {
	queue   string
	payload []byte
	err     error
}

func (c *capturingPublisher) Publish(_ context.Context, queue string, payload []byte) error {
	c.queue = queue
	c.payload = payload
	return c.err
}

func TestQueuePublisher(t *testing.T) {
	transport := &capturingPublisher{}
	publisher := NewQueuePublisher(transport, "emails")

	message := domain.OutboundMessage{
		Type:      "welcome",
		To:        "ada@example.com",
		Body:      "Hi",
		FromName:  "zyzyva",
		MessageID: "00112233445566778899aabbccddeeff",
		Metadata:  domain.MessageMetadata{Service: "myapp", CreatedAt: time.Now()},
	}

	id, err := publisher.Publish(context.Background(), message)

	require.NoError(t, err)
	assert.Equal(t, message.MessageID, id)
	assert.Equal(t, "emails", transport.queue)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(transport.payload, &payload))
	assert.Equal(t, "welcome", payload["type"])
	assert.Equal(t, message.MessageID, payload["message_id"])
}

func TestQueuePublisher_TransportFailure(t *testing.T) {
	transport := &capturingPublisher{err: &domain.TransportError{Err: errors.New("connection refused")}}
	publisher := NewQueuePublisher(transport, "emails")

	_, err := publisher.Publish(context.Background(), domain.OutboundMessage{MessageID: "abc"})

	var transportErr *domain.TransportError
	require.ErrorAs(t, err, &transportErr)
}

func TestLogPublisher(t *testing.T) {
	publisher := NewLogPublisher()

	id, err := publisher.Publish(context.Background(), domain.OutboundMessage{MessageID: "00112233445566778899aabbccddeeff"})

	require.NoError(t, err)
	assert.Equal(t, "00112233445566778899aabbccddeeff", id)
}
