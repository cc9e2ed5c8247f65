package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/zyzyva/mailqueue/internal/core/domain"
)

type Publisher struct {
	client *Client
}

func NewPublisher(client *Client) *Publisher {
	return &Publisher{
		client: client,
	}
}

type publishRequest struct {
	Properties      map[string]any `json:"properties"`
	RoutingKey      string         `json:"routing_key"`
	Payload         string         `json:"payload"`
	PayloadEncoding string         `json:"payload_encoding"`
}

type publishResponse struct {
	Routed bool `json:"routed"`
}

// Publish posts one payload to the default exchange with the queue name as
// routing key and classifies the outcome. 200 with routed=true is the only
// success; routed=false means the queue is not provisioned, any other status
// is a broker error, and a failed request means the broker was unreachable.
func (p *Publisher) Publish(ctx context.Context, queue string, payload []byte) error {
	// Add timeout to context if not already present
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
	}

	body, err := json.Marshal(publishRequest{
		Properties:      map[string]any{},
		RoutingKey:      queue,
		Payload:         string(payload),
		PayloadEncoding: "string",
	})
	if err != nil {
		return fmt.Errorf("failed to marshal publish request: %w", err)
	}

	path := fmt.Sprintf("/api/exchanges/%s/amq.default/publish", Vhost)

	resp, err := p.client.post(ctx, path, body)
	if err != nil {
		return &domain.TransportError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &domain.TransportError{Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		return &domain.RemoteError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	var result publishResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return &domain.TransportError{Err: fmt.Errorf("unreadable broker response: %w", err)}
	}

	if !result.Routed {
		return &domain.NotRoutedError{Queue: queue}
	}

	log.WithFields(log.Fields{
		"queue": queue,
		"vhost": Vhost,
	}).Debug("Message routed to queue")

	return nil
}
