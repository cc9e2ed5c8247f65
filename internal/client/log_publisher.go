package client

import (
	"context"
	"encoding/json"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/zyzyva/mailqueue/internal/core/domain"
)

// LogPublisher renders messages into the log instead of the broker. Meant for
// local development without a RabbitMQ instance; selected with
// PUBLISHER_DRIVER=log.
type LogPublisher struct{}

func NewLogPublisher() *LogPublisher {
	return &LogPublisher{}
}

func (l *LogPublisher) Publish(_ context.Context, message domain.OutboundMessage) (string, error) {
	payload, err := json.Marshal(message)
	if err != nil {
		return "", fmt.Errorf("failed to marshal outbound message: %w", err)
	}

	log.WithFields(log.Fields{
		"message_id": message.MessageID,
		"type":       message.Type,
	}).Infof("Email message not published: %s", payload)

	return message.MessageID, nil
}
