package service

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/zyzyva/mailqueue/internal/core/domain"
	"github.com/zyzyva/mailqueue/internal/core/port"
)

type MailerService struct {
	publisher port.MessagePublisher
	defaults  MessageDefaults
}

func NewMailerService(
	publisher port.MessagePublisher,
	defaults MessageDefaults,
) *MailerService {
	return &MailerService{
		publisher: publisher,
		defaults:  defaults,
	}
}

// Send validates the email, composes the queue message and hands it to the
// publisher in a single synchronous attempt. No retries: the caller owns the
// failure. The returned identifier is the message id stamped at composition.
func (m *MailerService) Send(ctx context.Context, email domain.Email) (string, error) {
	if err := email.Validate(); err != nil {
		return "", err
	}

	message := m.Compose(email)

	id, err := m.publisher.Publish(ctx, message)
	if err != nil {
		log.WithError(err).WithField("message_id", message.MessageID).Error("Failed to publish email message")
		return "", err
	}

	log.WithFields(log.Fields{
		"message_id": id,
		"type":       message.Type,
	}).Debug("Email message published")

	return id, nil
}

func (m *MailerService) Compose(email domain.Email) domain.OutboundMessage {
	return Compose(email, m.defaults)
}
