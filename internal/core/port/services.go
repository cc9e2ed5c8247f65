package port

import (
	"context"

	"github.com/zyzyva/mailqueue/internal/core/domain"
)

type MailerService interface {
	Send(ctx context.Context, email domain.Email) (string, error)
	Compose(email domain.Email) domain.OutboundMessage
}
