package port

import (
	"context"

	"github.com/zyzyva/mailqueue/internal/core/domain"
)

type MessagePublisher interface {
	Publish(ctx context.Context, message domain.OutboundMessage) (string, error)
}
