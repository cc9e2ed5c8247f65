package service

import (
	"strings"
	"time"

	"github.com/zyzyva/mailqueue/internal/core/domain"
)

// MessageDefaults carries the deployment-level fallbacks applied while
// composing an outbound message.
type MessageDefaults struct {
	ServiceName string
	DefaultType string
	DefaultFrom string
	SenderName  string
}

// Hard fallbacks when configuration leaves a field unset.
const (
	fallbackFrom     = "no-reply@zyzyva.com"
	fallbackFromName = "zyzyva"
	fallbackService  = "zyzyva"
)

// Compose flattens an email into the queue message contract. It never fails:
// the category invariant is enforced separately by Validate, and every other
// field either resolves through a fallback chain or is dropped at
// serialization time.
func Compose(email domain.Email, defaults MessageDefaults) domain.OutboundMessage {
	return domain.OutboundMessage{
		Type:      resolveType(email, defaults),
		To:        singleRecipient(email.To),
		Subject:   email.Subject,
		Body:      email.TextBody,
		HTMLBody:  email.HTMLBody,
		From:      resolveFrom(email.From, defaults),
		FromName:  resolveFromName(defaults),
		MessageID: domain.NewMessageID(),
		Link:      email.Category.Link,
		Metadata: domain.MessageMetadata{
			Service:   resolveService(defaults),
			CreatedAt: time.Now().UTC(),
		},
	}
}

// resolveType picks the outbound type by priority: the X-Email-Type header
// (matched case-insensitively, its value passed through unchecked), the
// declared category, the configured default, then "transactional". Header
// presence wins even when its value is empty.
func resolveType(email domain.Email, defaults MessageDefaults) string {
	if v, ok := headerValue(email.Headers, domain.EmailTypeHeader); ok {
		return v
	}
	if email.Category.Kind != "" {
		return string(email.Category.Kind)
	}
	if defaults.DefaultType != "" {
		return defaults.DefaultType
	}
	return string(domain.CategoryTransactional)
}

// headerValue folds the header names once, then answers lookups from the
// folded map rather than rescanning per call.
func headerValue(headers map[string]string, name string) (string, bool) {
	if len(headers) == 0 {
		return "", false
	}
	folded := make(map[string]string, len(headers))
	for k, v := range headers {
		folded[strings.ToLower(k)] = v
	}
	v, ok := folded[strings.ToLower(name)]
	return v, ok
}

// singleRecipient extracts the address only when the list holds exactly one
// entry; anything else leaves the field unset.
func singleRecipient(to []domain.Address) string {
	if len(to) == 1 {
		return to[0].Address
	}
	return ""
}

func resolveFrom(from domain.Address, defaults MessageDefaults) string {
	if from.Address != "" {
		return from.Address
	}
	if defaults.DefaultFrom != "" {
		return defaults.DefaultFrom
	}
	return fallbackFrom
}

// resolveFromName uses configuration only; the sender pair's display name is
// never consulted here.
func resolveFromName(defaults MessageDefaults) string {
	if defaults.SenderName != "" {
		return defaults.SenderName
	}
	if defaults.ServiceName != "" {
		return defaults.ServiceName
	}
	return fallbackFromName
}

func resolveService(defaults MessageDefaults) string {
	if defaults.ServiceName != "" {
		return defaults.ServiceName
	}
	return fallbackService
}
