package domain

import (
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type MessageMetadata struct {
	Service   string
	CreatedAt time.Time
}

// OutboundMessage is the flattened payload pushed onto the delivery queue.
// Consumers treat key presence as meaning, so serialization must drop unset
// optional fields instead of emitting empty strings.
type OutboundMessage struct {
	Type      string
	To        string
	Subject   string
	Body      string
	HTMLBody  string
	From      string
	FromName  string
	MessageID string
	Link      string
	Metadata  MessageMetadata
}

// MarshalJSON emits only the keys that carry a value. type, body, from_name,
// message_id and metadata are always present; to, subject, html_body, from
// and link disappear when empty.
func (m OutboundMessage) MarshalJSON() ([]byte, error) {
	payload := map[string]any{
		"type":       m.Type,
		"body":       m.Body,
		"from_name":  m.FromName,
		"message_id": m.MessageID,
		"metadata": map[string]string{
			"service":    m.Metadata.Service,
			"created_at": m.Metadata.CreatedAt.UTC().Format(time.RFC3339),
		},
	}

	if m.To != "" {
		payload["to"] = m.To
	}
	if m.Subject != "" {
		payload["subject"] = m.Subject
	}
	if m.HTMLBody != "" {
		payload["html_body"] = m.HTMLBody
	}
	if m.From != "" {
		payload["from"] = m.From
	}
	if m.Link != "" {
		payload["link"] = m.Link
	}

	return json.Marshal(payload)
}

// NewMessageID returns 16 random bytes rendered as 32 lowercase hex
// characters.
func NewMessageID() string {
	id := uuid.New()
	return hex.EncodeToString(id[:])
}
