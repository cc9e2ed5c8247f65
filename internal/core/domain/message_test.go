package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutboundMessageMarshalJSON(t *testing.T) {
	createdAt := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	message := OutboundMessage{
		Type:      "welcome",
		To:        "ada@example.com",
		Subject:   "Welcome!",
		Body:      "Hi Ada",
		HTMLBody:  "<p>Hi Ada</p>",
		From:      "team@example.com",
		FromName:  "The Team",
		MessageID: "00112233445566778899aabbccddeeff",
		Link:      "https://app.example.com/confirm",
		Metadata:  MessageMetadata{Service: "myapp", CreatedAt: createdAt},
	}

	data, err := json.Marshal(message)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))

	assert.Equal(t, map[string]any{
		"type":       "welcome",
		"to":         "ada@example.com",
		"subject":    "Welcome!",
		"body":       "Hi Ada",
		"html_body":  "<p>Hi Ada</p>",
		"from":       "team@example.com",
		"from_name":  "The Team",
		"message_id": "00112233445566778899aabbccddeeff",
		"link":       "https://app.example.com/confirm",
		"metadata": map[string]any{
			"service":    "myapp",
			"created_at": "2025-03-14T09:26:53Z",
		},
	}, got)
}

func TestOutboundMessageMarshalJSON_OmitsEmptyOptionals(t *testing.T) {
	message := OutboundMessage{
		Type:      "transactional",
		From:      "no-reply@zyzyva.com",
		FromName:  "zyzyva",
		MessageID: "00112233445566778899aabbccddeeff",
		Metadata:  MessageMetadata{Service: "zyzyva", CreatedAt: time.Now()},
	}

	data, err := json.Marshal(message)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))

	for _, key := range []string{"to", "subject", "html_body", "link"} {
		_, present := got[key]
		assert.Falsef(t, present, "key %q should be omitted when empty", key)
	}
	for _, key := range []string{"type", "body", "from", "from_name", "message_id", "metadata"} {
		_, present := got[key]
		assert.Truef(t, present, "key %q should always be present", key)
	}

	// body stays even when empty
	assert.Equal(t, "", got["body"])
}

func TestOutboundMessageMarshalJSON_CreatedAtRenderedUTC(t *testing.T) {
	cet := time.FixedZone("CET", 3600)
	message := OutboundMessage{
		Metadata: MessageMetadata{
			Service:   "myapp",
			CreatedAt: time.Date(2025, 3, 14, 10, 26, 53, 0, cet),
		},
	}

	data, err := json.Marshal(message)
	require.NoError(t, err)

	var got struct {
		Metadata struct {
			CreatedAt string `json:"created_at"`
		} `json:"metadata"`
	}
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "2025-03-14T09:26:53Z", got.Metadata.CreatedAt)
}

func TestNewMessageID(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		id := NewMessageID()
		assert.Regexp(t, "^[0-9a-f]{32}$", id)

		_, dup := seen[id]
		assert.False(t, dup, "message ids must not repeat")
		seen[id] = struct{}{}
	}
}
