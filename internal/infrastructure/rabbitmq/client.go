package rabbitmq

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"os"
	"time"
)

// Vhost is the fixed broker namespace every deployment publishes into. It is
// deliberately not configurable; provisioning and publishing must agree on it.
const Vhost = "zyzyva"

const (
	DefaultPort     = 15672
	DefaultAMQPPort = 5672

	defaultUsername = "guest"
	defaultPassword = "guest"

	httpTimeout = 30 * time.Second
)

// Client talks to the RabbitMQ management HTTP API. The send path holds no
// AMQP connection at all, so there is nothing to pool or reconnect.
type Client struct {
	httpClient *http.Client
	baseURL    string
	username   string
	password   string
}

// NewClient creates a management API client. Host and port are interpolated
// into the base URL as given; empty credentials fall back to the
// RABBITMQ_USERNAME and RABBITMQ_PASSWORD environment variables, then to
// guest/guest.
func NewClient(host string, port int, username, password string) *Client {
	if port == 0 {
		port = DefaultPort
	}
	if username == "" {
		username = envOr("RABBITMQ_USERNAME", defaultUsername)
	}
	if password == "" {
		password = envOr("RABBITMQ_PASSWORD", defaultPassword)
	}

	return &Client{
		httpClient: &http.Client{Timeout: httpTimeout},
		baseURL:    fmt.Sprintf("http://%s:%d", host, port),
		username:   username,
		password:   password,
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// post sends an authenticated JSON request to the management API and returns
// the raw response for the caller to classify.
func (c *Client) post(ctx context.Context, path string, body []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.username, c.password)

	return c.httpClient.Do(req)
}
