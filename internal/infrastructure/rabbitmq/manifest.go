package rabbitmq

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Manifest describes the broker namespace a deployment needs: the fixed
// vhost, the queue it publishes into and the permissions its user requires.
// Provisioning tooling consumes this file; the send path never reads it.
type Manifest struct {
	Service     string      `json:"service" validate:"required"`
	Vhost       string      `json:"vhost" validate:"required"`
	Queue       string      `json:"queue" validate:"required"`
	Username    string      `json:"username" validate:"required"`
	Permissions Permissions `json:"permissions"`
}

// Permissions hold RabbitMQ permission patterns. Publishing through the
// default exchange only needs write access to amq.default; the adapter never
// configures or consumes.
type Permissions struct {
	Configure string `json:"configure"`
	Write     string `json:"write"`
	Read      string `json:"read"`
}

// NewManifest stamps the fixed vhost; service, queue and username come from
// configuration.
func NewManifest(service, queue, username string) Manifest {
	return Manifest{
		Service:  service,
		Vhost:    Vhost,
		Queue:    queue,
		Username: username,
		Permissions: Permissions{
			Configure: "^$",
			Write:     `^amq\.default$`,
			Read:      "^$",
		},
	}
}

// Write renders the manifest as indented JSON.
func (m Manifest) Write(path string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	return nil
}

// LoadManifest reads and validates a manifest file.
func LoadManifest(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("failed to read manifest: %w", err)
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("failed to parse manifest: %w", err)
	}

	if err := validate.Struct(m); err != nil {
		return Manifest{}, fmt.Errorf("invalid manifest: %w", err)
	}

	return m, nil
}
