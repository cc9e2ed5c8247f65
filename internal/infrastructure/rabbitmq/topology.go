package rabbitmq

import (
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	log "github.com/sirupsen/logrus"
)

// Topology declares the queue layout inside the fixed vhost over AMQP. Only
// the provisioning tool uses it; the send path never opens an AMQP
// connection.
type Topology struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

// DialTopology opens an AMQP connection to the fixed vhost.
func DialTopology(host string, port int, username, password string) (*Topology, error) {
	if port == 0 {
		port = DefaultAMQPPort
	}
	if username == "" {
		username = envOr("RABBITMQ_USERNAME", defaultUsername)
	}
	if password == "" {
		password = envOr("RABBITMQ_PASSWORD", defaultPassword)
	}

	uri := amqp.URI{
		Scheme:   "amqp",
		Host:     host,
		Port:     port,
		Username: username,
		Password: password,
		Vhost:    Vhost,
	}

	conn, err := amqp.Dial(uri.String())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	log.WithField("vhost", Vhost).Info("AMQP connection established")

	return &Topology{conn: conn, channel: ch}, nil
}

// EnsureQueue declares the durable queue messages are routed into. Declaring
// an existing queue with identical attributes is a no-op on the broker, so
// this is safe to run repeatedly.
func (t *Topology) EnsureQueue(name string) error {
	_, err := t.channel.QueueDeclare(
		name,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to declare queue '%s': %w", name, err)
	}

	log.WithField("queue", name).Debug("Queue declared")
	return nil
}

// VerifyQueue checks that the queue exists without creating it. A failed
// passive declare closes the channel, so the topology is only good for
// reporting afterwards.
func (t *Topology) VerifyQueue(name string) error {
	_, err := t.channel.QueueDeclarePassive(
		name,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return fmt.Errorf("queue '%s' not provisioned: %w", name, err)
	}

	log.WithField("queue", name).Debug("Queue verified")
	return nil
}

// Close closes the channel and connection.
func (t *Topology) Close() error {
	var errs []error

	if t.channel != nil {
		if err := t.channel.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close channel: %w", err))
		}
	}

	if t.conn != nil {
		if err := t.conn.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close connection: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("errors during close: %v", errs)
	}

	return nil
}
