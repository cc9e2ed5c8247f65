package main

import (
	"flag"

	log "github.com/sirupsen/logrus"

	"github.com/zyzyva/mailqueue/internal/config"
	"github.com/zyzyva/mailqueue/internal/infrastructure/rabbitmq"
)

// provision writes the broker manifest a deployment needs and, on request,
// declares or verifies the queue topology inside the fixed vhost. It is a
// one-shot tool; the sender itself never declares topology.
func main() {
	var (
		out          = flag.String("out", "", "write the broker manifest to this path")
		manifestPath = flag.String("manifest", "", "provision from an existing manifest instead of configuration")
		apply        = flag.Bool("apply", false, "declare the queue topology on the broker")
		check        = flag.Bool("check", false, "verify the queue exists without declaring it")
	)
	flag.Parse()

	cfg := config.Load()
	log.SetLevel(cfg.LogrusLevel())

	serviceName := cfg.Message.ServiceName
	if serviceName == "" {
		serviceName = "zyzyva"
	}

	manifest := rabbitmq.NewManifest(serviceName, cfg.Broker.Queue, cfg.Broker.Username)
	if *manifestPath != "" {
		loaded, err := rabbitmq.LoadManifest(*manifestPath)
		if err != nil {
			log.Fatalf("Failed to load manifest: %v", err)
		}
		manifest = loaded
	}

	if *out != "" {
		if err := manifest.Write(*out); err != nil {
			log.Fatalf("Failed to write manifest: %v", err)
		}
		log.WithField("path", *out).Info("Manifest written")
	}

	if !*apply && !*check {
		return
	}

	topology, err := rabbitmq.DialTopology(cfg.Broker.Host, cfg.Broker.AMQPPort, cfg.Broker.Username, cfg.Broker.Password)
	if err != nil {
		log.Fatalf("Failed to connect to RabbitMQ: %v", err)
	}
	defer topology.Close()

	if *apply {
		if err := topology.EnsureQueue(manifest.Queue); err != nil {
			log.Fatalf("Failed to declare queue: %v", err)
		}
		log.WithFields(log.Fields{
			"queue": manifest.Queue,
			"vhost": manifest.Vhost,
		}).Info("Queue provisioned")
	}

	if *check {
		if err := topology.VerifyQueue(manifest.Queue); err != nil {
			log.Fatalf("Queue check failed: %v", err)
		}
		log.WithField("queue", manifest.Queue).Info("Queue exists")
	}
}
