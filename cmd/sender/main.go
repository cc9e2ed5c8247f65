package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/zyzyva/mailqueue/internal/client"
	"github.com/zyzyva/mailqueue/internal/config"
	"github.com/zyzyva/mailqueue/internal/core/port"
	"github.com/zyzyva/mailqueue/internal/core/service"
	"github.com/zyzyva/mailqueue/internal/infrastructure/rabbitmq"
	"github.com/zyzyva/mailqueue/internal/server"
)

func main() {
	configPath := flag.String("config", "", "optional YAML config file")
	flag.Parse()

	// Initialize logger
	log.SetFormatter(&log.JSONFormatter{})

	// Load configuration (environment wins over file)
	cfg := loadConfig(*configPath)
	log.SetLevel(cfg.LogrusLevel())

	// Wire the publisher
	var publisher port.MessagePublisher
	switch cfg.Broker.PublisherDriver {
	case config.DriverLog:
		publisher = client.NewLogPublisher()
		log.Warn("Using the log publisher, no message will reach the broker")
	default:
		rabbitClient := rabbitmq.NewClient(cfg.Broker.Host, cfg.Broker.Port, cfg.Broker.Username, cfg.Broker.Password)
		publisher = client.NewQueuePublisher(rabbitmq.NewPublisher(rabbitClient), cfg.Broker.Queue)
	}

	mailerService := service.NewMailerService(publisher, service.MessageDefaults{
		ServiceName: cfg.Message.ServiceName,
		DefaultType: cfg.Message.DefaultType,
		DefaultFrom: cfg.Message.DefaultFrom,
		SenderName:  cfg.Message.SenderName,
	})

	// Create HTTP server
	httpServer := server.NewHTTPServer(mailerService)

	// Start HTTP server in a goroutine
	go func() {
		if err := httpServer.Start(cfg.HTTP.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()

	log.WithFields(log.Fields{
		"queue": cfg.Broker.Queue,
		"vhost": rabbitmq.Vhost,
	}).Info("Sender service started successfully")

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Info("Shutting down sender service...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Error shutting down HTTP server: %v", err)
	}
}

func loadConfig(path string) *config.Config {
	if path == "" {
		return config.Load()
	}

	cfg, err := config.LoadFromFile(path)
	if err != nil {
		log.Fatalf("Failed to load config file: %v", err)
	}
	return cfg
}
