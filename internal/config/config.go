package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	DriverRabbitMQ = "rabbitmq"
	DriverLog      = "log"
)

type Config struct {
	Broker  BrokerConfig  `yaml:"broker"`
	Message MessageConfig `yaml:"message"`
	HTTP    HTTPConfig    `yaml:"http"`
	Log     LogConfig     `yaml:"log"`
}

// BrokerConfig locates the RabbitMQ deployment. Host is passed through into
// URLs untouched; a broken value surfaces from the transport, not from here.
// There is deliberately no vhost field.
type BrokerConfig struct {
	Host            string `yaml:"host"`
	Port            int    `yaml:"port"`
	AMQPPort        int    `yaml:"amqp_port"`
	Queue           string `yaml:"queue"`
	Username        string `yaml:"username"`
	Password        string `yaml:"password"`
	PublisherDriver string `yaml:"publisher_driver"`
}

type MessageConfig struct {
	ServiceName string `yaml:"service_name"`
	DefaultType string `yaml:"default_type"`
	DefaultFrom string `yaml:"default_from"`
	SenderName  string `yaml:"sender_name"`
}

type HTTPConfig struct {
	Addr string `yaml:"addr"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Load reads configuration from the environment on top of the defaults. A
// .env file in the working directory is honored when present. Malformed
// values degrade to their defaults instead of failing startup.
func Load() *Config {
	// A missing .env is the normal case outside local development
	_ = godotenv.Load()

	cfg := defaults()
	cfg.applyEnv()
	return cfg
}

// LoadFromFile layers a YAML file between the defaults and the environment;
// environment variables always win.
func LoadFromFile(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyEnv()
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Broker: BrokerConfig{
			Host:            "localhost",
			Port:            15672,
			AMQPPort:        5672,
			Queue:           "emails",
			Username:        "guest",
			Password:        "guest",
			PublisherDriver: DriverRabbitMQ,
		},
		Message: MessageConfig{
			DefaultType: "transactional",
		},
		HTTP: HTTPConfig{
			Addr: ":8080",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

func (c *Config) applyEnv() {
	setString(&c.Broker.Host, "RABBITMQ_HOST")
	setInt(&c.Broker.Port, "RABBITMQ_PORT")
	setInt(&c.Broker.AMQPPort, "RABBITMQ_AMQP_PORT")
	setString(&c.Broker.Queue, "RABBITMQ_QUEUE")
	setString(&c.Broker.Username, "RABBITMQ_USERNAME")
	setString(&c.Broker.Password, "RABBITMQ_PASSWORD")
	setString(&c.Broker.PublisherDriver, "PUBLISHER_DRIVER")
	setString(&c.Message.ServiceName, "SERVICE_NAME")
	setString(&c.Message.DefaultType, "DEFAULT_EMAIL_TYPE")
	setString(&c.Message.DefaultFrom, "DEFAULT_FROM")
	setString(&c.Message.SenderName, "SENDER_NAME")
	setString(&c.HTTP.Addr, "HTTP_ADDR")
	setString(&c.Log.Level, "LOG_LEVEL")

	if c.Broker.PublisherDriver != DriverRabbitMQ && c.Broker.PublisherDriver != DriverLog {
		log.Warnf("Unknown publisher driver %q, falling back to %q", c.Broker.PublisherDriver, DriverRabbitMQ)
		c.Broker.PublisherDriver = DriverRabbitMQ
	}
}

// LogrusLevel parses the configured level, degrading to info when it is not
// one logrus knows.
func (c *Config) LogrusLevel() log.Level {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		log.Warnf("Ignoring log level %q: %v", c.Log.Level, err)
		return log.InfoLevel
	}
	return level
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// setInt leaves the current value untouched when the variable is unset or not
// a number.
func setInt(dst *int, key string) {
	v := os.Getenv(key)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Warnf("Ignoring %s=%q: %v", key, v, err)
		return
	}
	*dst = n
}
