package config

import (
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func New() (*Config, error) {
	var Config Config
	if os.Getenv("GO_ENV") == "local" {
		if err := godotenv.Load(".env"); err != nil {
			logrus.Error("Error can't get the environment variables by file")
		}
	}

	if err := env.Parse(&Config); err != nil {
		logrus.Errorf("Error initializing: %s", err.Error())
		return nil, err
	}
	return &Config, nil
}

type Config struct {
	APP
	DB
	Kafka
	Pagarme
	Redis
}

type APP struct {
	PORT         string `env:"APP_PORT" envDefault:"8080"`
	TemplatesDir string `env:"APP_TEMPLATES_DIR"`
	SeedFile     string `env:"APP_SEED_FILE" envDefault:"seed.yaml"`
}

type DB struct {
	DRIVER   string `env:"DB_DRIVER" envDefault:"postgres"`
	HOST     string `env:"DB_HOST"`
	USER     string `env:"DB_USER"`
	PASSWORD string `env:"DB_PASSWORD"`
	NAME     string `env:"DB_NAME"`
	PORT     string `env:"DB_PORT"`
	SSLMODE  string `env:"DB_SSLMODE"`
}

type Kafka struct {
	Brokers               string `env:"KAFKA_BROKERS" envDefault:"localhost:9092"`
	CheckoutConsumerGroup string `env:"KAFKA_CHECKOUT_GROUP_ID" envDefault:"checkout-service"`
	PublishTopics         string `env:"KAFKA_PUBLISH_TOPICS" envDefault:"payments.captured,payments.status.changed,pagarme.postbacks,payments.dlq"`
	SubscriberTopics      string `env:"KAFKA_SUBSCRIBER_TOPICS" envDefault:"pagarme.postbacks"`

	RetryMaxAttempts int           `env:"KAFKA_RETRY_MAX_ATTEMPTS" envDefault:"5"`
	RetryBaseDelay   time.Duration `env:"KAFKA_RETRY_BASE_DELAY" envDefault:"100ms"`
	RetryMaxDelay    time.Duration `env:"KAFKA_RETRY_MAX_DELAY" envDefault:"10s"`
	RetryJitter      bool          `env:"KAFKA_RETRY_JITTER" envDefault:"true"`
}

type Pagarme struct {
	APIKey  string        `env:"PAGARME_API_KEY"`
	BaseURL string        `env:"PAGARME_BASE_URL" envDefault:"https://api.pagar.me/1"`
	Timeout time.Duration `env:"PAGARME_TIMEOUT" envDefault:"15s"`
}

// Redis is optional. An empty ADDR keeps capture locks inside the process.
type Redis struct {
	ADDR     string        `env:"REDIS_ADDR"`
	PASSWORD string        `env:"REDIS_PASSWORD"`
	LockTTL  time.Duration `env:"REDIS_LOCK_TTL" envDefault:"30s"`
}

type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	Jitter      bool
}

func (k Kafka) GetRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: k.RetryMaxAttempts,
		BaseDelay:   k.RetryBaseDelay,
		MaxDelay:    k.RetryMaxDelay,
		Jitter:      k.RetryJitter,
	}
}
