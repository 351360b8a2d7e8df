package config

import (
	"log"
	"sync"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents an app config.
type Config struct {
	HTTP         HTTP
	PostgreSQL   PostgreSQL
	Logger       Logger
	APIClient    APIClient
	Telegram     Telegram
	Notification Notification
}

// HTTP represents a backend HTTP server configuration.
type HTTP struct {
	Address string `env:"BB_HTTP_ADDRESS" env-default:":8000"`
}

// PostgreSQL represents a PostgreSQL database configuration.
type PostgreSQL struct {
	User     string `env:"POSTGRES_USER" env-default:"busbooker"`
	Password string `env:"POSTGRES_PASSWORD" env-default:"busbooker"`
	Database string `env:"POSTGRES_DATABASE" env-default:"busbooker"`
	Host     string `env:"POSTGRES_HOST" env-default:"localhost"`
	Port     string `env:"POSTGRES_PORT" env-default:"5432"`
	SSLMode  string `env:"POSTGRES_SSL_MODE" env-default:"disable"`
}

// Logger represents a logger configuration.
type Logger struct {
	LogLevel        string `env:"BB_LOGGER_LOG_LEVEL" env-default:"debug"`
	LogFilename     string `env:"BB_LOGGER_LOG_FILENAME" env-default:""`
	PrettyLogOutput bool   `env:"BB_LOGGER_PRETTY_LOG_OUTPUT" env-default:"false"`
}

// APIClient represents a configuration of the client used to call the backend API.
type APIClient struct {
	BaseURL string `env:"BB_API_BASE_URL" env-default:"http://localhost:8000"`
}

// Telegram represents a configuration of the telegram notification sink.
// The sink is disabled when BotToken is empty.
type Telegram struct {
	BotToken string `env:"BB_TELEGRAM_BOT_TOKEN"`
	ChatID   int64  `env:"BB_TELEGRAM_CHAT_ID"`
}

// Notification represents a configuration of notification delivery to sinks.
type Notification struct {
	WorkersCount int `env:"BB_NOTIFICATION_WORKERS_COUNT" env-default:"2"`
	QueueSize    int `env:"BB_NOTIFICATION_QUEUE_SIZE" env-default:"100"`
}

var (
	config Config
	once   sync.Once
)

// Get returns a new config.
func Get() *Config {
	once.Do(func() {
		err := cleanenv.ReadEnv(&config)
		if err != nil {
			log.Fatalf("read env: %v", err)
		}
	})

	return &config
}
