package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server       ServerConfig
	Database     DatabaseConfig
	MongoDB      MongoConfig
	Notification NotificationConfig
	Store        StoreConfig
	Logging      LoggingConfig
}

// ServerConfig contains HTTP server configuration.
type ServerConfig struct {
	Port         string
	Host         string
	ReadTimeout  int // seconds
	WriteTimeout int // seconds
	Environment  string // development, staging, production
}

// DatabaseConfig contains the MySQL connection configuration for user accounts.
type DatabaseConfig struct {
	Host         string
	Port         string
	Username     string
	Password     string
	DatabaseName string
	MaxOpenConns int
	MaxIdleConns int
}

// MongoConfig configures the optional GridFS poster store.
type MongoConfig struct {
	URI      string
	Database string
	Enabled  bool
}

// NotificationConfig tunes the notification fan-out workers.
type NotificationConfig struct {
	Workers           int
	ChannelBufferSize int
}

// StoreConfig tunes the in-memory social stores.
type StoreConfig struct {
	// SimulatedLatency is applied at the start of every store operation to
	// model network latency, the way the original deployment did. Zero
	// disables it.
	SimulatedLatency time.Duration
}

type LoggingConfig struct {
	Level  string
	Format string
}

// LoadConfig reads .env (when present) plus process environment and fills in
// defaults for anything unset.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println(".env file not found, using system env variables")
	}

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", "0.0.0.0"),
			ReadTimeout:  getEnvInt("SERVER_READ_TIMEOUT", 15),
			WriteTimeout: getEnvInt("SERVER_WRITE_TIMEOUT", 15),
			Environment:  getEnv("ENVIRONMENT", "development"),
		},
		Database: DatabaseConfig{
			Host:         getEnv("DB_HOST", "localhost"),
			Port:         getEnv("DB_PORT", "3306"),
			Username:     getEnv("DB_USER", "cinecircle"),
			Password:     getEnv("DB_PASSWORD", "cinecircle123"),
			DatabaseName: getEnv("DB_NAME", "cinecircle"),
			MaxOpenConns: getEnvInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns: getEnvInt("DB_MAX_IDLE_CONNS", 5),
		},
		MongoDB: MongoConfig{
			URI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
			Database: getEnv("MONGO_DB", "cinecircle"),
			Enabled:  getEnvBool("MONGO_ENABLED", false),
		},
		Notification: NotificationConfig{
			Workers:           getEnvInt("NOTIF_WORKERS", 5),
			ChannelBufferSize: getEnvInt("NOTIF_CHANNEL_BUFFER", 1000),
		},
		Store: StoreConfig{
			SimulatedLatency: time.Duration(getEnvInt("STORE_LATENCY_MS", 0)) * time.Millisecond,
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "text"),
		},
	}
}

// DSN builds the MySQL connection string.
func (cfg *Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DatabaseName,
	)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		log.Printf("invalid value for %s, using default %d", key, fallback)
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
