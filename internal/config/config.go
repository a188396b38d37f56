package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	DB     DBConfig
	S3     S3Config
	Log    LogConfig
	CORS   CORSConfig
	Queue  QueueConfig
	Email  EmailConfig
}

// EmailConfig holds email delivery settings.
type EmailConfig struct {
	Provider    string `mapstructure:"provider"`
	Region      string `mapstructure:"region"`
	FromAddress string `mapstructure:"from_address"`
	FromName    string `mapstructure:"from_name"`
	FrontendURL string `mapstructure:"frontend_url"`
}

// QueueConfig holds comparison queue worker settings.
type QueueConfig struct {
	PollIntervalSecs int `mapstructure:"poll_interval_secs"`
	MaxRetries       int `mapstructure:"max_retries"`
	Concurrency      int `mapstructure:"concurrency"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// S3Config holds AWS S3 settings.
type S3Config struct {
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	MaxFileSizeMB int64  `mapstructure:"max_file_size_mb"`
	PresignExpiry int64  `mapstructure:"presign_expiry"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from environment variables with the REDLINE_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("REDLINE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "redline")
	v.SetDefault("db.password", "redline_secret")
	v.SetDefault("db.name", "redline_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// S3 defaults
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.bucket", "redline-uploads")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.max_file_size_mb", 50)
	v.SetDefault("s3.presign_expiry", 3600)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000,http://localhost:3001,http://127.0.0.1:3001")

	// Queue defaults
	v.SetDefault("queue.poll_interval_secs", 10)
	v.SetDefault("queue.max_retries", 3)
	v.SetDefault("queue.concurrency", 5)

	// Email defaults
	v.SetDefault("email.provider", "noop")
	v.SetDefault("email.region", "us-east-1")
	v.SetDefault("email.from_address", "noreply@redline.local")
	v.SetDefault("email.from_name", "Redline")
	v.SetDefault("email.frontend_url", "http://localhost:3000")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":              "REDLINE_SERVER_PORT",
		"server.read_timeout":      "REDLINE_SERVER_READ_TIMEOUT",
		"server.write_timeout":     "REDLINE_SERVER_WRITE_TIMEOUT",
		"server.environment":       "REDLINE_SERVER_ENVIRONMENT",
		"db.host":                  "REDLINE_DB_HOST",
		"db.port":                  "REDLINE_DB_PORT",
		"db.user":                  "REDLINE_DB_USER",
		"db.password":              "REDLINE_DB_PASSWORD",
		"db.name":                  "REDLINE_DB_NAME",
		"db.sslmode":               "REDLINE_DB_SSLMODE",
		"db.max_open":              "REDLINE_DB_MAX_OPEN",
		"db.max_idle":              "REDLINE_DB_MAX_IDLE",
		"s3.region":                "REDLINE_S3_REGION",
		"s3.bucket":                "REDLINE_S3_BUCKET",
		"s3.endpoint":              "REDLINE_S3_ENDPOINT",
		"s3.access_key":            "REDLINE_S3_ACCESS_KEY",
		"s3.secret_key":            "REDLINE_S3_SECRET_KEY",
		"s3.max_file_size_mb":      "REDLINE_S3_MAX_FILE_SIZE_MB",
		"s3.presign_expiry":        "REDLINE_S3_PRESIGN_EXPIRY",
		"log.level":                "REDLINE_LOG_LEVEL",
		"log.format":               "REDLINE_LOG_FORMAT",
		"cors.allowed_origins":     "REDLINE_CORS_ALLOWED_ORIGINS",
		"queue.poll_interval_secs": "REDLINE_QUEUE_POLL_INTERVAL_SECS",
		"queue.max_retries":        "REDLINE_QUEUE_MAX_RETRIES",
		"queue.concurrency":        "REDLINE_QUEUE_CONCURRENCY",
		"email.provider":           "REDLINE_EMAIL_PROVIDER",
		"email.region":             "REDLINE_EMAIL_REGION",
		"email.from_address":       "REDLINE_EMAIL_FROM_ADDRESS",
		"email.from_name":          "REDLINE_EMAIL_FROM_NAME",
		"email.frontend_url":       "REDLINE_EMAIL_FRONTEND_URL",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if REDLINE_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("REDLINE_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.S3 = S3Config{
		Region:        v.GetString("s3.region"),
		Bucket:        v.GetString("s3.bucket"),
		Endpoint:      v.GetString("s3.endpoint"),
		AccessKey:     v.GetString("s3.access_key"),
		SecretKey:     v.GetString("s3.secret_key"),
		MaxFileSizeMB: v.GetInt64("s3.max_file_size_mb"),
		PresignExpiry: v.GetInt64("s3.presign_expiry"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	cfg.Queue = QueueConfig{
		PollIntervalSecs: v.GetInt("queue.poll_interval_secs"),
		MaxRetries:       v.GetInt("queue.max_retries"),
		Concurrency:      v.GetInt("queue.concurrency"),
	}

	cfg.Email = EmailConfig{
		Provider:    v.GetString("email.provider"),
		Region:      v.GetString("email.region"),
		FromAddress: v.GetString("email.from_address"),
		FromName:    v.GetString("email.from_name"),
		FrontendURL: v.GetString("email.frontend_url"),
	}

	return cfg, nil
}
