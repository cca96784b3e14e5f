package config

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"
	_ "time/tzdata" // store time zones must resolve without a system zoneinfo

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/pflag"
)

// Config stores service settings.
type Config struct {
	Port      int `envconfig:"PORT" default:"8080"`
	DB        DB
	Kafka     Kafka
	Redis     Redis
	Firebase  Firebase
	SMS       SMSGateway
	Maps      Maps
	Auth      Auth
	Dispatch  Dispatch
	RateLimit RateLimit
	Log       Log
	Debug     Debug
}

// DB is the Postgres connection settings.
type DB struct {
	Host string `envconfig:"POSTGRES_HOST" default:"127.0.0.1"`
	Port string `envconfig:"POSTGRES_PORT" default:"5432"`
	User string `envconfig:"POSTGRES_USER" default:"myuser"`
	Pass string `envconfig:"POSTGRES_PASSWORD" default:"mypassword"`
	Name string `envconfig:"POSTGRES_DB" default:"dispatch_db"`
}

// DSN returns a postgres:// connection string.
func (d DB) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Pass),
		Host:     d.Host + ":" + d.Port,
		Path:     d.Name,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

// Kafka holds broker and topic settings.
type Kafka struct {
	Brokers            []string `envconfig:"KAFKA_BROKERS" default:"localhost:9092"`
	GroupID            string   `envconfig:"KAFKA_GROUP_ID" default:"delivery-dispatch"`
	OrderEventsTopic   string   `envconfig:"KAFKA_ORDER_EVENTS_TOPIC" default:"order.status.changed"`
	NotificationsTopic string   `envconfig:"KAFKA_NOTIFICATIONS_TOPIC" default:"store.notifications"`
}

// Redis holds cache and lock settings.
type Redis struct {
	Addr       string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password   string        `envconfig:"REDIS_PASSWORD"`
	DB         int           `envconfig:"REDIS_DB" default:"0"`
	DriverLock bool          `envconfig:"REDIS_DRIVER_LOCK" default:"false"`
	LockTTL    time.Duration `envconfig:"REDIS_LOCK_TTL" default:"10s"`
	GeocodeTTL time.Duration `envconfig:"REDIS_GEOCODE_TTL" default:"168h"`
}

// Firebase holds push settings. Push is disabled without a credentials file.
type Firebase struct {
	ProjectID       string `envconfig:"FIREBASE_PROJECT_ID"`
	CredentialsFile string `envconfig:"FIREBASE_CREDENTIALS_FILE"`
}

// Enabled reports whether push is configured.
func (f Firebase) Enabled() bool { return f.CredentialsFile != "" }

// SMSGateway holds the customer SMS gateway settings.
type SMSGateway struct {
	BaseURL     string        `envconfig:"SMS_BASE_URL"`
	APIKey      string        `envconfig:"SMS_API_KEY"`
	Sender      string        `envconfig:"SMS_SENDER" default:"DISPATCH"`
	TrackingURL string        `envconfig:"SMS_TRACKING_URL" default:"https://track.example.mn/d/"`
	Timeout     time.Duration `envconfig:"SMS_TIMEOUT" default:"5s"`
	MaxAttempts int           `envconfig:"SMS_MAX_ATTEMPTS" default:"3"`
	BaseDelay   time.Duration `envconfig:"SMS_BASE_DELAY" default:"200ms"`
	MaxDelay    time.Duration `envconfig:"SMS_MAX_DELAY" default:"2s"`
}

// Enabled reports whether SMS is configured.
func (s SMSGateway) Enabled() bool { return s.BaseURL != "" }

// Maps holds Google Maps settings. Geocoding is disabled without a key.
type Maps struct {
	APIKey string `envconfig:"GOOGLE_MAPS_API_KEY"`
	Region string `envconfig:"GOOGLE_MAPS_REGION" default:"mn"`
}

// Auth holds token verification settings.
type Auth struct {
	JWTSecret string `envconfig:"JWT_SECRET"`
	Issuer    string `envconfig:"JWT_ISSUER"`
}

// Dispatch holds core timing settings.
type Dispatch struct {
	OperationTimeout time.Duration `envconfig:"DISPATCH_OPERATION_TIMEOUT" default:"3s"`
	NotifyTimeout    time.Duration `envconfig:"DISPATCH_NOTIFY_TIMEOUT" default:"10s"`
	DefaultTimeZone  string        `envconfig:"DISPATCH_DEFAULT_TIMEZONE" default:"Asia/Ulaanbaatar"`
}

// RateLimit holds token bucket settings. Webhook limits apply to provider callbacks, which arrive in batches.
type RateLimit struct {
	Enabled      bool          `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
	Rate         float64       `envconfig:"RATE_LIMIT_RATE" default:"5"`
	Burst        int           `envconfig:"RATE_LIMIT_BURST" default:"10"`
	WebhookRate  float64       `envconfig:"RATE_LIMIT_WEBHOOK_RATE" default:"20"`
	WebhookBurst int           `envconfig:"RATE_LIMIT_WEBHOOK_BURST" default:"50"`
	TTL          time.Duration `envconfig:"RATE_LIMIT_TTL" default:"10m"`
	MaxBuckets   int           `envconfig:"RATE_LIMIT_MAX_BUCKETS" default:"10000"`
}

// Debug holds the private pprof/metrics listener. Empty Addr disables it.
type Debug struct {
	Addr string `envconfig:"DEBUG_ADDR"`
	User string `envconfig:"DEBUG_USER"`
	Pass string `envconfig:"DEBUG_PASSWORD"`
}

// Log holds logger settings.
type Log struct {
	Level   string `envconfig:"LOG_LEVEL" default:"info"`
	Backend string `envconfig:"LOG_BACKEND" default:"slog"`
}

// Load reads configuration in order: .env (if present) → environment → flags.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("warning: .env not loaded: %v", err)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	fs := pflag.NewFlagSet(os.Args[0], pflag.ContinueOnError)
	// go test and other wrappers pass their own flags
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.IntVarP(&cfg.Port, "port", "p", cfg.Port, "port to listen on")
	if err := fs.Parse(os.Args[1:]); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if _, err := time.LoadLocation(c.Dispatch.DefaultTimeZone); err != nil {
		return fmt.Errorf("invalid default time zone %q: %w", c.Dispatch.DefaultTimeZone, err)
	}
	if c.Dispatch.OperationTimeout <= 0 {
		return fmt.Errorf("invalid dispatch operation timeout: %s", c.Dispatch.OperationTimeout)
	}
	switch strings.ToLower(c.Log.Backend) {
	case "slog", "zerolog":
	default:
		return fmt.Errorf("invalid log backend: %q", c.Log.Backend)
	}
	if c.RateLimit.Enabled && (c.RateLimit.Rate <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("invalid rate limit: rate=%v burst=%d", c.RateLimit.Rate, c.RateLimit.Burst)
	}
	if c.RateLimit.Enabled && (c.RateLimit.WebhookRate <= 0 || c.RateLimit.WebhookBurst <= 0) {
		return fmt.Errorf("invalid webhook rate limit: rate=%v burst=%d", c.RateLimit.WebhookRate, c.RateLimit.WebhookBurst)
	}
	if c.SMS.MaxAttempts < 1 {
		return fmt.Errorf("invalid sms max attempts: %d", c.SMS.MaxAttempts)
	}
	return nil
}
