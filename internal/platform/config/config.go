package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	pstrings "plotdesk/pkg/platform/strings"
)

// Config captures process-wide configuration established at startup.
// Secrets (gateway key secret, SMTP password, admin token) live here and are
// never logged.
type Config struct {
	Addr        string
	PostgresURL string
	Redis       RedisConfig
	Razorpay    RazorpayConfig
	SMTP        SMTPConfig
	Kafka       KafkaConfig

	// AdminToken guards /admin routes. AdminTokenHash, when set, takes
	// precedence and is compared with bcrypt.
	AdminToken     string
	AdminTokenHash string
}

// RazorpayConfig holds the payment gateway credentials. KeySecret signs the
// checkout callback and must stay server-side.
type RazorpayConfig struct {
	KeyID     string
	KeySecret string
	BaseURL   string
	Timeout   time.Duration
}

// SMTPConfig holds the outbound mail settings.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	Timeout  time.Duration
}

// RedisConfig holds cache connection settings.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// KafkaConfig lists event brokers. Empty Brokers disables the Kafka
// publisher and events stay on the in-process worker.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// CatalogCacheTTL bounds staleness of cached project listings.
var CatalogCacheTTL = 5 * time.Minute

// FromEnv builds a Config from environment variables so main stays lean.
func FromEnv() Config {
	return Config{
		Addr:        envOr("PLOTDESK_ADDR", ":8080"),
		PostgresURL: os.Getenv("PLOTDESK_POSTGRES_URL"),
		Redis: RedisConfig{
			URL:          os.Getenv("PLOTDESK_REDIS_URL"),
			PoolSize:     envInt("PLOTDESK_REDIS_POOL_SIZE", 10),
			MinIdleConns: envInt("PLOTDESK_REDIS_MIN_IDLE", 2),
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		},
		Razorpay: RazorpayConfig{
			KeyID:     os.Getenv("RAZORPAY_KEY_ID"),
			KeySecret: os.Getenv("RAZORPAY_KEY_SECRET"),
			BaseURL:   envOr("RAZORPAY_BASE_URL", "https://api.razorpay.com"),
			Timeout:   10 * time.Second,
		},
		SMTP: SMTPConfig{
			Host:     os.Getenv("SMTP_HOST"),
			Port:     envInt("SMTP_PORT", 587),
			Username: os.Getenv("SMTP_USERNAME"),
			Password: os.Getenv("SMTP_PASSWORD"),
			From:     envOr("SMTP_FROM", "no-reply@plotdesk.local"),
			Timeout:  10 * time.Second,
		},
		Kafka: KafkaConfig{
			Brokers: splitNonEmpty(os.Getenv("PLOTDESK_KAFKA_BROKERS")),
			Topic:   envOr("PLOTDESK_KAFKA_TOPIC", "plotdesk.events"),
		},
		AdminToken:     os.Getenv("PLOTDESK_ADMIN_TOKEN"),
		AdminTokenHash: os.Getenv("PLOTDESK_ADMIN_TOKEN_HASH"),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func splitNonEmpty(raw string) []string {
	if raw == "" {
		return nil
	}
	return pstrings.DedupeAndTrim(strings.Split(raw, ","))
}
