package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Payments groups the settings for the payment initialization client.
type Payments struct {
	MaxRetries  int
	BackoffBase time.Duration
}

// SMTP groups the settings for the outgoing mail server.
type SMTP struct {
	Host     string
	Port     string
	Username string
	Password string
	Sender   string
}

// Config holds every runtime setting of the service. It is loaded once in
// main and passed into the clients that need it, there are no package-level
// URL or sender constants.
type Config struct {
	Port                string
	DatabaseURL         string
	StripeSecretKey     string
	StripeWebhookSecret string
	JWTSecret           string
	AdminEmail          string
	AdminPassword       string
	Payments            Payments
	SMTP                SMTP
}

func Load() Config {
	// A missing .env file is fine in production, the variables come from
	// the system environment there.
	godotenv.Load()

	return Config{
		Port:                getEnv("PORT", "8080"),
		DatabaseURL:         os.Getenv("DB_URL"),
		StripeSecretKey:     os.Getenv("STRIPE_SECRET_KEY"),
		StripeWebhookSecret: os.Getenv("STRIPE_WEBHOOK_SECRET"),
		JWTSecret:           os.Getenv("JWT_SECRET"),
		AdminEmail:          os.Getenv("ADMIN_EMAIL"),
		AdminPassword:       os.Getenv("ADMIN_PASSWORD"),
		Payments: Payments{
			MaxRetries:  getEnvInt("PAYMENT_MAX_RETRIES", 3),
			BackoffBase: time.Duration(getEnvInt("PAYMENT_BACKOFF_BASE_MS", 1000)) * time.Millisecond,
		},
		SMTP: SMTP{
			Host:     getEnv("SMTP_HOST", "smtp.gmail.com"),
			Port:     getEnv("SMTP_PORT", "587"),
			Username: os.Getenv("SMTP_USERNAME"),
			Password: os.Getenv("SMTP_PASSWORD"),
			Sender:   getEnv("SENDER_EMAIL", "support@kinscreen.com"),
		},
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
