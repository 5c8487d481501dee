package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	ServerPort int

	// PaymentDelay is how long the mocked registration payment step takes.
	PaymentDelay time.Duration

	// Cloudflare R2. When AccountID is empty the app falls back to the
	// in-memory uploader, so it boots without any cloud credentials.
	R2AccountID       string
	R2AccessKeyID     string
	R2SecretAccessKey string
	R2BucketName      string
	R2PublicBaseURL   string

	// Media base URL used by the in-memory uploader fallback.
	MediaBaseURL string

	// Completion-backed search. When empty, search uses the static
	// substring matcher over the same dataset.
	SearchEndpoint string
	SearchAPIKey   string
	SearchModel    string

	// SeedExtras adds generated filler posts on top of the fixed demo set.
	SeedExtras bool
}

// Load reads configuration from environment variables, optionally loading
// a .env file first.
func Load() (*Config, error) {
	_ = godotenv.Load()

	portStr := os.Getenv("SERVER_PORT")
	if portStr == "" {
		portStr = "8080"
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT environment variable: %w", err)
	}
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", port)
	}

	paymentDelayMs := 2000
	if raw := os.Getenv("PAYMENT_DELAY_MS"); raw != "" {
		paymentDelayMs, err = strconv.Atoi(raw)
		if err != nil || paymentDelayMs < 0 {
			return nil, fmt.Errorf("invalid PAYMENT_DELAY_MS environment variable: %q", raw)
		}
	}

	mediaBaseURL := os.Getenv("MEDIA_BASE_URL")
	if mediaBaseURL == "" {
		mediaBaseURL = fmt.Sprintf("http://localhost:%d/media", port)
	}

	cfg := &Config{
		ServerPort:        port,
		PaymentDelay:      time.Duration(paymentDelayMs) * time.Millisecond,
		R2AccountID:       os.Getenv("R2_ACCOUNT_ID"),
		R2AccessKeyID:     os.Getenv("R2_ACCESS_KEY_ID"),
		R2SecretAccessKey: os.Getenv("R2_SECRET_ACCESS_KEY"),
		R2BucketName:      os.Getenv("R2_BUCKET_NAME"),
		R2PublicBaseURL:   os.Getenv("R2_PUBLIC_BASE_URL"),
		MediaBaseURL:      mediaBaseURL,
		SearchEndpoint:    os.Getenv("SEARCH_ENDPOINT"),
		SearchAPIKey:      os.Getenv("SEARCH_API_KEY"),
		SearchModel:       os.Getenv("SEARCH_MODEL"),
		SeedExtras:        os.Getenv("SEED_EXTRAS") == "true",
	}

	return cfg, nil
}
