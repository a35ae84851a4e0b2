package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	APIPort  string
	LogLevel string

	APIRateLimitRPS        float64
	APIRateLimitBurst      int
	APIMaxInFlight         int
	APIBackpressureTimeout time.Duration

	SECDataBaseURL  string
	SECWWWBaseURL   string
	SECUserAgent    string
	SECRateLimitRPS float64
	SECHTTPTimeout  time.Duration
	TickerCacheTTL  time.Duration

	QuoteBaseURL     string
	QuoteUserAgent   string
	QuoteHTTPTimeout time.Duration

	FilingCachePath    string
	FilingCacheEnabled bool

	ExtractPreserveSign bool
}

func Load() Config {
	return Config{
		APIPort:  mustEnv("API_PORT", "8080"),
		LogLevel: mustEnv("LOG_LEVEL", "info"),

		APIRateLimitRPS:        mustEnvFloat("API_RATE_LIMIT_RPS", 20),
		APIRateLimitBurst:      mustEnvInt("API_RATE_LIMIT_BURST", 40),
		APIMaxInFlight:         mustEnvInt("API_MAX_IN_FLIGHT", 64),
		APIBackpressureTimeout: mustEnvDuration("API_BACKPRESSURE_TIMEOUT", 50*time.Millisecond),

		SECDataBaseURL: mustEnv("SEC_DATA_BASE_URL", "https://data.sec.gov"),
		SECWWWBaseURL:  mustEnv("SEC_WWW_BASE_URL", "https://www.sec.gov"),
		// SEC fair-use policy requires a descriptive User-Agent with a
		// contact address.
		SECUserAgent:    mustEnv("SEC_USER_AGENT", "zscore-service/1.0 (contact@finsight.dev)"),
		SECRateLimitRPS: mustEnvFloat("SEC_RATE_LIMIT_RPS", 10),
		SECHTTPTimeout:  mustEnvDuration("SEC_HTTP_TIMEOUT", 30*time.Second),
		TickerCacheTTL:  mustEnvDuration("TICKER_CACHE_TTL", 24*time.Hour),

		QuoteBaseURL:     mustEnv("QUOTE_BASE_URL", "https://query1.finance.yahoo.com"),
		QuoteUserAgent:   mustEnv("QUOTE_USER_AGENT", "Mozilla/5.0 (compatible; zscore-service/1.0)"),
		QuoteHTTPTimeout: mustEnvDuration("QUOTE_HTTP_TIMEOUT", 10*time.Second),

		FilingCachePath:    mustEnv("FILING_CACHE_PATH", "./data/filings"),
		FilingCacheEnabled: mustEnvBool("FILING_CACHE_ENABLED", true),

		ExtractPreserveSign: mustEnvBool("EXTRACT_PRESERVE_SIGN", false),
	}
}

func mustEnv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

func mustEnvInt(key string, fallback int) int {
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

func mustEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

func mustEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func mustEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
