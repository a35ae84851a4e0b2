package config

import (
	"testing"
	"time"
)

func TestLoadIncludesUpstreamDefaults(t *testing.T) {
	t.Setenv("SEC_DATA_BASE_URL", "")
	t.Setenv("SEC_RATE_LIMIT_RPS", "")
	t.Setenv("TICKER_CACHE_TTL", "")
	t.Setenv("FILING_CACHE_ENABLED", "")
	t.Setenv("EXTRACT_PRESERVE_SIGN", "")

	cfg := Load()
	if cfg.SECDataBaseURL != "https://data.sec.gov" {
		t.Fatalf("expected default SEC data base url, got %q", cfg.SECDataBaseURL)
	}
	if cfg.SECRateLimitRPS != 10 {
		t.Fatalf("expected default SEC rate limit 10, got %v", cfg.SECRateLimitRPS)
	}
	if cfg.TickerCacheTTL != 24*time.Hour {
		t.Fatalf("expected default ticker cache ttl 24h, got %v", cfg.TickerCacheTTL)
	}
	if !cfg.FilingCacheEnabled {
		t.Fatalf("expected filing cache enabled by default")
	}
	if cfg.ExtractPreserveSign {
		t.Fatalf("expected sign preservation disabled by default")
	}
}

func TestLoadParsesOverrides(t *testing.T) {
	t.Setenv("API_PORT", "9999")
	t.Setenv("SEC_RATE_LIMIT_RPS", "2.5")
	t.Setenv("SEC_HTTP_TIMEOUT", "5s")
	t.Setenv("FILING_CACHE_ENABLED", "false")
	t.Setenv("EXTRACT_PRESERVE_SIGN", "true")

	cfg := Load()
	if cfg.APIPort != "9999" {
		t.Fatalf("expected api port override, got %q", cfg.APIPort)
	}
	if cfg.SECRateLimitRPS != 2.5 {
		t.Fatalf("expected SEC rate limit 2.5, got %v", cfg.SECRateLimitRPS)
	}
	if cfg.SECHTTPTimeout != 5*time.Second {
		t.Fatalf("expected SEC timeout 5s, got %v", cfg.SECHTTPTimeout)
	}
	if cfg.FilingCacheEnabled {
		t.Fatalf("expected filing cache disabled")
	}
	if !cfg.ExtractPreserveSign {
		t.Fatalf("expected sign preservation enabled")
	}
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("SEC_RATE_LIMIT_RPS", "fast")
	t.Setenv("SEC_HTTP_TIMEOUT", "soon")
	t.Setenv("API_RATE_LIMIT_BURST", "many")

	cfg := Load()
	if cfg.SECRateLimitRPS != 10 {
		t.Fatalf("expected fallback rate limit 10, got %v", cfg.SECRateLimitRPS)
	}
	if cfg.SECHTTPTimeout != 30*time.Second {
		t.Fatalf("expected fallback timeout 30s, got %v", cfg.SECHTTPTimeout)
	}
	if cfg.APIRateLimitBurst != 40 {
		t.Fatalf("expected fallback burst 40, got %d", cfg.APIRateLimitBurst)
	}
}
