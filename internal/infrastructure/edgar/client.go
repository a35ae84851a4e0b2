// Package edgar talks to the SEC EDGAR endpoints: the ticker directory for
// identifier resolution and the submissions/archives endpoints for locating
// and fetching quarterly filings.
package edgar

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"golang.org/x/time/rate"

	"github.com/finsight/zscore-service/internal/core/domain"
	"github.com/finsight/zscore-service/internal/core/ports"
	"github.com/finsight/zscore-service/internal/infrastructure/markup"
	"github.com/finsight/zscore-service/internal/infrastructure/resilience"
)

const quarterlyForm = "10-Q"

type Config struct {
	// DataBaseURL hosts the submissions API (data.sec.gov).
	DataBaseURL string
	// WWWBaseURL hosts the ticker directory and the filing archives (www.sec.gov).
	WWWBaseURL string
	// UserAgent is mandatory; EDGAR rejects anonymous clients.
	UserAgent string
	// RateLimitRPS caps outbound request rate (SEC fair-use guideline is 10/s).
	RateLimitRPS float64
	Timeout      time.Duration
}

type Client struct {
	cfg        Config
	httpClient *http.Client
	limiter    *rate.Limiter
	executor   *resilience.Executor
	cache      ports.FilingCache
}

func NewClient(cfg Config, executor *resilience.Executor, cache ports.FilingCache) *Client {
	if cfg.RateLimitRPS <= 0 {
		cfg.RateLimitRPS = 10
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	cfg.DataBaseURL = strings.TrimRight(cfg.DataBaseURL, "/")
	cfg.WWWBaseURL = strings.TrimRight(cfg.WWWBaseURL, "/")

	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		limiter:    rate.NewLimiter(rate.Limit(cfg.RateLimitRPS), 1),
		executor:   executor,
		cache:      cache,
	}
}

// LatestFiling walks the issuer's recent submissions from most recent to
// oldest, picks the first 10-Q, fetches its archive document, and returns the
// flattened text.
func (c *Client) LatestFiling(ctx context.Context, cik string) (*domain.Filing, error) {
	cik = ZeroPadCIK(cik)

	body, err := c.get(ctx, c.cfg.DataBaseURL+"/submissions/CIK"+cik+".json", "edgar.submissions")
	if err != nil {
		if statusCode(err) == http.StatusNotFound {
			return nil, domain.WrapError(domain.ErrFilingNotFound, "fetch submissions", err)
		}
		return nil, wrapTemporaryIfNeeded("fetch submissions", err)
	}

	forms := gjson.GetBytes(body, "filings.recent.form").Array()
	dates := gjson.GetBytes(body, "filings.recent.filingDate").Array()
	accessions := gjson.GetBytes(body, "filings.recent.accessionNumber").Array()

	// Index 0 is the most recent submission; the first 10-Q hit wins.
	for i := 0; i < len(forms) && i < len(dates) && i < len(accessions); i++ {
		if forms[i].String() != quarterlyForm {
			continue
		}

		accession := accessions[i].String()
		text, err := c.filingText(ctx, cik, accession)
		if err != nil {
			return nil, err
		}
		return &domain.Filing{
			CIK:             cik,
			AccessionNumber: accession,
			Form:            quarterlyForm,
			FilingDate:      dates[i].String(),
			DocumentText:    text,
		}, nil
	}

	return nil, domain.WrapError(domain.ErrFilingNotFound, "scan submissions",
		fmt.Errorf("no %s filing on record for CIK %s", quarterlyForm, cik))
}

func (c *Client) filingText(ctx context.Context, cik, accession string) (string, error) {
	if c.cache != nil {
		if text, ok := c.cache.Load(ctx, accession); ok {
			return text, nil
		}
	}

	// Archive layout: un-dashed accession directory, dashed accession file.
	dir := strings.ReplaceAll(accession, "-", "")
	url := fmt.Sprintf("%s/Archives/edgar/data/%s/%s/%s.txt", c.cfg.WWWBaseURL, trimCIK(cik), dir, accession)

	body, err := c.get(ctx, url, "edgar.archives")
	if err != nil {
		if statusCode(err) == http.StatusNotFound {
			return "", domain.WrapError(domain.ErrFilingNotFound, "fetch filing document", err)
		}
		return "", wrapTemporaryIfNeeded("fetch filing document", err)
	}

	text, err := markup.Flatten(string(body))
	if err != nil {
		return "", fmt.Errorf("flatten filing %s: %w", accession, err)
	}

	if c.cache != nil {
		if err := c.cache.Store(ctx, accession, text); err != nil {
			slog.Warn("filing_cache_store_failed", "accession", accession, "error", err)
		}
	}
	return text, nil
}

// get performs one rate-limited GET through the resilience executor.
func (c *Client) get(ctx context.Context, url, operation string) ([]byte, error) {
	var body []byte

	call := func(ctx context.Context) error {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return fmt.Errorf("create %s request: %w", operation, err)
		}
		req.Header.Set("User-Agent", c.cfg.UserAgent)
		req.Header.Set("Accept-Encoding", "gzip, deflate")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("%s request: %w", operation, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 300 {
			return newHTTPStatusError(operation, resp)
		}

		body, err = io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("read %s response: %w", operation, err)
		}
		return nil
	}

	if c.executor != nil {
		if err := c.executor.Execute(ctx, operation, call, classifyHTTPError); err != nil {
			return nil, err
		}
		return body, nil
	}
	if err := call(ctx); err != nil {
		return nil, err
	}
	return body, nil
}

// ZeroPadCIK pads a CIK to the canonical 10 digits.
func ZeroPadCIK(cik string) string {
	cik = strings.TrimSpace(cik)
	if len(cik) >= 10 {
		return cik
	}
	return strings.Repeat("0", 10-len(cik)) + cik
}

func trimCIK(cik string) string {
	trimmed := strings.TrimLeft(cik, "0")
	if trimmed == "" {
		return "0"
	}
	return trimmed
}
