package edgar

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/tidwall/gjson"

	"github.com/finsight/zscore-service/internal/core/domain"
)

// TickerDirectory resolves free-text company identifiers against the SEC
// ticker directory (company_tickers.json). The directory is a few megabytes
// and changes rarely, so it is cached in memory for a configurable TTL.
type TickerDirectory struct {
	client *Client
	ttl    time.Duration

	mu        sync.Mutex
	fetchedAt time.Time
	entries   []tickerEntry
}

type tickerEntry struct {
	cik    string
	ticker string
	title  string
}

func NewTickerDirectory(client *Client, ttl time.Duration) *TickerDirectory {
	return &TickerDirectory{client: client, ttl: ttl}
}

// Resolve matches by exact ticker equality (case-insensitive) first, then by
// substring containment of the company name in either direction.
func (d *TickerDirectory) Resolve(ctx context.Context, identifier string) (*domain.CompanyIdentity, error) {
	identifier = strings.TrimSpace(identifier)

	entries, err := d.directory(ctx)
	if err != nil {
		return nil, err
	}

	upper := strings.ToUpper(identifier)
	for _, entry := range entries {
		if entry.ticker == upper {
			return identity(entry), nil
		}
	}

	lower := strings.ToLower(identifier)
	for _, entry := range entries {
		title := strings.ToLower(entry.title)
		if title == "" {
			continue
		}
		if strings.Contains(title, lower) || strings.Contains(lower, title) {
			return identity(entry), nil
		}
	}

	return nil, domain.WrapError(domain.ErrCompanyNotFound, "resolve identifier",
		&notInDirectoryError{identifier: identifier})
}

type notInDirectoryError struct {
	identifier string
}

func (e *notInDirectoryError) Error() string {
	return "no ticker directory entry matches " + e.identifier
}

func identity(entry tickerEntry) *domain.CompanyIdentity {
	return &domain.CompanyIdentity{
		CIK:    entry.cik,
		Ticker: entry.ticker,
		Name:   entry.title,
	}
}

func (d *TickerDirectory) directory(ctx context.Context) ([]tickerEntry, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.entries != nil && (d.ttl <= 0 || time.Since(d.fetchedAt) < d.ttl) {
		return d.entries, nil
	}

	body, err := d.client.get(ctx, d.client.cfg.WWWBaseURL+"/files/company_tickers.json", "edgar.tickers")
	if err != nil {
		if statusCode(err) == http.StatusNotFound {
			return nil, domain.WrapError(domain.ErrCompanyNotFound, "fetch ticker directory", err)
		}
		return nil, wrapTemporaryIfNeeded("fetch ticker directory", err)
	}

	var entries []tickerEntry
	gjson.ParseBytes(body).ForEach(func(_, value gjson.Result) bool {
		entries = append(entries, tickerEntry{
			cik:    ZeroPadCIK(value.Get("cik_str").String()),
			ticker: strings.ToUpper(value.Get("ticker").String()),
			title:  value.Get("title").String(),
		})
		return true
	})

	d.entries = entries
	d.fetchedAt = time.Now()
	return entries, nil
}
