// Package yahoo fetches the current price and shares outstanding for a
// traded symbol from the Yahoo Finance quote-summary endpoint.
package yahoo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/finsight/zscore-service/internal/core/domain"
	"github.com/finsight/zscore-service/internal/infrastructure/resilience"
)

const quoteModules = "price,defaultKeyStatistics"

type Config struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
}

type Client struct {
	cfg        Config
	httpClient *http.Client
	executor   *resilience.Executor
}

func New(cfg Config, executor *resilience.Executor) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		executor:   executor,
	}
}

func (c *Client) Quote(ctx context.Context, symbol string) (*domain.Quote, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return nil, domain.WrapError(domain.ErrInvalidInput, "fetch quote", errors.New("symbol is required"))
	}

	endpoint := fmt.Sprintf("%s/v10/finance/quoteSummary/%s?modules=%s",
		c.cfg.BaseURL, url.PathEscape(symbol), quoteModules)

	body, err := c.get(ctx, endpoint)
	if err != nil {
		if statusCode(err) == http.StatusNotFound {
			return nil, domain.WrapError(domain.ErrQuoteNotFound, "fetch quote", err)
		}
		return nil, wrapTemporaryIfNeeded("fetch quote", err)
	}

	result := gjson.GetBytes(body, "quoteSummary.result.0")
	if !result.Exists() {
		return nil, domain.WrapError(domain.ErrQuoteNotFound, "fetch quote",
			fmt.Errorf("no quote data for symbol %s", symbol))
	}

	price := firstRaw(result,
		"price.regularMarketPrice.raw",
		"price.currentPrice.raw",
	)
	shares := firstRaw(result,
		"defaultKeyStatistics.sharesOutstanding.raw",
		"defaultKeyStatistics.impliedSharesOutstanding.raw",
	)
	if price <= 0 || shares <= 0 {
		return nil, domain.WrapError(domain.ErrQuoteNotFound, "fetch quote",
			fmt.Errorf("incomplete quote data for symbol %s", symbol))
	}

	return &domain.Quote{
		Symbol:            symbol,
		Price:             price,
		SharesOutstanding: shares,
	}, nil
}

func firstRaw(result gjson.Result, paths ...string) float64 {
	for _, path := range paths {
		if v := result.Get(path); v.Exists() {
			return v.Float()
		}
	}
	return 0
}

func (c *Client) get(ctx context.Context, endpoint string) ([]byte, error) {
	var body []byte

	call := func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return fmt.Errorf("create quote request: %w", err)
		}
		req.Header.Set("User-Agent", c.cfg.UserAgent)
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("quote request: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 300 {
			limited, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
			return &httpStatusError{
				statusCode: resp.StatusCode,
				status:     resp.Status,
				body:       strings.TrimSpace(string(limited)),
			}
		}

		body, err = io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("read quote response: %w", err)
		}
		return nil
	}

	if c.executor != nil {
		if err := c.executor.Execute(ctx, "yahoo.quote", call, classifyQuoteError); err != nil {
			return nil, err
		}
		return body, nil
	}
	if err := call(ctx); err != nil {
		return nil, err
	}
	return body, nil
}
