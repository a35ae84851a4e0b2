// Package bootstrap assembles the scoring pipeline from configuration.
package bootstrap

import (
	"fmt"

	"github.com/finsight/zscore-service/internal/config"
	"github.com/finsight/zscore-service/internal/core/extract"
	"github.com/finsight/zscore-service/internal/core/ports"
	"github.com/finsight/zscore-service/internal/core/usecase"
	"github.com/finsight/zscore-service/internal/infrastructure/edgar"
	"github.com/finsight/zscore-service/internal/infrastructure/marketdata/yahoo"
	"github.com/finsight/zscore-service/internal/infrastructure/resilience"
	"github.com/finsight/zscore-service/internal/infrastructure/storage/localfs"
	"github.com/finsight/zscore-service/internal/observability/metrics"
)

type App struct {
	Config config.Config

	ZScoreUC ports.ZScoreService
	Metrics  *metrics.HTTPServerMetrics
}

func New(cfg config.Config) (*App, error) {
	executor := resilience.NewExecutor(resilience.DefaultConfig())

	var filingCache ports.FilingCache
	if cfg.FilingCacheEnabled {
		cache, err := localfs.New(cfg.FilingCachePath)
		if err != nil {
			return nil, fmt.Errorf("init filing cache: %w", err)
		}
		filingCache = cache
	}

	edgarClient := edgar.NewClient(edgar.Config{
		DataBaseURL:  cfg.SECDataBaseURL,
		WWWBaseURL:   cfg.SECWWWBaseURL,
		UserAgent:    cfg.SECUserAgent,
		RateLimitRPS: cfg.SECRateLimitRPS,
		Timeout:      cfg.SECHTTPTimeout,
	}, executor, filingCache)
	tickers := edgar.NewTickerDirectory(edgarClient, cfg.TickerCacheTTL)

	quotes := yahoo.New(yahoo.Config{
		BaseURL:   cfg.QuoteBaseURL,
		UserAgent: cfg.QuoteUserAgent,
		Timeout:   cfg.QuoteHTTPTimeout,
	}, executor)

	extractor := extract.New(extract.Options{
		PreserveSign: cfg.ExtractPreserveSign,
	})

	return &App{
		Config:   cfg,
		ZScoreUC: usecase.NewZScoreUseCase(tickers, edgarClient, extractor, quotes),
		Metrics:  metrics.NewHTTPServerMetrics("zscore-api"),
	}, nil
}
