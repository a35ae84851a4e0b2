package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/finsight/zscore-service/internal/core/domain"
	"github.com/finsight/zscore-service/internal/core/ports"
	"github.com/finsight/zscore-service/internal/core/scoring"
)

// ZScoreUseCase runs the strictly sequential request pipeline:
// resolve identifier → locate filing → extract fields → fetch quote → score.
type ZScoreUseCase struct {
	resolver  ports.IdentifierResolver
	filings   ports.FilingLocator
	extractor ports.FinancialExtractor
	market    ports.MarketDataProvider
}

func NewZScoreUseCase(
	resolver ports.IdentifierResolver,
	filings ports.FilingLocator,
	extractor ports.FinancialExtractor,
	market ports.MarketDataProvider,
) *ZScoreUseCase {
	return &ZScoreUseCase{
		resolver:  resolver,
		filings:   filings,
		extractor: extractor,
		market:    market,
	}
}

func (uc *ZScoreUseCase) Compute(ctx context.Context, company string) (*domain.ZScoreResult, error) {
	company = strings.TrimSpace(company)
	if company == "" {
		return nil, domain.WrapError(domain.ErrInvalidInput, "compute zscore", errors.New("company identifier is required"))
	}

	identity, err := uc.resolve(ctx, company)
	if err != nil {
		return nil, err
	}

	filing, err := uc.locateFiling(ctx, identity)
	if err != nil {
		return nil, err
	}

	financials, err := uc.extract(filing)
	if err != nil {
		return nil, err
	}

	quote, err := uc.quote(ctx, identity)
	if err != nil {
		return nil, err
	}

	result := scoring.Score(scoring.Inputs{
		WorkingCapital:    financials.Get(domain.FieldWorkingCapital),
		TotalAssets:       financials.Get(domain.FieldTotalAssets),
		RetainedEarnings:  financials.Get(domain.FieldRetainedEarnings),
		OperatingIncome:   financials.Get(domain.FieldOperatingIncome),
		MarketValueEquity: quote.MarketValueEquity(),
		TotalLiabilities:  financials.Get(domain.FieldTotalLiabilities),
		Sales:             financials.Get(domain.FieldSales),
	})

	result.Company = company
	result.Ticker = identity.Ticker
	result.FilingDate = filing.FilingDate
	result.StockPrice = quote.Price
	result.SharesOutstanding = quote.SharesOutstanding
	return &result, nil
}

func (uc *ZScoreUseCase) resolve(ctx context.Context, company string) (*domain.CompanyIdentity, error) {
	identity, err := uc.resolver.Resolve(ctx, company)
	if err != nil {
		return nil, fmt.Errorf("resolve company %q: %w", company, err)
	}
	return identity, nil
}

func (uc *ZScoreUseCase) locateFiling(ctx context.Context, identity *domain.CompanyIdentity) (*domain.Filing, error) {
	filing, err := uc.filings.LatestFiling(ctx, identity.CIK)
	if err != nil {
		return nil, fmt.Errorf("locate latest 10-Q for CIK %s: %w", identity.CIK, err)
	}
	return filing, nil
}

func (uc *ZScoreUseCase) extract(filing *domain.Filing) (*domain.ExtractedFinancials, error) {
	financials, err := uc.extractor.Extract(filing.DocumentText)
	if err != nil {
		return nil, fmt.Errorf("extract financials from %s filing: %w", filing.AccessionNumber, err)
	}
	return financials, nil
}

func (uc *ZScoreUseCase) quote(ctx context.Context, identity *domain.CompanyIdentity) (*domain.Quote, error) {
	quote, err := uc.market.Quote(ctx, identity.Ticker)
	if err != nil {
		return nil, fmt.Errorf("fetch quote for %s: %w", identity.Ticker, err)
	}
	return quote, nil
}
