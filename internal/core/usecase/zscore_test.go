package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/finsight/zscore-service/internal/core/domain"
	"github.com/finsight/zscore-service/internal/core/extract"
)

type resolverFake struct {
	identity *domain.CompanyIdentity
	err      error
}

func (f resolverFake) Resolve(context.Context, string) (*domain.CompanyIdentity, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.identity, nil
}

type filingsFake struct {
	filing *domain.Filing
	err    error
}

func (f filingsFake) LatestFiling(context.Context, string) (*domain.Filing, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.filing, nil
}

type marketFake struct {
	quote *domain.Quote
	err   error
}

func (f marketFake) Quote(context.Context, string) (*domain.Quote, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.quote, nil
}

const filingText = `
Total current assets $ 1,000,000
Total current liabilities $ 400,000
Total assets $ 5,000,000
Retained earnings $ 800,000
Operating income $ 400,000
Total liabilities $ 2,500,000
Net sales $ 3,000,000
`

func newUseCase(resolver resolverFake, filings filingsFake, market marketFake) *ZScoreUseCase {
	return NewZScoreUseCase(resolver, filings, extract.New(extract.Options{}), market)
}

func TestComputeSuccess(t *testing.T) {
	uc := newUseCase(
		resolverFake{identity: &domain.CompanyIdentity{CIK: "0000320193", Ticker: "AAPL"}},
		filingsFake{filing: &domain.Filing{AccessionNumber: "0000320193-24-000001", FilingDate: "2024-05-03", DocumentText: filingText}},
		marketFake{quote: &domain.Quote{Symbol: "AAPL", Price: 100, SharesOutstanding: 60000}},
	)

	res, err := uc.Compute(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	if res.Ticker != "AAPL" || res.Company != "AAPL" {
		t.Fatalf("unexpected identity: %+v", res)
	}
	if res.WorkingCapital != 600000 {
		t.Fatalf("working_capital = %v, want 600000", res.WorkingCapital)
	}
	if res.MarketValueEquity != 6000000 {
		t.Fatalf("market_value_equity = %v, want 6000000", res.MarketValueEquity)
	}
	if res.FilingDate != "2024-05-03" {
		t.Fatalf("filing_date = %q", res.FilingDate)
	}
	if res.StockPrice != 100 || res.SharesOutstanding != 60000 {
		t.Fatalf("quote passthrough broken: %+v", res)
	}
	if res.Zone == "" || res.ZScore == 0 {
		t.Fatalf("expected scored result, got %+v", res)
	}
}

func TestComputeEmptyIdentifierIsInvalidInput(t *testing.T) {
	uc := newUseCase(resolverFake{}, filingsFake{}, marketFake{})

	_, err := uc.Compute(context.Background(), "   ")
	if !domain.IsKind(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestComputeCompanyNotFound(t *testing.T) {
	uc := newUseCase(
		resolverFake{err: domain.WrapError(domain.ErrCompanyNotFound, "resolve", errors.New("no directory entry"))},
		filingsFake{},
		marketFake{},
	)

	_, err := uc.Compute(context.Background(), "NOPE")
	if !domain.IsKind(err, domain.ErrCompanyNotFound) {
		t.Fatalf("expected ErrCompanyNotFound, got %v", err)
	}
}

func TestComputeFilingNotFound(t *testing.T) {
	uc := newUseCase(
		resolverFake{identity: &domain.CompanyIdentity{CIK: "0000000001", Ticker: "X"}},
		filingsFake{err: domain.WrapError(domain.ErrFilingNotFound, "latest filing", errors.New("no 10-Q on record"))},
		marketFake{},
	)

	_, err := uc.Compute(context.Background(), "X")
	if !domain.IsKind(err, domain.ErrFilingNotFound) {
		t.Fatalf("expected ErrFilingNotFound, got %v", err)
	}
}

func TestComputeQuoteNotFound(t *testing.T) {
	uc := newUseCase(
		resolverFake{identity: &domain.CompanyIdentity{CIK: "0000000001", Ticker: "X"}},
		filingsFake{filing: &domain.Filing{DocumentText: filingText}},
		marketFake{err: domain.WrapError(domain.ErrQuoteNotFound, "quote", errors.New("symbol unknown"))},
	)

	_, err := uc.Compute(context.Background(), "X")
	if !domain.IsKind(err, domain.ErrQuoteNotFound) {
		t.Fatalf("expected ErrQuoteNotFound, got %v", err)
	}
}

func TestComputeExtractionIncompleteCarriesMissingFields(t *testing.T) {
	uc := newUseCase(
		resolverFake{identity: &domain.CompanyIdentity{CIK: "0000000001", Ticker: "X"}},
		filingsFake{filing: &domain.Filing{DocumentText: "Total assets $ 100"}},
		marketFake{quote: &domain.Quote{Price: 1, SharesOutstanding: 1}},
	)

	_, err := uc.Compute(context.Background(), "X")
	if !domain.IsKind(err, domain.ErrExtractionIncomplete) {
		t.Fatalf("expected ErrExtractionIncomplete, got %v", err)
	}

	var missingErr *domain.MissingFieldsError
	if !errors.As(err, &missingErr) {
		t.Fatalf("expected MissingFieldsError in chain, got %v", err)
	}
	if len(missingErr.Missing) != 6 {
		t.Fatalf("expected 6 missing fields, got %v", missingErr.Missing)
	}
}
