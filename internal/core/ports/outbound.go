package ports

import (
	"context"

	"github.com/finsight/zscore-service/internal/core/domain"
)

// IdentifierResolver maps a free-text company identifier (ticker or name)
// to a canonical filing identity.
type IdentifierResolver interface {
	Resolve(ctx context.Context, identifier string) (*domain.CompanyIdentity, error)
}

// FilingLocator finds the most recent quarterly filing for a CIK and returns
// it with flattened document text.
type FilingLocator interface {
	LatestFiling(ctx context.Context, cik string) (*domain.Filing, error)
}

// MarketDataProvider fetches the current quote for a traded symbol.
type MarketDataProvider interface {
	Quote(ctx context.Context, symbol string) (*domain.Quote, error)
}

// FinancialExtractor locates the required financial fields in flattened
// filing text. Absence of any field fails the whole extraction.
type FinancialExtractor interface {
	Extract(rawText string) (*domain.ExtractedFinancials, error)
}

// FilingCache stores flattened filing text keyed by accession number.
type FilingCache interface {
	Load(ctx context.Context, key string) (string, bool)
	Store(ctx context.Context, key string, text string) error
}
