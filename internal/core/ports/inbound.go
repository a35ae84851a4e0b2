package ports

import (
	"context"

	"github.com/finsight/zscore-service/internal/core/domain"
)

// ZScoreService is the inbound contract for computing a company's Z-Score.
type ZScoreService interface {
	Compute(ctx context.Context, company string) (*domain.ZScoreResult, error)
}
