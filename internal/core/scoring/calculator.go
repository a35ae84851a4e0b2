// Package scoring computes the Altman Z-Score for manufacturing companies:
//
//	Z = 1.2·X1 + 1.4·X2 + 3.3·X3 + 0.6·X4 + 1.0·X5
package scoring

import (
	"math"

	"github.com/finsight/zscore-service/internal/core/domain"
)

// Zone thresholds, compared with strict > so boundary values fall into the
// lower zone.
const (
	safeThreshold     = 2.99
	distressThreshold = 1.81
)

// Inputs are the raw financial quantities feeding the formula.
type Inputs struct {
	WorkingCapital    float64
	TotalAssets       float64
	RetainedEarnings  float64
	OperatingIncome   float64
	MarketValueEquity float64
	TotalLiabilities  float64
	Sales             float64
}

// Score computes the five ratios, the aggregate score, and the zone. Each
// ratio defaults to 0.0 when its denominator is exactly zero. The score is
// computed at full precision, then rounded: z to 4 decimals, ratios to 6.
// Raw inputs are carried through unchanged.
func Score(in Inputs) domain.ZScoreResult {
	x1 := ratio(in.WorkingCapital, in.TotalAssets)
	x2 := ratio(in.RetainedEarnings, in.TotalAssets)
	x3 := ratio(in.OperatingIncome, in.TotalAssets)
	x4 := ratio(in.MarketValueEquity, in.TotalLiabilities)
	x5 := ratio(in.Sales, in.TotalAssets)

	z := 1.2*x1 + 1.4*x2 + 3.3*x3 + 0.6*x4 + 1.0*x5

	return domain.ZScoreResult{
		ZScore: round(z, 4),
		Zone:   Classify(z),

		X1: round(x1, 6),
		X2: round(x2, 6),
		X3: round(x3, 6),
		X4: round(x4, 6),
		X5: round(x5, 6),

		WorkingCapital:    in.WorkingCapital,
		TotalAssets:       in.TotalAssets,
		RetainedEarnings:  in.RetainedEarnings,
		OperatingIncome:   in.OperatingIncome,
		MarketValueEquity: in.MarketValueEquity,
		TotalLiabilities:  in.TotalLiabilities,
		Sales:             in.Sales,
	}
}

// Classify maps an unrounded score to its zone.
func Classify(z float64) domain.Zone {
	switch {
	case z > safeThreshold:
		return domain.ZoneSafe
	case z > distressThreshold:
		return domain.ZoneGrey
	default:
		return domain.ZoneDistress
	}
}

func ratio(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0.0
	}
	return numerator / denominator
}

func round(v float64, places int) float64 {
	shift := math.Pow(10, float64(places))
	return math.Round(v*shift) / shift
}
