package extract

import (
	"regexp"

	"github.com/finsight/zscore-service/internal/core/domain"
)

// Label variants per field, most specific first. A variant that produces at
// least one match wins the field outright; later variants are never
// consulted. The set reflects real label variance across filers: sales alone
// appears under four different headings.
var labelVariants = map[domain.FinancialField][]string{
	domain.FieldCurrentAssets: {
		`total\s+current\s+assets`,
		`current\s+assets`,
	},
	domain.FieldCurrentLiabilities: {
		`total\s+current\s+liabilities`,
		`current\s+liabilities`,
	},
	domain.FieldTotalAssets: {
		`total\s+assets`,
	},
	domain.FieldRetainedEarnings: {
		`retained\s+earnings`,
		`accumulated\s+retained\s+earnings`,
	},
	domain.FieldOperatingIncome: {
		`operating\s+income`,
		`income\s+from\s+operations`,
	},
	domain.FieldTotalLiabilities: {
		`total\s+liabilities`,
	},
	domain.FieldSales: {
		`net\s+sales`,
		`total\s+revenue`,
		`net\s+revenue`,
		`total\s+net\s+revenue`,
	},
}

// numberTail matches what may follow a label in flattened filing text:
// non-digit filler, an optional opening parenthesis (negation marker), an
// optional currency symbol, the numeric literal with thousands separators,
// an optional closing parenthesis, and an optional trailing scale word.
// Scale words match as prefixes, so "millions" scales like "million".
const numberTail = `[^0-9]*?(\()?\s*\$?\s*([0-9][0-9,]*(?:\.[0-9]+)?)\s*(\))?(?:\s*(thousand|million|billion))?`

// Submatch indexes within a compiled variant pattern.
const (
	groupOpenParen  = 1
	groupLiteral    = 2
	groupCloseParen = 3
	groupScale      = 4
)

var scaleMultipliers = map[string]float64{
	"thousand": 1e3,
	"million":  1e6,
	"billion":  1e9,
}

type variant struct {
	field domain.FinancialField
	re    *regexp.Regexp
}

func compileVariants() map[domain.FinancialField][]variant {
	compiled := make(map[domain.FinancialField][]variant, len(labelVariants))
	for field, labels := range labelVariants {
		variants := make([]variant, 0, len(labels))
		for _, label := range labels {
			variants = append(variants, variant{
				field: field,
				re:    regexp.MustCompile(`(?i)` + label + numberTail),
			})
		}
		compiled[field] = variants
	}
	return compiled
}

var compiledVariants = compileVariants()
