// Package extract locates financial quantities in flattened filing text.
//
// Filings vary wildly in layout, so this is a heuristic label matcher, not a
// table parser: each field carries an ordered list of label-pattern variants,
// every occurrence of the first matching variant becomes a candidate, and the
// largest magnitude wins (the most recent reporting period tends to be the
// largest or most prominent number near the label). Found-nothing and
// found-zero stay distinct throughout; a filing missing any required field
// yields no result at all.
package extract

import (
	"strings"

	"github.com/finsight/zscore-service/internal/core/domain"
)

// Options tune extraction behavior.
type Options struct {
	// PreserveSign keeps the parsed sign for fields that are legitimately
	// negative in real filings (retained earnings, operating income).
	// Off by default: the legacy behavior records magnitude only, which
	// silently converts a loss into a gain.
	PreserveSign bool
}

type Extractor struct {
	opts Options
}

func New(opts Options) *Extractor {
	return &Extractor{opts: opts}
}

// signedFields may carry economically meaningful negative values.
var signedFields = map[domain.FinancialField]bool{
	domain.FieldRetainedEarnings: true,
	domain.FieldOperatingIncome:  true,
}

type candidate struct {
	value     float64
	magnitude float64
}

// Extract returns the complete field mapping or a *domain.MissingFieldsError
// naming every field that could not be located. It never returns a partial
// mapping and never panics; an unparseable candidate is dropped and the scan
// continues.
func (e *Extractor) Extract(rawText string) (*domain.ExtractedFinancials, error) {
	if strings.TrimSpace(rawText) == "" {
		return nil, &domain.MissingFieldsError{Missing: domain.RequiredFields()}
	}

	values := make(map[domain.FinancialField]float64, len(labelVariants)+1)
	var missing []domain.FinancialField

	for _, field := range domain.RequiredFields() {
		value, ok := e.findField(rawText, field)
		if !ok {
			missing = append(missing, field)
			continue
		}
		values[field] = value
	}

	if len(missing) > 0 {
		return nil, &domain.MissingFieldsError{Missing: missing}
	}

	values[domain.FieldWorkingCapital] = values[domain.FieldCurrentAssets] - values[domain.FieldCurrentLiabilities]
	return &domain.ExtractedFinancials{Values: values}, nil
}

// findField tries each label variant in order and stops at the first variant
// that produced any candidate. A label may legitimately occur many times
// (multiple reporting periods in one filing); all occurrences of the winning
// variant compete and the maximum magnitude is selected.
func (e *Extractor) findField(text string, field domain.FinancialField) (float64, bool) {
	for _, v := range compiledVariants[field] {
		candidates := collectCandidates(v, text)
		if len(candidates) == 0 {
			continue
		}

		best := candidates[0]
		for _, c := range candidates[1:] {
			if c.magnitude > best.magnitude {
				best = c
			}
		}

		if e.opts.PreserveSign && signedFields[field] {
			return best.value, true
		}
		return best.magnitude, true
	}
	return 0, false
}

func collectCandidates(v variant, text string) []candidate {
	var out []candidate
	for _, match := range v.re.FindAllStringSubmatch(text, -1) {
		value, ok := ParseNumber(match[groupLiteral])
		if !ok {
			continue
		}

		// Negation requires both enclosing parentheses.
		if match[groupOpenParen] != "" && match[groupCloseParen] != "" {
			value = -value
		}
		if mult, ok := scaleMultipliers[strings.ToLower(match[groupScale])]; ok {
			value *= mult
		}

		magnitude := value
		if magnitude < 0 {
			magnitude = -magnitude
		}
		out = append(out, candidate{value: value, magnitude: magnitude})
	}
	return out
}
