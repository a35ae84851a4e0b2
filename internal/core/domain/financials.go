package domain

// FinancialField is a canonical balance-sheet or income-statement quantity
// extracted from a filing.
type FinancialField string

const (
	FieldCurrentAssets      FinancialField = "current_assets"
	FieldCurrentLiabilities FinancialField = "current_liabilities"
	FieldTotalAssets        FinancialField = "total_assets"
	FieldRetainedEarnings   FinancialField = "retained_earnings"
	FieldOperatingIncome    FinancialField = "operating_income"
	FieldTotalLiabilities   FinancialField = "total_liabilities"
	FieldSales              FinancialField = "sales"

	// FieldWorkingCapital is derived, never matched in filing text.
	FieldWorkingCapital FinancialField = "working_capital"
)

// RequiredFields lists the seven fields that must all be located in a filing
// for extraction to succeed, in reporting order.
func RequiredFields() []FinancialField {
	return []FinancialField{
		FieldCurrentAssets,
		FieldCurrentLiabilities,
		FieldTotalAssets,
		FieldRetainedEarnings,
		FieldOperatingIncome,
		FieldTotalLiabilities,
		FieldSales,
	}
}

// ExtractedFinancials maps every required field plus working_capital to a
// normalized numeric value. It only exists in complete form: a filing that
// yields fewer than all seven required fields yields no ExtractedFinancials
// at all.
type ExtractedFinancials struct {
	Values map[FinancialField]float64
}

func (e *ExtractedFinancials) Get(field FinancialField) float64 {
	if e == nil {
		return 0
	}
	return e.Values[field]
}
