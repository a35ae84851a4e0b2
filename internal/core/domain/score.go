package domain

// Zone is the coarse risk classification derived from the aggregate Z-Score.
type Zone string

const (
	ZoneSafe     Zone = "Safe Zone"
	ZoneGrey     Zone = "Grey Zone"
	ZoneDistress Zone = "Distress Zone"
)

// ZScoreResult carries the score, the five ratios, and every raw input
// unchanged for auditability. Built once per request, never persisted.
type ZScoreResult struct {
	Company string `json:"company"`
	Ticker  string `json:"ticker,omitempty"`

	ZScore float64 `json:"z_score"`
	Zone   Zone    `json:"zone"`

	X1 float64 `json:"x1"`
	X2 float64 `json:"x2"`
	X3 float64 `json:"x3"`
	X4 float64 `json:"x4"`
	X5 float64 `json:"x5"`

	WorkingCapital    float64 `json:"working_capital"`
	TotalAssets       float64 `json:"total_assets"`
	RetainedEarnings  float64 `json:"retained_earnings"`
	OperatingIncome   float64 `json:"operating_income"`
	MarketValueEquity float64 `json:"market_value_equity"`
	TotalLiabilities  float64 `json:"total_liabilities"`
	Sales             float64 `json:"sales"`

	FilingDate        string  `json:"filing_date,omitempty"`
	StockPrice        float64 `json:"stock_price,omitempty"`
	SharesOutstanding float64 `json:"shares_outstanding,omitempty"`
}
