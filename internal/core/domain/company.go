package domain

// CompanyIdentity is the result of resolving a free-text company identifier
// against the SEC ticker directory.
type CompanyIdentity struct {
	// CIK is the zero-padded 10-digit Central Index Key.
	CIK    string
	Ticker string
	Name   string
}

// Filing is one located quarterly filing with its flattened document text.
type Filing struct {
	CIK             string
	AccessionNumber string
	Form            string
	FilingDate      string
	DocumentText    string
}

// Quote is a point-in-time market quote for a traded symbol.
type Quote struct {
	Symbol            string
	Price             float64
	SharesOutstanding float64
}

// MarketValueEquity is price times shares outstanding.
func (q Quote) MarketValueEquity() float64 {
	return q.Price * q.SharesOutstanding
}
