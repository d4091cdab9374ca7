package domain

type TermComparisonInput struct {
	Principal         float64 `json:"principal"`
	AnnualRatePercent float64 `json:"annual_rate_percent"`
	TermYears         []int   `json:"term_years"`
	MaxMonthlyPayment float64 `json:"max_monthly_payment,omitempty"` // 0 = sin límite
}

type TermOption struct {
	TermYears      int     `json:"term_years"`
	MonthlyPayment float64 `json:"monthly_payment"`
	TotalInterest  float64 `json:"total_interest"`
	TotalPayment   float64 `json:"total_payment"`
}

type TermComparisonResult struct {
	Options            []TermOption `json:"options"`
	LowestInterestTerm int          `json:"lowest_interest_term"`
	LowestPaymentTerm  int          `json:"lowest_payment_term"`
}
