// Package analysis simulates 25-year ownership economics for solar
// installations under cash, loan, lease, and power-purchase-agreement
// financing structures.
package analysis

// FinancingKind identifies a financing structure.
type FinancingKind string

// The four supported financing structures.
const (
	FinancingCash  FinancingKind = "cash"
	FinancingLoan  FinancingKind = "loan"
	FinancingLease FinancingKind = "lease"
	FinancingPPA   FinancingKind = "ppa"
)

// Label returns a human-readable name for the financing structure.
func (k FinancingKind) Label() string {
	switch k {
	case FinancingCash:
		return "Cash Purchase"
	case FinancingLoan:
		return "Loan Purchase"
	case FinancingLease:
		return "Lease"
	case FinancingPPA:
		return "Power Purchase Agreement"
	default:
		return string(k)
	}
}

// Scenario holds the inputs shared by all analyzers. Callers normally build
// one through internal/config so the documented defaults (25-year horizon,
// 0.5%/yr degradation, 5% discount rate) are applied in one auditable step.
type Scenario struct {
	AnnualProductionKwh   float64 `json:"annualProductionKwh"`
	AnnualUsageKwh        float64 `json:"annualUsageKwh"`
	UtilityRate           float64 `json:"utilityRate"` // $/kWh retail
	UtilityEscalationRate float64 `json:"utilityEscalationRate"`
	NetMeteringRate       float64 `json:"netMeteringRate"` // $/kWh for exported energy
	DegradationRate       float64 `json:"degradationRate"`
	DiscountRate          float64 `json:"discountRate"`
	AnalysisYears         int     `json:"analysisYears"`

	SystemCost       float64 `json:"systemCost"`
	FederalITCRate   float64 `json:"federalITCRate"`
	StateIncentive   float64 `json:"stateIncentive"`
	UtilityIncentive float64 `json:"utilityIncentive"`

	AnnualMaintenanceCost   float64 `json:"annualMaintenanceCost"`
	InverterReplacementCost float64 `json:"inverterReplacementCost"`
	InverterReplacementYear int     `json:"inverterReplacementYear"`

	// Loan financing
	DownPayment      float64 `json:"downPayment"`
	LoanAmount       float64 `json:"loanAmount"`
	LoanInterestRate float64 `json:"loanInterestRate"`
	LoanTermYears    int     `json:"loanTermYears"`
	ApplyITCToLoan   bool    `json:"applyITCToLoan"`

	// Third-party ownership
	MonthlyLeasePayment float64 `json:"monthlyLeasePayment"`
	PPARatePerKwh       float64 `json:"ppaRatePerKwh"`
	TPOEscalationRate   float64 `json:"tpoEscalationRate"`
	TPOTermYears        int     `json:"tpoTermYears"`
}

// YearlyProjection is one row of a simulation, indexed by year 1..N with no
// gaps. Financing legs that do not apply to the analysis are left nil so
// they marshal as absent.
type YearlyProjection struct {
	Year                 int      `json:"year"`
	ProductionKwh        float64  `json:"productionKwh"`
	UtilityRate          float64  `json:"utilityRate"`
	CostWithoutSolar     float64  `json:"costWithoutSolar"`
	CostWithSolar        float64  `json:"costWithSolar"`
	NetSavings           float64  `json:"netSavings"`
	CashFlow             float64  `json:"cashFlow"`
	CumulativeCashFlow   float64  `json:"cumulativeCashFlow"`
	LoanPayment          *float64 `json:"loanPayment,omitempty"`
	LoanBalanceRemaining *float64 `json:"loanBalanceRemaining,omitempty"`
	TPOPayment           *float64 `json:"tpoPayment,omitempty"`
}

// CashSummary carries the summary scalars for a cash purchase. TotalSavings
// is the horizon cumulative cash flow, net of the initial outlay, so it is
// directly comparable across financing structures.
type CashSummary struct {
	SystemCost       float64 `json:"systemCost"`
	FederalITCAmount float64 `json:"federalITCAmount"`
	NetCost          float64 `json:"netCost"`
	PaybackYears     float64 `json:"paybackYears"`
	IRR              float64 `json:"irr"`
	NPV              float64 `json:"npv"`
	LCOE             float64 `json:"lcoe"` // $/kWh over the horizon
	TotalSavings     float64 `json:"totalSavings"`
}

// LoanSummary carries the summary scalars for a financed purchase.
type LoanSummary struct {
	DownPayment       float64 `json:"downPayment"`
	LoanAmount        float64 `json:"loanAmount"`
	MonthlyPayment    float64 `json:"monthlyPayment"`
	TotalInterestPaid float64 `json:"totalInterestPaid"`
	TotalPaymentsMade float64 `json:"totalPaymentsMade"`
	FederalITCAmount  float64 `json:"federalITCAmount"`
	PaybackYears      float64 `json:"paybackYears"`
	IRR               float64 `json:"irr"`
	NPV               float64 `json:"npv"`
	DayOneSavings     bool    `json:"dayOneSavings"`
	TotalSavings      float64 `json:"totalSavings"`
}

// TPOSummary carries the summary scalars for a lease or PPA. Third-party
// ownership has no distinct investment cash flow to discount, so it reports
// an integer break-even year instead of IRR/NPV/payback. BreakEvenYear is 0
// when cumulative savings never turn positive within the horizon.
type TPOSummary struct {
	TermYears      int     `json:"termYears"`
	YearOnePayment float64 `json:"yearOnePayment"`
	TotalPayments  float64 `json:"totalPayments"`
	BreakEvenYear  int     `json:"breakEvenYear"`
	TotalSavings   float64 `json:"totalSavings"`
}

// Result is the outcome of one financing analysis: the yearly projection
// sequence plus exactly one populated summary block matching Kind. Results
// are produced fresh per call and never mutated after construction.
type Result struct {
	Kind              FinancingKind      `json:"kind"`
	YearlyProjections []YearlyProjection `json:"yearlyProjections"`
	Cash              *CashSummary       `json:"cash,omitempty"`
	Loan              *LoanSummary       `json:"loan,omitempty"`
	TPO               *TPOSummary        `json:"tpo,omitempty"`
}

// UpfrontCost returns the out-of-pocket cost at year zero for the analysis.
func (r *Result) UpfrontCost() float64 {
	switch {
	case r.Cash != nil:
		return r.Cash.NetCost
	case r.Loan != nil:
		return r.Loan.DownPayment
	default:
		return 0
	}
}

// TotalSavings returns the horizon net savings for the analysis.
func (r *Result) TotalSavings() float64 {
	switch {
	case r.Cash != nil:
		return r.Cash.TotalSavings
	case r.Loan != nil:
		return r.Loan.TotalSavings
	case r.TPO != nil:
		return r.TPO.TotalSavings
	default:
		return 0
	}
}

func floatPtr(v float64) *float64 {
	return &v
}
