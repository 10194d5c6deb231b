// Package taxcalc holds the stateless helper calculators that accompany the
// deduction advisor: a flat income-tax bracket estimate and the residual
// value of fixed assets at business closure.
package taxcalc

// IncomeLevel is the bracket label of an annual income.
type IncomeLevel string

const (
	LevelHigh IncomeLevel = "고소득자"
	LevelMid  IncomeLevel = "중간소득자"
	LevelLow  IncomeLevel = "저소득자"
)

// bracket thresholds and flat rates, KRW per year
const (
	highIncomeFloor = 100_000_000
	midIncomeFloor  = 50_000_000

	highRate = 0.30
	midRate  = 0.20
	lowRate  = 0.10
)

// Assessment is the result of the bracket estimate.
type Assessment struct {
	Income int64
	Level  IncomeLevel
	Rate   float64
	Tax    float64
}

// IncomeTax classifies an annual income into one of three brackets and
// applies the bracket's flat rate.
func IncomeTax(income int64) Assessment {
	switch {
	case income >= highIncomeFloor:
		return Assessment{Income: income, Level: LevelHigh, Rate: highRate, Tax: float64(income) * highRate}
	case income >= midIncomeFloor:
		return Assessment{Income: income, Level: LevelMid, Rate: midRate, Tax: float64(income) * midRate}
	default:
		return Assessment{Income: income, Level: LevelLow, Rate: lowRate, Tax: float64(income) * lowRate}
	}
}
