package taxcalc

import (
	"fmt"
	"math"
)

// Half identifies the VAT taxable period within a year.
type Half int

const (
	FirstHalf  Half = 0 // 상반기
	SecondHalf Half = 1 // 하반기
)

// AssetKind selects the straight-line depreciation rate per taxable period.
type AssetKind int

const (
	// AssetFixed covers buildings and other fixed structures: 5% per period.
	AssetFixed AssetKind = iota
	// AssetOther covers everything else: 25% per period.
	AssetOther
)

// Rate returns the depreciation rate per taxable period for the asset kind.
func (k AssetKind) Rate() float64 {
	if k == AssetFixed {
		return 0.05
	}
	return 0.25
}

// PeriodIndex converts a year + half into a single comparable index.
func PeriodIndex(year int, half Half) int {
	return year*2 + int(half)
}

// ElapsedPeriods counts taxable periods from purchase to closure.
// includePurchase adds the purchase period itself, the default treatment.
func ElapsedPeriods(purchaseIdx, closeIdx int, includePurchase bool) (int, error) {
	if closeIdx < purchaseIdx {
		return 0, fmt.Errorf("closure period precedes purchase period")
	}
	base := closeIdx - purchaseIdx
	if includePurchase {
		base++
	}
	return base, nil
}

// SchedulePeriod is one row of the per-period depreciation schedule.
type SchedulePeriod struct {
	Period       int
	Depreciation float64
	Accumulated  float64
	Remaining    float64
}

// Residual is the outcome of a closure residual-value computation.
type Residual struct {
	Elapsed       int
	UsedPeriods   int
	TotalDepr     float64
	ResidualValue float64
	Schedule      []SchedulePeriod
}

// ResidualValue depreciates the purchase price straight-line over the
// elapsed taxable periods, capped at 100% of the price, and returns the
// remaining value plus the per-period schedule.
func ResidualValue(price float64, kind AssetKind, elapsed int) Residual {
	rate := kind.Rate()

	// periods after which the full price has been written off
	maxPeriods := int(math.Ceil(1.0 / rate))
	used := elapsed
	if used > maxPeriods {
		used = maxPeriods
	}

	totalDepr := price * rate * float64(used)
	residual := math.Max(0, price-totalDepr)

	schedule := make([]SchedulePeriod, 0, elapsed)
	remaining := price
	for i := 1; i <= elapsed; i++ {
		depr := math.Min(remaining, price*rate)
		remaining = math.Max(0, remaining-depr)
		schedule = append(schedule, SchedulePeriod{
			Period:       i,
			Depreciation: depr,
			Accumulated:  price - remaining,
			Remaining:    remaining,
		})
	}

	return Residual{
		Elapsed:       elapsed,
		UsedPeriods:   used,
		TotalDepr:     totalDepr,
		ResidualValue: residual,
		Schedule:      schedule,
	}
}
