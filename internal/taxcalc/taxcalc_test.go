package taxcalc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIncomeTaxBrackets(t *testing.T) {
	tests := []struct {
		income int64
		level  IncomeLevel
		tax    float64
	}{
		{150_000_000, LevelHigh, 45_000_000},
		{100_000_000, LevelHigh, 30_000_000}, // boundary: floor is inclusive
		{99_999_999, LevelMid, 19_999_999.8},
		{55_000_000, LevelMid, 11_000_000},
		{50_000_000, LevelMid, 10_000_000},
		{49_999_999, LevelLow, 4_999_999.9},
		{0, LevelLow, 0},
	}
	for _, tt := range tests {
		a := IncomeTax(tt.income)
		assert.Equal(t, tt.level, a.Level, "income=%d", tt.income)
		assert.InDelta(t, tt.tax, a.Tax, 0.01, "income=%d", tt.income)
	}
}

func TestPeriodIndexAndElapsed(t *testing.T) {
	p := PeriodIndex(2023, FirstHalf)
	c := PeriodIndex(2025, SecondHalf)

	elapsed, err := ElapsedPeriods(p, c, true)
	require.NoError(t, err)
	assert.Equal(t, 6, elapsed)

	elapsed, err = ElapsedPeriods(p, c, false)
	require.NoError(t, err)
	assert.Equal(t, 5, elapsed)

	_, err = ElapsedPeriods(c, p, true)
	assert.Error(t, err)
}

func TestResidualValue(t *testing.T) {
	t.Run("other asset depreciates 25 percent per period", func(t *testing.T) {
		res := ResidualValue(10_000_000, AssetOther, 2)
		assert.Equal(t, 2, res.UsedPeriods)
		assert.InDelta(t, 5_000_000, res.TotalDepr, 0.01)
		assert.InDelta(t, 5_000_000, res.ResidualValue, 0.01)
	})

	t.Run("depreciation caps at the full price", func(t *testing.T) {
		// 25% per period writes off everything in 4 periods
		res := ResidualValue(10_000_000, AssetOther, 10)
		assert.Equal(t, 4, res.UsedPeriods)
		assert.InDelta(t, 10_000_000, res.TotalDepr, 0.01)
		assert.InDelta(t, 0, res.ResidualValue, 0.01)
	})

	t.Run("fixed asset uses 5 percent", func(t *testing.T) {
		res := ResidualValue(10_000_000, AssetFixed, 3)
		assert.InDelta(t, 1_500_000, res.TotalDepr, 0.01)
		assert.InDelta(t, 8_500_000, res.ResidualValue, 0.01)
	})

	t.Run("schedule rows never go negative", func(t *testing.T) {
		res := ResidualValue(1_000_000, AssetOther, 6)
		require.Len(t, res.Schedule, 6)
		last := res.Schedule[len(res.Schedule)-1]
		assert.InDelta(t, 0, last.Remaining, 0.01)
		assert.InDelta(t, 0, last.Depreciation, 0.01) // already fully written off
		for _, row := range res.Schedule {
			assert.GreaterOrEqual(t, row.Remaining, 0.0)
		}
	})
}
