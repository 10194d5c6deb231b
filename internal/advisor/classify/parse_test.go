package classify

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vat-advisor-poc/server/internal/advisor/model"
)

func TestParseExtraction(t *testing.T) {
	t.Run("plain json", func(t *testing.T) {
		cls, err := parseExtraction(`{"vehicle_type": "승합", "seats": 9, "rationale": "스타렉스는 승합차"}`)
		require.NoError(t, err)
		assert.Equal(t, []model.Tag{model.TagVan}, cls.Tags)
		assert.Equal(t, 9, cls.Seats)
		assert.Equal(t, "스타렉스는 승합차", cls.Rationale)
	})

	t.Run("fenced json", func(t *testing.T) {
		cls, err := parseExtraction("```json\n{\"vehicle_type\": \"경차\", \"seats\": -1, \"rationale\": \"모닝\"}\n```")
		require.NoError(t, err)
		assert.Equal(t, []model.Tag{model.TagLightCar}, cls.Tags)
		assert.False(t, cls.SeatsKnown())
	})

	t.Run("truck coerces to cargo", func(t *testing.T) {
		cls, err := parseExtraction(`{"vehicle_type": "트럭", "seats": -1, "rationale": ""}`)
		require.NoError(t, err)
		assert.Equal(t, model.TagCargo, cls.Top())
	})

	t.Run("seats below sentinel clamp to unknown", func(t *testing.T) {
		cls, err := parseExtraction(`{"vehicle_type": "승합", "seats": -7, "rationale": ""}`)
		require.NoError(t, err)
		assert.Equal(t, model.SeatsUnknown, cls.Seats)
	})

	t.Run("unknown vehicle type", func(t *testing.T) {
		_, err := parseExtraction(`{"vehicle_type": "비행기", "seats": -1, "rationale": ""}`)
		require.Error(t, err)
	})

	t.Run("not json", func(t *testing.T) {
		_, err := parseExtraction("죄송합니다, 판단할 수 없습니다.")
		require.Error(t, err)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := parseExtraction("   ")
		require.Error(t, err)
	})

	t.Run("oversized output rejected", func(t *testing.T) {
		_, err := parseExtraction(strings.Repeat("a", maxExtractionLen+1))
		require.Error(t, err)
	})
}

func TestFallbackIsConservative(t *testing.T) {
	cls := Fallback(errors.New("deadline exceeded"))
	// default non-deductible category, seats unknown, failure noted
	assert.Equal(t, []model.Tag{model.TagSedan}, cls.Tags)
	assert.Equal(t, model.SeatsUnknown, cls.Seats)
	assert.Contains(t, cls.Rationale, "분류 실패")
}
