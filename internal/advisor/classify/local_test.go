package classify

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vat-advisor-poc/server/internal/advisor/model"
)

func classifyText(t *testing.T, text string) model.Classification {
	t.Helper()
	cls, err := NewLocal().Classify(context.Background(), text)
	require.NoError(t, err)
	return cls
}

func TestLocalKeywordScoring(t *testing.T) {
	tests := []struct {
		name string
		text string
		top  model.Tag
	}{
		{"van keyword", "승합차입니다", model.TagVan},
		{"light car keyword", "경차 레이", model.TagLightCar},
		{"cargo keyword", "봉고 화물", model.TagCargo},
		{"bus keyword", "마을버스", model.TagBus},
		{"truck folds into cargo", "1톤 트럭", model.TagCargo},
		{"sedan keyword", "중형 세단", model.TagSedan},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cls := classifyText(t, tt.text)
			require.NotEmpty(t, cls.Tags)
			assert.Equal(t, tt.top, cls.Top())
		})
	}
}

func TestLocalSeatExtraction(t *testing.T) {
	tests := []struct {
		text  string
		seats int
	}{
		{"스타렉스 9인승", 9},
		{"카니발 11인승", 11},
		{"7인승 쏘렌토", 7},
		{"스타렉스", model.SeatsUnknown},
		{"소나타", model.SeatsUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			cls := classifyText(t, tt.text)
			assert.Equal(t, tt.seats, cls.Seats)
		})
	}
}

func TestLocalModelLexicon(t *testing.T) {
	tests := []struct {
		text string
		top  model.Tag
	}{
		{"스타렉스", model.TagVan},
		{"카니발", model.TagVan},
		{"봉고", model.TagCargo},
		{"포터", model.TagCargo},
		{"모닝", model.TagLightCar},
		{"소나타", model.TagSedan},
		{"쏘렌토", model.TagSUV},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			cls := classifyText(t, tt.text)
			require.NotEmpty(t, cls.Tags, "lexicon should recognise %q", tt.text)
			assert.Equal(t, tt.top, cls.Top())
		})
	}
}

func TestLocalVanSeatBonus(t *testing.T) {
	with := classifyText(t, "승합 9인승")
	without := classifyText(t, "승합")
	assert.Equal(t, without.Scores[model.TagVan]+vanSeatBonus, with.Scores[model.TagVan])

	// below the bonus threshold nothing is added
	eight := classifyText(t, "승합 8인승")
	assert.Equal(t, without.Scores[model.TagVan], eight.Scores[model.TagVan])
}

func TestLocalEmptyInput(t *testing.T) {
	cls := classifyText(t, "   ")
	assert.Empty(t, cls.Tags)
	assert.Equal(t, model.SeatsUnknown, cls.Seats)
}

func TestLocalIsDeterministic(t *testing.T) {
	// identical input yields identical tags, scores and seats
	for _, text := range []string{"스타렉스 9인승", "경차 화물 겸용", "쏘렌토"} {
		first := classifyText(t, text)
		for i := 0; i < 5; i++ {
			again := classifyText(t, text)
			assert.Equal(t, first.Tags, again.Tags)
			assert.Equal(t, first.Scores, again.Scores)
			assert.Equal(t, first.Seats, again.Seats)
		}
	}
}

func TestRankTagsTieBreaksByPriority(t *testing.T) {
	scores := map[model.Tag]int{
		model.TagSedan:    4,
		model.TagLightCar: 4,
		model.TagVan:      4,
		model.TagWagon:    0, // zero scores are dropped
	}
	tags := rankTags(scores)
	assert.Equal(t, []model.Tag{model.TagLightCar, model.TagVan, model.TagSedan}, tags)
}
