package classify

import (
	"context"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/vat-advisor-poc/server/internal/advisor/model"
)

// seatPattern extracts an explicit "<N>인승" capacity marker.
var seatPattern = regexp.MustCompile(`(\d+)\s*인승`)

// Local is the offline rule-based classifier: substring keyword scoring plus
// fuzzy model-name lookup. It is a pure function of its input and never
// returns an error.
type Local struct{}

func NewLocal() *Local {
	return &Local{}
}

func (l *Local) Classify(_ context.Context, text string) (model.Classification, error) {
	text = strings.TrimSpace(text)

	scores := make(map[model.Tag]int)
	var matchedKeywords []string
	for _, rule := range keywordTable {
		if strings.Contains(text, rule.keyword) {
			scores[rule.tag] += rule.weight
			matchedKeywords = append(matchedKeywords, rule.keyword)
		}
	}

	matchedModels := lexiconMatches(text)
	for _, m := range matchedModels {
		scores[m.tag] += fuzzyMatchWeight
	}

	seats := extractSeats(text)
	if seats >= vanSeatBonusMin {
		scores[model.TagVan] += vanSeatBonus
	}

	return model.Classification{
		Tags:      rankTags(scores),
		Scores:    scores,
		Seats:     seats,
		Rationale: buildRationale(matchedKeywords, matchedModels, seats),
	}, nil
}

// lexiconMatches returns up to fuzzyMaxMatches lexicon entries whose model
// name fuzzily occurs in the text, best score first.
func lexiconMatches(text string) []lexiconEntry {
	if text == "" {
		return nil
	}

	type scored struct {
		entry lexiconEntry
		score int
	}
	var hits []scored
	for _, entry := range modelLexicon {
		matches := fuzzy.Find(entry.name, []string{text})
		if len(matches) == 0 || matches[0].Score < fuzzyScoreFloor {
			continue
		}
		hits = append(hits, scored{entry: entry, score: matches[0].Score})
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].score > hits[j].score
	})
	if len(hits) > fuzzyMaxMatches {
		hits = hits[:fuzzyMaxMatches]
	}

	result := make([]lexiconEntry, 0, len(hits))
	for _, h := range hits {
		result = append(result, h.entry)
	}
	return result
}

// extractSeats returns the first explicit seat count in the text, or
// model.SeatsUnknown.
func extractSeats(text string) int {
	m := seatPattern.FindStringSubmatch(text)
	if m == nil {
		return model.SeatsUnknown
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return model.SeatsUnknown
	}
	return n
}

// rankTags orders tags with positive score by descending score, breaking
// ties with the fixed category priority list.
func rankTags(scores map[model.Tag]int) []model.Tag {
	tags := make([]model.Tag, 0, len(scores))
	for tag, score := range scores {
		if score > 0 {
			tags = append(tags, tag)
		}
	}
	sort.Slice(tags, func(i, j int) bool {
		si, sj := scores[tags[i]], scores[tags[j]]
		if si != sj {
			return si > sj
		}
		return model.PriorityIndex(tags[i]) < model.PriorityIndex(tags[j])
	})
	return tags
}

func buildRationale(keywords []string, models []lexiconEntry, seats int) string {
	var parts []string
	if len(keywords) > 0 {
		parts = append(parts, "키워드: "+strings.Join(keywords, ", "))
	}
	if len(models) > 0 {
		names := make([]string, 0, len(models))
		for _, m := range models {
			names = append(names, m.name)
		}
		parts = append(parts, "모델명: "+strings.Join(names, ", "))
	}
	if seats != model.SeatsUnknown {
		parts = append(parts, strconv.Itoa(seats)+"인승 표기")
	}
	if len(parts) == 0 {
		return "일치하는 키워드/모델명 없음"
	}
	return strings.Join(parts, " / ")
}

var _ model.Classifier = (*Local)(nil)
