package classify

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/vat-advisor-poc/server/internal/advisor/model"
)

// basic safety limits to avoid pathological provider outputs
const (
	maxExtractionLen = 64 * 1024 // 64KB
	maxRationaleLen  = 500
	maxErrSnippet    = 200
)

// providerTagScore is the score recorded for the single category the
// provider returns, so the Classification shape matches the local one.
const providerTagScore = 4

// providerTypes maps the extraction enum (the category labels the provider
// is instructed to answer with) onto policy tags. 트럭 folds into cargo and
// 밴 into van/minibus for deduction purposes.
var providerTypes = map[string]model.Tag{
	"경차":  model.TagLightCar,
	"화물":  model.TagCargo,
	"트럭":  model.TagCargo,
	"승합":  model.TagVan,
	"밴":   model.TagVan,
	"버스":  model.TagBus,
	"픽업":  model.TagPickup,
	"SUV": model.TagSUV,
	"세단":  model.TagSedan,
	"쿠페":  model.TagCoupe,
	"왜건":  model.TagWagon,
}

// providerTypeOrder fixes the enum order used in the prompt.
var providerTypeOrder = []string{
	"경차", "화물", "승합", "버스", "밴", "픽업", "SUV", "세단", "쿠페", "왜건", "트럭",
}

func providerTypeList() string {
	return strings.Join(providerTypeOrder, ", ")
}

type extraction struct {
	VehicleType string `json:"vehicle_type"`
	Seats       int    `json:"seats"`
	Rationale   string `json:"rationale"`
}

// parseExtraction coerces the provider's JSON answer into the common
// Classification shape. Any structural problem is an error; the caller maps
// it to the safe fallback.
func parseExtraction(content string) (model.Classification, error) {
	if len(content) > maxExtractionLen {
		return model.Classification{}, fmt.Errorf("extraction output too large (%d bytes)", len(content))
	}

	raw := stripCodeFence(strings.TrimSpace(content))
	if raw == "" {
		return model.Classification{}, fmt.Errorf("empty extraction output")
	}

	var ext extraction
	dec := json.NewDecoder(strings.NewReader(raw))
	if err := dec.Decode(&ext); err != nil {
		return model.Classification{}, fmt.Errorf("decode extraction %q: %w", snippet(raw), err)
	}

	tag, ok := providerTypes[strings.TrimSpace(ext.VehicleType)]
	if !ok {
		return model.Classification{}, fmt.Errorf("unknown vehicle_type %q", snippet(ext.VehicleType))
	}

	seats := ext.Seats
	if seats < model.SeatsUnknown {
		seats = model.SeatsUnknown
	}

	rationale := strings.TrimSpace(ext.Rationale)
	if len(rationale) > maxRationaleLen {
		rationale = rationale[:maxRationaleLen]
	}

	return model.Classification{
		Tags:      []model.Tag{tag},
		Scores:    map[model.Tag]int{tag: providerTagScore},
		Seats:     seats,
		Rationale: rationale,
	}, nil
}

// stripCodeFence unwraps ```json fenced blocks some models insist on.
func stripCodeFence(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

func snippet(s string) string {
	s = strings.TrimSpace(s)
	if len(s) <= maxErrSnippet {
		return s
	}
	return s[:maxErrSnippet]
}
