package model

import "context"

// Tag is a coarse vehicle category used by the deduction policy. The values
// mirror the category names of the extraction contract (Korean labels are
// what both the keyword table and the provider enum emit).
type Tag string

const (
	TagLightCar Tag = "경차" // light/mini car
	TagCargo    Tag = "화물" // cargo / freight
	TagVan      Tag = "승합" // van / minibus
	TagBus      Tag = "버스"
	TagPickup   Tag = "픽업"
	TagSUV      Tag = "SUV"
	TagSedan    Tag = "세단"
	TagCoupe    Tag = "쿠페"
	TagWagon    Tag = "왜건"
)

// TagPriority is the fixed tie-break order for tags with equal scores.
// Lower index sorts first; tags not listed sort last.
var TagPriority = []Tag{
	TagLightCar, TagCargo, TagVan, TagBus, TagPickup,
	TagSUV, TagSedan, TagCoupe, TagWagon,
}

// PriorityIndex returns the tie-break rank of a tag; unknown tags rank last.
func PriorityIndex(t Tag) int {
	for i, p := range TagPriority {
		if p == t {
			return i
		}
	}
	return len(TagPriority)
}

// SeatsUnknown is the sentinel for "no seat count found in the text".
const SeatsUnknown = -1

// Classification is the classifier output: ranked category tags
// (highest-confidence first), the full score map, the seat count extracted
// from the text (SeatsUnknown when absent) and a short human-readable
// rationale.
type Classification struct {
	Tags      []Tag       `json:"tags"`
	Scores    map[Tag]int `json:"scores,omitempty"`
	Seats     int         `json:"seats"`
	Rationale string      `json:"rationale,omitempty"`
}

// Top returns the highest-ranked tag, or "" when nothing matched.
func (c Classification) Top() Tag {
	if len(c.Tags) == 0 {
		return ""
	}
	return c.Tags[0]
}

// Has reports whether any of the given tags appears in the ranked tag list.
func (c Classification) Has(tags ...Tag) bool {
	for _, t := range c.Tags {
		for _, want := range tags {
			if t == want {
				return true
			}
		}
	}
	return false
}

// SeatsKnown reports whether a seat count was extracted from the text.
func (c Classification) SeatsKnown() bool {
	return c.Seats != SeatsUnknown
}

// Classifier maps a free-text vehicle description to a Classification.
//
// The local implementation is pure and never returns an error. Provider
// backed implementations must absorb provider failures into the safe
// fallback classification instead of propagating them; a non-nil error is
// reserved for programming errors, never for provider outages.
type Classifier interface {
	Classify(ctx context.Context, text string) (Classification, error)
}
