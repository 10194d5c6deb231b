package classify

import "github.com/vat-advisor-poc/server/internal/advisor/model"

// The keyword weights, the lexicon, the fuzzy threshold and the bonuses
// below are fixed business constants carried over from the rule set this
// service encodes. They are not tunable model parameters.

type keywordRule struct {
	keyword string
	tag     model.Tag
	weight  int
}

// keywordTable maps substrings of the vehicle description to category tags.
// Each keyword contributes its weight once, however often it occurs.
// Slice, not map: scoring must be deterministic.
var keywordTable = []keywordRule{
	{"경차", model.TagLightCar, 4},
	{"화물", model.TagCargo, 4},
	{"승합", model.TagVan, 4},
	{"버스", model.TagBus, 4},
	{"미니밴", model.TagVan, 4},
	{"밴", model.TagVan, 3},
	{"트럭", model.TagCargo, 3},
	{"픽업", model.TagPickup, 4},
	{"SUV", model.TagSUV, 4},
	{"세단", model.TagSedan, 4},
	{"쿠페", model.TagCoupe, 4},
	{"왜건", model.TagWagon, 4},
	{"승용", model.TagSedan, 2},
}

type lexiconEntry struct {
	name string
	tag  model.Tag
}

// modelLexicon maps well-known Korean market model names to categories for
// inputs that carry no explicit type keyword ("스타렉스 9인승", "모닝").
var modelLexicon = []lexiconEntry{
	{"스타렉스", model.TagVan},
	{"카니발", model.TagVan},
	{"쏠라티", model.TagVan},
	{"카운티", model.TagBus},
	{"봉고", model.TagCargo},
	{"포터", model.TagCargo},
	{"마이티", model.TagCargo},
	{"모닝", model.TagLightCar},
	{"스파크", model.TagLightCar},
	{"레이", model.TagLightCar},
	{"캐스퍼", model.TagLightCar},
	{"소나타", model.TagSedan},
	{"쏘나타", model.TagSedan},
	{"아반떼", model.TagSedan},
	{"그랜저", model.TagSedan},
	{"쏘렌토", model.TagSUV},
	{"투싼", model.TagSUV},
	{"팰리세이드", model.TagSUV},
}

const (
	// fuzzyMatchWeight is added to a tag's score for each lexicon model name
	// found in the input (up to fuzzyMaxMatches closest matches).
	fuzzyMatchWeight = 4
	fuzzyMaxMatches  = 3
	// fuzzyScoreFloor is the minimum sahilm/fuzzy score accepted as a hit.
	fuzzyScoreFloor = 0

	// vanSeatBonus is added to the van tag when the text itself states a
	// capacity of vanSeatBonusMin or more seats.
	vanSeatBonus    = 3
	vanSeatBonusMin = 9
)
