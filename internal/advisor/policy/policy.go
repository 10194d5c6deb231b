// Package policy implements the deduction rules for vehicle input VAT.
// Decide is pure and total: unrecognised vehicle types deliberately fall
// through to the non-deductible passenger default rather than erroring.
package policy

import (
	"strings"

	"github.com/vat-advisor-poc/server/internal/advisor/model"
)

// Outcome is the result kind of a policy evaluation.
type Outcome string

const (
	OutcomeDeductible    Outcome = "deductible"
	OutcomeNonDeductible Outcome = "non_deductible"
	// OutcomeNeedsSeats signals insufficient information: the vehicle is a
	// van/bus but no seat count is known, so the dialogue layer must ask.
	OutcomeNeedsSeats Outcome = "needs_seats"
)

// Reason identifies which rule produced a verdict.
type Reason string

const (
	ReasonIndustryDirectUse Reason = "industry-direct-use"
	ReasonVehicleType       Reason = "vehicle-type"
	ReasonSeatCount         Reason = "seat-count"
	ReasonPassengerDefault  Reason = "passenger-vehicle-default"
)

// Decision is the tagged result of Decide. Seats carries the evaluated seat
// count only for ReasonSeatCount verdicts.
type Decision struct {
	Outcome Outcome
	Reason  Reason
	Seats   int
}

// DeductibleIndustries lists industries whose vehicles are used directly in
// the taxable business, making the input VAT deductible regardless of
// vehicle type. Substring match against the free-text industry answer.
var DeductibleIndustries = []string{"택시", "자동차학원", "자동차임대업"}

// seatThreshold: vans/minibuses are deductible only above this rated capacity.
const seatThreshold = 8

// IndustryDeductible reports whether the industry alone grants the
// deduction (rule 1, checked by the dialogue layer before any vehicle is
// known).
func IndustryDeductible(industry string) bool {
	for _, word := range DeductibleIndustries {
		if strings.Contains(industry, word) {
			return true
		}
	}
	return false
}

// SeatsDeductible applies the seat-count rule: strictly more than 8 seats.
func SeatsDeductible(seats int) bool {
	return seats > seatThreshold
}

// Decide evaluates the deduction rules in order, first match wins:
//
//  1. deductible industry -> deductible
//  2. light car or cargo vehicle -> deductible
//  3. van/minibus or bus -> seat rule when the count is known, otherwise
//     a request for the seat count
//  4. everything else -> non-deductible passenger default
func Decide(industry string, tags []model.Tag, seats int) Decision {
	if IndustryDeductible(industry) {
		return Decision{Outcome: OutcomeDeductible, Reason: ReasonIndustryDirectUse}
	}

	cls := model.Classification{Tags: tags}
	if cls.Has(model.TagLightCar, model.TagCargo) {
		return Decision{Outcome: OutcomeDeductible, Reason: ReasonVehicleType}
	}

	if cls.Has(model.TagVan, model.TagBus) {
		if seats == model.SeatsUnknown {
			return Decision{Outcome: OutcomeNeedsSeats}
		}
		outcome := OutcomeNonDeductible
		if SeatsDeductible(seats) {
			outcome = OutcomeDeductible
		}
		return Decision{Outcome: outcome, Reason: ReasonSeatCount, Seats: seats}
	}

	return Decision{Outcome: OutcomeNonDeductible, Reason: ReasonPassengerDefault}
}
