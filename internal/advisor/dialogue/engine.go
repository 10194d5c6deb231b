// Package dialogue owns the deduction conversation: an explicit state
// machine that collects the industry and vehicle description, invokes the
// classifier only when the industry alone cannot decide, and asks for the
// seat count only when the vehicle class requires it.
package dialogue

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/vat-advisor-poc/server/internal/advisor/classify"
	"github.com/vat-advisor-poc/server/internal/advisor/model"
	"github.com/vat-advisor-poc/server/internal/advisor/policy"
	logx "github.com/vat-advisor-poc/server/pkg/logger"
)

// Engine advances one session per utterance. It holds no conversation state
// itself; everything lives in the Session value, so one Engine serves any
// number of sessions.
type Engine struct {
	classifier model.Classifier
}

func New(classifier model.Classifier) *Engine {
	return &Engine{classifier: classifier}
}

// NewSession returns a fresh session with the greeting already emitted,
// positioned at the industry question.
func NewSession() *model.Session {
	s := &model.Session{
		Step:       model.StepAwaitIndustry,
		Transcript: []model.Message{},
	}
	s.Append(model.RoleAssistant, msgGreeting)
	return s
}

// HandleUtterance processes one inbound user utterance against the session
// and returns the transcript delta (the user echo plus every assistant
// message emitted this turn). The session is mutated in place; the step
// either advances or, in the seat retry loop, holds.
func (e *Engine) HandleUtterance(ctx context.Context, s *model.Session, text string) ([]model.Message, error) {
	before := len(s.Transcript)
	s.Append(model.RoleUser, text)

	switch s.Step {
	case model.StepAwaitIndustry:
		e.handleIndustry(s, text)
	case model.StepAwaitVehicle:
		e.handleVehicle(ctx, s, text)
	case model.StepAwaitSeats:
		e.handleSeats(s, text)
	case model.StepDone:
		s.Append(model.RoleAssistant, msgRestartNotice)
	default:
		// unreachable with a well-formed session; treat like DONE
		logx.Error().Str("step", string(s.Step)).Msg("unknown dialogue step")
		s.Append(model.RoleAssistant, msgRestartNotice)
	}

	return s.Transcript[before:], nil
}

func (e *Engine) handleIndustry(s *model.Session, text string) {
	s.Industry = strings.TrimSpace(text)

	if policy.IndustryDeductible(s.Industry) {
		s.Append(model.RoleAssistant, msgIndustryDeductible)
		s.Step = model.StepDone
		return
	}
	s.Append(model.RoleAssistant, msgAskVehicle)
	s.Step = model.StepAwaitVehicle
}

func (e *Engine) handleVehicle(ctx context.Context, s *model.Session, text string) {
	s.VehicleText = strings.TrimSpace(text)

	cls, err := e.classifier.Classify(ctx, s.VehicleText)
	if err != nil {
		// Classifier implementations absorb provider failures themselves;
		// this path guards against a misbehaving implementation.
		logx.Error().Err(err).Msg("classifier returned an error, using fallback classification")
		cls = classify.Fallback(err)
	}
	s.Classification = &cls
	if cls.SeatsKnown() && s.SeatCount == nil {
		seats := cls.Seats
		s.SeatCount = &seats
	}

	s.Append(model.RoleAssistant, reportMessage(s.VehicleText, cls))

	decision := policy.Decide(s.Industry, cls.Tags, cls.Seats)
	if decision.Outcome == policy.OutcomeNeedsSeats {
		s.Append(model.RoleAssistant, msgAskSeats)
		s.Step = model.StepAwaitSeats
		return
	}
	s.Append(model.RoleAssistant, verdictMessage(decision))
	s.Step = model.StepDone
}

func (e *Engine) handleSeats(s *model.Session, text string) {
	seats, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		// recoverable: re-prompt and hold the step
		s.Append(model.RoleAssistant, msgSeatsRetry)
		return
	}

	if s.SeatCount == nil {
		s.SeatCount = &seats
	}

	if policy.SeatsDeductible(seats) {
		s.Append(model.RoleAssistant, fmt.Sprintf(msgSeatsDeductible, seats))
	} else {
		s.Append(model.RoleAssistant, fmt.Sprintf(msgSeatsNonDeductible, seats))
	}
	s.Step = model.StepDone
}

// reportMessage summarises what the classifier made of the vehicle text.
func reportMessage(vehicleText string, cls model.Classification) string {
	tags := "미상"
	if len(cls.Tags) > 0 {
		parts := make([]string, 0, len(cls.Tags))
		for _, t := range cls.Tags {
			parts = append(parts, string(t))
		}
		tags = strings.Join(parts, ", ")
	}
	seats := msgSeatsUnstated
	if cls.SeatsKnown() {
		seats = strconv.Itoa(cls.Seats)
	}
	return fmt.Sprintf(msgClassificationReport, vehicleText, tags, seats, cls.Rationale)
}

// verdictMessage maps a terminal policy decision onto the advisory wording.
func verdictMessage(d policy.Decision) string {
	switch d.Reason {
	case policy.ReasonIndustryDirectUse:
		return msgIndustryDeductible
	case policy.ReasonVehicleType:
		return msgVehicleDeductible
	case policy.ReasonSeatCount:
		if d.Outcome == policy.OutcomeDeductible {
			return fmt.Sprintf(msgSeatsDeductible, d.Seats)
		}
		return fmt.Sprintf(msgSeatsNonDeductible, d.Seats)
	default:
		return msgPassengerDefault
	}
}
