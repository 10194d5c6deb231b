package model

// Step identifies the current position of a conversation in the
// deduction-decision flow. Steps only ever advance; the only way back to
// StepAwaitIndustry is replacing the whole session.
type Step string

const (
	StepAwaitIndustry Step = "await_industry"
	StepAwaitVehicle  Step = "await_vehicle"
	StepAwaitSeats    Step = "await_seats"
	StepDone          Step = "done"
)

// Role marks the author of a transcript entry.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one transcript entry. The transcript is append-only within a
// session; its order is the causal order of the conversation.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Session holds all mutable state of one deduction conversation.
// Industry and VehicleText are set once and never overwritten; SeatCount is
// nil until the seat count is known and is never overwritten afterwards.
type Session struct {
	ID             string          `json:"id"`
	Step           Step            `json:"step"`
	Industry       string          `json:"industry,omitempty"`
	VehicleText    string          `json:"vehicle_text,omitempty"`
	Classification *Classification `json:"classification,omitempty"`
	SeatCount      *int            `json:"seat_count,omitempty"`
	Transcript     []Message       `json:"transcript"`
}

// Append records a transcript entry and returns the session for chaining.
func (s *Session) Append(role Role, content string) *Session {
	s.Transcript = append(s.Transcript, Message{Role: role, Content: content})
	return s
}

// Snapshot is the read-only projection of a session consumed by the
// presentation layer (sidebar / current-values panel).
type Snapshot struct {
	SessionID   string      `json:"session_id"`
	Step        Step        `json:"step"`
	Industry    string      `json:"industry,omitempty"`
	VehicleText string      `json:"vehicle_text,omitempty"`
	SeatCount   *int        `json:"seat_count,omitempty"`
	Tags        []Tag       `json:"tags,omitempty"`
	Scores      map[Tag]int `json:"scores,omitempty"`
	Rationale   string      `json:"rationale,omitempty"`
}

// Snapshot projects the display fields of the session.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		SessionID:   s.ID,
		Step:        s.Step,
		Industry:    s.Industry,
		VehicleText: s.VehicleText,
		SeatCount:   s.SeatCount,
	}
	if s.Classification != nil {
		snap.Tags = s.Classification.Tags
		snap.Scores = s.Classification.Scores
		snap.Rationale = s.Classification.Rationale
	}
	return snap
}
