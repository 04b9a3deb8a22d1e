package salescoach

import (
	"fmt"
	"strings"
)

// ──────────────────────────────────────────────
// Conversation State Tracker — deterministic per-turn customer state
// ──────────────────────────────────────────────
//
// ConversationState is the simulated customer's behavioral state, evolved
// once per trainee message from the Pattern Matcher verdict. No randomness:
// the same message sequence always produces the same trajectory.

// ConversationState holds the per-session customer state.
// All bounded fields stay within their ranges after every update.
type ConversationState struct {
	CustomerMood       int  `json:"customer_mood"`       // -10..10
	TrustLevel         int  `json:"trust_level"`         // 0..100
	InterestLevel      int  `json:"interest_level"`      // 0..100
	PatienceRemaining  int  `json:"patience_remaining"`  // 0..100
	ObjectionCount     int  `json:"objection_count"`     // reserved, never incremented
	ClosingOpportunity bool `json:"closing_opportunity"` // recomputed each turn, not sticky

	// Fractional patience carry so sub-integer decay (e.g. 2/2.0 per turn)
	// is not lost to rounding across turns.
	PatienceFraction float64 `json:"patience_fraction,omitempty"`
}

// NewConversationState returns the fixed session start state.
func NewConversationState() *ConversationState {
	return &ConversationState{
		CustomerMood:      0,
		TrustLevel:        30,
		InterestLevel:     20,
		PatienceRemaining: 100,
	}
}

// Clone returns a defensive copy.
func (s *ConversationState) Clone() *ConversationState {
	c := *s
	return &c
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// StateTracker applies Pattern Matcher verdicts to a ConversationState.
type StateTracker struct{}

// NewStateTracker creates a tracker.
func NewStateTracker() *StateTracker {
	return &StateTracker{}
}

// Apply mutates state according to the analysis of one trainee message.
// Deltas are applied in fixed order, each clamped immediately; the flag
// rules are independent and additive. patienceMultiplier is the difficulty
// patience factor: decay per turn is 2/multiplier, so a patient beginner
// customer (2.0) loses 1 point per turn, an expert one (0.3) ~6.7.
func (t *StateTracker) Apply(state *ConversationState, analysis *MessageAnalysis, patienceMultiplier float64) {
	if analysis.PressureDetected {
		state.TrustLevel = clampInt(state.TrustLevel-15, 0, 100)
		state.CustomerMood = clampInt(state.CustomerMood-3, -10, 10)
		state.PatienceRemaining = clampInt(state.PatienceRemaining-20, 0, 100)
	}
	if analysis.PrematurePitch {
		state.TrustLevel = clampInt(state.TrustLevel-10, 0, 100)
		state.InterestLevel = clampInt(state.InterestLevel-5, 0, 100)
	}
	if analysis.TrustIssue {
		state.TrustLevel = clampInt(state.TrustLevel-20, 0, 100)
		state.CustomerMood = clampInt(state.CustomerMood-2, -10, 10)
	}
	if analysis.GoodQuestion {
		state.TrustLevel = clampInt(state.TrustLevel+5, 0, 100)
		state.InterestLevel = clampInt(state.InterestLevel+3, 0, 100)
		state.CustomerMood = clampInt(state.CustomerMood+1, -10, 10)
	}

	// Patience always decays, regardless of flags.
	if patienceMultiplier > 0 {
		state.PatienceFraction += 2.0 / patienceMultiplier
		whole := int(state.PatienceFraction)
		if whole > 0 {
			state.PatienceFraction -= float64(whole)
			state.PatienceRemaining = clampInt(state.PatienceRemaining-whole, 0, 100)
		}
	}

	// Recomputed fresh each turn — never sticky.
	state.ClosingOpportunity = state.TrustLevel >= 70 &&
		state.InterestLevel >= 60 &&
		state.CustomerMood >= 3
}

// FormatForPrompt renders the hidden status block appended to the outgoing
// completion payload. It is a transient decoration: never shown to the
// trainee, never persisted in the history.
func (s *ConversationState) FormatForPrompt() string {
	var lines []string
	lines = append(lines, "[INTERNER ZUSTAND - nicht erwähnen:]")
	lines = append(lines, fmt.Sprintf("- Stimmung: %d/10", s.CustomerMood))
	lines = append(lines, fmt.Sprintf("- Vertrauen: %d%%", s.TrustLevel))
	lines = append(lines, fmt.Sprintf("- Interesse: %d%%", s.InterestLevel))
	lines = append(lines, fmt.Sprintf("- Geduld: %d%%", s.PatienceRemaining))
	if s.ClosingOpportunity {
		lines = append(lines, "- ACHTUNG: Kunde ist kaufbereit!")
	}
	if s.PatienceRemaining < 30 {
		lines = append(lines, "- ACHTUNG: Kunde verliert Geduld!")
	}
	return strings.Join(lines, "\n")
}
