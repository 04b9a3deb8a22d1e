package salescoach

import (
	"context"
	"time"
)

// ──────────────────────────────────────────────
// Conversation history types
// ──────────────────────────────────────────────

// Message roles. The system role carries the roleplay prompt and is never
// shown to the trainee; it is excluded from scoring and transcripts.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// MessageAnalysis is the Pattern Matcher verdict for one trainee message.
// The four booleans are computed independently; at most one of
// StrongPoint/Weakness is set, first matching rule wins (pressure >
// premature pitch > trust issue > good question).
type MessageAnalysis struct {
	PressureDetected bool   `json:"pressure_detected"`
	PrematurePitch   bool   `json:"premature_pitch"`
	TrustIssue       bool   `json:"trust_issue"`
	GoodQuestion     bool   `json:"good_question"`
	StrongPoint      string `json:"strong_point,omitempty"`
	Weakness         string `json:"weakness,omitempty"`
	Suggestion       string `json:"suggestion,omitempty"`
}

// ConversationMessage is one entry in the append-only session history.
// Analysis is only set on user-role messages.
type ConversationMessage struct {
	Role      string           `json:"role"`
	Content   string           `json:"content"`
	Timestamp time.Time        `json:"timestamp"`
	Analysis  *MessageAnalysis `json:"analysis,omitempty"`
}

// CompletionMessage is one entry of the payload sent to the text-completion
// service. Content may carry the transient status block; it is never the
// stored history entry itself.
type CompletionMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// CompletionFunc is the seam to the external text-completion service.
// It receives the full ordered message list and returns the generated
// customer reply. Model, temperature and length limits are the caller's
// concern; so are timeout and retry policy (cancel via ctx).
type CompletionFunc func(ctx context.Context, messages []CompletionMessage) (string, error)
