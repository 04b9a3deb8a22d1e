package salescoach

import "fmt"

// ──────────────────────────────────────────────
// Error taxonomy
// ──────────────────────────────────────────────
//
// Three error classes cross the SDK boundary:
//
//   - ConfigError:       unknown persona/industry/difficulty at session
//                        creation. Fatal, raised before any state exists.
//   - CompletionError:   the text-completion service failed or returned
//                        empty text. Retryable; history and state are not
//                        advanced when it occurs.
//   - SessionStateError: a call arrived in the wrong lifecycle stage
//                        (e.g. message to an ended session). No mutation.

// ConfigError reports an unknown catalog identifier.
type ConfigError struct {
	Field string // "customer_type", "industry", "difficulty"
	Value string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("salescoach: unknown %s %q", e.Field, e.Value)
}

// CompletionError reports a failed or empty upstream completion call.
// Retryable is always true: the caller may re-invoke the same operation,
// the engine guarantees analysis and state were not applied.
type CompletionError struct {
	Op        string // "initialize", "process_message"
	Err       error  // underlying error, nil when the service returned empty text
	Retryable bool
}

func (e *CompletionError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("salescoach: completion service returned empty text during %s", e.Op)
	}
	return fmt.Sprintf("salescoach: completion service failed during %s: %v", e.Op, e.Err)
}

func (e *CompletionError) Unwrap() error { return e.Err }

// SessionStateError reports a lifecycle violation.
type SessionStateError struct {
	Op       string // attempted operation
	Status   SessionStatus
	Expected SessionStatus
}

func (e *SessionStateError) Error() string {
	return fmt.Sprintf("salescoach: cannot %s: session is %s, expected %s", e.Op, e.Status, e.Expected)
}

// SessionStatus is the lifecycle stage of a session.
type SessionStatus string

const (
	StatusCreated SessionStatus = "created" // engine built, not yet initialized
	StatusActive  SessionStatus = "active"  // greeting delivered, accepting messages
	StatusEnded   SessionStatus = "ended"   // scored, terminal
)
