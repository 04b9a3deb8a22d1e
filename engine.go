package salescoach

import (
	"context"
	"log"
	"sync"
	"time"

	"go.uber.org/atomic"

	"github.com/vertriebslab/salescoach-sdk-go/catalog"
)

// ──────────────────────────────────────────────
// Dialog Engine — per-session roleplay orchestrator
// ──────────────────────────────────────────────
//
// One DialogEngine owns one simulated conversation: history, customer
// state, and the seam to the text-completion service.
//
// Core flow per turn:
//
//	trainee message → Pattern Matcher → State Tracker → completion call
//	(history + hidden status block) → customer reply appended
//
// Usage:
//
//	engine, _ := salescoach.NewDialogEngine(cfg, myCompletionFn)
//	greeting, _ := engine.Initialize(ctx)
//	turn, _ := engine.ProcessMessage(ctx, "Was ist Ihnen wichtig?")
//	fmt.Println(turn.Response)

// SessionConfig selects the persona, industry and difficulty for one
// session. Scenario optionally overrides the default setting free-text.
type SessionConfig struct {
	CustomerType CustomerType `json:"customer_type"`
	Industry     Industry     `json:"industry"`
	Difficulty   Difficulty   `json:"difficulty"`
	Scenario     string       `json:"scenario,omitempty"`
}

// Validate resolves the config against the catalog.
// Returns a *ConfigError naming the first unknown identifier.
func (c SessionConfig) Validate() error {
	if _, err := catalog.PersonaFor(c.CustomerType); err != nil {
		return &ConfigError{Field: "customer_type", Value: string(c.CustomerType)}
	}
	if _, err := catalog.IndustryFor(c.Industry); err != nil {
		return &ConfigError{Field: "industry", Value: string(c.Industry)}
	}
	if _, err := catalog.DifficultyFor(c.Difficulty); err != nil {
		return &ConfigError{Field: "difficulty", Value: string(c.Difficulty)}
	}
	return nil
}

// TurnResult is returned by ProcessMessage.
type TurnResult struct {
	Response string             `json:"response"`
	Analysis *MessageAnalysis   `json:"analysis"`
	State    *ConversationState `json:"state"`
}

// EngineConfig holds optional engine dependencies.
type EngineConfig struct {
	Detector *SalesPatternDetector // nil = German defaults
	Tracer   *SessionTracer        // nil = no tracing
	Clock    func() time.Time      // nil = time.Now, injectable for tests
}

// DialogEngine drives one simulated sales conversation.
// All methods are safe for concurrent use; turns are serialized by an
// internal mutex so no two ProcessMessage calls interleave.
type DialogEngine struct {
	mu sync.Mutex

	config     SessionConfig
	persona    *catalog.Persona
	industry   *catalog.IndustryKnowledge
	difficulty *catalog.DifficultySettings

	detector *SalesPatternDetector
	tracker  *StateTracker
	complete CompletionFunc
	tracer   *SessionTracer
	clock    func() time.Time

	history []ConversationMessage
	state   *ConversationState
	status  SessionStatus
	turns   atomic.Int64
}

// NewDialogEngine creates an engine for one session.
// Fails with *ConfigError before any state exists if the config names an
// unknown catalog identifier.
func NewDialogEngine(config SessionConfig, complete CompletionFunc, opts ...EngineConfig) (*DialogEngine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	persona, _ := catalog.PersonaFor(config.CustomerType)
	industry, _ := catalog.IndustryFor(config.Industry)
	difficulty, _ := catalog.DifficultyFor(config.Difficulty)

	var opt EngineConfig
	if len(opts) > 0 {
		opt = opts[0]
	}
	if opt.Detector == nil {
		opt.Detector = NewSalesPatternDetector(nil)
	}
	if opt.Clock == nil {
		opt.Clock = time.Now
	}

	return &DialogEngine{
		config:     config,
		persona:    persona,
		industry:   industry,
		difficulty: difficulty,
		detector:   opt.Detector,
		tracker:    NewStateTracker(),
		complete:   complete,
		tracer:     opt.Tracer,
		clock:      opt.Clock,
		status:     StatusCreated,
	}, nil
}

// Initialize builds the system prompt, requests the customer greeting and
// seeds the session state. Returns the greeting text.
//
// On completion failure nothing is committed: the engine stays in the
// created stage and Initialize may be retried.
func (e *DialogEngine) Initialize(ctx context.Context) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.status != StatusCreated {
		return "", &SessionStateError{Op: "initialize", Status: e.status, Expected: StatusCreated}
	}

	systemPrompt := BuildSystemPrompt(e.persona, e.industry, e.difficulty, e.config.Scenario)

	// The opening instruction is a synthetic turn: sent, never stored.
	payload := []CompletionMessage{
		{Role: RoleSystem, Content: systemPrompt},
		{Role: RoleUser, Content: openingInstruction},
	}

	greeting, err := e.callCompletion(ctx, "initialize", payload)
	if err != nil {
		return "", err
	}

	now := e.clock()
	e.history = []ConversationMessage{
		{Role: RoleSystem, Content: systemPrompt, Timestamp: now},
		{Role: RoleAssistant, Content: greeting, Timestamp: now},
	}
	e.state = NewConversationState()
	e.status = StatusActive

	log.Printf("[DialogEngine] Session initialized | persona=%s industry=%s difficulty=%s",
		e.config.CustomerType, e.config.Industry, e.config.Difficulty)

	return greeting, nil
}

// ProcessMessage handles one trainee message: classify, update state,
// fetch the customer reply, append both turns to the history.
//
// The completion payload carries the updated numeric state as a hidden
// status block on the final user turn; the block is never stored. On
// completion failure neither history nor state advance, so the call may
// be retried with the same message.
func (e *DialogEngine) ProcessMessage(ctx context.Context, userMessage string) (*TurnResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.status != StatusActive {
		return nil, &SessionStateError{Op: "process message", Status: e.status, Expected: StatusActive}
	}

	analysis := e.detector.Analyze(userMessage, e.state.TrustLevel)

	// Stage the update; committed only after a successful completion call.
	staged := e.state.Clone()
	e.tracker.Apply(staged, analysis, e.difficulty.PatienceMultiplier)

	payload := make([]CompletionMessage, 0, len(e.history)+1)
	for _, m := range e.history {
		payload = append(payload, CompletionMessage{Role: m.Role, Content: m.Content})
	}
	payload = append(payload, CompletionMessage{
		Role:    RoleUser,
		Content: userMessage + "\n\n" + staged.FormatForPrompt(),
	})

	response, err := e.callCompletion(ctx, "process_message", payload)
	if err != nil {
		return nil, err
	}

	now := e.clock()
	e.history = append(e.history,
		ConversationMessage{Role: RoleUser, Content: userMessage, Timestamp: now, Analysis: analysis},
		ConversationMessage{Role: RoleAssistant, Content: response, Timestamp: e.clock()},
	)
	e.state = staged
	e.turns.Inc()

	return &TurnResult{
		Response: response,
		Analysis: analysis,
		State:    staged.Clone(),
	}, nil
}

func (e *DialogEngine) callCompletion(ctx context.Context, op string, payload []CompletionMessage) (string, error) {
	span := e.tracer.Start(op, SpanKindCompletion, map[string]interface{}{"messages": len(payload)})
	text, err := e.complete(ctx, payload)
	if err != nil {
		e.tracer.End(span, "error", err.Error())
		log.Printf("[DialogEngine] Completion failed | op=%s err=%v", op, err)
		return "", &CompletionError{Op: op, Err: err, Retryable: true}
	}
	if text == "" {
		e.tracer.End(span, "error", "empty completion")
		return "", &CompletionError{Op: op, Retryable: true}
	}
	e.tracer.End(span, "ok", "")
	return text, nil
}

// End marks the session terminal and returns the transcript-relevant
// history plus the final state for scoring. Further messages are rejected.
func (e *DialogEngine) End() ([]ConversationMessage, *ConversationState, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.status != StatusActive {
		return nil, nil, &SessionStateError{Op: "end session", Status: e.status, Expected: StatusActive}
	}
	e.status = StatusEnded

	return e.historyCopyLocked(), e.state.Clone(), nil
}

// GetState returns a copy of the current customer state.
func (e *DialogEngine) GetState() *ConversationState {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state == nil {
		return NewConversationState()
	}
	return e.state.Clone()
}

// GetPersonaInfo returns a copy of the session persona.
func (e *DialogEngine) GetPersonaInfo() *catalog.Persona {
	p, _ := catalog.PersonaFor(e.config.CustomerType)
	return p
}

// GetIndustryInfo returns a copy of the session industry record.
func (e *DialogEngine) GetIndustryInfo() *catalog.IndustryKnowledge {
	k, _ := catalog.IndustryFor(e.config.Industry)
	return k
}

// GetDifficulty returns a copy of the session difficulty settings.
func (e *DialogEngine) GetDifficulty() *catalog.DifficultySettings {
	d, _ := catalog.DifficultyFor(e.config.Difficulty)
	return d
}

// Status returns the lifecycle stage.
func (e *DialogEngine) Status() SessionStatus {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.status
}

// TurnCount returns the number of completed trainee turns.
func (e *DialogEngine) TurnCount() int64 {
	return e.turns.Load()
}

// History returns the trainee-visible transcript: a copy of the history
// without the system-role prompt.
func (e *DialogEngine) History() []ConversationMessage {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.historyCopyLocked()
}

func (e *DialogEngine) historyCopyLocked() []ConversationMessage {
	out := make([]ConversationMessage, 0, len(e.history))
	for _, m := range e.history {
		if m.Role == RoleSystem {
			continue
		}
		c := m
		if m.Analysis != nil {
			a := *m.Analysis
			c.Analysis = &a
		}
		out = append(out, c)
	}
	return out
}

// ReplayState re-derives the customer state from a stored transcript by
// running every user-role message through the detector and tracker in
// order. Completion text plays no part, so the result is bit-identical to
// the state recorded after the original live run.
func ReplayState(detector *SalesPatternDetector, messages []ConversationMessage, patienceMultiplier float64) *ConversationState {
	if detector == nil {
		detector = NewSalesPatternDetector(nil)
	}
	tracker := NewStateTracker()
	state := NewConversationState()
	for _, m := range messages {
		if m.Role != RoleUser {
			continue
		}
		analysis := detector.Analyze(m.Content, state.TrustLevel)
		tracker.Apply(state, analysis, patienceMultiplier)
	}
	return state
}

// RestoreDialogEngine rebuilds an engine from a stored transcript, e.g.
// after a process restart. State is recomputed by replay; the transcript
// is adopted as-is (assistant text is the recorded one, not regenerated).
func RestoreDialogEngine(config SessionConfig, complete CompletionFunc, history []ConversationMessage, opts ...EngineConfig) (*DialogEngine, error) {
	e, err := NewDialogEngine(config, complete, opts...)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.history = make([]ConversationMessage, 0, len(history)+1)
	hasSystem := false
	userTurns := int64(0)
	for _, m := range history {
		c := m
		if m.Analysis != nil {
			a := *m.Analysis
			c.Analysis = &a
		}
		if m.Role == RoleSystem {
			hasSystem = true
		}
		if m.Role == RoleUser {
			userTurns++
		}
		e.history = append(e.history, c)
	}
	if !hasSystem {
		systemPrompt := BuildSystemPrompt(e.persona, e.industry, e.difficulty, e.config.Scenario)
		e.history = append([]ConversationMessage{
			{Role: RoleSystem, Content: systemPrompt, Timestamp: e.clock()},
		}, e.history...)
	}

	e.state = ReplayState(e.detector, history, e.difficulty.PatienceMultiplier)
	e.status = StatusActive
	e.turns.Store(userTurns)
	return e, nil
}
