package salescoach

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"go.uber.org/atomic"
)

// ──────────────────────────────────────────────
// Session layer — pluggable store + lifecycle manager
// ──────────────────────────────────────────────
//
// The SDK does not assume a storage mechanism: a session is one JSON
// snapshot blob keyed by session id, behind a small CRUD interface.
// In-process map for development and tests, Redis/SQL in production
// (see the store sub-package).

// SessionStore is the pluggable storage backend for session snapshots.
type SessionStore interface {
	// Get returns the snapshot for a session id, or "" if absent.
	Get(sessionID string) (string, error)
	// Put writes the snapshot for a session id.
	Put(sessionID, snapshot string) error
	// Delete removes a session.
	Delete(sessionID string) error
	// List returns all stored session ids.
	List() ([]string, error)
}

// SessionSnapshot is the persisted form of one session.
type SessionSnapshot struct {
	Config    SessionConfig         `json:"config"`
	Status    SessionStatus         `json:"status"`
	History   []ConversationMessage `json:"history"`
	State     *ConversationState    `json:"state"`
	ScoreCard *ScoreCard            `json:"score_card,omitempty"`
	CreatedAt time.Time             `json:"created_at"`
	UpdatedAt time.Time             `json:"updated_at"`
}

// EncodeSnapshot serializes a snapshot to its stored JSON form.
func EncodeSnapshot(s *SessionSnapshot) (string, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("encode session snapshot: %w", err)
	}
	return string(data), nil
}

// DecodeSnapshot parses a stored snapshot.
func DecodeSnapshot(raw string) (*SessionSnapshot, error) {
	var s SessionSnapshot
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return nil, fmt.Errorf("decode session snapshot: %w", err)
	}
	return &s, nil
}

// InMemorySessionStore is a thread-safe in-memory SessionStore for
// development. Data is lost on restart.
type InMemorySessionStore struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewInMemorySessionStore creates a new in-memory store.
func NewInMemorySessionStore() *InMemorySessionStore {
	return &InMemorySessionStore{data: make(map[string]string)}
}

func (s *InMemorySessionStore) Get(sessionID string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data[sessionID], nil
}

func (s *InMemorySessionStore) Put(sessionID, snapshot string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[sessionID] = snapshot
	return nil
}

func (s *InMemorySessionStore) Delete(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, sessionID)
	return nil
}

func (s *InMemorySessionStore) List() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.data))
	for id := range s.data {
		ids = append(ids, id)
	}
	return ids, nil
}

// ──────────────────────────────────────────────
// SessionManager
// ──────────────────────────────────────────────

// SessionManager owns the engine instances and the session lifecycle:
// create → active (messages) → ended (scored, terminal). Sessions are
// fully independent; each engine serializes its own turns.
//
// Usage:
//
//	mgr := salescoach.NewSessionManager(salescoach.NewInMemorySessionStore(), completeFn)
//	greeting, _ := mgr.CreateSession(ctx, "sess-1", cfg)
//	turn, _ := mgr.SubmitMessage(ctx, "sess-1", "Guten Tag!")
//	card, _ := mgr.EndSession(ctx, "sess-1")
type SessionManager struct {
	mu      sync.Mutex
	engines map[string]*DialogEngine

	store    SessionStore
	complete CompletionFunc
	engOpts  EngineConfig
	clock    func() time.Time

	created atomic.Int64
	ended   atomic.Int64
}

// NewSessionManager creates a manager on top of a session store.
func NewSessionManager(store SessionStore, complete CompletionFunc, opts ...EngineConfig) *SessionManager {
	var opt EngineConfig
	if len(opts) > 0 {
		opt = opts[0]
	}
	clock := opt.Clock
	if clock == nil {
		clock = time.Now
	}
	return &SessionManager{
		engines:  make(map[string]*DialogEngine),
		store:    store,
		complete: complete,
		engOpts:  opt,
		clock:    clock,
	}
}

// CreateSession validates the config, initializes a fresh engine and
// persists the first snapshot. The session id is assigned by the caller.
// Returns the customer greeting.
func (m *SessionManager) CreateSession(ctx context.Context, sessionID string, config SessionConfig) (string, error) {
	if raw, err := m.store.Get(sessionID); err != nil {
		return "", fmt.Errorf("session store get: %w", err)
	} else if raw != "" {
		return "", fmt.Errorf("salescoach: session %q already exists", sessionID)
	}

	engine, err := NewDialogEngine(config, m.complete, m.engOpts)
	if err != nil {
		return "", err
	}

	greeting, err := engine.Initialize(ctx)
	if err != nil {
		return "", err
	}

	m.mu.Lock()
	m.engines[sessionID] = engine
	m.mu.Unlock()

	if err := m.saveSnapshot(sessionID, engine, nil); err != nil {
		return "", err
	}

	m.created.Inc()
	log.Printf("[SessionManager] Session created | id=%s persona=%s", sessionID, config.CustomerType)
	return greeting, nil
}

// SubmitMessage routes one trainee message to the session engine. If the
// engine is not resident (process restart), it is restored from the
// stored snapshot by deterministic replay first.
func (m *SessionManager) SubmitMessage(ctx context.Context, sessionID, text string) (*TurnResult, error) {
	engine, err := m.engineFor(sessionID, "process message")
	if err != nil {
		return nil, err
	}

	turn, err := engine.ProcessMessage(ctx, text)
	if err != nil {
		return nil, err
	}

	if err := m.saveSnapshot(sessionID, engine, nil); err != nil {
		return nil, err
	}
	return turn, nil
}

// EndSession marks the session terminal, scores it and persists the
// scorecard. Terminal is final: further messages are rejected.
func (m *SessionManager) EndSession(ctx context.Context, sessionID string) (*ScoreCard, error) {
	engine, err := m.engineFor(sessionID, "end session")
	if err != nil {
		return nil, err
	}

	history, finalState, err := engine.End()
	if err != nil {
		return nil, err
	}

	span := m.engOpts.Tracer.Start("score", SpanKindScoring, map[string]interface{}{"messages": len(history)})
	card := Score(history, finalState)
	m.engOpts.Tracer.End(span, "ok", "")

	if err := m.saveSnapshot(sessionID, engine, card); err != nil {
		return nil, err
	}

	m.mu.Lock()
	delete(m.engines, sessionID)
	m.mu.Unlock()

	m.ended.Inc()
	log.Printf("[SessionManager] Session ended | id=%s score=%d xp=%d", sessionID, card.OverallScore, card.XPEarned)
	return card, nil
}

// GetState returns a copy of the current customer state of a session.
func (m *SessionManager) GetState(sessionID string) (*ConversationState, error) {
	engine, err := m.engineFor(sessionID, "read state")
	if err != nil {
		return nil, err
	}
	return engine.GetState(), nil
}

// GetSnapshot returns the persisted snapshot of a session (works for
// ended sessions too).
func (m *SessionManager) GetSnapshot(sessionID string) (*SessionSnapshot, error) {
	raw, err := m.store.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session store get: %w", err)
	}
	if raw == "" {
		return nil, fmt.Errorf("salescoach: unknown session %q", sessionID)
	}
	return DecodeSnapshot(raw)
}

// ActiveCount returns the number of resident engines.
func (m *SessionManager) ActiveCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.engines)
}

// CreatedTotal returns the number of sessions created by this manager.
func (m *SessionManager) CreatedTotal() int64 { return m.created.Load() }

// EndedTotal returns the number of sessions ended by this manager.
func (m *SessionManager) EndedTotal() int64 { return m.ended.Load() }

func (m *SessionManager) engineFor(sessionID, op string) (*DialogEngine, error) {
	m.mu.Lock()
	if engine, ok := m.engines[sessionID]; ok {
		m.mu.Unlock()
		return engine, nil
	}
	m.mu.Unlock()

	raw, err := m.store.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session store get: %w", err)
	}
	if raw == "" {
		return nil, fmt.Errorf("salescoach: unknown session %q", sessionID)
	}
	snap, err := DecodeSnapshot(raw)
	if err != nil {
		return nil, err
	}
	if snap.Status == StatusEnded {
		return nil, &SessionStateError{Op: op, Status: StatusEnded, Expected: StatusActive}
	}

	engine, err := RestoreDialogEngine(snap.Config, m.complete, snap.History, m.engOpts)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.engines[sessionID]; ok {
		return existing, nil
	}
	m.engines[sessionID] = engine
	log.Printf("[SessionManager] Session restored from snapshot | id=%s", sessionID)
	return engine, nil
}

func (m *SessionManager) saveSnapshot(sessionID string, engine *DialogEngine, card *ScoreCard) error {
	now := m.clock()
	snap := &SessionSnapshot{
		Config:    engine.config,
		Status:    engine.Status(),
		History:   engine.History(),
		State:     engine.GetState(),
		ScoreCard: card,
		CreatedAt: now,
		UpdatedAt: now,
	}

	// Preserve the original creation time across updates.
	if raw, err := m.store.Get(sessionID); err == nil && raw != "" {
		if prev, err := DecodeSnapshot(raw); err == nil {
			snap.CreatedAt = prev.CreatedAt
			if card == nil {
				snap.ScoreCard = prev.ScoreCard
			}
		}
	}

	raw, err := EncodeSnapshot(snap)
	if err != nil {
		return err
	}
	if err := m.store.Put(sessionID, raw); err != nil {
		return fmt.Errorf("session store put: %w", err)
	}
	return nil
}
