package salescoach

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/vertriebslab/salescoach-sdk-go/catalog"
)

// ══════════════════════════════════════════════
// Dialog Engine tests
// ══════════════════════════════════════════════

func testSessionConfig() SessionConfig {
	return SessionConfig{
		CustomerType: catalog.SkepticalCEO,
		Industry:     catalog.SaaSB2B,
		Difficulty:   catalog.Intermediate,
	}
}

// scriptedCompletion returns canned replies in order and records every
// payload it was called with.
type scriptedCompletion struct {
	replies  []string
	calls    int
	payloads [][]CompletionMessage
}

func (s *scriptedCompletion) fn(ctx context.Context, messages []CompletionMessage) (string, error) {
	s.payloads = append(s.payloads, messages)
	reply := "Ja?"
	if s.calls < len(s.replies) {
		reply = s.replies[s.calls]
	}
	s.calls++
	return reply, nil
}

func TestNewDialogEngineRejectsUnknownConfig(t *testing.T) {
	cfg := testSessionConfig()
	cfg.CustomerType = "angry_wizard"

	_, err := NewDialogEngine(cfg, func(ctx context.Context, m []CompletionMessage) (string, error) {
		return "", nil
	})
	var cerr *ConfigError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected *ConfigError, got %v", err)
	}
	if cerr.Field != "customer_type" {
		t.Fatalf("unexpected field: %q", cerr.Field)
	}
}

func TestInitializeSendsOpeningInstruction(t *testing.T) {
	script := &scriptedCompletion{replies: []string{"Müller hier. Worum geht es?"}}
	engine, err := NewDialogEngine(testSessionConfig(), script.fn)
	if err != nil {
		t.Fatalf("create engine: %v", err)
	}

	greeting, err := engine.Initialize(context.Background())
	if err != nil {
		t.Fatalf("initialize failed: %v", err)
	}
	if greeting != "Müller hier. Worum geht es?" {
		t.Fatalf("unexpected greeting: %q", greeting)
	}

	payload := script.payloads[0]
	if len(payload) != 2 {
		t.Fatalf("expected system + opening instruction, got %d messages", len(payload))
	}
	if payload[0].Role != RoleSystem {
		t.Fatalf("expected system prompt first, got role %q", payload[0].Role)
	}
	if payload[1].Role != RoleUser || !strings.Contains(payload[1].Content, "Der Verkäufer ruft jetzt an") {
		t.Fatalf("expected opening instruction as user turn, got %+v", payload[1])
	}

	// The synthetic opening turn is never stored.
	for _, m := range engine.History() {
		if strings.Contains(m.Content, "Der Verkäufer ruft jetzt an") {
			t.Fatal("opening instruction must not appear in the history")
		}
	}
	if engine.Status() != StatusActive {
		t.Fatalf("expected active status, got %q", engine.Status())
	}
}

func TestInitializeRetryableAfterFailure(t *testing.T) {
	fail := true
	complete := func(ctx context.Context, m []CompletionMessage) (string, error) {
		if fail {
			return "", fmt.Errorf("upstream down")
		}
		return "Guten Tag.", nil
	}

	engine, _ := NewDialogEngine(testSessionConfig(), complete)
	_, err := engine.Initialize(context.Background())
	var cerr *CompletionError
	if !errors.As(err, &cerr) || !cerr.Retryable {
		t.Fatalf("expected retryable *CompletionError, got %v", err)
	}
	if engine.Status() != StatusCreated {
		t.Fatalf("engine must stay in created stage after failure, got %q", engine.Status())
	}

	fail = false
	if _, err := engine.Initialize(context.Background()); err != nil {
		t.Fatalf("retry failed: %v", err)
	}
}

func TestProcessMessageBeforeInitialize(t *testing.T) {
	engine, _ := NewDialogEngine(testSessionConfig(), (&scriptedCompletion{}).fn)

	_, err := engine.ProcessMessage(context.Background(), "Hallo?")
	var serr *SessionStateError
	if !errors.As(err, &serr) {
		t.Fatalf("expected *SessionStateError, got %v", err)
	}
	if serr.Expected != StatusActive {
		t.Fatalf("unexpected expected-status: %q", serr.Expected)
	}
}

func TestProcessMessageAdvancesStateAndHistory(t *testing.T) {
	script := &scriptedCompletion{replies: []string{"Müller.", "Momentan über Empfehlungen."}}
	engine, _ := NewDialogEngine(testSessionConfig(), script.fn)
	engine.Initialize(context.Background())

	turn, err := engine.ProcessMessage(context.Background(), "Wie gewinnen Sie aktuell neue Kunden?")
	if err != nil {
		t.Fatalf("process failed: %v", err)
	}
	if turn.Response != "Momentan über Empfehlungen." {
		t.Fatalf("unexpected response: %q", turn.Response)
	}
	if !turn.Analysis.GoodQuestion {
		t.Fatal("expected good question analysis")
	}
	// Good question from 30/20/0: trust 35, interest 23, mood 1.
	if turn.State.TrustLevel != 35 || turn.State.InterestLevel != 23 || turn.State.CustomerMood != 1 {
		t.Fatalf("unexpected state: %+v", turn.State)
	}

	history := engine.History()
	if len(history) != 3 {
		t.Fatalf("expected greeting + user + reply, got %d messages", len(history))
	}
	if history[1].Analysis == nil || !history[1].Analysis.GoodQuestion {
		t.Fatal("expected analysis stored on the user turn")
	}
	if engine.TurnCount() != 1 {
		t.Fatalf("expected 1 turn, got %d", engine.TurnCount())
	}
}

func TestStatusBlockTransient(t *testing.T) {
	script := &scriptedCompletion{}
	engine, _ := NewDialogEngine(testSessionConfig(), script.fn)
	engine.Initialize(context.Background())
	engine.ProcessMessage(context.Background(), "Guten Tag, Herr Müller.")

	// The outgoing payload carries the hidden block on the final user turn.
	payload := script.payloads[1]
	last := payload[len(payload)-1]
	if !strings.Contains(last.Content, "[INTERNER ZUSTAND - nicht erwähnen:]") {
		t.Fatal("expected hidden status block on outgoing user turn")
	}

	// The stored history does not.
	for _, m := range engine.History() {
		if strings.Contains(m.Content, "INTERNER ZUSTAND") {
			t.Fatal("status block must not be stored in the history")
		}
	}

	// And the next payload rebuilds the history from clean text.
	engine.ProcessMessage(context.Background(), "Verstehe.")
	payload = script.payloads[2]
	blocks := 0
	for _, m := range payload {
		blocks += strings.Count(m.Content, "INTERNER ZUSTAND")
	}
	if blocks != 1 {
		t.Fatalf("expected exactly one status block in payload, got %d", blocks)
	}
}

func TestProcessMessageFailureCommitsNothing(t *testing.T) {
	calls := 0
	complete := func(ctx context.Context, m []CompletionMessage) (string, error) {
		calls++
		if calls == 1 {
			return "Müller.", nil
		}
		if calls == 2 {
			return "", errors.New("timeout")
		}
		return "Gute Frage.", nil
	}

	engine, _ := NewDialogEngine(testSessionConfig(), complete)
	engine.Initialize(context.Background())
	before := engine.GetState()

	_, err := engine.ProcessMessage(context.Background(), "Was ist Ihnen wichtig?")
	var cerr *CompletionError
	if !errors.As(err, &cerr) || !cerr.Retryable {
		t.Fatalf("expected retryable *CompletionError, got %v", err)
	}
	if *engine.GetState() != *before {
		t.Fatal("state must not advance on completion failure")
	}
	if len(engine.History()) != 1 {
		t.Fatal("history must not advance on completion failure")
	}

	// Retry with the same message succeeds and commits once.
	turn, err := engine.ProcessMessage(context.Background(), "Was ist Ihnen wichtig?")
	if err != nil {
		t.Fatalf("retry failed: %v", err)
	}
	if turn.State.TrustLevel != 35 {
		t.Fatalf("expected trust 35 after retry, got %d", turn.State.TrustLevel)
	}
	if engine.TurnCount() != 1 {
		t.Fatalf("expected 1 committed turn, got %d", engine.TurnCount())
	}
}

func TestEmptyCompletionIsError(t *testing.T) {
	engine, _ := NewDialogEngine(testSessionConfig(), func(ctx context.Context, m []CompletionMessage) (string, error) {
		return "", nil
	})
	_, err := engine.Initialize(context.Background())
	var cerr *CompletionError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected *CompletionError for empty text, got %v", err)
	}
}

func TestEndIsTerminal(t *testing.T) {
	engine, _ := NewDialogEngine(testSessionConfig(), (&scriptedCompletion{}).fn)
	engine.Initialize(context.Background())
	engine.ProcessMessage(context.Background(), "Guten Tag.")

	history, finalState, err := engine.End()
	if err != nil {
		t.Fatalf("end failed: %v", err)
	}
	if len(history) != 3 || finalState == nil {
		t.Fatalf("unexpected end result: %d messages, state=%v", len(history), finalState)
	}

	if _, err := engine.ProcessMessage(context.Background(), "Noch da?"); err == nil {
		t.Fatal("expected rejection after end")
	}
	if _, _, err := engine.End(); err == nil {
		t.Fatal("expected double end to fail")
	}
}

func TestHistoryExcludesSystemPrompt(t *testing.T) {
	engine, _ := NewDialogEngine(testSessionConfig(), (&scriptedCompletion{}).fn)
	engine.Initialize(context.Background())

	for _, m := range engine.History() {
		if m.Role == RoleSystem {
			t.Fatal("history must not expose the system prompt")
		}
	}
}

func TestReplayMatchesLiveState(t *testing.T) {
	engine, _ := NewDialogEngine(testSessionConfig(), (&scriptedCompletion{}).fn)
	engine.Initialize(context.Background())

	messages := []string{
		"Wie gewinnen Sie aktuell neue Kunden?",
		"Nur heute gibt es einen Rabatt!",
		"Verstehe, das klingt nach viel Handarbeit.",
		"Welche Ziele haben Sie für dieses Jahr?",
	}
	for _, msg := range messages {
		if _, err := engine.ProcessMessage(context.Background(), msg); err != nil {
			t.Fatalf("process %q: %v", msg, err)
		}
	}
	live := engine.GetState()

	diff, _ := catalog.DifficultyFor(catalog.Intermediate)
	replayed := ReplayState(nil, engine.History(), diff.PatienceMultiplier)

	if *live != *replayed {
		t.Fatalf("replay mismatch:\nlive:     %+v\nreplayed: %+v", live, replayed)
	}
}

func TestRestoreDialogEngine(t *testing.T) {
	script := &scriptedCompletion{}
	engine, _ := NewDialogEngine(testSessionConfig(), script.fn)
	engine.Initialize(context.Background())
	engine.ProcessMessage(context.Background(), "Was ist Ihnen bei einem Anbieter wichtig?")
	engine.ProcessMessage(context.Background(), "Nur heute: unser Produkt zum Sonderpreis!")
	wantState := engine.GetState()
	history := engine.History()

	restored, err := RestoreDialogEngine(testSessionConfig(), script.fn, history)
	if err != nil {
		t.Fatalf("restore failed: %v", err)
	}
	if restored.Status() != StatusActive {
		t.Fatalf("expected active, got %q", restored.Status())
	}
	if *restored.GetState() != *wantState {
		t.Fatalf("state mismatch after restore:\nwant %+v\ngot  %+v", wantState, restored.GetState())
	}
	if restored.TurnCount() != 2 {
		t.Fatalf("expected 2 turns, got %d", restored.TurnCount())
	}

	// The restored engine keeps working.
	if _, err := restored.ProcessMessage(context.Background(), "Verstehe."); err != nil {
		t.Fatalf("process after restore: %v", err)
	}
}

func TestGetCatalogInfo(t *testing.T) {
	engine, _ := NewDialogEngine(testSessionConfig(), (&scriptedCompletion{}).fn)

	if p := engine.GetPersonaInfo(); p == nil || p.Type != catalog.SkepticalCEO {
		t.Fatalf("unexpected persona: %+v", p)
	}
	if k := engine.GetIndustryInfo(); k == nil || k.Industry != catalog.SaaSB2B {
		t.Fatalf("unexpected industry: %+v", k)
	}
	if d := engine.GetDifficulty(); d == nil || d.Level != catalog.Intermediate {
		t.Fatalf("unexpected difficulty: %+v", d)
	}
}
