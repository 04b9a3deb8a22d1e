package salescoach

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"sync"
	"time"
)

// ──────────────────────────────────────────────
// Tracing — per-turn span recording
// ──────────────────────────────────────────────
//
// Lightweight tracing around the two external touch points of a session:
// completion calls and scoring. Disabled tracers cost nothing.

// SpanKind classifies a span.
type SpanKind string

const (
	SpanKindSession    SpanKind = "session"
	SpanKindCompletion SpanKind = "completion"
	SpanKindScoring    SpanKind = "scoring"
)

// Span is a single unit of work inside a session.
type Span struct {
	SpanID    string                 `json:"span_id"`
	TraceID   string                 `json:"trace_id"`
	Name      string                 `json:"name"`
	Kind      SpanKind               `json:"kind"`
	StartTime time.Time              `json:"start_time"`
	EndTime   time.Time              `json:"end_time,omitempty"`
	Attrs     map[string]interface{} `json:"attrs,omitempty"`
	Status    string                 `json:"status"` // "running", "ok", "error"
	Error     string                 `json:"error,omitempty"`
}

// DurationMs returns the span duration in milliseconds.
func (s *Span) DurationMs() float64 {
	end := s.EndTime
	if end.IsZero() {
		end = time.Now()
	}
	return float64(end.Sub(s.StartTime).Microseconds()) / 1000.0
}

// SpanExporter receives finished spans.
type SpanExporter interface {
	Export(span *Span)
}

// NullSpanExporter discards all spans.
type NullSpanExporter struct{}

func (e *NullSpanExporter) Export(span *Span) {}

// ConsoleSpanExporter prints spans to log.
type ConsoleSpanExporter struct{}

func (e *ConsoleSpanExporter) Export(span *Span) {
	log.Printf("[Trace] %s %s | %s | %.1fms", span.Kind, span.Name, span.Status, span.DurationMs())
}

// CallbackSpanExporter calls a function for each span.
type CallbackSpanExporter struct {
	Fn func(span *Span)
}

func (e *CallbackSpanExporter) Export(span *Span) { e.Fn(span) }

// SessionTracer creates spans under one trace per session.
type SessionTracer struct {
	exporter SpanExporter
	enabled  bool
	traceID  string
	mu       sync.Mutex
}

// NewSessionTracer creates a tracer. exporter nil = discard.
func NewSessionTracer(exporter SpanExporter, enabled bool) *SessionTracer {
	if exporter == nil {
		exporter = &NullSpanExporter{}
	}
	return &SessionTracer{exporter: exporter, enabled: enabled}
}

// Start creates and starts a span. Disabled tracers return an inert span.
func (t *SessionTracer) Start(name string, kind SpanKind, attrs map[string]interface{}) *Span {
	if t == nil || !t.enabled {
		return &Span{Name: name, Kind: kind, Status: "ok"}
	}
	t.mu.Lock()
	if t.traceID == "" {
		t.traceID = randomHex(16)
	}
	traceID := t.traceID
	t.mu.Unlock()

	return &Span{
		SpanID:    randomHex(6),
		TraceID:   traceID,
		Name:      name,
		Kind:      kind,
		StartTime: time.Now(),
		Attrs:     attrs,
		Status:    "running",
	}
}

// End finishes a span and exports it.
func (t *SessionTracer) End(span *Span, status, errMsg string) {
	if t == nil || !t.enabled {
		return
	}
	span.EndTime = time.Now()
	span.Status = status
	span.Error = errMsg
	t.exporter.Export(span)
}

func randomHex(n int) string {
	b := make([]byte, n)
	rand.Read(b)
	return hex.EncodeToString(b)
}
