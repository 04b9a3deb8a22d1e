package salescoach

import (
	"context"
	"testing"
)

func TestTracerCapturesCompletionSpans(t *testing.T) {
	var spans []*Span
	tracer := NewSessionTracer(&CallbackSpanExporter{Fn: func(s *Span) {
		spans = append(spans, s)
	}}, true)

	engine, _ := NewDialogEngine(testSessionConfig(), (&scriptedCompletion{}).fn, EngineConfig{Tracer: tracer})
	engine.Initialize(context.Background())
	engine.ProcessMessage(context.Background(), "Was ist Ihnen wichtig?")

	if len(spans) != 2 {
		t.Fatalf("expected 2 completion spans, got %d", len(spans))
	}
	if spans[0].Name != "initialize" || spans[1].Name != "process_message" {
		t.Fatalf("unexpected span names: %q, %q", spans[0].Name, spans[1].Name)
	}
	for _, s := range spans {
		if s.Kind != SpanKindCompletion || s.Status != "ok" {
			t.Fatalf("unexpected span: %+v", s)
		}
		if s.TraceID == "" || s.SpanID == "" {
			t.Fatalf("expected ids on span: %+v", s)
		}
	}
	if spans[0].TraceID != spans[1].TraceID {
		t.Fatal("expected one trace per session")
	}
}

func TestTracerRecordsErrors(t *testing.T) {
	var spans []*Span
	tracer := NewSessionTracer(&CallbackSpanExporter{Fn: func(s *Span) {
		spans = append(spans, s)
	}}, true)

	engine, _ := NewDialogEngine(testSessionConfig(), func(ctx context.Context, m []CompletionMessage) (string, error) {
		return "", nil
	}, EngineConfig{Tracer: tracer})
	engine.Initialize(context.Background())

	if len(spans) != 1 || spans[0].Status != "error" {
		t.Fatalf("expected one error span, got %+v", spans)
	}
}

func TestDisabledTracerIsInert(t *testing.T) {
	called := false
	tracer := NewSessionTracer(&CallbackSpanExporter{Fn: func(s *Span) { called = true }}, false)

	span := tracer.Start("x", SpanKindSession, nil)
	tracer.End(span, "ok", "")
	if called {
		t.Fatal("disabled tracer must not export")
	}

	// A nil tracer is safe too.
	var nilTracer *SessionTracer
	nilTracer.End(nilTracer.Start("x", SpanKindSession, nil), "ok", "")
}
