package salescoach

import "strings"

// ──────────────────────────────────────────────
// Sales Pattern Detector — rule-based message classifier
// ──────────────────────────────────────────────
//
// Scans a single trainee message for sales-psychology signals via
// case-insensitive substring matching. Zero LLM cost, fully deterministic.
//
// Usage:
//
//	d := salescoach.NewSalesPatternDetector(nil)
//	a := d.Analyze("Was ist Ihnen dabei am wichtigsten?", 30)
//	if a.GoodQuestion { ... }

// Pattern list keys.
const (
	PatternPressure       = "pressure"
	PatternPrematurePitch = "premature_pitch"
	PatternGoodQuestion   = "good_question"
	PatternTrustBuilder   = "trust_builder"
	PatternTrustDestroyer = "trust_destroyer"
)

// Narrative labels and suggestions attached by Analyze. Single-valued:
// the first matching rule wins.
const (
	weaknessPressure   = "Druckaufbau erkannt"
	weaknessPitch      = "Zu früher Produktpitch"
	weaknessTrustIssue = "Vertrauenszerstörendes Muster"
	strongGoodQuestion = "Gute Frage gestellt"

	suggestionPressure   = "Kunden reagieren auf Druck mit Ablehnung. Versuche stattdessen Vertrauen aufzubauen."
	suggestionPitch      = "Du hast gepitcht, bevor der Bedarf klar war. Stelle erst mehr Fragen."
	suggestionTrustIssue = "Vermeide absolute Aussagen und Widerspruch. Zeige stattdessen Verständnis."
)

// DefaultSalesPatterns provides the German phrase packs for the DACH
// sales-training market. Structure: pattern key -> []phrases.
//
// Override via SalesPatternDetector.SetPatterns(), AddPhrases(), or a TOML
// phrase pack (LoadPatternPack).
func DefaultSalesPatterns() map[string][]string {
	return map[string][]string{
		PatternPressure: {
			"nur heute", "letzte chance", "schnell entscheiden", "exklusiv",
			"andere kunden warten", "morgen ist es zu spät", "einmalig",
			"jetzt oder nie", "limitiert", "nur noch wenige", "dringend",
		},
		PatternPrematurePitch: {
			"unser produkt", "wir bieten", "unsere lösung", "ich möchte ihnen",
			"lassen sie mich erklären", "das beste daran ist",
		},
		PatternGoodQuestion: {
			"was", "wie", "warum", "welche", "wann", "wer",
			"erzählen sie", "können sie beschreiben", "was meinen sie mit",
		},
		PatternTrustBuilder: {
			"verstehe", "nachvollziehbar", "das klingt", "interessant",
			"das höre ich oft", "verständlich", "guter punkt",
		},
		PatternTrustDestroyer: {
			"sie müssen", "sie sollten unbedingt", "falsch", "nein aber",
			"das stimmt nicht", "garantiert",
		},
	}
}

// SalesPatternDetector classifies trainee messages against phrase packs.
//
// The threshold controls when a pitch counts as premature: a pitch phrase
// only sets PrematurePitch while the current trust level is still below it.
type SalesPatternDetector struct {
	patterns       map[string][]string
	pitchThreshold int
}

// NewSalesPatternDetector creates a detector.
// patterns nil = use the German defaults. Pitch threshold defaults to 50.
func NewSalesPatternDetector(patterns map[string][]string) *SalesPatternDetector {
	if patterns == nil {
		patterns = DefaultSalesPatterns()
	}
	return &SalesPatternDetector{
		patterns:       patterns,
		pitchThreshold: 50,
	}
}

// SetPatterns replaces the entire phrase pack map.
func (d *SalesPatternDetector) SetPatterns(patterns map[string][]string) {
	d.patterns = patterns
}

// AddPhrases appends phrases to one pattern list.
//
// Example:
//
//	d.AddPhrases(salescoach.PatternPressure, []string{"only today"})
func (d *SalesPatternDetector) AddPhrases(key string, phrases []string) {
	if d.patterns == nil {
		d.patterns = make(map[string][]string)
	}
	d.patterns[key] = append(d.patterns[key], phrases...)
}

// Phrases returns a copy of one pattern list (for the scoring engine and
// for introspection).
func (d *SalesPatternDetector) Phrases(key string) []string {
	src := d.patterns[key]
	out := make([]string, len(src))
	copy(out, src)
	return out
}

func (d *SalesPatternDetector) matches(key, lowerMsg string) bool {
	for _, p := range d.patterns[key] {
		if p != "" && strings.Contains(lowerMsg, strings.ToLower(p)) {
			return true
		}
	}
	return false
}

// Analyze classifies one trainee message.
//
// Parameters:
//   - message: raw trainee message text
//   - currentTrustLevel: trust level before this message (0-100)
//
// The four boolean flags are computed independently. Weakness/StrongPoint/
// Suggestion are single-valued: pressure > premature pitch > trust issue >
// good question, first match wins. Idempotent: same inputs, same result.
func (d *SalesPatternDetector) Analyze(message string, currentTrustLevel int) *MessageAnalysis {
	lower := strings.ToLower(message)

	a := &MessageAnalysis{
		PressureDetected: d.matches(PatternPressure, lower),
		TrustIssue:       d.matches(PatternTrustDestroyer, lower),
	}

	// A pitch is only premature while trust is still low.
	if d.matches(PatternPrematurePitch, lower) && currentTrustLevel < d.pitchThreshold {
		a.PrematurePitch = true
	}

	// A question lead-in only counts together with an actual question mark.
	if d.matches(PatternGoodQuestion, lower) && strings.Contains(message, "?") {
		a.GoodQuestion = true
	}

	switch {
	case a.PressureDetected:
		a.Weakness = weaknessPressure
		a.Suggestion = suggestionPressure
	case a.PrematurePitch:
		a.Weakness = weaknessPitch
		a.Suggestion = suggestionPitch
	case a.TrustIssue:
		a.Weakness = weaknessTrustIssue
		a.Suggestion = suggestionTrustIssue
	case a.GoodQuestion:
		a.StrongPoint = strongGoodQuestion
	}

	return a
}
