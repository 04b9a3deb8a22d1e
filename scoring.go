package salescoach

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"
)

// ──────────────────────────────────────────────
// Scoring Engine — post-session scorecard computation
// ──────────────────────────────────────────────
//
// A pure function of (message history, final state): replaying the same
// inputs always yields the same ScoreCard, feedback text included. Only
// user-role messages count; the system prompt never reaches scoring.

// Category weights. They sum to 1.00.
const (
	weightLeading   = 0.20
	weightNeeds     = 0.25
	weightObjection = 0.20
	weightClosing   = 0.15
	weightTrust     = 0.20
)

// CategoryScore is one scored dimension with feedback and examples.
type CategoryScore struct {
	Score    int      `json:"score"` // 0-100
	Feedback string   `json:"feedback"`
	Examples []string `json:"examples"`
}

// CriticalMoment is a flagged trainee message surfaced in the scorecard.
type CriticalMoment struct {
	MessageIndex   int    `json:"message_index"` // index among user messages
	UserMessage    string `json:"user_message"`  // first 100 runes
	Issue          string `json:"issue"`
	Recommendation string `json:"recommendation"`
	Impact         string `json:"impact"` // "positive" / "negative"
}

// ScoreCategories groups the five category scores.
type ScoreCategories struct {
	ConversationLeading CategoryScore `json:"conversation_leading"`
	NeedsAnalysis       CategoryScore `json:"needs_analysis"`
	ObjectionHandling   CategoryScore `json:"objection_handling"`
	Closing             CategoryScore `json:"closing"`
	TrustBuilding       CategoryScore `json:"trust_building"`
}

// ScoreCard is the immutable post-session evaluation artifact.
type ScoreCard struct {
	OverallScore    int              `json:"overall_score"` // 0-100
	Categories      ScoreCategories  `json:"categories"`
	Feedback        string           `json:"feedback"`
	CriticalMoments []CriticalMoment `json:"critical_moments"`
	Strengths       []string         `json:"strengths"`
	Weaknesses      []string         `json:"weaknesses"`
	XPEarned        int              `json:"xp_earned"`
}

// PatternAnalysis is the aggregate derived from one scan over all trainee
// messages. PitchBeforeNeed is order-sensitive (pitch phrase before the
// first open question); it is independent of the per-message
// PrematurePitch flag, which is trust-threshold-sensitive.
type PatternAnalysis struct {
	QuestionCount   int  `json:"question_count"`
	OpenQuestions   int  `json:"open_questions"`
	ClosedQuestions int  `json:"closed_questions"`
	PressureCount   int  `json:"pressure_count"`
	PitchBeforeNeed bool `json:"pitch_before_need"`
	TrustBuilders   int  `json:"trust_builders"`
	TrustDestroyers int  `json:"trust_destroyers"`
	ActiveListening int  `json:"active_listening"`
}

// Phrase sets used only by the scoring pass.
var (
	openQuestionStarts     = []string{"was", "wie", "warum", "welche", "wann", "wer", "erzählen"}
	activeListeningPhrases = []string{"verstehe", "interessant", "das höre ich", "nachvollziehbar"}
	scoringPitchPhrases    = []string{"unser produkt", "wir bieten", "unsere lösung"}
	empathyPhrases         = []string{"verstehe", "nachvollziehbar", "darf ich fragen", "was genau"}
	confrontationPhrases   = []string{"aber", "nein", "trotzdem", "sie müssen"}
	closingAttemptPhrases  = []string{"nächster schritt", "termin", "wann können wir", "wie geht es weiter"}
)

// Score computes the scorecard for a finished session.
//
// A session with zero trainee messages yields the category bases (with the
// no-closing-attempt penalty still applied), no critical moments, no
// strengths/weaknesses and the lowest feedback band.
func Score(history []ConversationMessage, finalState *ConversationState) *ScoreCard {
	if finalState == nil {
		finalState = NewConversationState()
	}

	var userMessages []ConversationMessage
	for _, m := range history {
		if m.Role == RoleUser {
			userMessages = append(userMessages, m)
		}
	}

	patterns := analyzePatterns(userMessages)
	moments := findCriticalMoments(userMessages)

	leading := scoreConversationLeading(userMessages, patterns)
	needs := scoreNeedsAnalysis(patterns)
	objection := scoreObjectionHandling(userMessages, patterns)
	closing := scoreClosing(userMessages, finalState)
	trust := scoreTrustBuilding(patterns, finalState)

	overall := int(math.Round(
		float64(leading.Score)*weightLeading +
			float64(needs.Score)*weightNeeds +
			float64(objection.Score)*weightObjection +
			float64(closing.Score)*weightClosing +
			float64(trust.Score)*weightTrust))

	var strengths, weaknesses []string
	if len(userMessages) > 0 {
		collect := func(score int, strength, weakness string) {
			if score >= 70 {
				strengths = append(strengths, strength)
			} else if score < 50 {
				weaknesses = append(weaknesses, weakness)
			}
		}
		collect(leading.Score, "Gute Gesprächsführung", "Gesprächsführung verbessern")
		collect(needs.Score, "Effektive Bedarfsermittlung", "Mehr Fragen stellen")
		collect(objection.Score, "Souveräne Einwandbehandlung", "Einwände besser behandeln")
		collect(closing.Score, "Konsequent zum Abschluss geführt", "Stärker auf nächste Schritte hinarbeiten")
		collect(trust.Score, "Starker Vertrauensaufbau", "Mehr Vertrauen aufbauen")
	}

	return &ScoreCard{
		OverallScore: overall,
		Categories: ScoreCategories{
			ConversationLeading: leading,
			NeedsAnalysis:       needs,
			ObjectionHandling:   objection,
			Closing:             closing,
			TrustBuilding:       trust,
		},
		Feedback:        generateFeedback(overall, patterns, finalState),
		CriticalMoments: moments,
		Strengths:       strengths,
		Weaknesses:      weaknesses,
		XPEarned:        calculateXP(overall, len(userMessages)),
	}
}

func containsAny(lower string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

func analyzePatterns(messages []ConversationMessage) PatternAnalysis {
	var p PatternAnalysis
	hadNeedQuestion := false

	for _, msg := range messages {
		lower := strings.ToLower(msg.Content)

		if strings.Contains(msg.Content, "?") {
			p.QuestionCount++
			if containsAny(lower, openQuestionStarts) {
				p.OpenQuestions++
				hadNeedQuestion = true
			} else {
				p.ClosedQuestions++
			}
		}

		// Pitch before the first open question — order-sensitive.
		if !hadNeedQuestion && containsAny(lower, scoringPitchPhrases) {
			p.PitchBeforeNeed = true
		}

		if msg.Analysis != nil {
			if msg.Analysis.PressureDetected {
				p.PressureCount++
			}
			if msg.Analysis.TrustIssue {
				p.TrustDestroyers++
			}
			if msg.Analysis.GoodQuestion {
				p.TrustBuilders++
			}
		}

		if containsAny(lower, activeListeningPhrases) {
			p.ActiveListening++
		}
	}
	return p
}

func scoreConversationLeading(messages []ConversationMessage, p PatternAnalysis) CategoryScore {
	score := 50.0

	score += float64(p.OpenQuestions) * 5
	if p.ClosedQuestions > p.OpenQuestions*2 {
		score -= 15
	}
	score += float64(p.ActiveListening) * 8

	if len(messages) > 0 {
		total := 0
		for _, m := range messages {
			total += utf8.RuneCountInString(m.Content)
		}
		avg := float64(total) / float64(len(messages))
		if avg < 50 {
			score -= 10
		}
		if avg > 150 && avg < 300 {
			score += 10
		}
	}

	final := clampInt(int(math.Round(score)), 0, 100)

	var examples []string
	if p.OpenQuestions > 3 {
		examples = append(examples, "Gute offene Fragen gestellt")
	}
	if p.ActiveListening > 2 {
		examples = append(examples, "Aktives Zuhören gezeigt")
	}
	if p.ClosedQuestions > p.OpenQuestions*2 {
		examples = append(examples, "Zu viele geschlossene Fragen")
	}

	feedback := "Du hast zu wenig gefragt und zu viel selbst geredet."
	if final >= 70 {
		feedback = "Du hast das Gespräch gut geführt und den Kunden sprechen lassen."
	} else if final >= 50 {
		feedback = "Versuche mehr offene Fragen zu stellen und aktiver zuzuhören."
	}

	return CategoryScore{Score: final, Feedback: feedback, Examples: examples}
}

func scoreNeedsAnalysis(p PatternAnalysis) CategoryScore {
	score := 40.0

	score += float64(p.OpenQuestions) * 8
	if p.PitchBeforeNeed {
		score -= 30
	}
	if p.QuestionCount > 5 {
		score += 15
	}

	final := clampInt(int(math.Round(score)), 0, 100)

	var examples []string
	if p.PitchBeforeNeed {
		examples = append(examples, "Pitch vor Bedarfsklärung - klassischer Fehler")
	}
	if p.OpenQuestions >= 3 {
		examples = append(examples, "Gute Bedarfsfragen gestellt")
	}

	var feedback string
	switch {
	case p.PitchBeforeNeed:
		feedback = "Du hast gepitcht, bevor du den Bedarf verstanden hast. Das ist im B2B-Vertrieb der häufigste Fehler."
	case final >= 70:
		feedback = "Du hast den Bedarf gut ermittelt, bevor du Lösungen angeboten hast."
	default:
		feedback = "Stelle mehr Fragen, um den konkreten Bedarf des Kunden zu verstehen."
	}

	return CategoryScore{Score: final, Feedback: feedback, Examples: examples}
}

func scoreObjectionHandling(messages []ConversationMessage, p PatternAnalysis) CategoryScore {
	score := 60.0

	score -= float64(p.PressureCount) * 20

	goodCount := 0
	badCount := 0
	for _, msg := range messages {
		lower := strings.ToLower(msg.Content)
		for _, g := range empathyPhrases {
			if strings.Contains(lower, g) {
				goodCount++
			}
		}
		for _, bad := range confrontationPhrases {
			if strings.Contains(lower, bad) {
				badCount++
			}
		}
	}
	score += float64(goodCount) * 10
	score -= float64(badCount) * 8

	final := clampInt(int(math.Round(score)), 0, 100)

	var examples []string
	if p.PressureCount > 0 {
		examples = append(examples, fmt.Sprintf("%dx Druck aufgebaut - schlecht bei skeptischen Kunden", p.PressureCount))
	}
	if goodCount > 2 {
		examples = append(examples, "Einwände empathisch aufgenommen")
	}

	var feedback string
	switch {
	case p.PressureCount > 0:
		feedback = "Du hast Druck gemacht. Skeptische Kunden reagieren darauf mit Ablehnung."
	case final >= 70:
		feedback = "Du hast Einwände gut aufgenommen und nicht argumentiert."
	default:
		feedback = "Bei Einwänden solltest du erst verstehen, dann antworten."
	}

	return CategoryScore{Score: final, Feedback: feedback, Examples: examples}
}

func scoreClosing(messages []ConversationMessage, finalState *ConversationState) CategoryScore {
	score := 50.0

	switch {
	case finalState.TrustLevel >= 70 && finalState.InterestLevel >= 60:
		score += 30
	case finalState.TrustLevel >= 50 && finalState.InterestLevel >= 40:
		score += 10
	case finalState.TrustLevel < 30:
		score -= 20
	}

	hasClosingAttempt := false
	for _, m := range messages {
		if containsAny(strings.ToLower(m.Content), closingAttemptPhrases) {
			hasClosingAttempt = true
			break
		}
	}

	if hasClosingAttempt && finalState.TrustLevel >= 50 {
		score += 15
	}
	if !hasClosingAttempt {
		score -= 10
	}

	final := clampInt(int(math.Round(score)), 0, 100)

	examples := []string{"Kein Abschlussversuch erkennbar"}
	if hasClosingAttempt {
		examples = []string{"Nächste Schritte angesprochen"}
	}

	feedback := "Kein klarer Abschluss - was ist der nächste Schritt?"
	if final >= 70 {
		feedback = "Du hast das Gespräch gut zu einem nächsten Schritt geführt."
	} else if final >= 50 {
		feedback = "Du hättest stärker auf einen konkreten nächsten Schritt hinarbeiten können."
	}

	return CategoryScore{Score: final, Feedback: feedback, Examples: examples}
}

func scoreTrustBuilding(p PatternAnalysis, finalState *ConversationState) CategoryScore {
	score := 50.0

	score += float64(finalState.TrustLevel-30) * 0.5
	score += float64(finalState.CustomerMood) * 3
	score -= float64(p.TrustDestroyers) * 15
	score += float64(p.TrustBuilders) * 8

	final := clampInt(int(math.Round(score)), 0, 100)

	var examples []string
	if p.TrustDestroyers > 0 {
		examples = append(examples, "Vertrauenszerstörende Muster erkannt")
	} else if p.TrustBuilders > 2 {
		examples = append(examples, "Vertrauen durch Verständnis aufgebaut")
	}

	feedback := "Der Kunde vertraut dir nicht. Zu viel Verkäufer-Modus."
	if final >= 70 {
		feedback = "Du hast erfolgreich Vertrauen aufgebaut."
	} else if final >= 50 {
		feedback = "Mehr auf Verständnis und weniger auf Überzeugung setzen."
	}

	return CategoryScore{Score: final, Feedback: feedback, Examples: examples}
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func findCriticalMoments(messages []ConversationMessage) []CriticalMoment {
	moments := []CriticalMoment{}

	for i, msg := range messages {
		if msg.Analysis == nil {
			continue
		}
		excerpt := truncateRunes(msg.Content, 100)
		if msg.Analysis.PressureDetected {
			moments = append(moments, CriticalMoment{
				MessageIndex:   i,
				UserMessage:    excerpt,
				Issue:          "Druckaufbau erkannt",
				Recommendation: "Vermeide zeitlichen Druck. Kunden brauchen Zeit zum Entscheiden.",
				Impact:         "negative",
			})
		}
		if msg.Analysis.PrematurePitch {
			moments = append(moments, CriticalMoment{
				MessageIndex:   i,
				UserMessage:    excerpt,
				Issue:          "Zu früher Pitch",
				Recommendation: "Erst fragen, dann pitchen. Der Bedarf war noch nicht klar.",
				Impact:         "negative",
			})
		}
		if msg.Analysis.GoodQuestion {
			moments = append(moments, CriticalMoment{
				MessageIndex:   i,
				UserMessage:    excerpt,
				Issue:          "Gute Frage",
				Recommendation: "Weiter so! Offene Fragen öffnen den Kunden.",
				Impact:         "positive",
			})
		}
	}

	return moments
}

func generateFeedback(overall int, p PatternAnalysis, finalState *ConversationState) string {
	var parts []string

	switch {
	case overall >= 80:
		parts = append(parts, "Ausgezeichnetes Gespräch! Du hast die wichtigsten Verkaufsprinzipien beherrscht.")
	case overall >= 65:
		parts = append(parts, "Gutes Gespräch mit Verbesserungspotenzial.")
	case overall >= 50:
		parts = append(parts, "Durchschnittliches Gespräch. Es gibt klare Bereiche zur Verbesserung.")
	default:
		parts = append(parts, "Dieses Gespräch zeigt grundlegende Schwächen im Verkaufsansatz.")
	}

	if p.PitchBeforeNeed {
		parts = append(parts, "Hauptproblem: Du hast zu früh gepitcht. Im B2B-Vertrieb ist das der häufigste Fehler. Erst Bedarf klären, dann Lösung anbieten.")
	}
	if p.PressureCount > 0 {
		parts = append(parts, "Druck funktioniert nicht: Du hast versucht, Druck aufzubauen. Geschäftskunden reagieren darauf mit Ablehnung. Vertrauen ist wichtiger als Dringlichkeit.")
	}
	if p.OpenQuestions >= 4 {
		parts = append(parts, "Stärke: Gute Fragetechnik. Du hast offene Fragen genutzt, um den Kunden zu verstehen.")
	}

	// Final-state paragraphs are mutually exclusive.
	if finalState.TrustLevel < 40 {
		parts = append(parts, "Ergebnis: Der Kunde vertraut dir nicht. Ohne Vertrauen kein Geschäft.")
	} else if finalState.TrustLevel >= 70 && finalState.InterestLevel >= 60 {
		parts = append(parts, "Ergebnis: Der Kunde ist interessiert und offen für nächste Schritte.")
	}

	return strings.Join(parts, "\n\n")
}

func calculateXP(score, messageCount int) int {
	xp := int(math.Round(float64(score) * 1.5))

	if messageCount >= 10 {
		xp += 25
	}
	if messageCount >= 20 {
		xp += 25
	}

	// Excellence bonuses stack: a 95 earns both.
	if score >= 90 {
		xp += 50
	}
	if score >= 80 {
		xp += 25
	}
	return xp
}
