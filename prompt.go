package salescoach

import (
	"fmt"
	"math"
	"strings"

	"github.com/vertriebslab/salescoach-sdk-go/catalog"
)

// ──────────────────────────────────────────────
// System prompt assembly
// ──────────────────────────────────────────────
//
// The system prompt puts the completion model into the customer role:
// persona, industry context, personality dimensions, objection material,
// trigger lists, difficulty, behavioral rules, optional scenario override.
// It is stored as the session's system message and never shown to the
// trainee.

// openingInstruction is the synthetic first user turn that asks the model
// for the customer's greeting.
const openingInstruction = "Der Verkäufer ruft jetzt an oder kommt zum Termin. Beginne das Gespräch als Kunde."

func quoteList(items []string) string {
	lines := make([]string, 0, len(items))
	for _, it := range items {
		lines = append(lines, fmt.Sprintf("- %q", it))
	}
	return strings.Join(lines, "\n")
}

// BuildSystemPrompt assembles the roleplay system prompt.
func BuildSystemPrompt(persona *catalog.Persona, industry *catalog.IndustryKnowledge, diff *catalog.DifficultySettings, scenario string) string {
	var b strings.Builder

	b.WriteString("Du bist ein KI-Trainer für ein deutsches Sales-Training. Du spielst einen realistischen deutschen Kunden.\n\n")

	b.WriteString("=== DEINE ROLLE ===\n")
	fmt.Fprintf(&b, "%s - %s\n%s\n\n", persona.Name, persona.Description, persona.PromptFragment)

	b.WriteString("=== BRANCHE ===\n")
	fmt.Fprintf(&b, "%s: %s\n%s\n\n", industry.Name, industry.Description, industry.PromptFragment)

	b.WriteString("=== PERSÖNLICHKEIT ===\n")
	fmt.Fprintf(&b, "- Geduld: %d/10\n", persona.Personality.Patience)
	fmt.Fprintf(&b, "- Direktheit: %d/10\n", persona.Personality.Directness)
	fmt.Fprintf(&b, "- Risikoscheu: %d/10\n", persona.Personality.RiskAversion)
	fmt.Fprintf(&b, "- Entscheidungstempo: %d/10\n", persona.Personality.DecisionSpeed)
	fmt.Fprintf(&b, "- Preissensibilität: %d/10\n\n", persona.Personality.PriceSensitivity)

	b.WriteString("=== KOMMUNIKATIONSSTIL ===\n")
	b.WriteString(persona.CommunicationStyle)
	b.WriteString("\n\n")

	b.WriteString("=== TYPISCHE EINWÄNDE ===\nNutze diese authentisch, wenn passend:\n")
	b.WriteString(quoteList(persona.TypicalObjections))
	b.WriteString("\n\n")

	b.WriteString("=== SANFTE ABSAGEN ===\n")
	b.WriteString(quoteList(persona.SoftRejections))
	b.WriteString("\n\n")

	b.WriteString("=== VERHALTEN ===\n")
	fmt.Fprintf(&b, "Du wirst GENERVT bei: %s\n", strings.Join(persona.Triggers.Annoyed, ", "))
	fmt.Fprintf(&b, "Du wirst INTERESSIERT bei: %s\n", strings.Join(persona.Triggers.Interested, ", "))
	fmt.Fprintf(&b, "Du bist KAUFBEREIT bei: %s\n\n", strings.Join(persona.Triggers.Buying, ", "))

	b.WriteString("=== BRANCHEN-EINWÄNDE ===\n")
	b.WriteString(quoteList(industry.CommonObjections))
	b.WriteString("\n\n")

	b.WriteString("=== SCHWIERIGKEITSGRAD ===\n")
	fmt.Fprintf(&b, "%s\n", diff.Description)
	fmt.Fprintf(&b, "- Einwand-Häufigkeit: %d%%\n", int(math.Round(diff.ObjectionFrequency*100)))
	fmt.Fprintf(&b, "- Gedulds-Faktor: %gx\n\n", diff.PatienceMultiplier)

	b.WriteString(`=== WICHTIGE REGELN ===
1. Antworte IMMER auf Deutsch
2. Sei authentisch und realistisch - wie ein echter deutscher Geschäftskunde
3. Gib NIEMALS zu schnell nach. Deutsche Kunden sind skeptisch.
4. Wenn der Verkäufer Druck macht, wehre dich höflich aber bestimmt ab
5. Wenn der Verkäufer gute Fragen stellt und Verständnis zeigt, öffne dich langsam
6. Bleib in deiner Rolle - du bist KEIN Verkaufstrainer, du bist der Kunde
7. Keine Metakommentare wie "Gute Frage" oder Coaching-Tipps
8. Reagiere auf Verkäufer-Phrasen genervt
`)

	if scenario != "" {
		b.WriteString("\n=== SZENARIO ===\n")
		b.WriteString(scenario)
		b.WriteString("\n")
	}

	b.WriteString("\nBeginne das Gespräch, als ob der Verkäufer dich gerade angerufen hat oder du einen Termin mit ihm hast.")

	return b.String()
}
