// Package catalog holds the static persona, industry and difficulty tables
// the simulation engine is configured from.
//
// The catalog is closed: identifiers are typed constants, the tables are
// keyed by them, and lookups fail on anything else. Adding a variant means
// adding a constant plus a table entry — there is no dynamic registration.
package catalog

import "fmt"

// CustomerType identifies one of the five fixed customer personas.
type CustomerType string

const (
	SkepticalCEO         CustomerType = "SKEPTICAL_CEO"
	AnnoyedBuyer         CustomerType = "ANNOYED_BUYER"
	FriendlyUndecided    CustomerType = "FRIENDLY_UNDECIDED"
	PriceFocusedSMB      CustomerType = "PRICE_FOCUSED_SMB"
	CorporateProcurement CustomerType = "CORPORATE_PROCUREMENT"
)

// Industry identifies one of the seven fixed industry records.
type Industry string

const (
	RealEstate  Industry = "REAL_ESTATE"
	SolarEnergy Industry = "SOLAR_ENERGY"
	Agency      Industry = "AGENCY"
	SaaSB2B     Industry = "SAAS_B2B"
	Coaching    Industry = "COACHING"
	Automotive  Industry = "AUTOMOTIVE"
	Recruiting  Industry = "RECRUITING"
)

// Difficulty identifies one of the four fixed difficulty levels.
type Difficulty string

const (
	Beginner     Difficulty = "BEGINNER"
	Intermediate Difficulty = "INTERMEDIATE"
	Advanced     Difficulty = "ADVANCED"
	Expert       Difficulty = "EXPERT"
)

// Personality holds the five persona dimensions, each on a 1-10 scale.
type Personality struct {
	Patience         int `json:"patience"`
	Directness       int `json:"directness"`
	RiskAversion     int `json:"risk_aversion"`
	DecisionSpeed    int `json:"decision_speed"`
	PriceSensitivity int `json:"price_sensitivity"`
}

// Triggers holds the three categorized trigger-phrase lists.
type Triggers struct {
	Annoyed    []string `json:"annoyed"`
	Interested []string `json:"interested"`
	Buying     []string `json:"buying"`
}

// Persona is one fixed customer profile.
type Persona struct {
	Type               CustomerType `json:"type"`
	Name               string       `json:"name"`
	Description        string       `json:"description"`
	Personality        Personality  `json:"personality"`
	TypicalObjections  []string     `json:"typical_objections"`
	SoftRejections     []string     `json:"soft_rejections"`
	Triggers           Triggers     `json:"triggers"`
	CommunicationStyle string       `json:"communication_style"`
	PromptFragment     string       `json:"prompt_fragment"`
}

// IndustryKnowledge is one fixed industry-context record.
type IndustryKnowledge struct {
	Industry          Industry `json:"industry"`
	Name              string   `json:"name"`
	Description       string   `json:"description"`
	TypicalPainPoints []string `json:"typical_pain_points"`
	CommonObjections  []string `json:"common_objections"`
	PricingLogic      string   `json:"pricing_logic"`
	DecisionMakers    []string `json:"decision_makers"`
	SalesCycleInfo    string   `json:"sales_cycle_info"`
	KeySuccessFactors []string `json:"key_success_factors"`
	PromptFragment    string   `json:"prompt_fragment"`
}

// DifficultySettings is one fixed difficulty tuning profile.
// PatienceMultiplier drives the per-turn patience decay (2/multiplier).
// ObjectionFrequency is informational, HintLevel and Forgiveness are
// consumed by the surrounding application, not by the core.
type DifficultySettings struct {
	Level              Difficulty `json:"level"`
	Description        string     `json:"description"`
	PatienceMultiplier float64    `json:"patience_multiplier"`
	ObjectionFrequency float64    `json:"objection_frequency"` // 0-1
	HintLevel          int        `json:"hint_level"`          // 0-3
	Forgiveness        float64    `json:"forgiveness"`         // 0-1
}

// PersonaFor returns the persona for a customer type.
func PersonaFor(t CustomerType) (*Persona, error) {
	p, ok := personas[t]
	if !ok {
		return nil, fmt.Errorf("catalog: unknown customer type %q", t)
	}
	return clonePersona(p), nil
}

// IndustryFor returns the knowledge record for an industry.
func IndustryFor(i Industry) (*IndustryKnowledge, error) {
	k, ok := industries[i]
	if !ok {
		return nil, fmt.Errorf("catalog: unknown industry %q", i)
	}
	return cloneIndustry(k), nil
}

// DifficultyFor returns the settings for a difficulty level.
func DifficultyFor(d Difficulty) (*DifficultySettings, error) {
	s, ok := difficulties[d]
	if !ok {
		return nil, fmt.Errorf("catalog: unknown difficulty %q", d)
	}
	c := *s
	return &c, nil
}

// CustomerTypes lists all persona identifiers in a stable order.
func CustomerTypes() []CustomerType {
	return []CustomerType{
		SkepticalCEO, AnnoyedBuyer, FriendlyUndecided,
		PriceFocusedSMB, CorporateProcurement,
	}
}

// Industries lists all industry identifiers in a stable order.
func Industries() []Industry {
	return []Industry{
		RealEstate, SolarEnergy, Agency, SaaSB2B,
		Coaching, Automotive, Recruiting,
	}
}

// Difficulties lists all difficulty identifiers from easiest to hardest.
func Difficulties() []Difficulty {
	return []Difficulty{Beginner, Intermediate, Advanced, Expert}
}

func cloneStrings(src []string) []string {
	out := make([]string, len(src))
	copy(out, src)
	return out
}

func clonePersona(p *Persona) *Persona {
	c := *p
	c.TypicalObjections = cloneStrings(p.TypicalObjections)
	c.SoftRejections = cloneStrings(p.SoftRejections)
	c.Triggers = Triggers{
		Annoyed:    cloneStrings(p.Triggers.Annoyed),
		Interested: cloneStrings(p.Triggers.Interested),
		Buying:     cloneStrings(p.Triggers.Buying),
	}
	return &c
}

func cloneIndustry(k *IndustryKnowledge) *IndustryKnowledge {
	c := *k
	c.TypicalPainPoints = cloneStrings(k.TypicalPainPoints)
	c.CommonObjections = cloneStrings(k.CommonObjections)
	c.DecisionMakers = cloneStrings(k.DecisionMakers)
	c.KeySuccessFactors = cloneStrings(k.KeySuccessFactors)
	return &c
}
