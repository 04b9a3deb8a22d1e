package catalog

import "testing"

// ══════════════════════════════════════════════
// Catalog lookup tests
// ══════════════════════════════════════════════

func TestPersonaFor_AllVariants(t *testing.T) {
	for _, ct := range CustomerTypes() {
		p, err := PersonaFor(ct)
		if err != nil {
			t.Fatalf("PersonaFor(%s) failed: %v", ct, err)
		}
		if p.Type != ct {
			t.Fatalf("expected type %s, got %s", ct, p.Type)
		}
		if p.Name == "" || p.Description == "" || p.PromptFragment == "" {
			t.Fatalf("persona %s has empty display fields", ct)
		}
		if len(p.TypicalObjections) == 0 || len(p.SoftRejections) == 0 {
			t.Fatalf("persona %s has empty objection lists", ct)
		}
		if len(p.Triggers.Annoyed) == 0 || len(p.Triggers.Interested) == 0 || len(p.Triggers.Buying) == 0 {
			t.Fatalf("persona %s has empty trigger lists", ct)
		}
	}
}

func TestPersonaFor_Unknown(t *testing.T) {
	if _, err := PersonaFor("GHOST"); err == nil {
		t.Fatal("expected error for unknown customer type")
	}
}

func TestPersonaFor_DimensionsInRange(t *testing.T) {
	for _, ct := range CustomerTypes() {
		p, _ := PersonaFor(ct)
		dims := []int{
			p.Personality.Patience,
			p.Personality.Directness,
			p.Personality.RiskAversion,
			p.Personality.DecisionSpeed,
			p.Personality.PriceSensitivity,
		}
		for i, d := range dims {
			if d < 1 || d > 10 {
				t.Fatalf("persona %s dimension %d out of 1-10 range: %d", ct, i, d)
			}
		}
	}
}

func TestPersonaFor_ReturnsCopy(t *testing.T) {
	p1, _ := PersonaFor(SkepticalCEO)
	p1.TypicalObjections[0] = "mutated"
	p1.Triggers.Annoyed[0] = "mutated"

	p2, _ := PersonaFor(SkepticalCEO)
	if p2.TypicalObjections[0] == "mutated" {
		t.Fatal("PersonaFor must return a defensive copy of objections")
	}
	if p2.Triggers.Annoyed[0] == "mutated" {
		t.Fatal("PersonaFor must return a defensive copy of triggers")
	}
}

func TestIndustryFor_AllVariants(t *testing.T) {
	for _, in := range Industries() {
		k, err := IndustryFor(in)
		if err != nil {
			t.Fatalf("IndustryFor(%s) failed: %v", in, err)
		}
		if k.Industry != in {
			t.Fatalf("expected industry %s, got %s", in, k.Industry)
		}
		if len(k.CommonObjections) == 0 || len(k.TypicalPainPoints) == 0 {
			t.Fatalf("industry %s has empty lists", in)
		}
		if k.PricingLogic == "" || k.SalesCycleInfo == "" || k.PromptFragment == "" {
			t.Fatalf("industry %s has empty text fields", in)
		}
	}
}

func TestIndustryFor_Unknown(t *testing.T) {
	if _, err := IndustryFor("SPACE_MINING"); err == nil {
		t.Fatal("expected error for unknown industry")
	}
}

func TestIndustryFor_ReturnsCopy(t *testing.T) {
	k1, _ := IndustryFor(SaaSB2B)
	k1.CommonObjections[0] = "mutated"
	k2, _ := IndustryFor(SaaSB2B)
	if k2.CommonObjections[0] == "mutated" {
		t.Fatal("IndustryFor must return a defensive copy")
	}
}

func TestDifficultyFor_AllVariants(t *testing.T) {
	for _, d := range Difficulties() {
		s, err := DifficultyFor(d)
		if err != nil {
			t.Fatalf("DifficultyFor(%s) failed: %v", d, err)
		}
		if s.Level != d {
			t.Fatalf("expected level %s, got %s", d, s.Level)
		}
		if s.PatienceMultiplier <= 0 {
			t.Fatalf("difficulty %s has non-positive patience multiplier", d)
		}
	}
}

func TestDifficultyFor_Unknown(t *testing.T) {
	if _, err := DifficultyFor("NIGHTMARE"); err == nil {
		t.Fatal("expected error for unknown difficulty")
	}
}

func TestDifficulty_PatienceMonotonicallyDecreasing(t *testing.T) {
	levels := Difficulties()
	prev := 100.0
	for _, d := range levels {
		s, _ := DifficultyFor(d)
		if s.PatienceMultiplier >= prev {
			t.Fatalf("patience multiplier must strictly decrease, %s has %v after %v",
				d, s.PatienceMultiplier, prev)
		}
		prev = s.PatienceMultiplier
	}
}

func TestDifficulty_BoundaryValues(t *testing.T) {
	b, _ := DifficultyFor(Beginner)
	if b.PatienceMultiplier != 2.0 {
		t.Fatalf("beginner multiplier = %v, want 2.0", b.PatienceMultiplier)
	}
	e, _ := DifficultyFor(Expert)
	if e.PatienceMultiplier != 0.3 {
		t.Fatalf("expert multiplier = %v, want 0.3", e.PatienceMultiplier)
	}
}
