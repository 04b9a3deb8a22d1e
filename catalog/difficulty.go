package catalog

// The four difficulty tuning profiles. PatienceMultiplier decreases
// monotonically from beginner to expert; the engine derives the per-turn
// patience decay from it. HintLevel and Forgiveness are consumed by the
// surrounding application.

var difficulties = map[Difficulty]*DifficultySettings{
	Beginner: {
		Level:              Beginner,
		Description:        "Einsteiger - Geduldiger Kunde, viele Hinweise",
		PatienceMultiplier: 2.0,
		ObjectionFrequency: 0.3,
		HintLevel:          3,
		Forgiveness:        0.8,
	},
	Intermediate: {
		Level:              Intermediate,
		Description:        "Fortgeschritten - Realistisches Gespräch",
		PatienceMultiplier: 1.0,
		ObjectionFrequency: 0.5,
		HintLevel:          1,
		Forgiveness:        0.5,
	},
	Advanced: {
		Level:              Advanced,
		Description:        "Profi - Schwieriger Kunde, kaum Hinweise",
		PatienceMultiplier: 0.5,
		ObjectionFrequency: 0.7,
		HintLevel:          0,
		Forgiveness:        0.3,
	},
	Expert: {
		Level:              Expert,
		Description:        "Experte - Maximale Herausforderung",
		PatienceMultiplier: 0.3,
		ObjectionFrequency: 0.9,
		HintLevel:          0,
		Forgiveness:        0.1,
	},
}
