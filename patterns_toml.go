package salescoach

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// ──────────────────────────────────────────────
// TOML phrase packs — localization / tenant tuning
// ──────────────────────────────────────────────
//
// A phrase pack replaces or extends the built-in phrase lists without
// recompiling, e.g. to localize the detector or tighten it for one tenant.
//
//	[patterns]
//	pressure        = ["only today", "last chance"]
//	good_question   = ["what", "how", "why"]
//
//	[extend]
//	trust_destroyer = ["you have to"]

// PatternPack is the decoded TOML phrase pack.
type PatternPack struct {
	// Patterns fully replaces the named lists.
	Patterns map[string][]string `toml:"patterns"`
	// Extend appends to the named lists (after replacement).
	Extend map[string][]string `toml:"extend"`
}

var knownPatternKeys = map[string]bool{
	PatternPressure:       true,
	PatternPrematurePitch: true,
	PatternGoodQuestion:   true,
	PatternTrustBuilder:   true,
	PatternTrustDestroyer: true,
}

// LoadPatternPack reads a phrase pack from a TOML file and applies it on
// top of the German defaults, returning the resulting pattern map.
func LoadPatternPack(path string) (map[string][]string, error) {
	var pack PatternPack
	if _, err := toml.DecodeFile(path, &pack); err != nil {
		return nil, fmt.Errorf("decode pattern pack %s: %w", path, err)
	}
	return pack.Apply(DefaultSalesPatterns())
}

// ParsePatternPack decodes a phrase pack from TOML source text.
func ParsePatternPack(data string) (*PatternPack, error) {
	var pack PatternPack
	if _, err := toml.Decode(data, &pack); err != nil {
		return nil, fmt.Errorf("decode pattern pack: %w", err)
	}
	return &pack, nil
}

// Apply merges the pack into base (replacement first, then extension) and
// returns the merged map. base is not modified. Unknown pattern keys are
// rejected so typos don't silently create dead lists.
func (p *PatternPack) Apply(base map[string][]string) (map[string][]string, error) {
	merged := make(map[string][]string, len(base))
	for k, v := range base {
		list := make([]string, len(v))
		copy(list, v)
		merged[k] = list
	}

	for k, v := range p.Patterns {
		if !knownPatternKeys[k] {
			return nil, fmt.Errorf("pattern pack: unknown pattern key %q", k)
		}
		list := make([]string, len(v))
		copy(list, v)
		merged[k] = list
	}
	for k, v := range p.Extend {
		if !knownPatternKeys[k] {
			return nil, fmt.Errorf("pattern pack: unknown pattern key %q", k)
		}
		merged[k] = append(merged[k], v...)
	}
	return merged, nil
}
