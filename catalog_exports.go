package salescoach

// ──────────────────────────────────────────────
// Catalog re-exports — stable public API
// ──────────────────────────────────────────────
//
// Re-exports the catalog types so callers can configure sessions from the
// root package:
//
//	cfg := salescoach.SessionConfig{
//	    CustomerType: salescoach.SkepticalCEO,
//	    Industry:     salescoach.SaaSB2B,
//	    Difficulty:   salescoach.Intermediate,
//	}
//
// For the full catalog API (tables, enumerations), import the sub-package:
//
//	import "github.com/vertriebslab/salescoach-sdk-go/catalog"

import "github.com/vertriebslab/salescoach-sdk-go/catalog"

// ─── Identifier types ───

type CustomerType = catalog.CustomerType
type Industry = catalog.Industry
type Difficulty = catalog.Difficulty

// ─── Record types ───

type Persona = catalog.Persona
type IndustryKnowledge = catalog.IndustryKnowledge
type DifficultySettings = catalog.DifficultySettings

// ─── Customer types ───

const (
	SkepticalCEO         = catalog.SkepticalCEO
	AnnoyedBuyer         = catalog.AnnoyedBuyer
	FriendlyUndecided    = catalog.FriendlyUndecided
	PriceFocusedSMB      = catalog.PriceFocusedSMB
	CorporateProcurement = catalog.CorporateProcurement
)

// ─── Industries ───

const (
	RealEstate  = catalog.RealEstate
	SolarEnergy = catalog.SolarEnergy
	Agency      = catalog.Agency
	SaaSB2B     = catalog.SaaSB2B
	Coaching    = catalog.Coaching
	Automotive  = catalog.Automotive
	Recruiting  = catalog.Recruiting
)

// ─── Difficulty levels ───

const (
	Beginner     = catalog.Beginner
	Intermediate = catalog.Intermediate
	Advanced     = catalog.Advanced
	Expert       = catalog.Expert
)
