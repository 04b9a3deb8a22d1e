package catalog

// The seven industry-context records.

var industries = map[Industry]*IndustryKnowledge{
	RealEstate: {
		Industry:    RealEstate,
		Name:        "Immobilien",
		Description: "Makler, Bauträger, Property Management",
		TypicalPainPoints: []string{
			"Zu wenige qualifizierte Leads",
			"Hohe Stornoquoten",
			"Lange Verkaufszyklen",
			"Preisdruck durch Online-Portale",
			"Schwierige Finanzierungssituationen",
		},
		CommonObjections: []string{
			"Wir haben genug Objekte über ImmoScout",
			"Die Provision ist zu hoch",
			"Makler brauchen wir nicht mehr",
			"Wir verkaufen selbst",
		},
		PricingLogic:   "Provisionsbasis (3-6% vom Kaufpreis), Erfolgshonorar",
		DecisionMakers: []string{"Geschäftsführer", "Vertriebsleiter", "Eigentümer"},
		SalesCycleInfo: "3-6 Monate, oft projektbezogen",
		KeySuccessFactors: []string{
			"Lokale Marktkenntnis zeigen",
			"Referenzobjekte vorweisen",
			"Exklusivvereinbarungen anstreben",
			"Finanzierungsberatung mit anbieten",
		},
		PromptFragment: "Du arbeitest in der Immobilienbranche und kennst die lokalen Marktbedingungen.",
	},

	SolarEnergy: {
		Industry:    SolarEnergy,
		Name:        "Solar & Energie",
		Description: "PV-Anlagen, Speicher, Energieberatung",
		TypicalPainPoints: []string{
			"Lange Amortisationszeiten erklären",
			"Komplexe Förderungen",
			"Technikskepsis bei älteren Kunden",
			"Konkurrenz durch Discounter",
		},
		CommonObjections: []string{
			"Das rechnet sich doch nicht",
			"Wir warten auf bessere Technik",
			"Der Nachbar hatte Probleme damit",
			"Zu viel Bürokratie",
			"Was ist in 10 Jahren?",
		},
		PricingLogic:   "ROI-Argumentation (Break-even in 8-12 Jahren), Förderungen einrechnen",
		DecisionMakers: []string{"Hausbesitzer", "Geschäftsführer", "Facility Manager"},
		SalesCycleInfo: "1-3 Monate bei Privatkunden, 6-12 bei Gewerbe",
		KeySuccessFactors: []string{
			"ROI konkret berechnen",
			"Förderungen aktiv einbeziehen",
			"Referenzanlagen zeigen",
			"Komplettlösung anbieten",
		},
		PromptFragment: "Du interessierst dich für erneuerbare Energien, bist aber unsicher wegen der Wirtschaftlichkeit.",
	},

	Agency: {
		Industry:    Agency,
		Name:        "Agenturen",
		Description: "Marketing-, Werbe-, Digital-Agenturen",
		TypicalPainPoints: []string{
			"Zu viele Pitches ohne Erfolg",
			"Preisdruck durch Inhouse-Teams",
			"Schwierige Messbarkeit",
			"Kundenabwanderung",
		},
		CommonObjections: []string{
			"Wir machen das intern",
			"Die letzte Agentur hat nicht geliefert",
			"Zu teuer für das Ergebnis",
			"Was bringt uns das konkret?",
		},
		PricingLogic:   "Stunden- oder Projektbasis, Retainer-Modelle",
		DecisionMakers: []string{"Marketingleiter", "CMO", "Geschäftsführer"},
		SalesCycleInfo: "1-3 Monate, oft über RFP/Pitch",
		KeySuccessFactors: []string{
			"Kreative Ideen im Erstgespräch",
			"Case Studies mit Zahlen",
			"Persönliche Chemie",
			"Schnelle Reaktionszeiten",
		},
		PromptFragment: "Du suchst eine Agentur, hast aber schlechte Erfahrungen mit früheren Partnern gemacht.",
	},

	SaaSB2B: {
		Industry:    SaaSB2B,
		Name:        "SaaS B2B",
		Description: "Software-as-a-Service für Unternehmen",
		TypicalPainPoints: []string{
			"Integration in bestehende Systeme",
			"Change Management",
			"Datensicherheit",
			"User Adoption",
		},
		CommonObjections: []string{
			"Wir haben schon ein Tool dafür",
			"Das ist zu kompliziert für unsere Leute",
			"Was passiert mit unseren Daten?",
			"Wir wollen keine Cloud-Lösung",
			"Das brauchen wir nicht",
		},
		PricingLogic:   "Per User/Monat oder Paketpreise, oft Jahresverträge",
		DecisionMakers: []string{"IT-Leiter", "Fachbereichsleiter", "Geschäftsführer"},
		SalesCycleInfo: "2-6 Monate, abhängig von Unternehmensgröße",
		KeySuccessFactors: []string{
			"Demo personalisieren",
			"Datenschutz proaktiv adressieren",
			"ROI quantifizieren",
			"Pilotprojekt anbieten",
		},
		PromptFragment: "Du bist für die Digitalisierung in deinem Unternehmen verantwortlich, aber skeptisch gegenüber neuen Tools.",
	},

	Coaching: {
		Industry:    Coaching,
		Name:        "Coaching & Beratung",
		Description: "Unternehmensberatung, Business Coaching, Training",
		TypicalPainPoints: []string{
			"Messbarkeit des Erfolgs",
			"Abhängigkeit vom Berater",
			"Hohe Tagessätze",
			"Theorielastig ohne Umsetzung",
		},
		CommonObjections: []string{
			"Was bringt das konkret?",
			"Berater kennen unser Geschäft nicht",
			"Das können wir selbst",
			"Zu teuer für Beratung",
			"Wir haben keine Zeit für Workshops",
		},
		PricingLogic:   "Tagessätze (800-3.000€), Paketpreise, erfolgsabhängig",
		DecisionMakers: []string{"Geschäftsführer", "HR-Leiter", "Abteilungsleiter"},
		SalesCycleInfo: "1-3 Monate, oft über Empfehlung",
		KeySuccessFactors: []string{
			"Konkreten Bedarf ermitteln",
			"Referenzen aus der Branche",
			"Schnelle Quick Wins versprechen",
			"Messbaren Erfolg definieren",
		},
		PromptFragment: "Du bist grundsätzlich offen für Entwicklung, aber skeptisch gegenüber klassischen Beratern.",
	},

	Automotive: {
		Industry:    Automotive,
		Name:        "Automobil & Zulieferer",
		Description: "OEMs, Zulieferer, Werkstätten",
		TypicalPainPoints: []string{
			"Preisdruck durch OEMs",
			"Transformation zur E-Mobilität",
			"Lieferkettenprobleme",
			"Fachkräftemangel",
		},
		CommonObjections: []string{
			"Wir haben langfristige Verträge",
			"Das muss der OEM genehmigen",
			"Qualitätsanforderungen zu hoch",
			"Zu kleine Stückzahlen",
			"Das passt nicht in unsere Prozesse",
		},
		PricingLogic:   "Stückpreise, Rahmenverträge, Toolkosten",
		DecisionMakers: []string{"Einkaufsleiter", "Entwicklungsleiter", "Geschäftsführer"},
		SalesCycleInfo: "6-18 Monate, sehr langfristig",
		KeySuccessFactors: []string{
			"OEM-Erfahrung vorweisen",
			"Qualitätszertifikate",
			"Innovation zeigen",
			"Lieferfähigkeit beweisen",
		},
		PromptFragment: "Du bist in der Automobilindustrie tätig und hast strenge Qualitäts- und Prozessanforderungen.",
	},

	Recruiting: {
		Industry:    Recruiting,
		Name:        "Recruiting",
		Description: "Personalvermittlung, Headhunting, HR-Services",
		TypicalPainPoints: []string{
			"Fachkräftemangel",
			"Hohe Fluktuation",
			"Lange Time-to-Hire",
			"Hohe Provisionen",
		},
		CommonObjections: []string{
			"Wir haben eine eigene HR-Abteilung",
			"Headhunter sind zu teuer",
			"Die Kandidaten passen nie",
			"Wir nutzen LinkedIn selbst",
			"Zu viele unpassende CVs",
		},
		PricingLogic:   "Erfolgshonorar (15-30% Jahresgehalt), Retained Search",
		DecisionMakers: []string{"HR-Leiter", "Geschäftsführer", "Fachbereichsleiter"},
		SalesCycleInfo: "1-4 Wochen pro Mandat",
		KeySuccessFactors: []string{
			"Branchenexpertise zeigen",
			"Exklusive Kandidaten anbieten",
			"Schnelle Ergebnisse liefern",
			"Garantien geben",
		},
		PromptFragment: "Du suchst dringend Fachkräfte, hast aber schlechte Erfahrungen mit Recruitern gemacht.",
	},
}
