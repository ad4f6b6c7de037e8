package domain_models

// TravelPersonality is one of the fixed traveler archetypes.
type TravelPersonality string

const (
	AdventureSeeker    TravelPersonality = "Adventure Seeker"
	CultureConnoisseur TravelPersonality = "Culture Connoisseur"
	LuxuryEscapist     TravelPersonality = "Luxury Escapist"
	NatureImmerser     TravelPersonality = "Nature Immerser"
	UrbanExplorer      TravelPersonality = "Urban Explorer"
	RelaxationChaser   TravelPersonality = "Relaxation Chaser"
	SocialConnector    TravelPersonality = "Social Connector"
)

// AllPersonalities returns the archetypes in declaration order. Classification
// ties break in this order, so it must stay stable.
func AllPersonalities() []TravelPersonality {
	return []TravelPersonality{
		AdventureSeeker,
		CultureConnoisseur,
		LuxuryEscapist,
		NatureImmerser,
		UrbanExplorer,
		RelaxationChaser,
		SocialConnector,
	}
}

func (p TravelPersonality) Valid() bool {
	switch p {
	case AdventureSeeker, CultureConnoisseur, LuxuryEscapist,
		NatureImmerser, UrbanExplorer, RelaxationChaser, SocialConnector:
		return true
	}
	return false
}

// PersonalityDetails is the static descriptive text attached to an archetype.
type PersonalityDetails struct {
	Traits     string `json:"traits"`
	Style      string `json:"style"`
	PerfectFor string `json:"perfect_for"`
}

// PersonalityCentroids maps each archetype to its point in dimension space.
// These are the profiler's only model parameters.
func PersonalityCentroids() map[TravelPersonality]map[TravelDimension]float64 {
	return map[TravelPersonality]map[TravelDimension]float64{
		AdventureSeeker: {
			DimensionAdventure: 9.5, DimensionComfort: 2.0, DimensionCulture: 4.0,
			DimensionLuxury: 1.5, DimensionNature: 7.0, DimensionUrban: 3.0, DimensionSocial: 5.0,
		},
		CultureConnoisseur: {
			DimensionAdventure: 3.0, DimensionComfort: 5.0, DimensionCulture: 9.5,
			DimensionLuxury: 4.0, DimensionNature: 4.0, DimensionUrban: 7.0, DimensionSocial: 6.0,
		},
		LuxuryEscapist: {
			DimensionAdventure: 1.5, DimensionComfort: 9.5, DimensionCulture: 5.0,
			DimensionLuxury: 9.5, DimensionNature: 3.0, DimensionUrban: 6.0, DimensionSocial: 4.0,
		},
		NatureImmerser: {
			DimensionAdventure: 6.0, DimensionComfort: 4.0, DimensionCulture: 3.0,
			DimensionLuxury: 2.0, DimensionNature: 9.5, DimensionUrban: 1.5, DimensionSocial: 3.0,
		},
		UrbanExplorer: {
			DimensionAdventure: 4.0, DimensionComfort: 6.0, DimensionCulture: 7.0,
			DimensionLuxury: 5.0, DimensionNature: 2.0, DimensionUrban: 9.5, DimensionSocial: 7.0,
		},
		RelaxationChaser: {
			DimensionAdventure: 1.5, DimensionComfort: 9.5, DimensionCulture: 3.0,
			DimensionLuxury: 7.0, DimensionNature: 6.0, DimensionUrban: 2.0, DimensionSocial: 2.0,
		},
		SocialConnector: {
			DimensionAdventure: 5.0, DimensionComfort: 5.0, DimensionCulture: 6.0,
			DimensionLuxury: 3.0, DimensionNature: 4.0, DimensionUrban: 7.0, DimensionSocial: 9.5,
		},
	}
}

// PersonalityInsights returns the static details table for every archetype.
func PersonalityInsights() map[TravelPersonality]PersonalityDetails {
	return map[TravelPersonality]PersonalityDetails{
		AdventureSeeker: {
			Traits:     "Thrill-seeking, Spontaneous, Risk-tolerant",
			Style:      "Active exploration, off-the-beaten-path, physical challenges",
			PerfectFor: "Extreme sports, remote destinations, unpredictable itineraries",
		},
		CultureConnoisseur: {
			Traits:     "Intellectual, Curious, Historically-minded",
			Style:      "Museum-hopping, local immersion, culinary exploration",
			PerfectFor: "Historical sites, artistic hubs, traditional experiences",
		},
		LuxuryEscapist: {
			Traits:     "Comfort-oriented, Quality-focused, Service-expecting",
			Style:      "Premium accommodations, exclusive access, pampering services",
			PerfectFor: "5-star resorts, private tours, gourmet dining",
		},
		NatureImmerser: {
			Traits:     "Eco-conscious, Peace-seeking, Nature-connected",
			Style:      "Outdoor activities, wildlife watching, sustainable travel",
			PerfectFor: "National parks, eco-lodges, wilderness retreats",
		},
		UrbanExplorer: {
			Traits:     "Energy-seeking, Social, Trend-aware",
			Style:      "City hopping, nightlife, modern architecture",
			PerfectFor: "Metropolitan cities, tech hubs, contemporary art scenes",
		},
		RelaxationChaser: {
			Traits:     "Calm, Rejuvenation-focused, Slow-paced",
			Style:      "Beach lounging, spa retreats, minimal planning",
			PerfectFor: "Beach resorts, wellness retreats, countryside escapes",
		},
		SocialConnector: {
			Traits:     "People-oriented, Communicative, Experience-sharing",
			Style:      "Group tours, local interactions, social experiences",
			PerfectFor: "Festivals, community stays, shared accommodations",
		},
	}
}
