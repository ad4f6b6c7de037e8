package domain_models

// TravelDimension is one axis of the travel personality space. User profiles
// and destination affinities share this vocabulary so they stay comparable.
type TravelDimension string

const (
	DimensionAdventure TravelDimension = "adventure"
	DimensionComfort   TravelDimension = "comfort"
	DimensionCulture   TravelDimension = "culture"
	DimensionLuxury    TravelDimension = "luxury"
	DimensionNature    TravelDimension = "nature"
	DimensionUrban     TravelDimension = "urban"
	DimensionSocial    TravelDimension = "social"
)

// AllDimensions returns the dimensions in their canonical order.
func AllDimensions() []TravelDimension {
	return []TravelDimension{
		DimensionAdventure,
		DimensionComfort,
		DimensionCulture,
		DimensionLuxury,
		DimensionNature,
		DimensionUrban,
		DimensionSocial,
	}
}

func (d TravelDimension) Valid() bool {
	switch d {
	case DimensionAdventure, DimensionComfort, DimensionCulture,
		DimensionLuxury, DimensionNature, DimensionUrban, DimensionSocial:
		return true
	}
	return false
}
