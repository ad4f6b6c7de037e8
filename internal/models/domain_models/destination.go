package domain_models

// DestinationCategory is the fixed set of catalog categories.
type DestinationCategory string

const (
	CategoryAdventure DestinationCategory = "Adventure"
	CategoryCultural  DestinationCategory = "Cultural"
	CategoryLuxury    DestinationCategory = "Luxury"
	CategoryNature    DestinationCategory = "Nature"
	CategoryUrban     DestinationCategory = "Urban"
	CategoryBeach     DestinationCategory = "Beach"
	CategoryWellness  DestinationCategory = "Wellness"
)

func (c DestinationCategory) Valid() bool {
	switch c {
	case CategoryAdventure, CategoryCultural, CategoryLuxury,
		CategoryNature, CategoryUrban, CategoryBeach, CategoryWellness:
		return true
	}
	return false
}

// Season is a best-season marker on a destination record.
type Season string

const (
	SeasonWinter    Season = "Winter"
	SeasonSpring    Season = "Spring"
	SeasonSummer    Season = "Summer"
	SeasonFall      Season = "Fall"
	SeasonYearRound Season = "Year-round"
)

func (s Season) Valid() bool {
	switch s {
	case SeasonWinter, SeasonSpring, SeasonSummer, SeasonFall, SeasonYearRound:
		return true
	}
	return false
}

// SeasonOrder returns the calendar seasons in their circular order. Seasonal
// scoring measures adjacency on this ring.
func SeasonOrder() []Season {
	return []Season{SeasonWinter, SeasonSpring, SeasonSummer, SeasonFall}
}

// SeasonOfMonth maps a calendar month (1-12) to its season, Northern-hemisphere
// convention.
func SeasonOfMonth(month int) Season {
	switch month {
	case 12, 1, 2:
		return SeasonWinter
	case 3, 4, 5:
		return SeasonSpring
	case 6, 7, 8:
		return SeasonSummer
	default:
		return SeasonFall
	}
}

// DestinationRecord is one catalog entry. Records are immutable once the
// catalog is loaded; scoring only reads them.
type DestinationRecord struct {
	ID           string                      `json:"id"`
	Name         string                      `json:"name"`
	Country      string                      `json:"country"`
	Category     DestinationCategory         `json:"category"`
	Description  string                      `json:"description"`
	AverageCost  float64                     `json:"average_cost"`
	BestSeasons  []Season                    `json:"best_season"`
	TravelTime   float64                     `json:"travel_time"`
	Highlights   []string                    `json:"highlights"`
	WeatherScore float64                     `json:"weather_score"`
	CrowdScore   float64                     `json:"crowd_score"`
	DNAAffinity  map[TravelDimension]float64 `json:"dna_affinity"`
}
