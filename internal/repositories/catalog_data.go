package repositories

import "voyageai/internal/models/domain_models"

// SeedDestinations returns the built-in destination catalog. The records are
// static; a future loader may replace this source as long as it produces the
// same shape.
func SeedDestinations() []domain_models.DestinationRecord {
	return []domain_models.DestinationRecord{
		{
			ID:           "queenstown_nz",
			Name:         "Queenstown",
			Country:      "New Zealand",
			Category:     domain_models.CategoryAdventure,
			Description:  "World's adventure capital with bungee jumping, skiing, and stunning Southern Alps scenery.",
			AverageCost:  3500,
			BestSeasons:  []domain_models.Season{domain_models.SeasonSpring, domain_models.SeasonSummer, domain_models.SeasonFall},
			TravelTime:   18,
			Highlights:   []string{"Bungee Jumping", "Milford Sound", "Ski Resorts", "Wine Tours"},
			WeatherScore: 7.5,
			CrowdScore:   6.8,
			DNAAffinity: map[domain_models.TravelDimension]float64{
				domain_models.DimensionAdventure: 9.2,
				domain_models.DimensionNature:    8.5,
				domain_models.DimensionComfort:   6.0,
				domain_models.DimensionLuxury:    5.5,
			},
		},
		{
			ID:           "interlaken_ch",
			Name:         "Interlaken",
			Country:      "Switzerland",
			Category:     domain_models.CategoryAdventure,
			Description:  "Alpine paradise between two lakes, offering paragliding, skiing, and mountain expeditions.",
			AverageCost:  4200,
			BestSeasons:  []domain_models.Season{domain_models.SeasonSummer, domain_models.SeasonWinter},
			TravelTime:   12,
			Highlights:   []string{"Jungfrau Region", "Paragliding", "Lake Thun", "Winter Sports"},
			WeatherScore: 7.0,
			CrowdScore:   7.2,
			DNAAffinity: map[domain_models.TravelDimension]float64{
				domain_models.DimensionAdventure: 8.8,
				domain_models.DimensionNature:    9.0,
				domain_models.DimensionComfort:   7.5,
				domain_models.DimensionLuxury:    6.0,
			},
		},
		{
			ID:           "cape_town_za",
			Name:         "Cape Town",
			Country:      "South Africa",
			Category:     domain_models.CategoryAdventure,
			Description:  "Coastal city with Table Mountain, wildlife safaris, and world-class vineyards.",
			AverageCost:  3200,
			BestSeasons:  []domain_models.Season{domain_models.SeasonSpring, domain_models.SeasonFall},
			TravelTime:   16,
			Highlights:   []string{"Table Mountain", "Wine Lands", "Penguin Colony", "Safari Tours"},
			WeatherScore: 8.5,
			CrowdScore:   6.5,
			DNAAffinity: map[domain_models.TravelDimension]float64{
				domain_models.DimensionAdventure: 8.0,
				domain_models.DimensionNature:    8.5,
				domain_models.DimensionCulture:   7.0,
				domain_models.DimensionLuxury:    6.5,
			},
		},
		{
			ID:           "kyoto_jp",
			Name:         "Kyoto",
			Country:      "Japan",
			Category:     domain_models.CategoryCultural,
			Description:  "Ancient capital with 2000+ temples, traditional tea ceremonies, and seasonal beauty.",
			AverageCost:  3200,
			BestSeasons:  []domain_models.Season{domain_models.SeasonSpring, domain_models.SeasonFall},
			TravelTime:   14,
			Highlights:   []string{"Golden Pavilion", "Geisha District", "Bamboo Forest", "Cherry Blossoms"},
			WeatherScore: 8.0,
			CrowdScore:   8.5,
			DNAAffinity: map[domain_models.TravelDimension]float64{
				domain_models.DimensionCulture: 9.5,
				domain_models.DimensionComfort: 8.0,
				domain_models.DimensionNature:  7.5,
				domain_models.DimensionUrban:   6.5,
			},
		},
		{
			ID:           "rome_it",
			Name:         "Rome",
			Country:      "Italy",
			Category:     domain_models.CategoryCultural,
			Description:  "Eternal city blending ancient history with vibrant modern life and culinary excellence.",
			AverageCost:  2800,
			BestSeasons:  []domain_models.Season{domain_models.SeasonSpring, domain_models.SeasonFall},
			TravelTime:   10,
			Highlights:   []string{"Colosseum", "Vatican City", "Roman Forum", "Italian Cuisine"},
			WeatherScore: 8.5,
			CrowdScore:   9.0,
			DNAAffinity: map[domain_models.TravelDimension]float64{
				domain_models.DimensionCulture: 9.2,
				domain_models.DimensionUrban:   8.0,
				domain_models.DimensionComfort: 7.0,
				domain_models.DimensionLuxury:  6.8,
			},
		},
		{
			ID:           "istanbul_tr",
			Name:         "Istanbul",
			Country:      "Turkey",
			Category:     domain_models.CategoryCultural,
			Description:  "City straddling two continents with Byzantine and Ottoman heritage, bustling bazaars.",
			AverageCost:  1800,
			BestSeasons:  []domain_models.Season{domain_models.SeasonSpring, domain_models.SeasonFall},
			TravelTime:   12,
			Highlights:   []string{"Hagia Sophia", "Grand Bazaar", "Bosphorus Cruise", "Turkish Baths"},
			WeatherScore: 7.5,
			CrowdScore:   7.8,
			DNAAffinity: map[domain_models.TravelDimension]float64{
				domain_models.DimensionCulture: 9.2,
				domain_models.DimensionUrban:   8.0,
				domain_models.DimensionComfort: 6.5,
				domain_models.DimensionLuxury:  5.5,
			},
		},
		{
			ID:           "maldives",
			Name:         "Maldives",
			Country:      "Maldives",
			Category:     domain_models.CategoryLuxury,
			Description:  "Tropical paradise with overwater villas, crystal-clear lagoons, and exclusive resorts.",
			AverageCost:  8500,
			BestSeasons:  []domain_models.Season{domain_models.SeasonWinter, domain_models.SeasonSpring},
			TravelTime:   20,
			Highlights:   []string{"Overwater Bungalows", "Snorkeling", "Spa Retreats", "Private Islands"},
			WeatherScore: 9.0,
			CrowdScore:   4.0,
			DNAAffinity: map[domain_models.TravelDimension]float64{
				domain_models.DimensionLuxury:    9.8,
				domain_models.DimensionComfort:   9.5,
				domain_models.DimensionNature:    8.0,
				domain_models.DimensionAdventure: 3.0,
			},
		},
		{
			ID:           "santorini_gr",
			Name:         "Santorini",
			Country:      "Greece",
			Category:     domain_models.CategoryLuxury,
			Description:  "Stunning volcanic island with white-washed buildings, sunset views, and premium amenities.",
			AverageCost:  4500,
			BestSeasons:  []domain_models.Season{domain_models.SeasonSpring, domain_models.SeasonSummer, domain_models.SeasonFall},
			TravelTime:   15,
			Highlights:   []string{"Caldera Views", "Wine Tasting", "Sunset Cruises", "Luxury Hotels"},
			WeatherScore: 9.2,
			CrowdScore:   8.5,
			DNAAffinity: map[domain_models.TravelDimension]float64{
				domain_models.DimensionLuxury:  9.0,
				domain_models.DimensionComfort: 8.8,
				domain_models.DimensionCulture: 7.5,
				domain_models.DimensionNature:  6.5,
			},
		},
		{
			ID:           "dubai_ae",
			Name:         "Dubai",
			Country:      "UAE",
			Category:     domain_models.CategoryLuxury,
			Description:  "Ultra-modern city with luxury shopping, futuristic architecture, and desert adventures.",
			AverageCost:  5000,
			BestSeasons:  []domain_models.Season{domain_models.SeasonWinter, domain_models.SeasonSpring},
			TravelTime:   14,
			Highlights:   []string{"Burj Khalifa", "Luxury Malls", "Desert Safaris", "Palm Islands"},
			WeatherScore: 8.0,
			CrowdScore:   7.0,
			DNAAffinity: map[domain_models.TravelDimension]float64{
				domain_models.DimensionLuxury:    9.5,
				domain_models.DimensionUrban:     8.5,
				domain_models.DimensionComfort:   8.0,
				domain_models.DimensionAdventure: 6.0,
			},
		},
		{
			ID:           "banff_ca",
			Name:         "Banff",
			Country:      "Canada",
			Category:     domain_models.CategoryNature,
			Description:  "Mountain wilderness in Canadian Rockies with turquoise lakes, glaciers, and wildlife.",
			AverageCost:  3000,
			BestSeasons:  []domain_models.Season{domain_models.SeasonSummer, domain_models.SeasonFall},
			TravelTime:   8,
			Highlights:   []string{"Lake Louise", "Wildlife Viewing", "Hiking Trails", "Hot Springs"},
			WeatherScore: 7.8,
			CrowdScore:   7.0,
			DNAAffinity: map[domain_models.TravelDimension]float64{
				domain_models.DimensionNature:    9.5,
				domain_models.DimensionAdventure: 8.5,
				domain_models.DimensionComfort:   6.5,
				domain_models.DimensionLuxury:    5.0,
			},
		},
		{
			ID:           "costa_rica",
			Name:         "Costa Rica",
			Country:      "Costa Rica",
			Category:     domain_models.CategoryNature,
			Description:  "Biodiversity hotspot with rainforests, volcanoes, beaches, and eco-friendly tourism.",
			AverageCost:  2800,
			BestSeasons:  []domain_models.Season{domain_models.SeasonWinter, domain_models.SeasonSpring},
			TravelTime:   6,
			Highlights:   []string{"Arenal Volcano", "Monteverde Cloud Forest", "Wildlife Sanctuaries", "Eco-Lodges"},
			WeatherScore: 8.5,
			CrowdScore:   6.5,
			DNAAffinity: map[domain_models.TravelDimension]float64{
				domain_models.DimensionNature:    9.3,
				domain_models.DimensionAdventure: 8.0,
				domain_models.DimensionComfort:   7.0,
				domain_models.DimensionCulture:   6.0,
			},
		},
		{
			ID:           "iceland",
			Name:         "Iceland",
			Country:      "Iceland",
			Category:     domain_models.CategoryNature,
			Description:  "Land of fire and ice with glaciers, volcanoes, waterfalls, and Northern Lights.",
			AverageCost:  3800,
			BestSeasons:  []domain_models.Season{domain_models.SeasonSummer, domain_models.SeasonWinter},
			TravelTime:   7,
			Highlights:   []string{"Northern Lights", "Blue Lagoon", "Waterfalls", "Glacier Hiking"},
			WeatherScore: 6.5,
			CrowdScore:   5.5,
			DNAAffinity: map[domain_models.TravelDimension]float64{
				domain_models.DimensionNature:    9.8,
				domain_models.DimensionAdventure: 8.5,
				domain_models.DimensionComfort:   5.0,
				domain_models.DimensionLuxury:    4.5,
			},
		},
		{
			ID:           "tokyo_jp",
			Name:         "Tokyo",
			Country:      "Japan",
			Category:     domain_models.CategoryUrban,
			Description:  "Ultra-modern metropolis blending cutting-edge technology with traditional culture.",
			AverageCost:  3800,
			BestSeasons:  []domain_models.Season{domain_models.SeasonSpring, domain_models.SeasonFall},
			TravelTime:   14,
			Highlights:   []string{"Shibuya Crossing", "Tsukiji Market", "Traditional Temples", "Robot Restaurants"},
			WeatherScore: 7.5,
			CrowdScore:   9.5,
			DNAAffinity: map[domain_models.TravelDimension]float64{
				domain_models.DimensionUrban:   9.8,
				domain_models.DimensionCulture: 8.5,
				domain_models.DimensionComfort: 8.0,
				domain_models.DimensionLuxury:  7.5,
			},
		},
		{
			ID:           "new_york_us",
			Name:         "New York City",
			Country:      "USA",
			Category:     domain_models.CategoryUrban,
			Description:  "The city that never sleeps, with world-class museums, Broadway, and diverse neighborhoods.",
			AverageCost:  4200,
			BestSeasons:  []domain_models.Season{domain_models.SeasonSpring, domain_models.SeasonFall},
			TravelTime:   8,
			Highlights:   []string{"Broadway Shows", "Central Park", "Metropolitan Museum", "Times Square"},
			WeatherScore: 7.0,
			CrowdScore:   9.8,
			DNAAffinity: map[domain_models.TravelDimension]float64{
				domain_models.DimensionUrban:   9.5,
				domain_models.DimensionCulture: 9.0,
				domain_models.DimensionLuxury:  8.0,
				domain_models.DimensionComfort: 7.0,
			},
		},
		{
			ID:           "london_uk",
			Name:         "London",
			Country:      "UK",
			Category:     domain_models.CategoryUrban,
			Description:  "Historic global capital with royal heritage, world-class museums, and diverse culture.",
			AverageCost:  3500,
			BestSeasons:  []domain_models.Season{domain_models.SeasonSpring, domain_models.SeasonSummer, domain_models.SeasonFall},
			TravelTime:   8,
			Highlights:   []string{"British Museum", "West End Shows", "Historical Sites", "Royal Parks"},
			WeatherScore: 6.5,
			CrowdScore:   8.5,
			DNAAffinity: map[domain_models.TravelDimension]float64{
				domain_models.DimensionUrban:   9.0,
				domain_models.DimensionCulture: 9.2,
				domain_models.DimensionComfort: 7.5,
				domain_models.DimensionLuxury:  7.0,
			},
		},
		{
			ID:           "bali_id",
			Name:         "Bali",
			Country:      "Indonesia",
			Category:     domain_models.CategoryBeach,
			Description:  "Island of gods with beautiful beaches, spiritual culture, and luxurious resorts.",
			AverageCost:  2500,
			BestSeasons:  []domain_models.Season{domain_models.SeasonSummer, domain_models.SeasonFall},
			TravelTime:   20,
			Highlights:   []string{"Ubud Rice Terraces", "Beach Clubs", "Water Temples", "Surfing Spots"},
			WeatherScore: 8.8,
			CrowdScore:   7.5,
			DNAAffinity: map[domain_models.TravelDimension]float64{
				domain_models.DimensionComfort: 8.5,
				domain_models.DimensionNature:  8.0,
				domain_models.DimensionCulture: 7.5,
				domain_models.DimensionLuxury:  7.0,
			},
		},
		{
			ID:           "tulum_mx",
			Name:         "Tulum",
			Country:      "Mexico",
			Category:     domain_models.CategoryBeach,
			Description:  "Bohemian beach town with Mayan ruins, cenotes, and eco-chic accommodations.",
			AverageCost:  2200,
			BestSeasons:  []domain_models.Season{domain_models.SeasonWinter, domain_models.SeasonSpring},
			TravelTime:   5,
			Highlights:   []string{"Mayan Ruins", "Cenotes", "Beach Clubs", "Eco-Resorts"},
			WeatherScore: 9.0,
			CrowdScore:   7.0,
			DNAAffinity: map[domain_models.TravelDimension]float64{
				domain_models.DimensionComfort:   8.0,
				domain_models.DimensionNature:    8.5,
				domain_models.DimensionCulture:   7.0,
				domain_models.DimensionAdventure: 6.5,
			},
		},
		{
			ID:           "ubud_id",
			Name:         "Ubud",
			Country:      "Indonesia",
			Category:     domain_models.CategoryWellness,
			Description:  "Spiritual and wellness center in Bali with yoga retreats, healing centers, and organic cuisine.",
			AverageCost:  2000,
			BestSeasons:  []domain_models.Season{domain_models.SeasonYearRound},
			TravelTime:   20,
			Highlights:   []string{"Yoga Retreats", "Organic Farms", "Healing Centers", "Monkey Forest"},
			WeatherScore: 8.5,
			CrowdScore:   6.0,
			DNAAffinity: map[domain_models.TravelDimension]float64{
				domain_models.DimensionComfort: 9.0,
				domain_models.DimensionNature:  8.5,
				domain_models.DimensionCulture: 7.0,
				domain_models.DimensionLuxury:  6.0,
			},
		},
		{
			ID:           "sedona_us",
			Name:         "Sedona",
			Country:      "USA",
			Category:     domain_models.CategoryWellness,
			Description:  "Desert town famous for red rock formations, spiritual energy vortices, and wellness retreats.",
			AverageCost:  1800,
			BestSeasons:  []domain_models.Season{domain_models.SeasonSpring, domain_models.SeasonFall},
			TravelTime:   4,
			Highlights:   []string{"Vortex Sites", "Jeep Tours", "Spa Retreats", "Hiking Trails"},
			WeatherScore: 8.0,
			CrowdScore:   5.5,
			DNAAffinity: map[domain_models.TravelDimension]float64{
				domain_models.DimensionComfort:   8.8,
				domain_models.DimensionNature:    8.5,
				domain_models.DimensionAdventure: 7.0,
				domain_models.DimensionCulture:   5.5,
			},
		},
	}
}
