package db_models

import "github.com/lib/pq"

// DefaultCatalog returns the embedded curated dataset. It seeds the database
// on first boot and serves directly when no database is configured.
func DefaultCatalog() []CatalogItem {
	items := []CatalogItem{
		{
			Position:          1,
			Destination:       "Machu Picchu (Peru)",
			KenPriority:       1,
			GailInterestLevel: GailInterestHigh,
			Experiences:       pq.StringArray{"Inca Trail hiking", "Sacred Valley tours", "Andean cooking classes"},
			EstimatedDuration: 7,
			Difficulty:        DifficultyChallenging,
			BestSeason:        "May to September",
			Tags:              pq.StringArray{"adventure", "history", "hiking"},
		},
		{
			Position:          2,
			Destination:       "Kyoto (Japan)",
			KenPriority:       2,
			GailInterestLevel: GailInterestHigh,
			Experiences:       pq.StringArray{"temple visits", "tea ceremonies", "kaiseki dining"},
			EstimatedDuration: 6,
			Difficulty:        DifficultyEasy,
			BestSeason:        "March to May",
			Tags:              pq.StringArray{"culture", "history", "food"},
		},
		{
			Position:          3,
			Destination:       "Serengeti National Park (Tanzania)",
			KenPriority:       2,
			GailInterestLevel: GailInterestHigh,
			Experiences:       pq.StringArray{"wildlife safari drives", "hot air balloon rides", "Maasai village visits"},
			EstimatedDuration: 8,
			Difficulty:        DifficultyModerate,
			BestSeason:        "June to October",
			Tags:              pq.StringArray{"wildlife", "nature", "safari"},
		},
		{
			Position:          4,
			Destination:       "Queenstown (New Zealand)",
			KenPriority:       3,
			GailInterestLevel: "",
			Experiences:       pq.StringArray{"bungee jumping", "jet boating", "alpine hiking"},
			EstimatedDuration: 10,
			Difficulty:        DifficultyChallenging,
			BestSeason:        "December to February",
			Tags:              pq.StringArray{"adventure", "mountains", "extreme"},
		},
		{
			Position:          5,
			Destination:       "Santorini (Greece)",
			KenPriority:       4,
			GailInterestLevel: GailInterestHigh,
			Experiences:       pq.StringArray{"caldera sunset cruises", "wine tasting", "beach lounging"},
			EstimatedDuration: 5,
			Difficulty:        DifficultyEasy,
			BestSeason:        "April to June",
			Tags:              pq.StringArray{"relaxation", "beach", "luxury"},
		},
		{
			Position:          6,
			Destination:       "Angkor Wat (Cambodia)",
			KenPriority:       3,
			GailInterestLevel: GailInterestLow,
			Status:            "Done - 2023",
			Experiences:       pq.StringArray{"temple circuits", "sunrise photography", "cycling tours"},
			EstimatedDuration: 4,
			Difficulty:        DifficultyModerate,
			BestSeason:        "November to February",
			Tags:              pq.StringArray{"history", "culture", "photography"},
		},
		{
			Position:          7,
			Destination:       "Banff National Park (Canada)",
			KenPriority:       4,
			GailInterestLevel: "",
			Experiences:       pq.StringArray{"glacier hiking", "lake kayaking", "wildlife spotting"},
			EstimatedDuration: 7,
			Difficulty:        DifficultyModerate,
			BestSeason:        "June to August",
			Tags:              pq.StringArray{"nature", "mountains", "hiking"},
		},
		{
			Position:          8,
			Destination:       "Reykjavik (Iceland)",
			KenPriority:       5,
			GailInterestLevel: GailInterestLow,
			Experiences:       pq.StringArray{"northern lights tours", "geothermal spa soaks", "glacier walks"},
			EstimatedDuration: 6,
			Difficulty:        DifficultyModerate,
			BestSeason:        "September to March",
			Tags:              pq.StringArray{"nature", "relaxation", "photography"},
		},
		{
			Position:          9,
			Destination:       "Amalfi Coast (Italy)",
			KenPriority:       5,
			GailInterestLevel: "",
			Experiences:       pq.StringArray{"coastal drives", "limoncello tasting", "boat excursions"},
			EstimatedDuration: 6,
			Difficulty:        DifficultyEasy,
			BestSeason:        "May to September",
			Tags:              pq.StringArray{"relaxation", "food", "luxury"},
		},
		{
			Position:          10,
			Destination:       "Patagonia (Argentina)",
			KenPriority:       2,
			GailInterestLevel: "",
			Experiences:       pq.StringArray{"Torres del Paine trekking", "glacier climbing", "estancia stays"},
			EstimatedDuration: 14,
			Difficulty:        DifficultyChallenging,
			BestSeason:        "November to March",
			Tags:              pq.StringArray{"adventure", "hiking", "nature"},
		},
		{
			Position:          11,
			Destination:       "Petra (Jordan)",
			KenPriority:       6,
			GailInterestLevel: GailInterestLow,
			Status:            "Done - 2019",
			Experiences:       pq.StringArray{"canyon walks", "Bedouin camp stays", "desert stargazing"},
			EstimatedDuration: 3,
			Difficulty:        DifficultyModerate,
			BestSeason:        "March to May",
			Tags:              pq.StringArray{"history", "desert", "culture"},
		},
		{
			Position:          12,
			Destination:       "Bali (Indonesia)",
			KenPriority:       6,
			GailInterestLevel: "",
			Experiences:       pq.StringArray{"rice terrace walks", "surf lessons", "yoga retreats"},
			EstimatedDuration: 9,
			Difficulty:        DifficultyEasy,
			BestSeason:        "April to October",
			Tags:              pq.StringArray{"relaxation", "beach", "wellness"},
		},
	}

	for i := range items {
		items[i].ResolveStatus()
	}
	return items
}
