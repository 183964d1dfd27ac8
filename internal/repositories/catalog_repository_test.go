package repositories

import (
	"testing"

	"voyago/internal/models/db_models"
)

func TestStaticCatalogQuery(t *testing.T) {
	repo := NewStaticCatalogRepository(db_models.DefaultCatalog())
	total := len(repo.Items())
	if total == 0 {
		t.Fatal("default catalog is empty")
	}

	tests := []struct {
		name    string
		filters CatalogFilters
		check   func(db_models.CatalogItem) bool
	}{
		{
			name:    "difficulty",
			filters: CatalogFilters{Difficulty: db_models.DifficultyEasy},
			check:   func(i db_models.CatalogItem) bool { return i.Difficulty == db_models.DifficultyEasy },
		},
		{
			name:    "duration window",
			filters: CatalogFilters{MinDuration: 5, MaxDuration: 7},
			check:   func(i db_models.CatalogItem) bool { return i.EstimatedDuration >= 5 && i.EstimatedDuration <= 7 },
		},
		{
			name:    "gail interest",
			filters: CatalogFilters{GailInterest: "high"},
			check:   func(i db_models.CatalogItem) bool { return i.GailInterestLevel == db_models.GailInterestHigh },
		},
		{
			name:    "max priority",
			filters: CatalogFilters{MaxPriority: 2},
			check:   func(i db_models.CatalogItem) bool { return i.KenPriority <= 2 },
		},
		{
			name:    "tag",
			filters: CatalogFilters{Tags: []string{"hiking"}},
			check: func(i db_models.CatalogItem) bool {
				for _, tag := range i.Tags {
					if tag == "hiking" {
						return true
					}
				}
				return false
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := repo.Query(tt.filters)
			if len(items) == 0 {
				t.Fatalf("Query(%+v) returned nothing", tt.filters)
			}
			if len(items) == total {
				t.Errorf("Query(%+v) filtered nothing out", tt.filters)
			}
			for _, item := range items {
				if !tt.check(item) {
					t.Errorf("Query(%+v) returned non-matching item %q", tt.filters, item.Destination)
				}
			}
		})
	}

	t.Run("empty filters return everything", func(t *testing.T) {
		if got := len(repo.Query(CatalogFilters{})); got != total {
			t.Errorf("Query(empty) = %d items, want %d", got, total)
		}
	})

	t.Run("filters combine conjunctively", func(t *testing.T) {
		items := repo.Query(CatalogFilters{
			Difficulty:  db_models.DifficultyChallenging,
			MaxPriority: 2,
		})
		for _, item := range items {
			if item.Difficulty != db_models.DifficultyChallenging || item.KenPriority > 2 {
				t.Errorf("item %q violates combined filters", item.Destination)
			}
		}
	})
}

func TestStaticCatalogOrderIsStable(t *testing.T) {
	repo := NewStaticCatalogRepository(db_models.DefaultCatalog())
	first := repo.Items()
	second := repo.Items()
	for i := range first {
		if first[i].Destination != second[i].Destination {
			t.Fatalf("catalog order changed between reads at index %d", i)
		}
	}
	for i := 1; i < len(first); i++ {
		if first[i].Position < first[i-1].Position {
			t.Fatalf("catalog not ordered by position at index %d", i)
		}
	}
}
