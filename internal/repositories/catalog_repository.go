package repositories

import (
	"log"
	"sort"
	"strings"

	"gorm.io/gorm"
	"voyago/internal/models/db_models"
)

// CatalogFilters narrows a catalog query. Zero values mean "no filter".
type CatalogFilters struct {
	Tags         []string
	Difficulty   string
	MinDuration  int
	MaxDuration  int
	GailInterest string
	MaxPriority  int
}

// CatalogRepository serves the immutable catalog snapshot. Items are loaded
// once at construction time, so sharing across requests needs no locking.
type CatalogRepository interface {
	Items() []db_models.CatalogItem
	Query(filters CatalogFilters) []db_models.CatalogItem
}

type staticCatalogRepository struct {
	items []db_models.CatalogItem
}

func NewStaticCatalogRepository(items []db_models.CatalogItem) CatalogRepository {
	snapshot := append([]db_models.CatalogItem(nil), items...)
	sort.SliceStable(snapshot, func(i, j int) bool {
		return snapshot[i].Position < snapshot[j].Position
	})
	for i := range snapshot {
		snapshot[i].ResolveStatus()
	}
	return &staticCatalogRepository{items: snapshot}
}

// NewCatalogRepository seeds the catalog table on first boot and loads the
// snapshot once. The returned repository never touches the database again.
func NewCatalogRepository(db *gorm.DB) (CatalogRepository, error) {
	if err := db.AutoMigrate(&db_models.CatalogItem{}); err != nil {
		return nil, err
	}

	var count int64
	if err := db.Model(&db_models.CatalogItem{}).Count(&count).Error; err != nil {
		return nil, err
	}

	if count == 0 {
		seed := db_models.DefaultCatalog()
		if err := db.Create(&seed).Error; err != nil {
			return nil, err
		}
		log.Printf("Seeded catalog with %d curated items", len(seed))
	}

	var items []db_models.CatalogItem
	if err := db.Order("position asc").Find(&items).Error; err != nil {
		return nil, err
	}

	log.Printf("Loaded catalog snapshot with %d items", len(items))
	return NewStaticCatalogRepository(items), nil
}

func (r *staticCatalogRepository) Items() []db_models.CatalogItem {
	return append([]db_models.CatalogItem(nil), r.items...)
}

func (r *staticCatalogRepository) Query(filters CatalogFilters) []db_models.CatalogItem {
	matched := make([]db_models.CatalogItem, 0, len(r.items))
	for _, item := range r.items {
		if !matchesFilters(item, filters) {
			continue
		}
		matched = append(matched, item)
	}
	return matched
}

func matchesFilters(item db_models.CatalogItem, filters CatalogFilters) bool {
	if filters.Difficulty != "" && item.Difficulty != filters.Difficulty {
		return false
	}
	if filters.MinDuration > 0 && item.EstimatedDuration < filters.MinDuration {
		return false
	}
	if filters.MaxDuration > 0 && item.EstimatedDuration > filters.MaxDuration {
		return false
	}
	if filters.GailInterest != "" && !strings.EqualFold(item.GailInterestLevel, filters.GailInterest) {
		return false
	}
	if filters.MaxPriority > 0 && item.KenPriority > filters.MaxPriority {
		return false
	}
	for _, want := range filters.Tags {
		if !containsFold(item.Tags, want) {
			return false
		}
	}
	return true
}

func containsFold(haystack []string, needle string) bool {
	for _, s := range haystack {
		if strings.EqualFold(s, needle) {
			return true
		}
	}
	return false
}
