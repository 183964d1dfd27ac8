package db_models

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

const (
	DifficultyEasy        = "easy"
	DifficultyModerate    = "moderate"
	DifficultyChallenging = "challenging"

	GailInterestHigh = "HIGH"
	GailInterestLow  = "LOW"
)

// CatalogItem is one curated travel entry. The table is seeded once and
// treated as read-only for the lifetime of the process.
type CatalogItem struct {
	BaseModel
	Position          int    `gorm:"uniqueIndex"` // curation order, used for stable sorting
	Destination       string `gorm:"not null"`
	KenPriority       int    // 1..6, lower is more wanted
	GailInterestLevel string // "", "HIGH", "LOW"
	Status            string // "" or a free-form "Done - <year>" marker
	Experiences       pq.StringArray `gorm:"type:text[]"`
	EstimatedDuration int            // days
	Difficulty        string         // "easy", "moderate", "challenging"
	BestSeason        string
	Tags              pq.StringArray `gorm:"type:text[]"`

	// Resolved from Status at load time so query code never does
	// substring checks on the raw marker.
	Done     bool `gorm:"-" json:"done"`
	DoneYear int  `gorm:"-" json:"done_year,omitempty"`
}

var doneYearPattern = regexp.MustCompile(`\b(\d{4})\b`)

// ResolveStatus parses the raw status marker into the Done/DoneYear pair.
// The year is kept when present even though nothing downstream needs it yet.
func (c *CatalogItem) ResolveStatus() {
	c.Done = strings.Contains(strings.ToLower(c.Status), "done")
	c.DoneYear = 0
	if !c.Done {
		return
	}
	if m := doneYearPattern.FindStringSubmatch(c.Status); m != nil {
		if year, err := strconv.Atoi(m[1]); err == nil {
			c.DoneYear = year
		}
	}
}

func (c *CatalogItem) AfterFind(tx *gorm.DB) error {
	c.ResolveStatus()
	return nil
}
