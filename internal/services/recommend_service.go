package services

import (
	"fmt"
	"log"
	"regexp"
	"sort"
	"strings"

	"voyago/internal/models/db_models"
	"voyago/internal/models/request_models"
	"voyago/internal/models/response_models"
	"voyago/internal/repositories"
	"voyago/pkg/utils"
)

const (
	maxRecommendations     = 8
	maxCatalogMatches      = 5
	maxCrossPollinated     = 3
	crossPollinationScore  = 0.8
	baseCatalogConfidence  = 0.5
	destinationMatchBonus  = 0.3
	experienceMatchBonus   = 0.2
	interestTagBonus       = 0.15
	highKenPriorityBonus   = 0.1
	gailHighInterestBonus  = 0.15
	highKenPriorityCeiling = 2
)

type RecommendServiceInterface interface {
	Score(profile request_models.UserProfile, input request_models.TravelInput) ([]response_models.Recommendation, error)
}

type RecommendService struct {
	catalog repositories.CatalogRepository
}

func NewRecommendService(catalog repositories.CatalogRepository) RecommendServiceInterface {
	return &RecommendService{catalog: catalog}
}

// Score builds the full ranked list: catalog matches, cross-pollinated
// experiences, then heuristic keyword suggestions, sorted by confidence and
// capped. Any panic inside is converted into a single ScoringError so the
// caller never sees a partial list.
func (r *RecommendService) Score(profile request_models.UserProfile, input request_models.TravelInput) (recs []response_models.Recommendation, err error) {
	defer func() {
		if p := recover(); p != nil {
			log.Printf("Recovered scoring panic: %v", p)
			recs = nil
			err = &utils.ScoringError{
				Reason:           fmt.Sprint(p),
				DestinationCount: len(input.Destinations),
				ExperienceCount:  len(input.Experiences),
				HasPreferences:   input.Preferences != nil,
				HasHomeLocation:  profile.HomeLocation != "",
			}
		}
	}()

	items := r.catalog.Items()

	recs = append(recs, r.scoreCatalogMatches(input, items)...)
	recs = append(recs, r.crossPollinate(input, items)...)
	recs = append(recs, r.heuristicSuggestions(input)...)

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Confidence > recs[j].Confidence
	})
	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	return recs, nil
}

// ---------------------------------------------------------------
// Step 1+2: catalog matching

func (r *RecommendService) scoreCatalogMatches(input request_models.TravelInput, items []db_models.CatalogItem) []response_models.Recommendation {
	candidates := make([]db_models.CatalogItem, 0, len(items))
	for _, item := range items {
		if item.Done {
			continue
		}
		candidates = append(candidates, item)
	}

	wantDifficulties := difficultiesFromInterests(interestsOf(input))
	minDays, maxDays := durationWindow(input)

	sort.SliceStable(candidates, func(i, j int) bool {
		mi := filterMatchCount(candidates[i], wantDifficulties, minDays, maxDays)
		mj := filterMatchCount(candidates[j], wantDifficulties, minDays, maxDays)
		if mi != mj {
			return mi > mj
		}
		gi := candidates[i].GailInterestLevel == db_models.GailInterestHigh
		gj := candidates[j].GailInterestLevel == db_models.GailInterestHigh
		if gi != gj {
			return gi
		}
		return candidates[i].KenPriority < candidates[j].KenPriority
	})

	if len(candidates) > maxCatalogMatches {
		candidates = candidates[:maxCatalogMatches]
	}

	recs := make([]response_models.Recommendation, 0, len(candidates))
	for _, item := range candidates {
		recs = append(recs, r.scoreCatalogItem(input, item))
	}
	return recs
}

func (r *RecommendService) scoreCatalogItem(input request_models.TravelInput, item db_models.CatalogItem) response_models.Recommendation {
	confidence := baseCatalogConfidence
	related := []string{}

	matchedDest := ""
	bareName := stripTrailingParenthetical(item.Destination)
	for _, dest := range input.Destinations {
		if crossMatch(dest, bareName) {
			matchedDest = dest
			break
		}
	}
	if matchedDest != "" {
		confidence += destinationMatchBonus
		related = append(related, matchedDest)
	}

	matchedExp := ""
	for _, userExp := range input.Experiences {
		for _, itemExp := range item.Experiences {
			if crossMatch(userExp, itemExp) {
				matchedExp = userExp
				break
			}
		}
		if matchedExp != "" {
			break
		}
	}
	if matchedExp != "" {
		confidence += experienceMatchBonus
		related = append(related, matchedExp)
	}

	matchedInterest := ""
	for _, interest := range interestsOf(input) {
		for _, tag := range item.Tags {
			if crossMatch(interest, tag) {
				matchedInterest = interest
				break
			}
		}
		if matchedInterest != "" {
			break
		}
	}
	if matchedInterest != "" {
		confidence += interestTagBonus
		related = append(related, matchedInterest)
	}

	if item.KenPriority <= highKenPriorityCeiling {
		confidence += highKenPriorityBonus
	}
	if item.GailInterestLevel == db_models.GailInterestHigh {
		confidence += gailHighInterestBonus
	}
	if confidence > 1.0 {
		confidence = 1.0
	}

	if len(related) == 0 {
		related = append(related, item.Destination)
	}

	return response_models.Recommendation{
		Type:        response_models.RecommendationTypeDestination,
		Title:       item.Destination,
		Description: describeCatalogItem(item),
		Reasoning:   reasonCatalogItem(item, confidence, matchedDest, matchedExp),
		Confidence:  confidence,
		RelatedTo:   related,
		Metadata: &response_models.RecommendationMetadata{
			Season:     item.BestSeason,
			Duration:   item.EstimatedDuration,
			Difficulty: item.Difficulty,
		},
	}
}

func describeCatalogItem(item db_models.CatalogItem) string {
	exps := item.Experiences
	if len(exps) > 3 {
		exps = exps[:3]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Offers %s.", strings.Join(exps, ", "))
	fmt.Fprintf(&b, " Best visited %s, typically a %d-day trip at a %s pace.",
		item.BestSeason, item.EstimatedDuration, item.Difficulty)
	if item.KenPriority <= highKenPriorityCeiling {
		b.WriteString(" A top pick on the curated list.")
	}
	if item.GailInterestLevel == db_models.GailInterestHigh {
		b.WriteString(" Flagged as a high-interest destination.")
	}
	return b.String()
}

func reasonCatalogItem(item db_models.CatalogItem, confidence float64, matchedDest, matchedExp string) string {
	var tier string
	switch {
	case confidence > 0.8:
		tier = "This is an excellent match for your plans"
	case confidence > 0.6:
		tier = "This aligns well with what you described"
	default:
		tier = "This opens up some interesting possibilities"
	}

	clauses := []string{tier}
	if matchedDest != "" {
		clauses = append(clauses, fmt.Sprintf("it matches your interest in %s", matchedDest))
	}
	if matchedExp != "" {
		clauses = append(clauses, fmt.Sprintf("it covers experiences like %s", matchedExp))
	}
	if item.GailInterestLevel == db_models.GailInterestHigh {
		clauses = append(clauses, "it carries a high interest rating")
	}
	if item.KenPriority <= highKenPriorityCeiling {
		clauses = append(clauses, "it sits near the top of the bucket list")
	}
	return strings.Join(clauses, ", ") + "."
}

// ---------------------------------------------------------------
// Step 3: experience cross-pollination

func (r *RecommendService) crossPollinate(input request_models.TravelInput, items []db_models.CatalogItem) []response_models.Recommendation {
	var recs []response_models.Recommendation
	seen := map[string]bool{}

	for _, item := range items {
		if item.Done {
			continue
		}
		for _, itemExp := range item.Experiences {
			if len(recs) >= maxCrossPollinated {
				return recs
			}
			key := strings.ToLower(itemExp)
			if seen[key] {
				continue
			}
			matched := ""
			for _, userExp := range input.Experiences {
				if crossMatch(userExp, itemExp) {
					matched = userExp
					break
				}
			}
			if matched == "" {
				continue
			}
			seen[key] = true
			recs = append(recs, response_models.Recommendation{
				Type:  response_models.RecommendationTypeExperience,
				Title: fmt.Sprintf("%s in %s", itemExp, stripTrailingParenthetical(item.Destination)),
				Description: fmt.Sprintf(
					"Since %s is on your list, %s stands out as a signature way to do it in %s.",
					matched, itemExp, item.Destination),
				Reasoning:  fmt.Sprintf("This experience lines up directly with your interest in %s.", matched),
				Confidence: crossPollinationScore,
				RelatedTo:  []string{matched, item.Destination},
			})
		}
	}
	return recs
}

// ---------------------------------------------------------------
// Step 4: heuristic keyword suggestions

type heuristicBucket struct {
	Name        string
	Keywords    []string
	Title       string
	Description string
	Reasoning   string
	Confidence  float64
}

var heuristicBuckets = []heuristicBucket{
	{
		Name:        "adventure",
		Keywords:    []string{"adventure", "hiking", "trek", "climb", "extreme", "adrenaline"},
		Title:       "Adventure Photography Workshop",
		Description: "A guided workshop for capturing landscapes and action shots while out on the trail.",
		Reasoning:   "Your plans lean toward adventure, and documenting it well makes the trip last.",
		Confidence:  0.7,
	},
	{
		Name:        "cultural",
		Keywords:    []string{"culture", "cultural", "history", "museum", "temple", "heritage"},
		Title:       "Local Cooking Class",
		Description: "A hands-on class with a local cook, from market shopping to a shared meal.",
		Reasoning:   "Cultural travelers consistently rate cooking with locals as a trip highlight.",
		Confidence:  0.75,
	},
	{
		Name:        "nature",
		Keywords:    []string{"nature", "wildlife", "forest", "safari", "outdoors", "birdwatching"},
		Title:       "Guided Wildlife Excursion",
		Description: "A small-group outing with a naturalist guide timed for peak animal activity.",
		Reasoning:   "Your interest in the natural world points straight at a guided excursion.",
		Confidence:  0.7,
	},
	{
		Name:        "relaxation",
		Keywords:    []string{"relax", "beach", "spa", "resort", "wellness", "unwind"},
		Title:       "Coastal Wellness Day",
		Description: "A slow day built around thermal baths, massage, and time by the water.",
		Reasoning:   "A deliberate rest day keeps the relaxing side of this trip from getting squeezed out.",
		Confidence:  0.65,
	},
}

func (r *RecommendService) heuristicSuggestions(input request_models.TravelInput) []response_models.Recommendation {
	parts := append([]string{}, input.Destinations...)
	parts = append(parts, input.Experiences...)
	parts = append(parts, interestsOf(input)...)
	blob := strings.ToLower(strings.Join(parts, " "))

	var recs []response_models.Recommendation
	for _, bucket := range heuristicBuckets {
		var matched []string
		for _, kw := range bucket.Keywords {
			if strings.Contains(blob, kw) {
				matched = append(matched, kw)
			}
		}
		if len(matched) == 0 {
			continue
		}
		recs = append(recs, response_models.Recommendation{
			Type:        response_models.RecommendationTypeExperience,
			Title:       bucket.Title,
			Description: bucket.Description,
			Reasoning:   bucket.Reasoning,
			Confidence:  bucket.Confidence,
			RelatedTo:   matched,
		})
	}
	return recs
}

// ---------------------------------------------------------------
// shared helpers

var trailingParenthetical = regexp.MustCompile(`\s*\([^)]*\)\s*$`)

func stripTrailingParenthetical(name string) string {
	return strings.TrimSpace(trailingParenthetical.ReplaceAllString(name, ""))
}

// crossMatch reports a case-insensitive substring match in either direction.
func crossMatch(a, b string) bool {
	la := strings.ToLower(strings.TrimSpace(a))
	lb := strings.ToLower(strings.TrimSpace(b))
	if la == "" || lb == "" {
		return false
	}
	return strings.Contains(la, lb) || strings.Contains(lb, la)
}

func interestsOf(input request_models.TravelInput) []string {
	if input.Preferences == nil {
		return nil
	}
	return input.Preferences.Interests
}

// interestDifficultyTerms classifies interest keywords into the catalog
// difficulty they imply.
var interestDifficultyTerms = map[string]string{
	"adventure":   db_models.DifficultyChallenging,
	"hiking":      db_models.DifficultyChallenging,
	"trekking":    db_models.DifficultyChallenging,
	"climbing":    db_models.DifficultyChallenging,
	"extreme":     db_models.DifficultyChallenging,
	"diving":      db_models.DifficultyChallenging,
	"culture":     db_models.DifficultyModerate,
	"history":     db_models.DifficultyModerate,
	"museum":      db_models.DifficultyModerate,
	"art":         db_models.DifficultyModerate,
	"food":        db_models.DifficultyModerate,
	"photography": db_models.DifficultyModerate,
	"relaxation":  db_models.DifficultyEasy,
	"relax":       db_models.DifficultyEasy,
	"beach":       db_models.DifficultyEasy,
	"spa":         db_models.DifficultyEasy,
	"luxury":      db_models.DifficultyEasy,
	"wellness":    db_models.DifficultyEasy,
}

func difficultiesFromInterests(interests []string) map[string]bool {
	out := map[string]bool{}
	for _, interest := range interests {
		lower := strings.ToLower(interest)
		for term, difficulty := range interestDifficultyTerms {
			if strings.Contains(lower, term) {
				out[difficulty] = true
			}
		}
	}
	return out
}

// durationWindow maps the travel-duration preference to a day range.
func durationWindow(input request_models.TravelInput) (int, int) {
	if input.Preferences == nil {
		return 0, 0
	}
	switch input.Preferences.TravelDuration {
	case "short":
		return 1, 7
	case "medium":
		return 7, 14
	case "long":
		return 14, 30
	default:
		return 0, 0
	}
}

func filterMatchCount(item db_models.CatalogItem, wantDifficulties map[string]bool, minDays, maxDays int) int {
	matches := 0
	if len(wantDifficulties) > 0 && wantDifficulties[item.Difficulty] {
		matches++
	}
	if minDays > 0 && item.EstimatedDuration >= minDays && item.EstimatedDuration <= maxDays {
		matches++
	}
	return matches
}
