package services

import (
	"fmt"
	"strings"

	"voyago/internal/models/request_models"
	"voyago/internal/models/response_models"
)

const (
	AreaDestinations = "destinations"
	AreaExperiences  = "experiences"
	AreaPreferences  = "preferences"
	AreaBudget       = "budget"
)

type AnalyzerServiceInterface interface {
	Validate(input request_models.TravelInput) response_models.ValidationResult
	DetectIncomplete(input request_models.TravelInput) response_models.IncompleteAnalysis
	CompletenessScore(input request_models.TravelInput) int
	Normalize(input request_models.TravelInput) request_models.TravelInput
}

type AnalyzerService struct{}

func NewAnalyzerService() AnalyzerServiceInterface {
	return &AnalyzerService{}
}

func (a *AnalyzerService) Validate(input request_models.TravelInput) response_models.ValidationResult {
	result := response_models.ValidationResult{Errors: []string{}}

	if len(input.Destinations) == 0 {
		result.Errors = append(result.Errors, "at least one destination is required")
	}
	for _, dest := range input.Destinations {
		if len(strings.TrimSpace(dest)) < 2 {
			result.Errors = append(result.Errors, fmt.Sprintf("destination %q is too short to be meaningful", dest))
		}
	}

	if len(input.Experiences) == 0 {
		result.Errors = append(result.Errors, "at least one experience is required")
	}
	for _, exp := range input.Experiences {
		if len(strings.TrimSpace(exp)) < 2 {
			result.Errors = append(result.Errors, fmt.Sprintf("experience %q is too short to be meaningful", exp))
		}
	}

	if input.Preferences != nil && input.Preferences.BudgetRange != nil {
		br := input.Preferences.BudgetRange
		if br.Min < 0 || br.Max < 0 {
			result.Errors = append(result.Errors, "budget range values must be non-negative")
		} else if br.Min >= br.Max {
			result.Errors = append(result.Errors, "budget range minimum must be less than its maximum")
		}
	}

	for _, dest := range input.Destinations {
		if isVagueDestination(dest) {
			result.Warnings = append(result.Warnings, fmt.Sprintf("destination %q is very broad - consider narrowing it down", dest))
		}
	}
	for _, exp := range input.Experiences {
		if isVagueExperience(exp) {
			result.Warnings = append(result.Warnings, fmt.Sprintf("experience %q is vague - a more specific activity helps", exp))
		}
	}

	result.IsValid = len(result.Errors) == 0
	return result
}

var areaSuggestions = map[string]string{
	AreaDestinations: "Name specific places you want to visit, not whole continents or regions.",
	AreaExperiences:  "Describe concrete activities, for example hiking the Inca Trail or a street food tour.",
	AreaPreferences:  "Add travel preferences such as style, interests, and group size.",
	AreaBudget:       "Set a budget range so suggestions can match what you want to spend.",
}

func (a *AnalyzerService) DetectIncomplete(input request_models.TravelInput) response_models.IncompleteAnalysis {
	analysis := response_models.IncompleteAnalysis{
		IncompleteAreas: []string{},
		Suggestions:     []string{},
	}

	validation := a.Validate(input)

	if len(input.Destinations) == 0 || anyVagueDestination(input.Destinations) {
		analysis.IncompleteAreas = append(analysis.IncompleteAreas, AreaDestinations)
	}
	if len(input.Experiences) == 0 || anyVagueExperience(input.Experiences) {
		analysis.IncompleteAreas = append(analysis.IncompleteAreas, AreaExperiences)
	}
	if input.Preferences == nil {
		analysis.IncompleteAreas = append(analysis.IncompleteAreas, AreaPreferences)
	}
	if budgetMissingOrZero(input) {
		analysis.IncompleteAreas = append(analysis.IncompleteAreas, AreaBudget)
	}

	for _, area := range analysis.IncompleteAreas {
		analysis.Suggestions = append(analysis.Suggestions, areaSuggestions[area])
	}

	analysis.NeedsFollowUp = !validation.IsValid || len(analysis.IncompleteAreas) > 0
	if analysis.NeedsFollowUp && len(analysis.Suggestions) == 0 {
		analysis.Suggestions = append(analysis.Suggestions, "Fix the reported validation issues before asking for recommendations.")
	}
	return analysis
}

// completenessWeights sum to 100. Presence-only checks keep the score
// monotonic: removing data can never raise it.
var completenessWeights = []struct {
	weight  int
	present func(request_models.TravelInput) bool
}{
	{25, func(t request_models.TravelInput) bool { return hasNonEmptyEntry(t.Destinations) }},
	{25, func(t request_models.TravelInput) bool { return hasNonEmptyEntry(t.Experiences) }},
	{10, func(t request_models.TravelInput) bool { return t.Preferences != nil && t.Preferences.TravelStyle != "" }},
	{10, func(t request_models.TravelInput) bool { return t.Preferences != nil && hasNonEmptyEntry(t.Preferences.Interests) }},
	{10, func(t request_models.TravelInput) bool { return t.Preferences != nil && t.Preferences.GroupSize >= 1 }},
	{10, func(t request_models.TravelInput) bool {
		return t.Preferences != nil && t.Preferences.BudgetRange != nil &&
			t.Preferences.BudgetRange.Min >= 0 && t.Preferences.BudgetRange.Min < t.Preferences.BudgetRange.Max
	}},
	{10, func(t request_models.TravelInput) bool { return t.Timeframe != nil && t.Timeframe.Flexibility != "" }},
}

func (a *AnalyzerService) CompletenessScore(input request_models.TravelInput) int {
	score := 0
	for _, w := range completenessWeights {
		if w.present(input) {
			score += w.weight
		}
	}
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}

func (a *AnalyzerService) Normalize(input request_models.TravelInput) request_models.TravelInput {
	out := input.Clone()
	out.Destinations = trimNonEmpty(out.Destinations)
	out.Experiences = trimNonEmpty(out.Experiences)
	if out.Preferences != nil {
		out.Preferences.Interests = trimNonEmpty(out.Preferences.Interests)
	}
	return out
}

func trimNonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	return out
}

func hasNonEmptyEntry(values []string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return true
		}
	}
	return false
}

func anyVagueDestination(dests []string) bool {
	for _, d := range dests {
		if isVagueDestination(d) {
			return true
		}
	}
	return false
}

func anyVagueExperience(exps []string) bool {
	for _, e := range exps {
		if isVagueExperience(e) {
			return true
		}
	}
	return false
}

func budgetMissingOrZero(input request_models.TravelInput) bool {
	if input.Preferences == nil || input.Preferences.BudgetRange == nil {
		return true
	}
	br := input.Preferences.BudgetRange
	return br.Min == 0 && br.Max == 0
}
