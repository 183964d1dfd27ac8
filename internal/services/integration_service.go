package services

import (
	"sort"
	"strings"

	"voyago/internal/models/request_models"
)

type IntegrationServiceInterface interface {
	Integrate(original request_models.TravelInput, answers map[string]request_models.AnswerValue) request_models.TravelInput
}

type IntegrationService struct{}

func NewIntegrationService() IntegrationServiceInterface {
	return &IntegrationService{}
}

// Integrate folds question answers back into a copy of the input.
// Unrecognized answer keys are skipped rather than failing the whole merge.
func (s *IntegrationService) Integrate(original request_models.TravelInput, answers map[string]request_models.AnswerValue) request_models.TravelInput {
	out := original.Clone()

	// Map iteration order is random; apply in sorted key order so repeated
	// calls produce identical results.
	keys := make([]string, 0, len(answers))
	for k := range answers {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, id := range keys {
		value := answers[id]
		trigger := triggerOf(id)
		switch {
		case trigger == destinationTrigger:
			out.Destinations = appendMissing(out.Destinations, trimNonEmpty(value)...)
		case strings.HasSuffix(trigger, "-clarification"):
			applyRegionAnswer(&out, trigger, value)
		case trigger == experienceTrigger:
			applyExperienceAnswer(&out, value)
		case trigger == budgetTrigger:
			applyBudgetAnswer(&out, value)
		}
	}
	return out
}

// triggerOf strips the positional index off a question id, e.g.
// "europe-clarification-2" -> "europe-clarification".
func triggerOf(id string) string {
	idx := strings.LastIndex(id, "-")
	if idx < 0 {
		return id
	}
	suffix := id[idx+1:]
	if suffix == "" {
		return id
	}
	for _, r := range suffix {
		if r < '0' || r > '9' {
			return id
		}
	}
	return id[:idx]
}

func applyRegionAnswer(input *request_models.TravelInput, trigger string, value request_models.AnswerValue) {
	var question *regionQuestion
	for i := range regionQuestions {
		if regionQuestions[i].Trigger == trigger {
			question = &regionQuestions[i]
			break
		}
	}
	if question == nil {
		return
	}

	var concrete []string
	for _, selected := range value {
		for _, choice := range question.Choices {
			if strings.EqualFold(strings.TrimSpace(selected), choice.Label) {
				concrete = append(concrete, choice.Destinations...)
			}
		}
	}
	if len(concrete) == 0 {
		return
	}

	var rewritten []string
	for _, dest := range input.Destinations {
		if strings.Contains(strings.ToLower(dest), question.Term) {
			rewritten = appendMissing(rewritten, concrete...)
			continue
		}
		rewritten = append(rewritten, dest)
	}
	input.Destinations = rewritten
}

func applyExperienceAnswer(input *request_models.TravelInput, value request_models.AnswerValue) {
	var concrete []string
	for _, selected := range value {
		for _, choice := range experienceChoices {
			if strings.EqualFold(strings.TrimSpace(selected), choice.Label) {
				concrete = append(concrete, choice.Activities...)
			}
		}
	}
	if len(concrete) == 0 {
		return
	}

	kept := make([]string, 0, len(input.Experiences))
	for _, exp := range input.Experiences {
		if isVagueExperience(exp) {
			continue
		}
		kept = append(kept, exp)
	}
	input.Experiences = appendMissing(kept, concrete...)
}

func applyBudgetAnswer(input *request_models.TravelInput, value request_models.AnswerValue) {
	var bracket *budgetBracket
	for _, selected := range value {
		for i := range budgetBrackets {
			if strings.EqualFold(strings.TrimSpace(selected), budgetBrackets[i].Label) {
				bracket = &budgetBrackets[i]
				break
			}
		}
		if bracket != nil {
			break
		}
	}
	if bracket == nil {
		return
	}

	if input.Preferences == nil {
		input.Preferences = &request_models.Preferences{}
	}
	prefs := input.Preferences
	prefs.BudgetRange = &request_models.BudgetRange{
		Min:      bracket.Min,
		Max:      bracket.Max,
		Currency: "USD",
	}

	// Fill the remaining preference fields only when unset.
	if prefs.TravelStyle == "" {
		prefs.TravelStyle = "mid-range"
	}
	if len(prefs.Interests) == 0 {
		prefs.Interests = []string{"sightseeing", "local culture"}
	}
	if prefs.TravelDuration == "" {
		prefs.TravelDuration = "medium"
	}
	if prefs.GroupSize == 0 {
		prefs.GroupSize = 2
	}
}

func appendMissing(dst []string, values ...string) []string {
	for _, v := range values {
		exists := false
		for _, have := range dst {
			if strings.EqualFold(have, v) {
				exists = true
				break
			}
		}
		if !exists {
			dst = append(dst, v)
		}
	}
	return dst
}
