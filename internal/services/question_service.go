package services

import (
	"fmt"
	"strings"

	"voyago/internal/models/request_models"
	"voyago/internal/models/response_models"
)

type QuestionServiceInterface interface {
	Generate(input request_models.TravelInput) []response_models.FollowUpQuestion
}

type QuestionService struct{}

func NewQuestionService() QuestionServiceInterface {
	return &QuestionService{}
}

// Generate walks the fixed question tables in order, so identical input
// always yields the same questions with the same ids.
func (q *QuestionService) Generate(input request_models.TravelInput) []response_models.FollowUpQuestion {
	var questions []response_models.FollowUpQuestion

	if len(input.Destinations) == 0 {
		questions = append(questions, response_models.FollowUpQuestion{
			ID:       fmt.Sprintf("%s-%d", destinationTrigger, len(questions)),
			Question: "Where in the world would you like to go?",
			Type:     response_models.QuestionTypeText,
			Context:  "At least one destination is needed before anything can be recommended.",
		})
	}

	for _, rq := range regionQuestions {
		if !mentionsTerm(input.Destinations, rq.Term) {
			continue
		}
		questions = append(questions, response_models.FollowUpQuestion{
			ID:       fmt.Sprintf("%s-%d", rq.Trigger, len(questions)),
			Question: rq.Question,
			Type:     response_models.QuestionTypeMultipleChoice,
			Options:  regionChoiceLabels(rq.Choices),
			Context:  rq.Context,
		})
	}

	if len(input.Experiences) == 0 || anyVagueExperience(input.Experiences) {
		questions = append(questions, response_models.FollowUpQuestion{
			ID:       fmt.Sprintf("%s-%d", experienceTrigger, len(questions)),
			Question: "What kind of activities would make this trip memorable for you?",
			Type:     response_models.QuestionTypeMultipleChoice,
			Options:  experienceChoiceLabels(),
			Context:  "Concrete activities score far better against the catalog than broad wishes.",
		})
	}

	if budgetMissingOrZero(input) {
		questions = append(questions, response_models.FollowUpQuestion{
			ID:       fmt.Sprintf("%s-%d", budgetTrigger, len(questions)),
			Question: "Roughly how much are you planning to spend per person?",
			Type:     response_models.QuestionTypeMultipleChoice,
			Options:  budgetBracketLabels(),
			Context:  "A budget range filters out suggestions that would never fit your plans.",
		})
	}

	return questions
}

func mentionsTerm(values []string, term string) bool {
	for _, v := range values {
		if strings.Contains(strings.ToLower(v), term) {
			return true
		}
	}
	return false
}

func regionChoiceLabels(choices []regionChoice) []string {
	labels := make([]string, 0, len(choices))
	for _, c := range choices {
		labels = append(labels, c.Label)
	}
	return labels
}

func experienceChoiceLabels() []string {
	labels := make([]string, 0, len(experienceChoices))
	for _, c := range experienceChoices {
		labels = append(labels, c.Label)
	}
	return labels
}

func budgetBracketLabels() []string {
	labels := make([]string, 0, len(budgetBrackets))
	for _, b := range budgetBrackets {
		labels = append(labels, b.Label)
	}
	return labels
}
