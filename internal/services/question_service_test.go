package services

import (
	"reflect"
	"strings"
	"testing"

	"voyago/internal/models/request_models"
	"voyago/internal/models/response_models"
)

func TestGenerateEmptyInputAsksSomething(t *testing.T) {
	questions := NewQuestionService().Generate(request_models.TravelInput{})
	if len(questions) == 0 {
		t.Fatal("Generate() returned no questions for empty input")
	}
	assertWellFormed(t, questions)
}

func TestGenerateVagueRegionAndExperience(t *testing.T) {
	questions := NewQuestionService().Generate(request_models.TravelInput{
		Destinations: []string{"Europe"},
		Experiences:  []string{"fun"},
	})

	var hasRegion, hasExperience, hasBudget bool
	for _, q := range questions {
		switch {
		case strings.HasPrefix(q.ID, "europe-clarification"):
			hasRegion = true
			if len(q.Options) != 5 {
				t.Errorf("europe question has %d options, want 5", len(q.Options))
			}
		case strings.HasPrefix(q.ID, "experience-specification"):
			hasExperience = true
			if len(q.Options) != 8 {
				t.Errorf("experience question has %d options, want 8", len(q.Options))
			}
		case strings.HasPrefix(q.ID, "budget-specification"):
			hasBudget = true
			if len(q.Options) != 5 {
				t.Errorf("budget question has %d options, want 5", len(q.Options))
			}
		}
	}

	if !hasRegion {
		t.Error("Generate() missing a region-clarification question for Europe")
	}
	if !hasExperience {
		t.Error("Generate() missing an experience-specification question for a vague experience")
	}
	if !hasBudget {
		t.Error("Generate() missing a budget question when preferences are absent")
	}
	assertWellFormed(t, questions)
}

func TestGenerateEuropeAndAsiaAreDistinct(t *testing.T) {
	questions := NewQuestionService().Generate(request_models.TravelInput{
		Destinations: []string{"Europe", "Asia"},
		Experiences:  []string{"hiking the Inca Trail"},
	})

	var europe, asia *response_models.FollowUpQuestion
	for i := range questions {
		if strings.HasPrefix(questions[i].ID, "europe-clarification") {
			europe = &questions[i]
		}
		if strings.HasPrefix(questions[i].ID, "asia-clarification") {
			asia = &questions[i]
		}
	}

	if europe == nil || asia == nil {
		t.Fatalf("Generate() = %d questions, want both europe and asia clarifications", len(questions))
	}
	if europe.Question == asia.Question {
		t.Error("europe and asia questions share the same body")
	}
	if reflect.DeepEqual(europe.Options, asia.Options) {
		t.Error("europe and asia questions share the same options")
	}
}

func TestGenerateSkipsCompleteAreas(t *testing.T) {
	input := request_models.TravelInput{
		Destinations: []string{"Kyoto"},
		Experiences:  []string{"temple visits at dawn"},
		Preferences: &request_models.Preferences{
			BudgetRange: &request_models.BudgetRange{Min: 1500, Max: 3500, Currency: "USD"},
		},
	}
	if questions := NewQuestionService().Generate(input); len(questions) != 0 {
		t.Errorf("Generate() = %d questions for a specific input, want 0", len(questions))
	}
}

func TestGenerateDeterministic(t *testing.T) {
	svc := NewQuestionService()
	input := request_models.TravelInput{
		Destinations: []string{"Europe"},
		Experiences:  []string{"something"},
	}
	first := svc.Generate(input)
	second := svc.Generate(input)
	if !reflect.DeepEqual(first, second) {
		t.Error("Generate() is not deterministic for identical input")
	}
}

func assertWellFormed(t *testing.T, questions []response_models.FollowUpQuestion) {
	t.Helper()
	for _, q := range questions {
		if q.ID == "" {
			t.Error("question with empty id")
		}
		if len(q.Question) <= 10 {
			t.Errorf("question %q body too short: %q", q.ID, q.Question)
		}
		if !strings.HasSuffix(q.Question, "?") {
			t.Errorf("question %q does not end with '?': %q", q.ID, q.Question)
		}
		if q.Context == "" {
			t.Errorf("question %q has empty context", q.ID)
		}
		if q.Type != response_models.QuestionTypeText && len(q.Options) == 0 {
			t.Errorf("question %q of type %q has no options", q.ID, q.Type)
		}
		for _, opt := range q.Options {
			if opt == "" {
				t.Errorf("question %q has an empty option", q.ID)
			}
		}
	}
}
