package services

import (
	"reflect"
	"testing"

	"voyago/internal/models/request_models"
)

func TestIntegrateBudgetBracket(t *testing.T) {
	svc := NewIntegrationService()
	original := request_models.TravelInput{
		Destinations: []string{"Peru"},
		Experiences:  []string{"hiking"},
	}

	got := svc.Integrate(original, map[string]request_models.AnswerValue{
		"budget-specification": {"$1,500 - $3,500 (Mid-range comfort)"},
	})

	br := got.Preferences.BudgetRange
	if br == nil {
		t.Fatal("Integrate() did not set a budget range")
	}
	if br.Min != 1500 || br.Max != 3500 || br.Currency != "USD" {
		t.Errorf("budget range = %+v, want {1500 3500 USD}", *br)
	}

	// Fallback preference fields get filled.
	if got.Preferences.TravelStyle == "" || got.Preferences.TravelDuration == "" || got.Preferences.GroupSize < 1 {
		t.Errorf("Integrate() left preference fallbacks unset: %+v", *got.Preferences)
	}

	// Already-set values survive.
	withStyle := original.Clone()
	withStyle.Preferences = &request_models.Preferences{TravelStyle: "luxury"}
	got = svc.Integrate(withStyle, map[string]request_models.AnswerValue{
		"budget-specification": {"$7,000 - $15,000 (Luxury travel)"},
	})
	if got.Preferences.TravelStyle != "luxury" {
		t.Errorf("Integrate() overwrote travel style: got %q", got.Preferences.TravelStyle)
	}
}

func TestIntegrateRegionClarification(t *testing.T) {
	svc := NewIntegrationService()
	original := request_models.TravelInput{
		Destinations: []string{"europe", "Japan"},
		Experiences:  []string{"temple visits at dawn"},
	}

	got := svc.Integrate(original, map[string]request_models.AnswerValue{
		"europe-clarification-0": {"Western Europe (France, Germany, Netherlands)"},
	})

	want := []string{"France", "Germany", "Netherlands", "Japan"}
	if !reflect.DeepEqual(got.Destinations, want) {
		t.Errorf("Integrate() destinations = %v, want %v", got.Destinations, want)
	}

	// Multi-select flattens.
	got = svc.Integrate(original, map[string]request_models.AnswerValue{
		"europe-clarification-0": {
			"Western Europe (France, Germany, Netherlands)",
			"Southern Europe (Italy, Spain, Greece)",
		},
	})
	if len(got.Destinations) != 7 { // 6 concrete + Japan
		t.Errorf("Integrate() multi-select destinations = %v, want 7 entries", got.Destinations)
	}

	// The original is never mutated.
	if original.Destinations[0] != "europe" {
		t.Error("Integrate() mutated the original input")
	}
}

func TestIntegrateExperienceSpecification(t *testing.T) {
	svc := NewIntegrationService()
	original := request_models.TravelInput{
		Destinations: []string{"Peru"},
		Experiences:  []string{"fun", "sea kayaking around the fjords"},
	}

	got := svc.Integrate(original, map[string]request_models.AnswerValue{
		"experience-specification-1": {"Outdoor adventures (hiking, rafting, ziplining)"},
	})

	want := []string{"sea kayaking around the fjords", "hiking", "white-water rafting", "ziplining"}
	if !reflect.DeepEqual(got.Experiences, want) {
		t.Errorf("Integrate() experiences = %v, want %v", got.Experiences, want)
	}
}

func TestIntegrateIgnoresUnknownKeys(t *testing.T) {
	svc := NewIntegrationService()
	original := request_models.TravelInput{
		Destinations: []string{"Peru"},
		Experiences:  []string{"hiking"},
	}

	got := svc.Integrate(original, map[string]request_models.AnswerValue{
		"favorite-color":           {"blue"},
		"mystery-clarification-9":  {"Atlantis"},
		"experience-specification": {"not a listed option"},
	})

	if !reflect.DeepEqual(got, original) {
		t.Errorf("Integrate() changed input on unrecognized answers: %+v", got)
	}
}

func TestIntegrateThenReanalyzeKeepsValidity(t *testing.T) {
	analyzer := NewAnalyzerService()
	svc := NewIntegrationService()

	original := request_models.TravelInput{
		Destinations: []string{"europe"},
		Experiences:  []string{"hiking the Inca Trail"},
	}
	if !analyzer.Validate(original).IsValid {
		t.Fatal("precondition: original should be valid")
	}

	got := svc.Integrate(original, map[string]request_models.AnswerValue{
		"europe-clarification-0": {"Northern Europe (Norway, Sweden, Iceland)"},
	})
	if !analyzer.Validate(got).IsValid {
		t.Error("Integrate() regressed validity of unrelated fields")
	}
}
