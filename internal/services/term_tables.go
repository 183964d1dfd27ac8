package services

import "strings"

// The vague-term lists and keyword buckets live here as plain data so they
// can be extended and tested without touching algorithm code.

var vagueDestinationTerms = []string{
	"europe", "asia", "africa", "america", "world", "everywhere",
}

// vagueExperienceCutoff: an experience string only counts as vague when it is
// shorter than this. Longer strings containing a listed word are descriptive
// enough to pass.
const vagueExperienceCutoff = 20

var vagueExperienceTerms = []string{
	"adventure", "fun", "experience", "activity", "something",
}

func isVagueDestination(dest string) bool {
	lower := strings.ToLower(strings.TrimSpace(dest))
	for _, term := range vagueDestinationTerms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}

func isVagueExperience(exp string) bool {
	trimmed := strings.TrimSpace(exp)
	if len(trimmed) >= vagueExperienceCutoff {
		return false
	}
	lower := strings.ToLower(trimmed)
	for _, term := range vagueExperienceTerms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}

// regionChoice maps one multiple-choice label to the concrete destinations
// the integrator substitutes for the vague region term.
type regionChoice struct {
	Label        string
	Destinations []string
}

type regionQuestion struct {
	Term     string // vague destination term that triggers it
	Trigger  string // question id stem, also recognized by the integrator
	Question string
	Context  string
	Choices  []regionChoice
}

var regionQuestions = []regionQuestion{
	{
		Term:     "europe",
		Trigger:  "europe-clarification",
		Question: "You mentioned Europe - which region would you like to explore?",
		Context:  "Narrowing the region lets us suggest concrete destinations instead of a whole continent.",
		Choices: []regionChoice{
			{Label: "Western Europe (France, Germany, Netherlands)", Destinations: []string{"France", "Germany", "Netherlands"}},
			{Label: "Southern Europe (Italy, Spain, Greece)", Destinations: []string{"Italy", "Spain", "Greece"}},
			{Label: "Northern Europe (Norway, Sweden, Iceland)", Destinations: []string{"Norway", "Sweden", "Iceland"}},
			{Label: "Eastern Europe (Czech Republic, Poland, Hungary)", Destinations: []string{"Czech Republic", "Poland", "Hungary"}},
			{Label: "British Isles (England, Scotland, Ireland)", Destinations: []string{"England", "Scotland", "Ireland"}},
		},
	},
	{
		Term:     "asia",
		Trigger:  "asia-clarification",
		Question: "You mentioned Asia - which part of it appeals to you most?",
		Context:  "Asia spans dozens of countries, so a sub-region keeps the suggestions relevant.",
		Choices: []regionChoice{
			{Label: "East Asia (Japan, South Korea, China)", Destinations: []string{"Japan", "South Korea", "China"}},
			{Label: "Southeast Asia (Thailand, Vietnam, Indonesia)", Destinations: []string{"Thailand", "Vietnam", "Indonesia"}},
			{Label: "South Asia (India, Nepal, Sri Lanka)", Destinations: []string{"India", "Nepal", "Sri Lanka"}},
			{Label: "Central Asia (Uzbekistan, Kazakhstan, Kyrgyzstan)", Destinations: []string{"Uzbekistan", "Kazakhstan", "Kyrgyzstan"}},
			{Label: "Middle East (Jordan, Israel, United Arab Emirates)", Destinations: []string{"Jordan", "Israel", "United Arab Emirates"}},
		},
	},
}

// experienceChoice maps one activity-category label to the concrete
// activities the integrator appends.
type experienceChoice struct {
	Label      string
	Activities []string
}

const (
	destinationTrigger = "destination-clarification"
	experienceTrigger  = "experience-specification"
)

var experienceChoices = []experienceChoice{
	{Label: "Outdoor adventures (hiking, rafting, ziplining)", Activities: []string{"hiking", "white-water rafting", "ziplining"}},
	{Label: "Cultural immersion (museums, historical sites, festivals)", Activities: []string{"museum tours", "historical site visits", "local festivals"}},
	{Label: "Food and drink (cooking classes, food tours, wine tasting)", Activities: []string{"cooking classes", "street food tours", "wine tasting"}},
	{Label: "Wildlife and nature (safaris, birdwatching, parks)", Activities: []string{"wildlife safaris", "birdwatching", "national park visits"}},
	{Label: "Water activities (snorkeling, diving, kayaking)", Activities: []string{"snorkeling", "scuba diving", "sea kayaking"}},
	{Label: "Wellness and relaxation (spas, yoga, hot springs)", Activities: []string{"spa days", "yoga retreats", "hot spring soaks"}},
	{Label: "Nightlife and entertainment (live music, markets, shows)", Activities: []string{"live music venues", "night markets", "evening shows"}},
	{Label: "Winter sports (skiing, snowboarding, snowshoeing)", Activities: []string{"skiing", "snowboarding", "snowshoeing"}},
}

const budgetTrigger = "budget-specification"

type budgetBracket struct {
	Label string
	Min   float64
	Max   float64
}

var budgetBrackets = []budgetBracket{
	{Label: "$500 - $1,500 (Budget-friendly)", Min: 500, Max: 1500},
	{Label: "$1,500 - $3,500 (Mid-range comfort)", Min: 1500, Max: 3500},
	{Label: "$3,500 - $7,000 (Premium experience)", Min: 3500, Max: 7000},
	{Label: "$7,000 - $15,000 (Luxury travel)", Min: 7000, Max: 15000},
	{Label: "$15,000+ (Ultra-luxury)", Min: 15000, Max: 50000},
}
