package request_models

// TravelInput is the free-form travel request collected from the user.
// Normalization and answer integration always produce a fresh value,
// the original is never edited in place.
type TravelInput struct {
	Destinations []string     `json:"destinations"`
	Experiences  []string     `json:"experiences"`
	Preferences  *Preferences `json:"preferences,omitempty"`
	Timeframe    *Timeframe   `json:"timeframe,omitempty"`
}

type BudgetRange struct {
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Currency string  `json:"currency"`
}

type Preferences struct {
	BudgetRange    *BudgetRange `json:"budget_range,omitempty"`
	TravelStyle    string       `json:"travel_style,omitempty"` // "budget", "mid-range", "luxury", "adventure"
	Interests      []string     `json:"interests,omitempty"`
	TravelDuration string       `json:"travel_duration,omitempty"` // "short", "medium", "long"
	GroupSize      int          `json:"group_size,omitempty"`
}

type Timeframe struct {
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
	Flexibility string `json:"flexibility,omitempty"` // "fixed", "flexible", "very-flexible"
}

type UserProfile struct {
	ID           string       `json:"id,omitempty"`
	Name         string       `json:"name,omitempty"`
	HomeLocation string       `json:"home_location,omitempty"`
	Preferences  *Preferences `json:"preferences,omitempty"`
}

// Clone returns a deep copy so callers can rewrite the copy freely.
func (t TravelInput) Clone() TravelInput {
	out := TravelInput{
		Destinations: append([]string(nil), t.Destinations...),
		Experiences:  append([]string(nil), t.Experiences...),
	}
	if t.Preferences != nil {
		prefs := *t.Preferences
		prefs.Interests = append([]string(nil), t.Preferences.Interests...)
		if t.Preferences.BudgetRange != nil {
			br := *t.Preferences.BudgetRange
			prefs.BudgetRange = &br
		}
		out.Preferences = &prefs
	}
	if t.Timeframe != nil {
		tf := *t.Timeframe
		out.Timeframe = &tf
	}
	return out
}
