package response_models

const (
	RecommendationTypeDestination = "destination"
	RecommendationTypeExperience  = "experience"
)

type RecommendationMetadata struct {
	Season     string `json:"season,omitempty"`
	Duration   int    `json:"duration,omitempty"`
	Difficulty string `json:"difficulty,omitempty"`
}

type Recommendation struct {
	Type        string                  `json:"type"` // "destination", "experience"
	Title       string                  `json:"title"`
	Description string                  `json:"description"`
	Reasoning   string                  `json:"reasoning"`
	Confidence  float64                 `json:"confidence"`
	RelatedTo   []string                `json:"related_to"`
	Metadata    *RecommendationMetadata `json:"metadata,omitempty"`
}
