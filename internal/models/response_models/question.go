package response_models

const (
	QuestionTypeText           = "text"
	QuestionTypeMultipleChoice = "multiple-choice"
	QuestionTypeRange          = "range"
)

type FollowUpQuestion struct {
	ID       string   `json:"id"`
	Question string   `json:"question"`
	Type     string   `json:"type"` // "text", "multiple-choice", "range"
	Options  []string `json:"options,omitempty"`
	Context  string   `json:"context"`
}
