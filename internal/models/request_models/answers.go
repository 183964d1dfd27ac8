package request_models

import "encoding/json"

// AnswerValue accepts either a single string or an array of strings,
// so multiple-choice questions can carry multi-select answers.
type AnswerValue []string

func (a *AnswerValue) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*a = AnswerValue{single}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*a = AnswerValue(many)
	return nil
}

type AnalyzeRequest struct {
	UserID string      `json:"user_id,omitempty"`
	Input  TravelInput `json:"input" binding:"required"`
}

type AnswersRequest struct {
	SessionID string                 `json:"session_id" binding:"required"`
	Answers   map[string]AnswerValue `json:"answers" binding:"required"`
}

type RecommendRequest struct {
	SessionID string       `json:"session_id,omitempty"`
	Profile   UserProfile  `json:"profile"`
	Input     *TravelInput `json:"input,omitempty"`
}
