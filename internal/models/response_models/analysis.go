package response_models

import "voyago/internal/models/request_models"

// ValidationResult is always returned as data, never as an error.
type ValidationResult struct {
	IsValid  bool     `json:"is_valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings,omitempty"`
}

type IncompleteAnalysis struct {
	NeedsFollowUp   bool     `json:"needs_follow_up"`
	IncompleteAreas []string `json:"incomplete_areas"` // subset of "destinations", "experiences", "preferences", "budget"
	Suggestions     []string `json:"suggestions"`
}

// AnalyzeResponse bundles one full pass of the analysis wizard.
type AnalyzeResponse struct {
	SessionID    string                     `json:"session_id"`
	Input        request_models.TravelInput `json:"input"`
	Validation   ValidationResult           `json:"validation"`
	Analysis     IncompleteAnalysis         `json:"analysis"`
	Completeness int                        `json:"completeness_score"`
	Questions    []FollowUpQuestion         `json:"questions,omitempty"`
}
