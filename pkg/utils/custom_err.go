package utils

import (
	"errors"
	"fmt"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrInvalidInput    = errors.New("invalid input")
	ErrStoreError      = errors.New("session store error")
	ErrCatalogError    = errors.New("catalog error")
)

// ScoringError wraps an unexpected failure during recommendation scoring
// with input-shape diagnostics. Counts and presence flags only, never the
// raw input itself.
type ScoringError struct {
	Reason           string
	DestinationCount int
	ExperienceCount  int
	HasPreferences   bool
	HasHomeLocation  bool
}

func (e *ScoringError) Error() string {
	return fmt.Sprintf(
		"recommendation scoring failed: %s (destinations=%d experiences=%d preferences=%t home_location=%t)",
		e.Reason, e.DestinationCount, e.ExperienceCount, e.HasPreferences, e.HasHomeLocation,
	)
}
