package models

import "strings"

// Confidence is the model's self-reported confidence, normalized to one of
// four values.
type Confidence string

const (
	ConfidenceHigh    Confidence = "High"
	ConfidenceMedium  Confidence = "Medium"
	ConfidenceLow     Confidence = "Low"
	ConfidenceUnknown Confidence = "Unknown"
)

// NormalizeConfidence maps free-text confidence labels onto the enum.
// Anything unrecognized becomes Unknown.
func NormalizeConfidence(s string) Confidence {
	switch strings.ToLower(strings.TrimSpace(strings.Trim(strings.TrimSpace(s), ".,!"))) {
	case "high":
		return ConfidenceHigh
	case "medium", "moderate":
		return ConfidenceMedium
	case "low":
		return ConfidenceLow
	}
	return ConfidenceUnknown
}

// ParsedAnswer is the structured result of one question against the index.
type ParsedAnswer struct {
	Answer     string
	Confidence Confidence
	Citations  string
}
