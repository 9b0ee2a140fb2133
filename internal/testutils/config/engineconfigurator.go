package config_test

import "github.com/pitchside/newsletter-service/internal/review"

// TestEngineConfigurator serves unit tests that don't care about the api
// version or the review modal sizing. The zero overrides fall back to the
// modal floor values.
type TestEngineConfigurator struct{}

func (cfg TestEngineConfigurator) GetVersion() (string, error) {
	return "", nil
}

func (cfg TestEngineConfigurator) GetReviewModalOverrides() review.SizingOverrides {
	return review.SizingOverrides{}
}

func NewTestVersionConfigurator() TestEngineConfigurator {
	return TestEngineConfigurator{}
}
