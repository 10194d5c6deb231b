package model

// ================ Config ================

// ClassifierMode selects the classifier implementation.
type ClassifierMode string

const (
	ClassifierModeLocal  ClassifierMode = "local"
	ClassifierModeGemini ClassifierMode = "gemini"
)

type ClassifierConfig struct {
	Mode        string  `envconfig:"CLASSIFIER_MODE" default:"local"`
	Model       string  `envconfig:"CLASSIFIER_MODEL" default:"gemini-2.5-flash-lite"`
	MaxTokens   int     `envconfig:"CLASSIFIER_MAX_TOKENS" default:"512"`
	Temperature float32 `envconfig:"CLASSIFIER_TEMPERATURE" default:"0.1"`
}

type SessionConfig struct {
	TTL string `envconfig:"SESSION_TTL" default:"30m"`
}
