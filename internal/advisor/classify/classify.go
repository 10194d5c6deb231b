// Package classify turns free-text vehicle descriptions into ranked
// category tags. Two implementations share the Classifier contract: the
// offline rule-based Local and the provider-backed Gemini, selected by
// configuration.
package classify

import (
	"context"

	"github.com/vat-advisor-poc/server/internal/advisor/model"
	logx "github.com/vat-advisor-poc/server/pkg/logger"
)

// New selects the classifier implementation from configuration. Unknown
// modes fall back to the local classifier so the service always starts.
func New(ctx context.Context, apiKey, baseURL string, cfg model.ClassifierConfig) (model.Classifier, error) {
	switch model.ClassifierMode(cfg.Mode) {
	case model.ClassifierModeGemini:
		return NewGemini(ctx, apiKey, baseURL, cfg)
	case model.ClassifierModeLocal:
		return NewLocal(), nil
	default:
		logx.Warn().Str("mode", cfg.Mode).Msg("unknown classifier mode, using local")
		return NewLocal(), nil
	}
}
