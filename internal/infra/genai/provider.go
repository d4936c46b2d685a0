// Package genai provides image generation providers for the redesign studio.
// Providers classify their failures into the domain's generation error kinds
// so callers never inspect provider-specific error text.
package genai

import (
	"turriva/config"
	"turriva/internal/domain/service"

	"github.com/pkg/errors"
)

// NewImageGenerator selects a provider based on configuration.
// Supported provider types: "gemini", "openai".
func NewImageGenerator(cfg *config.Config) (service.ImageGenerator, error) {
	if cfg.Studio == nil {
		return nil, errors.New("studio configuration is missing")
	}

	switch cfg.Studio.Provider {
	case "gemini":
		return NewGeminiGenerator(cfg.Studio.APIKey, cfg.Studio.FreeModel), nil
	case "openai":
		return NewOpenAIGenerator(cfg.Studio.APIKey, cfg.Studio.FreeModel), nil
	default:
		return nil, errors.Errorf("unsupported studio provider: %s", cfg.Studio.Provider)
	}
}
