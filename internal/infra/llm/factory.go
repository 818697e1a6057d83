// Package llm adapts the configured model provider to the domain's
// single-method TextGenerator interface.
package llm

import (
	"fmt"
	"log/slog"

	"github.com/naufalrizky/healthscan/internal/domain/diagnosis"
	"github.com/naufalrizky/healthscan/internal/infra/config"
	"github.com/naufalrizky/healthscan/internal/infra/llm/gemini"
)

// NewTextGenerator builds the provider named in the configuration.
func NewTextGenerator(cfg config.LLMConfig, logger *slog.Logger) (diagnosis.TextGenerator, error) {
	switch cfg.Provider {
	case "gemini":
		client, err := gemini.NewClient(cfg.APIKey, cfg.BaseURL)
		if err != nil {
			return nil, err
		}
		return &geminiGenerator{
			client:      client,
			model:       cfg.Model,
			temperature: cfg.Temperature,
			logger:      logger.With("component", "llm.gemini"),
		}, nil
	case "openai":
		return newOpenAIGenerator(cfg, logger)
	default:
		return nil, fmt.Errorf("unsupported llm provider %q", cfg.Provider)
	}
}
