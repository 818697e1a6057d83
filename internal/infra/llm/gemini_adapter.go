package llm

import (
	"context"
	"log/slog"

	"github.com/naufalrizky/healthscan/internal/infra/llm/gemini"
)

type geminiGenerator struct {
	client      *gemini.Client
	model       string
	temperature float32
	logger      *slog.Logger
}

func (g *geminiGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.GenerateContent(ctx, gemini.GenerateRequest{
		Model:       g.model,
		Prompt:      prompt,
		Temperature: g.temperature,
	})
	if err != nil {
		return "", err
	}
	if !resp.Usage.IsZero() {
		g.logger.Debug("token usage", "prompt", resp.Usage.PromptTokens, "completion", resp.Usage.CompletionTokens, "total", resp.Usage.TotalTokens)
	}
	return resp.Text, nil
}
