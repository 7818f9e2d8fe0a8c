package engine

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/anatolykoptev/go-kit/llm"
	"github.com/anatolykoptev/go_network/internal/engine/network"
)

// geminiGenerator implements network.Generator against Gemini's
// OpenAI-compatible endpoint via go-kit/llm. The API key lives in the
// record set and can change at runtime, so clients are built per
// (key, model) and reused.
type geminiGenerator struct{}

var (
	llmMu      sync.Mutex
	llmClients = map[string]*llm.Client{}
)

func llmFor(key, model string, timeout time.Duration) *llm.Client {
	llmMu.Lock()
	defer llmMu.Unlock()
	ck := model + "|" + key
	if c, ok := llmClients[ck]; ok {
		return c
	}
	c := llm.NewClient(cfg.LLMAPIBase, key, model,
		llm.WithHTTPClient(&http.Client{Timeout: timeout}),
	)
	llmClients[ck] = c
	return c
}

// stripFences removes markdown code fences from LLM output.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// Summarize issues a short, low-temperature completion for record blurbs.
func (geminiGenerator) Summarize(ctx context.Context, prompt, key string) (string, error) {
	metrics.LLMCalls.Add(1)
	raw, err := llmFor(key, cfg.SummaryModel, cfg.SummaryTimeout).Complete(ctx, "", prompt,
		llm.WithChatTemperature(cfg.SummaryTemperature),
		llm.WithChatMaxTokens(cfg.SummaryMaxTokens),
	)
	if err != nil {
		metrics.LLMErrors.Add(1)
		return "", err
	}
	return stripFences(raw), nil
}

// Answer issues a long-budget completion for whole-network questions.
func (geminiGenerator) Answer(ctx context.Context, prompt, key string) (string, error) {
	metrics.LLMCalls.Add(1)
	raw, err := llmFor(key, cfg.ChatModel, cfg.ChatTimeout).Complete(ctx, "", prompt,
		llm.WithChatTemperature(cfg.ChatTemperature),
		llm.WithChatMaxTokens(cfg.ChatMaxTokens),
	)
	if err != nil {
		metrics.LLMErrors.Add(1)
		return "", err
	}
	return stripFences(raw), nil
}

var _ network.Generator = geminiGenerator{}
