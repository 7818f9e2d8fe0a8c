// go_network — LinkedIn network analyzer MCP server.
//
// Imports a LinkedIn Connections.csv export, categorizes every connection by
// job title, enriches connections with web-searched blurbs (Tavily + Gemini),
// and answers free-form questions about the whole network.
// Runs as HTTP MCP server or stdio transport.
package main

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/anatolykoptev/go-kit/env"
	"github.com/anatolykoptev/go-mcpserver"
	"github.com/anatolykoptev/go_network/internal/engine"
	"github.com/anatolykoptev/go_network/internal/engine/network"
	"github.com/anatolykoptev/go_network/internal/netserver"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

var (
	version = "dev"
	mcpPort = env.Str("MCP_PORT", "8893")
)

func main() {
	initEngine()

	slog.Info("starting go_network",
		slog.String("port", mcpPort),
	)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "go_network",
		Version: version,
	}, nil)

	netserver.RegisterTools(server)
	slog.Info("tools registered", slog.Int("count", 7))

	if err := mcpserver.Run(server, mcpserver.Config{
		Name:         "go_network",
		Version:      version,
		Port:         mcpPort,
		WriteTimeout: 600 * time.Second,
		Metrics:      engine.FormatMetrics,
	}); err != nil {
		slog.Error("server failed", slog.Any("error", err))
	}
}

func initEngine() {
	c := engine.Config{
		DataDir: env.Str("DATA_DIR", network.DefaultDataDir()),

		TavilyURL:        env.Str("TAVILY_URL", "https://api.tavily.com"),
		SearchMaxResults: env.Int("SEARCH_MAX_RESULTS", 5),
		SearchTimeout:    env.Duration("SEARCH_TIMEOUT", 30*time.Second),

		LLMAPIBase:         env.Str("LLM_API_BASE", "https://generativelanguage.googleapis.com/v1beta/openai"),
		SummaryModel:       env.Str("SUMMARY_MODEL", "gemini-2.5-flash-lite"),
		SummaryTemperature: env.Float("SUMMARY_TEMPERATURE", 0.3),
		SummaryMaxTokens:   env.Int("SUMMARY_MAX_TOKENS", 150),
		SummaryTimeout:     env.Duration("SUMMARY_TIMEOUT", 30*time.Second),
		ChatModel:          env.Str("CHAT_MODEL", "gemini-2.5-flash"),
		ChatTemperature:    env.Float("CHAT_TEMPERATURE", 0.7),
		ChatMaxTokens:      env.Int("CHAT_MAX_TOKENS", 2000),
		ChatTimeout:        env.Duration("CHAT_TIMEOUT", 60*time.Second),

		BatchSize:       env.Int("ENRICH_BATCH_SIZE", 10),
		ContextLimit:    env.Int("ENRICH_CONTEXT_CHARS", 3000),
		StepPause:       env.Duration("ENRICH_STEP_PAUSE", 100*time.Millisecond),
		SummaryInterval: env.Duration("ENRICH_SUMMARY_INTERVAL", 4*time.Second),

		CacheMaxEntries:      env.Int("CACHE_MAX_ENTRIES", 1000),
		CacheCleanupInterval: env.Duration("CACHE_CLEANUP_INTERVAL", 300*time.Second),

		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        20,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     60 * time.Second,
			},
		},
	}
	engine.Init(c)

	store, err := network.OpenStore(c.DataDir)
	if err != nil {
		slog.Error("store init failed", slog.Any("error", err))
		os.Exit(1)
	}
	engine.InitEngines(store)
	slog.Info("store initialized", slog.String("dir", c.DataDir))

	cacheTTL := env.Duration("CACHE_TTL", 15*time.Minute)
	engine.InitCache(env.Str("REDIS_URL", ""), cacheTTL, c.CacheMaxEntries, c.CacheCleanupInterval)
}
