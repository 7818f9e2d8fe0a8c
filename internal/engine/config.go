// Package engine wires the network core to its external collaborators:
// the Tavily search API, the Gemini generation API, the sqlite store, and
// the query-answer cache.
package engine

import (
	"net/http"
	"time"

	"github.com/anatolykoptev/go_network/internal/engine/network"
)

// Config holds all engine configuration, injected from main.
type Config struct {
	DataDir string

	TavilyURL        string
	SearchMaxResults int
	SearchTimeout    time.Duration

	LLMAPIBase         string
	SummaryModel       string
	SummaryTemperature float64
	SummaryMaxTokens   int
	SummaryTimeout     time.Duration
	ChatModel          string
	ChatTemperature    float64
	ChatMaxTokens      int
	ChatTimeout        time.Duration

	BatchSize       int
	ContextLimit    int
	StepPause       time.Duration
	SummaryInterval time.Duration

	CacheMaxEntries      int
	CacheCleanupInterval time.Duration

	HTTPClient *http.Client
}

var cfg Config

// Cfg exposes the engine configuration for sub-packages.
// Always points to the current cfg value.
var Cfg = &cfg

// Init initializes the engine with the given configuration.
func Init(c Config) {
	cfg = c
	Cfg = &cfg
}

var (
	store    network.Store
	enricher *network.Enricher
	netQuery *network.QueryEngine
)

// InitEngines builds the enrichment and query engines around st.
// Call after Init.
func InitEngines(st network.Store) {
	store = st
	enricher = network.NewEnricher(tavilySearcher{}, geminiGenerator{}, st, network.EnrichConfig{
		BatchSize:       cfg.BatchSize,
		ContextLimit:    cfg.ContextLimit,
		StepPause:       cfg.StepPause,
		SummaryInterval: cfg.SummaryInterval,
	})
	netQuery = network.NewQueryEngine(geminiGenerator{}, st)
}

// Store returns the persistence collaborator.
func Store() network.Store { return store }

// Enricher returns the enrichment engine.
func Enricher() *network.Enricher { return enricher }

// NetworkQuery returns the whole-network query engine.
func NetworkQuery() *network.QueryEngine { return netQuery }
