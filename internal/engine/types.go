package engine

import "github.com/anatolykoptev/go_network/internal/engine/network"

// --- Tool inputs ---

type StateInput struct {
	Search   string `json:"search,omitempty" jsonschema:"Free-text filter matched against name, company, and position"`
	Category string `json:"category,omitempty" jsonschema:"Category tag filter (e.g. Founders, Engineering, Investors)"`
}

type SetKeysInput struct {
	Tavily string `json:"tavily" jsonschema:"Tavily search API key"`
	Gemini string `json:"gemini" jsonschema:"Google Gemini API key"`
}

type IngestInput struct {
	CSV string `json:"csv" jsonschema:"Raw contents of the LinkedIn Connections.csv data export"`
}

type EnrichInput struct {
	ID string `json:"id" jsonschema:"Connection ID to enrich"`
}

type EnrichBatchInput struct{}

type QueryInput struct {
	Query string `json:"query" jsonschema:"Free-form question about the network"`
}

type ResetInput struct{}

// --- Tool outputs (JSON responses) ---

type StateOutput struct {
	Connections []network.Record `json:"connections"`
	Total       int              `json:"total"`
	Enriched    int              `json:"enriched"`
	Remaining   int              `json:"remaining"`
	HasKeys     bool             `json:"has_keys"`
	Categories  map[string]int   `json:"categories,omitempty"`
}

type SetKeysOutput struct {
	Saved bool `json:"saved"`
}

type IngestOutput struct {
	Imported int `json:"imported"`
}

type QueryOutput struct {
	Response string `json:"response"`
	Cached   bool   `json:"cached,omitempty"`
}

type ResetOutput struct {
	Reset bool `json:"reset"`
}
