package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/anatolykoptev/go_network/internal/engine/network"
)

// tavilySearcher implements network.Searcher against the Tavily search API.
type tavilySearcher struct{}

type tavilyRequest struct {
	APIKey            string `json:"api_key"`
	Query             string `json:"query"`
	SearchDepth       string `json:"search_depth"`
	MaxResults        int    `json:"max_results"`
	IncludeAnswer     bool   `json:"include_answer"`
	IncludeRawContent bool   `json:"include_raw_content"`
}

type tavilyResponse struct {
	Results []network.SearchResult `json:"results"`
}

// Search posts the query to Tavily: basic depth, bounded result count, no
// answer synthesis, no raw page content. Snippet-level results are all the
// summarizer needs.
func (tavilySearcher) Search(ctx context.Context, query, key string) ([]network.SearchResult, error) {
	metrics.SearchRequests.Add(1)

	body, err := json.Marshal(tavilyRequest{
		APIKey:            key,
		Query:             query,
		SearchDepth:       "basic",
		MaxResults:        cfg.SearchMaxResults,
		IncludeAnswer:     false,
		IncludeRawContent: false,
	})
	if err != nil {
		return nil, err
	}

	httpCtx, cancel := context.WithTimeout(ctx, cfg.SearchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(httpCtx, http.MethodPost, cfg.TavilyURL+"/search", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := cfg.HTTPClient.Do(req)
	if err != nil {
		metrics.SearchErrors.Add(1)
		return nil, fmt.Errorf("tavily: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		metrics.SearchErrors.Add(1)
		return nil, fmt.Errorf("tavily: status %d", resp.StatusCode)
	}

	var data tavilyResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		metrics.SearchErrors.Add(1)
		return nil, fmt.Errorf("tavily: decode: %w", err)
	}
	return data.Results, nil
}

// ensure the collaborator contract holds at compile time
var _ network.Searcher = tavilySearcher{}
