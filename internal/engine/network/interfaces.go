package network

import "context"

// SearchResult is one ranked hit from the search collaborator.
type SearchResult struct {
	Title   string  `json:"title"`
	Content string  `json:"content"`
	URL     string  `json:"url,omitempty"`
	Score   float64 `json:"score,omitempty"`
}

// Searcher is the external web-search collaborator.
type Searcher interface {
	// Search runs a ranked web search with the given API key.
	// Fails on transport errors and non-2xx responses.
	Search(ctx context.Context, query, key string) ([]SearchResult, error)
}

// Generator is the external text-generation collaborator. Summarize is
// budgeted for brevity (short answers, low temperature); Answer for
// elaboration (long analytical output, longer timeout).
type Generator interface {
	Summarize(ctx context.Context, prompt, key string) (string, error)
	Answer(ctx context.Context, prompt, key string) (string, error)
}

// Store is the persistence collaborator for the record set.
// Load on empty storage returns a default empty set, never an error.
type Store interface {
	Load(ctx context.Context) (*RecordSet, error)
	Save(ctx context.Context, set *RecordSet) error
	Reset(ctx context.Context) error
}
