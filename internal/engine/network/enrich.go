package network

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/anatolykoptev/go-kit/strutil"
	"golang.org/x/time/rate"
)

const (
	// fallbackBlurb replaces unparseable or empty generation output.
	fallbackBlurb = "Professional on LinkedIn."
	// noResultsContext stands in when the search returns nothing.
	noResultsContext = "No search results found."

	enrichedAtLayout = "2006-01-02T15:04:05Z"
)

const blurbPrompt = `Based on these web search results about "%s", write a concise 2-3 sentence professional summary. Focus on their current role, company, and notable achievements. If the search results don't seem relevant to this specific person, just write "Professional on LinkedIn" and nothing else. Be factual, not flowery.

Search results:
%s

Write only the summary, nothing else:`

// EnrichConfig tunes the enrichment engine. Zero values take defaults.
type EnrichConfig struct {
	BatchSize       int           // records per batch call (default 10)
	ContextLimit    int           // max runes of search context fed to the generator (default 3000)
	StepPause       time.Duration // buffer between the search and generation calls (default 100ms)
	SummaryInterval time.Duration // spacing between summarization calls; 4s keeps a polling loop under 15 RPM (default 4s)
}

func (c *EnrichConfig) defaults() {
	if c.BatchSize <= 0 {
		c.BatchSize = 10
	}
	if c.ContextLimit <= 0 {
		c.ContextLimit = 3000
	}
	if c.StepPause <= 0 {
		c.StepPause = 100 * time.Millisecond
	}
	if c.SummaryInterval <= 0 {
		c.SummaryInterval = 4 * time.Second
	}
}

// Enricher turns un-enriched records into enriched ones: search the person,
// summarize the hits, stamp the record, persist the set.
type Enricher struct {
	search  Searcher
	gen     Generator
	store   Store
	limiter *rate.Limiter
	cfg     EnrichConfig
}

// NewEnricher wires the enrichment engine to its collaborators.
func NewEnricher(search Searcher, gen Generator, store Store, cfg EnrichConfig) *Enricher {
	cfg.defaults()
	return &Enricher{
		search:  search,
		gen:     gen,
		store:   store,
		limiter: rate.NewLimiter(rate.Every(cfg.SummaryInterval), 1),
		cfg:     cfg,
	}
}

// BatchResult reports one bounded batch call.
type BatchResult struct {
	Enriched         int      `json:"enriched"`
	Remaining        int      `json:"remaining"`
	EstimatedMinutes int      `json:"estimated_minutes"`
	Errors           []string `json:"errors,omitempty"`
}

// EnrichOne enriches a single record by ID and persists the set.
// Upstream failures surface directly; nothing is retried.
func (e *Enricher) EnrichOne(ctx context.Context, id string) (*Record, error) {
	set, err := e.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	if !set.Credentials.Complete() {
		return nil, missingConfig("API keys not configured")
	}
	rec := set.Find(id)
	if rec == nil {
		return nil, notFound(fmt.Sprintf("connection %s not found", id))
	}

	if err := e.enrichRecord(ctx, set, rec); err != nil {
		return nil, err
	}
	if err := e.store.Save(ctx, set); err != nil {
		return nil, err
	}

	out := *rec
	return &out, nil
}

// EnrichBatch advances the enrichment frontier by at most BatchSize records,
// in set order, isolating per-record failures. A failed record stays
// un-enriched and is re-selected by the next call. The caller polls this
// until Remaining hits zero.
func (e *Enricher) EnrichBatch(ctx context.Context) (*BatchResult, error) {
	set, err := e.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	if !set.Credentials.Complete() {
		return nil, missingConfig("API keys not configured")
	}

	candidates := set.Unenriched(e.cfg.BatchSize)
	if len(candidates) == 0 {
		return &BatchResult{}, nil
	}

	result := &BatchResult{}
	for _, rec := range candidates {
		// Paces record starts so summarization calls stay under the
		// generation provider's RPM ceiling across repeated batch calls.
		if err := e.limiter.Wait(ctx); err != nil {
			break
		}
		if err := e.enrichRecord(ctx, set, rec); err != nil {
			slog.Warn("enrich: record failed",
				slog.String("name", rec.FullName()),
				slog.Any("error", err),
			)
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", rec.FullName(), err))
			continue
		}
		result.Enriched++
	}

	if err := e.store.Save(ctx, set); err != nil {
		return nil, err
	}

	result.Remaining = set.CountUnenriched()
	result.EstimatedMinutes = estimateMinutes(result.Remaining, e.cfg.SummaryInterval)
	slog.Info("enrich: batch done",
		slog.Int("enriched", result.Enriched),
		slog.Int("remaining", result.Remaining),
		slog.Int("errors", len(result.Errors)),
	)
	return result, nil
}

// enrichRecord runs the search → summarize sequence and mutates rec in
// place. Blurb and EnrichedAt are set together or not at all.
func (e *Enricher) enrichRecord(ctx context.Context, set *RecordSet, rec *Record) error {
	query := SearchQuery(rec)

	results, err := e.search.Search(ctx, query, set.Credentials.TavilyKey)
	if err != nil {
		return upstream("search failed", err)
	}

	time.Sleep(e.cfg.StepPause)

	prompt := fmt.Sprintf(blurbPrompt, rec.FullName(), e.buildContext(results))
	blurb, err := e.gen.Summarize(ctx, prompt, set.Credentials.GeminiKey)
	if err != nil {
		return upstream("summary generation failed", err)
	}
	blurb = strings.TrimSpace(blurb)
	if blurb == "" {
		blurb = fallbackBlurb
	}

	rec.Blurb = blurb
	rec.EnrichedAt = time.Now().UTC().Format(enrichedAtLayout)
	return nil
}

// buildContext concatenates result titles and snippets, capped at the
// configured rune limit.
func (e *Enricher) buildContext(results []SearchResult) string {
	lines := make([]string, 0, len(results))
	for _, r := range results {
		lines = append(lines, fmt.Sprintf("- %s: %s", r.Title, r.Content))
	}
	context := strutil.TruncateWith(strings.Join(lines, "\n"), e.cfg.ContextLimit, "")
	if strings.TrimSpace(context) == "" {
		return noResultsContext
	}
	return context
}

func estimateMinutes(remaining int, interval time.Duration) int {
	if remaining <= 0 {
		return 0
	}
	secs := int(interval/time.Second) * remaining
	return (secs + 59) / 60
}
