package engine

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metrics tracks operational counters across the engine.
var metrics struct {
	SearchRequests atomic.Int64
	SearchErrors   atomic.Int64
	LLMCalls       atomic.Int64
	LLMErrors      atomic.Int64
	Ingests        atomic.Int64
	RecordsParsed  atomic.Int64
	EnrichSuccess  atomic.Int64
	EnrichFailures atomic.Int64
}

// IncrIngest records one successful CSV ingestion of n records.
func IncrIngest(n int) {
	metrics.Ingests.Add(1)
	metrics.RecordsParsed.Add(int64(n))
}

// IncrEnrich records the outcome of one batch or single enrichment call.
func IncrEnrich(succeeded, failed int) {
	metrics.EnrichSuccess.Add(int64(succeeded))
	metrics.EnrichFailures.Add(int64(failed))
}

// GetMetrics returns a snapshot of all metrics including cache stats.
func GetMetrics() map[string]int64 {
	hits, misses := CacheStats()
	return map[string]int64{
		"search_requests": metrics.SearchRequests.Load(),
		"search_errors":   metrics.SearchErrors.Load(),
		"llm_calls":       metrics.LLMCalls.Load(),
		"llm_errors":      metrics.LLMErrors.Load(),
		"ingests":         metrics.Ingests.Load(),
		"records_parsed":  metrics.RecordsParsed.Load(),
		"enrich_success":  metrics.EnrichSuccess.Load(),
		"enrich_failures": metrics.EnrichFailures.Load(),
		"cache_hits":      hits,
		"cache_misses":    misses,
	}
}

// FormatMetrics returns metrics as a simple text format for HTTP endpoint.
func FormatMetrics() string {
	m := GetMetrics()
	var sb strings.Builder
	keys := []string{
		"search_requests", "search_errors",
		"llm_calls", "llm_errors",
		"ingests", "records_parsed",
		"enrich_success", "enrich_failures",
		"cache_hits", "cache_misses",
	}
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s %d\n", k, m[k])
	}
	return sb.String()
}
