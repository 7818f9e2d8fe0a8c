package netserver

import (
	"context"

	"github.com/anatolykoptev/go_network/internal/engine"
	"github.com/anatolykoptev/go_network/internal/engine/network"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerEnrichOne(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "network_enrich",
		Description: "Enrich a single connection by ID: web-search the person, summarize the results into a 2-3 sentence professional blurb, and persist it with an enrichment timestamp. Requires both API keys.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input engine.EnrichInput) (*mcp.CallToolResult, *network.Record, error) {
		if input.ID == "" {
			return nil, nil, network.MissingInput("id is required")
		}
		rec, err := engine.Enricher().EnrichOne(ctx, input.ID)
		if err != nil {
			engine.IncrEnrich(0, 1)
			return nil, nil, err
		}
		engine.IncrEnrich(1, 0)
		return nil, rec, nil
	})
}

func registerEnrichBatch(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "network_enrich_batch",
		Description: "Enrich the next batch of up to 10 un-enriched connections, rate-limited to stay under the generation provider's requests-per-minute ceiling. Per-connection failures are reported and skipped, not fatal. Call repeatedly until remaining reaches zero.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, _ engine.EnrichBatchInput) (*mcp.CallToolResult, *network.BatchResult, error) {
		result, err := engine.Enricher().EnrichBatch(ctx)
		if err != nil {
			return nil, nil, err
		}
		engine.IncrEnrich(result.Enriched, len(result.Errors))
		return nil, result, nil
	})
}
