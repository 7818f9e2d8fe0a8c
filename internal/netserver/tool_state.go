package netserver

import (
	"context"
	"strings"

	"github.com/anatolykoptev/go_network/internal/engine"
	"github.com/anatolykoptev/go_network/internal/engine/network"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerState(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "network_state",
		Description: "Current state of the imported LinkedIn network: connections (optionally filtered by free-text search or category), per-category counts, enrichment progress, and whether API keys are configured.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input engine.StateInput) (*mcp.CallToolResult, engine.StateOutput, error) {
		set, err := engine.Store().Load(ctx)
		if err != nil {
			return nil, engine.StateOutput{}, err
		}

		out := engine.StateOutput{
			Connections: filterRecords(set.Records, input.Search, input.Category),
			Total:       len(set.Records),
			Enriched:    len(set.Records) - set.CountUnenriched(),
			Remaining:   set.CountUnenriched(),
			HasKeys:     set.Credentials.Complete(),
		}
		if len(set.Records) > 0 {
			out.Categories = make(map[string]int)
			for tag, n := range set.CategoryCounts() {
				out.Categories[string(tag)] = n
			}
		}
		return nil, out, nil
	})
}

// filterRecords applies the browse filters: case-insensitive substring match
// over name, company, and position, plus an exact category tag match.
func filterRecords(records []network.Record, search, category string) []network.Record {
	search = strings.ToLower(strings.TrimSpace(search))
	category = strings.TrimSpace(category)
	if search == "" && category == "" {
		return records
	}

	out := make([]network.Record, 0, len(records))
	for _, r := range records {
		if category != "" && string(r.Category) != category {
			continue
		}
		if search != "" {
			haystack := strings.ToLower(r.FullName() + " " + r.Company + " " + r.Position)
			if !strings.Contains(haystack, search) {
				continue
			}
		}
		out = append(out, r)
	}
	return out
}
