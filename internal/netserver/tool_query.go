package netserver

import (
	"context"
	"strconv"
	"strings"

	"github.com/anatolykoptev/go_network/internal/engine"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerQuery(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "network_query",
		Description: "Ask a free-form question about the whole network ('Who can intro me to fintech founders?', 'List everyone in venture capital'). The full connection list, including enrichment blurbs, is the context. Answers are cached until the network changes.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input engine.QueryInput) (*mcp.CallToolResult, engine.QueryOutput, error) {
		question := strings.TrimSpace(input.Query)

		// Cache key includes the set revision: any ingest, enrichment, or
		// reset invalidates previous answers.
		var cacheKey string
		if question != "" {
			set, err := engine.Store().Load(ctx)
			if err != nil {
				return nil, engine.QueryOutput{}, err
			}
			cacheKey = engine.CacheKey("network_query", question, strconv.FormatInt(set.Revision, 10))
			if answer, ok := engine.CacheGet(ctx, cacheKey); ok {
				return nil, engine.QueryOutput{Response: answer, Cached: true}, nil
			}
		}

		answer, err := engine.NetworkQuery().Ask(ctx, question)
		if err != nil {
			return nil, engine.QueryOutput{}, err
		}
		engine.CacheSet(ctx, cacheKey, answer)
		return nil, engine.QueryOutput{Response: answer}, nil
	})
}
