package netserver

import (
	"context"

	"github.com/anatolykoptev/go_network/internal/engine"
	"github.com/anatolykoptev/go_network/internal/engine/network"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerSetKeys(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "network_set_keys",
		Description: "Store the Tavily and Gemini API keys used for enrichment and network queries. Keys persist locally alongside the connection data.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input engine.SetKeysInput) (*mcp.CallToolResult, engine.SetKeysOutput, error) {
		if input.Tavily == "" || input.Gemini == "" {
			return nil, engine.SetKeysOutput{}, network.MissingInput("both tavily and gemini keys are required")
		}

		st := engine.Store()
		set, err := st.Load(ctx)
		if err != nil {
			return nil, engine.SetKeysOutput{}, err
		}
		set.Credentials.TavilyKey = input.Tavily
		set.Credentials.GeminiKey = input.Gemini
		if err := st.Save(ctx, set); err != nil {
			return nil, engine.SetKeysOutput{}, err
		}
		return nil, engine.SetKeysOutput{Saved: true}, nil
	})
}
