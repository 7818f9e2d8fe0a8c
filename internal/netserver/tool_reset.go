package netserver

import (
	"context"
	"log/slog"

	"github.com/anatolykoptev/go_network/internal/engine"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerReset(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "network_reset",
		Description: "Delete all stored data: every connection, every blurb, and both API keys. Irreversible.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, _ engine.ResetInput) (*mcp.CallToolResult, engine.ResetOutput, error) {
		if err := engine.Store().Reset(ctx); err != nil {
			return nil, engine.ResetOutput{}, err
		}
		slog.Info("reset: all data deleted")
		return nil, engine.ResetOutput{Reset: true}, nil
	})
}
