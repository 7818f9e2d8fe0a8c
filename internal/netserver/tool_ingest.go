package netserver

import (
	"context"
	"log/slog"

	"github.com/anatolykoptev/go_network/internal/engine"
	"github.com/anatolykoptev/go_network/internal/engine/network"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerIngest(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "network_ingest",
		Description: "Import a LinkedIn Connections.csv export. Skips the free-text Notes preamble, parses every connection row, categorizes each by job title, and replaces the stored network wholesale. Previously stored API keys are kept.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input engine.IngestInput) (*mcp.CallToolResult, engine.IngestOutput, error) {
		records, err := network.Parse(input.CSV)
		if err != nil {
			return nil, engine.IngestOutput{}, err
		}

		st := engine.Store()
		set, err := st.Load(ctx)
		if err != nil {
			return nil, engine.IngestOutput{}, err
		}
		set.Records = records
		if err := st.Save(ctx, set); err != nil {
			return nil, engine.IngestOutput{}, err
		}

		engine.IncrIngest(len(records))
		slog.Info("ingest: network replaced", slog.Int("connections", len(records)))
		return nil, engine.IngestOutput{Imported: len(records)}, nil
	})
}
