// Package netserver exposes the network core as MCP tools:
// network_state, network_set_keys, network_ingest, network_enrich,
// network_enrich_batch, network_query, network_reset.
package netserver

import "github.com/modelcontextprotocol/go-sdk/mcp"

// RegisterTools registers the full operation surface on the given MCP server.
func RegisterTools(server *mcp.Server) {
	registerState(server)
	registerSetKeys(server)
	registerIngest(server)
	registerEnrichOne(server)
	registerEnrichBatch(server)
	registerQuery(server)
	registerReset(server)
}
