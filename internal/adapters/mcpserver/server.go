// Package mcpserver exposes property search as an MCP tool over streamable
// HTTP.
package mcpserver

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"

	"rental_agency/internal/adapters/observability"
	"rental_agency/internal/app"
	"rental_agency/internal/search"
)

const (
	Name    = "React Rental Agency"
	Version = "1.0.0"

	ToolName        = "searchForProperty"
	toolDescription = "Search rental properties by occupancy, rent, rooms, neighborhood, floor, amenity tiers and features. Omit a field to leave it unconstrained."
	resultPrefix    = "Here are the properties we found:\n"
)

// New builds the MCP server with the search tool registered.
func New(svc *app.SearchService) *server.MCPServer {
	s := server.NewMCPServer(Name, Version, server.WithToolCapabilities(false))
	tool := mcp.NewToolWithRawSchema(ToolName, toolDescription, search.JSONSchemaBytes())
	s.AddTool(tool, SearchHandler(svc))
	return s
}

// Handler serves s over streamable HTTP, ready to mount under /mcp.
func Handler(s *server.MCPServer) http.Handler {
	return server.NewStreamableHTTPServer(s)
}

// SearchHandler runs a search from the tool arguments. Invalid arguments
// narrow the filters the same way they do for query strings; only store
// failures surface as tool errors.
func SearchHandler(svc *app.SearchService) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		p, rows, err := svc.SearchArguments(ctx, req.GetArguments())
		if err != nil {
			log.Error().Err(err).Msg("mcp search failed")
			return mcp.NewToolResultError("search failed"), nil
		}
		observability.ObserveSearch("mcp", len(rows))
		log.Debug().Str("filters", search.Serialize(p).Encode()).Int("results", len(rows)).Msg("mcp search")

		body, err := json.Marshal(app.ToCards(rows))
		if err != nil {
			return nil, err
		}
		return mcp.NewToolResultText(resultPrefix + string(body)), nil
	}
}
