package tools

import (
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func (t *Toolset) registerPayeeTools(s *server.MCPServer) {
	t.registerGetPayees(s)
	t.registerGetPayeeByID(s)
	t.registerUpdatePayee(s)
	t.registerGetPayeeLocations(s)
	t.registerGetPayeeLocationByID(s)
	t.registerGetPayeeLocationsByPayee(s)
	t.registerSearchPayees(s)
}

type payeesResponse struct {
	Payees          []payeeView `json:"payees"`
	ServerKnowledge int64       `json:"server_knowledge"`
}

func (t *Toolset) registerGetPayees(s *server.MCPServer) {
	tool := mcp.NewTool("get_payees",
		mcp.WithDescription("List payees for a budget."),
		mcp.WithString("budget_id",
			mcp.Description("Budget ID, 'last-used', or 'default' (uses the configured default budget)"),
			mcp.DefaultString("default"),
		),
		mcp.WithNumber("last_knowledge_of_server",
			mcp.Description("The starting server knowledge for delta requests"),
		),
	)
	defaults := map[string]interface{}{"budget_id": "default"}
	t.addTool(s, tool, defaults, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		budgetID := t.resolveBudgetID(mcp.ParseString(request, "budget_id", "default"))
		lastKnowledge := optionalInt64(request, "last_knowledge_of_server")

		result, err := t.client.Payees.List(ctx, budgetID, lastKnowledge)
		if err != nil {
			t.log.Error().Err(err).Str("budget_id", budgetID).Msg("get_payees failed")
			return errorResult(err.Error()), nil
		}
		return jsonResult(payeesResponse{
			Payees:          projectPayees(result.Payees),
			ServerKnowledge: result.ServerKnowledge,
		}), nil
	})
}

func (t *Toolset) registerGetPayeeByID(s *server.MCPServer) {
	tool := mcp.NewTool("get_payee_by_id",
		mcp.WithDescription("Get a specific payee by ID."),
		mcp.WithString("payee_id",
			mcp.Required(),
			mcp.Description("The payee ID"),
		),
		mcp.WithString("budget_id",
			mcp.Description("Budget ID, 'last-used', or 'default'"),
			mcp.DefaultString("default"),
		),
	)
	defaults := map[string]interface{}{"budget_id": "default"}
	t.addTool(s, tool, defaults, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		payeeID, err := request.RequireString("payee_id")
		if err != nil {
			return errorResult("payee_id is required"), nil
		}
		budgetID := t.resolveBudgetID(mcp.ParseString(request, "budget_id", "default"))

		payee, err := t.client.Payees.Get(ctx, budgetID, payeeID)
		if err != nil {
			t.log.Error().Err(err).Str("payee_id", payeeID).Msg("get_payee_by_id failed")
			return errorResult(err.Error()), nil
		}
		return jsonResult(projectPayee(payee)), nil
	})
}

type updatedPayeeResponse struct {
	payeeView
	Message string `json:"message"`
}

func (t *Toolset) registerUpdatePayee(s *server.MCPServer) {
	tool := mcp.NewTool("update_payee",
		mcp.WithDescription("Rename a payee."),
		mcp.WithString("payee_id",
			mcp.Required(),
			mcp.Description("The payee ID to update"),
		),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("New name for the payee"),
		),
		mcp.WithString("budget_id",
			mcp.Description("Budget ID, 'last-used', or 'default'"),
			mcp.DefaultString("default"),
		),
	)
	defaults := map[string]interface{}{"budget_id": "default"}
	t.addTool(s, tool, defaults, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		payeeID, err := request.RequireString("payee_id")
		if err != nil {
			return errorResult("payee_id is required"), nil
		}
		name, err := request.RequireString("name")
		if err != nil {
			return errorResult("name is required"), nil
		}
		budgetID := t.resolveBudgetID(mcp.ParseString(request, "budget_id", "default"))

		payee, err := t.client.Payees.Update(ctx, budgetID, payeeID, name)
		if err != nil {
			t.log.Error().Err(err).Str("payee_id", payeeID).Msg("update_payee failed")
			return errorResult(err.Error()), nil
		}
		return jsonResult(updatedPayeeResponse{
			payeeView: projectPayee(payee),
			Message:   "Payee updated successfully",
		}), nil
	})
}

type payeeLocationsResponse struct {
	PayeeLocations []payeeLocationView `json:"payee_locations"`
}

func (t *Toolset) registerGetPayeeLocations(s *server.MCPServer) {
	tool := mcp.NewTool("get_payee_locations",
		mcp.WithDescription("List all payee locations for a budget."),
		mcp.WithString("budget_id",
			mcp.Description("Budget ID, 'last-used', or 'default'"),
			mcp.DefaultString("default"),
		),
	)
	defaults := map[string]interface{}{"budget_id": "default"}
	t.addTool(s, tool, defaults, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		budgetID := t.resolveBudgetID(mcp.ParseString(request, "budget_id", "default"))

		locations, err := t.client.Payees.Locations(ctx, budgetID)
		if err != nil {
			t.log.Error().Err(err).Str("budget_id", budgetID).Msg("get_payee_locations failed")
			return errorResult(err.Error()), nil
		}
		return jsonResult(payeeLocationsResponse{PayeeLocations: projectPayeeLocations(locations)}), nil
	})
}

func (t *Toolset) registerGetPayeeLocationByID(s *server.MCPServer) {
	tool := mcp.NewTool("get_payee_location_by_id",
		mcp.WithDescription("Get a specific payee location by ID."),
		mcp.WithString("payee_location_id",
			mcp.Required(),
			mcp.Description("The payee location ID"),
		),
		mcp.WithString("budget_id",
			mcp.Description("Budget ID, 'last-used', or 'default'"),
			mcp.DefaultString("default"),
		),
	)
	defaults := map[string]interface{}{"budget_id": "default"}
	t.addTool(s, tool, defaults, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		locationID, err := request.RequireString("payee_location_id")
		if err != nil {
			return errorResult("payee_location_id is required"), nil
		}
		budgetID := t.resolveBudgetID(mcp.ParseString(request, "budget_id", "default"))

		location, err := t.client.Payees.Location(ctx, budgetID, locationID)
		if err != nil {
			t.log.Error().Err(err).Str("payee_location_id", locationID).Msg("get_payee_location_by_id failed")
			return errorResult(err.Error()), nil
		}
		return jsonResult(projectPayeeLocation(location)), nil
	})
}

type payeeLocationsByPayeeResponse struct {
	PayeeID   string              `json:"payee_id"`
	Locations []payeeLocationView `json:"locations"`
}

func (t *Toolset) registerGetPayeeLocationsByPayee(s *server.MCPServer) {
	tool := mcp.NewTool("get_payee_locations_by_payee",
		mcp.WithDescription("List all locations for a specific payee."),
		mcp.WithString("payee_id",
			mcp.Required(),
			mcp.Description("The payee ID"),
		),
		mcp.WithString("budget_id",
			mcp.Description("Budget ID, 'last-used', or 'default'"),
			mcp.DefaultString("default"),
		),
	)
	defaults := map[string]interface{}{"budget_id": "default"}
	t.addTool(s, tool, defaults, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		payeeID, err := request.RequireString("payee_id")
		if err != nil {
			return errorResult("payee_id is required"), nil
		}
		budgetID := t.resolveBudgetID(mcp.ParseString(request, "budget_id", "default"))

		locations, err := t.client.Payees.LocationsByPayee(ctx, budgetID, payeeID)
		if err != nil {
			t.log.Error().Err(err).Str("payee_id", payeeID).Msg("get_payee_locations_by_payee failed")
			return errorResult(err.Error()), nil
		}
		return jsonResult(payeeLocationsByPayeeResponse{
			PayeeID:   payeeID,
			Locations: projectPayeeLocations(locations),
		}), nil
	})
}

type payeeSearchResponse struct {
	SearchTerm string      `json:"search_term"`
	Matches    []payeeView `json:"matches"`
	Count      int         `json:"count"`
}

func (t *Toolset) registerSearchPayees(s *server.MCPServer) {
	tool := mcp.NewTool("search_payees",
		mcp.WithDescription("Search payees by case-insensitive substring match on name."),
		mcp.WithString("search_term",
			mcp.Required(),
			mcp.Description("The search term to match against payee names"),
		),
		mcp.WithString("budget_id",
			mcp.Description("Budget ID, 'last-used', or 'default'"),
			mcp.DefaultString("default"),
		),
	)
	defaults := map[string]interface{}{"budget_id": "default"}
	t.addTool(s, tool, defaults, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		searchTerm, err := request.RequireString("search_term")
		if err != nil {
			return errorResult("search_term is required"), nil
		}
		budgetID := t.resolveBudgetID(mcp.ParseString(request, "budget_id", "default"))

		result, err := t.client.Payees.List(ctx, budgetID, nil)
		if err != nil {
			t.log.Error().Err(err).Str("budget_id", budgetID).Msg("search_payees failed")
			return errorResult(err.Error()), nil
		}

		needle := strings.ToLower(searchTerm)
		matches := make([]payeeView, 0)
		for i := range result.Payees {
			if strings.Contains(strings.ToLower(result.Payees[i].Name), needle) {
				matches = append(matches, projectPayee(&result.Payees[i]))
			}
		}
		return jsonResult(payeeSearchResponse{
			SearchTerm: searchTerm,
			Matches:    matches,
			Count:      len(matches),
		}), nil
	})
}
