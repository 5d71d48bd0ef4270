package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func (t *Toolset) registerBudgetTools(s *server.MCPServer) {
	t.registerGetBudgets(s)
	t.registerGetBudgetByID(s)
	t.registerGetBudgetSettings(s)
}

type budgetsResponse struct {
	Budgets       []budgetSummaryView `json:"budgets"`
	DefaultBudget *string             `json:"default_budget"`
}

func (t *Toolset) registerGetBudgets(s *server.MCPServer) {
	tool := mcp.NewTool("get_budgets",
		mcp.WithDescription("List budgets for the authenticated user. Returns budget summaries with date and currency formats."),
		mcp.WithBoolean("include_accounts",
			mcp.Description("Include account information in the response"),
			mcp.DefaultBool(false),
		),
	)
	defaults := map[string]interface{}{"include_accounts": false}
	t.addTool(s, tool, defaults, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		includeAccounts := mcp.ParseBoolean(request, "include_accounts", false)

		result, err := t.client.Budgets.List(ctx, includeAccounts)
		if err != nil {
			t.log.Error().Err(err).Msg("get_budgets failed")
			return errorResult(err.Error()), nil
		}

		resp := budgetsResponse{Budgets: make([]budgetSummaryView, 0, len(result.Budgets))}
		for i := range result.Budgets {
			resp.Budgets = append(resp.Budgets, projectBudgetSummary(&result.Budgets[i], includeAccounts))
		}
		if result.DefaultBudget != nil {
			resp.DefaultBudget = &result.DefaultBudget.ID
		}
		return jsonResult(resp), nil
	})
}

func (t *Toolset) registerGetBudgetByID(s *server.MCPServer) {
	tool := mcp.NewTool("get_budget_by_id",
		mcp.WithDescription("Get the full detail of one budget: accounts, category groups, payees, and months."),
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

		result, err := t.client.Budgets.Get(ctx, budgetID, lastKnowledge)
		if err != nil {
			t.log.Error().Err(err).Str("budget_id", budgetID).Msg("get_budget_by_id failed")
			return errorResult(err.Error()), nil
		}
		return jsonResult(projectBudgetDetail(&result.Budget, result.ServerKnowledge)), nil
	})
}

func (t *Toolset) registerGetBudgetSettings(s *server.MCPServer) {
	tool := mcp.NewTool("get_budget_settings",
		mcp.WithDescription("Get display settings for a budget: date format and currency format."),
		mcp.WithString("budget_id",
			mcp.Description("Budget ID, 'last-used', or 'default'"),
			mcp.DefaultString("default"),
		),
	)
	defaults := map[string]interface{}{"budget_id": "default"}
	t.addTool(s, tool, defaults, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		budgetID := t.resolveBudgetID(mcp.ParseString(request, "budget_id", "default"))

		settings, err := t.client.Budgets.GetSettings(ctx, budgetID)
		if err != nil {
			t.log.Error().Err(err).Str("budget_id", budgetID).Msg("get_budget_settings failed")
			return errorResult(err.Error()), nil
		}
		return jsonResult(settings), nil
	})
}
