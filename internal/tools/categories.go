package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/EdgeCaseLabs/ynab-mcp/pkg/ynab"
)

func (t *Toolset) registerCategoryTools(s *server.MCPServer) {
	t.registerGetCategories(s)
	t.registerGetCategoryByID(s)
	t.registerGetMonthCategory(s)
	t.registerUpdateCategory(s)
	t.registerUpdateMonthCategory(s)
	t.registerGetCategoryBalance(s)
}

type categoriesResponse struct {
	CategoryGroups  []categoryGroupView `json:"category_groups"`
	ServerKnowledge int64               `json:"server_knowledge"`
}

func (t *Toolset) registerGetCategories(s *server.MCPServer) {
	tool := mcp.NewTool("get_categories",
		mcp.WithDescription("List categories grouped by category group. Amounts are in milliunits with formatted companions."),
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

		result, err := t.client.Categories.List(ctx, budgetID, lastKnowledge)
		if err != nil {
			t.log.Error().Err(err).Str("budget_id", budgetID).Msg("get_categories failed")
			return errorResult(err.Error()), nil
		}
		return jsonResult(categoriesResponse{
			CategoryGroups:  projectCategoryGroups(result.CategoryGroups),
			ServerKnowledge: result.ServerKnowledge,
		}), nil
	})
}

func (t *Toolset) registerGetCategoryByID(s *server.MCPServer) {
	tool := mcp.NewTool("get_category_by_id",
		mcp.WithDescription("Get a specific category by ID."),
		mcp.WithString("category_id",
			mcp.Required(),
			mcp.Description("The category ID"),
		),
		mcp.WithString("budget_id",
			mcp.Description("Budget ID, 'last-used', or 'default'"),
			mcp.DefaultString("default"),
		),
	)
	defaults := map[string]interface{}{"budget_id": "default"}
	t.addTool(s, tool, defaults, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		categoryID, err := request.RequireString("category_id")
		if err != nil {
			return errorResult("category_id is required"), nil
		}
		budgetID := t.resolveBudgetID(mcp.ParseString(request, "budget_id", "default"))

		category, err := t.client.Categories.Get(ctx, budgetID, categoryID)
		if err != nil {
			t.log.Error().Err(err).Str("category_id", categoryID).Msg("get_category_by_id failed")
			return errorResult(err.Error()), nil
		}
		return jsonResult(projectCategory(category)), nil
	})
}

func (t *Toolset) registerGetMonthCategory(s *server.MCPServer) {
	tool := mcp.NewTool("get_month_category",
		mcp.WithDescription("Get a category as of a specific month."),
		mcp.WithString("category_id",
			mcp.Required(),
			mcp.Description("The category ID"),
		),
		mcp.WithString("month",
			mcp.Required(),
			mcp.Description("The month (ISO format: YYYY-MM-01)"),
		),
		mcp.WithString("budget_id",
			mcp.Description("Budget ID, 'last-used', or 'default'"),
			mcp.DefaultString("default"),
		),
	)
	defaults := map[string]interface{}{"budget_id": "default"}
	t.addTool(s, tool, defaults, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		categoryID, err := request.RequireString("category_id")
		if err != nil {
			return errorResult("category_id is required"), nil
		}
		month, err := request.RequireString("month")
		if err != nil {
			return errorResult("month is required"), nil
		}
		budgetID := t.resolveBudgetID(mcp.ParseString(request, "budget_id", "default"))

		category, err := t.client.Categories.GetMonth(ctx, budgetID, month, categoryID)
		if err != nil {
			t.log.Error().Err(err).Str("category_id", categoryID).Str("month", month).Msg("get_month_category failed")
			return errorResult(err.Error()), nil
		}
		return jsonResult(projectCategory(category)), nil
	})
}

type updatedCategoryResponse struct {
	categoryView
	Message string `json:"message"`
}

func (t *Toolset) registerUpdateCategory(s *server.MCPServer) {
	tool := mcp.NewTool("update_category",
		mcp.WithDescription("Update a category's name, note, or hidden flag. Omitted fields are left unchanged."),
		mcp.WithString("category_id",
			mcp.Required(),
			mcp.Description("The category ID to update"),
		),
		mcp.WithString("name",
			mcp.Description("New category name"),
		),
		mcp.WithString("note",
			mcp.Description("New note for the category"),
		),
		mcp.WithBoolean("hidden",
			mcp.Description("Whether the category is hidden"),
		),
		mcp.WithString("budget_id",
			mcp.Description("Budget ID, 'last-used', or 'default'"),
			mcp.DefaultString("default"),
		),
	)
	defaults := map[string]interface{}{"budget_id": "default"}
	t.addTool(s, tool, defaults, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		categoryID, err := request.RequireString("category_id")
		if err != nil {
			return errorResult("category_id is required"), nil
		}
		budgetID := t.resolveBudgetID(mcp.ParseString(request, "budget_id", "default"))

		params := &ynab.UpdateCategoryParams{
			Name:   optionalString(request, "name"),
			Note:   optionalString(request, "note"),
			Hidden: optionalBool(request, "hidden"),
		}

		category, err := t.client.Categories.Update(ctx, budgetID, categoryID, params)
		if err != nil {
			t.log.Error().Err(err).Str("category_id", categoryID).Msg("update_category failed")
			return errorResult(err.Error()), nil
		}
		return jsonResult(updatedCategoryResponse{
			categoryView: projectCategory(category),
			Message:      "Category updated successfully",
		}), nil
	})
}

type monthCategoryResponse struct {
	categoryView
	Month   string `json:"month"`
	Message string `json:"message"`
}

func (t *Toolset) registerUpdateMonthCategory(s *server.MCPServer) {
	tool := mcp.NewTool("update_month_category",
		mcp.WithDescription("Set a category's budgeted amount for a specific month."),
		mcp.WithString("category_id",
			mcp.Required(),
			mcp.Description("The category ID to update"),
		),
		mcp.WithString("month",
			mcp.Required(),
			mcp.Description("The month to update (ISO format: YYYY-MM-01)"),
		),
		mcp.WithNumber("budgeted",
			mcp.Required(),
			mcp.Description("The budgeted amount in milliunits (e.g. $100.50 = 100500)"),
		),
		mcp.WithString("budget_id",
			mcp.Description("Budget ID, 'last-used', or 'default'"),
			mcp.DefaultString("default"),
		),
	)
	defaults := map[string]interface{}{"budget_id": "default"}
	t.addTool(s, tool, defaults, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		categoryID, err := request.RequireString("category_id")
		if err != nil {
			return errorResult("category_id is required"), nil
		}
		month, err := request.RequireString("month")
		if err != nil {
			return errorResult("month is required"), nil
		}
		budgeted := mcp.ParseInt64(request, "budgeted", 0)
		budgetID := t.resolveBudgetID(mcp.ParseString(request, "budget_id", "default"))

		category, err := t.client.Categories.UpdateMonth(ctx, budgetID, month, categoryID, ynab.Milliunits(budgeted))
		if err != nil {
			t.log.Error().Err(err).Str("category_id", categoryID).Str("month", month).Msg("update_month_category failed")
			return errorResult(err.Error()), nil
		}
		return jsonResult(monthCategoryResponse{
			categoryView: projectCategory(category),
			Month:        month,
			Message:      "Category budget updated for " + month,
		}), nil
	})
}

type categoryBalanceResponse struct {
	CategoryName       string          `json:"category_name"`
	Month              string          `json:"month"`
	Budgeted           ynab.Milliunits `json:"budgeted"`
	BudgetedFormatted  string          `json:"budgeted_formatted"`
	Activity           ynab.Milliunits `json:"activity"`
	ActivityFormatted  string          `json:"activity_formatted"`
	Balance            ynab.Milliunits `json:"balance"`
	BalanceFormatted   string          `json:"balance_formatted"`
	Available          ynab.Milliunits `json:"available"`
	AvailableFormatted string          `json:"available_formatted"`
}

func (t *Toolset) registerGetCategoryBalance(s *server.MCPServer) {
	tool := mcp.NewTool("get_category_balance",
		mcp.WithDescription("Get the balance for a category, optionally for a specific month."),
		mcp.WithString("category_id",
			mcp.Required(),
			mcp.Description("The category ID"),
		),
		mcp.WithString("month",
			mcp.Description("Optional month (ISO format: YYYY-MM-01), defaults to current"),
		),
		mcp.WithString("budget_id",
			mcp.Description("Budget ID, 'last-used', or 'default'"),
			mcp.DefaultString("default"),
		),
	)
	defaults := map[string]interface{}{"budget_id": "default"}
	t.addTool(s, tool, defaults, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		categoryID, err := request.RequireString("category_id")
		if err != nil {
			return errorResult("category_id is required"), nil
		}
		month := mcp.ParseString(request, "month", "")
		budgetID := t.resolveBudgetID(mcp.ParseString(request, "budget_id", "default"))

		var category *ynab.Category
		if month != "" {
			category, err = t.client.Categories.GetMonth(ctx, budgetID, month, categoryID)
		} else {
			category, err = t.client.Categories.Get(ctx, budgetID, categoryID)
		}
		if err != nil {
			t.log.Error().Err(err).Str("category_id", categoryID).Msg("get_category_balance failed")
			return errorResult(err.Error()), nil
		}

		monthLabel := month
		if monthLabel == "" {
			monthLabel = "current"
		}
		return jsonResult(categoryBalanceResponse{
			CategoryName:       category.Name,
			Month:              monthLabel,
			Budgeted:           category.Budgeted,
			BudgetedFormatted:  category.Budgeted.Format(),
			Activity:           category.Activity,
			ActivityFormatted:  category.Activity.Format(),
			Balance:            category.Balance,
			BalanceFormatted:   category.Balance.Format(),
			Available:          category.Balance,
			AvailableFormatted: category.Balance.Format(),
		}), nil
	})
}
