package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/EdgeCaseLabs/ynab-mcp/pkg/ynab"
)

func (t *Toolset) registerAccountTools(s *server.MCPServer) {
	t.registerGetAccounts(s)
	t.registerGetAccountByID(s)
	t.registerCreateAccount(s)
	t.registerGetAccountBalance(s)
}

type accountsResponse struct {
	Accounts        []accountView `json:"accounts"`
	ServerKnowledge int64         `json:"server_knowledge"`
}

func (t *Toolset) registerGetAccounts(s *server.MCPServer) {
	tool := mcp.NewTool("get_accounts",
		mcp.WithDescription("List accounts for a budget. Balances are in milliunits with formatted companions."),
		mcp.WithString("budget_id",
			mcp.Description("Budget ID, 'last-used', or 'default' (uses the configured default budget)"),
			mcp.DefaultString("default"),
		),
		mcp.WithNumber("last_knowledge_of_server",
			mcp.Description("The starting server knowledge for delta requests"),
		),
		mcp.WithBoolean("include_closed",
			mcp.Description("Include closed accounts"),
			mcp.DefaultBool(false),
		),
		mcp.WithBoolean("include_deleted",
			mcp.Description("Include deleted accounts"),
			mcp.DefaultBool(false),
		),
	)
	defaults := map[string]interface{}{
		"budget_id":       "default",
		"include_closed":  false,
		"include_deleted": false,
	}
	t.addTool(s, tool, defaults, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		budgetID := t.resolveBudgetID(mcp.ParseString(request, "budget_id", "default"))
		lastKnowledge := optionalInt64(request, "last_knowledge_of_server")
		includeClosed := mcp.ParseBoolean(request, "include_closed", false)
		includeDeleted := mcp.ParseBoolean(request, "include_deleted", false)

		result, err := t.client.Accounts.List(ctx, budgetID, lastKnowledge)
		if err != nil {
			t.log.Error().Err(err).Str("budget_id", budgetID).Msg("get_accounts failed")
			return errorResult(err.Error()), nil
		}

		resp := accountsResponse{
			Accounts:        make([]accountView, 0, len(result.Accounts)),
			ServerKnowledge: result.ServerKnowledge,
		}
		for i := range result.Accounts {
			acc := &result.Accounts[i]
			if acc.Closed && !includeClosed {
				continue
			}
			if acc.Deleted && !includeDeleted {
				continue
			}
			resp.Accounts = append(resp.Accounts, projectAccount(acc))
		}
		return jsonResult(resp), nil
	})
}

func (t *Toolset) registerGetAccountByID(s *server.MCPServer) {
	tool := mcp.NewTool("get_account_by_id",
		mcp.WithDescription("Get details for a specific account."),
		mcp.WithString("account_id",
			mcp.Required(),
			mcp.Description("The account ID"),
		),
		mcp.WithString("budget_id",
			mcp.Description("Budget ID, 'last-used', or 'default'"),
			mcp.DefaultString("default"),
		),
	)
	defaults := map[string]interface{}{"budget_id": "default"}
	t.addTool(s, tool, defaults, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		accountID, err := request.RequireString("account_id")
		if err != nil {
			return errorResult("account_id is required"), nil
		}
		budgetID := t.resolveBudgetID(mcp.ParseString(request, "budget_id", "default"))

		account, err := t.client.Accounts.Get(ctx, budgetID, accountID)
		if err != nil {
			t.log.Error().Err(err).Str("account_id", accountID).Msg("get_account_by_id failed")
			return errorResult(err.Error()), nil
		}
		return jsonResult(projectAccount(account)), nil
	})
}

type createdAccountResponse struct {
	accountView
	Message string `json:"message"`
}

func (t *Toolset) registerCreateAccount(s *server.MCPServer) {
	tool := mcp.NewTool("create_account",
		mcp.WithDescription("Create a new account in a budget."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Account name"),
		),
		mcp.WithString("type",
			mcp.Required(),
			mcp.Description("Account type: checking, savings, creditCard, cash, lineOfCredit, otherAsset, otherLiability, payPal, merchantAccount, investmentAccount, mortgage"),
		),
		mcp.WithNumber("balance",
			mcp.Required(),
			mcp.Description("Initial account balance in milliunits (e.g. $10.50 = 10500)"),
		),
		mcp.WithString("budget_id",
			mcp.Description("Budget ID, 'last-used', or 'default'"),
			mcp.DefaultString("default"),
		),
	)
	defaults := map[string]interface{}{"budget_id": "default"}
	t.addTool(s, tool, defaults, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name, err := request.RequireString("name")
		if err != nil {
			return errorResult("name is required"), nil
		}
		accountType, err := request.RequireString("type")
		if err != nil {
			return errorResult("type is required"), nil
		}
		balance := mcp.ParseInt64(request, "balance", 0)
		budgetID := t.resolveBudgetID(mcp.ParseString(request, "budget_id", "default"))

		if !ynab.AccountType(accountType).Valid() {
			return errorResult(fmt.Sprintf("Invalid account type. Must be one of: %s", accountTypeList())), nil
		}

		account, err := t.client.Accounts.Create(ctx, budgetID, &ynab.CreateAccountParams{
			Name:    name,
			Type:    ynab.AccountType(accountType),
			Balance: ynab.Milliunits(balance),
		})
		if err != nil {
			t.log.Error().Err(err).Str("budget_id", budgetID).Msg("create_account failed")
			return errorResult(err.Error()), nil
		}
		return jsonResult(createdAccountResponse{
			accountView: projectAccount(account),
			Message:     "Account created successfully",
		}), nil
	})
}

type accountBalanceResponse struct {
	AccountName               string          `json:"account_name"`
	Balance                   ynab.Milliunits `json:"balance"`
	ClearedBalance            ynab.Milliunits `json:"cleared_balance"`
	UnclearedBalance          ynab.Milliunits `json:"uncleared_balance"`
	BalanceFormatted          string          `json:"balance_formatted"`
	ClearedBalanceFormatted   string          `json:"cleared_balance_formatted"`
	UnclearedBalanceFormatted string          `json:"uncleared_balance_formatted"`
}

func (t *Toolset) registerGetAccountBalance(s *server.MCPServer) {
	tool := mcp.NewTool("get_account_balance",
		mcp.WithDescription("Get balance information for a specific account, in milliunits with formatted companions."),
		mcp.WithString("account_id",
			mcp.Required(),
			mcp.Description("The account ID"),
		),
		mcp.WithString("budget_id",
			mcp.Description("Budget ID, 'last-used', or 'default'"),
			mcp.DefaultString("default"),
		),
	)
	defaults := map[string]interface{}{"budget_id": "default"}
	t.addTool(s, tool, defaults, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		accountID, err := request.RequireString("account_id")
		if err != nil {
			return errorResult("account_id is required"), nil
		}
		budgetID := t.resolveBudgetID(mcp.ParseString(request, "budget_id", "default"))

		account, err := t.client.Accounts.Get(ctx, budgetID, accountID)
		if err != nil {
			t.log.Error().Err(err).Str("account_id", accountID).Msg("get_account_balance failed")
			return errorResult(err.Error()), nil
		}
		return jsonResult(accountBalanceResponse{
			AccountName:               account.Name,
			Balance:                   account.Balance,
			ClearedBalance:            account.ClearedBalance,
			UnclearedBalance:          account.UnclearedBalance,
			BalanceFormatted:          account.Balance.Format(),
			ClearedBalanceFormatted:   account.ClearedBalance.Format(),
			UnclearedBalanceFormatted: account.UnclearedBalance.Format(),
		}), nil
	})
}

func accountTypeList() string {
	types := ynab.AccountTypes()
	names := make([]string, 0, len(types))
	for _, t := range types {
		names = append(names, string(t))
	}
	return strings.Join(names, ", ")
}
