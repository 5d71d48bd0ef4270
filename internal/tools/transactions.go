package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/EdgeCaseLabs/ynab-mcp/pkg/ynab"
)

func (t *Toolset) registerTransactionTools(s *server.MCPServer) {
	t.registerGetTransactions(s)
	t.registerGetTransactionByID(s)
	t.registerCreateTransaction(s)
	t.registerUpdateTransaction(s)
	t.registerDeleteTransaction(s)
	t.registerImportTransactions(s)
}

type transactionsResponse struct {
	Transactions    []transactionView `json:"transactions"`
	ServerKnowledge int64             `json:"server_knowledge"`
}

func (t *Toolset) registerGetTransactions(s *server.MCPServer) {
	tool := mcp.NewTool("get_transactions",
		mcp.WithDescription("List transactions for a budget. Amounts are in milliunits with formatted companions."),
		mcp.WithString("budget_id",
			mcp.Description("Budget ID, 'last-used', or 'default' (uses the configured default budget)"),
			mcp.DefaultString("default"),
		),
		mcp.WithString("since_date",
			mcp.Description("Only return transactions on or after this date (ISO format: YYYY-MM-DD)"),
		),
		mcp.WithString("type",
			mcp.Description("Filter by type: 'uncategorized' or 'unapproved'"),
		),
		mcp.WithNumber("last_knowledge_of_server",
			mcp.Description("The starting server knowledge for delta requests"),
		),
	)
	defaults := map[string]interface{}{"budget_id": "default"}
	t.addTool(s, tool, defaults, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		budgetID := t.resolveBudgetID(mcp.ParseString(request, "budget_id", "default"))
		filter := &ynab.TransactionFilter{
			SinceDate:     mcp.ParseString(request, "since_date", ""),
			Type:          mcp.ParseString(request, "type", ""),
			LastKnowledge: optionalInt64(request, "last_knowledge_of_server"),
		}

		result, err := t.client.Transactions.List(ctx, budgetID, filter)
		if err != nil {
			t.log.Error().Err(err).Str("budget_id", budgetID).Msg("get_transactions failed")
			return errorResult(err.Error()), nil
		}
		return jsonResult(transactionsResponse{
			Transactions:    projectTransactions(result.Transactions),
			ServerKnowledge: result.ServerKnowledge,
		}), nil
	})
}

func (t *Toolset) registerGetTransactionByID(s *server.MCPServer) {
	tool := mcp.NewTool("get_transaction_by_id",
		mcp.WithDescription("Get a single transaction by ID."),
		mcp.WithString("transaction_id",
			mcp.Required(),
			mcp.Description("The transaction ID"),
		),
		mcp.WithString("budget_id",
			mcp.Description("Budget ID, 'last-used', or 'default'"),
			mcp.DefaultString("default"),
		),
	)
	defaults := map[string]interface{}{"budget_id": "default"}
	t.addTool(s, tool, defaults, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		transactionID, err := request.RequireString("transaction_id")
		if err != nil {
			return errorResult("transaction_id is required"), nil
		}
		budgetID := t.resolveBudgetID(mcp.ParseString(request, "budget_id", "default"))

		tx, err := t.client.Transactions.Get(ctx, budgetID, transactionID)
		if err != nil {
			t.log.Error().Err(err).Str("transaction_id", transactionID).Msg("get_transaction_by_id failed")
			return errorResult(err.Error()), nil
		}
		return jsonResult(projectTransaction(tx)), nil
	})
}

type createdTransactionResponse struct {
	transactionView
	Message string `json:"message"`
}

type duplicateImportResponse struct {
	Message            string   `json:"message"`
	DuplicateImportIDs []string `json:"duplicate_import_ids"`
}

func (t *Toolset) registerCreateTransaction(s *server.MCPServer) {
	tool := mcp.NewTool("create_transaction",
		mcp.WithDescription("Create a new transaction."),
		mcp.WithString("account_id",
			mcp.Required(),
			mcp.Description("Account ID for the transaction"),
		),
		mcp.WithNumber("amount",
			mcp.Required(),
			mcp.Description("Transaction amount in milliunits (e.g. -$10.50 = -10500)"),
		),
		mcp.WithString("date",
			mcp.Required(),
			mcp.Description("Transaction date (ISO format: YYYY-MM-DD)"),
		),
		mcp.WithString("payee_name",
			mcp.Description("Payee name (creates a new payee if it doesn't exist)"),
		),
		mcp.WithString("payee_id",
			mcp.Description("Existing payee ID (use instead of payee_name)"),
		),
		mcp.WithString("category_id",
			mcp.Description("Category ID"),
		),
		mcp.WithString("cleared",
			mcp.Description("Status: 'cleared', 'uncleared', or 'reconciled'"),
			mcp.DefaultString("uncleared"),
		),
		mcp.WithBoolean("approved",
			mcp.Description("Whether the transaction is approved"),
			mcp.DefaultBool(false),
		),
		mcp.WithString("memo",
			mcp.Description("Transaction memo"),
		),
		mcp.WithString("flag_color",
			mcp.Description("Flag color: 'red', 'orange', 'yellow', 'green', 'blue', 'purple'"),
		),
		mcp.WithString("import_id",
			mcp.Description("Import ID used for deduplication"),
		),
		mcp.WithString("budget_id",
			mcp.Description("Budget ID, 'last-used', or 'default'"),
			mcp.DefaultString("default"),
		),
	)
	defaults := map[string]interface{}{
		"budget_id": "default",
		"cleared":   "uncleared",
		"approved":  false,
	}
	t.addTool(s, tool, defaults, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		accountID, err := request.RequireString("account_id")
		if err != nil {
			return errorResult("account_id is required"), nil
		}
		date, err := request.RequireString("date")
		if err != nil {
			return errorResult("date is required"), nil
		}
		amount := ynab.Milliunits(mcp.ParseInt64(request, "amount", 0))
		cleared := mcp.ParseString(request, "cleared", "uncleared")
		approved := mcp.ParseBoolean(request, "approved", false)
		flagColor := mcp.ParseString(request, "flag_color", "")
		budgetID := t.resolveBudgetID(mcp.ParseString(request, "budget_id", "default"))

		if !ynab.ClearedStatus(cleared).Valid() {
			return errorResult("cleared must be 'cleared', 'uncleared', or 'reconciled'"), nil
		}
		if flagColor != "" && !ynab.FlagColor(flagColor).Valid() {
			return errorResult(fmt.Sprintf("flag_color must be one of: %s", flagColorList())), nil
		}

		params := &ynab.SaveTransactionParams{
			AccountID:  accountID,
			Date:       date,
			Amount:     &amount,
			PayeeName:  optionalString(request, "payee_name"),
			PayeeID:    optionalString(request, "payee_id"),
			CategoryID: optionalString(request, "category_id"),
			Memo:       optionalString(request, "memo"),
			Cleared:    ynab.ClearedStatus(cleared),
			Approved:   &approved,
			ImportID:   optionalString(request, "import_id"),
		}
		if flagColor != "" {
			color := ynab.FlagColor(flagColor)
			params.FlagColor = &color
		}

		result, err := t.client.Transactions.Create(ctx, budgetID, params)
		if err != nil {
			t.log.Error().Err(err).Str("budget_id", budgetID).Msg("create_transaction failed")
			return errorResult(err.Error()), nil
		}

		// Every submitted import_id already known: partial success, not an
		// error.
		if result.Transaction == nil {
			return jsonResult(duplicateImportResponse{
				Message:            "Transaction created",
				DuplicateImportIDs: result.DuplicateImportIDs,
			}), nil
		}
		return jsonResult(createdTransactionResponse{
			transactionView: projectTransaction(result.Transaction),
			Message:         "Transaction created successfully",
		}), nil
	})
}

type updatedTransactionResponse struct {
	transactionView
	Message string `json:"message"`
}

func (t *Toolset) registerUpdateTransaction(s *server.MCPServer) {
	tool := mcp.NewTool("update_transaction",
		mcp.WithDescription("Update an existing transaction. Omitted fields are left unchanged."),
		mcp.WithString("transaction_id",
			mcp.Required(),
			mcp.Description("The transaction ID to update"),
		),
		mcp.WithString("account_id",
			mcp.Description("New account ID"),
		),
		mcp.WithNumber("amount",
			mcp.Description("New amount in milliunits"),
		),
		mcp.WithString("date",
			mcp.Description("New date (ISO format: YYYY-MM-DD)"),
		),
		mcp.WithString("payee_name",
			mcp.Description("New payee name"),
		),
		mcp.WithString("payee_id",
			mcp.Description("New payee ID"),
		),
		mcp.WithString("category_id",
			mcp.Description("New category ID"),
		),
		mcp.WithString("cleared",
			mcp.Description("New status: 'cleared', 'uncleared', or 'reconciled'"),
		),
		mcp.WithBoolean("approved",
			mcp.Description("New approved status"),
		),
		mcp.WithString("memo",
			mcp.Description("New memo"),
		),
		mcp.WithString("flag_color",
			mcp.Description("New flag color"),
		),
		mcp.WithString("budget_id",
			mcp.Description("Budget ID, 'last-used', or 'default'"),
			mcp.DefaultString("default"),
		),
	)
	defaults := map[string]interface{}{"budget_id": "default"}
	t.addTool(s, tool, defaults, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		transactionID, err := request.RequireString("transaction_id")
		if err != nil {
			return errorResult("transaction_id is required"), nil
		}
		budgetID := t.resolveBudgetID(mcp.ParseString(request, "budget_id", "default"))

		params := &ynab.SaveTransactionParams{
			AccountID:  mcp.ParseString(request, "account_id", ""),
			Date:       mcp.ParseString(request, "date", ""),
			PayeeName:  optionalString(request, "payee_name"),
			PayeeID:    optionalString(request, "payee_id"),
			CategoryID: optionalString(request, "category_id"),
			Memo:       optionalString(request, "memo"),
			Approved:   optionalBool(request, "approved"),
		}
		if amount := optionalInt64(request, "amount"); amount != nil {
			v := ynab.Milliunits(*amount)
			params.Amount = &v
		}
		if cleared := mcp.ParseString(request, "cleared", ""); cleared != "" {
			if !ynab.ClearedStatus(cleared).Valid() {
				return errorResult("cleared must be 'cleared', 'uncleared', or 'reconciled'"), nil
			}
			params.Cleared = ynab.ClearedStatus(cleared)
		}
		if flagColor := mcp.ParseString(request, "flag_color", ""); flagColor != "" {
			if !ynab.FlagColor(flagColor).Valid() {
				return errorResult(fmt.Sprintf("flag_color must be one of: %s", flagColorList())), nil
			}
			color := ynab.FlagColor(flagColor)
			params.FlagColor = &color
		}

		tx, err := t.client.Transactions.Update(ctx, budgetID, transactionID, params)
		if err != nil {
			t.log.Error().Err(err).Str("transaction_id", transactionID).Msg("update_transaction failed")
			return errorResult(err.Error()), nil
		}
		return jsonResult(updatedTransactionResponse{
			transactionView: projectTransaction(tx),
			Message:         "Transaction updated successfully",
		}), nil
	})
}

type deletedTransactionResponse struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
	Message string `json:"message"`
}

func (t *Toolset) registerDeleteTransaction(s *server.MCPServer) {
	tool := mcp.NewTool("delete_transaction",
		mcp.WithDescription("Delete a transaction."),
		mcp.WithString("transaction_id",
			mcp.Required(),
			mcp.Description("The transaction ID to delete"),
		),
		mcp.WithString("budget_id",
			mcp.Description("Budget ID, 'last-used', or 'default'"),
			mcp.DefaultString("default"),
		),
	)
	defaults := map[string]interface{}{"budget_id": "default"}
	t.addTool(s, tool, defaults, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		transactionID, err := request.RequireString("transaction_id")
		if err != nil {
			return errorResult("transaction_id is required"), nil
		}
		budgetID := t.resolveBudgetID(mcp.ParseString(request, "budget_id", "default"))

		tx, err := t.client.Transactions.Delete(ctx, budgetID, transactionID)
		if err != nil {
			t.log.Error().Err(err).Str("transaction_id", transactionID).Msg("delete_transaction failed")
			return errorResult(err.Error()), nil
		}
		return jsonResult(deletedTransactionResponse{
			ID:      tx.ID,
			Deleted: true,
			Message: fmt.Sprintf("Transaction %s deleted successfully", tx.ID),
		}), nil
	})
}

type importTransactionsResponse struct {
	TransactionIDs []string `json:"transaction_ids"`
	Count          int      `json:"count"`
	Message        string   `json:"message"`
}

func (t *Toolset) registerImportTransactions(s *server.MCPServer) {
	tool := mcp.NewTool("import_transactions",
		mcp.WithDescription("Import available transactions from all linked accounts."),
		mcp.WithString("budget_id",
			mcp.Description("Budget ID, 'last-used', or 'default'"),
			mcp.DefaultString("default"),
		),
	)
	defaults := map[string]interface{}{"budget_id": "default"}
	t.addTool(s, tool, defaults, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		budgetID := t.resolveBudgetID(mcp.ParseString(request, "budget_id", "default"))

		ids, err := t.client.Transactions.Import(ctx, budgetID)
		if err != nil {
			t.log.Error().Err(err).Str("budget_id", budgetID).Msg("import_transactions failed")
			return errorResult(err.Error()), nil
		}
		if ids == nil {
			ids = []string{}
		}
		return jsonResult(importTransactionsResponse{
			TransactionIDs: ids,
			Count:          len(ids),
			Message:        fmt.Sprintf("Imported %d transactions", len(ids)),
		}), nil
	})
}

func flagColorList() string {
	colors := ynab.FlagColors()
	names := make([]string, 0, len(colors))
	for _, c := range colors {
		names = append(names, string(c))
	}
	return strings.Join(names, ", ")
}
