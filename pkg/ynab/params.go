package ynab

// CreateAccountParams are the fields needed to create an account.
type CreateAccountParams struct {
	Name    string      `json:"name"`
	Type    AccountType `json:"type"`
	Balance Milliunits  `json:"balance"`
}

// UpdateCategoryParams is a partial category update. Nil fields are left
// untouched by the API.
type UpdateCategoryParams struct {
	Name   *string `json:"name,omitempty"`
	Note   *string `json:"note,omitempty"`
	Hidden *bool   `json:"hidden,omitempty"`
}

// SaveTransactionParams carries the writable fields of a transaction for
// both create and partial update. Nil fields are omitted from the request.
type SaveTransactionParams struct {
	AccountID  string        `json:"account_id,omitempty"`
	Date       string        `json:"date,omitempty"`
	Amount     *Milliunits   `json:"amount,omitempty"`
	PayeeID    *string       `json:"payee_id,omitempty"`
	PayeeName  *string       `json:"payee_name,omitempty"`
	CategoryID *string       `json:"category_id,omitempty"`
	Memo       *string       `json:"memo,omitempty"`
	Cleared    ClearedStatus `json:"cleared,omitempty"`
	Approved   *bool         `json:"approved,omitempty"`
	FlagColor  *FlagColor    `json:"flag_color,omitempty"`
	ImportID   *string       `json:"import_id,omitempty"`
}

// TransactionFilter narrows a transaction list call. Type is either
// "uncategorized" or "unapproved" when set.
type TransactionFilter struct {
	SinceDate     string
	Type          string
	LastKnowledge *int64
}

// BudgetsResult is the payload of a budget list call.
type BudgetsResult struct {
	Budgets       []BudgetSummary `json:"budgets"`
	DefaultBudget *BudgetSummary  `json:"default_budget"`
}

// BudgetDetailResult is the payload of a budget detail call.
type BudgetDetailResult struct {
	Budget          BudgetDetail `json:"budget"`
	ServerKnowledge int64        `json:"server_knowledge"`
}

// AccountsResult is the payload of an account list call.
type AccountsResult struct {
	Accounts        []Account `json:"accounts"`
	ServerKnowledge int64     `json:"server_knowledge"`
}

// CategoriesResult is the payload of a category list call.
type CategoriesResult struct {
	CategoryGroups  []CategoryGroup `json:"category_groups"`
	ServerKnowledge int64           `json:"server_knowledge"`
}

// PayeesResult is the payload of a payee list call.
type PayeesResult struct {
	Payees          []Payee `json:"payees"`
	ServerKnowledge int64   `json:"server_knowledge"`
}

// TransactionsResult is the payload of a transaction list call.
type TransactionsResult struct {
	Transactions    []Transaction `json:"transactions"`
	ServerKnowledge int64         `json:"server_knowledge"`
}

// CreateTransactionResult is the payload of a transaction create call.
// When every submitted import_id already exists, Transaction is nil and
// DuplicateImportIDs lists the duplicates; this is a partial success, not
// an error.
type CreateTransactionResult struct {
	Transaction        *Transaction `json:"transaction"`
	TransactionIDs     []string     `json:"transaction_ids"`
	DuplicateImportIDs []string     `json:"duplicate_import_ids"`
	ServerKnowledge    int64        `json:"server_knowledge"`
}
