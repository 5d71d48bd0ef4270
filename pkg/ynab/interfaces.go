package ynab

import "context"

// BudgetService handles all budget-level operations
type BudgetService interface {
	// List retrieves budget summaries for the authenticated user
	List(ctx context.Context, includeAccounts bool) (*BudgetsResult, error)

	// Get retrieves the full detail of one budget
	Get(ctx context.Context, budgetID string, lastKnowledge *int64) (*BudgetDetailResult, error)

	// GetSettings retrieves display settings for one budget
	GetSettings(ctx context.Context, budgetID string) (*BudgetSettings, error)
}

// AccountService handles all account-related operations
type AccountService interface {
	// List retrieves all accounts for a budget
	List(ctx context.Context, budgetID string, lastKnowledge *int64) (*AccountsResult, error)

	// Get retrieves a single account by ID
	Get(ctx context.Context, budgetID, accountID string) (*Account, error)

	// Create creates a new account
	Create(ctx context.Context, budgetID string, params *CreateAccountParams) (*Account, error)
}

// CategoryService handles all category-related operations
type CategoryService interface {
	// List retrieves categories grouped by category group
	List(ctx context.Context, budgetID string, lastKnowledge *int64) (*CategoriesResult, error)

	// Get retrieves a single category by ID
	Get(ctx context.Context, budgetID, categoryID string) (*Category, error)

	// GetMonth retrieves a category as of a specific month (YYYY-MM-01)
	GetMonth(ctx context.Context, budgetID, month, categoryID string) (*Category, error)

	// Update applies a partial update to a category
	Update(ctx context.Context, budgetID, categoryID string, params *UpdateCategoryParams) (*Category, error)

	// UpdateMonth sets the budgeted amount of a category for one month
	UpdateMonth(ctx context.Context, budgetID, month, categoryID string, budgeted Milliunits) (*Category, error)
}

// PayeeService handles payees and payee locations
type PayeeService interface {
	// List retrieves all payees for a budget
	List(ctx context.Context, budgetID string, lastKnowledge *int64) (*PayeesResult, error)

	// Get retrieves a single payee by ID
	Get(ctx context.Context, budgetID, payeeID string) (*Payee, error)

	// Update renames a payee
	Update(ctx context.Context, budgetID, payeeID, name string) (*Payee, error)

	// Locations retrieves all payee locations for a budget
	Locations(ctx context.Context, budgetID string) ([]PayeeLocation, error)

	// Location retrieves a single payee location by ID
	Location(ctx context.Context, budgetID, payeeLocationID string) (*PayeeLocation, error)

	// LocationsByPayee retrieves all locations of one payee
	LocationsByPayee(ctx context.Context, budgetID, payeeID string) ([]PayeeLocation, error)
}

// TransactionService handles all transaction-related operations
type TransactionService interface {
	// List retrieves transactions with optional filters
	List(ctx context.Context, budgetID string, filter *TransactionFilter) (*TransactionsResult, error)

	// Get retrieves a single transaction by ID
	Get(ctx context.Context, budgetID, transactionID string) (*Transaction, error)

	// Create creates a new transaction
	Create(ctx context.Context, budgetID string, params *SaveTransactionParams) (*CreateTransactionResult, error)

	// Update applies a partial update to a transaction
	Update(ctx context.Context, budgetID, transactionID string, params *SaveTransactionParams) (*Transaction, error)

	// Delete deletes a transaction and returns its final state
	Delete(ctx context.Context, budgetID, transactionID string) (*Transaction, error)

	// Import triggers an import from linked accounts and returns the
	// imported transaction IDs
	Import(ctx context.Context, budgetID string) ([]string, error)
}

// UserService handles the authenticated user resource
type UserService interface {
	// Get retrieves the authenticated user
	Get(ctx context.Context) (*User, error)
}
