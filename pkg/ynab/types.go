package ynab

import "time"

// Account is an account within a budget. Balances are milliunits.
type Account struct {
	ID                  string      `json:"id"`
	Name                string      `json:"name"`
	Type                AccountType `json:"type"`
	OnBudget            bool        `json:"on_budget"`
	Closed              bool        `json:"closed"`
	Note                *string     `json:"note"`
	Balance             Milliunits  `json:"balance"`
	ClearedBalance      Milliunits  `json:"cleared_balance"`
	UnclearedBalance    Milliunits  `json:"uncleared_balance"`
	TransferPayeeID     *string     `json:"transfer_payee_id"`
	DirectImportLinked  bool        `json:"direct_import_linked"`
	DirectImportInError bool        `json:"direct_import_in_error"`
	Deleted             bool        `json:"deleted"`
}

// Category is a budget category. Monetary amounts are milliunits.
type Category struct {
	ID                     string      `json:"id"`
	CategoryGroupID        string      `json:"category_group_id"`
	CategoryGroupName      string      `json:"category_group_name,omitempty"`
	Name                   string      `json:"name"`
	Hidden                 bool        `json:"hidden"`
	Note                   *string     `json:"note"`
	Budgeted               Milliunits  `json:"budgeted"`
	Activity               Milliunits  `json:"activity"`
	Balance                Milliunits  `json:"balance"`
	GoalType               *string     `json:"goal_type"`
	GoalCreationMonth      *string     `json:"goal_creation_month"`
	GoalTarget             *Milliunits `json:"goal_target"`
	GoalTargetMonth        *string     `json:"goal_target_month"`
	GoalPercentageComplete *int        `json:"goal_percentage_complete"`
	Deleted                bool        `json:"deleted"`
}

// CategoryGroup is a named ordered collection of categories.
type CategoryGroup struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Hidden     bool       `json:"hidden"`
	Deleted    bool       `json:"deleted"`
	Categories []Category `json:"categories"`
}

// Payee is a transaction counterparty.
type Payee struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	TransferAccountID *string `json:"transfer_account_id"`
	Deleted           bool    `json:"deleted"`
}

// PayeeLocation ties a payee to a geographic point. The API transmits
// coordinates as decimal strings.
type PayeeLocation struct {
	ID        string `json:"id"`
	PayeeID   string `json:"payee_id"`
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
	Deleted   bool   `json:"deleted"`
}

// SubTransaction is one leg of a split transaction.
type SubTransaction struct {
	ID                string     `json:"id"`
	TransactionID     string     `json:"transaction_id"`
	Amount            Milliunits `json:"amount"`
	Memo              *string    `json:"memo"`
	PayeeID           *string    `json:"payee_id"`
	PayeeName         *string    `json:"payee_name"`
	CategoryID        *string    `json:"category_id"`
	CategoryName      *string    `json:"category_name"`
	TransferAccountID *string    `json:"transfer_account_id"`
	Deleted           bool       `json:"deleted"`
}

// Transaction is a dated movement of money on an account. Dates cross the
// wire as YYYY-MM-DD strings.
type Transaction struct {
	ID                string           `json:"id"`
	Date              string           `json:"date"`
	Amount            Milliunits       `json:"amount"`
	Memo              *string          `json:"memo"`
	Cleared           ClearedStatus    `json:"cleared"`
	Approved          bool             `json:"approved"`
	FlagColor         *FlagColor       `json:"flag_color"`
	AccountID         string           `json:"account_id"`
	AccountName       string           `json:"account_name,omitempty"`
	PayeeID           *string          `json:"payee_id"`
	PayeeName         *string          `json:"payee_name"`
	CategoryID        *string          `json:"category_id"`
	CategoryName      *string          `json:"category_name"`
	TransferAccountID *string          `json:"transfer_account_id"`
	ImportID          *string          `json:"import_id"`
	Deleted           bool             `json:"deleted"`
	Subtransactions   []SubTransaction `json:"subtransactions,omitempty"`
}

// CurrencyFormat describes how a budget renders currency values.
type CurrencyFormat struct {
	ISOCode          string `json:"iso_code"`
	ExampleFormat    string `json:"example_format"`
	DecimalDigits    int    `json:"decimal_digits"`
	DecimalSeparator string `json:"decimal_separator"`
	SymbolFirst      bool   `json:"symbol_first"`
	GroupSeparator   string `json:"group_separator"`
	CurrencySymbol   string `json:"currency_symbol"`
	DisplaySymbol    bool   `json:"display_symbol"`
}

// DateFormat describes how a budget renders dates.
type DateFormat struct {
	Format string `json:"format"`
}

// BudgetSummary is the list-level view of a budget. Accounts is populated
// only when the list call asks for it.
type BudgetSummary struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	LastModifiedOn *time.Time      `json:"last_modified_on"`
	FirstMonth     string          `json:"first_month,omitempty"`
	LastMonth      string          `json:"last_month,omitempty"`
	DateFormat     *DateFormat     `json:"date_format"`
	CurrencyFormat *CurrencyFormat `json:"currency_format"`
	Accounts       []Account       `json:"accounts,omitempty"`
}

// Month is one budget month. Monetary amounts are milliunits.
type Month struct {
	Month        string     `json:"month"`
	Income       Milliunits `json:"income"`
	Budgeted     Milliunits `json:"budgeted"`
	Activity     Milliunits `json:"activity"`
	ToBeBudgeted Milliunits `json:"to_be_budgeted"`
	AgeOfMoney   *int       `json:"age_of_money"`
	Deleted      bool       `json:"deleted"`
	Categories   []Category `json:"categories,omitempty"`
}

// BudgetDetail is the fully expanded view of a budget.
type BudgetDetail struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	LastModifiedOn *time.Time      `json:"last_modified_on"`
	FirstMonth     string          `json:"first_month,omitempty"`
	LastMonth      string          `json:"last_month,omitempty"`
	DateFormat     *DateFormat     `json:"date_format"`
	CurrencyFormat *CurrencyFormat `json:"currency_format"`
	Accounts       []Account       `json:"accounts,omitempty"`
	Payees         []Payee         `json:"payees,omitempty"`
	CategoryGroups []CategoryGroup `json:"category_groups,omitempty"`
	Months         []Month         `json:"months,omitempty"`
}

// BudgetSettings holds a budget's display settings.
type BudgetSettings struct {
	DateFormat     *DateFormat     `json:"date_format"`
	CurrencyFormat *CurrencyFormat `json:"currency_format"`
}

// User is the authenticated YNAB user.
type User struct {
	ID   string  `json:"id"`
	Name *string `json:"name,omitempty"`
}
