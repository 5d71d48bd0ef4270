package tools

import (
	"time"

	"github.com/EdgeCaseLabs/ynab-mcp/pkg/ynab"
)

// Projection views: one plain record per entity kind, mirroring the API
// shapes with a "<field>_formatted" companion for every monetary field.
// Projections are pure; the same response always yields the same view,
// and list and by-ID paths share the same mapping.

type accountView struct {
	ID                         string           `json:"id"`
	Name                       string           `json:"name"`
	Type                       ynab.AccountType `json:"type"`
	OnBudget                   bool             `json:"on_budget"`
	Closed                     bool             `json:"closed"`
	Note                       *string          `json:"note"`
	Balance                    ynab.Milliunits  `json:"balance"`
	BalanceFormatted           string           `json:"balance_formatted"`
	ClearedBalance             ynab.Milliunits  `json:"cleared_balance"`
	ClearedBalanceFormatted    string           `json:"cleared_balance_formatted"`
	UnclearedBalance           ynab.Milliunits  `json:"uncleared_balance"`
	UnclearedBalanceFormatted  string           `json:"uncleared_balance_formatted"`
	TransferPayeeID            *string          `json:"transfer_payee_id"`
	DirectImportLinked         bool             `json:"direct_import_linked"`
	DirectImportInError        bool             `json:"direct_import_in_error"`
	Deleted                    bool             `json:"deleted"`
}

func projectAccount(a *ynab.Account) accountView {
	return accountView{
		ID:                        a.ID,
		Name:                      a.Name,
		Type:                      a.Type,
		OnBudget:                  a.OnBudget,
		Closed:                    a.Closed,
		Note:                      a.Note,
		Balance:                   a.Balance,
		BalanceFormatted:          a.Balance.Format(),
		ClearedBalance:            a.ClearedBalance,
		ClearedBalanceFormatted:   a.ClearedBalance.Format(),
		UnclearedBalance:          a.UnclearedBalance,
		UnclearedBalanceFormatted: a.UnclearedBalance.Format(),
		TransferPayeeID:           a.TransferPayeeID,
		DirectImportLinked:        a.DirectImportLinked,
		DirectImportInError:       a.DirectImportInError,
		Deleted:                   a.Deleted,
	}
}

func projectAccounts(accounts []ynab.Account) []accountView {
	views := make([]accountView, 0, len(accounts))
	for i := range accounts {
		views = append(views, projectAccount(&accounts[i]))
	}
	return views
}

type categoryView struct {
	ID                     string           `json:"id"`
	CategoryGroupID        string           `json:"category_group_id"`
	CategoryGroupName      string           `json:"category_group_name,omitempty"`
	Name                   string           `json:"name"`
	Hidden                 bool             `json:"hidden"`
	Note                   *string          `json:"note"`
	Budgeted               ynab.Milliunits  `json:"budgeted"`
	BudgetedFormatted      string           `json:"budgeted_formatted"`
	Activity               ynab.Milliunits  `json:"activity"`
	ActivityFormatted      string           `json:"activity_formatted"`
	Balance                ynab.Milliunits  `json:"balance"`
	BalanceFormatted       string           `json:"balance_formatted"`
	GoalType               *string          `json:"goal_type"`
	GoalCreationMonth      *string          `json:"goal_creation_month"`
	GoalTarget             *ynab.Milliunits `json:"goal_target"`
	GoalTargetFormatted    *string          `json:"goal_target_formatted"`
	GoalTargetMonth        *string          `json:"goal_target_month"`
	GoalPercentageComplete *int             `json:"goal_percentage_complete"`
	Deleted                bool             `json:"deleted"`
}

func projectCategory(c *ynab.Category) categoryView {
	return categoryView{
		ID:                     c.ID,
		CategoryGroupID:        c.CategoryGroupID,
		CategoryGroupName:      c.CategoryGroupName,
		Name:                   c.Name,
		Hidden:                 c.Hidden,
		Note:                   c.Note,
		Budgeted:               c.Budgeted,
		BudgetedFormatted:      c.Budgeted.Format(),
		Activity:               c.Activity,
		ActivityFormatted:      c.Activity.Format(),
		Balance:                c.Balance,
		BalanceFormatted:       c.Balance.Format(),
		GoalType:               c.GoalType,
		GoalCreationMonth:      c.GoalCreationMonth,
		GoalTarget:             c.GoalTarget,
		GoalTargetFormatted:    formatOptional(c.GoalTarget),
		GoalTargetMonth:        c.GoalTargetMonth,
		GoalPercentageComplete: c.GoalPercentageComplete,
		Deleted:                c.Deleted,
	}
}

func projectCategories(categories []ynab.Category) []categoryView {
	views := make([]categoryView, 0, len(categories))
	for i := range categories {
		views = append(views, projectCategory(&categories[i]))
	}
	return views
}

type categoryGroupView struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Hidden     bool           `json:"hidden"`
	Deleted    bool           `json:"deleted"`
	Categories []categoryView `json:"categories"`
}

func projectCategoryGroup(g *ynab.CategoryGroup) categoryGroupView {
	return categoryGroupView{
		ID:         g.ID,
		Name:       g.Name,
		Hidden:     g.Hidden,
		Deleted:    g.Deleted,
		Categories: projectCategories(g.Categories),
	}
}

func projectCategoryGroups(groups []ynab.CategoryGroup) []categoryGroupView {
	views := make([]categoryGroupView, 0, len(groups))
	for i := range groups {
		views = append(views, projectCategoryGroup(&groups[i]))
	}
	return views
}

type payeeView struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	TransferAccountID *string `json:"transfer_account_id"`
	Deleted           bool    `json:"deleted"`
}

func projectPayee(p *ynab.Payee) payeeView {
	return payeeView{
		ID:                p.ID,
		Name:              p.Name,
		TransferAccountID: p.TransferAccountID,
		Deleted:           p.Deleted,
	}
}

func projectPayees(payees []ynab.Payee) []payeeView {
	views := make([]payeeView, 0, len(payees))
	for i := range payees {
		views = append(views, projectPayee(&payees[i]))
	}
	return views
}

type payeeLocationView struct {
	ID        string `json:"id"`
	PayeeID   string `json:"payee_id"`
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
	Deleted   bool   `json:"deleted"`
}

func projectPayeeLocation(l *ynab.PayeeLocation) payeeLocationView {
	return payeeLocationView{
		ID:        l.ID,
		PayeeID:   l.PayeeID,
		Latitude:  l.Latitude,
		Longitude: l.Longitude,
		Deleted:   l.Deleted,
	}
}

func projectPayeeLocations(locations []ynab.PayeeLocation) []payeeLocationView {
	views := make([]payeeLocationView, 0, len(locations))
	for i := range locations {
		views = append(views, projectPayeeLocation(&locations[i]))
	}
	return views
}

type subTransactionView struct {
	ID                string          `json:"id"`
	TransactionID     string          `json:"transaction_id"`
	Amount            ynab.Milliunits `json:"amount"`
	AmountFormatted   string          `json:"amount_formatted"`
	Memo              *string         `json:"memo"`
	PayeeID           *string         `json:"payee_id"`
	PayeeName         *string         `json:"payee_name"`
	CategoryID        *string         `json:"category_id"`
	CategoryName      *string         `json:"category_name"`
	TransferAccountID *string         `json:"transfer_account_id"`
	Deleted           bool            `json:"deleted"`
}

func projectSubTransaction(s *ynab.SubTransaction) subTransactionView {
	return subTransactionView{
		ID:                s.ID,
		TransactionID:     s.TransactionID,
		Amount:            s.Amount,
		AmountFormatted:   s.Amount.Format(),
		Memo:              s.Memo,
		PayeeID:           s.PayeeID,
		PayeeName:         s.PayeeName,
		CategoryID:        s.CategoryID,
		CategoryName:      s.CategoryName,
		TransferAccountID: s.TransferAccountID,
		Deleted:           s.Deleted,
	}
}

type transactionView struct {
	ID                string               `json:"id"`
	Date              string               `json:"date"`
	Amount            ynab.Milliunits      `json:"amount"`
	AmountFormatted   string               `json:"amount_formatted"`
	Memo              *string              `json:"memo"`
	Cleared           ynab.ClearedStatus   `json:"cleared"`
	Approved          bool                 `json:"approved"`
	FlagColor         *ynab.FlagColor      `json:"flag_color"`
	AccountID         string               `json:"account_id"`
	AccountName       string               `json:"account_name,omitempty"`
	PayeeID           *string              `json:"payee_id"`
	PayeeName         *string              `json:"payee_name"`
	CategoryID        *string              `json:"category_id"`
	CategoryName      *string              `json:"category_name"`
	TransferAccountID *string              `json:"transfer_account_id"`
	ImportID          *string              `json:"import_id"`
	Deleted           bool                 `json:"deleted"`
	Subtransactions   []subTransactionView `json:"subtransactions"`
}

func projectTransaction(tx *ynab.Transaction) transactionView {
	subs := make([]subTransactionView, 0, len(tx.Subtransactions))
	for i := range tx.Subtransactions {
		subs = append(subs, projectSubTransaction(&tx.Subtransactions[i]))
	}
	return transactionView{
		ID:                tx.ID,
		Date:              tx.Date,
		Amount:            tx.Amount,
		AmountFormatted:   tx.Amount.Format(),
		Memo:              tx.Memo,
		Cleared:           tx.Cleared,
		Approved:          tx.Approved,
		FlagColor:         tx.FlagColor,
		AccountID:         tx.AccountID,
		AccountName:       tx.AccountName,
		PayeeID:           tx.PayeeID,
		PayeeName:         tx.PayeeName,
		CategoryID:        tx.CategoryID,
		CategoryName:      tx.CategoryName,
		TransferAccountID: tx.TransferAccountID,
		ImportID:          tx.ImportID,
		Deleted:           tx.Deleted,
		Subtransactions:   subs,
	}
}

func projectTransactions(transactions []ynab.Transaction) []transactionView {
	views := make([]transactionView, 0, len(transactions))
	for i := range transactions {
		views = append(views, projectTransaction(&transactions[i]))
	}
	return views
}

type monthView struct {
	Month                  string          `json:"month"`
	Income                 ynab.Milliunits `json:"income"`
	IncomeFormatted        string          `json:"income_formatted"`
	Budgeted               ynab.Milliunits `json:"budgeted"`
	BudgetedFormatted      string          `json:"budgeted_formatted"`
	Activity               ynab.Milliunits `json:"activity"`
	ActivityFormatted      string          `json:"activity_formatted"`
	ToBeBudgeted           ynab.Milliunits `json:"to_be_budgeted"`
	ToBeBudgetedFormatted  string          `json:"to_be_budgeted_formatted"`
	AgeOfMoney             *int            `json:"age_of_money"`
	Deleted                bool            `json:"deleted"`
	Categories             []categoryView  `json:"categories,omitempty"`
}

func projectMonth(m *ynab.Month) monthView {
	view := monthView{
		Month:                 m.Month,
		Income:                m.Income,
		IncomeFormatted:       m.Income.Format(),
		Budgeted:              m.Budgeted,
		BudgetedFormatted:     m.Budgeted.Format(),
		Activity:              m.Activity,
		ActivityFormatted:     m.Activity.Format(),
		ToBeBudgeted:          m.ToBeBudgeted,
		ToBeBudgetedFormatted: m.ToBeBudgeted.Format(),
		AgeOfMoney:            m.AgeOfMoney,
		Deleted:               m.Deleted,
	}
	if len(m.Categories) > 0 {
		view.Categories = projectCategories(m.Categories)
	}
	return view
}

type budgetSummaryView struct {
	ID             string               `json:"id"`
	Name           string               `json:"name"`
	LastModifiedOn *string              `json:"last_modified_on"`
	FirstMonth     string               `json:"first_month,omitempty"`
	LastMonth      string               `json:"last_month,omitempty"`
	DateFormat     *ynab.DateFormat     `json:"date_format"`
	CurrencyFormat *ynab.CurrencyFormat `json:"currency_format"`
	Accounts       []accountView        `json:"accounts,omitempty"`
}

func projectBudgetSummary(b *ynab.BudgetSummary, includeAccounts bool) budgetSummaryView {
	view := budgetSummaryView{
		ID:             b.ID,
		Name:           b.Name,
		LastModifiedOn: formatTimestamp(b.LastModifiedOn),
		FirstMonth:     b.FirstMonth,
		LastMonth:      b.LastMonth,
		DateFormat:     b.DateFormat,
		CurrencyFormat: b.CurrencyFormat,
	}
	if includeAccounts && len(b.Accounts) > 0 {
		view.Accounts = projectAccounts(b.Accounts)
	}
	return view
}

type budgetDetailView struct {
	ID              string               `json:"id"`
	Name            string               `json:"name"`
	LastModifiedOn  *string              `json:"last_modified_on"`
	FirstMonth      string               `json:"first_month,omitempty"`
	LastMonth       string               `json:"last_month,omitempty"`
	DateFormat      *ynab.DateFormat     `json:"date_format"`
	CurrencyFormat  *ynab.CurrencyFormat `json:"currency_format"`
	Accounts        []accountView        `json:"accounts,omitempty"`
	Payees          []payeeView          `json:"payees,omitempty"`
	CategoryGroups  []categoryGroupView  `json:"category_groups,omitempty"`
	Months          []monthView          `json:"months,omitempty"`
	ServerKnowledge int64                `json:"server_knowledge"`
}

func projectBudgetDetail(b *ynab.BudgetDetail, serverKnowledge int64) budgetDetailView {
	view := budgetDetailView{
		ID:              b.ID,
		Name:            b.Name,
		LastModifiedOn:  formatTimestamp(b.LastModifiedOn),
		FirstMonth:      b.FirstMonth,
		LastMonth:       b.LastMonth,
		DateFormat:      b.DateFormat,
		CurrencyFormat:  b.CurrencyFormat,
		ServerKnowledge: serverKnowledge,
	}
	if len(b.Accounts) > 0 {
		view.Accounts = projectAccounts(b.Accounts)
	}
	if len(b.Payees) > 0 {
		view.Payees = projectPayees(b.Payees)
	}
	if len(b.CategoryGroups) > 0 {
		view.CategoryGroups = projectCategoryGroups(b.CategoryGroups)
	}
	if len(b.Months) > 0 {
		view.Months = make([]monthView, 0, len(b.Months))
		for i := range b.Months {
			view.Months = append(view.Months, projectMonth(&b.Months[i]))
		}
	}
	return view
}

type userView struct {
	ID   string  `json:"id"`
	Name *string `json:"name"`
}

func projectUser(u *ynab.User) userView {
	return userView{ID: u.ID, Name: u.Name}
}

func formatOptional(m *ynab.Milliunits) *string {
	if m == nil {
		return nil
	}
	s := m.Format()
	return &s
}

func formatTimestamp(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}
