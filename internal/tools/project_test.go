package tools

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EdgeCaseLabs/ynab-mcp/pkg/ynab"
)

func TestProjectAccount_FormatsBalances(t *testing.T) {
	account := ynab.Account{
		ID:               "acc-1",
		Name:             "Checking",
		Type:             ynab.AccountTypeChecking,
		OnBudget:         true,
		Balance:          10500,
		ClearedBalance:   -10500,
		UnclearedBalance: 0,
	}

	view := projectAccount(&account)

	assert.Equal(t, "$10.50", view.BalanceFormatted)
	assert.Equal(t, "$-10.50", view.ClearedBalanceFormatted)
	assert.Equal(t, "$0.00", view.UnclearedBalanceFormatted)
	assert.Equal(t, ynab.Milliunits(10500), view.Balance)
}

func TestProjectCategory_OptionalGoalTarget(t *testing.T) {
	category := ynab.Category{ID: "cat-1", Name: "Groceries", Budgeted: 100500}

	view := projectCategory(&category)
	assert.Nil(t, view.GoalTarget)
	assert.Nil(t, view.GoalTargetFormatted)
	assert.Equal(t, "$100.50", view.BudgetedFormatted)

	target := ynab.Milliunits(250000)
	category.GoalTarget = &target
	view = projectCategory(&category)
	require.NotNil(t, view.GoalTargetFormatted)
	assert.Equal(t, "$250.00", *view.GoalTargetFormatted)
}

func TestProjectCategoryGroups_PreservesOrder(t *testing.T) {
	groups := []ynab.CategoryGroup{
		{ID: "g1", Name: "Bills", Categories: []ynab.Category{{ID: "c1"}, {ID: "c2"}}},
		{ID: "g2", Name: "Fun", Categories: []ynab.Category{{ID: "c3"}}},
	}

	views := projectCategoryGroups(groups)
	require.Len(t, views, 2)
	assert.Equal(t, "g1", views[0].ID)
	require.Len(t, views[0].Categories, 2)
	assert.Equal(t, "c1", views[0].Categories[0].ID)
	assert.Equal(t, "c2", views[0].Categories[1].ID)
	assert.Equal(t, "c3", views[1].Categories[0].ID)
}

func TestProjectTransaction_IncludesSubtransactions(t *testing.T) {
	memo := "split"
	tx := ynab.Transaction{
		ID:     "txn-1",
		Date:   "2024-03-15",
		Amount: -25000,
		Subtransactions: []ynab.SubTransaction{
			{ID: "sub-1", TransactionID: "txn-1", Amount: -10000, Memo: &memo},
			{ID: "sub-2", TransactionID: "txn-1", Amount: -15000},
		},
	}

	view := projectTransaction(&tx)
	assert.Equal(t, "$-25.00", view.AmountFormatted)
	require.Len(t, view.Subtransactions, 2)
	assert.Equal(t, "$-10.00", view.Subtransactions[0].AmountFormatted)
	assert.Equal(t, "$-15.00", view.Subtransactions[1].AmountFormatted)
}

func TestProjectBudgetDetail_FormatsTimestampAndMonths(t *testing.T) {
	modified := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	budget := ynab.BudgetDetail{
		ID:             "budget-1",
		Name:           "My Budget",
		LastModifiedOn: &modified,
		Months: []ynab.Month{
			{Month: "2024-03-01", Income: 500000, Budgeted: 450000, Activity: -200000, ToBeBudgeted: 50000},
		},
	}

	view := projectBudgetDetail(&budget, 42)
	require.NotNil(t, view.LastModifiedOn)
	assert.Equal(t, "2024-03-15T10:30:00Z", *view.LastModifiedOn)
	assert.Equal(t, int64(42), view.ServerKnowledge)
	require.Len(t, view.Months, 1)
	assert.Equal(t, "$500.00", view.Months[0].IncomeFormatted)
	assert.Equal(t, "$50.00", view.Months[0].ToBeBudgetedFormatted)
}

func TestProjection_Idempotent(t *testing.T) {
	note := "shared"
	account := ynab.Account{ID: "acc-1", Name: "Savings", Balance: 123456, Note: &note}

	first, err := json.Marshal(projectAccount(&account))
	require.NoError(t, err)
	second, err := json.Marshal(projectAccount(&account))
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}
