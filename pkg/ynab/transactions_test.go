package ynab

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTransactionService_List_WithFilters(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	mockResponse := `{
		"transactions": [
			{
				"id": "txn-1",
				"date": "2024-03-15",
				"amount": -10500,
				"memo": "coffee",
				"cleared": "cleared",
				"approved": true,
				"account_id": "acc-1",
				"account_name": "Checking",
				"deleted": false
			}
		],
		"server_knowledge": 12
	}`

	mockTransport.On("Do",
		mock.Anything,
		http.MethodGet,
		"/budgets/b1/transactions",
		mock.MatchedBy(func(query url.Values) bool {
			return query.Get("since_date") == "2024-03-01" &&
				query.Get("type") == "unapproved" &&
				query.Get("last_knowledge_of_server") == "10"
		}),
		nil,
		mock.Anything,
	).Return(mockResponse, nil)

	lastKnowledge := int64(10)
	result, err := client.Transactions.List(context.Background(), "b1", &TransactionFilter{
		SinceDate:     "2024-03-01",
		Type:          "unapproved",
		LastKnowledge: &lastKnowledge,
	})

	require.NoError(t, err)
	assert.Len(t, result.Transactions, 1)
	assert.Equal(t, "txn-1", result.Transactions[0].ID)
	assert.Equal(t, Milliunits(-10500), result.Transactions[0].Amount)
	assert.Equal(t, ClearedStatusCleared, result.Transactions[0].Cleared)
	assert.Equal(t, int64(12), result.ServerKnowledge)

	mockTransport.AssertExpectations(t)
}

func TestTransactionService_Create(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	mockResponse := `{
		"transaction": {
			"id": "txn-new",
			"date": "2024-03-15",
			"amount": -10500,
			"cleared": "uncleared",
			"approved": false,
			"account_id": "acc-1",
			"payee_name": "Blue Bottle Coffee"
		},
		"transaction_ids": ["txn-new"],
		"server_knowledge": 13
	}`

	mockTransport.On("Do",
		mock.Anything,
		http.MethodPost,
		"/budgets/b1/transactions",
		mock.Anything,
		mock.Anything,
		mock.Anything,
	).Return(mockResponse, nil)

	amount := Milliunits(-10500)
	payeeName := "Blue Bottle Coffee"
	result, err := client.Transactions.Create(context.Background(), "b1", &SaveTransactionParams{
		AccountID: "acc-1",
		Date:      "2024-03-15",
		Amount:    &amount,
		PayeeName: &payeeName,
		Cleared:   ClearedStatusUncleared,
	})

	require.NoError(t, err)
	require.NotNil(t, result.Transaction)
	assert.Equal(t, "txn-new", result.Transaction.ID)
	assert.Empty(t, result.DuplicateImportIDs)

	mockTransport.AssertExpectations(t)
}

func TestTransactionService_Create_DuplicateImportIDs(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	// Partial success: no transaction body, only the duplicate list.
	mockResponse := `{
		"transaction": null,
		"duplicate_import_ids": ["YNAB:-10500:2024-03-15:1"],
		"server_knowledge": 14
	}`

	mockTransport.On("Do",
		mock.Anything,
		http.MethodPost,
		"/budgets/b1/transactions",
		mock.Anything,
		mock.Anything,
		mock.Anything,
	).Return(mockResponse, nil)

	amount := Milliunits(-10500)
	importID := "YNAB:-10500:2024-03-15:1"
	result, err := client.Transactions.Create(context.Background(), "b1", &SaveTransactionParams{
		AccountID: "acc-1",
		Date:      "2024-03-15",
		Amount:    &amount,
		ImportID:  &importID,
	})

	require.NoError(t, err)
	assert.Nil(t, result.Transaction)
	assert.Equal(t, []string{"YNAB:-10500:2024-03-15:1"}, result.DuplicateImportIDs)

	mockTransport.AssertExpectations(t)
}

func TestTransactionService_Delete(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	mockResponse := `{
		"transaction": {
			"id": "txn-1",
			"date": "2024-03-15",
			"amount": -10500,
			"cleared": "cleared",
			"account_id": "acc-1",
			"deleted": true
		}
	}`

	mockTransport.On("Do",
		mock.Anything,
		http.MethodDelete,
		"/budgets/b1/transactions/txn-1",
		mock.Anything,
		nil,
		mock.Anything,
	).Return(mockResponse, nil)

	txn, err := client.Transactions.Delete(context.Background(), "b1", "txn-1")

	require.NoError(t, err)
	assert.Equal(t, "txn-1", txn.ID)
	assert.True(t, txn.Deleted)

	mockTransport.AssertExpectations(t)
}

func TestTransactionService_Import(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	mockResponse := `{"transaction_ids": ["txn-1", "txn-2", "txn-3"]}`

	mockTransport.On("Do",
		mock.Anything,
		http.MethodPost,
		"/budgets/b1/transactions/import",
		mock.Anything,
		nil,
		mock.Anything,
	).Return(mockResponse, nil)

	ids, err := client.Transactions.Import(context.Background(), "b1")

	require.NoError(t, err)
	assert.Len(t, ids, 3)

	mockTransport.AssertExpectations(t)
}
