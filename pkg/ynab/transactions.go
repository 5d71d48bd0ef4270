package ynab

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/pkg/errors"
)

// transactionService implements the TransactionService interface
type transactionService struct {
	client *Client
}

// List retrieves transactions with optional filters
func (s *transactionService) List(ctx context.Context, budgetID string, filter *TransactionFilter) (*TransactionsResult, error) {
	var query url.Values
	if filter != nil {
		query = url.Values{}
		if filter.SinceDate != "" {
			query.Set("since_date", filter.SinceDate)
		}
		if filter.Type != "" {
			query.Set("type", filter.Type)
		}
		if filter.LastKnowledge != nil {
			query.Set("last_knowledge_of_server", strconv.FormatInt(*filter.LastKnowledge, 10))
		}
	}

	var result TransactionsResult
	path := fmt.Sprintf("/budgets/%s/transactions", budgetID)
	if err := s.client.do(ctx, http.MethodGet, path, query, nil, &result); err != nil {
		return nil, errors.Wrap(err, "failed to get transactions")
	}

	return &result, nil
}

// Get retrieves a single transaction by ID
func (s *transactionService) Get(ctx context.Context, budgetID, transactionID string) (*Transaction, error) {
	var result struct {
		Transaction Transaction `json:"transaction"`
	}

	path := fmt.Sprintf("/budgets/%s/transactions/%s", budgetID, transactionID)
	if err := s.client.do(ctx, http.MethodGet, path, nil, nil, &result); err != nil {
		return nil, errors.Wrap(err, "failed to get transaction")
	}

	return &result.Transaction, nil
}

// Create creates a new transaction. The API reports duplicate import IDs
// as a success without a transaction body.
func (s *transactionService) Create(ctx context.Context, budgetID string, params *SaveTransactionParams) (*CreateTransactionResult, error) {
	body := map[string]interface{}{
		"transaction": params,
	}

	var result CreateTransactionResult
	path := fmt.Sprintf("/budgets/%s/transactions", budgetID)
	if err := s.client.do(ctx, http.MethodPost, path, nil, body, &result); err != nil {
		return nil, errors.Wrap(err, "failed to create transaction")
	}

	return &result, nil
}

// Update applies a partial update to a transaction
func (s *transactionService) Update(ctx context.Context, budgetID, transactionID string, params *SaveTransactionParams) (*Transaction, error) {
	body := map[string]interface{}{
		"transaction": params,
	}

	var result struct {
		Transaction Transaction `json:"transaction"`
	}

	path := fmt.Sprintf("/budgets/%s/transactions/%s", budgetID, transactionID)
	if err := s.client.do(ctx, http.MethodPut, path, nil, body, &result); err != nil {
		return nil, errors.Wrap(err, "failed to update transaction")
	}

	return &result.Transaction, nil
}

// Delete deletes a transaction and returns its final state
func (s *transactionService) Delete(ctx context.Context, budgetID, transactionID string) (*Transaction, error) {
	var result struct {
		Transaction Transaction `json:"transaction"`
	}

	path := fmt.Sprintf("/budgets/%s/transactions/%s", budgetID, transactionID)
	if err := s.client.do(ctx, http.MethodDelete, path, nil, nil, &result); err != nil {
		return nil, errors.Wrap(err, "failed to delete transaction")
	}

	return &result.Transaction, nil
}

// Import triggers an import from linked accounts
func (s *transactionService) Import(ctx context.Context, budgetID string) ([]string, error) {
	var result struct {
		TransactionIDs []string `json:"transaction_ids"`
	}

	path := fmt.Sprintf("/budgets/%s/transactions/import", budgetID)
	if err := s.client.do(ctx, http.MethodPost, path, nil, nil, &result); err != nil {
		return nil, errors.Wrap(err, "failed to import transactions")
	}

	return result.TransactionIDs, nil
}
