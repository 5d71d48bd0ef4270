package ynab

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/pkg/errors"
)

// accountService implements the AccountService interface
type accountService struct {
	client *Client
}

// List retrieves all accounts for a budget
func (s *accountService) List(ctx context.Context, budgetID string, lastKnowledge *int64) (*AccountsResult, error) {
	var query url.Values
	if lastKnowledge != nil {
		query = url.Values{}
		query.Set("last_knowledge_of_server", strconv.FormatInt(*lastKnowledge, 10))
	}

	var result AccountsResult
	path := fmt.Sprintf("/budgets/%s/accounts", budgetID)
	if err := s.client.do(ctx, http.MethodGet, path, query, nil, &result); err != nil {
		return nil, errors.Wrap(err, "failed to get accounts")
	}

	return &result, nil
}

// Get retrieves a single account by ID
func (s *accountService) Get(ctx context.Context, budgetID, accountID string) (*Account, error) {
	var result struct {
		Account Account `json:"account"`
	}

	path := fmt.Sprintf("/budgets/%s/accounts/%s", budgetID, accountID)
	if err := s.client.do(ctx, http.MethodGet, path, nil, nil, &result); err != nil {
		return nil, errors.Wrap(err, "failed to get account")
	}

	return &result.Account, nil
}

// Create creates a new account
func (s *accountService) Create(ctx context.Context, budgetID string, params *CreateAccountParams) (*Account, error) {
	body := map[string]interface{}{
		"account": params,
	}

	var result struct {
		Account Account `json:"account"`
	}

	path := fmt.Sprintf("/budgets/%s/accounts", budgetID)
	if err := s.client.do(ctx, http.MethodPost, path, nil, body, &result); err != nil {
		return nil, errors.Wrap(err, "failed to create account")
	}

	return &result.Account, nil
}
