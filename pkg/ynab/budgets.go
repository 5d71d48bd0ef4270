package ynab

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/pkg/errors"
)

// budgetService implements the BudgetService interface
type budgetService struct {
	client *Client
}

// List retrieves budget summaries for the authenticated user
func (s *budgetService) List(ctx context.Context, includeAccounts bool) (*BudgetsResult, error) {
	var query url.Values
	if includeAccounts {
		query = url.Values{}
		query.Set("include_accounts", "true")
	}

	var result BudgetsResult
	if err := s.client.do(ctx, http.MethodGet, "/budgets", query, nil, &result); err != nil {
		return nil, errors.Wrap(err, "failed to get budgets")
	}

	return &result, nil
}

// Get retrieves the full detail of one budget
func (s *budgetService) Get(ctx context.Context, budgetID string, lastKnowledge *int64) (*BudgetDetailResult, error) {
	var query url.Values
	if lastKnowledge != nil {
		query = url.Values{}
		query.Set("last_knowledge_of_server", strconv.FormatInt(*lastKnowledge, 10))
	}

	var result BudgetDetailResult
	path := fmt.Sprintf("/budgets/%s", budgetID)
	if err := s.client.do(ctx, http.MethodGet, path, query, nil, &result); err != nil {
		return nil, errors.Wrap(err, "failed to get budget")
	}

	return &result, nil
}

// GetSettings retrieves display settings for one budget
func (s *budgetService) GetSettings(ctx context.Context, budgetID string) (*BudgetSettings, error) {
	var result struct {
		Settings BudgetSettings `json:"settings"`
	}

	path := fmt.Sprintf("/budgets/%s/settings", budgetID)
	if err := s.client.do(ctx, http.MethodGet, path, nil, nil, &result); err != nil {
		return nil, errors.Wrap(err, "failed to get budget settings")
	}

	return &result.Settings, nil
}
