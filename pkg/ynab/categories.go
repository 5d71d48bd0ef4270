package ynab

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/pkg/errors"
)

// categoryService implements the CategoryService interface
type categoryService struct {
	client *Client
}

// List retrieves categories grouped by category group
func (s *categoryService) List(ctx context.Context, budgetID string, lastKnowledge *int64) (*CategoriesResult, error) {
	var query url.Values
	if lastKnowledge != nil {
		query = url.Values{}
		query.Set("last_knowledge_of_server", strconv.FormatInt(*lastKnowledge, 10))
	}

	var result CategoriesResult
	path := fmt.Sprintf("/budgets/%s/categories", budgetID)
	if err := s.client.do(ctx, http.MethodGet, path, query, nil, &result); err != nil {
		return nil, errors.Wrap(err, "failed to get categories")
	}

	return &result, nil
}

// Get retrieves a single category by ID
func (s *categoryService) Get(ctx context.Context, budgetID, categoryID string) (*Category, error) {
	var result struct {
		Category Category `json:"category"`
	}

	path := fmt.Sprintf("/budgets/%s/categories/%s", budgetID, categoryID)
	if err := s.client.do(ctx, http.MethodGet, path, nil, nil, &result); err != nil {
		return nil, errors.Wrap(err, "failed to get category")
	}

	return &result.Category, nil
}

// GetMonth retrieves a category as of a specific month
func (s *categoryService) GetMonth(ctx context.Context, budgetID, month, categoryID string) (*Category, error) {
	var result struct {
		Category Category `json:"category"`
	}

	path := fmt.Sprintf("/budgets/%s/months/%s/categories/%s", budgetID, month, categoryID)
	if err := s.client.do(ctx, http.MethodGet, path, nil, nil, &result); err != nil {
		return nil, errors.Wrap(err, "failed to get month category")
	}

	return &result.Category, nil
}

// Update applies a partial update to a category
func (s *categoryService) Update(ctx context.Context, budgetID, categoryID string, params *UpdateCategoryParams) (*Category, error) {
	body := map[string]interface{}{
		"category": params,
	}

	var result struct {
		Category Category `json:"category"`
	}

	path := fmt.Sprintf("/budgets/%s/categories/%s", budgetID, categoryID)
	if err := s.client.do(ctx, http.MethodPatch, path, nil, body, &result); err != nil {
		return nil, errors.Wrap(err, "failed to update category")
	}

	return &result.Category, nil
}

// UpdateMonth sets the budgeted amount of a category for one month
func (s *categoryService) UpdateMonth(ctx context.Context, budgetID, month, categoryID string, budgeted Milliunits) (*Category, error) {
	body := map[string]interface{}{
		"category": map[string]interface{}{
			"budgeted": budgeted,
		},
	}

	var result struct {
		Category Category `json:"category"`
	}

	path := fmt.Sprintf("/budgets/%s/months/%s/categories/%s", budgetID, month, categoryID)
	if err := s.client.do(ctx, http.MethodPatch, path, nil, body, &result); err != nil {
		return nil, errors.Wrap(err, "failed to update month category")
	}

	return &result.Category, nil
}
