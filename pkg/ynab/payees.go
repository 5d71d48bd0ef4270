package ynab

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/pkg/errors"
)

// payeeService implements the PayeeService interface
type payeeService struct {
	client *Client
}

// List retrieves all payees for a budget
func (s *payeeService) List(ctx context.Context, budgetID string, lastKnowledge *int64) (*PayeesResult, error) {
	var query url.Values
	if lastKnowledge != nil {
		query = url.Values{}
		query.Set("last_knowledge_of_server", strconv.FormatInt(*lastKnowledge, 10))
	}

	var result PayeesResult
	path := fmt.Sprintf("/budgets/%s/payees", budgetID)
	if err := s.client.do(ctx, http.MethodGet, path, query, nil, &result); err != nil {
		return nil, errors.Wrap(err, "failed to get payees")
	}

	return &result, nil
}

// Get retrieves a single payee by ID
func (s *payeeService) Get(ctx context.Context, budgetID, payeeID string) (*Payee, error) {
	var result struct {
		Payee Payee `json:"payee"`
	}

	path := fmt.Sprintf("/budgets/%s/payees/%s", budgetID, payeeID)
	if err := s.client.do(ctx, http.MethodGet, path, nil, nil, &result); err != nil {
		return nil, errors.Wrap(err, "failed to get payee")
	}

	return &result.Payee, nil
}

// Update renames a payee
func (s *payeeService) Update(ctx context.Context, budgetID, payeeID, name string) (*Payee, error) {
	body := map[string]interface{}{
		"payee": map[string]interface{}{
			"name": name,
		},
	}

	var result struct {
		Payee Payee `json:"payee"`
	}

	path := fmt.Sprintf("/budgets/%s/payees/%s", budgetID, payeeID)
	if err := s.client.do(ctx, http.MethodPatch, path, nil, body, &result); err != nil {
		return nil, errors.Wrap(err, "failed to update payee")
	}

	return &result.Payee, nil
}

// Locations retrieves all payee locations for a budget
func (s *payeeService) Locations(ctx context.Context, budgetID string) ([]PayeeLocation, error) {
	var result struct {
		PayeeLocations []PayeeLocation `json:"payee_locations"`
	}

	path := fmt.Sprintf("/budgets/%s/payee_locations", budgetID)
	if err := s.client.do(ctx, http.MethodGet, path, nil, nil, &result); err != nil {
		return nil, errors.Wrap(err, "failed to get payee locations")
	}

	return result.PayeeLocations, nil
}

// Location retrieves a single payee location by ID
func (s *payeeService) Location(ctx context.Context, budgetID, payeeLocationID string) (*PayeeLocation, error) {
	var result struct {
		PayeeLocation PayeeLocation `json:"payee_location"`
	}

	path := fmt.Sprintf("/budgets/%s/payee_locations/%s", budgetID, payeeLocationID)
	if err := s.client.do(ctx, http.MethodGet, path, nil, nil, &result); err != nil {
		return nil, errors.Wrap(err, "failed to get payee location")
	}

	return &result.PayeeLocation, nil
}

// LocationsByPayee retrieves all locations of one payee
func (s *payeeService) LocationsByPayee(ctx context.Context, budgetID, payeeID string) ([]PayeeLocation, error) {
	var result struct {
		PayeeLocations []PayeeLocation `json:"payee_locations"`
	}

	path := fmt.Sprintf("/budgets/%s/payees/%s/payee_locations", budgetID, payeeID)
	if err := s.client.do(ctx, http.MethodGet, path, nil, nil, &result); err != nil {
		return nil, errors.Wrap(err, "failed to get payee locations for payee")
	}

	return result.PayeeLocations, nil
}
