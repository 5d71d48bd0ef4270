package ynab

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCategoryService_List(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	mockResponse := `{
		"category_groups": [
			{
				"id": "grp-1",
				"name": "Immediate Obligations",
				"hidden": false,
				"deleted": false,
				"categories": [
					{
						"id": "cat-1",
						"category_group_id": "grp-1",
						"name": "Rent",
						"hidden": false,
						"budgeted": 1500000,
						"activity": -1500000,
						"balance": 0,
						"deleted": false
					},
					{
						"id": "cat-2",
						"category_group_id": "grp-1",
						"name": "Groceries",
						"hidden": false,
						"budgeted": 400000,
						"activity": -250500,
						"balance": 149500,
						"deleted": false
					}
				]
			}
		],
		"server_knowledge": 7
	}`

	mockTransport.On("Do",
		mock.Anything,
		http.MethodGet,
		"/budgets/b1/categories",
		mock.Anything,
		nil,
		mock.Anything,
	).Return(mockResponse, nil)

	result, err := client.Categories.List(context.Background(), "b1", nil)

	require.NoError(t, err)
	require.Len(t, result.CategoryGroups, 1)
	group := result.CategoryGroups[0]
	assert.Equal(t, "Immediate Obligations", group.Name)
	require.Len(t, group.Categories, 2)
	// Order returned by the API is preserved
	assert.Equal(t, "Rent", group.Categories[0].Name)
	assert.Equal(t, "Groceries", group.Categories[1].Name)
	assert.Equal(t, Milliunits(149500), group.Categories[1].Balance)

	mockTransport.AssertExpectations(t)
}

func TestCategoryService_GetMonth(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	mockResponse := `{
		"category": {
			"id": "cat-1",
			"category_group_id": "grp-1",
			"name": "Rent",
			"budgeted": 1500000,
			"activity": 0,
			"balance": 1500000
		}
	}`

	mockTransport.On("Do",
		mock.Anything,
		http.MethodGet,
		"/budgets/b1/months/2024-03-01/categories/cat-1",
		mock.Anything,
		nil,
		mock.Anything,
	).Return(mockResponse, nil)

	cat, err := client.Categories.GetMonth(context.Background(), "b1", "2024-03-01", "cat-1")

	require.NoError(t, err)
	assert.Equal(t, "Rent", cat.Name)
	assert.Equal(t, Milliunits(1500000), cat.Budgeted)

	mockTransport.AssertExpectations(t)
}

func TestCategoryService_Update_PartialFields(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	mockResponse := `{
		"category": {
			"id": "cat-1",
			"category_group_id": "grp-1",
			"name": "Rent & Utilities",
			"hidden": false,
			"budgeted": 1500000,
			"activity": 0,
			"balance": 1500000
		}
	}`

	mockTransport.On("Do",
		mock.Anything,
		http.MethodPatch,
		"/budgets/b1/categories/cat-1",
		mock.Anything,
		mock.MatchedBy(func(body interface{}) bool {
			wrapper, ok := body.(map[string]interface{})
			if !ok {
				return false
			}
			params, ok := wrapper["category"].(*UpdateCategoryParams)
			// Only name set; note and hidden stay nil
			return ok && params.Name != nil && *params.Name == "Rent & Utilities" &&
				params.Note == nil && params.Hidden == nil
		}),
		mock.Anything,
	).Return(mockResponse, nil)

	name := "Rent & Utilities"
	cat, err := client.Categories.Update(context.Background(), "b1", "cat-1", &UpdateCategoryParams{
		Name: &name,
	})

	require.NoError(t, err)
	assert.Equal(t, "Rent & Utilities", cat.Name)

	mockTransport.AssertExpectations(t)
}

func TestCategoryService_UpdateMonth(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	mockResponse := `{
		"category": {
			"id": "cat-1",
			"category_group_id": "grp-1",
			"name": "Rent",
			"budgeted": 100500,
			"activity": 0,
			"balance": 100500
		}
	}`

	mockTransport.On("Do",
		mock.Anything,
		http.MethodPatch,
		"/budgets/b1/months/2024-04-01/categories/cat-1",
		mock.Anything,
		mock.Anything,
		mock.Anything,
	).Return(mockResponse, nil)

	cat, err := client.Categories.UpdateMonth(context.Background(), "b1", "2024-04-01", "cat-1", 100500)

	require.NoError(t, err)
	assert.Equal(t, Milliunits(100500), cat.Budgeted)

	mockTransport.AssertExpectations(t)
}
