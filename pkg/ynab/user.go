package ynab

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
)

// userService implements the UserService interface
type userService struct {
	client *Client
}

// Get retrieves the authenticated user
func (s *userService) Get(ctx context.Context) (*User, error) {
	var result struct {
		User User `json:"user"`
	}

	if err := s.client.do(ctx, http.MethodGet, "/user", nil, nil, &result); err != nil {
		return nil, errors.Wrap(err, "failed to get user")
	}

	return &result.User, nil
}
