package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func (t *Toolset) registerUserTools(s *server.MCPServer) {
	t.registerGetUser(s)
	t.registerVerifyAPIKey(s)
}

type userResponse struct {
	userView
	Message string `json:"message"`
}

func (t *Toolset) registerGetUser(s *server.MCPServer) {
	tool := mcp.NewTool("get_user",
		mcp.WithDescription("Get the authenticated user."),
	)
	t.addTool(s, tool, nil, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		user, err := t.client.User.Get(ctx)
		if err != nil {
			t.log.Error().Err(err).Msg("get_user failed")
			return errorResult(err.Error()), nil
		}
		return jsonResult(userResponse{
			userView: projectUser(user),
			Message:  "User information retrieved successfully",
		}), nil
	})
}

type verifyAPIKeyResponse struct {
	Valid   bool   `json:"valid"`
	UserID  string `json:"user_id,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message"`
}

func (t *Toolset) registerVerifyAPIKey(s *server.MCPServer) {
	tool := mcp.NewTool("verify_api_key",
		mcp.WithDescription("Verify that the configured API key is valid by probing the user endpoint."),
	)
	t.addTool(s, tool, nil, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		user, err := t.client.User.Get(ctx)
		if err != nil {
			t.log.Error().Err(err).Msg("verify_api_key failed")
			return jsonResult(verifyAPIKeyResponse{
				Valid:   false,
				Error:   err.Error(),
				Message: "API key verification failed. Please check your YNAB_API_KEY environment variable.",
			}), nil
		}
		return jsonResult(verifyAPIKeyResponse{
			Valid:   true,
			UserID:  user.ID,
			Message: "API key is valid and authenticated",
		}), nil
	})
}
