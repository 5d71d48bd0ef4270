package tools

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EdgeCaseLabs/ynab-mcp/pkg/ynab"
)

// newStubClient builds a client pointed at an in-process API stub.
func newStubClient(t *testing.T, handler http.Handler) *ynab.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := ynab.NewClient(&ynab.ClientOptions{
		AccessToken: "test-token",
		BaseURL:     srv.URL,
	})
	require.NoError(t, err)
	return client
}

func newTestToolset(client *ynab.Client, opts Options) *Toolset {
	opts.Logger = zerolog.Nop()
	return New(client, opts)
}

// writeData wraps a payload in the API's {"data": ...} envelope.
func writeData(w http.ResponseWriter, payload string) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"data":` + payload + `}`))
}

// callTool dispatches a tools/call request through a real MCP server and
// returns the text content of the result.
func callTool(t *testing.T, ts *Toolset, name string, args map[string]interface{}) string {
	t.Helper()
	s := server.NewMCPServer("test", "0.0.1", server.WithToolCapabilities(false))
	ts.RegisterAll(s)

	ctx := context.Background()
	initReq := `{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"protocolVersion":"2025-03-26","capabilities":{},"clientInfo":{"name":"test","version":"0.0.1"}}}`
	s.HandleMessage(ctx, json.RawMessage(initReq))

	call := map[string]interface{}{
		"jsonrpc": "2.0",
		"id":      2,
		"method":  "tools/call",
		"params": map[string]interface{}{
			"name":      name,
			"arguments": args,
		},
	}
	raw, err := json.Marshal(call)
	require.NoError(t, err)

	resp := s.HandleMessage(ctx, json.RawMessage(raw))
	data, err := json.Marshal(resp)
	require.NoError(t, err)

	var parsed struct {
		Result struct {
			Content []struct {
				Type string `json:"type"`
				Text string `json:"text"`
			} `json:"content"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal(data, &parsed))
	require.NotEmpty(t, parsed.Result.Content, "tool %s returned no content", name)
	return parsed.Result.Content[0].Text
}

func TestResolveBudgetID(t *testing.T) {
	tests := []struct {
		name            string
		defaultBudgetID string
		selector        string
		want            string
	}{
		{"default without configured budget", "", "default", "last-used"},
		{"default with configured budget", "B1", "default", "B1"},
		{"explicit ID passes through", "B1", "B2", "B2"},
		{"last-used passes through", "B1", "last-used", "last-used"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestToolset(nil, Options{DefaultBudgetID: tt.defaultBudgetID})
			assert.Equal(t, tt.want, ts.resolveBudgetID(tt.selector))
		})
	}
}

func TestErrorResult(t *testing.T) {
	result := errorResult("something broke")
	require.Len(t, result.Content, 1)

	text := result.Content[0].(mcp.TextContent).Text
	var payload map[string]string
	require.NoError(t, json.Unmarshal([]byte(text), &payload))
	assert.Equal(t, "something broke", payload["error"])
}

func TestRemoteErrorBecomesErrorPayload(t *testing.T) {
	client := newStubClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":{"id":"404.2","name":"resource_not_found","detail":"Resource not found"}}`))
	}))
	ts := newTestToolset(client, Options{})

	text := callTool(t, ts, "get_account_by_id", map[string]interface{}{
		"account_id": "missing",
	})

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(text), &payload))
	assert.Contains(t, payload, "error")
}
