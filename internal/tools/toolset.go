// Package tools exposes the YNAB API as MCP tools. Each tool resolves a
// budget selector, issues one or more API calls through a shared client,
// and returns a plain JSON projection of the response. Failures come back
// as {"error": ...} payloads instead of protocol errors.
package tools

import (
	"encoding/json"
	"io"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"

	"github.com/EdgeCaseLabs/ynab-mcp/pkg/ynab"
)

// Toolset holds the shared client and per-process settings the tool
// handlers need. One Toolset serves all registered tools.
type Toolset struct {
	client          *ynab.Client
	defaultBudgetID string
	logCalls        bool
	callLog         io.Writer
	log             zerolog.Logger
}

// Options configures a Toolset.
type Options struct {
	// DefaultBudgetID is what the "default" budget selector resolves to.
	// When empty, "default" resolves to "last-used".
	DefaultBudgetID string

	// LogCalls enables the one-line-per-invocation call log.
	LogCalls bool

	// CallLogWriter receives call log lines. Defaults to os.Stderr.
	CallLogWriter io.Writer

	Logger zerolog.Logger
}

// New builds a Toolset around an authenticated client.
func New(client *ynab.Client, opts Options) *Toolset {
	if opts.CallLogWriter == nil {
		opts.CallLogWriter = os.Stderr
	}
	return &Toolset{
		client:          client,
		defaultBudgetID: opts.DefaultBudgetID,
		logCalls:        opts.LogCalls,
		callLog:         opts.CallLogWriter,
		log:             opts.Logger,
	}
}

// RegisterAll adds every tool to the server.
func (t *Toolset) RegisterAll(s *server.MCPServer) {
	t.registerBudgetTools(s)
	t.registerAccountTools(s)
	t.registerCategoryTools(s)
	t.registerPayeeTools(s)
	t.registerTransactionTools(s)
	t.registerUserTools(s)
}

// addTool registers a tool with call logging applied. defaults maps each
// optional parameter to the value used when the caller omits it, so the
// log line shows fully-resolved arguments.
func (t *Toolset) addTool(s *server.MCPServer, tool mcp.Tool, defaults map[string]interface{}, handler server.ToolHandlerFunc) {
	s.AddTool(tool, t.withCallLogging(tool.Name, defaults, handler))
}

// resolveBudgetID maps a budget selector to the ID sent to the API.
// "default" becomes the configured default budget, or "last-used" when
// none is configured. Everything else passes through unchanged.
func (t *Toolset) resolveBudgetID(selector string) string {
	if selector == "default" {
		if t.defaultBudgetID != "" {
			return t.defaultBudgetID
		}
		return "last-used"
	}
	return selector
}

// jsonResult serializes v as the tool's text result.
func jsonResult(v interface{}) *mcp.CallToolResult {
	data, err := json.Marshal(v)
	if err != nil {
		return errorResult(err.Error())
	}
	return mcp.NewToolResultText(string(data))
}

// errorResult wraps a message in the {"error": ...} payload every tool
// uses for failures.
func errorResult(msg string) *mcp.CallToolResult {
	data, _ := json.Marshal(map[string]string{"error": msg})
	return mcp.NewToolResultText(string(data))
}

// optionalInt64 returns a pointer to the argument's value, or nil when
// the caller omitted it.
func optionalInt64(request mcp.CallToolRequest, key string) *int64 {
	if _, ok := request.GetArguments()[key]; !ok {
		return nil
	}
	v := mcp.ParseInt64(request, key, 0)
	return &v
}

// optionalString returns a pointer to the argument's value, or nil when
// the caller omitted it.
func optionalString(request mcp.CallToolRequest, key string) *string {
	if _, ok := request.GetArguments()[key]; !ok {
		return nil
	}
	v := mcp.ParseString(request, key, "")
	return &v
}

// optionalBool returns a pointer to the argument's value, or nil when
// the caller omitted it.
func optionalBool(request mcp.CallToolRequest, key string) *bool {
	if _, ok := request.GetArguments()[key]; !ok {
		return nil
	}
	v := mcp.ParseBoolean(request, key, false)
	return &v
}
