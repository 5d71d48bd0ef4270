package tools

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// maxLoggedStringLen is the longest string argument written verbatim to
// the call log; longer strings are truncated with an ellipsis.
const maxLoggedStringLen = 50

// withCallLogging wraps a handler so each invocation emits one log line
// before executing. The line carries the fully-resolved arguments:
// caller-supplied values merged over defaults. When call logging is off
// the handler is returned untouched, so disabled logging costs nothing
// per call.
func (t *Toolset) withCallLogging(name string, defaults map[string]interface{}, next server.ToolHandlerFunc) server.ToolHandlerFunc {
	if !t.logCalls {
		return next
	}
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		resolved := make(map[string]interface{}, len(defaults))
		for k, v := range defaults {
			resolved[k] = v
		}
		for k, v := range request.GetArguments() {
			resolved[k] = v
		}
		fmt.Fprintf(t.callLog, "TOOL_CALL: %s(%s)\n", name, formatArgs(resolved))
		return next(ctx, request)
	}
}

// formatArgs renders arguments as key=value pairs in sorted key order.
func formatArgs(args map[string]interface{}) string {
	keys := make([]string, 0, len(args))
	for k := range args {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+formatArgValue(args[k]))
	}
	return strings.Join(parts, ", ")
}

func formatArgValue(v interface{}) string {
	if s, ok := v.(string); ok {
		if len(s) > maxLoggedStringLen {
			s = s[:maxLoggedStringLen-3] + "..."
		}
		return fmt.Sprintf("%q", s)
	}
	return fmt.Sprintf("%v", v)
}
