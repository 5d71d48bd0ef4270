package tools

import (
	"bytes"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func userStub(t *testing.T) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeData(w, `{"user":{"id":"user-1"}}`)
	})
}

func TestCallLogging_DisabledEmitsNothing(t *testing.T) {
	var buf bytes.Buffer
	client := newStubClient(t, userStub(t))
	ts := newTestToolset(client, Options{LogCalls: false, CallLogWriter: &buf})

	callTool(t, ts, "get_user", nil)

	assert.Empty(t, buf.String())
}

func TestCallLogging_EnabledEmitsOneLinePerCall(t *testing.T) {
	var buf bytes.Buffer
	client := newStubClient(t, userStub(t))
	ts := newTestToolset(client, Options{LogCalls: true, CallLogWriter: &buf})

	callTool(t, ts, "get_user", nil)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 1)
	assert.Equal(t, "TOOL_CALL: get_user()", lines[0])
}

func TestCallLogging_AppliesDefaults(t *testing.T) {
	var buf bytes.Buffer
	client := newStubClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeData(w, `{"accounts":[],"server_knowledge":0}`)
	}))
	ts := newTestToolset(client, Options{LogCalls: true, CallLogWriter: &buf})

	callTool(t, ts, "get_accounts", nil)

	line := strings.TrimRight(buf.String(), "\n")
	assert.Equal(t, `TOOL_CALL: get_accounts(budget_id="default", include_closed=false, include_deleted=false)`, line)
}

func TestCallLogging_CallerArgumentsOverrideDefaults(t *testing.T) {
	var buf bytes.Buffer
	client := newStubClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeData(w, `{"accounts":[],"server_knowledge":0}`)
	}))
	ts := newTestToolset(client, Options{LogCalls: true, CallLogWriter: &buf})

	callTool(t, ts, "get_accounts", map[string]interface{}{
		"budget_id":      "budget-9",
		"include_closed": true,
	})

	line := strings.TrimRight(buf.String(), "\n")
	assert.Equal(t, `TOOL_CALL: get_accounts(budget_id="budget-9", include_closed=true, include_deleted=false)`, line)
}

func TestFormatArgs_TruncatesLongStrings(t *testing.T) {
	long := strings.Repeat("x", 60)
	got := formatArgs(map[string]interface{}{"memo": long})

	want := `memo="` + strings.Repeat("x", 47) + `..."`
	assert.Equal(t, want, got)
}

func TestFormatArgs_FiftyCharStringIsNotTruncated(t *testing.T) {
	exact := strings.Repeat("y", 50)
	got := formatArgs(map[string]interface{}{"memo": exact})
	assert.Equal(t, `memo="`+exact+`"`, got)
}

func TestFormatArgs_SortsKeys(t *testing.T) {
	got := formatArgs(map[string]interface{}{
		"b": 2,
		"a": 1,
		"c": "three",
	})
	assert.Equal(t, `a=1, b=2, c="three"`, got)
}
