package tools

import (
	"encoding/json"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTransaction_InvalidClearedSkipsRemoteCall(t *testing.T) {
	var calls atomic.Int32
	client := newStubClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		writeData(w, `{}`)
	}))
	ts := newTestToolset(client, Options{})

	text := callTool(t, ts, "create_transaction", map[string]interface{}{
		"account_id": "acc-1",
		"amount":     -10500,
		"date":       "2024-03-15",
		"cleared":    "pending",
	})

	var payload map[string]string
	require.NoError(t, json.Unmarshal([]byte(text), &payload))
	assert.Equal(t, "cleared must be 'cleared', 'uncleared', or 'reconciled'", payload["error"])
	assert.Equal(t, int32(0), calls.Load())
}

func TestCreateTransaction_InvalidFlagColorSkipsRemoteCall(t *testing.T) {
	var calls atomic.Int32
	client := newStubClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		writeData(w, `{}`)
	}))
	ts := newTestToolset(client, Options{})

	text := callTool(t, ts, "create_transaction", map[string]interface{}{
		"account_id": "acc-1",
		"amount":     -10500,
		"date":       "2024-03-15",
		"flag_color": "magenta",
	})

	var payload map[string]string
	require.NoError(t, json.Unmarshal([]byte(text), &payload))
	assert.Equal(t, "flag_color must be one of: red, orange, yellow, green, blue, purple", payload["error"])
	assert.Equal(t, int32(0), calls.Load())
}

func TestCreateTransaction_Success(t *testing.T) {
	client := newStubClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/budgets/last-used/transactions", r.URL.Path)
		writeData(w, `{"transaction":{
			"id":"txn-1","date":"2024-03-15","amount":-10500,
			"cleared":"uncleared","approved":false,
			"account_id":"acc-1","payee_name":"Blue Bottle Coffee"
		},"transaction_ids":["txn-1"],"server_knowledge":12}`)
	}))
	ts := newTestToolset(client, Options{})

	text := callTool(t, ts, "create_transaction", map[string]interface{}{
		"account_id": "acc-1",
		"amount":     -10500,
		"date":       "2024-03-15",
		"payee_name": "Blue Bottle Coffee",
	})

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(text), &payload))
	assert.Equal(t, "txn-1", payload["id"])
	assert.Equal(t, "$-10.50", payload["amount_formatted"])
	assert.Equal(t, "Transaction created successfully", payload["message"])
}

func TestCreateTransaction_DuplicateImportIDs(t *testing.T) {
	client := newStubClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeData(w, `{"transaction":null,"transaction_ids":[],"duplicate_import_ids":["import-1"],"server_knowledge":12}`)
	}))
	ts := newTestToolset(client, Options{})

	text := callTool(t, ts, "create_transaction", map[string]interface{}{
		"account_id": "acc-1",
		"amount":     -10500,
		"date":       "2024-03-15",
		"import_id":  "import-1",
	})

	var resp struct {
		Message            string   `json:"message"`
		DuplicateImportIDs []string `json:"duplicate_import_ids"`
		Error              string   `json:"error"`
	}
	require.NoError(t, json.Unmarshal([]byte(text), &resp))
	assert.Empty(t, resp.Error)
	assert.Equal(t, "Transaction created", resp.Message)
	assert.Equal(t, []string{"import-1"}, resp.DuplicateImportIDs)
}

func TestGetTransactions_PassesFilters(t *testing.T) {
	client := newStubClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "2024-01-01", q.Get("since_date"))
		assert.Equal(t, "unapproved", q.Get("type"))
		assert.Equal(t, "55", q.Get("last_knowledge_of_server"))
		writeData(w, `{"transactions":[],"server_knowledge":60}`)
	}))
	ts := newTestToolset(client, Options{})

	text := callTool(t, ts, "get_transactions", map[string]interface{}{
		"since_date":               "2024-01-01",
		"type":                     "unapproved",
		"last_knowledge_of_server": 55,
	})

	var resp struct {
		ServerKnowledge int64 `json:"server_knowledge"`
	}
	require.NoError(t, json.Unmarshal([]byte(text), &resp))
	assert.Equal(t, int64(60), resp.ServerKnowledge)
}

func TestDeleteTransaction(t *testing.T) {
	client := newStubClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		writeData(w, `{"transaction":{"id":"txn-9","deleted":true}}`)
	}))
	ts := newTestToolset(client, Options{})

	text := callTool(t, ts, "delete_transaction", map[string]interface{}{
		"transaction_id": "txn-9",
	})

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(text), &payload))
	assert.Equal(t, "txn-9", payload["id"])
	assert.Equal(t, true, payload["deleted"])
	assert.Equal(t, "Transaction txn-9 deleted successfully", payload["message"])
}

func TestImportTransactions(t *testing.T) {
	client := newStubClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/budgets/last-used/transactions/import", r.URL.Path)
		writeData(w, `{"transaction_ids":["t1","t2","t3"]}`)
	}))
	ts := newTestToolset(client, Options{})

	text := callTool(t, ts, "import_transactions", nil)

	var resp struct {
		TransactionIDs []string `json:"transaction_ids"`
		Count          int      `json:"count"`
		Message        string   `json:"message"`
	}
	require.NoError(t, json.Unmarshal([]byte(text), &resp))
	assert.Equal(t, 3, resp.Count)
	assert.Equal(t, "Imported 3 transactions", resp.Message)
}
