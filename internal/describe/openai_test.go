package describe

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chatServer(t *testing.T, status int, content string) (*httptest.Server, *[]byte) {
	t.Helper()
	var body []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status != http.StatusOK {
			_, _ = w.Write([]byte(`{"error":{"message":"nope","type":"server_error"}}`))
			return
		}
		resp := map[string]any{
			"id":      "chatcmpl-1",
			"object":  "chat.completion",
			"created": 1,
			"model":   "gpt-4o-mini",
			"choices": []map[string]any{{
				"index":         0,
				"finish_reason": "stop",
				"message":       map[string]any{"role": "assistant", "content": content},
			}},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(srv.Close)
	return srv, &body
}

func TestOpenAIFetcherParsesReply(t *testing.T) {
	srv, body := chatServer(t, http.StatusOK, `{"handShape":"S hand","movement":"Nod the wrist"}`)

	f, err := NewOpenAIFetcher("test-key", "gpt-4o-mini", srv.URL+"/")
	require.NoError(t, err)

	desc, err := f.FetchDescription(context.Background(), "Yes")
	require.NoError(t, err)
	assert.Equal(t, "S hand", desc.HandShape)
	assert.Equal(t, "Nod the wrist", desc.Movement)

	var sent map[string]any
	require.NoError(t, json.Unmarshal(*body, &sent))
	assert.Equal(t, "gpt-4o-mini", sent["model"])
	assert.Contains(t, string(*body), `\"Yes\"`)
}

func TestOpenAIFetcherMalformedReply(t *testing.T) {
	srv, _ := chatServer(t, http.StatusOK, "Just wave.")

	f, err := NewOpenAIFetcher("test-key", "gpt-4o-mini", srv.URL+"/")
	require.NoError(t, err)

	_, err = f.FetchDescription(context.Background(), "hello")
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestOpenAIFetcherServerError(t *testing.T) {
	srv, _ := chatServer(t, http.StatusInternalServerError, "")

	f, err := NewOpenAIFetcher("test-key", "gpt-4o-mini", srv.URL+"/")
	require.NoError(t, err)

	_, err = f.FetchDescription(context.Background(), "hello")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrMalformedResponse)
}

func TestOpenAIFetcherRequiresKey(t *testing.T) {
	_, err := NewOpenAIFetcher("", "gpt-4o-mini", "")
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}
