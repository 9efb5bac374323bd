package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type capturedRequest struct {
	Model          string `json:"model"`
	ResponseFormat *struct {
		Type string `json:"type"`
	} `json:"response_format"`
	Messages []struct {
		Content string `json:"content"`
	} `json:"messages"`
}

func newTestServer(t *testing.T, status int, content string, captured *capturedRequest) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		if captured != nil {
			assert.NoError(t, json.NewDecoder(r.Body).Decode(captured))
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status != http.StatusOK {
			_, _ = w.Write([]byte(`{"error":{"message":"boom","type":"server_error"}}`))
			return
		}
		body, _ := json.Marshal(map[string]any{
			"id":     "chatcmpl-1",
			"object": "chat.completion",
			"model":  "test-model",
			"choices": []map[string]any{
				{
					"index":         0,
					"finish_reason": "stop",
					"message":       map[string]any{"role": "assistant", "content": content},
				},
			},
		})
		_, _ = w.Write(body)
	}))
}

func newTestClient(url string) *Client {
	return NewClient(Config{APIKey: "test-key", BaseURL: url + "/v1", Model: "test-model"}, zap.NewNop())
}

func TestClient_GenerateEntries(t *testing.T) {
	var captured capturedRequest
	content := "```json\n[{\"word\":\"Triage\",\"meaning\":\"Phân loại\",\"example\":\"Nurses triage patients.\"}]\n```"
	srv := newTestServer(t, http.StatusOK, content, &captured)
	defer srv.Close()

	entries, err := newTestClient(srv.URL).GenerateEntries(context.Background(), "Medical", BatchSize)

	require.NoError(t, err)
	assert.Equal(t, []GeneratedEntry{{Word: "Triage", Meaning: "Phân loại", Example: "Nurses triage patients."}}, entries)
	assert.Equal(t, "test-model", captured.Model)
	require.NotNil(t, captured.ResponseFormat)
	assert.Equal(t, "json_schema", captured.ResponseFormat.Type)
	require.Len(t, captured.Messages, 1)
	assert.Contains(t, captured.Messages[0].Content, `"Medical"`)
	assert.Contains(t, captured.Messages[0].Content, "5 advanced English")
}

func TestClient_GenerateEntries_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		content string
	}{
		{name: "server error", status: http.StatusInternalServerError},
		{name: "malformed json", status: http.StatusOK, content: "not json"},
		{name: "empty content", status: http.StatusOK, content: "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, tt.status, tt.content, nil)
			defer srv.Close()

			entries, err := newTestClient(srv.URL).GenerateEntries(context.Background(), "Travel", BatchSize)

			assert.Error(t, err)
			assert.Nil(t, entries)
		})
	}
}

func TestClient_NotConfigured(t *testing.T) {
	client := NewClient(Config{Model: "m"}, zap.NewNop())

	_, err := client.GenerateEntries(context.Background(), "x", BatchSize)
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = client.ExplainWord(context.Background(), "x")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestClient_ExplainWord(t *testing.T) {
	var captured capturedRequest
	srv := newTestServer(t, http.StatusOK, "  /ˈstæk.hoʊl.dɚ/ danh từ  ", &captured)
	defer srv.Close()

	text, err := newTestClient(srv.URL).ExplainWord(context.Background(), "stakeholder")

	require.NoError(t, err)
	assert.Equal(t, "/ˈstæk.hoʊl.dɚ/ danh từ", text)
	assert.Nil(t, captured.ResponseFormat)
	assert.Contains(t, captured.Messages[0].Content, `"stakeholder"`)
}

func TestCleanJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "plain", input: `[1]`, expected: `[1]`},
		{name: "json fence", input: "```json\n[1]\n```", expected: `[1]`},
		{name: "bare fence", input: "```\n[1]\n```", expected: `[1]`},
		{name: "surrounding whitespace", input: "\n  [1]  \n", expected: `[1]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, cleanJSON(tt.input))
		})
	}
}
