package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"
	"go.uber.org/zap"
)

// ErrNotConfigured is returned when no API key was supplied
var ErrNotConfigured = errors.New("AI API key is not configured")

// Config holds connection settings for an OpenAI-compatible endpoint
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
}

// Client implements Generator over the chat-completions protocol
type Client struct {
	api    *openai.Client
	model  string
	apiKey string
	logger *zap.Logger
}

// NewClient creates a new AI client
func NewClient(cfg Config, logger *zap.Logger) *Client {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	}

	return &Client{
		api:    openai.NewClientWithConfig(clientCfg),
		model:  cfg.Model,
		apiKey: cfg.APIKey,
		logger: logger,
	}
}

var entriesSchema = jsonschema.Definition{
	Type: jsonschema.Array,
	Items: &jsonschema.Definition{
		Type: jsonschema.Object,
		Properties: map[string]jsonschema.Definition{
			"word":    {Type: jsonschema.String},
			"meaning": {Type: jsonschema.String},
			"example": {Type: jsonschema.String},
		},
		Required: []string{"word", "meaning", "example"},
	},
}

// GenerateEntries asks the model for count advanced English words related to topic
func (c *Client) GenerateEntries(ctx context.Context, topic string, count int) ([]GeneratedEntry, error) {
	if c.apiKey == "" {
		return nil, ErrNotConfigured
	}

	prompt := fmt.Sprintf(`Generate a list of %d advanced English vocabulary words related to the topic "%s".
Return a JSON array where each object has 'word' (English), 'meaning' (Vietnamese translation), and 'example' (English sentence).`,
		count, topic)

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   "vocabulary",
				Schema: &entriesSchema,
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create chat completion: %w", err)
	}

	content, err := firstContent(resp)
	if err != nil {
		return nil, err
	}

	var entries []GeneratedEntry
	if err := json.Unmarshal([]byte(cleanJSON(content)), &entries); err != nil {
		c.logger.Warn("Failed to parse generated vocabulary",
			zap.Error(err),
			zap.String("content", content),
		)
		return nil, fmt.Errorf("parse response: %w", err)
	}

	return entries, nil
}

// ExplainWord asks the model for a short Vietnamese explanation of word
func (c *Client) ExplainWord(ctx context.Context, word string) (string, error) {
	if c.apiKey == "" {
		return "", ErrNotConfigured
	}

	prompt := fmt.Sprintf(`Explain the word "%s" simply in Vietnamese. Include pronunciation (IPA), word type, and usage nuance.`, word)

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("create chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", nil
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func firstContent(resp openai.ChatCompletionResponse) (string, error) {
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("AI returned empty choices")
	}
	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", fmt.Errorf("AI returned empty content")
	}
	return content, nil
}

// cleanJSON strips markdown code fences some models wrap JSON in
func cleanJSON(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	return strings.TrimSpace(content)
}
