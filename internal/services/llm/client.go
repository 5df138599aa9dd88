// Package llm wraps the OpenAI chat completion API behind the two call
// shapes the goal pipeline needs: free-text completion and
// schema-constrained completion.
package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/shared"
	"go.uber.org/zap"
)

const (
	// DefaultTextModel is the default model for free-text completions.
	DefaultTextModel = "gpt-4o-mini"
	// DefaultStructuredModel is the default model for schema-constrained
	// completions.
	DefaultStructuredModel = "gpt-4o-2024-08-06"
	// DefaultTimeout is the default timeout for API calls.
	DefaultTimeout = 60 * time.Second

	// CompletionSeed is supplied on every call to bias toward reproducible
	// completions. The API may still be non-deterministic; callers must not
	// assume byte-identical output across runs.
	CompletionSeed = 42

	// ErrNoChoicesInResponse is returned when the API response has no choices.
	ErrNoChoicesInResponse = "no choices in response"
)

// Completer is the interface the pipeline services depend on.
type Completer interface {
	// Complete issues a free-text chat completion.
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)

	// CompleteStructured issues a completion constrained to the given JSON
	// schema and returns the raw JSON payload for the caller to decode.
	CompleteStructured(ctx context.Context, systemPrompt, userPrompt string, schema ResponseSchema) (json.RawMessage, error)
}

// ResponseSchema declares the record structure a structured completion must
// conform to. Schema is a JSON Schema object; nested records are allowed.
type ResponseSchema struct {
	Name        string
	Description string
	Schema      map[string]any
}

// Client implements Completer against the OpenAI API.
type Client struct {
	client          openai.Client
	textModel       string
	structuredModel string
	logger          *zap.Logger
	debugMode       bool
}

var _ Completer = (*Client)(nil)

// NewClient creates an LLM client with default models.
func NewClient(apiKey string) *Client {
	return NewClientWithLogger(apiKey, "", "", nil, false)
}

// NewClientWithLogger creates an LLM client with model overrides and
// debug-mode request/response logging.
func NewClientWithLogger(apiKey, textModel, structuredModel string, logger *zap.Logger, debugMode bool) *Client {
	if textModel == "" {
		textModel = DefaultTextModel
	}
	if structuredModel == "" {
		structuredModel = DefaultStructuredModel
	}

	httpClient := &http.Client{
		Timeout: DefaultTimeout,
	}

	client := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithHTTPClient(httpClient),
	)

	return &Client{
		client:          client,
		textModel:       textModel,
		structuredModel: structuredModel,
		logger:          logger,
		debugMode:       debugMode,
	}
}

// Complete issues a free-text chat completion with the fixed seed.
func (c *Client) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	req := openai.ChatCompletionNewParams{
		Model: shared.ChatModel(c.textModel),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt),
		},
		Seed: openai.Int(CompletionSeed),
	}

	content, err := c.send(ctx, "complete", c.textModel, req, userPrompt)
	if err != nil {
		return "", err
	}
	return content, nil
}

// CompleteStructured issues a completion constrained to the given schema
// and returns the raw JSON payload. An empty or non-JSON payload surfaces
// as a SchemaError; callers decode the payload into their own types and
// wrap decode failures the same way.
func (c *Client) CompleteStructured(ctx context.Context, systemPrompt, userPrompt string, schema ResponseSchema) (json.RawMessage, error) {
	req := openai.ChatCompletionNewParams{
		Model: shared.ChatModel(c.structuredModel),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt),
		},
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &shared.ResponseFormatJSONSchemaParam{
				JSONSchema: shared.ResponseFormatJSONSchemaJSONSchemaParam{
					Name:        schema.Name,
					Description: openai.String(schema.Description),
					Schema:      schema.Schema,
					Strict:      openai.Bool(true),
				},
			},
		},
		Seed: openai.Int(CompletionSeed),
	}

	content, err := c.send(ctx, "complete_structured", c.structuredModel, req, userPrompt)
	if err != nil {
		return nil, err
	}

	if !json.Valid([]byte(content)) {
		return nil, &SchemaError{Schema: schema.Name, Err: errors.New("response is not valid JSON")}
	}
	return json.RawMessage(content), nil
}

// send issues the request and returns the first choice's content.
func (c *Client) send(ctx context.Context, operation, model string, req openai.ChatCompletionNewParams, userPrompt string) (string, error) {
	if c.logger != nil && c.debugMode {
		c.logger.Debug("llm_api_request",
			zap.String("operation", operation),
			zap.String("model", model),
			zap.Int("prompt_length", len(userPrompt)),
			zap.String("prompt_preview", SanitizePreview(userPrompt)),
		)
	}

	start := time.Now()
	resp, err := c.client.Chat.Completions.New(ctx, req)
	latency := time.Since(start)

	if err != nil {
		if c.logger != nil && c.debugMode {
			c.logger.Debug("llm_api_error",
				zap.String("operation", operation),
				zap.String("model", model),
				zap.Error(err),
				zap.Int64("latency_ms", latency.Milliseconds()),
			)
		}
		return "", &CompletionError{Operation: operation, Model: model, Err: err}
	}

	if len(resp.Choices) == 0 {
		return "", &CompletionError{Operation: operation, Model: model, Err: errors.New(ErrNoChoicesInResponse)}
	}

	content := resp.Choices[0].Message.Content

	if c.logger != nil && c.debugMode {
		c.logger.Debug("llm_api_response",
			zap.String("operation", operation),
			zap.String("model", model),
			zap.Int("response_length", len(content)),
			zap.String("response_preview", SanitizePreview(content)),
			zap.Int64("latency_ms", latency.Milliseconds()),
		)
	}

	return content, nil
}
