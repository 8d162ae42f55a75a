// Package gemini provides Gemini-backed implementations of the llm
// interfaces, as an alternative to the OpenAI-compatible HTTP client.
package gemini

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"google.golang.org/genai"

	"github.com/ebolowa/contract-insight/constants"
	"github.com/ebolowa/contract-insight/internal/common"
	"github.com/ebolowa/contract-insight/internal/llm"
)

type Config struct {
	APIKey string
	Model  string // e.g., "gemini-2.0-flash"
}

type Client struct {
	cfg    Config
	client *genai.Client
	logger *slog.Logger
}

// NewClient warms up the underlying genai client once; the client is
// read-only afterwards and safe for concurrent use.
func NewClient(ctx context.Context, cfg Config, logger *slog.Logger) (*Client, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Model == "" {
		cfg.Model = "gemini-2.0-flash"
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini: no API key configured: %w", common.ErrModelUnavailable)
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: %w: %v", common.ErrModelUnavailable, err)
	}
	return &Client{cfg: cfg, client: client, logger: logger}, nil
}

func (c *Client) ModelName() string { return c.cfg.Model }

// Generate implements llm.Generator.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Models.GenerateContent(
		ctx,
		c.cfg.Model,
		[]*genai.Content{{Parts: []*genai.Part{{Text: prompt}}}},
		nil,
	)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", fmt.Errorf("%w: %v", common.ErrModelUnavailable, err)
	}
	return strings.TrimSpace(resp.Text()), nil
}

// TagEntities implements llm.EntityTagger using JSON response mode.
func (c *Client) TagEntities(ctx context.Context, req llm.TagRequest) ([]llm.TaggedEntity, []byte, error) {
	allowed := constants.EntityTypeStrings()
	schema := llm.BuildEntitySchema(allowed)
	prompt := llm.BuildTaggerSystemPrompt(req.Language, allowed) + "\n\n" + llm.BuildTaggerUserPrompt(req)

	temp := float32(0)
	resp, err := c.client.Models.GenerateContent(
		ctx,
		c.cfg.Model,
		[]*genai.Content{{Parts: []*genai.Part{{Text: prompt}}}},
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
			Temperature:      &temp,
		},
	)
	if err != nil {
		if ctx.Err() != nil {
			return nil, nil, ctx.Err()
		}
		return nil, nil, fmt.Errorf("%w: %v", common.ErrModelUnavailable, err)
	}

	rawContent := []byte(strings.TrimSpace(resp.Text()))
	if err := llm.ValidateJSONAgainstSchema(schema, rawContent); err != nil {
		c.logger.Error("gemini.tag.schema_validation_failed", "error", err)
		return nil, rawContent, fmt.Errorf("schema validation failed: %w", err)
	}

	ents, err := llm.DecodeTaggedEntities(rawContent)
	if err != nil {
		return nil, rawContent, err
	}
	return ents, rawContent, nil
}
