package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ebolowa/contract-insight/constants"
	"github.com/ebolowa/contract-insight/internal/common"
	"github.com/ebolowa/contract-insight/internal/llm"
)

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (c *Client) endpoint() string {
	return strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
}

func (c *Client) chat(ctx context.Context, messages []map[string]any, jsonMode bool) (string, error) {
	if c.cfg.APIKey == "" {
		return "", fmt.Errorf("no API key configured: %w", common.ErrModelUnavailable)
	}

	body := map[string]any{
		"model":       c.cfg.Model,
		"temperature": c.cfg.Temperature,
		"messages":    messages,
	}
	if jsonMode {
		body["response_format"] = map[string]any{"type": "json_object"}
	}

	raw, _, err := llm.SendJSON(ctx, c.http, c.endpoint(), body,
		map[string]string{"Authorization": "Bearer " + c.cfg.APIKey}, c.logger)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", fmt.Errorf("%w: %v", common.ErrModelUnavailable, err)
	}

	var cc chatResponse
	if err := json.Unmarshal(raw, &cc); err != nil {
		return "", fmt.Errorf("decode chat response: %w", err)
	}
	if len(cc.Choices) == 0 {
		return "", fmt.Errorf("no choices in chat response")
	}
	return strings.TrimSpace(cc.Choices[0].Message.Content), nil
}

// Generate implements llm.Generator using text-only chat/completions.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	return c.chat(ctx, []map[string]any{
		{"role": "user", "content": prompt},
	}, false)
}

// TagEntities implements llm.EntityTagger. Model output is validated against
// the entity schema before it is decoded; nothing unvalidated enters the
// pipeline.
func (c *Client) TagEntities(ctx context.Context, req llm.TagRequest) ([]llm.TaggedEntity, []byte, error) {
	rid := uuid.New().String()
	start := time.Now()

	allowed := constants.EntityTypeStrings()
	schema := llm.BuildEntitySchema(allowed)
	sys := llm.BuildTaggerSystemPrompt(req.Language, allowed)
	user := llm.BuildTaggerUserPrompt(req)

	c.logger.Debug("llm.tag.start",
		"req_id", rid, "model", c.cfg.Model, "lang", req.Language,
		"section", req.Section, "text_len", len(req.Text))

	content, err := c.chat(ctx, []map[string]any{
		{"role": "system", "content": sys},
		{"role": "user", "content": user},
		{"role": "system", "content": "JSON Schema:\n" + mustJSON(schema)},
	}, true)
	if err != nil {
		c.logger.Error("llm.tag.failed", "req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds())
		return nil, nil, err
	}

	rawContent := []byte(content)
	if err := llm.ValidateJSONAgainstSchema(schema, rawContent); err != nil {
		c.logger.Error("llm.tag.schema_validation_failed",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds())
		return nil, rawContent, fmt.Errorf("schema validation failed: %w", err)
	}

	ents, err := llm.DecodeTaggedEntities(rawContent)
	if err != nil {
		return nil, rawContent, err
	}

	c.logger.Debug("llm.tag.ok", "req_id", rid, "entities", len(ents),
		"elapsed_ms", time.Since(start).Milliseconds())
	return ents, rawContent, nil
}

func mustJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(b)
}
