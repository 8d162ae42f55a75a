package llm

import "context"

// TagRequest asks a model to tag named entities in one section of contract
// text. Language selects the tagging instructions.
type TagRequest struct {
	Text     string
	Language string
	Section  string
}

// TaggedEntity is one span returned by the tagging model, before
// canonicalization and the confidence floor are applied.
type TaggedEntity struct {
	Type       string  `json:"type"`
	Value      string  `json:"value"`
	Confidence float32 `json:"confidence"`
}

// EntityTagger is the interface the entity extractor depends on. The raw
// model JSON is returned alongside the decoded entities for audit logging.
type EntityTagger interface {
	TagEntities(ctx context.Context, req TagRequest) ([]TaggedEntity, []byte, error)
}

// Generator produces free text for a prompt. The summarizer composes its own
// prompts and length constraints on top of this.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
	ModelName() string
}
