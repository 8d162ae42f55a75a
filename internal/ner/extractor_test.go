package ner

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ebolowa/contract-insight/constants"
	"github.com/ebolowa/contract-insight/internal/llm"
)

// fakeTagger returns canned entities and records the sections it was asked
// about.
type fakeTagger struct {
	entities []llm.TaggedEntity
	err      error
	sections []string
}

func (f *fakeTagger) TagEntities(_ context.Context, req llm.TagRequest) ([]llm.TaggedEntity, []byte, error) {
	f.sections = append(f.sections, req.Section)
	if f.err != nil {
		return nil, nil, f.err
	}
	return f.entities, nil, nil
}

const compensationText = "Compensation: the employee Jane Doe receives a salary: 450 000 FCFA per month."

func newTestExtractor(tagger llm.EntityTagger) *Extractor {
	registry := NewRegistry(&ModelHandle{
		Language:  constants.LangEnglish,
		ModelName: "test-model",
		Tagger:    tagger,
	})
	// MaxConcurrent 1 keeps section order deterministic under test
	return NewExtractor(registry, Config{MinConfidence: 0.5, MaxConcurrent: 1}, nil)
}

func TestExtractMergesModelAndPatterns(t *testing.T) {
	tagger := &fakeTagger{entities: []llm.TaggedEntity{
		{Type: "PERSON", Value: "Jane Doe", Confidence: 0.92},
		{Type: "ORG", Value: "ACME Corp", Confidence: 0.88},
	}}
	x := newTestExtractor(tagger)

	set, err := x.Extract(context.Background(), compensationText, constants.LangEnglish)
	require.NoError(t, err)
	require.False(t, set.Degraded)
	require.Empty(t, set.Warnings)

	var types []constants.EntityType
	for _, e := range set.Entities {
		types = append(types, e.Type)
	}
	require.Contains(t, types, constants.Person)
	require.Contains(t, types, constants.Org)
	require.Contains(t, types, constants.Salary)

	// positions are sequential and stable
	for i, e := range set.Entities {
		require.Equal(t, i, e.Position)
	}
}

func TestExtractAppliesConfidenceFloor(t *testing.T) {
	tagger := &fakeTagger{entities: []llm.TaggedEntity{
		{Type: "PERSON", Value: "Jane Doe", Confidence: 0.92},
		{Type: "MISC", Value: "noise", Confidence: 0.2},
	}}
	x := newTestExtractor(tagger)

	set, err := x.Extract(context.Background(), compensationText, constants.LangEnglish)
	require.NoError(t, err)
	for _, e := range set.Entities {
		require.GreaterOrEqual(t, e.Confidence, float32(0.5))
		require.NotEqual(t, "noise", e.Value)
	}
}

func TestExtractClampsConfidence(t *testing.T) {
	tagger := &fakeTagger{entities: []llm.TaggedEntity{
		{Type: "ORG", Value: "ACME Corp", Confidence: 3.5},
	}}
	x := newTestExtractor(tagger)

	set, err := x.Extract(context.Background(), compensationText, constants.LangEnglish)
	require.NoError(t, err)

	found := false
	for _, e := range set.Entities {
		if e.Value == "ACME Corp" {
			found = true
			require.Equal(t, float32(1), e.Confidence)
		}
	}
	require.True(t, found)
}

func TestExtractCanonicalizesUnknownLabels(t *testing.T) {
	tagger := &fakeTagger{entities: []llm.TaggedEntity{
		{Type: "WEIRD_LABEL", Value: "something", Confidence: 0.9},
	}}
	x := newTestExtractor(tagger)

	set, err := x.Extract(context.Background(), compensationText, constants.LangEnglish)
	require.NoError(t, err)

	found := false
	for _, e := range set.Entities {
		if e.Value == "something" {
			found = true
			require.Equal(t, constants.Misc, e.Type)
		}
	}
	require.True(t, found)
}

func TestExtractModelFailureDegrades(t *testing.T) {
	tagger := &fakeTagger{err: errors.New("model offline")}
	x := newTestExtractor(tagger)

	set, err := x.Extract(context.Background(), compensationText, constants.LangEnglish)
	require.NoError(t, err, "tagging failure must not abort extraction")
	require.True(t, set.Degraded)
	require.NotEmpty(t, set.Warnings)

	// the deterministic pattern pass still contributes
	var salary bool
	for _, e := range set.Entities {
		if e.Type == constants.Salary {
			salary = true
		}
	}
	require.True(t, salary)
}

func TestExtractNoModelAtAll(t *testing.T) {
	x := NewExtractor(NewRegistry(nil), Config{}, nil)

	set, err := x.Extract(context.Background(), compensationText, constants.LangEnglish)
	require.NoError(t, err)
	require.True(t, set.Degraded)
	require.NotEmpty(t, set.Warnings)
}

func TestExtractLanguageFallbackWarns(t *testing.T) {
	tagger := &fakeTagger{}
	x := newTestExtractor(tagger) // registry only has an English handle

	set, err := x.Extract(context.Background(), compensationText, constants.LangFrench)
	require.NoError(t, err)
	require.NotEmpty(t, set.Warnings)
}
