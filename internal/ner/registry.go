// Package ner recovers structured facts from contract text using
// language-specific tagging models plus deterministic pattern rules.
package ner

import (
	"github.com/ebolowa/contract-insight/constants"
	"github.com/ebolowa/contract-insight/internal/llm"
)

// ModelHandle binds a language to a concrete tagging model. Handles are
// constructed once at process startup and read-only thereafter; they are safe
// for concurrent use by multiple pipelines.
type ModelHandle struct {
	Language  constants.Language
	ModelName string
	Tagger    llm.EntityTagger
}

// Registry is the closed mapping from supported language to model handle.
// Languages without a dedicated handle route to the default variant
// explicitly; there is no silent branching on language strings.
type Registry struct {
	handles map[constants.Language]*ModelHandle
	def     *ModelHandle
}

// NewRegistry builds the registry around a default handle. The default may be
// nil when no model could be loaded at startup; extraction then degrades to
// an empty result with a warning instead of failing the pipeline.
func NewRegistry(def *ModelHandle, others ...*ModelHandle) *Registry {
	r := &Registry{
		handles: make(map[constants.Language]*ModelHandle, len(others)+1),
		def:     def,
	}
	if def != nil {
		r.handles[def.Language] = def
	}
	for _, h := range others {
		if h != nil {
			r.handles[h.Language] = h
		}
	}
	return r
}

// HandleFor returns the model handle for lang. dedicated=false means the
// default handle was substituted and the caller should record a caveat.
func (r *Registry) HandleFor(lang constants.Language) (h *ModelHandle, dedicated bool) {
	if h, ok := r.handles[lang]; ok {
		return h, true
	}
	return r.def, false
}

// Default returns the fallback handle, which may be nil.
func (r *Registry) Default() *ModelHandle { return r.def }
