package llm

import (
	"fmt"
	"strings"
)

// BuildTaggerSystemPrompt composes the tagging instructions for a language.
// Temperature stays at zero on the caller side so identical input produces
// identical output for a given model version.
func BuildTaggerSystemPrompt(language string, allowedTypes []string) string {
	langLine := "The document is written in English."
	if language == "fr" {
		langLine = "The document is written in French; entity values must be quoted verbatim from the French text."
	}
	parts := []string{
		"You are a named-entity tagger for employment contracts. Return ONLY JSON that matches the provided JSON Schema.",
		langLine,
		"Allowed entity types (enum): " + strings.Join(allowedTypes, ", ") + ".",
		"Tag every person, organization, date, monetary amount, salary, and work location you find.",
		"Quote each value exactly as it appears in the text; do not paraphrase or translate.",
		"Report confidence within [0,1] for every entity. Preserve document order.",
	}
	return strings.Join(parts, " ")
}

// BuildTaggerUserPrompt wraps the section text for the tagging model.
func BuildTaggerUserPrompt(req TagRequest) string {
	var sb strings.Builder
	if req.Section != "" {
		fmt.Fprintf(&sb, "Contract section: %s\n\n", req.Section)
	}
	sb.WriteString("Text:\n")
	sb.WriteString(req.Text)
	return sb.String()
}
