package constants

import "strings"

// DocumentFormats holds the allowed values for the format field in contracts.
var DocumentFormats = []string{"PDF", "DOCX"}

const (
	PDF  = "PDF"
	DOCX = "DOCX"
)

// AllowedExtensions holds the default allowed file extensions for contract
// ingestion. DOC is accepted at the boundary and routed through the DOCX
// reader; legacy OLE containers fail there as corrupt documents.
var AllowedExtensions = map[string]struct{}{
	"pdf":  {},
	"doc":  {},
	"docx": {},
}

// AllowedExtensionStrings returns the extension allow-list for schema enums
// and validation.
func AllowedExtensionStrings() []string {
	out := make([]string, 0, len(AllowedExtensions))
	for ext := range AllowedExtensions {
		out = append(out, ext)
	}
	return out
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToFormat maps a normalized extension to its document format.
// Returns "" for unsupported extensions.
func MapExtToFormat(ext string) string {
	switch NormalizeExt(ext) {
	case "pdf":
		return PDF
	case "doc", "docx":
		return DOCX
	default:
		return ""
	}
}
