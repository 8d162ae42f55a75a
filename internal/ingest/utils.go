package ingest

import (
	"path/filepath"
	"strings"

	"github.com/ebolowa/contract-insight/constants"
)

// AllowedExt checks if a file extension is in the allowed set (pdf/doc/docx).
func AllowedExt(ext string) bool {
	ext = constants.NormalizeExt(ext)
	_, ok := constants.AllowedExtensions[ext]
	return ok
}

// ExtOf returns the normalized extension of a filename, "" when missing.
func ExtOf(filename string) string {
	return constants.NormalizeExt(filepath.Ext(filename))
}

// IsHidden checks if a file or directory is hidden (starts with '.').
func IsHidden(path string) bool {
	base := filepath.Base(path)
	return strings.HasPrefix(base, ".")
}
