package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/ebolowa/contract-insight/constants"
)

// Document is an uploaded contract file before any processing. It is owned by
// the orchestrator only for the duration of extraction; the raw bytes are not
// retained once text has been derived.
type Document struct {
	Bytes    []byte
	Filename string
	Ext      string
	Size     int
}

// Contract represents one uploaded employment contract and its processing
// status, for data transfer between layers.
type Contract struct {
	ID            uuid.UUID                `json:"id"`
	Filename      string                   `json:"filename"`
	FileExt       string                   `json:"file_ext"`
	Size          int                      `json:"size"`
	Language      string                   `json:"language"`
	Status        constants.ContractStatus `json:"status"`
	ErrorKind     string                   `json:"error_kind,omitempty"`
	ErrorMessage  string                   `json:"error_message,omitempty"`
	ExtractedText string                   `json:"-"`
	Degraded      bool                     `json:"extraction_degraded"`
	UploadedAt    time.Time                `json:"uploaded_at"`
	ProcessedAt   *time.Time               `json:"processed_at,omitempty"`
}

// ExtractedText is the normalized plain text derived from a Document.
// Non-empty by construction: extraction failure is a terminal error, never an
// empty string.
type ExtractedText struct {
	Text     string
	Format   string
	Pages    int
	Language constants.Language
}
