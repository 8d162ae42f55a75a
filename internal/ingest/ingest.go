// Package ingest is the accept/reject boundary for uploaded contracts.
// Input errors are synchronous and leave no record behind; only documents
// that pass validation get a contract row.
package ingest

import (
	"context"

	"github.com/ebolowa/contract-insight/internal/entity"
)

// SubmitResult is the outcome of an accepted upload.
type SubmitResult struct {
	Contract *entity.Contract
	HashHex  string
}

// Ingestor is the behavior the server depends on.
type Ingestor interface {
	// Submit validates and records an uploaded document. The returned
	// contract is PENDING; processing is the caller's next move.
	Submit(ctx context.Context, data []byte, filename string) (SubmitResult, error)
}
