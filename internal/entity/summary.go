package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/ebolowa/contract-insight/constants"
)

// SummaryDraft is what the generator produces before persistence.
type SummaryDraft struct {
	Content    string
	Confidence float32
	WordCount  int
	ModelName  string
}

// Summary is a persisted, append-only summary record. Regeneration for the
// same (contract, tier) creates a new record; approval sticks to the record
// it was given on, never to the tier.
type Summary struct {
	ID         uuid.UUID      `json:"id"`
	ContractID uuid.UUID      `json:"contract_id"`
	Tier       constants.Tier `json:"tier"`
	Content    string         `json:"content"`
	Confidence float32        `json:"confidence"`
	WordCount  int            `json:"word_count"`
	ModelName  string         `json:"model_name"`
	Approved   bool           `json:"approved"`
	CreatedAt  time.Time      `json:"created_at"`
}

// Feedback is a reviewer rating attached to a specific summary record.
type Feedback struct {
	ID        uuid.UUID `json:"id"`
	SummaryID uuid.UUID `json:"summary_id"`
	Rating    int       `json:"rating"` // 1..5
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
