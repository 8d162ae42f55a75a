package entity

import (
	"github.com/google/uuid"

	"github.com/ebolowa/contract-insight/constants"
)

// Entity is one structured fact extracted from contract text.
// Confidence is always within [0,1]. Section is the contract section the
// value was attributed to, when one could be identified.
type Entity struct {
	ID         uuid.UUID            `json:"id"`
	ContractID uuid.UUID            `json:"contract_id"`
	Type       constants.EntityType `json:"type"`
	Value      string               `json:"value"`
	Confidence float32              `json:"confidence"`
	Section    string               `json:"section,omitempty"`
	Position   int                  `json:"position"`
}

// ExtractionSet is the outcome of one entity-extraction pass. Entities keep
// extraction order; duplicates from overlapping spans are allowed and left to
// the consumer. Degraded distinguishes "the extractor could not run" from a
// genuine zero-entity result.
type ExtractionSet struct {
	Entities []Entity
	Warnings []string
	Degraded bool
}
