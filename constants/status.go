package constants

// ContractStatus is the canonical processing status for rows in contracts.
type ContractStatus string

// Stable values (store these exact strings in DB).
const (
	StatusPending     ContractStatus = "PENDING"     // accepted, not yet extracting
	StatusExtracting  ContractStatus = "EXTRACTING"  // text extraction in progress
	StatusExtracted   ContractStatus = "EXTRACTED"   // text + entities persisted
	StatusSummarizing ContractStatus = "SUMMARIZING" // summary generation in progress
	StatusCompleted   ContractStatus = "COMPLETED"   // at least one summary generated
	StatusFailed      ContractStatus = "FAILED"      // terminal for the current attempt
)

// ContractStatuses holds the allowed values for the status field.
var ContractStatuses = []string{
	string(StatusPending),
	string(StatusExtracting),
	string(StatusExtracted),
	string(StatusSummarizing),
	string(StatusCompleted),
	string(StatusFailed),
}

// transitions is the closed set of legal moves. The orchestrator is the only
// writer of status; FAILED is re-enterable so a contract can be resubmitted
// (extraction retry) or re-summarized (when extracted text already exists).
var transitions = map[ContractStatus][]ContractStatus{
	StatusPending:     {StatusExtracting, StatusFailed},
	StatusExtracting:  {StatusExtracted, StatusFailed},
	StatusExtracted:   {StatusSummarizing, StatusFailed},
	StatusSummarizing: {StatusCompleted, StatusFailed},
	StatusCompleted:   {StatusSummarizing},
	StatusFailed:      {StatusExtracting, StatusSummarizing},
}

// CanTransition reports whether moving from -> to is a legal state change.
func CanTransition(from, to ContractStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the status ends the current processing attempt.
func IsTerminal(s ContractStatus) bool {
	return s == StatusCompleted || s == StatusFailed
}
