package entities

import "time"

// StoredProposal is the record kept in the proposal store under a quotation
// code. A record carries project metadata, an assembled proposal, or both;
// the summary formatter requires both.
//
// Storage model:
//   - key: quotation_code
//   - writes replace the whole record (last writer wins, no cross-key
//     transactions)
type StoredProposal struct {
	QuotationCode string           `json:"quotation_code"`
	Metadata      *ProjectMetadata `json:"metadata,omitempty"`
	Proposal      *Proposal        `json:"proposal,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
}
