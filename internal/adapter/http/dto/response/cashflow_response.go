package response

import "mutawazi_proposals/internal/domain/entities"

// CashFlowResponse is the full result of a deliverable cash-flow request:
// the per-deliverable lines in input order plus the aggregate summary.
type CashFlowResponse struct {
	Deliverables []entities.DeliverableResult `json:"deliverables"`
	Summary      entities.CashFlowSummary     `json:"summary"`
}

func FromCashFlow(results []entities.DeliverableResult, summary entities.CashFlowSummary) CashFlowResponse {
	return CashFlowResponse{Deliverables: results, Summary: summary}
}
