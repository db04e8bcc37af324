package response

import "mutawazi_proposals/internal/domain/entities"

type CreateProposalResponse struct {
	Success       bool              `json:"success"`
	QuotationCode string            `json:"quotation_code"`
	Proposal      entities.Proposal `json:"proposal"`
}

func FromProposal(p entities.Proposal) CreateProposalResponse {
	return CreateProposalResponse{Success: true, QuotationCode: p.OfferNumber, Proposal: p}
}

type StoredProposalResponse struct {
	QuotationCode string                    `json:"quotation_code"`
	Metadata      *entities.ProjectMetadata `json:"metadata,omitempty"`
	Proposal      *entities.Proposal        `json:"proposal,omitempty"`
	CreatedAt     string                    `json:"created_at"`
}

func FromStoredProposal(record entities.StoredProposal) StoredProposalResponse {
	return StoredProposalResponse{
		QuotationCode: record.QuotationCode,
		Metadata:      record.Metadata,
		Proposal:      record.Proposal,
		CreatedAt:     record.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

type ProposalListResponse struct {
	Proposals  []string `json:"proposals"`
	TotalCount int      `json:"total_count"`
}

func FromProposalCodes(codes []string) ProposalListResponse {
	if codes == nil {
		codes = []string{}
	}
	return ProposalListResponse{Proposals: codes, TotalCount: len(codes)}
}

type SummaryResponse struct {
	Summary string `json:"summary"`
}

type DeleteProposalResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
