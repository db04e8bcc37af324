package response

import "mutawazi_proposals/internal/domain/entities"

type CreateMetadataResponse struct {
	Success       bool                     `json:"success"`
	QuotationCode string                   `json:"quotation_code"`
	Metadata      entities.ProjectMetadata `json:"metadata"`
}

func FromMetadata(meta entities.ProjectMetadata) CreateMetadataResponse {
	return CreateMetadataResponse{Success: true, QuotationCode: meta.QuotationCode, Metadata: meta}
}

type ReadinessQuestionsResponse struct {
	Questions      []string `json:"questions"`
	RequiredScore  int      `json:"required_score"`
	TotalQuestions int      `json:"total_questions"`
}
