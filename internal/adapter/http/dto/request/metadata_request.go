package request

import "mutawazi_proposals/internal/domain/entities"

// ProjectMetadataRequest creates the project context for a proposal.
type ProjectMetadataRequest struct {
	ProjectNameEN   string `json:"project_name_en" binding:"required"`
	ProjectNameAR   string `json:"project_name_ar" binding:"required"`
	ClientNameEN    string `json:"client_name_en" binding:"required"`
	ClientNameAR    string `json:"client_name_ar" binding:"required"`
	ProjectType     string `json:"project_type" binding:"required"`
	BOQType         string `json:"boq_type" binding:"required"`
	NumDeliverables int    `json:"num_deliverables"`
	StartDate       string `json:"start_date" binding:"required"`
	EndDate         string `json:"end_date" binding:"required"`
	RFPCode         string `json:"rfp_code" binding:"required"`
}

func (r ProjectMetadataRequest) ToEntity() entities.ProjectMetadata {
	return entities.ProjectMetadata{
		ProjectNameEN:   r.ProjectNameEN,
		ProjectNameAR:   r.ProjectNameAR,
		ClientNameEN:    r.ClientNameEN,
		ClientNameAR:    r.ClientNameAR,
		ProjectType:     r.ProjectType,
		BOQType:         r.BOQType,
		NumDeliverables: r.NumDeliverables,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		RFPCode:         r.RFPCode,
	}
}

// ReadinessRequest carries the boolean answers to the readiness checklist.
type ReadinessRequest struct {
	Answers []bool `json:"answers" binding:"required"`
}
