package entities

// ProjectMetadata is the project-level context collected up front. Names are
// bilingual because proposals are issued in English and Arabic.
type ProjectMetadata struct {
	ProjectNameEN   string `json:"project_name_en"`
	ProjectNameAR   string `json:"project_name_ar"`
	ClientNameEN    string `json:"client_name_en"`
	ClientNameAR    string `json:"client_name_ar"`
	ProjectType     string `json:"project_type"` // fixed, framework, or deliverable
	BOQType         string `json:"boq_type"`     // deliverable-based or monthly resources-based
	NumDeliverables int    `json:"num_deliverables"`
	StartDate       string `json:"start_date"` // YYYY-MM-DD
	EndDate         string `json:"end_date"`   // YYYY-MM-DD
	RFPCode         string `json:"rfp_code"`
	DurationMonths  int    `json:"duration_months"`
	QuotationCode   string `json:"quotation_code"`
	VersionName     string `json:"version_name"`
	CreatedOn       string `json:"created_on"` // YYYY-MM-DD
}

// ReadinessResult scores a pricing-readiness self assessment.
type ReadinessResult struct {
	Score      int      `json:"score"`
	Status     string   `json:"status"`
	CanProceed bool     `json:"can_proceed"`
	Questions  []string `json:"questions"`
}
