package response

import "mutawazi_proposals/internal/domain/entities"

type ServiceCatalogResponse struct {
	Services      entities.ServiceCatalog `json:"services"`
	TotalServices int                     `json:"total_services"`
}

func FromCatalog(catalog entities.ServiceCatalog) ServiceCatalogResponse {
	return ServiceCatalogResponse{Services: catalog, TotalServices: catalog.Len()}
}

type OverheadResponse struct {
	OverheadCosts entities.OverheadRates `json:"overhead_costs"`
}

type UpdateOverheadResponse struct {
	Success              bool                   `json:"success"`
	UpdatedOverheadCosts entities.OverheadRates `json:"updated_overhead_costs"`
}

type PriceJustificationResponse struct {
	ServiceID     string  `json:"service_id"`
	ProposedPrice float64 `json:"proposed_price"`
	Justification string  `json:"justification"`
}
