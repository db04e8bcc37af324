package request

// PriceJustificationRequest asks for marketing copy justifying a proposed
// price against a catalog service.
type PriceJustificationRequest struct {
	ServiceID     string  `json:"service_id" binding:"required"`
	ProposedPrice float64 `json:"proposed_price"`
}

// OverheadRequest replaces the monthly overhead rate table. Keys are cost
// categories, values are SAR per month.
type OverheadRequest map[string]float64
