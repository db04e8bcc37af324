package request

import (
	"mutawazi_proposals/internal/domain/entities"
)

type ProposalItemRequest struct {
	Description string  `json:"description" binding:"required"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	TotalPrice  float64 `json:"total_price"`
}

type PaymentTermRequest struct {
	Description string  `json:"description" binding:"required"`
	Percentage  float64 `json:"percentage"`
}

// FinalProposalRequest is the payload for assembling a financial proposal.
type FinalProposalRequest struct {
	ProposalItems []ProposalItemRequest `json:"proposal_items" binding:"required"`
	PaymentTerms  []PaymentTermRequest  `json:"payment_terms" binding:"required"`
}

// ResolveItems maps the payload to line items, defaulting quantity to 1 when
// it was omitted.
func (r FinalProposalRequest) ResolveItems() []entities.LineItem {
	items := make([]entities.LineItem, len(r.ProposalItems))
	for i, item := range r.ProposalItems {
		quantity := item.Quantity
		if quantity == 0 {
			quantity = 1
		}
		items[i] = entities.LineItem{
			Description: item.Description,
			Quantity:    quantity,
			UnitPrice:   item.UnitPrice,
			TotalPrice:  item.TotalPrice,
		}
	}
	return items
}

func (r FinalProposalRequest) ResolveTerms() []entities.PaymentTerm {
	terms := make([]entities.PaymentTerm, len(r.PaymentTerms))
	for i, term := range r.PaymentTerms {
		terms[i] = entities.PaymentTerm{
			Description: term.Description,
			Percentage:  term.Percentage,
		}
	}
	return terms
}
