package request

import (
	"mutawazi_proposals/internal/domain/entities"
)

// DeliverableRequest is one deliverable of a cash-flow request.
//
// Amount is optional: absent means "use the catalog price of service_id",
// present means "charge exactly this" (and wins over the catalog price when
// both are given). The pointer distinction is resolved into an explicit
// PriceSource here so the engine never sees a nullable field.
type DeliverableRequest struct {
	Name      string   `json:"name" binding:"required"`
	DueDate   string   `json:"due_date" binding:"required"`
	ServiceID string   `json:"service_id"`
	Amount    *float64 `json:"amount"`
	Salaries  float64  `json:"salaries"`
	Tools     float64  `json:"tools"`
	Others    float64  `json:"others"`
}

type CashFlowRequest struct {
	Deliverables []DeliverableRequest `json:"deliverables" binding:"required"`
}

func (r DeliverableRequest) ToEntity() entities.DeliverableInput {
	price := entities.CatalogPrice()
	if r.Amount != nil {
		price = entities.ExplicitPrice(*r.Amount)
	}
	return entities.DeliverableInput{
		Name:      r.Name,
		DueDate:   r.DueDate,
		ServiceID: r.ServiceID,
		Price:     price,
		Salaries:  r.Salaries,
		Tools:     r.Tools,
		Others:    r.Others,
	}
}

func (r CashFlowRequest) ToEntities() []entities.DeliverableInput {
	deliverables := make([]entities.DeliverableInput, len(r.Deliverables))
	for i, d := range r.Deliverables {
		deliverables[i] = d.ToEntity()
	}
	return deliverables
}
