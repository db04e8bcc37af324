package request

import (
	"testing"
)

func TestDeliverableRequest_ToEntity(t *testing.T) {
	t.Run("absent amount resolves to catalog price", func(t *testing.T) {
		r := DeliverableRequest{Name: "Phase 1", DueDate: "2025-06-30", ServiceID: "1.2"}

		d := r.ToEntity()
		if d.Price.IsExplicit() {
			t.Fatalf("expected catalog price source, got %+v", d.Price)
		}
		if d.ServiceID != "1.2" {
			t.Fatalf("unexpected service id: %s", d.ServiceID)
		}
	})

	t.Run("present amount resolves to explicit price", func(t *testing.T) {
		amount := 45000.0
		r := DeliverableRequest{Name: "Phase 1", DueDate: "2025-06-30", Amount: &amount}

		d := r.ToEntity()
		if !d.Price.IsExplicit() || d.Price.Amount() != 45000 {
			t.Fatalf("expected explicit price 45000, got %+v", d.Price)
		}
	})

	t.Run("zero amount is still explicit", func(t *testing.T) {
		// A present-but-zero amount must reach the engine as explicit so it
		// can be rejected there, not silently fall back to the catalog.
		amount := 0.0
		r := DeliverableRequest{Name: "Phase 1", DueDate: "2025-06-30", ServiceID: "1.2", Amount: &amount}

		d := r.ToEntity()
		if !d.Price.IsExplicit() {
			t.Fatalf("expected explicit price source, got %+v", d.Price)
		}
	})
}

func TestCashFlowRequest_ToEntities(t *testing.T) {
	amount := 1000.0
	r := CashFlowRequest{Deliverables: []DeliverableRequest{
		{Name: "A", DueDate: "2025-01-31", Amount: &amount, Salaries: 400},
		{Name: "B", DueDate: "2025-02-28", ServiceID: "1.2"},
	}}

	deliverables := r.ToEntities()
	if len(deliverables) != 2 {
		t.Fatalf("expected 2 deliverables, got %d", len(deliverables))
	}
	if deliverables[0].Name != "A" || deliverables[1].Name != "B" {
		t.Fatalf("expected input order preserved: %+v", deliverables)
	}
	if deliverables[0].Salaries != 400 {
		t.Fatalf("unexpected salaries: %v", deliverables[0].Salaries)
	}
}

func TestFinalProposalRequest_Resolve(t *testing.T) {
	r := FinalProposalRequest{
		ProposalItems: []ProposalItemRequest{
			{Description: "Framework", UnitPrice: 300000, TotalPrice: 300000},
			{Description: "Assessment", Quantity: 2, UnitPrice: 100000, TotalPrice: 200000},
		},
		PaymentTerms: []PaymentTermRequest{
			{Description: "Advance", Percentage: 40},
			{Description: "On delivery", Percentage: 60},
		},
	}

	items := r.ResolveItems()
	if items[0].Quantity != 1 {
		t.Fatalf("expected omitted quantity defaulted to 1, got %d", items[0].Quantity)
	}
	if items[1].Quantity != 2 {
		t.Fatalf("expected explicit quantity kept, got %d", items[1].Quantity)
	}

	terms := r.ResolveTerms()
	if len(terms) != 2 || terms[0].Percentage != 40 || terms[1].Percentage != 60 {
		t.Fatalf("unexpected terms: %+v", terms)
	}
	if terms[0].Amount != 0 {
		t.Fatalf("expected amount left for assembly, got %v", terms[0].Amount)
	}
}
