package usecase

import (
	"context"
	"errors"
	"math"
	"testing"

	"mutawazi_proposals/internal/domain/entities"
	mock_interfaces "mutawazi_proposals/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func testCatalog() entities.ServiceCatalog {
	return entities.ServiceCatalog{
		"1.2": {
			ID:             "1.2",
			Name:           "AI Trustworthiness & Risk Assessment",
			Unit:           "Service",
			DurationMonths: 2,
			Price:          30000,
		},
		"1.3": {
			ID:             "1.3",
			Name:           "Ethical AI Policy & Compliance Strategy",
			Unit:           "Service",
			DurationMonths: 3,
			Price:          15000,
		},
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCalculateOverhead(t *testing.T) {
	rates := entities.DefaultOverheadRates()
	if !almostEqual(rates.MonthlyTotal(), 108000) {
		t.Fatalf("expected default monthly total 108000, got %v", rates.MonthlyTotal())
	}

	t.Run("base plus monthly", func(t *testing.T) {
		got := CalculateOverhead(1250, rates, 2)
		if !almostEqual(got, 1250*0.15+108000*2) {
			t.Fatalf("unexpected overhead: %v", got)
		}
	})

	t.Run("zero base costs", func(t *testing.T) {
		got := CalculateOverhead(0, rates, 1)
		if !almostEqual(got, 108000) {
			t.Fatalf("unexpected overhead: %v", got)
		}
	})
}

func TestCashFlowUseCase_ComputeCashFlow(t *testing.T) {
	t.Run("rates load error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		overheadRepo := mock_interfaces.NewMockIOverheadRepository(ctrl)
		uc := NewCashFlowUseCase(testCatalog(), overheadRepo)

		overheadRepo.EXPECT().Get(gomock.Any()).Return(nil, errors.New("db"))

		_, _, err := uc.ComputeCashFlow(context.Background(), []entities.DeliverableInput{{
			Name: "Phase 1", DueDate: "2025-06-30", Price: entities.ExplicitPrice(1000),
		}})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("catalog priced deliverable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		overheadRepo := mock_interfaces.NewMockIOverheadRepository(ctrl)
		uc := NewCashFlowUseCase(testCatalog(), overheadRepo)

		overheadRepo.EXPECT().Get(gomock.Any()).Return(entities.DefaultOverheadRates(), nil)

		results, summary, err := uc.ComputeCashFlow(context.Background(), []entities.DeliverableInput{{
			Name:      "Risk Assessment",
			DueDate:   "2025-06-30",
			ServiceID: "1.2",
			Price:     entities.CatalogPrice(),
			Salaries:  1000,
			Tools:     200,
			Others:    50,
		}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(results) != 1 {
			t.Fatalf("expected 1 result, got %d", len(results))
		}

		r := results[0]
		if r.CashIn != 30000 {
			t.Fatalf("expected catalog price 30000, got %v", r.CashIn)
		}
		if !almostEqual(r.Overhead, 1250*0.15+108000*2) {
			t.Fatalf("unexpected overhead: %v", r.Overhead)
		}
		if !almostEqual(r.CashOut, 1250+216187.5) {
			t.Fatalf("unexpected cash out: %v", r.CashOut)
		}
		if !almostEqual(r.NetFlow, 30000-217437.5) {
			t.Fatalf("unexpected net flow: %v", r.NetFlow)
		}
		if r.IsProfitable {
			t.Fatalf("expected unprofitable deliverable")
		}
		if r.ServiceInfo == nil || r.ServiceInfo.DurationMonths != 2 || r.ServiceInfo.CatalogPrice != 30000 {
			t.Fatalf("unexpected service info: %+v", r.ServiceInfo)
		}
		if summary.IsProfitable {
			t.Fatalf("expected unprofitable summary")
		}
	})

	t.Run("explicit amount wins over catalog", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		overheadRepo := mock_interfaces.NewMockIOverheadRepository(ctrl)
		uc := NewCashFlowUseCase(testCatalog(), overheadRepo)

		overheadRepo.EXPECT().Get(gomock.Any()).Return(entities.OverheadRates{"salaries": 100}, nil)

		results, _, err := uc.ComputeCashFlow(context.Background(), []entities.DeliverableInput{{
			Name:      "Custom Priced",
			DueDate:   "2025-06-30",
			ServiceID: "1.2",
			Price:     entities.ExplicitPrice(55000),
		}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if results[0].CashIn != 55000 {
			t.Fatalf("expected explicit amount 55000, got %v", results[0].CashIn)
		}
		// Service duration still applies to the overhead even when the
		// explicit amount overrides the catalog price.
		if !almostEqual(results[0].Overhead, 100*2) {
			t.Fatalf("unexpected overhead: %v", results[0].Overhead)
		}
	})

	t.Run("no service defaults duration to one month", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		overheadRepo := mock_interfaces.NewMockIOverheadRepository(ctrl)
		uc := NewCashFlowUseCase(testCatalog(), overheadRepo)

		overheadRepo.EXPECT().Get(gomock.Any()).Return(entities.OverheadRates{"salaries": 100}, nil)

		results, _, err := uc.ComputeCashFlow(context.Background(), []entities.DeliverableInput{{
			Name: "Standalone", DueDate: "2025-06-30", Price: entities.ExplicitPrice(500),
		}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !almostEqual(results[0].Overhead, 100) {
			t.Fatalf("unexpected overhead: %v", results[0].Overhead)
		}
		if results[0].ServiceInfo != nil {
			t.Fatalf("expected no service info")
		}
	})

	t.Run("unknown service", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		overheadRepo := mock_interfaces.NewMockIOverheadRepository(ctrl)
		uc := NewCashFlowUseCase(testCatalog(), overheadRepo)

		overheadRepo.EXPECT().Get(gomock.Any()).Return(entities.DefaultOverheadRates(), nil)

		_, _, err := uc.ComputeCashFlow(context.Background(), []entities.DeliverableInput{{
			Name: "Ghost", DueDate: "2025-06-30", ServiceID: "9.9", Price: entities.CatalogPrice(),
		}})
		if !errors.Is(err, ErrUnknownService) {
			t.Fatalf("expected ErrUnknownService, got %v", err)
		}
	})

	t.Run("missing amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		overheadRepo := mock_interfaces.NewMockIOverheadRepository(ctrl)
		uc := NewCashFlowUseCase(testCatalog(), overheadRepo)

		overheadRepo.EXPECT().Get(gomock.Any()).Return(entities.DefaultOverheadRates(), nil)

		_, _, err := uc.ComputeCashFlow(context.Background(), []entities.DeliverableInput{{
			Name: "Unpriced", DueDate: "2025-06-30", Price: entities.CatalogPrice(),
		}})
		if !errors.Is(err, ErrMissingAmount) {
			t.Fatalf("expected ErrMissingAmount, got %v", err)
		}
	})

	t.Run("invalid deliverable aborts the whole request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		overheadRepo := mock_interfaces.NewMockIOverheadRepository(ctrl)
		uc := NewCashFlowUseCase(testCatalog(), overheadRepo)

		overheadRepo.EXPECT().Get(gomock.Any()).Return(entities.DefaultOverheadRates(), nil)

		results, _, err := uc.ComputeCashFlow(context.Background(), []entities.DeliverableInput{
			{Name: "OK", DueDate: "2025-06-30", Price: entities.ExplicitPrice(1000)},
			{Name: "Bad Date", DueDate: "30/06/2025", Price: entities.ExplicitPrice(1000)},
		})
		if !errors.Is(err, ErrInvalidDeliverable) {
			t.Fatalf("expected ErrInvalidDeliverable, got %v", err)
		}
		if results != nil {
			t.Fatalf("expected no partial results")
		}
	})

	t.Run("negative costs rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		overheadRepo := mock_interfaces.NewMockIOverheadRepository(ctrl)
		uc := NewCashFlowUseCase(testCatalog(), overheadRepo)

		overheadRepo.EXPECT().Get(gomock.Any()).Return(entities.DefaultOverheadRates(), nil)

		_, _, err := uc.ComputeCashFlow(context.Background(), []entities.DeliverableInput{{
			Name: "Negative", DueDate: "2025-06-30", Price: entities.ExplicitPrice(1000), Tools: -1,
		}})
		if !errors.Is(err, ErrInvalidDeliverable) {
			t.Fatalf("expected ErrInvalidDeliverable, got %v", err)
		}
	})

	t.Run("cumulative net flow follows input order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		overheadRepo := mock_interfaces.NewMockIOverheadRepository(ctrl)
		uc := NewCashFlowUseCase(testCatalog(), overheadRepo)

		overheadRepo.EXPECT().Get(gomock.Any()).Return(entities.OverheadRates{}, nil)

		results, summary, err := uc.ComputeCashFlow(context.Background(), []entities.DeliverableInput{
			{Name: "A", DueDate: "2025-01-31", Price: entities.ExplicitPrice(1000), Salaries: 400},
			{Name: "B", DueDate: "2025-02-28", Price: entities.ExplicitPrice(2000), Salaries: 3000},
			{Name: "C", DueDate: "2025-03-31", Price: entities.ExplicitPrice(5000)},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// netFlow per step: 540, -1450, 5000 (overhead = 15% of base costs
		// with an empty rate table).
		wantCumulative := []float64{540, -910, 4090}
		for i, want := range wantCumulative {
			if !almostEqual(results[i].CumulativeNetFlow, want) {
				t.Fatalf("step %d: expected cumulative %v, got %v", i, want, results[i].CumulativeNetFlow)
			}
		}
		if !almostEqual(summary.TotalRevenue, 8000) {
			t.Fatalf("unexpected total revenue: %v", summary.TotalRevenue)
		}
		if !almostEqual(summary.TotalProfit, 4090) {
			t.Fatalf("unexpected total profit: %v", summary.TotalProfit)
		}
		if !summary.IsProfitable {
			t.Fatalf("expected profitable summary")
		}
		if !almostEqual(summary.ProfitMargin, round2(4090.0/8000*100)) {
			t.Fatalf("unexpected margin: %v", summary.ProfitMargin)
		}
	})

	t.Run("empty input yields zero margin", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		overheadRepo := mock_interfaces.NewMockIOverheadRepository(ctrl)
		uc := NewCashFlowUseCase(testCatalog(), overheadRepo)

		overheadRepo.EXPECT().Get(gomock.Any()).Return(entities.DefaultOverheadRates(), nil)

		results, summary, err := uc.ComputeCashFlow(context.Background(), nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(results) != 0 {
			t.Fatalf("expected no results")
		}
		if summary.ProfitMargin != 0 || summary.IsProfitable {
			t.Fatalf("unexpected summary: %+v", summary)
		}
	})
}
