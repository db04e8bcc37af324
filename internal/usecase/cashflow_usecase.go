package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"mutawazi_proposals/internal/domain/entities"
	"mutawazi_proposals/internal/usecase/interfaces"
)

var (
	ErrUnknownService     = errors.New("service id not found in catalog")
	ErrMissingAmount      = errors.New("amount is required when service id is not provided")
	ErrInvalidDeliverable = errors.New("invalid deliverable")
)

// ICashFlowUseCase exposes the deliverable cash-flow engine.
//
// ComputeCashFlow is all-or-nothing: any invalid deliverable aborts the whole
// call with no partial results.

type ICashFlowUseCase interface {
	ComputeCashFlow(ctx context.Context, deliverables []entities.DeliverableInput) ([]entities.DeliverableResult, entities.CashFlowSummary, error)
}

type CashFlowUseCase struct {
	catalog      entities.ServiceCatalog
	overheadRepo interfaces.IOverheadRepository
}

var _ ICashFlowUseCase = (*CashFlowUseCase)(nil)

func NewCashFlowUseCase(catalog entities.ServiceCatalog, overheadRepo interfaces.IOverheadRepository) *CashFlowUseCase {
	return &CashFlowUseCase{catalog: catalog, overheadRepo: overheadRepo}
}

// ComputeCashFlow prices each deliverable in input order, carrying a running
// cumulative net flow across the sequence, then aggregates the summary.
func (u *CashFlowUseCase) ComputeCashFlow(ctx context.Context, deliverables []entities.DeliverableInput) ([]entities.DeliverableResult, entities.CashFlowSummary, error) {
	rates, err := u.overheadRepo.Get(ctx)
	if err != nil {
		log.Printf("[cashflow][usecase] failed loading overhead rates err=%v", err)
		return nil, entities.CashFlowSummary{}, err
	}

	results := make([]entities.DeliverableResult, 0, len(deliverables))
	cumulativeNetFlow := 0.0

	for i, d := range deliverables {
		if err := validateDeliverable(d); err != nil {
			return nil, entities.CashFlowSummary{}, fmt.Errorf("deliverable %d: %w", i+1, err)
		}

		var service *entities.Service
		if d.ServiceID != "" {
			s, ok := u.catalog.GetByID(d.ServiceID)
			if !ok {
				return nil, entities.CashFlowSummary{}, fmt.Errorf("%w: %s", ErrUnknownService, d.ServiceID)
			}
			service = &s
		}

		// Explicit amount wins over the catalog price when both are given.
		var amount float64
		switch {
		case d.Price.IsExplicit():
			amount = d.Price.Amount()
		case service != nil:
			amount = service.Price
		default:
			return nil, entities.CashFlowSummary{}, fmt.Errorf("deliverable %d: %w", i+1, ErrMissingAmount)
		}

		baseCosts := d.Salaries + d.Tools + d.Others
		duration := 1
		if service != nil {
			duration = service.DurationMonths
		}
		overhead := CalculateOverhead(baseCosts, rates, duration)

		cashOut := baseCosts + overhead
		netFlow := amount - cashOut
		cumulativeNetFlow += netFlow

		result := entities.DeliverableResult{
			Name:              d.Name,
			DueDate:           d.DueDate,
			ServiceID:         d.ServiceID,
			CashIn:            amount,
			Salaries:          d.Salaries,
			Tools:             d.Tools,
			Others:            d.Others,
			Overhead:          overhead,
			CashOut:           cashOut,
			NetFlow:           netFlow,
			CumulativeNetFlow: cumulativeNetFlow,
			IsProfitable:      netFlow > 0,
		}
		if service != nil {
			result.ServiceInfo = &entities.ServiceInfo{
				Name:           service.Name,
				CatalogPrice:   service.Price,
				DurationMonths: service.DurationMonths,
				Unit:           service.Unit,
			}
		}
		results = append(results, result)
	}

	summary := summarize(results)
	log.Printf("[cashflow][usecase] computed deliverables=%d revenue=%.2f costs=%.2f margin=%.2f", len(results), summary.TotalRevenue, summary.TotalCosts, summary.ProfitMargin)
	return results, summary, nil
}

func summarize(results []entities.DeliverableResult) entities.CashFlowSummary {
	totalRevenue := 0.0
	totalCosts := 0.0
	for _, r := range results {
		totalRevenue += r.CashIn
		totalCosts += r.CashOut
	}
	totalProfit := totalRevenue - totalCosts

	// Margin is undefined on zero revenue; report 0 rather than failing.
	margin := 0.0
	if totalRevenue > 0 {
		margin = round2(totalProfit / totalRevenue * 100)
	}

	return entities.CashFlowSummary{
		TotalRevenue: totalRevenue,
		TotalCosts:   totalCosts,
		TotalProfit:  totalProfit,
		ProfitMargin: margin,
		IsProfitable: totalProfit > 0,
	}
}

func validateDeliverable(d entities.DeliverableInput) error {
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidDeliverable)
	}
	if _, err := time.Parse("2006-01-02", d.DueDate); err != nil {
		return fmt.Errorf("%w: due_date must be YYYY-MM-DD", ErrInvalidDeliverable)
	}
	if d.Price.IsExplicit() && d.Price.Amount() <= 0 {
		return fmt.Errorf("%w: amount must be positive", ErrInvalidDeliverable)
	}
	if d.Salaries < 0 || d.Tools < 0 || d.Others < 0 {
		return fmt.Errorf("%w: cost components must not be negative", ErrInvalidDeliverable)
	}
	return nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
