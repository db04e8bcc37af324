package usecase

import "mutawazi_proposals/internal/domain/entities"

// overheadBaseFactor is the fixed 15% markup applied to direct costs on top
// of the allocated monthly overhead. Business rule, not derived.
const overheadBaseFactor = 0.15

// CalculateOverhead allocates overhead to a deliverable: 15% of its direct
// costs plus the full monthly overhead table carried for the deliverable's
// duration. Inputs are pre-validated by the caller; the function is pure.
func CalculateOverhead(baseCosts float64, rates entities.OverheadRates, durationMonths int) float64 {
	totalOverhead := rates.MonthlyTotal() * float64(durationMonths)
	return baseCosts*overheadBaseFactor + totalOverhead
}
