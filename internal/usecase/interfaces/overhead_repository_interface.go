package interfaces

import (
	"context"

	"mutawazi_proposals/internal/domain/entities"
)

// IOverheadRepository holds the monthly overhead rate table used by every
// cash-flow calculation. Injected instead of read from process-wide state so
// tests can pin the rates.
type IOverheadRepository interface {
	Get(ctx context.Context) (entities.OverheadRates, error)
	Update(ctx context.Context, rates entities.OverheadRates) (entities.OverheadRates, error)
}
