package repository

import (
	"context"
	"sync"

	"mutawazi_proposals/internal/domain/entities"
	"mutawazi_proposals/internal/usecase/interfaces"
)

// OverheadMemoryRepository holds the monthly overhead rate table, seeded with
// the company defaults. Updates replace the whole table.
type OverheadMemoryRepository struct {
	mu    sync.RWMutex
	rates entities.OverheadRates
}

var _ interfaces.IOverheadRepository = (*OverheadMemoryRepository)(nil)

func NewOverheadMemoryRepository() *OverheadMemoryRepository {
	return &OverheadMemoryRepository{rates: entities.DefaultOverheadRates()}
}

func (r *OverheadMemoryRepository) Get(_ context.Context) (entities.OverheadRates, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.rates.Clone(), nil
}

func (r *OverheadMemoryRepository) Update(_ context.Context, rates entities.OverheadRates) (entities.OverheadRates, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rates = rates.Clone()
	return r.rates.Clone(), nil
}
