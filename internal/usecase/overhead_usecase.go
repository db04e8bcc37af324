package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"

	"mutawazi_proposals/internal/domain/entities"
	"mutawazi_proposals/internal/usecase/interfaces"
)

var ErrInvalidOverheadRates = errors.New("invalid overhead rates")

// IOverheadUseCase reads and replaces the monthly overhead rate table.

type IOverheadUseCase interface {
	GetRates(ctx context.Context) (entities.OverheadRates, error)
	UpdateRates(ctx context.Context, rates entities.OverheadRates) (entities.OverheadRates, error)
}

type OverheadUseCase struct {
	repo interfaces.IOverheadRepository
}

var _ IOverheadUseCase = (*OverheadUseCase)(nil)

func NewOverheadUseCase(repo interfaces.IOverheadRepository) *OverheadUseCase {
	return &OverheadUseCase{repo: repo}
}

func (u *OverheadUseCase) GetRates(ctx context.Context) (entities.OverheadRates, error) {
	return u.repo.Get(ctx)
}

func (u *OverheadUseCase) UpdateRates(ctx context.Context, rates entities.OverheadRates) (entities.OverheadRates, error) {
	if len(rates) == 0 {
		return nil, fmt.Errorf("%w: at least one category is required", ErrInvalidOverheadRates)
	}
	for category, value := range rates {
		if value < 0 {
			return nil, fmt.Errorf("%w: %s must not be negative", ErrInvalidOverheadRates, category)
		}
	}

	updated, err := u.repo.Update(ctx, rates)
	if err != nil {
		return nil, err
	}
	log.Printf("[overhead][usecase] rates updated categories=%d monthly_total=%.2f", len(updated), updated.MonthlyTotal())
	return updated, nil
}
