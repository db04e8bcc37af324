package repository

import (
	"context"
	"sync"

	"mutawazi_proposals/internal/domain/entities"
	"mutawazi_proposals/internal/usecase/interfaces"
)

// ProposalMemoryRepository keeps proposal records in process memory. This is
// the default store: records do not survive a restart and concurrent writers
// to the same quotation code follow last-writer-wins.
type ProposalMemoryRepository struct {
	mu      sync.RWMutex
	records map[string]entities.StoredProposal
}

var _ interfaces.IProposalRepository = (*ProposalMemoryRepository)(nil)

func NewProposalMemoryRepository() *ProposalMemoryRepository {
	return &ProposalMemoryRepository{records: make(map[string]entities.StoredProposal)}
}

func (r *ProposalMemoryRepository) Put(_ context.Context, record entities.StoredProposal) (entities.StoredProposal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[record.QuotationCode] = record
	return record, nil
}

func (r *ProposalMemoryRepository) Get(_ context.Context, quotationCode string) (entities.StoredProposal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.records[quotationCode], nil
}

func (r *ProposalMemoryRepository) Delete(_ context.Context, quotationCode string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[quotationCode]; !ok {
		return false, nil
	}
	delete(r.records, quotationCode)
	return true, nil
}

func (r *ProposalMemoryRepository) ListCodes(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	codes := make([]string, 0, len(r.records))
	for code := range r.records {
		codes = append(codes, code)
	}
	return codes, nil
}
