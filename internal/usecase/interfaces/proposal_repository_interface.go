package interfaces

import (
	"context"

	"mutawazi_proposals/internal/domain/entities"
)

// IProposalRepository abstracts keyed persistence of proposal records.
//
// Contract assumed by the engine:
//   - operations are atomic per quotation code
//   - Put overwrites an existing record wholesale (last writer wins)
//   - Get returns a zero-value record (empty QuotationCode) when the code is
//     absent, leaving not-found mapping to the use case
type IProposalRepository interface {
	Put(ctx context.Context, record entities.StoredProposal) (entities.StoredProposal, error)
	Get(ctx context.Context, quotationCode string) (entities.StoredProposal, error)
	Delete(ctx context.Context, quotationCode string) (bool, error)
	ListCodes(ctx context.Context) ([]string, error)
}
