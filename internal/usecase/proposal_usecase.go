package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"mutawazi_proposals/internal/domain/entities"
	"mutawazi_proposals/internal/usecase/interfaces"
)

// paymentTermTolerance is the allowed deviation of the percentage sum from 100.
const paymentTermTolerance = 0.01

var (
	ErrProposalNotFound     = errors.New("proposal not found")
	ErrInvalidQuotationCode = errors.New("invalid quotation code")
	ErrInvalidLineItem      = errors.New("invalid proposal item")
	ErrInvalidPaymentTerm   = errors.New("invalid payment term")
	ErrPaymentTermMismatch  = errors.New("payment terms do not sum to 100%")
	ErrNoLineItems          = errors.New("at least one proposal item is required")
	ErrNoPaymentTerms       = errors.New("at least one payment term is required")
)

// IProposalUseCase assembles, stores and renders financial proposals.

type IProposalUseCase interface {
	CreateProposal(ctx context.Context, items []entities.LineItem, terms []entities.PaymentTerm) (entities.Proposal, error)
	GetByCode(ctx context.Context, quotationCode string) (entities.StoredProposal, error)
	ListCodes(ctx context.Context) ([]string, error)
	DeleteByCode(ctx context.Context, quotationCode string) error
	SummaryByCode(ctx context.Context, quotationCode string) (string, error)
}

type ProposalUseCase struct {
	repo interfaces.IProposalRepository
}

var _ IProposalUseCase = (*ProposalUseCase)(nil)

func NewProposalUseCase(repo interfaces.IProposalRepository) *ProposalUseCase {
	return &ProposalUseCase{repo: repo}
}

// CreateProposal validates line items and payment terms, computes per-term
// amounts in input order and stores the assembled record under a fresh
// quotation code. A code collision overwrites the older record.
func (u *ProposalUseCase) CreateProposal(ctx context.Context, items []entities.LineItem, terms []entities.PaymentTerm) (entities.Proposal, error) {
	if len(items) == 0 {
		return entities.Proposal{}, ErrNoLineItems
	}
	if len(terms) == 0 {
		return entities.Proposal{}, ErrNoPaymentTerms
	}
	for i, item := range items {
		if err := validateLineItem(item); err != nil {
			return entities.Proposal{}, fmt.Errorf("item %d: %w", i+1, err)
		}
	}

	totalPercentage := 0.0
	for i, term := range terms {
		if err := validatePaymentTerm(term); err != nil {
			return entities.Proposal{}, fmt.Errorf("term %d: %w", i+1, err)
		}
		totalPercentage += term.Percentage
	}
	if diff := totalPercentage - 100; diff > paymentTermTolerance || diff < -paymentTermTolerance {
		return entities.Proposal{}, fmt.Errorf("%w: current sum is %.2f%%", ErrPaymentTermMismatch, totalPercentage)
	}

	totalAmount := 0.0
	for _, item := range items {
		totalAmount += item.TotalPrice
	}

	assembled := make([]entities.PaymentTerm, len(terms))
	for i, term := range terms {
		term.Amount = totalAmount * term.Percentage / 100
		assembled[i] = term
	}

	now := time.Now().UTC()
	proposal := entities.Proposal{
		Date:         now.Format("2006-01-02"),
		OfferNumber:  entities.NewQuotationCode(now),
		Items:        items,
		TotalAmount:  totalAmount,
		PaymentTerms: assembled,
		Currency:     entities.Currency,
		CreatedAt:    now,
	}

	if _, err := u.repo.Put(ctx, entities.StoredProposal{
		QuotationCode: proposal.OfferNumber,
		Proposal:      &proposal,
		CreatedAt:     now,
	}); err != nil {
		log.Printf("[proposal][usecase] store failed offer_number=%s err=%v", proposal.OfferNumber, err)
		return entities.Proposal{}, err
	}

	log.Printf("[proposal][usecase] created offer_number=%s items=%d total=%.2f", proposal.OfferNumber, len(items), totalAmount)
	return proposal, nil
}

func (u *ProposalUseCase) GetByCode(ctx context.Context, quotationCode string) (entities.StoredProposal, error) {
	quotationCode = strings.TrimSpace(quotationCode)
	if quotationCode == "" {
		return entities.StoredProposal{}, ErrInvalidQuotationCode
	}

	record, err := u.repo.Get(ctx, quotationCode)
	if err != nil {
		return entities.StoredProposal{}, err
	}
	if record.QuotationCode == "" {
		return entities.StoredProposal{}, ErrProposalNotFound
	}
	return record, nil
}

func (u *ProposalUseCase) ListCodes(ctx context.Context) ([]string, error) {
	return u.repo.ListCodes(ctx)
}

func (u *ProposalUseCase) DeleteByCode(ctx context.Context, quotationCode string) error {
	quotationCode = strings.TrimSpace(quotationCode)
	if quotationCode == "" {
		return ErrInvalidQuotationCode
	}

	deleted, err := u.repo.Delete(ctx, quotationCode)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrProposalNotFound
	}
	log.Printf("[proposal][usecase] deleted quotation_code=%s", quotationCode)
	return nil
}

// SummaryByCode renders the stored record as human-readable text. A record
// missing either metadata or the proposal yields the incomplete marker, not
// an error.
func (u *ProposalUseCase) SummaryByCode(ctx context.Context, quotationCode string) (string, error) {
	record, err := u.GetByCode(ctx, quotationCode)
	if err != nil {
		return "", err
	}
	return FormatSummary(record.Metadata, record.Proposal), nil
}

func validateLineItem(item entities.LineItem) error {
	if strings.TrimSpace(item.Description) == "" {
		return fmt.Errorf("%w: description is required", ErrInvalidLineItem)
	}
	if item.Quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive", ErrInvalidLineItem)
	}
	if item.UnitPrice <= 0 {
		return fmt.Errorf("%w: unit_price must be positive", ErrInvalidLineItem)
	}
	if item.TotalPrice <= 0 {
		return fmt.Errorf("%w: total_price must be positive", ErrInvalidLineItem)
	}
	return nil
}

func validatePaymentTerm(term entities.PaymentTerm) error {
	if strings.TrimSpace(term.Description) == "" {
		return fmt.Errorf("%w: description is required", ErrInvalidPaymentTerm)
	}
	if term.Percentage <= 0 || term.Percentage > 100 {
		return fmt.Errorf("%w: percentage must be in (0, 100]", ErrInvalidPaymentTerm)
	}
	return nil
}
