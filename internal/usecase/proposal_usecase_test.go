package usecase

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"

	"mutawazi_proposals/internal/adapter/persistence/repository"
	"mutawazi_proposals/internal/domain/entities"
	mock_interfaces "mutawazi_proposals/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var quotationCodePattern = regexp.MustCompile(`^MUT-\d{8}-[A-Z0-9]{8}$`)

func validItems() []entities.LineItem {
	return []entities.LineItem{
		{Description: "AI Governance Framework", Quantity: 1, UnitPrice: 300000, TotalPrice: 300000},
		{Description: "Risk Assessment", Quantity: 2, UnitPrice: 100000, TotalPrice: 200000},
	}
}

func validTerms() []entities.PaymentTerm {
	return []entities.PaymentTerm{
		{Description: "Advance", Percentage: 40},
		{Description: "On delivery", Percentage: 60},
	}
}

func TestProposalUseCase_CreateProposal(t *testing.T) {
	t.Run("no items", func(t *testing.T) {
		uc := NewProposalUseCase(nil)
		_, err := uc.CreateProposal(context.Background(), nil, validTerms())
		if !errors.Is(err, ErrNoLineItems) {
			t.Fatalf("expected ErrNoLineItems, got %v", err)
		}
	})

	t.Run("no terms", func(t *testing.T) {
		uc := NewProposalUseCase(nil)
		_, err := uc.CreateProposal(context.Background(), validItems(), nil)
		if !errors.Is(err, ErrNoPaymentTerms) {
			t.Fatalf("expected ErrNoPaymentTerms, got %v", err)
		}
	})

	t.Run("invalid item", func(t *testing.T) {
		uc := NewProposalUseCase(nil)
		items := validItems()
		items[1].UnitPrice = 0
		_, err := uc.CreateProposal(context.Background(), items, validTerms())
		if !errors.Is(err, ErrInvalidLineItem) {
			t.Fatalf("expected ErrInvalidLineItem, got %v", err)
		}
	})

	t.Run("invalid term percentage", func(t *testing.T) {
		uc := NewProposalUseCase(nil)
		terms := []entities.PaymentTerm{{Description: "All", Percentage: 101}}
		_, err := uc.CreateProposal(context.Background(), validItems(), terms)
		if !errors.Is(err, ErrInvalidPaymentTerm) {
			t.Fatalf("expected ErrInvalidPaymentTerm, got %v", err)
		}
	})

	t.Run("terms must sum to 100", func(t *testing.T) {
		uc := NewProposalUseCase(nil)
		terms := []entities.PaymentTerm{
			{Description: "Advance", Percentage: 30},
			{Description: "Midway", Percentage: 30},
			{Description: "Final", Percentage: 39},
		}
		_, err := uc.CreateProposal(context.Background(), validItems(), terms)
		if !errors.Is(err, ErrPaymentTermMismatch) {
			t.Fatalf("expected ErrPaymentTermMismatch, got %v", err)
		}
		if !strings.Contains(err.Error(), "99.00%") {
			t.Fatalf("expected current sum in message, got %q", err.Error())
		}
	})

	t.Run("sum within tolerance passes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		uc := NewProposalUseCase(repo)

		repo.EXPECT().Put(gomock.Any(), gomock.AssignableToTypeOf(entities.StoredProposal{})).DoAndReturn(
			func(_ context.Context, rec entities.StoredProposal) (entities.StoredProposal, error) {
				return rec, nil
			},
		)

		terms := []entities.PaymentTerm{
			{Description: "Advance", Percentage: 33.33},
			{Description: "Midway", Percentage: 33.33},
			{Description: "Final", Percentage: 33.34},
		}
		if _, err := uc.CreateProposal(context.Background(), validItems(), terms); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		uc := NewProposalUseCase(repo)

		repo.EXPECT().Put(gomock.Any(), gomock.Any()).Return(entities.StoredProposal{}, errors.New("db"))

		_, err := uc.CreateProposal(context.Background(), validItems(), validTerms())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("success assembles the proposal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		uc := NewProposalUseCase(repo)

		repo.EXPECT().Put(gomock.Any(), gomock.AssignableToTypeOf(entities.StoredProposal{})).DoAndReturn(
			func(_ context.Context, rec entities.StoredProposal) (entities.StoredProposal, error) {
				if rec.QuotationCode == "" || rec.Proposal == nil {
					t.Fatalf("unexpected record: %+v", rec)
				}
				if rec.QuotationCode != rec.Proposal.OfferNumber {
					t.Fatalf("record keyed by %s but offer number is %s", rec.QuotationCode, rec.Proposal.OfferNumber)
				}
				return rec, nil
			},
		)

		proposal, err := uc.CreateProposal(context.Background(), validItems(), validTerms())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !quotationCodePattern.MatchString(proposal.OfferNumber) {
			t.Fatalf("unexpected offer number format: %s", proposal.OfferNumber)
		}
		if proposal.TotalAmount != 500000 {
			t.Fatalf("expected total 500000, got %v", proposal.TotalAmount)
		}
		if proposal.Currency != entities.Currency {
			t.Fatalf("unexpected currency: %s", proposal.Currency)
		}
		if len(proposal.PaymentTerms) != 2 {
			t.Fatalf("expected 2 payment terms, got %d", len(proposal.PaymentTerms))
		}
		if proposal.PaymentTerms[0].Amount != 200000 || proposal.PaymentTerms[1].Amount != 300000 {
			t.Fatalf("unexpected term amounts: %+v", proposal.PaymentTerms)
		}
		if proposal.Date == "" || proposal.CreatedAt.IsZero() {
			t.Fatalf("expected stamped dates")
		}
	})
}

func TestProposalUseCase_GetByCode(t *testing.T) {
	t.Run("blank code", func(t *testing.T) {
		uc := NewProposalUseCase(nil)
		_, err := uc.GetByCode(context.Background(), "   ")
		if !errors.Is(err, ErrInvalidQuotationCode) {
			t.Fatalf("expected ErrInvalidQuotationCode, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		uc := NewProposalUseCase(repo)
		repo.EXPECT().Get(gomock.Any(), "MUT-1").Return(entities.StoredProposal{}, errors.New("db"))

		_, err := uc.GetByCode(context.Background(), "MUT-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		uc := NewProposalUseCase(repo)
		repo.EXPECT().Get(gomock.Any(), "MUT-1").Return(entities.StoredProposal{}, nil)

		_, err := uc.GetByCode(context.Background(), "MUT-1")
		if !errors.Is(err, ErrProposalNotFound) {
			t.Fatalf("expected ErrProposalNotFound, got %v", err)
		}
	})

	t.Run("success trims the code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		uc := NewProposalUseCase(repo)
		expected := entities.StoredProposal{QuotationCode: "MUT-1"}
		repo.EXPECT().Get(gomock.Any(), "MUT-1").Return(expected, nil)

		record, err := uc.GetByCode(context.Background(), " MUT-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if record.QuotationCode != "MUT-1" {
			t.Fatalf("unexpected record: %+v", record)
		}
	})
}

func TestProposalUseCase_DeleteByCode(t *testing.T) {
	t.Run("blank code", func(t *testing.T) {
		uc := NewProposalUseCase(nil)
		err := uc.DeleteByCode(context.Background(), "")
		if !errors.Is(err, ErrInvalidQuotationCode) {
			t.Fatalf("expected ErrInvalidQuotationCode, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		uc := NewProposalUseCase(repo)
		repo.EXPECT().Delete(gomock.Any(), "MUT-1").Return(false, nil)

		err := uc.DeleteByCode(context.Background(), "MUT-1")
		if !errors.Is(err, ErrProposalNotFound) {
			t.Fatalf("expected ErrProposalNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		uc := NewProposalUseCase(repo)
		repo.EXPECT().Delete(gomock.Any(), "MUT-1").Return(true, nil)

		if err := uc.DeleteByCode(context.Background(), " MUT-1 "); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestProposalUseCase_SummaryByCode(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		uc := NewProposalUseCase(repo)
		repo.EXPECT().Get(gomock.Any(), "MUT-1").Return(entities.StoredProposal{}, nil)

		_, err := uc.SummaryByCode(context.Background(), "MUT-1")
		if !errors.Is(err, ErrProposalNotFound) {
			t.Fatalf("expected ErrProposalNotFound, got %v", err)
		}
	})

	t.Run("metadata only record yields the incomplete marker", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProposalRepository(ctrl)
		uc := NewProposalUseCase(repo)
		repo.EXPECT().Get(gomock.Any(), "MUT-1").Return(entities.StoredProposal{
			QuotationCode: "MUT-1",
			Metadata:      &entities.ProjectMetadata{ProjectNameEN: "Pilot"},
		}, nil)

		summary, err := uc.SummaryByCode(context.Background(), "MUT-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if summary != IncompleteSummaryMarker {
			t.Fatalf("expected incomplete marker, got %q", summary)
		}
	})
}

func TestProposalUseCase_RoundTripWithMemoryRepository(t *testing.T) {
	uc := NewProposalUseCase(repository.NewProposalMemoryRepository())
	ctx := context.Background()

	proposal, err := uc.CreateProposal(ctx, validItems(), validTerms())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	record, err := uc.GetByCode(ctx, proposal.OfferNumber)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record.Proposal == nil || record.Proposal.TotalAmount != 500000 {
		t.Fatalf("unexpected stored proposal: %+v", record.Proposal)
	}

	codes, err := uc.ListCodes(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(codes) != 1 || codes[0] != proposal.OfferNumber {
		t.Fatalf("unexpected codes: %v", codes)
	}

	if err := uc.DeleteByCode(ctx, proposal.OfferNumber); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := uc.GetByCode(ctx, proposal.OfferNumber); !errors.Is(err, ErrProposalNotFound) {
		t.Fatalf("expected ErrProposalNotFound after delete, got %v", err)
	}
}
