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
	ErrInvalidMetadata    = errors.New("invalid project metadata")
	ErrInvalidDateRange   = errors.New("end date must be after start date")
	ErrInvalidAnswerCount = errors.New("must provide exactly 7 answers")
)

// ReadinessQuestions is the pricing-readiness checklist answered before any
// proposal work starts.
var ReadinessQuestions = []string{
	"I have read and understood the scope",
	"This project is within our mandate",
	"I have aligned internally that I will do pricing",
	"The contract type is understood (Fixed, Deliverables-Based, or Framework)",
	"I have checked if there is an existing rate card or similar past proposal",
	"I understand whether this is a monthly resource BoQ or milestone BoQ",
	"I know the expected duration of the project or agreement",
}

// readinessRequiredScore is the minimum score that still allows proceeding.
const readinessRequiredScore = 6

// avgDaysPerMonth converts a calendar span into whole months.
const avgDaysPerMonth = 30.44

// IMetadataUseCase captures project context and the readiness assessment.

type IMetadataUseCase interface {
	CreateMetadata(ctx context.Context, draft entities.ProjectMetadata) (entities.ProjectMetadata, error)
	AssessReadiness(answers []bool) (entities.ReadinessResult, error)
}

type MetadataUseCase struct {
	repo interfaces.IProposalRepository
}

var _ IMetadataUseCase = (*MetadataUseCase)(nil)

func NewMetadataUseCase(repo interfaces.IProposalRepository) *MetadataUseCase {
	return &MetadataUseCase{repo: repo}
}

// CreateMetadata validates the draft, stamps the derived fields (duration,
// quotation code, version) and stores the record under the generated code.
func (u *MetadataUseCase) CreateMetadata(ctx context.Context, draft entities.ProjectMetadata) (entities.ProjectMetadata, error) {
	if err := validateMetadataDraft(draft); err != nil {
		return entities.ProjectMetadata{}, err
	}

	start, err := time.Parse("2006-01-02", draft.StartDate)
	if err != nil {
		return entities.ProjectMetadata{}, fmt.Errorf("%w: start_date must be YYYY-MM-DD", ErrInvalidMetadata)
	}
	end, err := time.Parse("2006-01-02", draft.EndDate)
	if err != nil {
		return entities.ProjectMetadata{}, fmt.Errorf("%w: end_date must be YYYY-MM-DD", ErrInvalidMetadata)
	}
	if !end.After(start) {
		return entities.ProjectMetadata{}, ErrInvalidDateRange
	}

	now := time.Now().UTC()
	draft.DurationMonths = durationMonths(start, end)
	draft.QuotationCode = entities.NewQuotationCode(now)
	draft.VersionName = "v1.0"
	draft.CreatedOn = now.Format("2006-01-02")

	if _, err := u.repo.Put(ctx, entities.StoredProposal{
		QuotationCode: draft.QuotationCode,
		Metadata:      &draft,
		CreatedAt:     now,
	}); err != nil {
		log.Printf("[metadata][usecase] store failed quotation_code=%s err=%v", draft.QuotationCode, err)
		return entities.ProjectMetadata{}, err
	}

	log.Printf("[metadata][usecase] created quotation_code=%s duration_months=%d", draft.QuotationCode, draft.DurationMonths)
	return draft, nil
}

// AssessReadiness scores the 7-question checklist. 7 is fully ready, 6 is
// partial but may proceed, anything below blocks pricing.
func (u *MetadataUseCase) AssessReadiness(answers []bool) (entities.ReadinessResult, error) {
	if len(answers) != len(ReadinessQuestions) {
		return entities.ReadinessResult{}, ErrInvalidAnswerCount
	}

	score := 0
	for _, a := range answers {
		if a {
			score++
		}
	}

	result := entities.ReadinessResult{Score: score, Questions: ReadinessQuestions}
	switch {
	case score >= len(ReadinessQuestions):
		result.Status = "Ready"
		result.CanProceed = true
	case score >= readinessRequiredScore:
		result.Status = "Partial"
		result.CanProceed = true
	default:
		result.Status = "Not Ready"
	}
	return result, nil
}

func durationMonths(start, end time.Time) int {
	days := end.Sub(start).Hours() / 24
	return int(math.Round(days / avgDaysPerMonth))
}

func validateMetadataDraft(draft entities.ProjectMetadata) error {
	required := map[string]string{
		"project_name_en": draft.ProjectNameEN,
		"project_name_ar": draft.ProjectNameAR,
		"client_name_en":  draft.ClientNameEN,
		"client_name_ar":  draft.ClientNameAR,
		"project_type":    draft.ProjectType,
		"boq_type":        draft.BOQType,
		"rfp_code":        draft.RFPCode,
	}
	for field, value := range required {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%w: %s is required", ErrInvalidMetadata, field)
		}
	}
	if draft.NumDeliverables <= 0 {
		return fmt.Errorf("%w: num_deliverables must be positive", ErrInvalidMetadata)
	}
	return nil
}
