package entities

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Currency is the fixed currency tag of every proposal.
const Currency = "SAR"

// QuotationPrefix is the fixed leading segment of generated quotation codes.
const QuotationPrefix = "MUT"

// NewQuotationCode generates an offer identifier of the form
// MUT-YYYYMMDD-XXXXXXXX. The suffix is 8 random uppercase hex characters;
// uniqueness is overwhelmingly likely but not guaranteed, and a collision
// overwrites the previous record in the store.
func NewQuotationCode(now time.Time) string {
	suffix := strings.ToUpper(uuid.NewString()[:8])
	return fmt.Sprintf("%s-%s-%s", QuotationPrefix, now.Format("20060102"), suffix)
}

// LineItem is one priced row of a proposal. TotalPrice is supplied by the
// caller and is not cross-checked against Quantity*UnitPrice.
type LineItem struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	TotalPrice  float64 `json:"total_price"`
}

// PaymentTerm is one split of the proposal total. Amount is computed during
// assembly as TotalAmount * Percentage/100.
type PaymentTerm struct {
	Description string  `json:"description"`
	Percentage  float64 `json:"percentage"`
	Amount      float64 `json:"amount"`
}

// Proposal is the assembled financial proposal. Immutable once created,
// identified solely by its offer number (quotation code).
type Proposal struct {
	Date         string        `json:"date"` // YYYY-MM-DD
	OfferNumber  string        `json:"offer_number"`
	Items        []LineItem    `json:"items"`
	TotalAmount  float64       `json:"total_amount"`
	PaymentTerms []PaymentTerm `json:"payment_terms"`
	Currency     string        `json:"currency"`
	CreatedAt    time.Time     `json:"created_at"`
}
