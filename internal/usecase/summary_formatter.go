package usecase

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Rhymond/go-money"

	"mutawazi_proposals/internal/domain/entities"
)

// IncompleteSummaryMarker is returned when a stored record lacks either the
// project metadata or the assembled proposal.
const IncompleteSummaryMarker = "Incomplete proposal data"

var sarFormatter = money.NewFormatter(2, ".", ",", entities.Currency, "1 $")

// FormatSAR renders an amount with thousands separators and two decimals,
// e.g. 216187.5 -> "216,187.50 SAR".
func FormatSAR(amount float64) string {
	return sarFormatter.Format(int64(math.Round(amount * 100)))
}

// FormatSummary renders a proposal record into the fixed text block used by
// the chatbot export. Presentation only; all business figures are taken as
// stored.
func FormatSummary(meta *entities.ProjectMetadata, proposal *entities.Proposal) string {
	if meta == nil || proposal == nil {
		return IncompleteSummaryMarker
	}

	var b strings.Builder
	b.WriteString("=== MUTAWAZI FINANCIAL PROPOSAL ===\n\n")
	fmt.Fprintf(&b, "Project: %s / %s\n", meta.ProjectNameEN, meta.ProjectNameAR)
	fmt.Fprintf(&b, "Client: %s / %s\n", meta.ClientNameEN, meta.ClientNameAR)
	fmt.Fprintf(&b, "RFP Code: %s\n", meta.RFPCode)
	fmt.Fprintf(&b, "Offer Number: %s\n", proposal.OfferNumber)
	fmt.Fprintf(&b, "Date: %s\n", proposal.Date)
	fmt.Fprintf(&b, "Duration: %d months\n\n", meta.DurationMonths)

	b.WriteString("PROJECT ITEMS:\n")
	for i, item := range proposal.Items {
		fmt.Fprintf(&b, "%d. %s\n", i+1, item.Description)
		fmt.Fprintf(&b, "   Quantity: %d | Unit Price: %s\n", item.Quantity, FormatSAR(item.UnitPrice))
		fmt.Fprintf(&b, "   Total: %s\n\n", FormatSAR(item.TotalPrice))
	}

	fmt.Fprintf(&b, "TOTAL PROJECT VALUE: %s\n\n", FormatSAR(proposal.TotalAmount))

	b.WriteString("PAYMENT TERMS:\n")
	for i, term := range proposal.PaymentTerms {
		fmt.Fprintf(&b, "%d. %s: %s%% = %s\n", i+1, term.Description, formatPercentage(term.Percentage), FormatSAR(term.Amount))
	}

	return b.String()
}

func formatPercentage(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}
