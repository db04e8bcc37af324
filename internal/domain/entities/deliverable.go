package entities

// PriceSourceKind says where a deliverable's cash-in amount comes from.
type PriceSourceKind int

const (
	// PriceFromCatalog resolves the amount from the referenced catalog service.
	PriceFromCatalog PriceSourceKind = iota
	// PriceExplicit uses an amount quoted by the caller. When a service is
	// also referenced, the explicit amount wins over the catalog price.
	PriceExplicit
)

// PriceSource is the tagged choice between an explicit amount and a catalog
// lookup. It replaces "nullable amount" semantics at the boundary so the
// engine never has to interpret a missing field.
type PriceSource struct {
	kind   PriceSourceKind
	amount float64
}

func ExplicitPrice(amount float64) PriceSource {
	return PriceSource{kind: PriceExplicit, amount: amount}
}

func CatalogPrice() PriceSource {
	return PriceSource{kind: PriceFromCatalog}
}

func (p PriceSource) Kind() PriceSourceKind { return p.kind }
func (p PriceSource) IsExplicit() bool      { return p.kind == PriceExplicit }

// Amount returns the explicit amount. Only meaningful when IsExplicit.
func (p PriceSource) Amount() float64 { return p.amount }

// DeliverableInput is one deliverable of a cash-flow request, already
// validated in shape by the HTTP adapter.
//
// Domain notes:
//   - ServiceID is optional; when set it must resolve in the catalog.
//   - Price decides the cash-in amount (see PriceSource).
//   - Salaries/Tools/Others are the direct cost components, all >= 0.
type DeliverableInput struct {
	Name      string
	DueDate   string // YYYY-MM-DD
	ServiceID string
	Price     PriceSource
	Salaries  float64
	Tools     float64
	Others    float64
}

// ServiceInfo is catalog data embedded into a result when the deliverable
// referenced a service.
type ServiceInfo struct {
	Name           string  `json:"name"`
	CatalogPrice   float64 `json:"catalog_price"`
	DurationMonths int     `json:"duration"`
	Unit           string  `json:"unit"`
}

// DeliverableResult is the computed cash-flow line for one deliverable.
// Results are immutable once computed; CumulativeNetFlow is the running total
// across the request in input order.
type DeliverableResult struct {
	Name              string       `json:"deliverable_name"`
	DueDate           string       `json:"due_date"`
	ServiceID         string       `json:"service_id,omitempty"`
	CashIn            float64      `json:"cash_in"`
	Salaries          float64      `json:"salaries"`
	Tools             float64      `json:"tools"`
	Others            float64      `json:"others"`
	Overhead          float64      `json:"overhead"`
	CashOut           float64      `json:"cash_out"`
	NetFlow           float64      `json:"net_flow"`
	CumulativeNetFlow float64      `json:"cumulative_net_flow"`
	IsProfitable      bool         `json:"is_profitable"`
	ServiceInfo       *ServiceInfo `json:"service_info,omitempty"`
}

// CashFlowSummary aggregates a whole deliverable sequence.
//
// ProfitMargin is a percentage rounded to 2 decimals and defined as 0 when
// TotalRevenue is 0. No per-deliverable margin exists.
type CashFlowSummary struct {
	TotalRevenue float64 `json:"total_revenue"`
	TotalCosts   float64 `json:"total_costs"`
	TotalProfit  float64 `json:"total_profit"`
	ProfitMargin float64 `json:"profit_margin"`
	IsProfitable bool    `json:"is_profitable"`
}
