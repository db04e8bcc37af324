package entities

// OverheadRates holds the monthly overhead figures (cost category -> SAR per
// month) shared by every deliverable calculation.
type OverheadRates map[string]float64

// MonthlyTotal sums all monthly overhead categories.
func (r OverheadRates) MonthlyTotal() float64 {
	total := 0.0
	for _, v := range r {
		total += v
	}
	return total
}

// Clone returns an independent copy so stored rates never alias caller maps.
func (r OverheadRates) Clone() OverheadRates {
	out := make(OverheadRates, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// DefaultOverheadRates returns the company-wide monthly overhead baseline.
func DefaultOverheadRates() OverheadRates {
	return OverheadRates{
		"salaries":       50000,
		"utilities":      15000,
		"transportation": 10000,
		"visas":          8000,
		"office_rent":    20000,
		"insurance":      5000,
	}
}
