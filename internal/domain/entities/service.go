package entities

// Service is one entry of the consulting services catalog.
//
// The catalog is read-only reference data supplied at startup; engine code
// only ever looks services up by ID.
type Service struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	Unit           string  `json:"unit"`
	DurationMonths int     `json:"duration_months"`
	Price          float64 `json:"price"`
}

// ServiceCatalog maps a service ID to its catalog record.
type ServiceCatalog map[string]Service

// GetByID resolves a catalog entry. The second return value reports whether
// the ID exists.
func (c ServiceCatalog) GetByID(id string) (Service, bool) {
	s, ok := c[id]
	return s, ok
}

func (c ServiceCatalog) Len() int { return len(c) }
