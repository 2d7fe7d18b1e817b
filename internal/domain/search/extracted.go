package search

// ExtractedFilters is the raw structured object returned by the text
// understanding service for a natural-language query. The service is
// untrusted for vocabulary conformance, so every field passes through
// Sanitize before reaching filter state.
type ExtractedFilters struct {
	Keywords  string   `json:"keywords"`
	City      string   `json:"city"`
	Category  string   `json:"category"`
	MinPrice  *float64 `json:"minPrice"`
	MaxPrice  *float64 `json:"maxPrice"`
	Condition string   `json:"condition"`
}

// Sanitize validates each extracted field against the controlled
// vocabularies and drops anything out of vocabulary. Keywords pass through
// verbatim; prices are kept only when non-null.
func (f ExtractedFilters) Sanitize() Criteria {
	c := Criteria{Text: f.Keywords}

	if ValidCity(f.City) {
		c.City = f.City
	}
	if ValidCategory(f.Category) {
		c.Category = f.Category
	}
	if ValidCondition(f.Condition) {
		c.Condition = f.Condition
	}
	c.MinPrice = f.MinPrice
	c.MaxPrice = f.MaxPrice

	return c
}
