package search

import (
	"strconv"
	"strings"
)

// Listing is the filterable surface shared by products and jobs.
type Listing interface {
	ListingName() string
	ListingDescription() string
	ListingCity() string
	ListingCategory() string
	ListingCondition() string
	ListingPrice() string
}

// Criteria is the conjunction of search predicates driving a listing view.
// An empty or nil field always matches; every set field must match.
type Criteria struct {
	Text      string   `json:"text"`
	City      string   `json:"city"`
	Category  string   `json:"category"`
	MinPrice  *float64 `json:"min_price"`
	MaxPrice  *float64 `json:"max_price"`
	Condition string   `json:"condition"`
}

// IsZero reports whether no predicate is set.
func (c Criteria) IsZero() bool {
	return c.Text == "" && c.City == "" && c.Category == "" &&
		c.MinPrice == nil && c.MaxPrice == nil && c.Condition == ""
}

// Filter returns the subset of items matching every set predicate, in the
// input order. It is a pure function: the input slice is never reordered or
// mutated, and filtering an already-filtered result is a no-op.
func Filter[L Listing](items []L, c Criteria) []L {
	matched := make([]L, 0, len(items))
	for _, item := range items {
		if Matches(item, c) {
			matched = append(matched, item)
		}
	}
	return matched
}

// Matches reports whether a single listing satisfies all set predicates.
func Matches(item Listing, c Criteria) bool {
	if c.Text != "" {
		text := strings.ToLower(c.Text)
		if !strings.Contains(strings.ToLower(item.ListingName()), text) &&
			!strings.Contains(strings.ToLower(item.ListingDescription()), text) {
			return false
		}
	}

	if c.City != "" && item.ListingCity() != c.City {
		return false
	}
	if c.Category != "" && item.ListingCategory() != c.Category {
		return false
	}
	if c.Condition != "" && item.ListingCondition() != c.Condition {
		return false
	}

	if c.MinPrice != nil || c.MaxPrice != nil {
		price, err := strconv.ParseFloat(strings.TrimSpace(item.ListingPrice()), 64)
		if err != nil {
			// An unparsable price never satisfies a price bound.
			return false
		}
		if c.MinPrice != nil && price < *c.MinPrice {
			return false
		}
		if c.MaxPrice != nil && price > *c.MaxPrice {
			return false
		}
	}

	return true
}
