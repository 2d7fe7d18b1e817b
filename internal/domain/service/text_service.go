package service

import (
	"context"

	"cambiazo/internal/domain/search"
)

// TextService is the external text-understanding collaborator. Both
// operations are best-effort: implementations must return an error rather
// than partial output, and callers must treat the result as untrusted until
// it has been validated against the controlled vocabularies.
type TextService interface {
	// ExtractSearchFilters turns a free-text query into structured filter
	// candidates.
	ExtractSearchFilters(ctx context.Context, query string) (search.ExtractedFilters, error)
	// GenerateListingDescription writes a 50-150 word listing description
	// from the product's name, category and condition. The length target is
	// best-effort, not enforced.
	GenerateListingDescription(ctx context.Context, name, category, condition string) (string, error)
}
