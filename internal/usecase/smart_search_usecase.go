package usecase

import (
	"context"
	"strings"
	"sync"

	"cambiazo/internal/domain/entity"
	"cambiazo/internal/domain/search"
	"cambiazo/internal/domain/service"
	"cambiazo/pkg/errors"
	"cambiazo/pkg/logger"
)

type SmartSearchUseCase struct {
	textService    service.TextService
	productUseCase *ProductUseCase

	mu   sync.Mutex
	busy bool
}

func NewSmartSearchUseCase(textService service.TextService, productUseCase *ProductUseCase) *SmartSearchUseCase {
	return &SmartSearchUseCase{
		textService:    textService,
		productUseCase: productUseCase,
	}
}

type SmartSearchResult struct {
	Criteria search.Criteria   `json:"criteria"`
	Products []*entity.Product `json:"products"`
}

// Search turns a natural-language query into validated filter criteria and
// applies them to the catalog in one step. Only one extraction runs at a
// time; a failed extraction leaves no partial filter state behind.
func (uc *SmartSearchUseCase) Search(ctx context.Context, query string) (*SmartSearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errors.BadRequest("Query is required", nil)
	}
	if uc.textService == nil {
		return nil, errors.Unavailable("Smart search is not configured", nil)
	}

	if !uc.acquire() {
		return nil, errors.TooManyRequests("A smart search is already in progress")
	}
	defer uc.release()

	extracted, err := uc.textService.ExtractSearchFilters(ctx, query)
	if err != nil {
		return nil, err
	}

	criteria := extracted.Sanitize()
	logger.Debug("Smart search %q resolved to %+v", query, criteria)

	products, err := uc.productUseCase.Search(ctx, criteria)
	if err != nil {
		return nil, err
	}

	return &SmartSearchResult{
		Criteria: criteria,
		Products: products,
	}, nil
}

func (uc *SmartSearchUseCase) acquire() bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.busy {
		return false
	}
	uc.busy = true
	return true
}

func (uc *SmartSearchUseCase) release() {
	uc.mu.Lock()
	uc.busy = false
	uc.mu.Unlock()
}
