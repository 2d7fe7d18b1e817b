package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cambiazo/internal/domain/entity"
	"cambiazo/internal/domain/search"
)

func ptr(f float64) *float64 { return &f }

func sampleProducts() []*entity.Product {
	return []*entity.Product{
		{ID: "1", Name: "iPhone 12", Description: "Telefono en buen estado", Price: "350", Category: "Electrónica", Condition: "Used", City: "Managua"},
		{ID: "2", Name: "Bicicleta montañera", Description: "Rodado 26", Price: "120", Category: "Deportes", Condition: "Used", City: "León"},
		{ID: "3", Name: "Laptop HP", Description: "Core i5, nueva en caja", Price: "600", Category: "Electrónica", Condition: "New", City: "Managua"},
		{ID: "4", Name: "Sofá de tres plazas", Description: "Precio negociable", Price: "a convenir", Category: "Hogar", Condition: "Used", City: "Granada"},
	}
}

func TestFilterEmptyCriteriaReturnsEverything(t *testing.T) {
	products := sampleProducts()

	result := search.Filter(products, search.Criteria{})

	assert.Len(t, result, len(products))
	for i, p := range products {
		assert.Same(t, p, result[i])
	}
}

func TestFilterTextMatchesNameOrDescription(t *testing.T) {
	products := sampleProducts()

	byName := search.Filter(products, search.Criteria{Text: "iphone"})
	assert.Len(t, byName, 1)
	assert.Equal(t, "1", byName[0].ID)

	byDescription := search.Filter(products, search.Criteria{Text: "rodado"})
	assert.Len(t, byDescription, 1)
	assert.Equal(t, "2", byDescription[0].ID)
}

func TestFilterConjunction(t *testing.T) {
	products := sampleProducts()

	result := search.Filter(products, search.Criteria{
		City:     "Managua",
		Category: "Electrónica",
	})

	assert.Len(t, result, 2)

	result = search.Filter(products, search.Criteria{
		City:      "Managua",
		Category:  "Electrónica",
		Condition: "New",
	})

	assert.Len(t, result, 1)
	assert.Equal(t, "3", result[0].ID)
}

func TestFilterPriceBounds(t *testing.T) {
	products := sampleProducts()

	result := search.Filter(products, search.Criteria{MinPrice: ptr(100), MaxPrice: ptr(400)})

	assert.Len(t, result, 2)
	assert.Equal(t, "1", result[0].ID)
	assert.Equal(t, "2", result[1].ID)
}

func TestFilterUnparsablePriceFailsPriceBounds(t *testing.T) {
	products := sampleProducts()

	// Product 4 has a free-form price and must drop out once any bound is set.
	withBound := search.Filter(products, search.Criteria{MaxPrice: ptr(10000)})
	for _, p := range withBound {
		assert.NotEqual(t, "4", p.ID)
	}

	// Without price bounds it matches like any other listing.
	withoutBound := search.Filter(products, search.Criteria{City: "Granada"})
	assert.Len(t, withoutBound, 1)
	assert.Equal(t, "4", withoutBound[0].ID)
}

func TestFilterIsIdempotent(t *testing.T) {
	products := sampleProducts()
	criteria := search.Criteria{City: "Managua"}

	once := search.Filter(products, criteria)
	twice := search.Filter(once, criteria)

	assert.Equal(t, once, twice)
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	products := sampleProducts()
	original := make([]*entity.Product, len(products))
	copy(original, products)

	search.Filter(products, search.Criteria{Text: "laptop"})

	assert.Equal(t, original, products)
}

func TestFilterJobsIgnoreUnsetListingFields(t *testing.T) {
	jobs := []*entity.Job{
		{ID: "j1", Title: "Se busca repartidor", City: "Managua"},
		{ID: "j2", Title: "Costurera con experiencia", City: "Masaya"},
	}

	// Jobs have no category or condition, so those accessors return empty
	// strings and only set predicates can exclude them.
	byCity := search.Filter(jobs, search.Criteria{City: "Masaya"})
	assert.Len(t, byCity, 1)
	assert.Equal(t, "j2", byCity[0].ID)

	byCategory := search.Filter(jobs, search.Criteria{Category: "Servicios"})
	assert.Empty(t, byCategory)
}

func TestCriteriaIsZero(t *testing.T) {
	assert.True(t, search.Criteria{}.IsZero())
	assert.False(t, search.Criteria{Text: "x"}.IsZero())
	assert.False(t, search.Criteria{MinPrice: ptr(0)}.IsZero())
}
