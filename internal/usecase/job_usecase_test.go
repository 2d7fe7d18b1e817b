package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"cambiazo/internal/domain/search"
	apperrors "cambiazo/pkg/errors"
)

func TestCreateJobValidatesCity(t *testing.T) {
	uc := NewJobUseCase(&fakeJobRepository{})

	_, err := uc.Create(context.Background(), "user-1", CreateJobInput{
		Title:       "Se busca repartidor",
		Description: "Con moto propia",
		City:        "Gotham",
	})
	assert.True(t, apperrors.Is(err, "BAD_REQUEST"))
}

func TestCreateJobRequiresTitle(t *testing.T) {
	uc := NewJobUseCase(&fakeJobRepository{})

	_, err := uc.Create(context.Background(), "user-1", CreateJobInput{
		Title:       "   ",
		Description: "Con moto propia",
		City:        "Managua",
	})
	assert.True(t, apperrors.Is(err, "BAD_REQUEST"))
}

func TestJobSearchByCityAndText(t *testing.T) {
	repo := &fakeJobRepository{}
	uc := NewJobUseCase(repo)
	ctx := context.Background()

	_, err := uc.Create(ctx, "user-1", CreateJobInput{Title: "Se busca repartidor", Description: "Con moto propia", City: "Managua"})
	assert.NoError(t, err)
	_, err = uc.Create(ctx, "user-2", CreateJobInput{Title: "Costurera con experiencia", Description: "Taller en el centro", City: "Masaya"})
	assert.NoError(t, err)

	all, err := uc.Search(ctx, search.Criteria{})
	assert.NoError(t, err)
	assert.Len(t, all, 2)

	masaya, err := uc.Search(ctx, search.Criteria{City: "Masaya"})
	assert.NoError(t, err)
	assert.Len(t, masaya, 1)
	assert.Equal(t, "Costurera con experiencia", masaya[0].Title)

	byText, err := uc.Search(ctx, search.Criteria{Text: "repartidor"})
	assert.NoError(t, err)
	assert.Len(t, byText, 1)
}
