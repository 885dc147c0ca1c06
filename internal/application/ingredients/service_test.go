package ingredients

import (
	"context"
	"testing"

	"github.com/dishcovery/v1/internal/ports/outbound"
	"github.com/dishcovery/v1/pkg/logger"
	"github.com/dishcovery/v1/test/testutils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func referenceRows() []outbound.ReferenceIngredient {
	return []outbound.ReferenceIngredient{
		{ID: uuid.New(), BrandAndProductName: "Golden Farm Rolled Oats", PackageSize: "500 g"},
		{ID: uuid.New(), BrandAndProductName: "Sunrise Soy Milk", PackageSize: "1 L"},
		{ID: uuid.New(), BrandAndProductName: "Golden Farm Oat Milk", PackageSize: "1 L"},
	}
}

func TestSearch_FiltersBySubstringCaseInsensitive(t *testing.T) {
	repo := new(testutils.MockIngredientRepository)
	repo.On("FindAll", mock.Anything).Return(referenceRows(), nil)
	service := NewIngredientService(repo, logger.NewNop())

	results, err := service.Search(context.Background(), "golden FARM")

	require.NoError(t, err)
	require.Len(t, results, 2)
	for _, r := range results {
		assert.Contains(t, r.BrandAndProductName, "Golden Farm")
	}
}

func TestSearch_EmptyQueryReturnsAll(t *testing.T) {
	repo := new(testutils.MockIngredientRepository)
	repo.On("FindAll", mock.Anything).Return(referenceRows(), nil)
	service := NewIngredientService(repo, logger.NewNop())

	results, err := service.Search(context.Background(), "  ")

	require.NoError(t, err)
	assert.Len(t, results, 3)
}

func TestSearch_NoMatchReturnsEmptySlice(t *testing.T) {
	repo := new(testutils.MockIngredientRepository)
	repo.On("FindAll", mock.Anything).Return(referenceRows(), nil)
	service := NewIngredientService(repo, logger.NewNop())

	results, err := service.Search(context.Background(), "durian")

	require.NoError(t, err)
	assert.Empty(t, results)
}
