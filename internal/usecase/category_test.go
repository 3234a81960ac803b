package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wementor/mentor-directory-api/internal/apierror"
)

func TestCreateCategory_NormalizesName(t *testing.T) {
	uc := NewCategoryUsecase(&fakeCategoryRepo{})

	category, err := uc.CreateCategory(context.Background(), "  Frontend Development ")
	require.NoError(t, err)
	assert.Equal(t, "frontend development", category.Name)
}

func TestCreateCategory_DuplicateName(t *testing.T) {
	uc := NewCategoryUsecase(&fakeCategoryRepo{})

	_, err := uc.CreateCategory(context.Background(), "backend")
	require.NoError(t, err)

	// Normalization makes these the same name.
	_, err = uc.CreateCategory(context.Background(), " BACKEND ")
	assert.True(t, apierror.IsKind(err, apierror.KindConflict))
}

func TestListCategories_EmptyIsNotFound(t *testing.T) {
	uc := NewCategoryUsecase(&fakeCategoryRepo{})

	_, err := uc.ListCategories(context.Background(), 1, 10)
	assert.True(t, apierror.IsKind(err, apierror.KindNotFound))
}

func TestListCategories_SortedByName(t *testing.T) {
	uc := NewCategoryUsecase(&fakeCategoryRepo{})
	for _, name := range []string{"security", "backend", "frontend"} {
		_, err := uc.CreateCategory(context.Background(), name)
		require.NoError(t, err)
	}

	categories, err := uc.ListCategories(context.Background(), 1, 10)
	require.NoError(t, err)
	require.Len(t, categories, 3)
	assert.Equal(t, "backend", categories[0].Name)
	assert.Equal(t, "security", categories[2].Name)
}

func TestUpdateCategory_DuplicateName(t *testing.T) {
	repo := &fakeCategoryRepo{}
	uc := NewCategoryUsecase(repo)

	_, err := uc.CreateCategory(context.Background(), "backend")
	require.NoError(t, err)
	created, err := uc.CreateCategory(context.Background(), "frontend")
	require.NoError(t, err)

	_, err = uc.UpdateCategory(context.Background(), created.ID.Hex(), "Backend")
	assert.True(t, apierror.IsKind(err, apierror.KindConflict))
}

func TestDeleteCategory(t *testing.T) {
	repo := &fakeCategoryRepo{}
	uc := NewCategoryUsecase(repo)

	created, err := uc.CreateCategory(context.Background(), "backend")
	require.NoError(t, err)

	deleted, err := uc.DeleteCategory(context.Background(), created.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)
	assert.Empty(t, repo.categories)
}

func TestDeleteCategory_UnknownID(t *testing.T) {
	uc := NewCategoryUsecase(&fakeCategoryRepo{})

	_, err := uc.DeleteCategory(context.Background(), "64f000000000000000000000")
	assert.True(t, apierror.IsKind(err, apierror.KindNotFound))
}

func TestGetCategoryByID_InvalidHex(t *testing.T) {
	uc := NewCategoryUsecase(&fakeCategoryRepo{})

	_, err := uc.GetCategoryByID(context.Background(), "nope")
	assert.True(t, apierror.IsKind(err, apierror.KindBadRequest))
}
