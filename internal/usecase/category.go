package usecase

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/wementor/mentor-directory-api/internal/apierror"
	"github.com/wementor/mentor-directory-api/internal/model"
	"github.com/wementor/mentor-directory-api/internal/repository"
)

// CategoryUsecase defines the category management operations.
type CategoryUsecase interface {
	CreateCategory(ctx context.Context, name string) (*model.Category, error)
	ListCategories(ctx context.Context, page, limit int) ([]*model.Category, error)
	GetCategoryByID(ctx context.Context, id string) (*model.Category, error)
	UpdateCategory(ctx context.Context, id string, name string) (*model.Category, error)
	DeleteCategory(ctx context.Context, id string) (int64, error)
}

type categoryUsecase struct {
	categoryRepo repository.CategoryRepository
}

func NewCategoryUsecase(categoryRepo repository.CategoryRepository) CategoryUsecase {
	return &categoryUsecase{categoryRepo: categoryRepo}
}

// CreateCategory stores a trimmed, lowercased category name. The collection's
// unique index is the authoritative uniqueness check.
func (u *categoryUsecase) CreateCategory(ctx context.Context, name string) (*model.Category, error) {
	category, err := u.categoryRepo.CreateCategory(ctx, &model.Category{Name: normalizeCategoryName(name)})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apierror.Conflict("category already exists")
		}
		return nil, err
	}

	return category, nil
}

func (u *categoryUsecase) ListCategories(ctx context.Context, page, limit int) ([]*model.Category, error) {
	limitVal, offset := pagination(page, limit)

	categories, err := u.categoryRepo.ListCategories(ctx, limitVal, offset)
	if err != nil {
		return nil, err
	}

	if len(categories) == 0 {
		return nil, apierror.NotFound("categories not found")
	}

	return categories, nil
}

func (u *categoryUsecase) GetCategoryByID(ctx context.Context, id string) (*model.Category, error) {
	category, err := u.categoryRepo.GetCategory(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, mongo.ErrNoDocuments):
			return nil, apierror.NotFound("category not found")
		case errors.Is(err, repository.ErrInvalidID):
			return nil, apierror.BadRequest("invalid category id")
		}
		return nil, err
	}

	return category, nil
}

func (u *categoryUsecase) UpdateCategory(ctx context.Context, id string, name string) (*model.Category, error) {
	category, err := u.categoryRepo.UpdateCategory(ctx, id, normalizeCategoryName(name))
	if err != nil {
		switch {
		case errors.Is(err, mongo.ErrNoDocuments):
			return nil, apierror.NotFound("category not found")
		case errors.Is(err, repository.ErrInvalidID):
			return nil, apierror.BadRequest("invalid category id")
		case mongo.IsDuplicateKeyError(err):
			return nil, apierror.Conflict("category already exists")
		}
		return nil, err
	}

	return category, nil
}

// DeleteCategory removes the category by the fetched document's name.
func (u *categoryUsecase) DeleteCategory(ctx context.Context, id string) (int64, error) {
	category, err := u.GetCategoryByID(ctx, id)
	if err != nil {
		return 0, err
	}

	return u.categoryRepo.DeleteCategoryByName(ctx, category.Name)
}

func normalizeCategoryName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
