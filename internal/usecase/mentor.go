package usecase

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/wementor/mentor-directory-api/internal/apierror"
	"github.com/wementor/mentor-directory-api/internal/model"
	"github.com/wementor/mentor-directory-api/internal/repository"
)

// MentorUsecase defines the mentor management operations.
type MentorUsecase interface {
	CreateMentor(ctx context.Context, params CreateMentorParams) (*model.Mentor, error)
	AddMentorCategories(ctx context.Context, mentorID string, categoryIDs []string) (*model.Mentor, error)
	RemoveMentorCategory(ctx context.Context, mentorID, categoryID string) (*model.Mentor, error)
	SetMentorAvatar(ctx context.Context, mentorID, avatarURL string) (*model.Mentor, error)
	ListMentors(ctx context.Context, page, limit int) ([]*model.Mentor, error)
	GetMentorByID(ctx context.Context, mentorID string) (*model.Mentor, error)
	SearchMentors(ctx context.Context, params SearchMentorsParams) ([]*model.Mentor, error)
	UpdateMentor(ctx context.Context, mentorID string, params UpdateMentorParams) (*model.Mentor, error)
	DeleteMentor(ctx context.Context, mentorID string) (int64, error)
}

// CreateMentorParams defines the minimal fields for a new mentor.
type CreateMentorParams struct {
	FirstName string
	LastName  string
	Email     string
}

// SearchMentorsParams defines the optional search filters; provided filters
// AND together.
type SearchMentorsParams struct {
	FirstName   *string
	LastName    *string
	CategoryIDs []string
}

// UpdateMentorParams defines the optional fields for a partial mentor
// update. Only the fields that are not nil will be updated.
type UpdateMentorParams struct {
	FirstName *string
	LastName  *string
	Email     *string
}

type mentorUsecase struct {
	mentorRepo   repository.MentorRepository
	categoryRepo repository.CategoryRepository
}

func NewMentorUsecase(
	mentorRepo repository.MentorRepository,
	categoryRepo repository.CategoryRepository,
) MentorUsecase {
	return &mentorUsecase{
		mentorRepo:   mentorRepo,
		categoryRepo: categoryRepo,
	}
}

func (u *mentorUsecase) CreateMentor(ctx context.Context, params CreateMentorParams) (*model.Mentor, error) {
	mentor, err := u.mentorRepo.CreateMentor(ctx, &model.Mentor{
		FirstName:  params.FirstName,
		LastName:   params.LastName,
		Email:      params.Email,
		Categories: []bson.ObjectID{},
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apierror.Conflict("email already exists")
		}
		return nil, err
	}

	return mentor, nil
}

// AddMentorCategories attaches the given categories to the mentor. Every
// requested id is verified individually against the store, and the whole
// batch is rejected when any id is unknown, repeated within the request, or
// already attached to the mentor.
func (u *mentorUsecase) AddMentorCategories(
	ctx context.Context,
	mentorID string,
	categoryIDs []string,
) (*model.Mentor, error) {
	mentor, err := u.GetMentorByID(ctx, mentorID)
	if err != nil {
		return nil, err
	}

	requested := make([]bson.ObjectID, 0, len(categoryIDs))
	seen := make(map[bson.ObjectID]bool, len(categoryIDs))
	for _, id := range categoryIDs {
		objectID, err := bson.ObjectIDFromHex(id)
		if err != nil {
			return nil, apierror.BadRequest("one or more invalid category IDs")
		}
		if seen[objectID] || mentor.HasCategory(objectID) {
			return nil, apierror.BadRequest("category already added to this mentor")
		}
		seen[objectID] = true
		requested = append(requested, objectID)
	}

	if len(requested) == 0 {
		return mentor, nil
	}

	found, err := u.categoryRepo.GetCategoriesByIDs(ctx, requested)
	if err != nil {
		return nil, err
	}

	exists := make(map[bson.ObjectID]bool, len(found))
	for _, category := range found {
		exists[category.ID] = true
	}
	for _, id := range requested {
		if !exists[id] {
			return nil, apierror.BadRequest("one or more invalid category IDs")
		}
	}

	categories := append(mentor.Categories, requested...)
	return u.persistCategories(ctx, mentorID, categories)
}

// RemoveMentorCategory detaches the category from the mentor. Removing a
// category that is not attached is a no-op, not an error.
func (u *mentorUsecase) RemoveMentorCategory(
	ctx context.Context,
	mentorID, categoryID string,
) (*model.Mentor, error) {
	mentor, err := u.GetMentorByID(ctx, mentorID)
	if err != nil {
		return nil, err
	}

	category, err := u.categoryRepo.GetCategory(ctx, categoryID)
	if err != nil {
		switch {
		case errors.Is(err, mongo.ErrNoDocuments):
			return nil, apierror.NotFound("category not found")
		case errors.Is(err, repository.ErrInvalidID):
			return nil, apierror.BadRequest("invalid category id")
		}
		return nil, err
	}

	if !mentor.HasCategory(category.ID) {
		return mentor, nil
	}

	categories := make([]bson.ObjectID, 0, len(mentor.Categories)-1)
	for _, id := range mentor.Categories {
		if id != category.ID {
			categories = append(categories, id)
		}
	}

	return u.persistCategories(ctx, mentorID, categories)
}

func (u *mentorUsecase) SetMentorAvatar(ctx context.Context, mentorID, avatarURL string) (*model.Mentor, error) {
	mentor, err := u.mentorRepo.UpdateMentor(ctx, mentorID, repository.UpdateMentorParams{
		Avatar: &avatarURL,
	})
	if err != nil {
		return nil, translateMentorError(err)
	}

	return mentor, nil
}

func (u *mentorUsecase) ListMentors(ctx context.Context, page, limit int) ([]*model.Mentor, error) {
	limitVal, offset := pagination(page, limit)

	mentors, err := u.mentorRepo.ListMentors(ctx, limitVal, offset)
	if err != nil {
		return nil, err
	}

	if len(mentors) == 0 {
		return nil, apierror.NotFound("mentors not found")
	}

	return mentors, nil
}

func (u *mentorUsecase) GetMentorByID(ctx context.Context, mentorID string) (*model.Mentor, error) {
	mentor, err := u.mentorRepo.GetMentor(ctx, mentorID)
	if err != nil {
		return nil, translateMentorError(err)
	}

	return mentor, nil
}

func (u *mentorUsecase) SearchMentors(
	ctx context.Context,
	params SearchMentorsParams,
) ([]*model.Mentor, error) {
	repoParams := repository.SearchMentorsParams{
		FirstName: params.FirstName,
		LastName:  params.LastName,
	}

	for _, id := range params.CategoryIDs {
		objectID, err := bson.ObjectIDFromHex(id)
		if err != nil {
			return nil, apierror.BadRequest("one or more invalid category IDs")
		}
		repoParams.CategoryIDs = append(repoParams.CategoryIDs, objectID)
	}

	mentors, err := u.mentorRepo.SearchMentors(ctx, repoParams)
	if err != nil {
		return nil, err
	}

	if len(mentors) == 0 {
		return nil, apierror.NotFound("mentors not found")
	}

	return mentors, nil
}

func (u *mentorUsecase) UpdateMentor(
	ctx context.Context,
	mentorID string,
	params UpdateMentorParams,
) (*model.Mentor, error) {
	if params.FirstName == nil && params.LastName == nil && params.Email == nil {
		return u.GetMentorByID(ctx, mentorID)
	}

	mentor, err := u.mentorRepo.UpdateMentor(ctx, mentorID, repository.UpdateMentorParams{
		FirstName: params.FirstName,
		LastName:  params.LastName,
		Email:     params.Email,
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apierror.Conflict("email already exists")
		}
		return nil, translateMentorError(err)
	}

	return mentor, nil
}

// DeleteMentor hard-deletes the mentor. The mentor's social link, if any, is
// deliberately left in place.
func (u *mentorUsecase) DeleteMentor(ctx context.Context, mentorID string) (int64, error) {
	deleted, err := u.mentorRepo.DeleteMentor(ctx, mentorID)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidID) {
			return 0, apierror.BadRequest("invalid mentor id")
		}
		return 0, err
	}

	if deleted == 0 {
		return 0, apierror.NotFound("mentor not found")
	}

	return deleted, nil
}

func (u *mentorUsecase) persistCategories(
	ctx context.Context,
	mentorID string,
	categories []bson.ObjectID,
) (*model.Mentor, error) {
	mentor, err := u.mentorRepo.UpdateMentor(ctx, mentorID, repository.UpdateMentorParams{
		Categories: &categories,
	})
	if err != nil {
		return nil, translateMentorError(err)
	}

	return mentor, nil
}

func translateMentorError(err error) error {
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return apierror.NotFound("mentor not found")
	case errors.Is(err, repository.ErrInvalidID):
		return apierror.BadRequest("invalid mentor id")
	}
	return err
}
