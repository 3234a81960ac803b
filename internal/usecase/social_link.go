package usecase

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/wementor/mentor-directory-api/internal/apierror"
	"github.com/wementor/mentor-directory-api/internal/model"
	"github.com/wementor/mentor-directory-api/internal/repository"
)

// SocialLinkUsecase defines the social-link operations. No delete operation
// is exposed at this boundary.
type SocialLinkUsecase interface {
	CreateSocialLink(ctx context.Context, params CreateSocialLinkParams) (*model.SocialLink, error)
	GetSocialLinkByUserID(ctx context.Context, userID string) (*model.SocialLink, error)
	UpdateSocialLinkByUserID(ctx context.Context, userID string, params UpdateSocialLinkParams) (*model.SocialLink, error)
}

// CreateSocialLinkParams defines the fields for a new social link.
type CreateSocialLinkParams struct {
	UserID    string
	Behance   *string
	Twitter   *string
	Instagram *string
	Website   *string
}

// UpdateSocialLinkParams defines the optional fields for a partial update.
type UpdateSocialLinkParams struct {
	Behance   *string
	Twitter   *string
	Instagram *string
	Website   *string
}

type socialLinkUsecase struct {
	socialLinkRepo repository.SocialLinkRepository
	mentorRepo     repository.MentorRepository
	logger         *zerolog.Logger
}

func NewSocialLinkUsecase(
	socialLinkRepo repository.SocialLinkRepository,
	mentorRepo repository.MentorRepository,
	logger *zerolog.Logger,
) SocialLinkUsecase {
	return &socialLinkUsecase{
		socialLinkRepo: socialLinkRepo,
		mentorRepo:     mentorRepo,
		logger:         logger,
	}
}

// CreateSocialLink creates the link and back-references it from the mentor.
// If the back-link write fails, the created link is deleted so no partial
// state is left behind.
func (u *socialLinkUsecase) CreateSocialLink(
	ctx context.Context,
	params CreateSocialLinkParams,
) (*model.SocialLink, error) {
	mentor, err := u.mentorRepo.GetMentor(ctx, params.UserID)
	if err != nil {
		switch {
		case errors.Is(err, mongo.ErrNoDocuments):
			return nil, apierror.NotFound("no mentor found to associate social link")
		case errors.Is(err, repository.ErrInvalidID):
			return nil, apierror.BadRequest("invalid mentor id")
		}
		return nil, err
	}

	link, err := u.socialLinkRepo.CreateSocialLink(ctx, &model.SocialLink{
		Behance:   params.Behance,
		Twitter:   params.Twitter,
		Instagram: params.Instagram,
		Website:   params.Website,
		UserID:    mentor.ID,
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apierror.Conflict("social link already exists for this mentor")
		}
		return nil, err
	}

	if _, err := u.mentorRepo.UpdateMentor(ctx, params.UserID, repository.UpdateMentorParams{
		SocialLink: &link.ID,
	}); err != nil {
		if _, deleteErr := u.socialLinkRepo.DeleteSocialLink(ctx, link.ID); deleteErr != nil {
			u.logger.Error().Err(deleteErr).
				Str("social_link_id", link.ID.Hex()).
				Msg("failed to roll back social link after back-link failure")
		}
		return nil, err
	}

	return link, nil
}

func (u *socialLinkUsecase) GetSocialLinkByUserID(ctx context.Context, userID string) (*model.SocialLink, error) {
	link, err := u.socialLinkRepo.GetSocialLinkByUserID(ctx, userID)
	if err != nil {
		switch {
		case errors.Is(err, mongo.ErrNoDocuments):
			return nil, apierror.NotFound("no social link found")
		case errors.Is(err, repository.ErrInvalidID):
			return nil, apierror.BadRequest("invalid mentor id")
		}
		return nil, err
	}

	return link, nil
}

func (u *socialLinkUsecase) UpdateSocialLinkByUserID(
	ctx context.Context,
	userID string,
	params UpdateSocialLinkParams,
) (*model.SocialLink, error) {
	if params.Behance == nil && params.Twitter == nil && params.Instagram == nil && params.Website == nil {
		return u.GetSocialLinkByUserID(ctx, userID)
	}

	link, err := u.socialLinkRepo.UpdateSocialLinkByUserID(ctx, userID, repository.UpdateSocialLinkParams{
		Behance:   params.Behance,
		Twitter:   params.Twitter,
		Instagram: params.Instagram,
		Website:   params.Website,
	})
	if err != nil {
		switch {
		case errors.Is(err, mongo.ErrNoDocuments):
			return nil, apierror.NotFound("no social link found")
		case errors.Is(err, repository.ErrInvalidID):
			return nil, apierror.BadRequest("invalid mentor id")
		}
		return nil, err
	}

	return link, nil
}
