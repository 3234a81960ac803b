package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/wementor/mentor-directory-api/internal/apierror"
	"github.com/wementor/mentor-directory-api/internal/mailer"
	"github.com/wementor/mentor-directory-api/internal/model"
	"github.com/wementor/mentor-directory-api/internal/repository"
)

// WhitelistEmailUsecase defines the whitelist management operations.
type WhitelistEmailUsecase interface {
	CreateWhitelistEmail(ctx context.Context, email string) (*model.WhitelistEmail, error)
	ListWhitelistEmails(ctx context.Context, page, limit int) ([]*model.WhitelistEmail, error)
	GetWhitelistEmail(ctx context.Context, id string) (*model.WhitelistEmail, error)
	UpdateWhitelistEmail(ctx context.Context, id string, email string) (*model.WhitelistEmail, error)
	DeleteWhitelistEmail(ctx context.Context, id string) (int64, error)
}

type whitelistEmailUsecase struct {
	whitelistRepo repository.WhitelistEmailRepository
	mailer        mailer.Sender
	logger        *zerolog.Logger
}

func NewWhitelistEmailUsecase(
	whitelistRepo repository.WhitelistEmailRepository,
	sender mailer.Sender,
	logger *zerolog.Logger,
) WhitelistEmailUsecase {
	return &whitelistEmailUsecase{
		whitelistRepo: whitelistRepo,
		mailer:        sender,
		logger:        logger,
	}
}

// CreateWhitelistEmail pre-approves an email for admin signup and sends a
// best-effort invitation notice.
func (u *whitelistEmailUsecase) CreateWhitelistEmail(
	ctx context.Context,
	email string,
) (*model.WhitelistEmail, error) {
	entry, err := u.whitelistRepo.CreateWhitelistEmail(ctx, &model.WhitelistEmail{
		Email: normalizeEmail(email),
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apierror.Conflict("email already exists")
		}
		return nil, err
	}

	if u.mailer != nil {
		go func() {
			err := u.mailer.SendSimple(
				[]string{entry.Email},
				"You have been invited",
				"Your email has been approved for admin access. Sign in with your Google account to get started.",
			)
			if err != nil {
				u.logger.Warn().Err(err).Str("email", entry.Email).Msg("failed to send invitation email")
			}
		}()
	}

	return entry, nil
}

func (u *whitelistEmailUsecase) ListWhitelistEmails(
	ctx context.Context,
	page, limit int,
) ([]*model.WhitelistEmail, error) {
	limitVal, offset := pagination(page, limit)

	entries, err := u.whitelistRepo.ListWhitelistEmails(ctx, limitVal, offset)
	if err != nil {
		return nil, err
	}

	if len(entries) == 0 {
		return nil, apierror.NotFound("no whitelisted email found")
	}

	return entries, nil
}

func (u *whitelistEmailUsecase) GetWhitelistEmail(ctx context.Context, id string) (*model.WhitelistEmail, error) {
	entry, err := u.whitelistRepo.GetWhitelistEmail(ctx, id)
	if err != nil {
		return nil, translateWhitelistError(err)
	}

	return entry, nil
}

func (u *whitelistEmailUsecase) UpdateWhitelistEmail(
	ctx context.Context,
	id string,
	email string,
) (*model.WhitelistEmail, error) {
	entry, err := u.whitelistRepo.UpdateWhitelistEmail(ctx, id, normalizeEmail(email))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apierror.Conflict("email already exists")
		}
		return nil, translateWhitelistError(err)
	}

	return entry, nil
}

func (u *whitelistEmailUsecase) DeleteWhitelistEmail(ctx context.Context, id string) (int64, error) {
	if _, err := u.GetWhitelistEmail(ctx, id); err != nil {
		return 0, err
	}

	return u.whitelistRepo.DeleteWhitelistEmail(ctx, id)
}

func translateWhitelistError(err error) error {
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return apierror.NotFound("whitelisted email not found")
	case errors.Is(err, repository.ErrInvalidID):
		return apierror.BadRequest("invalid whitelist email id")
	}
	return err
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
