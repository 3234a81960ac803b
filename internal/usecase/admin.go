package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/wementor/mentor-directory-api/internal/apierror"
	"github.com/wementor/mentor-directory-api/internal/mailer"
	"github.com/wementor/mentor-directory-api/internal/model"
	"github.com/wementor/mentor-directory-api/internal/repository"
)

// AdminUsecase defines the admin management operations.
type AdminUsecase interface {
	ListAdmins(ctx context.Context, page, limit int) ([]*model.Admin, error)
	ListSuperAdmins(ctx context.Context, page, limit int) ([]*model.Admin, error)
	GetAdminByEmail(ctx context.Context, email string) (*model.Admin, error)
	GetAdminByID(ctx context.Context, id string) (*model.Admin, error)
	SetSuperAdmin(ctx context.Context, email string) (string, error)
	UpdateAdmin(ctx context.Context, id string, params UpdateAdminProfileParams) (*model.Admin, error)
	DeleteAdmin(ctx context.Context, email string) (int64, error)
}

// UpdateAdminProfileParams defines the optional profile fields an admin may
// change. Only the fields that are not nil will be updated.
type UpdateAdminProfileParams struct {
	DisplayName *string
	Avatar      *string
}

type adminUsecase struct {
	adminRepo     repository.AdminRepository
	whitelistRepo repository.WhitelistEmailRepository
	mailer        mailer.Sender
	logger        *zerolog.Logger
}

func NewAdminUsecase(
	adminRepo repository.AdminRepository,
	whitelistRepo repository.WhitelistEmailRepository,
	sender mailer.Sender,
	logger *zerolog.Logger,
) AdminUsecase {
	return &adminUsecase{
		adminRepo:     adminRepo,
		whitelistRepo: whitelistRepo,
		mailer:        sender,
		logger:        logger,
	}
}

func (u *adminUsecase) ListAdmins(ctx context.Context, page, limit int) ([]*model.Admin, error) {
	limitVal, offset := pagination(page, limit)

	admins, err := u.adminRepo.ListAdmins(ctx, repository.FilterAdminsParams{Limit: limitVal, Offset: offset})
	if err != nil {
		return nil, err
	}

	if len(admins) == 0 {
		return nil, apierror.NotFound("admins not found")
	}

	return admins, nil
}

func (u *adminUsecase) ListSuperAdmins(ctx context.Context, page, limit int) ([]*model.Admin, error) {
	limitVal, offset := pagination(page, limit)

	superAdmin := true
	admins, err := u.adminRepo.ListAdmins(ctx, repository.FilterAdminsParams{
		SuperAdmin: &superAdmin,
		Limit:      limitVal,
		Offset:     offset,
	})
	if err != nil {
		return nil, err
	}

	if len(admins) == 0 {
		return nil, apierror.NotFound("super admins not found")
	}

	return admins, nil
}

func (u *adminUsecase) GetAdminByEmail(ctx context.Context, email string) (*model.Admin, error) {
	admin, err := u.adminRepo.GetAdminByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apierror.NotFound("admin not found")
		}
		return nil, err
	}

	return admin, nil
}

func (u *adminUsecase) GetAdminByID(ctx context.Context, id string) (*model.Admin, error) {
	admin, err := u.adminRepo.GetAdmin(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, mongo.ErrNoDocuments):
			return nil, apierror.NotFound("admin not found")
		case errors.Is(err, repository.ErrInvalidID):
			return nil, apierror.BadRequest("invalid admin id")
		}
		return nil, err
	}

	return admin, nil
}

// SetSuperAdmin promotes the admin with the given email. Promotion is not
// idempotent: promoting an admin that already holds the role is a conflict.
func (u *adminUsecase) SetSuperAdmin(ctx context.Context, email string) (string, error) {
	admin, err := u.GetAdminByEmail(ctx, email)
	if err != nil {
		return "", err
	}

	if admin.IsSuperAdmin {
		return "", apierror.Conflict("email is already a super admin")
	}

	superAdmin := true
	if _, err := u.adminRepo.UpdateAdmin(ctx, admin.ID.Hex(), repository.UpdateAdminParams{
		IsSuperAdmin: &superAdmin,
	}); err != nil {
		return "", err
	}

	u.notify(admin.Email, "You are now a super admin",
		"Your account has been granted super admin privileges.")

	return fmt.Sprintf("successfully set %s to be super admin", email), nil
}

func (u *adminUsecase) UpdateAdmin(
	ctx context.Context,
	id string,
	params UpdateAdminProfileParams,
) (*model.Admin, error) {
	if params.DisplayName == nil && params.Avatar == nil {
		return u.GetAdminByID(ctx, id)
	}

	admin, err := u.adminRepo.UpdateAdmin(ctx, id, repository.UpdateAdminParams{
		DisplayName: params.DisplayName,
		Avatar:      params.Avatar,
	})
	if err != nil {
		switch {
		case errors.Is(err, mongo.ErrNoDocuments):
			return nil, apierror.NotFound("admin not found")
		case errors.Is(err, repository.ErrInvalidID):
			return nil, apierror.BadRequest("invalid admin id")
		}
		return nil, err
	}

	return admin, nil
}

// DeleteAdmin removes the admin with the given email. Deleting the sole
// super admin is refused; another admin must be designated first. A matching
// whitelist entry is cleaned up best-effort and folded into the count.
func (u *adminUsecase) DeleteAdmin(ctx context.Context, email string) (int64, error) {
	admin, err := u.GetAdminByEmail(ctx, email)
	if err != nil {
		return 0, err
	}

	if admin.IsSuperAdmin {
		count, err := u.adminRepo.CountSuperAdmins(ctx)
		if err != nil {
			return 0, err
		}
		if count == 1 {
			return 0, apierror.Conflict("designate another super admin first")
		}
	}

	deleted, err := u.adminRepo.DeleteAdminByEmail(ctx, email)
	if err != nil {
		return 0, err
	}

	whitelistDeleted, err := u.whitelistRepo.DeleteWhitelistEmailByEmail(ctx, email)
	if err != nil {
		// The admin is already gone; a stale whitelist row only re-permits
		// signup, so the cleanup failure is logged rather than rolled back.
		u.logger.Warn().Err(err).Str("email", email).Msg("failed to clean up whitelist entry")
		return deleted, nil
	}

	return deleted + whitelistDeleted, nil
}

func (u *adminUsecase) notify(to, subject, body string) {
	if u.mailer == nil {
		return
	}

	go func() {
		if err := u.mailer.SendSimple([]string{to}, subject, body); err != nil {
			u.logger.Warn().Err(err).Str("email", to).Msg("failed to send notification email")
		}
	}()
}
