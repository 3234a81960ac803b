package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/wementor/mentor-directory-api/internal/apierror"
	"github.com/wementor/mentor-directory-api/internal/model"
	"github.com/wementor/mentor-directory-api/internal/provider"
	"github.com/wementor/mentor-directory-api/internal/repository"
)

// OAuthProvider resolves a browser OAuth flow to a user profile.
type OAuthProvider interface {
	AuthCodeURL(state string) string
	FetchProfile(ctx context.Context, code string) (*provider.Profile, error)
}

// AuthUsecase defines the sign-in bootstrap and session operations.
type AuthUsecase interface {
	AuthCodeURL(state string) string
	HandleGoogleCallback(ctx context.Context, code string) (*model.Admin, error)
	CreateSession(ctx context.Context, adminID bson.ObjectID) (*model.Session, error)
	SessionAdmin(ctx context.Context, token string) (*model.Admin, error)
	DestroySession(ctx context.Context, token string) error
}

type authUsecase struct {
	adminRepo       repository.AdminRepository
	whitelistRepo   repository.WhitelistEmailRepository
	sessionRepo     repository.SessionRepository
	oauth           OAuthProvider
	superAdminEmail string
	sessionTTL      time.Duration
}

func NewAuthUsecase(
	adminRepo repository.AdminRepository,
	whitelistRepo repository.WhitelistEmailRepository,
	sessionRepo repository.SessionRepository,
	oauth OAuthProvider,
	superAdminEmail string,
	sessionTTL time.Duration,
) AuthUsecase {
	return &authUsecase{
		adminRepo:       adminRepo,
		whitelistRepo:   whitelistRepo,
		sessionRepo:     sessionRepo,
		oauth:           oauth,
		superAdminEmail: strings.ToLower(superAdminEmail),
		sessionTTL:      sessionTTL,
	}
}

func (u *authUsecase) AuthCodeURL(state string) string {
	return u.oauth.AuthCodeURL(state)
}

// HandleGoogleCallback resolves the provider profile to a local admin. The
// whitelist gates every signup, including the configured super-admin email;
// a new admin is minted super admin only when its email matches that
// configured address. This is the sole path that creates admin records.
func (u *authUsecase) HandleGoogleCallback(ctx context.Context, code string) (*model.Admin, error) {
	profile, err := u.oauth.FetchProfile(ctx, code)
	if err != nil {
		if errors.Is(err, provider.ErrNoProfile) {
			return nil, apierror.Unauthorized("no user profile found")
		}
		return nil, err
	}

	email := strings.ToLower(profile.Email)

	if _, err := u.whitelistRepo.GetWhitelistEmailByEmail(ctx, email); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apierror.Forbidden("you are not authorized to access this route")
		}
		return nil, err
	}

	admin, err := u.adminRepo.GetAdminByGoogleID(ctx, profile.ID)
	if err == nil {
		return admin, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	return u.adminRepo.CreateAdmin(ctx, &model.Admin{
		DisplayName:  profile.DisplayName,
		Email:        email,
		Avatar:       profile.Avatar,
		GoogleID:     profile.ID,
		Confirmed:    profile.EmailVerified,
		IsSuperAdmin: email == u.superAdminEmail,
	})
}

func (u *authUsecase) CreateSession(ctx context.Context, adminID bson.ObjectID) (*model.Session, error) {
	return u.sessionRepo.CreateSession(ctx, &model.Session{
		Token:     uuid.NewString(),
		AdminID:   adminID,
		ExpiresAt: time.Now().Add(u.sessionTTL),
	})
}

// SessionAdmin resolves a session token to its admin. The admin document is
// re-fetched on every request; a token whose admin no longer resolves fails
// the request.
func (u *authUsecase) SessionAdmin(ctx context.Context, token string) (*model.Admin, error) {
	session, err := u.sessionRepo.GetSessionByToken(ctx, token)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apierror.Unauthorized("session not found")
		}
		return nil, err
	}

	if time.Now().After(session.ExpiresAt) {
		_ = u.sessionRepo.DeleteSessionByToken(ctx, token)
		return nil, apierror.Unauthorized("session expired")
	}

	admin, err := u.adminRepo.GetAdmin(ctx, session.AdminID.Hex())
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apierror.Unauthorized("admin no longer exists")
		}
		return nil, err
	}

	return admin, nil
}

func (u *authUsecase) DestroySession(ctx context.Context, token string) error {
	return u.sessionRepo.DeleteSessionByToken(ctx, token)
}
