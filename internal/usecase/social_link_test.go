package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/wementor/mentor-directory-api/internal/apierror"
	"github.com/wementor/mentor-directory-api/internal/model"
)

func newSocialLinkFixture(t *testing.T) (*fakeSocialLinkRepo, *fakeMentorRepo, SocialLinkUsecase, *model.Mentor) {
	t.Helper()

	linkRepo := &fakeSocialLinkRepo{}
	mentorRepo := &fakeMentorRepo{}
	logger := zerolog.Nop()
	uc := NewSocialLinkUsecase(linkRepo, mentorRepo, &logger)

	mentor, err := mentorRepo.CreateMentor(context.Background(), &model.Mentor{
		FirstName: "Grace", LastName: "Hopper", Email: "grace@example.com",
	})
	require.NoError(t, err)

	return linkRepo, mentorRepo, uc, mentor
}

func TestCreateSocialLink_BackLinksMentor(t *testing.T) {
	_, mentorRepo, uc, mentor := newSocialLinkFixture(t)

	twitter := "https://twitter.com/grace"
	link, err := uc.CreateSocialLink(context.Background(), CreateSocialLinkParams{
		UserID:  mentor.ID.Hex(),
		Twitter: &twitter,
	})
	require.NoError(t, err)
	assert.Equal(t, mentor.ID, link.UserID)

	stored, err := mentorRepo.GetMentor(context.Background(), mentor.ID.Hex())
	require.NoError(t, err)
	require.NotNil(t, stored.SocialLink)
	assert.Equal(t, link.ID, *stored.SocialLink)
}

func TestCreateSocialLink_UnknownMentor(t *testing.T) {
	_, _, uc, _ := newSocialLinkFixture(t)

	_, err := uc.CreateSocialLink(context.Background(), CreateSocialLinkParams{
		UserID: bson.NewObjectID().Hex(),
	})
	assert.True(t, apierror.IsKind(err, apierror.KindNotFound))
}

func TestCreateSocialLink_SecondLinkForMentor(t *testing.T) {
	_, _, uc, mentor := newSocialLinkFixture(t)

	_, err := uc.CreateSocialLink(context.Background(), CreateSocialLinkParams{UserID: mentor.ID.Hex()})
	require.NoError(t, err)

	_, err = uc.CreateSocialLink(context.Background(), CreateSocialLinkParams{UserID: mentor.ID.Hex()})
	assert.True(t, apierror.IsKind(err, apierror.KindConflict))
}

func TestCreateSocialLink_BackLinkFailureRollsBack(t *testing.T) {
	linkRepo, mentorRepo, uc, mentor := newSocialLinkFixture(t)
	mentorRepo.updateErr = fmt.Errorf("write conflict")

	_, err := uc.CreateSocialLink(context.Background(), CreateSocialLinkParams{UserID: mentor.ID.Hex()})
	require.Error(t, err)
	assert.Empty(t, linkRepo.links)
}

func TestGetSocialLinkByUserID(t *testing.T) {
	_, _, uc, mentor := newSocialLinkFixture(t)

	website := "https://grace.dev"
	_, err := uc.CreateSocialLink(context.Background(), CreateSocialLinkParams{
		UserID:  mentor.ID.Hex(),
		Website: &website,
	})
	require.NoError(t, err)

	link, err := uc.GetSocialLinkByUserID(context.Background(), mentor.ID.Hex())
	require.NoError(t, err)
	require.NotNil(t, link.Website)
	assert.Equal(t, website, *link.Website)
}

func TestGetSocialLinkByUserID_Missing(t *testing.T) {
	_, _, uc, mentor := newSocialLinkFixture(t)

	_, err := uc.GetSocialLinkByUserID(context.Background(), mentor.ID.Hex())
	assert.True(t, apierror.IsKind(err, apierror.KindNotFound))
}

func TestUpdateSocialLinkByUserID_PartialUpdate(t *testing.T) {
	_, _, uc, mentor := newSocialLinkFixture(t)

	twitter := "https://twitter.com/grace"
	_, err := uc.CreateSocialLink(context.Background(), CreateSocialLinkParams{
		UserID:  mentor.ID.Hex(),
		Twitter: &twitter,
	})
	require.NoError(t, err)

	behance := "https://behance.net/grace"
	link, err := uc.UpdateSocialLinkByUserID(context.Background(), mentor.ID.Hex(), UpdateSocialLinkParams{
		Behance: &behance,
	})
	require.NoError(t, err)
	require.NotNil(t, link.Behance)
	assert.Equal(t, behance, *link.Behance)
	require.NotNil(t, link.Twitter)
	assert.Equal(t, twitter, *link.Twitter)
}

func TestUpdateSocialLinkByUserID_Missing(t *testing.T) {
	_, _, uc, mentor := newSocialLinkFixture(t)

	behance := "https://behance.net/grace"
	_, err := uc.UpdateSocialLinkByUserID(context.Background(), mentor.ID.Hex(), UpdateSocialLinkParams{
		Behance: &behance,
	})
	assert.True(t, apierror.IsKind(err, apierror.KindNotFound))
}
