package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/wementor/mentor-directory-api/internal/apierror"
	"github.com/wementor/mentor-directory-api/internal/model"
)

func newMentorFixture(t *testing.T) (*fakeMentorRepo, *fakeCategoryRepo, MentorUsecase, *model.Mentor) {
	t.Helper()

	mentorRepo := &fakeMentorRepo{}
	categoryRepo := &fakeCategoryRepo{}
	uc := NewMentorUsecase(mentorRepo, categoryRepo)

	mentor, err := uc.CreateMentor(context.Background(), CreateMentorParams{
		FirstName: "Grace",
		LastName:  "Hopper",
		Email:     "grace@example.com",
	})
	require.NoError(t, err)

	return mentorRepo, categoryRepo, uc, mentor
}

func addCategory(t *testing.T, repo *fakeCategoryRepo, name string) *model.Category {
	t.Helper()

	category, err := repo.CreateCategory(context.Background(), &model.Category{Name: name})
	require.NoError(t, err)
	return category
}

func TestCreateMentor_DuplicateEmail(t *testing.T) {
	_, _, uc, _ := newMentorFixture(t)

	_, err := uc.CreateMentor(context.Background(), CreateMentorParams{
		FirstName: "Other",
		LastName:  "Person",
		Email:     "grace@example.com",
	})
	assert.True(t, apierror.IsKind(err, apierror.KindConflict))
}

func TestAddMentorCategories(t *testing.T) {
	_, categoryRepo, uc, mentor := newMentorFixture(t)
	backend := addCategory(t, categoryRepo, "backend")
	frontend := addCategory(t, categoryRepo, "frontend")

	updated, err := uc.AddMentorCategories(context.Background(), mentor.ID.Hex(), []string{
		backend.ID.Hex(), frontend.ID.Hex(),
	})
	require.NoError(t, err)
	assert.Equal(t, []bson.ObjectID{backend.ID, frontend.ID}, updated.Categories)
}

func TestAddMentorCategories_DuplicateWithinRequest(t *testing.T) {
	_, categoryRepo, uc, mentor := newMentorFixture(t)
	backend := addCategory(t, categoryRepo, "backend")

	_, err := uc.AddMentorCategories(context.Background(), mentor.ID.Hex(), []string{
		backend.ID.Hex(), backend.ID.Hex(),
	})
	assert.True(t, apierror.IsKind(err, apierror.KindBadRequest))
}

func TestAddMentorCategories_AlreadyAttached(t *testing.T) {
	_, categoryRepo, uc, mentor := newMentorFixture(t)
	backend := addCategory(t, categoryRepo, "backend")

	_, err := uc.AddMentorCategories(context.Background(), mentor.ID.Hex(), []string{backend.ID.Hex()})
	require.NoError(t, err)

	_, err = uc.AddMentorCategories(context.Background(), mentor.ID.Hex(), []string{backend.ID.Hex()})
	assert.True(t, apierror.IsKind(err, apierror.KindBadRequest))
}

func TestAddMentorCategories_UnknownCategory(t *testing.T) {
	_, _, uc, mentor := newMentorFixture(t)

	_, err := uc.AddMentorCategories(context.Background(), mentor.ID.Hex(), []string{
		bson.NewObjectID().Hex(),
	})
	assert.True(t, apierror.IsKind(err, apierror.KindBadRequest))
}

func TestAddMentorCategories_InvalidHex(t *testing.T) {
	_, _, uc, mentor := newMentorFixture(t)

	_, err := uc.AddMentorCategories(context.Background(), mentor.ID.Hex(), []string{"not-hex"})
	assert.True(t, apierror.IsKind(err, apierror.KindBadRequest))
}

func TestRemoveMentorCategory(t *testing.T) {
	_, categoryRepo, uc, mentor := newMentorFixture(t)
	backend := addCategory(t, categoryRepo, "backend")
	frontend := addCategory(t, categoryRepo, "frontend")

	_, err := uc.AddMentorCategories(context.Background(), mentor.ID.Hex(), []string{
		backend.ID.Hex(), frontend.ID.Hex(),
	})
	require.NoError(t, err)

	updated, err := uc.RemoveMentorCategory(context.Background(), mentor.ID.Hex(), backend.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, []bson.ObjectID{frontend.ID}, updated.Categories)
}

func TestRemoveMentorCategory_UnattachedIsNoOp(t *testing.T) {
	_, categoryRepo, uc, mentor := newMentorFixture(t)
	backend := addCategory(t, categoryRepo, "backend")

	updated, err := uc.RemoveMentorCategory(context.Background(), mentor.ID.Hex(), backend.ID.Hex())
	require.NoError(t, err)
	assert.Empty(t, updated.Categories)
}

func TestSearchMentors(t *testing.T) {
	_, categoryRepo, uc, mentor := newMentorFixture(t)
	backend := addCategory(t, categoryRepo, "backend")

	_, err := uc.AddMentorCategories(context.Background(), mentor.ID.Hex(), []string{backend.ID.Hex()})
	require.NoError(t, err)

	_, err = uc.CreateMentor(context.Background(), CreateMentorParams{
		FirstName: "Alan",
		LastName:  "Turing",
		Email:     "alan@example.com",
	})
	require.NoError(t, err)

	firstName := "gra"
	matched, err := uc.SearchMentors(context.Background(), SearchMentorsParams{
		FirstName:   &firstName,
		CategoryIDs: []string{backend.ID.Hex()},
	})
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "Grace", matched[0].FirstName)
}

func TestSearchMentors_NoMatch(t *testing.T) {
	_, _, uc, _ := newMentorFixture(t)

	firstName := "zzz"
	_, err := uc.SearchMentors(context.Background(), SearchMentorsParams{FirstName: &firstName})
	assert.True(t, apierror.IsKind(err, apierror.KindNotFound))
}

func TestDeleteMentor_Unknown(t *testing.T) {
	_, _, uc, _ := newMentorFixture(t)

	_, err := uc.DeleteMentor(context.Background(), bson.NewObjectID().Hex())
	assert.True(t, apierror.IsKind(err, apierror.KindNotFound))
}

func TestSetMentorAvatar(t *testing.T) {
	_, _, uc, mentor := newMentorFixture(t)

	updated, err := uc.SetMentorAvatar(context.Background(), mentor.ID.Hex(), "https://img.test/grace.png")
	require.NoError(t, err)
	require.NotNil(t, updated.Avatar)
	assert.Equal(t, "https://img.test/grace.png", *updated.Avatar)
}

func TestUpdateMentor_DuplicateEmail(t *testing.T) {
	_, _, uc, mentor := newMentorFixture(t)

	_, err := uc.CreateMentor(context.Background(), CreateMentorParams{
		FirstName: "Alan",
		LastName:  "Turing",
		Email:     "alan@example.com",
	})
	require.NoError(t, err)

	email := "alan@example.com"
	_, err = uc.UpdateMentor(context.Background(), mentor.ID.Hex(), UpdateMentorParams{Email: &email})
	assert.True(t, apierror.IsKind(err, apierror.KindConflict))
}
