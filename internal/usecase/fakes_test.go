package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/wementor/mentor-directory-api/internal/model"
	"github.com/wementor/mentor-directory-api/internal/provider"
	"github.com/wementor/mentor-directory-api/internal/repository"
)

// dupKeyErr builds a server duplicate-key error in the shape the driver
// produces, so the production mongo.IsDuplicateKeyError path is exercised.
func dupKeyErr(field string) error {
	return mongo.WriteException{
		WriteErrors: []mongo.WriteError{{
			Code:    11000,
			Message: fmt.Sprintf("E11000 duplicate key error collection: test.c index: %s_1 dup key", field),
		}},
	}
}

func parseID(id string) (bson.ObjectID, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return bson.ObjectID{}, repository.ErrInvalidID
	}
	return objectID, nil
}

func paginate[T any](items []T, limit, offset uint64) []T {
	if offset >= uint64(len(items)) {
		return nil
	}
	items = items[offset:]
	if limit < uint64(len(items)) {
		items = items[:limit]
	}
	return items
}

// --- admins ---

type fakeAdminRepo struct {
	admins    []*model.Admin
	updateErr error
}

func (r *fakeAdminRepo) CreateAdmin(_ context.Context, admin *model.Admin) (*model.Admin, error) {
	for _, a := range r.admins {
		if a.Email == admin.Email {
			return nil, dupKeyErr("email")
		}
	}
	admin.ID = bson.NewObjectID()
	r.admins = append(r.admins, admin)
	return admin, nil
}

func (r *fakeAdminRepo) GetAdmin(_ context.Context, id string) (*model.Admin, error) {
	objectID, err := parseID(id)
	if err != nil {
		return nil, err
	}
	for _, a := range r.admins {
		if a.ID == objectID {
			return a, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeAdminRepo) GetAdminByEmail(_ context.Context, email string) (*model.Admin, error) {
	for _, a := range r.admins {
		if a.Email == email {
			return a, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeAdminRepo) GetAdminByGoogleID(_ context.Context, googleID string) (*model.Admin, error) {
	for _, a := range r.admins {
		if a.GoogleID == googleID {
			return a, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeAdminRepo) UpdateAdmin(ctx context.Context, id string, params repository.UpdateAdminParams) (*model.Admin, error) {
	if r.updateErr != nil {
		return nil, r.updateErr
	}
	admin, err := r.GetAdmin(ctx, id)
	if err != nil {
		return nil, err
	}
	if params.DisplayName != nil {
		admin.DisplayName = *params.DisplayName
	}
	if params.Avatar != nil {
		admin.Avatar = *params.Avatar
	}
	if params.IsSuperAdmin != nil {
		admin.IsSuperAdmin = *params.IsSuperAdmin
	}
	return admin, nil
}

func (r *fakeAdminRepo) DeleteAdminByEmail(_ context.Context, email string) (int64, error) {
	for i, a := range r.admins {
		if a.Email == email {
			r.admins = append(r.admins[:i], r.admins[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (r *fakeAdminRepo) ListAdmins(_ context.Context, params repository.FilterAdminsParams) ([]*model.Admin, error) {
	var matched []*model.Admin
	for _, a := range r.admins {
		if params.SuperAdmin != nil && a.IsSuperAdmin != *params.SuperAdmin {
			continue
		}
		matched = append(matched, a)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].DisplayName < matched[j].DisplayName })
	return paginate(matched, params.Limit, params.Offset), nil
}

func (r *fakeAdminRepo) CountSuperAdmins(_ context.Context) (int64, error) {
	var count int64
	for _, a := range r.admins {
		if a.IsSuperAdmin {
			count++
		}
	}
	return count, nil
}

// --- categories ---

type fakeCategoryRepo struct {
	categories []*model.Category
}

func (r *fakeCategoryRepo) CreateCategory(_ context.Context, category *model.Category) (*model.Category, error) {
	for _, c := range r.categories {
		if c.Name == category.Name {
			return nil, dupKeyErr("name")
		}
	}
	category.ID = bson.NewObjectID()
	r.categories = append(r.categories, category)
	return category, nil
}

func (r *fakeCategoryRepo) GetCategory(_ context.Context, id string) (*model.Category, error) {
	objectID, err := parseID(id)
	if err != nil {
		return nil, err
	}
	for _, c := range r.categories {
		if c.ID == objectID {
			return c, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeCategoryRepo) GetCategoriesByIDs(_ context.Context, ids []bson.ObjectID) ([]*model.Category, error) {
	var matched []*model.Category
	for _, c := range r.categories {
		for _, id := range ids {
			if c.ID == id {
				matched = append(matched, c)
				break
			}
		}
	}
	return matched, nil
}

func (r *fakeCategoryRepo) UpdateCategory(ctx context.Context, id string, name string) (*model.Category, error) {
	category, err := r.GetCategory(ctx, id)
	if err != nil {
		return nil, err
	}
	for _, c := range r.categories {
		if c.Name == name && c.ID != category.ID {
			return nil, dupKeyErr("name")
		}
	}
	category.Name = name
	return category, nil
}

func (r *fakeCategoryRepo) DeleteCategoryByName(_ context.Context, name string) (int64, error) {
	for i, c := range r.categories {
		if c.Name == name {
			r.categories = append(r.categories[:i], r.categories[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (r *fakeCategoryRepo) ListCategories(_ context.Context, limit, offset uint64) ([]*model.Category, error) {
	sorted := append([]*model.Category(nil), r.categories...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })
	return paginate(sorted, limit, offset), nil
}

// --- mentors ---

type fakeMentorRepo struct {
	mentors   []*model.Mentor
	updateErr error
}

func (r *fakeMentorRepo) CreateMentor(_ context.Context, mentor *model.Mentor) (*model.Mentor, error) {
	for _, m := range r.mentors {
		if m.Email == mentor.Email {
			return nil, dupKeyErr("email")
		}
	}
	mentor.ID = bson.NewObjectID()
	r.mentors = append(r.mentors, mentor)
	return mentor, nil
}

func (r *fakeMentorRepo) GetMentor(_ context.Context, id string) (*model.Mentor, error) {
	objectID, err := parseID(id)
	if err != nil {
		return nil, err
	}
	for _, m := range r.mentors {
		if m.ID == objectID {
			return m, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeMentorRepo) UpdateMentor(ctx context.Context, id string, params repository.UpdateMentorParams) (*model.Mentor, error) {
	if r.updateErr != nil {
		return nil, r.updateErr
	}
	mentor, err := r.GetMentor(ctx, id)
	if err != nil {
		return nil, err
	}
	if params.Email != nil {
		for _, m := range r.mentors {
			if m.Email == *params.Email && m.ID != mentor.ID {
				return nil, dupKeyErr("email")
			}
		}
		mentor.Email = *params.Email
	}
	if params.FirstName != nil {
		mentor.FirstName = *params.FirstName
	}
	if params.LastName != nil {
		mentor.LastName = *params.LastName
	}
	if params.Avatar != nil {
		mentor.Avatar = params.Avatar
	}
	if params.Categories != nil {
		mentor.Categories = *params.Categories
	}
	if params.SocialLink != nil {
		mentor.SocialLink = params.SocialLink
	}
	return mentor, nil
}

func (r *fakeMentorRepo) DeleteMentor(_ context.Context, id string) (int64, error) {
	objectID, err := parseID(id)
	if err != nil {
		return 0, err
	}
	for i, m := range r.mentors {
		if m.ID == objectID {
			r.mentors = append(r.mentors[:i], r.mentors[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (r *fakeMentorRepo) ListMentors(_ context.Context, limit, offset uint64) ([]*model.Mentor, error) {
	sorted := append([]*model.Mentor(nil), r.mentors...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].FirstName < sorted[j].FirstName })
	return paginate(sorted, limit, offset), nil
}

func (r *fakeMentorRepo) SearchMentors(_ context.Context, params repository.SearchMentorsParams) ([]*model.Mentor, error) {
	var matched []*model.Mentor
	for _, m := range r.mentors {
		if params.FirstName != nil && !strings.Contains(strings.ToLower(m.FirstName), strings.ToLower(*params.FirstName)) {
			continue
		}
		if params.LastName != nil && !strings.Contains(strings.ToLower(m.LastName), strings.ToLower(*params.LastName)) {
			continue
		}
		if len(params.CategoryIDs) > 0 {
			hit := false
			for _, id := range params.CategoryIDs {
				if m.HasCategory(id) {
					hit = true
					break
				}
			}
			if !hit {
				continue
			}
		}
		matched = append(matched, m)
	}
	return matched, nil
}

// --- social links ---

type fakeSocialLinkRepo struct {
	links []*model.SocialLink
}

func (r *fakeSocialLinkRepo) CreateSocialLink(_ context.Context, link *model.SocialLink) (*model.SocialLink, error) {
	for _, l := range r.links {
		if l.UserID == link.UserID {
			return nil, dupKeyErr("user_id")
		}
	}
	link.ID = bson.NewObjectID()
	r.links = append(r.links, link)
	return link, nil
}

func (r *fakeSocialLinkRepo) GetSocialLinkByUserID(_ context.Context, userID string) (*model.SocialLink, error) {
	objectID, err := parseID(userID)
	if err != nil {
		return nil, err
	}
	for _, l := range r.links {
		if l.UserID == objectID {
			return l, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeSocialLinkRepo) UpdateSocialLinkByUserID(ctx context.Context, userID string, params repository.UpdateSocialLinkParams) (*model.SocialLink, error) {
	link, err := r.GetSocialLinkByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if params.Behance != nil {
		link.Behance = params.Behance
	}
	if params.Twitter != nil {
		link.Twitter = params.Twitter
	}
	if params.Instagram != nil {
		link.Instagram = params.Instagram
	}
	if params.Website != nil {
		link.Website = params.Website
	}
	return link, nil
}

func (r *fakeSocialLinkRepo) DeleteSocialLink(_ context.Context, id bson.ObjectID) (int64, error) {
	for i, l := range r.links {
		if l.ID == id {
			r.links = append(r.links[:i], r.links[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

// --- whitelist ---

type fakeWhitelistRepo struct {
	entries          []*model.WhitelistEmail
	deleteByEmailErr error
}

func (r *fakeWhitelistRepo) CreateWhitelistEmail(_ context.Context, entry *model.WhitelistEmail) (*model.WhitelistEmail, error) {
	for _, e := range r.entries {
		if e.Email == entry.Email {
			return nil, dupKeyErr("email")
		}
	}
	entry.ID = bson.NewObjectID()
	r.entries = append(r.entries, entry)
	return entry, nil
}

func (r *fakeWhitelistRepo) GetWhitelistEmail(_ context.Context, id string) (*model.WhitelistEmail, error) {
	objectID, err := parseID(id)
	if err != nil {
		return nil, err
	}
	for _, e := range r.entries {
		if e.ID == objectID {
			return e, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeWhitelistRepo) GetWhitelistEmailByEmail(_ context.Context, email string) (*model.WhitelistEmail, error) {
	for _, e := range r.entries {
		if e.Email == email {
			return e, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeWhitelistRepo) UpdateWhitelistEmail(ctx context.Context, id string, email string) (*model.WhitelistEmail, error) {
	entry, err := r.GetWhitelistEmail(ctx, id)
	if err != nil {
		return nil, err
	}
	for _, e := range r.entries {
		if e.Email == email && e.ID != entry.ID {
			return nil, dupKeyErr("email")
		}
	}
	entry.Email = email
	return entry, nil
}

func (r *fakeWhitelistRepo) DeleteWhitelistEmail(_ context.Context, id string) (int64, error) {
	objectID, err := parseID(id)
	if err != nil {
		return 0, err
	}
	for i, e := range r.entries {
		if e.ID == objectID {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (r *fakeWhitelistRepo) DeleteWhitelistEmailByEmail(_ context.Context, email string) (int64, error) {
	if r.deleteByEmailErr != nil {
		return 0, r.deleteByEmailErr
	}
	for i, e := range r.entries {
		if e.Email == email {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (r *fakeWhitelistRepo) ListWhitelistEmails(_ context.Context, limit, offset uint64) ([]*model.WhitelistEmail, error) {
	sorted := append([]*model.WhitelistEmail(nil), r.entries...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Email < sorted[j].Email })
	return paginate(sorted, limit, offset), nil
}

// --- sessions ---

type fakeSessionRepo struct {
	sessions map[string]*model.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]*model.Session)}
}

func (r *fakeSessionRepo) CreateSession(_ context.Context, session *model.Session) (*model.Session, error) {
	session.ID = bson.NewObjectID()
	r.sessions[session.Token] = session
	return session, nil
}

func (r *fakeSessionRepo) GetSessionByToken(_ context.Context, token string) (*model.Session, error) {
	session, ok := r.sessions[token]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return session, nil
}

func (r *fakeSessionRepo) DeleteSessionByToken(_ context.Context, token string) error {
	delete(r.sessions, token)
	return nil
}

// --- files and blobs ---

type fakeFileRepo struct {
	files     []*model.File
	createErr error
}

func (r *fakeFileRepo) CreateFile(_ context.Context, file *model.File) (*model.File, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	file.ID = bson.NewObjectID()
	r.files = append(r.files, file)
	return file, nil
}

func (r *fakeFileRepo) DeleteFileByPublicID(_ context.Context, publicID string) (int64, error) {
	for i, f := range r.files {
		if f.PublicID == publicID {
			r.files = append(r.files[:i], r.files[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (r *fakeFileRepo) ListFiles(_ context.Context, limit, offset uint64) ([]*model.File, error) {
	return paginate(r.files, limit, offset), nil
}

type fakeBlobStore struct {
	objects   map[string][]byte
	uploadErr error
	deleteErr error
}

func newFakeBlobStore() *fakeBlobStore {
	return &fakeBlobStore{objects: make(map[string][]byte)}
}

func (s *fakeBlobStore) Upload(_ context.Context, key string, data []byte, _ string) (string, error) {
	if s.uploadErr != nil {
		return "", s.uploadErr
	}
	s.objects[key] = data
	return "https://blobs.test/" + key, nil
}

func (s *fakeBlobStore) Delete(_ context.Context, key string) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	delete(s.objects, key)
	return nil
}

// --- oauth ---

type fakeOAuthProvider struct {
	profile *provider.Profile
	err     error
}

func (p *fakeOAuthProvider) AuthCodeURL(state string) string {
	return "https://accounts.test/auth?state=" + state
}

func (p *fakeOAuthProvider) FetchProfile(_ context.Context, _ string) (*provider.Profile, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.profile, nil
}
