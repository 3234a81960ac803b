package repository

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/wementor/mentor-directory-api/internal/model"
)

// AdminRepository defines the interface for admin-related database operations.
type AdminRepository interface {
	CreateAdmin(ctx context.Context, admin *model.Admin) (*model.Admin, error)
	GetAdmin(ctx context.Context, id string) (*model.Admin, error)
	GetAdminByEmail(ctx context.Context, email string) (*model.Admin, error)
	GetAdminByGoogleID(ctx context.Context, googleID string) (*model.Admin, error)
	UpdateAdmin(ctx context.Context, id string, params UpdateAdminParams) (*model.Admin, error)
	DeleteAdminByEmail(ctx context.Context, email string) (int64, error)
	ListAdmins(ctx context.Context, params FilterAdminsParams) ([]*model.Admin, error)
	CountSuperAdmins(ctx context.Context) (int64, error)
}

// UpdateAdminParams defines the optional parameters for updating an admin.
// Only the fields that are not nil will be updated.
type UpdateAdminParams struct {
	DisplayName  *string
	Avatar       *string
	IsSuperAdmin *bool
}

// FilterAdminsParams defines the parameters for filtering and paginating
// admins. Results are sorted by display name ascending.
type FilterAdminsParams struct {
	SuperAdmin *bool
	Limit      uint64
	Offset     uint64
}

const adminCollection = "admins"

type adminMongoRepository struct {
	db *mongo.Database
}

func NewAdminMongoRepository(ctx context.Context, logger *zerolog.Logger, db *mongo.Database) AdminRepository {
	collection := db.Collection(adminCollection)

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "google_id", Value: 1}},
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create admin indexes")
	}

	return &adminMongoRepository{db: db}
}

func (r *adminMongoRepository) CreateAdmin(ctx context.Context, admin *model.Admin) (*model.Admin, error) {
	now := time.Now()
	admin.CreatedAt = now
	admin.UpdatedAt = now

	result, err := r.db.Collection(adminCollection).InsertOne(ctx, admin)
	if err != nil {
		return nil, err
	}

	if objectID, ok := result.InsertedID.(bson.ObjectID); ok {
		admin.ID = objectID
	} else {
		return nil, errors.New("failed to convert inserted ID to ObjectID")
	}

	return admin, nil
}

func (r *adminMongoRepository) GetAdmin(ctx context.Context, id string) (*model.Admin, error) {
	objectID, err := objectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	result := r.db.Collection(adminCollection).FindOne(ctx, bson.M{"_id": objectID})
	if result.Err() != nil {
		return nil, result.Err()
	}

	var admin model.Admin
	if err := result.Decode(&admin); err != nil {
		return nil, err
	}

	return &admin, nil
}

func (r *adminMongoRepository) GetAdminByEmail(ctx context.Context, email string) (*model.Admin, error) {
	result := r.db.Collection(adminCollection).FindOne(ctx, bson.M{"email": email})
	if result.Err() != nil {
		return nil, result.Err()
	}

	var admin model.Admin
	if err := result.Decode(&admin); err != nil {
		return nil, err
	}

	return &admin, nil
}

func (r *adminMongoRepository) GetAdminByGoogleID(ctx context.Context, googleID string) (*model.Admin, error) {
	result := r.db.Collection(adminCollection).FindOne(ctx, bson.M{"google_id": googleID})
	if result.Err() != nil {
		return nil, result.Err()
	}

	var admin model.Admin
	if err := result.Decode(&admin); err != nil {
		return nil, err
	}

	return &admin, nil
}

func (r *adminMongoRepository) UpdateAdmin(
	ctx context.Context,
	id string,
	params UpdateAdminParams,
) (*model.Admin, error) {
	objectID, err := objectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	// Build update query
	updateMap := bson.M{}
	if params.DisplayName != nil {
		updateMap["display_name"] = *params.DisplayName
	}
	if params.Avatar != nil {
		updateMap["avatar"] = *params.Avatar
	}
	if params.IsSuperAdmin != nil {
		updateMap["is_super_admin"] = *params.IsSuperAdmin
	}

	if len(updateMap) == 0 {
		return nil, errors.New("no admin fields to update")
	}

	updateMap["updated_at"] = time.Now()

	result := r.db.Collection(adminCollection).FindOneAndUpdate(
		ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": updateMap},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	if result.Err() != nil {
		return nil, result.Err()
	}

	var admin model.Admin
	if err := result.Decode(&admin); err != nil {
		return nil, err
	}

	return &admin, nil
}

func (r *adminMongoRepository) DeleteAdminByEmail(ctx context.Context, email string) (int64, error) {
	result, err := r.db.Collection(adminCollection).DeleteOne(ctx, bson.M{"email": email})
	if err != nil {
		return 0, err
	}

	return result.DeletedCount, nil
}

func (r *adminMongoRepository) ListAdmins(
	ctx context.Context,
	params FilterAdminsParams,
) ([]*model.Admin, error) {
	findOptions := options.Find()

	limit := params.Limit
	if limit == 0 {
		limit = 10
	}
	findOptions.SetLimit(int64(limit))

	if params.Offset > 0 {
		findOptions.SetSkip(int64(params.Offset))
	}

	findOptions.SetSort(bson.D{{Key: "display_name", Value: 1}})

	filter := bson.M{}
	if params.SuperAdmin != nil {
		filter["is_super_admin"] = *params.SuperAdmin
	}

	cursor, err := r.db.Collection(adminCollection).Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var admins []*model.Admin
	for cursor.Next(ctx) {
		var admin model.Admin
		if err := cursor.Decode(&admin); err != nil {
			return nil, err
		}
		admins = append(admins, &admin)
	}

	if err := cursor.Err(); err != nil {
		return nil, err
	}

	return admins, nil
}

func (r *adminMongoRepository) CountSuperAdmins(ctx context.Context) (int64, error) {
	return r.db.Collection(adminCollection).CountDocuments(ctx, bson.M{"is_super_admin": true})
}
