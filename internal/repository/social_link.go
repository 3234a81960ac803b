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

// SocialLinkRepository defines the interface for social-link-related
// database operations.
type SocialLinkRepository interface {
	CreateSocialLink(ctx context.Context, link *model.SocialLink) (*model.SocialLink, error)
	GetSocialLinkByUserID(ctx context.Context, userID string) (*model.SocialLink, error)
	UpdateSocialLinkByUserID(ctx context.Context, userID string, params UpdateSocialLinkParams) (*model.SocialLink, error)
	DeleteSocialLink(ctx context.Context, id bson.ObjectID) (int64, error)
}

// UpdateSocialLinkParams defines the optional parameters for updating a
// social link. Only the fields that are not nil will be updated.
type UpdateSocialLinkParams struct {
	Behance   *string
	Twitter   *string
	Instagram *string
	Website   *string
}

const socialLinkCollection = "social_links"

type socialLinkMongoRepository struct {
	db *mongo.Database
}

func NewSocialLinkMongoRepository(
	ctx context.Context,
	logger *zerolog.Logger,
	db *mongo.Database,
) SocialLinkRepository {
	collection := db.Collection(socialLinkCollection)

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create social link indexes")
	}

	return &socialLinkMongoRepository{db: db}
}

func (r *socialLinkMongoRepository) CreateSocialLink(
	ctx context.Context,
	link *model.SocialLink,
) (*model.SocialLink, error) {
	now := time.Now()
	link.CreatedAt = now
	link.UpdatedAt = now

	result, err := r.db.Collection(socialLinkCollection).InsertOne(ctx, link)
	if err != nil {
		return nil, err
	}

	if objectID, ok := result.InsertedID.(bson.ObjectID); ok {
		link.ID = objectID
	} else {
		return nil, errors.New("failed to convert inserted ID to ObjectID")
	}

	return link, nil
}

func (r *socialLinkMongoRepository) GetSocialLinkByUserID(
	ctx context.Context,
	userID string,
) (*model.SocialLink, error) {
	objectID, err := objectIDFromHex(userID)
	if err != nil {
		return nil, err
	}

	result := r.db.Collection(socialLinkCollection).FindOne(ctx, bson.M{"user_id": objectID})
	if result.Err() != nil {
		return nil, result.Err()
	}

	var link model.SocialLink
	if err := result.Decode(&link); err != nil {
		return nil, err
	}

	return &link, nil
}

func (r *socialLinkMongoRepository) UpdateSocialLinkByUserID(
	ctx context.Context,
	userID string,
	params UpdateSocialLinkParams,
) (*model.SocialLink, error) {
	objectID, err := objectIDFromHex(userID)
	if err != nil {
		return nil, err
	}

	// Build update query
	updateMap := bson.M{}
	if params.Behance != nil {
		updateMap["behance"] = *params.Behance
	}
	if params.Twitter != nil {
		updateMap["twitter"] = *params.Twitter
	}
	if params.Instagram != nil {
		updateMap["instagram"] = *params.Instagram
	}
	if params.Website != nil {
		updateMap["website"] = *params.Website
	}

	if len(updateMap) == 0 {
		return nil, errors.New("no social link fields to update")
	}

	updateMap["updated_at"] = time.Now()

	result := r.db.Collection(socialLinkCollection).FindOneAndUpdate(
		ctx,
		bson.M{"user_id": objectID},
		bson.M{"$set": updateMap},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	if result.Err() != nil {
		return nil, result.Err()
	}

	var link model.SocialLink
	if err := result.Decode(&link); err != nil {
		return nil, err
	}

	return &link, nil
}

func (r *socialLinkMongoRepository) DeleteSocialLink(ctx context.Context, id bson.ObjectID) (int64, error) {
	result, err := r.db.Collection(socialLinkCollection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}

	return result.DeletedCount, nil
}
