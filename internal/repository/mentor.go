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

// MentorRepository defines the interface for mentor-related database
// operations.
type MentorRepository interface {
	CreateMentor(ctx context.Context, mentor *model.Mentor) (*model.Mentor, error)
	GetMentor(ctx context.Context, id string) (*model.Mentor, error)
	UpdateMentor(ctx context.Context, id string, params UpdateMentorParams) (*model.Mentor, error)
	DeleteMentor(ctx context.Context, id string) (int64, error)
	ListMentors(ctx context.Context, limit, offset uint64) ([]*model.Mentor, error)
	SearchMentors(ctx context.Context, params SearchMentorsParams) ([]*model.Mentor, error)
}

// UpdateMentorParams defines the optional parameters for updating a mentor.
// Only the fields that are not nil will be updated.
type UpdateMentorParams struct {
	FirstName  *string
	LastName   *string
	Email      *string
	Avatar     *string
	Categories *[]bson.ObjectID
	SocialLink *bson.ObjectID
}

// SearchMentorsParams defines the mentor search filter. Name filters are
// case-insensitive substring matches; category ids are matched with $in.
// All provided filters AND together.
type SearchMentorsParams struct {
	FirstName   *string
	LastName    *string
	CategoryIDs []bson.ObjectID
}

const mentorCollection = "mentors"

type mentorMongoRepository struct {
	db *mongo.Database
}

func NewMentorMongoRepository(ctx context.Context, logger *zerolog.Logger, db *mongo.Database) MentorRepository {
	collection := db.Collection(mentorCollection)

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "first_name", Value: 1}},
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create mentor indexes")
	}

	return &mentorMongoRepository{db: db}
}

func (r *mentorMongoRepository) CreateMentor(ctx context.Context, mentor *model.Mentor) (*model.Mentor, error) {
	now := time.Now()
	mentor.CreatedAt = now
	mentor.UpdatedAt = now

	if mentor.Categories == nil {
		mentor.Categories = []bson.ObjectID{}
	}

	result, err := r.db.Collection(mentorCollection).InsertOne(ctx, mentor)
	if err != nil {
		return nil, err
	}

	if objectID, ok := result.InsertedID.(bson.ObjectID); ok {
		mentor.ID = objectID
	} else {
		return nil, errors.New("failed to convert inserted ID to ObjectID")
	}

	return mentor, nil
}

func (r *mentorMongoRepository) GetMentor(ctx context.Context, id string) (*model.Mentor, error) {
	objectID, err := objectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	result := r.db.Collection(mentorCollection).FindOne(ctx, bson.M{"_id": objectID})
	if result.Err() != nil {
		return nil, result.Err()
	}

	var mentor model.Mentor
	if err := result.Decode(&mentor); err != nil {
		return nil, err
	}

	return &mentor, nil
}

func (r *mentorMongoRepository) UpdateMentor(
	ctx context.Context,
	id string,
	params UpdateMentorParams,
) (*model.Mentor, error) {
	objectID, err := objectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	// Build update query
	updateMap := bson.M{}
	if params.FirstName != nil {
		updateMap["first_name"] = *params.FirstName
	}
	if params.LastName != nil {
		updateMap["last_name"] = *params.LastName
	}
	if params.Email != nil {
		updateMap["email"] = *params.Email
	}
	if params.Avatar != nil {
		updateMap["avatar"] = *params.Avatar
	}
	if params.Categories != nil {
		updateMap["categories"] = *params.Categories
	}
	if params.SocialLink != nil {
		updateMap["social_links"] = *params.SocialLink
	}

	if len(updateMap) == 0 {
		return nil, errors.New("no mentor fields to update")
	}

	updateMap["updated_at"] = time.Now()

	result := r.db.Collection(mentorCollection).FindOneAndUpdate(
		ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": updateMap},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	if result.Err() != nil {
		return nil, result.Err()
	}

	var mentor model.Mentor
	if err := result.Decode(&mentor); err != nil {
		return nil, err
	}

	return &mentor, nil
}

func (r *mentorMongoRepository) DeleteMentor(ctx context.Context, id string) (int64, error) {
	objectID, err := objectIDFromHex(id)
	if err != nil {
		return 0, err
	}

	result, err := r.db.Collection(mentorCollection).DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return 0, err
	}

	return result.DeletedCount, nil
}

func (r *mentorMongoRepository) ListMentors(
	ctx context.Context,
	limit, offset uint64,
) ([]*model.Mentor, error) {
	findOptions := options.Find()

	if limit == 0 {
		limit = 10
	}
	findOptions.SetLimit(int64(limit))

	if offset > 0 {
		findOptions.SetSkip(int64(offset))
	}

	findOptions.SetSort(bson.D{{Key: "first_name", Value: 1}})

	cursor, err := r.db.Collection(mentorCollection).Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var mentors []*model.Mentor
	for cursor.Next(ctx) {
		var mentor model.Mentor
		if err := cursor.Decode(&mentor); err != nil {
			return nil, err
		}
		mentors = append(mentors, &mentor)
	}

	if err := cursor.Err(); err != nil {
		return nil, err
	}

	return mentors, nil
}

func (r *mentorMongoRepository) SearchMentors(
	ctx context.Context,
	params SearchMentorsParams,
) ([]*model.Mentor, error) {
	filter := bson.M{}
	if params.FirstName != nil {
		filter["first_name"] = bson.M{"$regex": *params.FirstName, "$options": "i"}
	}
	if params.LastName != nil {
		filter["last_name"] = bson.M{"$regex": *params.LastName, "$options": "i"}
	}
	if len(params.CategoryIDs) > 0 {
		filter["categories"] = bson.M{"$in": params.CategoryIDs}
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "first_name", Value: 1}})

	cursor, err := r.db.Collection(mentorCollection).Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var mentors []*model.Mentor
	for cursor.Next(ctx) {
		var mentor model.Mentor
		if err := cursor.Decode(&mentor); err != nil {
			return nil, err
		}
		mentors = append(mentors, &mentor)
	}

	if err := cursor.Err(); err != nil {
		return nil, err
	}

	return mentors, nil
}
