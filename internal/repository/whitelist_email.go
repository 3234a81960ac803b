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

// WhitelistEmailRepository defines the interface for whitelist-email-related
// database operations.
type WhitelistEmailRepository interface {
	CreateWhitelistEmail(ctx context.Context, entry *model.WhitelistEmail) (*model.WhitelistEmail, error)
	GetWhitelistEmail(ctx context.Context, id string) (*model.WhitelistEmail, error)
	GetWhitelistEmailByEmail(ctx context.Context, email string) (*model.WhitelistEmail, error)
	UpdateWhitelistEmail(ctx context.Context, id string, email string) (*model.WhitelistEmail, error)
	DeleteWhitelistEmail(ctx context.Context, id string) (int64, error)
	DeleteWhitelistEmailByEmail(ctx context.Context, email string) (int64, error)
	ListWhitelistEmails(ctx context.Context, limit, offset uint64) ([]*model.WhitelistEmail, error)
}

const whitelistEmailCollection = "whitelist_emails"

type whitelistEmailMongoRepository struct {
	db *mongo.Database
}

func NewWhitelistEmailMongoRepository(
	ctx context.Context,
	logger *zerolog.Logger,
	db *mongo.Database,
) WhitelistEmailRepository {
	collection := db.Collection(whitelistEmailCollection)

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create whitelist email indexes")
	}

	return &whitelistEmailMongoRepository{db: db}
}

func (r *whitelistEmailMongoRepository) CreateWhitelistEmail(
	ctx context.Context,
	entry *model.WhitelistEmail,
) (*model.WhitelistEmail, error) {
	now := time.Now()
	entry.CreatedAt = now
	entry.UpdatedAt = now

	result, err := r.db.Collection(whitelistEmailCollection).InsertOne(ctx, entry)
	if err != nil {
		return nil, err
	}

	if objectID, ok := result.InsertedID.(bson.ObjectID); ok {
		entry.ID = objectID
	} else {
		return nil, errors.New("failed to convert inserted ID to ObjectID")
	}

	return entry, nil
}

func (r *whitelistEmailMongoRepository) GetWhitelistEmail(
	ctx context.Context,
	id string,
) (*model.WhitelistEmail, error) {
	objectID, err := objectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	result := r.db.Collection(whitelistEmailCollection).FindOne(ctx, bson.M{"_id": objectID})
	if result.Err() != nil {
		return nil, result.Err()
	}

	var entry model.WhitelistEmail
	if err := result.Decode(&entry); err != nil {
		return nil, err
	}

	return &entry, nil
}

func (r *whitelistEmailMongoRepository) GetWhitelistEmailByEmail(
	ctx context.Context,
	email string,
) (*model.WhitelistEmail, error) {
	result := r.db.Collection(whitelistEmailCollection).FindOne(ctx, bson.M{"email": email})
	if result.Err() != nil {
		return nil, result.Err()
	}

	var entry model.WhitelistEmail
	if err := result.Decode(&entry); err != nil {
		return nil, err
	}

	return &entry, nil
}

func (r *whitelistEmailMongoRepository) UpdateWhitelistEmail(
	ctx context.Context,
	id string,
	email string,
) (*model.WhitelistEmail, error) {
	objectID, err := objectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	result := r.db.Collection(whitelistEmailCollection).FindOneAndUpdate(
		ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": bson.M{"email": email, "updated_at": time.Now()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	if result.Err() != nil {
		return nil, result.Err()
	}

	var entry model.WhitelistEmail
	if err := result.Decode(&entry); err != nil {
		return nil, err
	}

	return &entry, nil
}

func (r *whitelistEmailMongoRepository) DeleteWhitelistEmail(ctx context.Context, id string) (int64, error) {
	objectID, err := objectIDFromHex(id)
	if err != nil {
		return 0, err
	}

	result, err := r.db.Collection(whitelistEmailCollection).DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return 0, err
	}

	return result.DeletedCount, nil
}

func (r *whitelistEmailMongoRepository) DeleteWhitelistEmailByEmail(
	ctx context.Context,
	email string,
) (int64, error) {
	result, err := r.db.Collection(whitelistEmailCollection).DeleteOne(ctx, bson.M{"email": email})
	if err != nil {
		return 0, err
	}

	return result.DeletedCount, nil
}

func (r *whitelistEmailMongoRepository) ListWhitelistEmails(
	ctx context.Context,
	limit, offset uint64,
) ([]*model.WhitelistEmail, error) {
	findOptions := options.Find()

	if limit == 0 {
		limit = 10
	}
	findOptions.SetLimit(int64(limit))

	if offset > 0 {
		findOptions.SetSkip(int64(offset))
	}

	findOptions.SetSort(bson.D{{Key: "email", Value: 1}})

	cursor, err := r.db.Collection(whitelistEmailCollection).Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entries []*model.WhitelistEmail
	for cursor.Next(ctx) {
		var entry model.WhitelistEmail
		if err := cursor.Decode(&entry); err != nil {
			return nil, err
		}
		entries = append(entries, &entry)
	}

	if err := cursor.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
