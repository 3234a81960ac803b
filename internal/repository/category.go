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

// CategoryRepository defines the interface for category-related database
// operations.
type CategoryRepository interface {
	CreateCategory(ctx context.Context, category *model.Category) (*model.Category, error)
	GetCategory(ctx context.Context, id string) (*model.Category, error)
	GetCategoriesByIDs(ctx context.Context, ids []bson.ObjectID) ([]*model.Category, error)
	UpdateCategory(ctx context.Context, id string, name string) (*model.Category, error)
	DeleteCategoryByName(ctx context.Context, name string) (int64, error)
	ListCategories(ctx context.Context, limit, offset uint64) ([]*model.Category, error)
}

const categoryCollection = "categories"

type categoryMongoRepository struct {
	db *mongo.Database
}

func NewCategoryMongoRepository(ctx context.Context, logger *zerolog.Logger, db *mongo.Database) CategoryRepository {
	collection := db.Collection(categoryCollection)

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, err := collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create category indexes")
	}

	return &categoryMongoRepository{db: db}
}

func (r *categoryMongoRepository) CreateCategory(
	ctx context.Context,
	category *model.Category,
) (*model.Category, error) {
	now := time.Now()
	category.CreatedAt = now
	category.UpdatedAt = now

	result, err := r.db.Collection(categoryCollection).InsertOne(ctx, category)
	if err != nil {
		return nil, err
	}

	if objectID, ok := result.InsertedID.(bson.ObjectID); ok {
		category.ID = objectID
	} else {
		return nil, errors.New("failed to convert inserted ID to ObjectID")
	}

	return category, nil
}

func (r *categoryMongoRepository) GetCategory(ctx context.Context, id string) (*model.Category, error) {
	objectID, err := objectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	result := r.db.Collection(categoryCollection).FindOne(ctx, bson.M{"_id": objectID})
	if result.Err() != nil {
		return nil, result.Err()
	}

	var category model.Category
	if err := result.Decode(&category); err != nil {
		return nil, err
	}

	return &category, nil
}

func (r *categoryMongoRepository) GetCategoriesByIDs(
	ctx context.Context,
	ids []bson.ObjectID,
) ([]*model.Category, error) {
	cursor, err := r.db.Collection(categoryCollection).Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var categories []*model.Category
	for cursor.Next(ctx) {
		var category model.Category
		if err := cursor.Decode(&category); err != nil {
			return nil, err
		}
		categories = append(categories, &category)
	}

	if err := cursor.Err(); err != nil {
		return nil, err
	}

	return categories, nil
}

func (r *categoryMongoRepository) UpdateCategory(
	ctx context.Context,
	id string,
	name string,
) (*model.Category, error) {
	objectID, err := objectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	result := r.db.Collection(categoryCollection).FindOneAndUpdate(
		ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": bson.M{"name": name, "updated_at": time.Now()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	if result.Err() != nil {
		return nil, result.Err()
	}

	var category model.Category
	if err := result.Decode(&category); err != nil {
		return nil, err
	}

	return &category, nil
}

func (r *categoryMongoRepository) DeleteCategoryByName(ctx context.Context, name string) (int64, error) {
	result, err := r.db.Collection(categoryCollection).DeleteOne(ctx, bson.M{"name": name})
	if err != nil {
		return 0, err
	}

	return result.DeletedCount, nil
}

func (r *categoryMongoRepository) ListCategories(
	ctx context.Context,
	limit, offset uint64,
) ([]*model.Category, error) {
	findOptions := options.Find()

	if limit == 0 {
		limit = 10
	}
	findOptions.SetLimit(int64(limit))

	if offset > 0 {
		findOptions.SetSkip(int64(offset))
	}

	findOptions.SetSort(bson.D{{Key: "name", Value: 1}})

	cursor, err := r.db.Collection(categoryCollection).Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var categories []*model.Category
	for cursor.Next(ctx) {
		var category model.Category
		if err := cursor.Decode(&category); err != nil {
			return nil, err
		}
		categories = append(categories, &category)
	}

	if err := cursor.Err(); err != nil {
		return nil, err
	}

	return categories, nil
}
