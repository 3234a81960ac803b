package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/wementor/mentor-directory-api/internal/model"
)

// FileRepository defines the interface for file-record database operations.
type FileRepository interface {
	CreateFile(ctx context.Context, file *model.File) (*model.File, error)
	DeleteFileByPublicID(ctx context.Context, publicID string) (int64, error)
	ListFiles(ctx context.Context, limit, offset uint64) ([]*model.File, error)
}

const fileCollection = "files"

type fileMongoRepository struct {
	db *mongo.Database
}

func NewFileMongoRepository(db *mongo.Database) FileRepository {
	return &fileMongoRepository{db: db}
}

func (r *fileMongoRepository) CreateFile(ctx context.Context, file *model.File) (*model.File, error) {
	now := time.Now()
	file.CreatedAt = now
	file.UpdatedAt = now

	result, err := r.db.Collection(fileCollection).InsertOne(ctx, file)
	if err != nil {
		return nil, err
	}

	if objectID, ok := result.InsertedID.(bson.ObjectID); ok {
		file.ID = objectID
	} else {
		return nil, errors.New("failed to convert inserted ID to ObjectID")
	}

	return file, nil
}

func (r *fileMongoRepository) DeleteFileByPublicID(ctx context.Context, publicID string) (int64, error) {
	result, err := r.db.Collection(fileCollection).DeleteOne(ctx, bson.M{"public_id": publicID})
	if err != nil {
		return 0, err
	}

	return result.DeletedCount, nil
}

func (r *fileMongoRepository) ListFiles(ctx context.Context, limit, offset uint64) ([]*model.File, error) {
	findOptions := options.Find()

	if limit == 0 {
		limit = 10
	}
	findOptions.SetLimit(int64(limit))

	if offset > 0 {
		findOptions.SetSkip(int64(offset))
	}

	findOptions.SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.db.Collection(fileCollection).Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var files []*model.File
	for cursor.Next(ctx) {
		var file model.File
		if err := cursor.Decode(&file); err != nil {
			return nil, err
		}
		files = append(files, &file)
	}

	if err := cursor.Err(); err != nil {
		return nil, err
	}

	return files, nil
}
