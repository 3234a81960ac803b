package usecase

import (
	"context"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/wementor/mentor-directory-api/internal/apierror"
	"github.com/wementor/mentor-directory-api/internal/model"
	"github.com/wementor/mentor-directory-api/internal/repository"
	"github.com/wementor/mentor-directory-api/internal/storage"
)

// FileUsecase defines the upload operations against the external blob store.
type FileUsecase interface {
	UploadFile(ctx context.Context, data []byte) (*model.File, error)
	DeleteFile(ctx context.Context, publicID string) (int64, error)
	ListFiles(ctx context.Context, page, limit int) ([]*model.File, error)
}

var allowedMimeTypes = []string{"image/jpeg", "image/jpg", "image/png", "application/pdf"}

type fileUsecase struct {
	fileRepo repository.FileRepository
	blobs    storage.BlobStore
	logger   *zerolog.Logger
}

func NewFileUsecase(
	fileRepo repository.FileRepository,
	blobs storage.BlobStore,
	logger *zerolog.Logger,
) FileUsecase {
	return &fileUsecase{
		fileRepo: fileRepo,
		blobs:    blobs,
		logger:   logger,
	}
}

// UploadFile sniffs the content type, uploads to the blob store, then
// persists the file record. The record is only written after the remote
// upload succeeds; if the record write fails the remote object is removed.
func (u *fileUsecase) UploadFile(ctx context.Context, data []byte) (*model.File, error) {
	detected := mimetype.Detect(data)

	allowed := false
	for _, mime := range allowedMimeTypes {
		if detected.Is(mime) {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, apierror.BadRequest("invalid file type")
	}

	key := uuid.NewString() + detected.Extension()

	url, err := u.blobs.Upload(ctx, key, data, detected.String())
	if err != nil {
		u.logger.Error().Err(err).Msg("blob store upload failed")
		return nil, apierror.Internal("an error occurred while uploading the file")
	}

	file, err := u.fileRepo.CreateFile(ctx, &model.File{
		PublicID: key,
		URL:      url,
		MimeType: detected.String(),
	})
	if err != nil {
		if deleteErr := u.blobs.Delete(ctx, key); deleteErr != nil {
			u.logger.Error().Err(deleteErr).Str("public_id", key).
				Msg("failed to roll back blob after record write failure")
		}
		return nil, err
	}

	return file, nil
}

// DeleteFile deletes the remote object first, then the local record. The
// local delete runs regardless of whether the remote object existed.
func (u *fileUsecase) DeleteFile(ctx context.Context, publicID string) (int64, error) {
	if err := u.blobs.Delete(ctx, publicID); err != nil {
		u.logger.Error().Err(err).Str("public_id", publicID).Msg("blob store delete failed")
		return 0, apierror.Internal("an error occurred while deleting the file")
	}

	return u.fileRepo.DeleteFileByPublicID(ctx, publicID)
}

func (u *fileUsecase) ListFiles(ctx context.Context, page, limit int) ([]*model.File, error) {
	limitVal, offset := pagination(page, limit)

	files, err := u.fileRepo.ListFiles(ctx, limitVal, offset)
	if err != nil {
		return nil, err
	}

	if len(files) == 0 {
		return nil, apierror.NotFound("no files found")
	}

	return files, nil
}
