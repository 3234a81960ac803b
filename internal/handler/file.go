package handler

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/wementor/mentor-directory-api/internal/apierror"
	"github.com/wementor/mentor-directory-api/internal/usecase"
)

// maxUploadBytes caps the multipart body read into memory per upload.
const maxUploadBytes = 10 << 20

type FileHandler struct {
	fileUsecase usecase.FileUsecase
	environment string
	logger      *zerolog.Logger
}

func NewFileHandler(
	fileUsecase usecase.FileUsecase,
	environment string,
	logger *zerolog.Logger,
) *FileHandler {
	return &FileHandler{
		fileUsecase: fileUsecase,
		environment: environment,
		logger:      logger,
	}
}

func (h *FileHandler) writeError(w http.ResponseWriter, err error) {
	apierror.Write(w, h.logger, h.environment, err)
}

// Upload accepts a multipart form with a single "file" field and stores
// it in the object store.
func (h *FileHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	file, _, err := r.FormFile("file")
	if err != nil {
		h.writeError(w, apierror.BadRequest("no file provided"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.writeError(w, apierror.BadRequest("unable to read uploaded file"))
		return
	}

	record, err := h.fileUsecase.UploadFile(r.Context(), data)
	if err != nil {
		h.writeError(w, err)
		return
	}

	respondData(w, http.StatusCreated, record)
}

func (h *FileHandler) List(w http.ResponseWriter, r *http.Request) {
	page, limit := paginationQuery(r)

	files, err := h.fileUsecase.ListFiles(r.Context(), page, limit)
	if err != nil {
		h.writeError(w, err)
		return
	}

	respondData(w, http.StatusOK, files)
}

func (h *FileHandler) Delete(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.fileUsecase.DeleteFile(r.Context(), chi.URLParam(r, "publicId"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	respondDeleted(w, deleted)
}
