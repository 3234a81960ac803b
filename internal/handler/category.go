package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/wementor/mentor-directory-api/internal/apierror"
	"github.com/wementor/mentor-directory-api/internal/payload"
	"github.com/wementor/mentor-directory-api/internal/usecase"
	"github.com/wementor/mentor-directory-api/internal/validation"
)

type CategoryHandler struct {
	categoryUsecase usecase.CategoryUsecase
	validator       *validation.Validator
	environment     string
	logger          *zerolog.Logger
}

func NewCategoryHandler(
	categoryUsecase usecase.CategoryUsecase,
	validator *validation.Validator,
	environment string,
	logger *zerolog.Logger,
) *CategoryHandler {
	return &CategoryHandler{
		categoryUsecase: categoryUsecase,
		validator:       validator,
		environment:     environment,
		logger:          logger,
	}
}

func (h *CategoryHandler) writeError(w http.ResponseWriter, err error) {
	apierror.Write(w, h.logger, h.environment, err)
}

func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req payload.CreateCategoryRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, err)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		h.writeError(w, err)
		return
	}

	category, err := h.categoryUsecase.CreateCategory(r.Context(), req.Name)
	if err != nil {
		h.writeError(w, err)
		return
	}

	respondData(w, http.StatusCreated, category)
}

func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	page, limit := paginationQuery(r)

	categories, err := h.categoryUsecase.ListCategories(r.Context(), page, limit)
	if err != nil {
		h.writeError(w, err)
		return
	}

	respondData(w, http.StatusOK, categories)
}

func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	category, err := h.categoryUsecase.GetCategoryByID(r.Context(), chi.URLParam(r, "categoryId"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	respondData(w, http.StatusOK, category)
}

func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req payload.UpdateCategoryRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, err)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		h.writeError(w, err)
		return
	}

	category, err := h.categoryUsecase.UpdateCategory(r.Context(), chi.URLParam(r, "categoryId"), req.Name)
	if err != nil {
		h.writeError(w, err)
		return
	}

	respondData(w, http.StatusOK, category)
}

func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.categoryUsecase.DeleteCategory(r.Context(), chi.URLParam(r, "categoryId"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	respondDeleted(w, deleted)
}
