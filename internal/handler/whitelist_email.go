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

type WhitelistEmailHandler struct {
	whitelistUsecase usecase.WhitelistEmailUsecase
	validator        *validation.Validator
	environment      string
	logger           *zerolog.Logger
}

func NewWhitelistEmailHandler(
	whitelistUsecase usecase.WhitelistEmailUsecase,
	validator *validation.Validator,
	environment string,
	logger *zerolog.Logger,
) *WhitelistEmailHandler {
	return &WhitelistEmailHandler{
		whitelistUsecase: whitelistUsecase,
		validator:        validator,
		environment:      environment,
		logger:           logger,
	}
}

func (h *WhitelistEmailHandler) writeError(w http.ResponseWriter, err error) {
	apierror.Write(w, h.logger, h.environment, err)
}

func (h *WhitelistEmailHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req payload.CreateWhitelistEmailRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, err)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		h.writeError(w, err)
		return
	}

	entry, err := h.whitelistUsecase.CreateWhitelistEmail(r.Context(), req.Email)
	if err != nil {
		h.writeError(w, err)
		return
	}

	respondData(w, http.StatusCreated, entry)
}

func (h *WhitelistEmailHandler) List(w http.ResponseWriter, r *http.Request) {
	page, limit := paginationQuery(r)

	entries, err := h.whitelistUsecase.ListWhitelistEmails(r.Context(), page, limit)
	if err != nil {
		h.writeError(w, err)
		return
	}

	respondData(w, http.StatusOK, entries)
}

func (h *WhitelistEmailHandler) Get(w http.ResponseWriter, r *http.Request) {
	entry, err := h.whitelistUsecase.GetWhitelistEmail(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	respondData(w, http.StatusOK, entry)
}

func (h *WhitelistEmailHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req payload.UpdateWhitelistEmailRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, err)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		h.writeError(w, err)
		return
	}

	entry, err := h.whitelistUsecase.UpdateWhitelistEmail(r.Context(), chi.URLParam(r, "id"), req.Email)
	if err != nil {
		h.writeError(w, err)
		return
	}

	respondData(w, http.StatusOK, entry)
}

func (h *WhitelistEmailHandler) Delete(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.whitelistUsecase.DeleteWhitelistEmail(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	respondDeleted(w, deleted)
}
