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

type AdminHandler struct {
	adminUsecase usecase.AdminUsecase
	validator    *validation.Validator
	environment  string
	logger       *zerolog.Logger
}

func NewAdminHandler(
	adminUsecase usecase.AdminUsecase,
	validator *validation.Validator,
	environment string,
	logger *zerolog.Logger,
) *AdminHandler {
	return &AdminHandler{
		adminUsecase: adminUsecase,
		validator:    validator,
		environment:  environment,
		logger:       logger,
	}
}

func (h *AdminHandler) writeError(w http.ResponseWriter, err error) {
	apierror.Write(w, h.logger, h.environment, err)
}

func (h *AdminHandler) List(w http.ResponseWriter, r *http.Request) {
	page, limit := paginationQuery(r)

	admins, err := h.adminUsecase.ListAdmins(r.Context(), page, limit)
	if err != nil {
		h.writeError(w, err)
		return
	}

	respondData(w, http.StatusOK, admins)
}

func (h *AdminHandler) ListSuperAdmins(w http.ResponseWriter, r *http.Request) {
	page, limit := paginationQuery(r)

	admins, err := h.adminUsecase.ListSuperAdmins(r.Context(), page, limit)
	if err != nil {
		h.writeError(w, err)
		return
	}

	respondData(w, http.StatusOK, admins)
}

func (h *AdminHandler) GetByEmail(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	if err := h.validator.Var(email, "required,email"); err != nil {
		h.writeError(w, err)
		return
	}

	admin, err := h.adminUsecase.GetAdminByEmail(r.Context(), email)
	if err != nil {
		h.writeError(w, err)
		return
	}

	respondData(w, http.StatusOK, payload.NewAdminResponse(admin))
}

func (h *AdminHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	admin, err := h.adminUsecase.GetAdminByID(r.Context(), chi.URLParam(r, "adminId"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	respondData(w, http.StatusOK, payload.NewAdminResponse(admin))
}

func (h *AdminHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req payload.UpdateAdminRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, err)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		h.writeError(w, err)
		return
	}

	admin, err := h.adminUsecase.UpdateAdmin(r.Context(), chi.URLParam(r, "adminId"), usecase.UpdateAdminProfileParams{
		DisplayName: req.DisplayName,
		Avatar:      req.Avatar,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	respondData(w, http.StatusOK, payload.NewAdminResponse(admin))
}

func (h *AdminHandler) SetSuperAdmin(w http.ResponseWriter, r *http.Request) {
	var req payload.SetSuperAdminRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, err)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		h.writeError(w, err)
		return
	}

	message, err := h.adminUsecase.SetSuperAdmin(r.Context(), req.Email)
	if err != nil {
		h.writeError(w, err)
		return
	}

	respondMessage(w, http.StatusOK, message)
}

func (h *AdminHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var req payload.DeleteAdminRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, err)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		h.writeError(w, err)
		return
	}

	deleted, err := h.adminUsecase.DeleteAdmin(r.Context(), req.Email)
	if err != nil {
		h.writeError(w, err)
		return
	}

	respondDeleted(w, deleted)
}
