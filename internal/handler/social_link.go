package handler

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/wementor/mentor-directory-api/internal/apierror"
	"github.com/wementor/mentor-directory-api/internal/payload"
	"github.com/wementor/mentor-directory-api/internal/usecase"
	"github.com/wementor/mentor-directory-api/internal/validation"
)

type SocialLinkHandler struct {
	socialLinkUsecase usecase.SocialLinkUsecase
	validator         *validation.Validator
	environment       string
	logger            *zerolog.Logger
}

func NewSocialLinkHandler(
	socialLinkUsecase usecase.SocialLinkUsecase,
	validator *validation.Validator,
	environment string,
	logger *zerolog.Logger,
) *SocialLinkHandler {
	return &SocialLinkHandler{
		socialLinkUsecase: socialLinkUsecase,
		validator:         validator,
		environment:       environment,
		logger:            logger,
	}
}

func (h *SocialLinkHandler) writeError(w http.ResponseWriter, err error) {
	apierror.Write(w, h.logger, h.environment, err)
}

func (h *SocialLinkHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req payload.CreateSocialLinkRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, err)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		h.writeError(w, err)
		return
	}

	link, err := h.socialLinkUsecase.CreateSocialLink(r.Context(), usecase.CreateSocialLinkParams{
		UserID:    req.UserID,
		Behance:   req.Behance,
		Twitter:   req.Twitter,
		Instagram: req.Instagram,
		Website:   req.Website,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	respondData(w, http.StatusCreated, payload.NewSocialLinkResponse(link))
}

// Get looks up the social link of the mentor named by the userId query
// parameter.
func (h *SocialLinkHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if err := h.validator.Var(userID, "required"); err != nil {
		h.writeError(w, err)
		return
	}

	link, err := h.socialLinkUsecase.GetSocialLinkByUserID(r.Context(), userID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	respondData(w, http.StatusOK, payload.NewSocialLinkResponse(link))
}

func (h *SocialLinkHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req payload.UpdateSocialLinkRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, err)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		h.writeError(w, err)
		return
	}

	link, err := h.socialLinkUsecase.UpdateSocialLinkByUserID(r.Context(), req.UserID, usecase.UpdateSocialLinkParams{
		Behance:   req.Behance,
		Twitter:   req.Twitter,
		Instagram: req.Instagram,
		Website:   req.Website,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	respondData(w, http.StatusOK, payload.NewSocialLinkResponse(link))
}
