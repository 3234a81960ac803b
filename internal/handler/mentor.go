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

type MentorHandler struct {
	mentorUsecase usecase.MentorUsecase
	validator     *validation.Validator
	environment   string
	logger        *zerolog.Logger
}

func NewMentorHandler(
	mentorUsecase usecase.MentorUsecase,
	validator *validation.Validator,
	environment string,
	logger *zerolog.Logger,
) *MentorHandler {
	return &MentorHandler{
		mentorUsecase: mentorUsecase,
		validator:     validator,
		environment:   environment,
		logger:        logger,
	}
}

func (h *MentorHandler) writeError(w http.ResponseWriter, err error) {
	apierror.Write(w, h.logger, h.environment, err)
}

func (h *MentorHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req payload.CreateMentorRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, err)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		h.writeError(w, err)
		return
	}

	mentor, err := h.mentorUsecase.CreateMentor(r.Context(), usecase.CreateMentorParams{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	respondData(w, http.StatusCreated, payload.NewMentorResponse(mentor))
}

func (h *MentorHandler) List(w http.ResponseWriter, r *http.Request) {
	page, limit := paginationQuery(r)

	mentors, err := h.mentorUsecase.ListMentors(r.Context(), page, limit)
	if err != nil {
		h.writeError(w, err)
		return
	}

	respondData(w, http.StatusOK, mentors)
}

// Search filters mentors by case-insensitive name fragments and category
// membership. The categories parameter may repeat.
func (h *MentorHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var params usecase.SearchMentorsParams
	if firstName := query.Get("firstName"); firstName != "" {
		params.FirstName = &firstName
	}
	if lastName := query.Get("lastName"); lastName != "" {
		params.LastName = &lastName
	}
	params.CategoryIDs = query["categories"]

	mentors, err := h.mentorUsecase.SearchMentors(r.Context(), params)
	if err != nil {
		h.writeError(w, err)
		return
	}

	respondData(w, http.StatusOK, mentors)
}

func (h *MentorHandler) Get(w http.ResponseWriter, r *http.Request) {
	mentor, err := h.mentorUsecase.GetMentorByID(r.Context(), chi.URLParam(r, "mentorId"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	respondData(w, http.StatusOK, mentor)
}

func (h *MentorHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req payload.UpdateMentorRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, err)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		h.writeError(w, err)
		return
	}

	mentor, err := h.mentorUsecase.UpdateMentor(r.Context(), chi.URLParam(r, "mentorId"), usecase.UpdateMentorParams{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	respondData(w, http.StatusOK, payload.NewMentorResponse(mentor))
}

func (h *MentorHandler) Delete(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.mentorUsecase.DeleteMentor(r.Context(), chi.URLParam(r, "mentorId"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	respondDeleted(w, deleted)
}

func (h *MentorHandler) AddCategories(w http.ResponseWriter, r *http.Request) {
	var req payload.AddMentorCategoriesRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, err)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		h.writeError(w, err)
		return
	}

	mentor, err := h.mentorUsecase.AddMentorCategories(r.Context(), chi.URLParam(r, "mentorId"), req.Categories)
	if err != nil {
		h.writeError(w, err)
		return
	}

	respondData(w, http.StatusOK, payload.NewMentorResponse(mentor))
}

func (h *MentorHandler) RemoveCategory(w http.ResponseWriter, r *http.Request) {
	var req payload.RemoveMentorCategoryRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, err)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		h.writeError(w, err)
		return
	}

	mentor, err := h.mentorUsecase.RemoveMentorCategory(r.Context(), chi.URLParam(r, "mentorId"), req.CategoryID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	respondData(w, http.StatusOK, payload.NewMentorResponse(mentor))
}

func (h *MentorHandler) SetAvatar(w http.ResponseWriter, r *http.Request) {
	var req payload.SetMentorAvatarRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, err)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		h.writeError(w, err)
		return
	}

	mentor, err := h.mentorUsecase.SetMentorAvatar(r.Context(), chi.URLParam(r, "mentorId"), req.URL)
	if err != nil {
		h.writeError(w, err)
		return
	}

	respondData(w, http.StatusOK, payload.NewMentorResponse(mentor))
}
