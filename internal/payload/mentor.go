package payload

import "github.com/wementor/mentor-directory-api/internal/model"

type CreateMentorRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName"  validate:"required"`
	Email     string `json:"email"     validate:"required,email"`
}

type AddMentorCategoriesRequest struct {
	Categories []string `json:"categories" validate:"required,min=1"`
}

type RemoveMentorCategoryRequest struct {
	CategoryID string `json:"categoryId" validate:"required"`
}

type SetMentorAvatarRequest struct {
	URL string `json:"url" validate:"required,url"`
}

type UpdateMentorRequest struct {
	FirstName *string `json:"firstName" validate:"omitempty,min=1"`
	LastName  *string `json:"lastName"  validate:"omitempty,min=1"`
	Email     *string `json:"email"     validate:"omitempty,email"`
}

// MentorResponse is the mentor shape returned by mutation routes.
type MentorResponse struct {
	FirstName  string   `json:"firstName"`
	LastName   string   `json:"lastName"`
	Email      string   `json:"email"`
	Avatar     *string  `json:"avatar"`
	Categories []string `json:"categories"`
}

func NewMentorResponse(mentor *model.Mentor) MentorResponse {
	categories := make([]string, 0, len(mentor.Categories))
	for _, id := range mentor.Categories {
		categories = append(categories, id.Hex())
	}

	return MentorResponse{
		FirstName:  mentor.FirstName,
		LastName:   mentor.LastName,
		Email:      mentor.Email,
		Avatar:     mentor.Avatar,
		Categories: categories,
	}
}
