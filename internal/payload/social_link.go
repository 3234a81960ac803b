package payload

import "github.com/wementor/mentor-directory-api/internal/model"

type CreateSocialLinkRequest struct {
	UserID    string  `json:"userId"    validate:"required"`
	Behance   *string `json:"behance"   validate:"omitempty,url"`
	Twitter   *string `json:"twitter"   validate:"omitempty,url"`
	Instagram *string `json:"instagram" validate:"omitempty,url"`
	Website   *string `json:"website"   validate:"omitempty,url"`
}

type UpdateSocialLinkRequest struct {
	UserID    string  `json:"userId"    validate:"required"`
	Behance   *string `json:"behance"   validate:"omitempty,url"`
	Twitter   *string `json:"twitter"   validate:"omitempty,url"`
	Instagram *string `json:"instagram" validate:"omitempty,url"`
	Website   *string `json:"website"   validate:"omitempty,url"`
}

// SocialLinkResponse is the social link shape returned to callers.
type SocialLinkResponse struct {
	Behance   *string `json:"behance,omitempty"`
	Twitter   *string `json:"twitter,omitempty"`
	Instagram *string `json:"instagram,omitempty"`
	Website   *string `json:"website,omitempty"`
}

func NewSocialLinkResponse(link *model.SocialLink) SocialLinkResponse {
	return SocialLinkResponse{
		Behance:   link.Behance,
		Twitter:   link.Twitter,
		Instagram: link.Instagram,
		Website:   link.Website,
	}
}
