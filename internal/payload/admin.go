// Package payload defines the request and response shapes of the HTTP
// surface, with validate tags checked at the boundary.
package payload

import "github.com/wementor/mentor-directory-api/internal/model"

type SetSuperAdminRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type DeleteAdminRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type UpdateAdminRequest struct {
	DisplayName *string `json:"displayName" validate:"omitempty,min=1"`
	Avatar      *string `json:"avatar"      validate:"omitempty,url"`
}

// AdminResponse is the admin detail shape returned by single-admin routes.
type AdminResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Avatar       string `json:"avatar,omitempty"`
	IsSuperAdmin bool   `json:"isSuperAdmin"`
}

func NewAdminResponse(admin *model.Admin) AdminResponse {
	return AdminResponse{
		ID:           admin.ID.Hex(),
		Name:         admin.DisplayName,
		Email:        admin.Email,
		Avatar:       admin.Avatar,
		IsSuperAdmin: admin.IsSuperAdmin,
	}
}
