package payload

type CreateWhitelistEmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type UpdateWhitelistEmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}
