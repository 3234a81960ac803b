package payload

type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,min=1,max=255"`
}

type UpdateCategoryRequest struct {
	Name string `json:"name" validate:"required,min=1,max=255"`
}
