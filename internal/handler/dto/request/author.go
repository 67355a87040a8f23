package request

type CreateAuthorRequest struct {
	FirstName string  `json:"first_name" binding:"required"`
	LastName  string  `json:"last_name" binding:"required"`
	Avatar    *string `json:"avatar,omitempty"`
}

type UpdateAuthorRequest struct {
	FirstName string  `json:"first_name" binding:"required"`
	LastName  string  `json:"last_name" binding:"required"`
	Avatar    *string `json:"avatar,omitempty"`
}
