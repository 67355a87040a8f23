package response

import (
	"book-catalog/internal/usecase/commands"
	"book-catalog/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Avatar    *string   `json:"avatar,omitempty"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

func FromAuthResult(result *commands.AuthResult) (*AuthResponse, error) {
	var resp AuthResponse
	if err := copier.Copy(&resp, result); err != nil {
		return nil, err
	}
	return &resp, nil
}

func FromUserView(rm *queries.AuthorizedUserView) (*UserResponse, error) {
	var resp UserResponse
	if err := copier.Copy(&resp, rm); err != nil {
		return nil, err
	}
	return &resp, nil
}
