package response

import (
	"book-catalog/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type AuthorResponse struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Avatar    *string   `json:"avatar,omitempty"`
}

func FromAuthorView(rm *queries.AuthorView) (*AuthorResponse, error) {
	var resp AuthorResponse
	if err := copier.Copy(&resp, rm); err != nil {
		return nil, err
	}
	return &resp, nil
}

func FromAuthorViews(rms []*queries.AuthorView) ([]*AuthorResponse, error) {
	result := make([]*AuthorResponse, len(rms))
	for i, rm := range rms {
		resp, err := FromAuthorView(rm)
		if err != nil {
			return nil, err
		}
		result[i] = resp
	}
	return result, nil
}
