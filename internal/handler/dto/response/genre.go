package response

import (
	"book-catalog/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type GenreResponse struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
}

func FromGenreView(rm *queries.GenreView) (*GenreResponse, error) {
	var resp GenreResponse
	if err := copier.Copy(&resp, rm); err != nil {
		return nil, err
	}
	return &resp, nil
}

func FromGenreViews(rms []*queries.GenreView) ([]*GenreResponse, error) {
	result := make([]*GenreResponse, len(rms))
	for i, rm := range rms {
		resp, err := FromGenreView(rm)
		if err != nil {
			return nil, err
		}
		result[i] = resp
	}
	return result, nil
}
