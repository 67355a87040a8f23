package response

import (
	"book-catalog/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookResponse struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	Price    int32     `json:"price"`
	Pages    int32     `json:"pages"`
	AuthorID uuid.UUID `json:"author_id"`
	GenreID  uuid.UUID `json:"genre_id"`
}

func FromBookView(rm *queries.BookView) (*BookResponse, error) {
	var resp BookResponse
	if err := copier.Copy(&resp, rm); err != nil {
		return nil, err
	}
	return &resp, nil
}

func FromBookViews(rms []*queries.BookView) ([]*BookResponse, error) {
	result := make([]*BookResponse, len(rms))
	for i, rm := range rms {
		resp, err := FromBookView(rm)
		if err != nil {
			return nil, err
		}
		result[i] = resp
	}
	return result, nil
}
