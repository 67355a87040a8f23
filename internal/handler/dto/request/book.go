package request

import "github.com/google/uuid"

type CreateBookRequest struct {
	Title    string    `json:"title" binding:"required"`
	Price    int32     `json:"price" binding:"required,gte=0"`
	Pages    int32     `json:"pages" binding:"required,gt=0"`
	AuthorID uuid.UUID `json:"author_id" binding:"required"`
	GenreID  uuid.UUID `json:"genre_id" binding:"required"`
}

type UpdateBookRequest struct {
	Title    string    `json:"title" binding:"required"`
	Price    int32     `json:"price" binding:"required,gte=0"`
	Pages    int32     `json:"pages" binding:"required,gt=0"`
	AuthorID uuid.UUID `json:"author_id" binding:"required"`
	GenreID  uuid.UUID `json:"genre_id" binding:"required"`
}
