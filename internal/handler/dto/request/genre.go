package request

type CreateGenreRequest struct {
	Title string `json:"title" binding:"required"`
}

type UpdateGenreRequest struct {
	Title string `json:"title" binding:"required"`
}
