package components

import (
	"book-catalog/internal/handler"
	"book-catalog/internal/handler/api"
	"book-catalog/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewReservationHandler,
		api.NewBookHandler,
		api.NewAuthorHandler,
		api.NewGenreHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func newHandlers(
	auth *api.AuthHandler,
	reservation *api.ReservationHandler,
	book *api.BookHandler,
	author *api.AuthorHandler,
	genre *api.GenreHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:        auth,
		Reservation: reservation,
		Book:        book,
		Author:      author,
		Genre:       genre,
	}
}
