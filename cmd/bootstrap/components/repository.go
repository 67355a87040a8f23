package components

import (
	"book-catalog/internal/infra/readstore"
	"book-catalog/internal/infra/writerepo"
	"book-catalog/internal/usecase/commands"
	"book-catalog/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	writeRepoModule,
	readStoreModule,
)

var writeRepoModule = fx.Module("repository/write",
	fx.Provide(
		fx.Annotate(
			writerepo.NewReservationRepository,
			fx.As(new(commands.ReservationRepository)),
		),
		fx.Annotate(
			writerepo.NewBookRepository,
			fx.As(new(commands.BookRepository)),
		),
		fx.Annotate(
			writerepo.NewAuthorRepository,
			fx.As(new(commands.AuthorRepository)),
		),
		fx.Annotate(
			writerepo.NewGenreRepository,
			fx.As(new(commands.GenreRepository)),
		),
		fx.Annotate(
			writerepo.NewUserRepository,
			fx.As(new(commands.UserRepository)),
		),
	),
)

var readStoreModule = fx.Module("repository/read",
	fx.Provide(
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
			fx.As(new(commands.ReservationViewFinder)),
		),
		fx.Annotate(
			readstore.NewBookReadStore,
			fx.As(new(queries.BookReadStore)),
			fx.As(new(commands.BookViewFinder)),
		),
		fx.Annotate(
			readstore.NewAuthorReadStore,
			fx.As(new(queries.AuthorReadStore)),
			fx.As(new(commands.AuthorViewFinder)),
		),
		fx.Annotate(
			readstore.NewGenreReadStore,
			fx.As(new(queries.GenreReadStore)),
			fx.As(new(commands.GenreViewFinder)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
			fx.As(new(commands.UserViewFinder)),
		),
	),
)
