package components

import (
	"book-catalog/internal/pkg/clock"
	"book-catalog/internal/usecase/commands"
	"book-catalog/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewReservationCommands,
		commands.NewBookCommands,
		commands.NewAuthorCommands,
		commands.NewGenreCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewReservationQueries,
		queries.NewBookQueries,
		queries.NewAuthorQueries,
		queries.NewGenreQueries,
	),
)
