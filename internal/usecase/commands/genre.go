package commands

import (
	"context"

	reqdto "book-catalog/internal/handler/dto/request"
	"book-catalog/internal/infra"
	"book-catalog/internal/infra/db"
	"book-catalog/internal/pkg/errs"
	"book-catalog/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrGenreNotFound     = errs.New("genre not found")
	ErrGenreInUse        = errs.New("genre still referenced by books")
	ErrGenreAlreadyExist = errs.New("genre title already exists")
)

type GenreCommands interface {
	Create(ctx context.Context, req reqdto.CreateGenreRequest) (*queries.GenreView, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateGenreRequest) (*queries.GenreView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type genreCommandsImpl struct {
	dbtx  db.DBTX
	repo  GenreRepository
	views GenreViewFinder
}

func NewGenreCommands(dbtx db.DBTX, repo GenreRepository, views GenreViewFinder) GenreCommands {
	return &genreCommandsImpl{dbtx: dbtx, repo: repo, views: views}
}

func (c *genreCommandsImpl) Create(ctx context.Context, req reqdto.CreateGenreRequest) (*queries.GenreView, error) {
	row := GenreRow{ID: uuid.New(), Title: req.Title}

	id, err := c.repo.Create(ctx, c.dbtx, row)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, ErrGenreAlreadyExist)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return c.findView(ctx, id)
}

func (c *genreCommandsImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateGenreRequest) (*queries.GenreView, error) {
	row := GenreRow{ID: id, Title: req.Title}

	if err := c.repo.Update(ctx, c.dbtx, row); err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return nil, errs.Mark(err, ErrGenreNotFound)
		case infra.IsKind(err, infra.KindDuplicateKey):
			return nil, errs.Mark(err, ErrGenreAlreadyExist)
		default:
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}

	return c.findView(ctx, id)
}

func (c *genreCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := c.repo.Delete(ctx, c.dbtx, id); err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return errs.Mark(err, ErrGenreNotFound)
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			return errs.Mark(err, ErrGenreInUse)
		default:
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}
	return nil
}

func (c *genreCommandsImpl) findView(ctx context.Context, id uuid.UUID) (*queries.GenreView, error) {
	view, err := c.views.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}
