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

var ErrBookRelationNotFound = errs.New("referenced author or genre not found")

type BookCommands interface {
	Create(ctx context.Context, req reqdto.CreateBookRequest) (*queries.BookView, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateBookRequest) (*queries.BookView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type bookCommandsImpl struct {
	dbtx  db.DBTX
	repo  BookRepository
	views BookViewFinder
}

func NewBookCommands(dbtx db.DBTX, repo BookRepository, views BookViewFinder) BookCommands {
	return &bookCommandsImpl{dbtx: dbtx, repo: repo, views: views}
}

func (c *bookCommandsImpl) Create(ctx context.Context, req reqdto.CreateBookRequest) (*queries.BookView, error) {
	row := BookRow{
		ID:       uuid.New(),
		Title:    req.Title,
		Price:    req.Price,
		Pages:    req.Pages,
		AuthorID: req.AuthorID,
		GenreID:  req.GenreID,
	}

	id, err := c.repo.Create(ctx, c.dbtx, row)
	if err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, errs.Mark(err, ErrBookRelationNotFound)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return c.findView(ctx, id)
}

func (c *bookCommandsImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateBookRequest) (*queries.BookView, error) {
	row := BookRow{
		ID:       id,
		Title:    req.Title,
		Price:    req.Price,
		Pages:    req.Pages,
		AuthorID: req.AuthorID,
		GenreID:  req.GenreID,
	}

	if err := c.repo.Update(ctx, c.dbtx, row); err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return nil, errs.Mark(err, ErrBookNotFound)
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			return nil, errs.Mark(err, ErrBookRelationNotFound)
		default:
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}

	return c.findView(ctx, id)
}

func (c *bookCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := c.repo.Delete(ctx, c.dbtx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrBookNotFound)
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *bookCommandsImpl) findView(ctx context.Context, id uuid.UUID) (*queries.BookView, error) {
	view, err := c.views.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}
