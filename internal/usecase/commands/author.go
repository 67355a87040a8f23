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
	ErrAuthorNotFound = errs.New("author not found")
	ErrAuthorInUse    = errs.New("author still referenced by books")
)

type AuthorCommands interface {
	Create(ctx context.Context, req reqdto.CreateAuthorRequest) (*queries.AuthorView, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateAuthorRequest) (*queries.AuthorView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type authorCommandsImpl struct {
	dbtx  db.DBTX
	repo  AuthorRepository
	views AuthorViewFinder
}

func NewAuthorCommands(dbtx db.DBTX, repo AuthorRepository, views AuthorViewFinder) AuthorCommands {
	return &authorCommandsImpl{dbtx: dbtx, repo: repo, views: views}
}

func (c *authorCommandsImpl) Create(ctx context.Context, req reqdto.CreateAuthorRequest) (*queries.AuthorView, error) {
	row := AuthorRow{
		ID:        uuid.New(),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Avatar:    req.Avatar,
	}

	id, err := c.repo.Create(ctx, c.dbtx, row)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return c.findView(ctx, id)
}

func (c *authorCommandsImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateAuthorRequest) (*queries.AuthorView, error) {
	row := AuthorRow{
		ID:        id,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Avatar:    req.Avatar,
	}

	if err := c.repo.Update(ctx, c.dbtx, row); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrAuthorNotFound)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return c.findView(ctx, id)
}

func (c *authorCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := c.repo.Delete(ctx, c.dbtx, id); err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return errs.Mark(err, ErrAuthorNotFound)
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			return errs.Mark(err, ErrAuthorInUse)
		default:
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}
	return nil
}

func (c *authorCommandsImpl) findView(ctx context.Context, id uuid.UUID) (*queries.AuthorView, error) {
	view, err := c.views.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}
