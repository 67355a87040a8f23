package queries

import (
	"context"

	"book-catalog/internal/infra"
	"book-catalog/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrAuthorNotFound = errs.New("author not found")

type AuthorQueries interface {
	Get(ctx context.Context, id uuid.UUID) (*AuthorView, error)
	List(ctx context.Context, page uint) ([]*AuthorView, error)
}

type authorQueriesImpl struct {
	store AuthorReadStore
}

func NewAuthorQueries(store AuthorReadStore) AuthorQueries {
	return &authorQueriesImpl{store: store}
}

func (q *authorQueriesImpl) Get(ctx context.Context, id uuid.UUID) (*AuthorView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrAuthorNotFound)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *authorQueriesImpl) List(ctx context.Context, page uint) ([]*AuthorView, error) {
	views, err := q.store.List(ctx, PageSize, page*PageSize)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return views, nil
}
