package queries

import (
	"context"

	"book-catalog/internal/infra"
	"book-catalog/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrBookNotFound = errs.New("book not found")

type BookQueries interface {
	Get(ctx context.Context, id uuid.UUID) (*BookView, error)
	List(ctx context.Context, page uint) ([]*BookView, error)
}

type bookQueriesImpl struct {
	store BookReadStore
}

func NewBookQueries(store BookReadStore) BookQueries {
	return &bookQueriesImpl{store: store}
}

func (q *bookQueriesImpl) Get(ctx context.Context, id uuid.UUID) (*BookView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrBookNotFound)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *bookQueriesImpl) List(ctx context.Context, page uint) ([]*BookView, error) {
	views, err := q.store.List(ctx, PageSize, page*PageSize)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return views, nil
}
