package queries

import (
	"context"

	"book-catalog/internal/infra"
	"book-catalog/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrGenreNotFound = errs.New("genre not found")

type GenreQueries interface {
	Get(ctx context.Context, id uuid.UUID) (*GenreView, error)
	List(ctx context.Context, page uint) ([]*GenreView, error)
}

type genreQueriesImpl struct {
	store GenreReadStore
}

func NewGenreQueries(store GenreReadStore) GenreQueries {
	return &genreQueriesImpl{store: store}
}

func (q *genreQueriesImpl) Get(ctx context.Context, id uuid.UUID) (*GenreView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrGenreNotFound)
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *genreQueriesImpl) List(ctx context.Context, page uint) ([]*GenreView, error) {
	views, err := q.store.List(ctx, PageSize, page*PageSize)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return views, nil
}
