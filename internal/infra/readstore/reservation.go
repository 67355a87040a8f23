package readstore

import (
	"context"

	"book-catalog/internal/infra"
	"book-catalog/internal/infra/db"
	"book-catalog/internal/pkg/dateonly"
	"book-catalog/internal/usecase/queries"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	"github.com/google/uuid"
)

const dialect = "postgres"

var reservationViewColumns = []any{
	goqu.I("r.id"),
	goqu.I("r.begin_date"),
	goqu.I("r.end_date"),
	goqu.I("r.on_hands"),
	goqu.I("r.is_returned"),
	goqu.I("u.id").As("user_id"),
	goqu.I("u.email"),
	goqu.I("u.first_name"),
	goqu.I("u.last_name"),
	goqu.I("u.avatar"),
	goqu.I("b.id").As("book_id"),
	goqu.I("b.title"),
	goqu.I("b.pages"),
	goqu.I("b.price"),
	goqu.I("b.author_id"),
	goqu.I("b.genre_id"),
}

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(dbtx db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: dbtx}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	sql, args, err := reservationViewDataset().
		Where(goqu.I("r.id").Eq(id)).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build reservation query", err)
	}

	row := r.db.QueryRow(ctx, sql, args...)
	view, err := scanReservationView(row)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by id", err)
	}

	return view, nil
}

// List applies the optional filters and returns one fixed-size page.
// Filter validation (the exclusive on_hands/is_returned pair) happens in
// the usecase layer before this runs.
func (r *ReservationReadStore) List(ctx context.Context, filters queries.ReservationFilters, limit, offset uint) ([]*queries.ReservationView, error) {
	ds := reservationViewDataset()

	if filters.StartDate != nil {
		ds = ds.Where(dateContained(*filters.StartDate))
	}
	if filters.EndDate != nil {
		ds = ds.Where(dateContained(*filters.EndDate))
	}
	if filters.OnHands != nil {
		ds = ds.Where(goqu.I("r.on_hands").Eq(*filters.OnHands))
	}
	if filters.IsReturned != nil {
		ds = ds.Where(goqu.I("r.is_returned").Eq(*filters.IsReturned))
	}
	if filters.BookTitle != nil {
		ds = ds.Where(goqu.I("b.title").Eq(*filters.BookTitle))
	}

	sql, args, err := ds.
		Order(goqu.I("r.begin_date").Asc(), goqu.I("r.id").Asc()).
		Limit(limit).
		Offset(offset).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build reservation list query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	defer rows.Close()

	var result []*queries.ReservationView
	for rows.Next() {
		view, scanErr := scanReservationView(rows)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation row", scanErr)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read reservation rows", err)
	}

	return result, nil
}

func reservationViewDataset() *goqu.SelectDataset {
	return goqu.Dialect(dialect).
		From(goqu.T("reservations").As("r")).
		Join(goqu.T("users").As("u"), goqu.On(goqu.I("r.user_id").Eq(goqu.I("u.id")))).
		Join(goqu.T("books").As("b"), goqu.On(goqu.I("r.book_id").Eq(goqu.I("b.id")))).
		Select(reservationViewColumns...)
}

func dateContained(d dateonly.Date) goqu.Expression {
	return goqu.And(
		goqu.I("r.begin_date").Lte(d.Time),
		goqu.I("r.end_date").Gte(d.Time),
	)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReservationView(row rowScanner) (*queries.ReservationView, error) {
	var v queries.ReservationView
	err := row.Scan(
		&v.ID,
		&v.BeginDate,
		&v.EndDate,
		&v.OnHands,
		&v.IsReturned,
		&v.User.ID,
		&v.User.Email,
		&v.User.FirstName,
		&v.User.LastName,
		&v.User.Avatar,
		&v.Book.ID,
		&v.Book.Title,
		&v.Book.Pages,
		&v.Book.Price,
		&v.Book.AuthorID,
		&v.Book.GenreID,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
