package response

import (
	"book-catalog/internal/pkg/dateonly"
	"book-catalog/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type UserSummaryResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Avatar    *string   `json:"avatar,omitempty"`
}

type BookSummaryResponse struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	Pages    int32     `json:"pages"`
	Price    int32     `json:"price"`
	AuthorID uuid.UUID `json:"author_id"`
	GenreID  uuid.UUID `json:"genre_id"`
}

type ReservationResponse struct {
	ID         uuid.UUID           `json:"id"`
	BeginDate  dateonly.Date       `json:"begin_date"`
	EndDate    dateonly.Date       `json:"end_date"`
	OnHands    bool                `json:"on_hands"`
	IsReturned bool                `json:"is_returned"`
	User       UserSummaryResponse `json:"user"`
	Book       BookSummaryResponse `json:"book"`
}

func FromReservationView(rm *queries.ReservationView) (*ReservationResponse, error) {
	var resp ReservationResponse
	if err := copier.Copy(&resp, rm); err != nil {
		return nil, err
	}
	return &resp, nil
}

func FromReservationViews(rms []*queries.ReservationView) ([]*ReservationResponse, error) {
	result := make([]*ReservationResponse, len(rms))
	for i, rm := range rms {
		resp, err := FromReservationView(rm)
		if err != nil {
			return nil, err
		}
		result[i] = resp
	}
	return result, nil
}
