package request

import (
	"book-catalog/internal/domain/reservation"
	"book-catalog/internal/pkg/dateonly"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	BookID    uuid.UUID     `json:"book_id" binding:"required"`
	BeginDate dateonly.Date `json:"begin_date" binding:"required"`
	EndDate   dateonly.Date `json:"end_date" binding:"required"`
}

func (r CreateReservationRequest) ToPeriod() (reservation.DateRange, error) {
	return reservation.NewDateRange(r.BeginDate, r.EndDate)
}
