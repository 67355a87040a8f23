package jobs

import (
	"context"
	"log/slog"

	"book-catalog/internal/infra/db"
	"book-catalog/internal/pkg/clock"
	"book-catalog/internal/pkg/dateonly"
	"book-catalog/internal/usecase/commands"

	"github.com/google/uuid"
)

// ExpirySweeper closes reservations whose end date has passed without a
// manual return. Both possession flags flip in the same statement, so a
// swept row can never end up returned yet still on hands.
type ExpirySweeper struct {
	runner db.TxRunner
	repo   commands.ReservationRepository
	clock  clock.Clock
}

func NewExpirySweeper(runner db.TxRunner, repo commands.ReservationRepository, clk clock.Clock) *ExpirySweeper {
	return &ExpirySweeper{runner: runner, repo: repo, clock: clk}
}

// RunOnce performs a single sweep as of today. Errors are logged, not
// returned to the scheduler: a failed sweep is retried on the next run
// and must not take the process down.
func (s *ExpirySweeper) RunOnce(ctx context.Context) {
	asOf := dateonly.FromTime(s.clock.Today())

	var closed []uuid.UUID
	err := s.runner.InTx(ctx, func(tx db.DBTX) error {
		var err error
		closed, err = s.repo.CloseOverdue(ctx, tx, asOf)
		return err
	})
	if err != nil {
		slog.Error("expiry sweep failed", "as_of", asOf, "error", err)
		return
	}

	if len(closed) == 0 {
		slog.Info("expiry sweep found nothing to close", "as_of", asOf)
		return
	}

	slog.Info("expiry sweep closed overdue reservations",
		"as_of", asOf,
		"closed", len(closed))
}
