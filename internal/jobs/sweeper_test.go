//go:build unit

package jobs_test

import (
	"context"
	"testing"
	"time"

	"book-catalog/internal/infra"
	"book-catalog/internal/infra/db"
	"book-catalog/internal/jobs"
	"book-catalog/internal/pkg/clock"
	"book-catalog/internal/pkg/dateonly"
	commandsmock "book-catalog/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type inlineRunner struct {
	calls int
}

func (r *inlineRunner) InTx(_ context.Context, fn func(tx db.DBTX) error) error {
	r.calls++
	return fn(nil)
}

func TestExpirySweeperRunOnce(t *testing.T) {
	ctx := context.Background()
	frozen := clock.NewFrozenClock(time.Date(2026, time.September, 15, 14, 30, 0, 0, time.UTC))
	today := dateonly.New(2026, time.September, 15)

	t.Run("closes overdue reservations as of today", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := commandsmock.NewMockReservationRepository(ctrl)
		runner := &inlineRunner{}

		repo.EXPECT().
			CloseOverdue(gomock.Any(), gomock.Any(), today).
			Return([]uuid.UUID{uuid.New(), uuid.New()}, nil)

		jobs.NewExpirySweeper(runner, repo, frozen).RunOnce(ctx)
		assert.Equal(t, 1, runner.calls)
	})

	t.Run("nothing overdue is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := commandsmock.NewMockReservationRepository(ctrl)
		runner := &inlineRunner{}

		repo.EXPECT().CloseOverdue(gomock.Any(), gomock.Any(), today).Return(nil, nil)

		jobs.NewExpirySweeper(runner, repo, frozen).RunOnce(ctx)
		assert.Equal(t, 1, runner.calls)
	})

	t.Run("repository failure is swallowed for the next tick", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := commandsmock.NewMockReservationRepository(ctrl)
		runner := &inlineRunner{}

		repo.EXPECT().
			CloseOverdue(gomock.Any(), gomock.Any(), today).
			Return(nil, infra.WrapRepoErr("sweep failed", nil, infra.KindDBFailure))

		assert.NotPanics(t, func() {
			jobs.NewExpirySweeper(runner, repo, frozen).RunOnce(ctx)
		})
	})
}
