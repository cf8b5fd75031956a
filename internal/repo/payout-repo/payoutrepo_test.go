package payoutrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/fanvault/payments/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()
	return repo, mockDB
}

func payoutRows(payouts ...domain.Payout) *pgxmock.Rows {
	rows := pgxmock.NewRows([]string{"id", "creator_id", "amount_minor", "external_transfer_id", "status", "arrival_date", "failure_reason", "created_at"})
	for _, p := range payouts {
		rows.AddRow(p.ID, p.CreatorID, p.AmountMinor, p.ExternalTransferID, p.Status, p.ArrivalDate, p.FailureReason, p.CreatedAt)
	}
	return rows
}

func TestRepository_Insert(t *testing.T) {
	repo, mock := NewMock(t)
	payout := &domain.Payout{
		ID:                 "p-1",
		CreatorID:          "creator-1",
		AmountMinor:        5000,
		ExternalTransferID: "tr-1",
		Status:             domain.PayoutPending,
		CreatedAt:          time.Now(),
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO payouts")).
		WithArgs(payout.ID, payout.CreatorID, payout.AmountMinor, payout.ExternalTransferID, payout.Status, payout.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	inserted, err := repo.Insert(context.Background(), payout)
	assert.NoError(t, err)
	assert.Equal(t, payout, inserted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindByTransferID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	t.Run("Payout exists", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("WHERE external_transfer_id = $1")).
			WithArgs("tr-1").
			WillReturnRows(payoutRows(domain.Payout{
				ID: "p-1", CreatorID: "creator-1", AmountMinor: 5000,
				ExternalTransferID: "tr-1", Status: domain.PayoutPending, CreatedAt: now,
			}))

		payout, err := repo.FindByTransferID(context.Background(), "tr-1")
		assert.NoError(t, err)
		assert.Equal(t, "p-1", payout.ID)
	})

	t.Run("Unknown transfer id", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("WHERE external_transfer_id = $1")).
			WithArgs("tr-missing").
			WillReturnRows(payoutRows())

		payout, err := repo.FindByTransferID(context.Background(), "tr-missing")
		assert.NoError(t, err)
		assert.Nil(t, payout)
	})
}

func TestRepository_UpdateStatus(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	t.Run("Non-terminal row is updated", func(t *testing.T) {
		payout := &domain.Payout{ID: "p-1", Status: domain.PayoutInTransit}
		mock.ExpectQuery(regexp.QuoteMeta("status NOT IN ('paid', 'failed', 'cancelled')")).
			WithArgs(payout.ID, payout.Status, payout.ArrivalDate, payout.FailureReason).
			WillReturnRows(payoutRows(domain.Payout{
				ID: "p-1", CreatorID: "creator-1", AmountMinor: 5000,
				ExternalTransferID: "tr-1", Status: domain.PayoutInTransit, CreatedAt: now,
			}))

		updated, err := repo.UpdateStatus(context.Background(), payout)
		assert.NoError(t, err)
		assert.Equal(t, domain.PayoutInTransit, updated.Status)
	})

	t.Run("Terminal row is filtered by the guard", func(t *testing.T) {
		payout := &domain.Payout{ID: "p-terminal", Status: domain.PayoutFailed}
		mock.ExpectQuery(regexp.QuoteMeta("status NOT IN ('paid', 'failed', 'cancelled')")).
			WithArgs(payout.ID, payout.Status, payout.ArrivalDate, payout.FailureReason).
			WillReturnRows(payoutRows())

		updated, err := repo.UpdateStatus(context.Background(), payout)
		assert.NoError(t, err)
		assert.Nil(t, updated)
	})
}

func TestRepository_CommittedTotal(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Pending, in transit and paid are committed", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("status IN ('pending', 'in_transit', 'paid')")).
			WithArgs("creator-1").
			WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow(int64(7500)))

		total, err := repo.CommittedTotal(context.Background(), "creator-1")
		assert.NoError(t, err)
		assert.Equal(t, int64(7500), total)
	})

	t.Run("Database failure", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("status IN ('pending', 'in_transit', 'paid')")).
			WithArgs("creator-1").
			WillReturnError(errors.New("db down"))

		_, err := repo.CommittedTotal(context.Background(), "creator-1")
		assert.Error(t, err)
	})
}

func TestRepository_ListByCreator(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at DESC")).
		WithArgs("creator-1", 10).
		WillReturnRows(payoutRows(
			domain.Payout{ID: "p-2", CreatorID: "creator-1", AmountMinor: 100, ExternalTransferID: "tr-2", Status: domain.PayoutPaid, CreatedAt: now},
			domain.Payout{ID: "p-1", CreatorID: "creator-1", AmountMinor: 200, ExternalTransferID: "tr-1", Status: domain.PayoutFailed, CreatedAt: now.Add(-time.Hour)},
		))

	payouts, err := repo.ListByCreator(context.Background(), "creator-1", 10)
	assert.NoError(t, err)
	assert.Len(t, payouts, 2)
	assert.Equal(t, "p-2", payouts[0].ID)
}
