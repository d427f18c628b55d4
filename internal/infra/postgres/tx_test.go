//go:build unit

package postgres

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"lease-market/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTx struct {
	pgx.Tx
	commitErr  error
	committed  bool
	rolledBack bool
}

func (t *fakeTx) Commit(context.Context) error {
	if t.commitErr != nil {
		return t.commitErr
	}
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback(context.Context) error {
	if t.committed {
		return pgx.ErrTxClosed
	}
	t.rolledBack = true
	return nil
}

type fakeBeginner struct {
	DBTX
	txs      []*fakeTx
	beginErr error
}

func (b *fakeBeginner) BeginTx(context.Context, pgx.TxOptions) (pgx.Tx, error) {
	if b.beginErr != nil {
		return nil, b.beginErr
	}
	tx := &fakeTx{}
	b.txs = append(b.txs, tx)
	return tx, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestTxRunnerWithin(t *testing.T) {
	serialization := &pgconn.PgError{Code: pgErrCodeSerializationFailure}
	plain := errs.New("constraint broken")

	t.Run("commits on success", func(t *testing.T) {
		db := &fakeBeginner{}
		err := newTxRunner(db, discardLogger()).within(context.Background(), func(context.Context, pgx.Tx) error {
			return nil
		})

		require.NoError(t, err)
		require.Len(t, db.txs, 1)
		assert.True(t, db.txs[0].committed)
		assert.False(t, db.txs[0].rolledBack)
	})

	t.Run("retries serialization failures", func(t *testing.T) {
		db := &fakeBeginner{}
		calls := 0
		err := newTxRunner(db, discardLogger()).within(context.Background(), func(context.Context, pgx.Tx) error {
			calls++
			if calls < 3 {
				return serialization
			}
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, 3, calls)
		require.Len(t, db.txs, 3)
		assert.True(t, db.txs[0].rolledBack)
		assert.True(t, db.txs[1].rolledBack)
		assert.True(t, db.txs[2].committed)
	})

	t.Run("does not retry other errors", func(t *testing.T) {
		db := &fakeBeginner{}
		calls := 0
		err := newTxRunner(db, discardLogger()).within(context.Background(), func(context.Context, pgx.Tx) error {
			calls++
			return plain
		})

		require.Error(t, err)
		assert.True(t, errs.Is(err, plain))
		assert.Equal(t, 1, calls)
		assert.True(t, db.txs[0].rolledBack)
	})

	t.Run("gives up after max retries", func(t *testing.T) {
		db := &fakeBeginner{}
		err := newTxRunner(db, discardLogger()).within(context.Background(), func(context.Context, pgx.Tx) error {
			return serialization
		})

		require.Error(t, err)
		assert.True(t, errs.Is(err, errTxRetriesExhausted))
		assert.Len(t, db.txs, maxTxRetries+1)
	})

	t.Run("begin failure", func(t *testing.T) {
		db := &fakeBeginner{beginErr: errs.New("pool closed")}
		err := newTxRunner(db, discardLogger()).within(context.Background(), func(context.Context, pgx.Tx) error {
			t.Fatal("fn must not run")
			return nil
		})

		require.Error(t, err)
		assert.True(t, errs.Is(err, errTxBegin))
	})

	t.Run("cancelled while waiting to retry", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		db := &fakeBeginner{}
		err := newTxRunner(db, discardLogger()).within(ctx, func(context.Context, pgx.Tx) error {
			cancel()
			return serialization
		})

		assert.ErrorIs(t, err, context.Canceled)
		assert.Len(t, db.txs, 1)
	})
}

func TestErrorClassification(t *testing.T) {
	assert.True(t, isUniqueViolation(errs.Wrap(&pgconn.PgError{Code: pgErrCodeUniqueViolation}, "insert")))
	assert.False(t, isUniqueViolation(errs.New("boom")))
	assert.True(t, isRetryable(&pgconn.PgError{Code: pgErrCodeDeadlockDetected}))
	assert.False(t, isRetryable(&pgconn.PgError{Code: pgErrCodeUniqueViolation}))
}

func TestBackoffGrows(t *testing.T) {
	for attempt := 0; attempt < 3; attempt++ {
		base := txBackoffBase * (1 << attempt)
		got := backoff(attempt, txBackoffBase)
		assert.GreaterOrEqual(t, got, base)
		assert.Less(t, got, base+base/5+1)
	}
}
