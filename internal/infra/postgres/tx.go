package postgres

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"lease-market/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
)

const (
	maxTxRetries  = 3
	txBackoffBase = 50 * time.Millisecond
)

var (
	errTxBegin            = errs.New("failed to begin transaction")
	errTxCommit           = errs.New("failed to commit transaction")
	errTxRetriesExhausted = errs.New("transaction failed after max retries")
)

type txRunner struct {
	db      TxBeginner
	logger  *slog.Logger
	options pgx.TxOptions
}

func newTxRunner(db TxBeginner, logger *slog.Logger) *txRunner {
	return &txRunner{
		db:      db,
		logger:  logger,
		options: pgx.TxOptions{IsoLevel: pgx.ReadCommitted},
	}
}

// within runs fn in a transaction, retrying on serialization failures and deadlocks.
// fn may run more than once and must not keep state between attempts.
func (r *txRunner) within(ctx context.Context, fn func(ctx context.Context, tx pgx.Tx) error) error {
	for attempt := 0; attempt <= maxTxRetries; attempt++ {
		tx, err := r.db.BeginTx(ctx, r.options)
		if err != nil {
			return errs.Mark(err, errTxBegin)
		}

		err = fn(ctx, tx)
		if err == nil {
			if err = tx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTxCommit)
		}

		// Rollback runs per attempt; a deferred rollback would pile up across retries.
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			r.logger.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
		}

		if !isRetryable(err) {
			return err
		}
		if attempt == maxTxRetries {
			r.logger.Error("transaction failed after max retries", "attempts", attempt+1, "error", err.Error())
			return errs.Mark(err, errTxRetriesExhausted)
		}

		wait := backoff(attempt, txBackoffBase)
		r.logger.Warn("retrying transaction",
			"attempt", attempt+1,
			"wait_ms", wait.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
	return errTxRetriesExhausted
}

func backoff(attempt int, base time.Duration) time.Duration {
	wait := time.Duration(1<<attempt) * base
	return wait + time.Duration(jitter(int64(wait/5)))
}

func jitter(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	// #nosec G115 -- high bit masked
	return int64(binary.BigEndian.Uint64(buf[:])&0x7FFFFFFFFFFFFFFF) % n
}
