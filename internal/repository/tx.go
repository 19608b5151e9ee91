package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

// inTx runs fn inside a transaction, retrying the whole transaction on
// serialization or deadlock failures (SQLSTATE 40001 / 40P01). Business
// errors returned by fn abort immediately and are never retried.
func inTx(ctx context.Context, db *dbpg.DB, strategy retry.Strategy, fn func(tx *sql.Tx) error) error {
	delay := strategy.Delay
	var err error
	for attempt := 1; ; attempt++ {
		err = runTx(ctx, db, fn)
		if err == nil || !retryableTxErr(err) || attempt >= strategy.Attempts {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		delay *= time.Duration(strategy.Backoff)
	}
}

func runTx(ctx context.Context, db *dbpg.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err = fn(tx); err != nil {
		return err
	}

	return tx.Commit()
}

func retryableTxErr(err error) bool {
	var pgErr *pq.Error
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == "40001" || pgErr.Code == "40P01"
}
