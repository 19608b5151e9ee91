package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/FatimaEzzahraLegchayri/workshop/internal/domain"
)

func newMockDB(t *testing.T) (*dbpg.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return &dbpg.DB{Master: db}, mock
}

// fastStrategy keeps retry pauses out of the test runtime.
var fastStrategy = retry.Strategy{Attempts: 3, Delay: time.Millisecond, Backoff: 2}

func TestInTx_CommitsOnSuccess(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectCommit()

	calls := 0
	err := inTx(context.Background(), db, fastStrategy, func(tx *sql.Tx) error {
		calls++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInTx_BusinessErrorNotRetried(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	calls := 0
	err := inTx(context.Background(), db, fastStrategy, func(tx *sql.Tx) error {
		calls++
		return domain.ErrWorkshopFull
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrWorkshopFull)
	assert.Equal(t, 1, calls)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInTx_RetriesSerializationFailure(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectRollback()
	mock.ExpectBegin()
	mock.ExpectRollback()
	mock.ExpectBegin()
	mock.ExpectCommit()

	calls := 0
	err := inTx(context.Background(), db, fastStrategy, func(tx *sql.Tx) error {
		calls++
		if calls < 3 {
			return &pq.Error{Code: "40001"}
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInTx_RetriesDeadlock(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectRollback()
	mock.ExpectBegin()
	mock.ExpectCommit()

	calls := 0
	err := inTx(context.Background(), db, fastStrategy, func(tx *sql.Tx) error {
		calls++
		if calls == 1 {
			return &pq.Error{Code: "40P01"}
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInTx_GivesUpAfterAttempts(t *testing.T) {
	db, mock := newMockDB(t)

	for i := 0; i < fastStrategy.Attempts; i++ {
		mock.ExpectBegin()
		mock.ExpectRollback()
	}

	calls := 0
	err := inTx(context.Background(), db, fastStrategy, func(tx *sql.Tx) error {
		calls++
		return &pq.Error{Code: "40001"}
	})

	require.Error(t, err)
	assert.Equal(t, fastStrategy.Attempts, calls)

	var pgErr *pq.Error
	require.True(t, errors.As(err, &pgErr))
	assert.Equal(t, pq.ErrorCode("40001"), pgErr.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInTx_StopsWhenContextCanceled(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	err := inTx(ctx, db, fastStrategy, func(tx *sql.Tx) error {
		calls++
		return &pq.Error{Code: "40001"}
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRetryableTxErr(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"serialization failure", &pq.Error{Code: "40001"}, true},
		{"deadlock detected", &pq.Error{Code: "40P01"}, true},
		{"wrapped serialization failure", fmt.Errorf("lock workshop: %w", &pq.Error{Code: "40001"}), true},
		{"unique violation", &pq.Error{Code: "23505"}, false},
		{"workshop full", domain.ErrWorkshopFull, false},
		{"plain error", errors.New("boom"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, retryableTxErr(tt.err))
		})
	}
}
