package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FatimaEzzahraLegchayri/workshop/internal/domain"
)

func newBookingRepoWithMock(t *testing.T) (*BookingRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newMockDB(t)
	return NewBookingRepo(db), mock
}

func pendingBooking() *domain.Booking {
	now := time.Now().UTC()
	return &domain.Booking{
		ID:         "b1",
		WorkshopID: "w1",
		Name:       "Sara",
		Phone:      "0612345678",
		Status:     domain.BookingStatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func expectWorkshopLock(mock sqlmock.Sqlmock, title string, capacity, booked int, status string) {
	mock.ExpectQuery("SELECT title, capacity, booked_seats, status").
		WithArgs("w1").
		WillReturnRows(sqlmock.NewRows([]string{"title", "capacity", "booked_seats", "status"}).
			AddRow(title, capacity, booked, status))
}

func TestBookingRepository_Create_ReservesSeat(t *testing.T) {
	repo, mock := newBookingRepoWithMock(t)
	b := pendingBooking()

	mock.ExpectBegin()
	expectWorkshopLock(mock, "Pottery", 8, 3, "published")
	mock.ExpectExec("INSERT INTO bookings").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE workshops SET booked_seats = booked_seats").
		WithArgs("w1", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Create(context.Background(), b)

	require.NoError(t, err)
	assert.Equal(t, "Pottery", b.WorkshopTitle)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_Create_LastSeatGone(t *testing.T) {
	repo, mock := newBookingRepoWithMock(t)

	// The locked row already shows a full counter, so neither the insert nor
	// the increment may run.
	mock.ExpectBegin()
	expectWorkshopLock(mock, "Pottery", 8, 8, "published")
	mock.ExpectRollback()

	err := repo.Create(context.Background(), pendingBooking())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrWorkshopFull)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_Create_UnpublishedWorkshop(t *testing.T) {
	repo, mock := newBookingRepoWithMock(t)

	mock.ExpectBegin()
	expectWorkshopLock(mock, "Pottery", 8, 0, "draft")
	mock.ExpectRollback()

	err := repo.Create(context.Background(), pendingBooking())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrWorkshopNotAvailable)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_Create_WorkshopMissing(t *testing.T) {
	repo, mock := newBookingRepoWithMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT title, capacity, booked_seats, status").
		WithArgs("w1").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	err := repo.Create(context.Background(), pendingBooking())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrWorkshopNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_Create_RetriesSerializationFailure(t *testing.T) {
	repo, mock := newBookingRepoWithMock(t)
	b := pendingBooking()

	// First attempt loses the lock race, the whole transaction is replayed.
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT title, capacity, booked_seats, status").
		WithArgs("w1").
		WillReturnError(&pq.Error{Code: "40001"})
	mock.ExpectRollback()

	mock.ExpectBegin()
	expectWorkshopLock(mock, "Pottery", 8, 3, "published")
	mock.ExpectExec("INSERT INTO bookings").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE workshops SET booked_seats = booked_seats").
		WithArgs("w1", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Create(context.Background(), b)

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func expectBookingLock(mock sqlmock.Sqlmock, status string) {
	mock.ExpectQuery("SELECT workshop_id, status").
		WithArgs("b1").
		WillReturnRows(sqlmock.NewRows([]string{"workshop_id", "status"}).AddRow("w1", status))
	mock.ExpectQuery("SELECT 1 FROM workshops").
		WithArgs("w1").
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))
}

func TestBookingRepository_UpdateStatus_CancelFreesSeat(t *testing.T) {
	repo, mock := newBookingRepoWithMock(t)

	mock.ExpectBegin()
	expectBookingLock(mock, "confirmed")
	mock.ExpectExec("UPDATE bookings SET status").
		WithArgs("b1", "canceled", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("GREATEST").
		WithArgs("w1", -1, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.UpdateStatus(context.Background(), "b1", domain.BookingStatusCanceled)

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_UpdateStatus_ReinstateTakesSeatBack(t *testing.T) {
	repo, mock := newBookingRepoWithMock(t)

	// Leaving canceled re-takes the seat without reading the capacity: the
	// only statements are the two locks, the status write and the increment.
	mock.ExpectBegin()
	expectBookingLock(mock, "canceled")
	mock.ExpectExec("UPDATE bookings SET status").
		WithArgs("b1", "confirmed", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("GREATEST").
		WithArgs("w1", 1, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.UpdateStatus(context.Background(), "b1", domain.BookingStatusConfirmed)

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_UpdateStatus_NeutralTransitionSkipsCounter(t *testing.T) {
	repo, mock := newBookingRepoWithMock(t)

	mock.ExpectBegin()
	expectBookingLock(mock, "pending")
	mock.ExpectExec("UPDATE bookings SET status").
		WithArgs("b1", "confirmed", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.UpdateStatus(context.Background(), "b1", domain.BookingStatusConfirmed)

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_UpdateStatus_BookingMissing(t *testing.T) {
	repo, mock := newBookingRepoWithMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT workshop_id, status").
		WithArgs("b1").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	err := repo.UpdateStatus(context.Background(), "b1", domain.BookingStatusCanceled)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_UpdateStatus_WorkshopMissing(t *testing.T) {
	repo, mock := newBookingRepoWithMock(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT workshop_id, status").
		WithArgs("b1").
		WillReturnRows(sqlmock.NewRows([]string{"workshop_id", "status"}).AddRow("w1", "pending"))
	mock.ExpectQuery("SELECT 1 FROM workshops").
		WithArgs("w1").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	err := repo.UpdateStatus(context.Background(), "b1", domain.BookingStatusCanceled)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrWorkshopNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
