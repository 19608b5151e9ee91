package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/FatimaEzzahraLegchayri/workshop/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Create reserves one seat and inserts the booking in a single transaction.
// The workshop row is locked first, so two racing reservations for the last
// seat serialize: one commits, the other observes the incremented counter
// and fails with ErrWorkshopFull. The seat increment and the booking insert
// commit together or not at all.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	return inTx(ctx, r.db, r.strategy, func(tx *sql.Tx) error {
		var (
			title       string
			capacity    int
			bookedSeats int
			status      string
		)
		lockQuery := `SELECT title, capacity, booked_seats, status
					  FROM workshops
					  WHERE id = $1
					  FOR UPDATE`
		err := tx.QueryRowContext(ctx, lockQuery, b.WorkshopID).
			Scan(&title, &capacity, &bookedSeats, &status)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.ErrWorkshopNotFound
			}
			return fmt.Errorf("lock workshop: %w", err)
		}

		if domain.WorkshopStatus(status) != domain.WorkshopStatusPublished {
			return domain.ErrWorkshopNotAvailable
		}
		if bookedSeats >= capacity {
			return domain.ErrWorkshopFull
		}

		// Title is snapshotted at booking time and not kept in sync
		// with later workshop edits.
		b.WorkshopTitle = title

		insertQuery := `INSERT INTO bookings (id, workshop_id, workshop_title, name, phone, email, status, created_at, updated_at)
						VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
		if _, err = tx.ExecContext(
			ctx, insertQuery,
			b.ID, b.WorkshopID, b.WorkshopTitle, b.Name, b.Phone, b.Email,
			b.Status, b.CreatedAt, b.UpdatedAt,
		); err != nil {
			return fmt.Errorf("insert booking: %w", err)
		}

		seatQuery := `UPDATE workshops
					  SET booked_seats = booked_seats + 1, updated_at = $2
					  WHERE id = $1`
		if _, err = tx.ExecContext(ctx, seatQuery, b.WorkshopID, b.UpdatedAt); err != nil {
			return fmt.Errorf("increment booked seats: %w", err)
		}

		return nil
	})
}

// UpdateStatus writes the new booking status and applies the implied seat
// delta to the workshop counter, all in one transaction. Entering canceled
// frees a seat, leaving canceled takes one back; the counter is clamped at
// zero so a decrement can never drive it negative. Reinstating a canceled
// booking does not re-check capacity.
func (r *BookingRepository) UpdateStatus(ctx context.Context, bookingID string, newStatus domain.BookingStatus) error {
	return inTx(ctx, r.db, r.strategy, func(tx *sql.Tx) error {
		var (
			workshopID string
			oldStatus  string
		)
		bookingQuery := `SELECT workshop_id, status
						 FROM bookings
						 WHERE id = $1
						 FOR UPDATE`
		err := tx.QueryRowContext(ctx, bookingQuery, bookingID).Scan(&workshopID, &oldStatus)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.ErrBookingNotFound
			}
			return fmt.Errorf("lock booking: %w", err)
		}

		workshopQuery := `SELECT 1 FROM workshops WHERE id = $1 FOR UPDATE`
		var one int
		if err = tx.QueryRowContext(ctx, workshopQuery, workshopID).Scan(&one); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.ErrWorkshopNotFound
			}
			return fmt.Errorf("lock workshop: %w", err)
		}

		now := time.Now().UTC()
		statusQuery := `UPDATE bookings SET status = $2, updated_at = $3 WHERE id = $1`
		if _, err = tx.ExecContext(ctx, statusQuery, bookingID, newStatus, now); err != nil {
			return fmt.Errorf("update booking status: %w", err)
		}

		delta := domain.SeatDelta(domain.BookingStatus(oldStatus), newStatus)
		if delta != 0 {
			seatQuery := `UPDATE workshops
						  SET booked_seats = GREATEST(0, booked_seats + $2), updated_at = $3
						  WHERE id = $1`
			if _, err = tx.ExecContext(ctx, seatQuery, workshopID, delta, now); err != nil {
				return fmt.Errorf("adjust booked seats: %w", err)
			}
		}

		return nil
	})
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT id, workshop_id, workshop_title, name, phone, email, status, created_at, updated_at
			  FROM bookings
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	var b domain.Booking
	if err = row.Scan(
		&b.ID, &b.WorkshopID, &b.WorkshopTitle, &b.Name, &b.Phone, &b.Email,
		&b.Status, &b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return &b, nil
}

func (r *BookingRepository) List(ctx context.Context) ([]*domain.Booking, error) {
	query := `SELECT id, workshop_id, workshop_title, name, phone, email, status, created_at, updated_at
			  FROM bookings
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err = rows.Scan(
			&b.ID, &b.WorkshopID, &b.WorkshopTitle, &b.Name, &b.Phone, &b.Email,
			&b.Status, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, &b)
	}

	return res, rows.Err()
}

func (r *BookingRepository) ListByWorkshop(ctx context.Context, workshopID string) ([]*domain.Booking, error) {
	query := `SELECT id, workshop_id, workshop_title, name, phone, email, status, created_at, updated_at
			  FROM bookings
			  WHERE workshop_id = $1
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, workshopID)
	if err != nil {
		return nil, fmt.Errorf("list bookings by workshop: %w", err)
	}
	defer rows.Close()

	var res []*domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err = rows.Scan(
			&b.ID, &b.WorkshopID, &b.WorkshopTitle, &b.Name, &b.Phone, &b.Email,
			&b.Status, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, &b)
	}

	return res, rows.Err()
}
