package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/FatimaEzzahraLegchayri/workshop/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const workshopColumns = `id, title, description, category, date, start_time, end_time,
		price, capacity, booked_seats, status, image_url, created_at, updated_at`

type WorkshopRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewWorkshopRepo(db *dbpg.DB) *WorkshopRepository {
	return &WorkshopRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *WorkshopRepository) Create(ctx context.Context, w *domain.Workshop) error {
	query := `INSERT INTO workshops (id, title, description, category, date, start_time, end_time,
				price, capacity, booked_seats, status, image_url, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		w.ID, w.Title, w.Description, w.Category, w.Date, w.StartTime, w.EndTime,
		w.Price, w.Capacity, w.BookedSeats, w.Status, w.ImageURL, w.CreatedAt, w.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert workshop: %w", err)
	}

	return nil
}

func (r *WorkshopRepository) GetByID(ctx context.Context, id string) (*domain.Workshop, error) {
	query := `SELECT ` + workshopColumns + `
			  FROM workshops
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get workshop: %w", err)
	}

	var w domain.Workshop
	if err = scanWorkshop(row.Scan, &w); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrWorkshopNotFound
		}
		return nil, fmt.Errorf("scan workshop: %w", err)
	}

	return &w, nil
}

func (r *WorkshopRepository) List(ctx context.Context) ([]*domain.Workshop, error) {
	query := `SELECT ` + workshopColumns + `
			  FROM workshops
			  ORDER BY date ASC`

	return r.list(ctx, query)
}

// ListPublished returns the workshops shown on the public site.
func (r *WorkshopRepository) ListPublished(ctx context.Context) ([]*domain.Workshop, error) {
	query := `SELECT ` + workshopColumns + `
			  FROM workshops
			  WHERE status = '` + string(domain.WorkshopStatusPublished) + `'
			  ORDER BY date ASC`

	return r.list(ctx, query)
}

func (r *WorkshopRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Workshop, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list workshops: %w", err)
	}
	defer rows.Close()

	var res []*domain.Workshop
	for rows.Next() {
		var w domain.Workshop
		if err = scanWorkshop(rows.Scan, &w); err != nil {
			return nil, fmt.Errorf("scan workshop: %w", err)
		}
		res = append(res, &w)
	}

	return res, rows.Err()
}

// Update applies a partial update under a row lock. Lowering capacity below
// the current booked-seat count is rejected: silently truncating committed
// reservations would break the seat invariant.
func (r *WorkshopRepository) Update(ctx context.Context, id string, in domain.UpdateWorkshopInput) (*domain.Workshop, error) {
	var out *domain.Workshop
	err := inTx(ctx, r.db, r.strategy, func(tx *sql.Tx) error {
		lockQuery := `SELECT ` + workshopColumns + `
					  FROM workshops
					  WHERE id = $1
					  FOR UPDATE`
		var w domain.Workshop
		if err := scanWorkshop(tx.QueryRowContext(ctx, lockQuery, id).Scan, &w); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.ErrWorkshopNotFound
			}
			return fmt.Errorf("lock workshop: %w", err)
		}

		if in.Capacity != nil && *in.Capacity < w.BookedSeats {
			return domain.ErrCapacityBelowBooked
		}

		applyWorkshopUpdate(&w, in)
		w.UpdatedAt = time.Now().UTC()

		updateQuery := `UPDATE workshops
						SET title = $2, description = $3, category = $4, date = $5,
							start_time = $6, end_time = $7, price = $8, capacity = $9,
							status = $10, image_url = $11, updated_at = $12
						WHERE id = $1`
		if _, err := tx.ExecContext(
			ctx, updateQuery,
			w.ID, w.Title, w.Description, w.Category, w.Date, w.StartTime, w.EndTime,
			w.Price, w.Capacity, w.Status, w.ImageURL, w.UpdatedAt,
		); err != nil {
			return fmt.Errorf("update workshop: %w", err)
		}

		out = &w
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (r *WorkshopRepository) SetStatus(ctx context.Context, id string, status domain.WorkshopStatus) error {
	query := `UPDATE workshops SET status = $2, updated_at = $3 WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, status, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("set workshop status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("workshop rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrWorkshopNotFound
	}

	return nil
}

// Delete removes a workshop unless non-canceled bookings still reference it.
func (r *WorkshopRepository) Delete(ctx context.Context, id string) error {
	return inTx(ctx, r.db, r.strategy, func(tx *sql.Tx) error {
		lockQuery := `SELECT 1 FROM workshops WHERE id = $1 FOR UPDATE`
		var one int
		if err := tx.QueryRowContext(ctx, lockQuery, id).Scan(&one); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return domain.ErrWorkshopNotFound
			}
			return fmt.Errorf("lock workshop: %w", err)
		}

		activeQuery := `SELECT COUNT(*) FROM bookings
						WHERE workshop_id = $1 AND status = ANY($2)`
		var active int
		if err := tx.QueryRowContext(ctx, activeQuery, id, pq.Array(domain.ActiveStatuses)).Scan(&active); err != nil {
			return fmt.Errorf("count bookings: %w", err)
		}
		if active > 0 {
			return domain.ErrWorkshopHasBookings
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM workshops WHERE id = $1`, id); err != nil {
			return fmt.Errorf("delete workshop: %w", err)
		}

		return nil
	})
}

// MarkFullyBooked flips published workshops whose seats ran out and returns
// the affected ids.
func (r *WorkshopRepository) MarkFullyBooked(ctx context.Context) ([]string, error) {
	query := `UPDATE workshops
			  SET status = $2, updated_at = NOW()
			  WHERE status = $1 AND booked_seats >= capacity
			  RETURNING id`

	return r.updateStatuses(ctx, query, domain.WorkshopStatusPublished, domain.WorkshopStatusFullyBooked)
}

// ReopenAvailable reverts fully_booked workshops that have free seats again
// (after cancellations or a capacity raise) and returns the affected ids.
func (r *WorkshopRepository) ReopenAvailable(ctx context.Context) ([]string, error) {
	query := `UPDATE workshops
			  SET status = $2, updated_at = NOW()
			  WHERE status = $1 AND booked_seats < capacity
			  RETURNING id`

	return r.updateStatuses(ctx, query, domain.WorkshopStatusFullyBooked, domain.WorkshopStatusPublished)
}

func (r *WorkshopRepository) updateStatuses(ctx context.Context, query string, from, to domain.WorkshopStatus) ([]string, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("update workshop statuses: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan workshop id: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

func scanWorkshop(scan func(dest ...any) error, w *domain.Workshop) error {
	return scan(
		&w.ID, &w.Title, &w.Description, &w.Category, &w.Date, &w.StartTime, &w.EndTime,
		&w.Price, &w.Capacity, &w.BookedSeats, &w.Status, &w.ImageURL, &w.CreatedAt, &w.UpdatedAt,
	)
}

func applyWorkshopUpdate(w *domain.Workshop, in domain.UpdateWorkshopInput) {
	if in.Title != nil {
		w.Title = *in.Title
	}
	if in.Description != nil {
		w.Description = *in.Description
	}
	if in.Category != nil {
		w.Category = *in.Category
	}
	if in.Date != nil {
		w.Date = *in.Date
	}
	if in.StartTime != nil {
		w.StartTime = *in.StartTime
	}
	if in.EndTime != nil {
		w.EndTime = *in.EndTime
	}
	if in.Price != nil {
		w.Price = *in.Price
	}
	if in.Capacity != nil {
		w.Capacity = *in.Capacity
	}
	if in.Status != nil {
		w.Status = *in.Status
	}
	if in.ImageURL != nil {
		w.ImageURL = in.ImageURL
	}
}
