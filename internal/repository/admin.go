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

type AdminRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewAdminRepo(db *dbpg.DB) *AdminRepository {
	return &AdminRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *AdminRepository) Create(ctx context.Context, a *domain.Admin) error {
	query := `INSERT INTO admins (id, email, name, password_hash, role, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		a.ID, a.Email, a.Name, a.PasswordHash, a.Role, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrEmailTaken
		}
		return fmt.Errorf("insert admin: %w", err)
	}

	return nil
}

func (r *AdminRepository) GetByID(ctx context.Context, id string) (*domain.Admin, error) {
	query := `SELECT id, email, name, password_hash, role, created_at, updated_at
			  FROM admins
			  WHERE id = $1`

	return r.get(ctx, query, id)
}

func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	query := `SELECT id, email, name, password_hash, role, created_at, updated_at
			  FROM admins
			  WHERE email = $1`

	return r.get(ctx, query, email)
}

func (r *AdminRepository) get(ctx context.Context, query string, arg any) (*domain.Admin, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, arg)
	if err != nil {
		return nil, fmt.Errorf("get admin: %w", err)
	}

	var a domain.Admin
	if err = row.Scan(&a.ID, &a.Email, &a.Name, &a.PasswordHash, &a.Role, &a.CreatedAt, &a.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAdminNotFound
		}
		return nil, fmt.Errorf("scan admin: %w", err)
	}

	return &a, nil
}

func (r *AdminRepository) Update(ctx context.Context, a *domain.Admin) error {
	query := `UPDATE admins
			  SET name = $2, password_hash = $3, updated_at = $4
			  WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, a.ID, a.Name, a.PasswordHash, a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update admin: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("admin rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrAdminNotFound
	}

	return nil
}
