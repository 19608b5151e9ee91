package ports

import (
	"context"

	"github.com/FatimaEzzahraLegchayri/workshop/internal/domain"
)

type AdminRepo interface {
	Create(ctx context.Context, a *domain.Admin) error
	GetByID(ctx context.Context, id string) (*domain.Admin, error)
	GetByEmail(ctx context.Context, email string) (*domain.Admin, error)
	Update(ctx context.Context, a *domain.Admin) error
}
