package ports

import (
	"context"

	"github.com/FatimaEzzahraLegchayri/workshop/internal/domain"
)

type WorkshopRepo interface {
	Create(ctx context.Context, w *domain.Workshop) error
	GetByID(ctx context.Context, id string) (*domain.Workshop, error)
	List(ctx context.Context) ([]*domain.Workshop, error)
	ListPublished(ctx context.Context) ([]*domain.Workshop, error)
	Update(ctx context.Context, id string, in domain.UpdateWorkshopInput) (*domain.Workshop, error)
	SetStatus(ctx context.Context, id string, status domain.WorkshopStatus) error
	Delete(ctx context.Context, id string) error
	MarkFullyBooked(ctx context.Context) ([]string, error)
	ReopenAvailable(ctx context.Context) ([]string, error)
}
