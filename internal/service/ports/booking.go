package ports

import (
	"context"

	"github.com/FatimaEzzahraLegchayri/workshop/internal/domain"
)

type BookingRepo interface {
	Create(ctx context.Context, b *domain.Booking) error
	UpdateStatus(ctx context.Context, bookingID string, newStatus domain.BookingStatus) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context) ([]*domain.Booking, error)
	ListByWorkshop(ctx context.Context, workshopID string) ([]*domain.Booking, error)
}
