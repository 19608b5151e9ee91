package ports

import (
	"context"

	"github.com/FatimaEzzahraLegchayri/workshop/internal/domain"
)

// BookingNotifier delivers a best-effort confirmation to the booker.
// Implementations must swallow their own failures; a booking never
// depends on the notification going out.
type BookingNotifier interface {
	NotifyBookingCreated(ctx context.Context, booking *domain.Booking, workshop *domain.Workshop)
}
