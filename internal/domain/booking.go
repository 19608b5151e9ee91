package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCanceled  BookingStatus = "canceled"
)

// ActiveStatuses are the statuses that hold a seat.
var ActiveStatuses = []BookingStatus{BookingStatusPending, BookingStatusConfirmed}

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCanceled:
		return true
	}
	return false
}

type Booking struct {
	ID            string        `json:"id"`
	WorkshopID    string        `json:"workshop_id"`
	WorkshopTitle string        `json:"workshop_title"`
	Name          string        `json:"name"`
	Phone         string        `json:"phone"`
	Email         *string       `json:"email"`
	Status        BookingStatus `json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// SeatDelta is the seat adjustment implied by a status transition:
// entering canceled frees a seat, leaving canceled takes one back,
// everything else (including a no-op transition) is neutral.
func SeatDelta(oldStatus, newStatus BookingStatus) int {
	switch {
	case newStatus == BookingStatusCanceled && oldStatus != BookingStatusCanceled:
		return -1
	case oldStatus == BookingStatusCanceled && newStatus != BookingStatusCanceled:
		return 1
	default:
		return 0
	}
}

type CreateBookingInput struct {
	WorkshopID string
	Name       string
	Phone      string
	Email      string
}
