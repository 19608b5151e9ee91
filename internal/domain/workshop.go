package domain

import "time"

type WorkshopStatus string

const (
	WorkshopStatusDraft       WorkshopStatus = "draft"
	WorkshopStatusPublished   WorkshopStatus = "published"
	WorkshopStatusFullyBooked WorkshopStatus = "fully_booked"
	WorkshopStatusCancelled   WorkshopStatus = "cancelled"
)

var WorkshopStatuses = []WorkshopStatus{
	WorkshopStatusDraft,
	WorkshopStatusPublished,
	WorkshopStatusFullyBooked,
	WorkshopStatusCancelled,
}

func (s WorkshopStatus) Valid() bool {
	for _, v := range WorkshopStatuses {
		if s == v {
			return true
		}
	}
	return false
}

type Workshop struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Category    string         `json:"category"`
	Date        time.Time      `json:"date"`
	StartTime   string         `json:"start_time"`
	EndTime     string         `json:"end_time"`
	Price       float64        `json:"price"`
	Capacity    int            `json:"capacity"`
	BookedSeats int            `json:"booked_seats"`
	Status      WorkshopStatus `json:"status"`
	ImageURL    *string        `json:"image_url"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// AvailableSeats never reports below zero even if the stored counter
// was left inconsistent by an out-of-band edit.
func (w *Workshop) AvailableSeats() int {
	if w.BookedSeats >= w.Capacity {
		return 0
	}
	return w.Capacity - w.BookedSeats
}

type CreateWorkshopInput struct {
	Title       string
	Description string
	Category    string
	Date        time.Time
	StartTime   string
	EndTime     string
	Price       float64
	Capacity    int
	Status      *WorkshopStatus
}

type UpdateWorkshopInput struct {
	Title       *string
	Description *string
	Category    *string
	Date        *time.Time
	StartTime   *string
	EndTime     *string
	Price       *float64
	Capacity    *int
	Status      *WorkshopStatus
	ImageURL    *string
}

// Empty reports whether the update carries no field at all.
func (in UpdateWorkshopInput) Empty() bool {
	return in.Title == nil && in.Description == nil && in.Category == nil &&
		in.Date == nil && in.StartTime == nil && in.EndTime == nil &&
		in.Price == nil && in.Capacity == nil && in.Status == nil && in.ImageURL == nil
}
