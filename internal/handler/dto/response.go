package dto

import (
	"time"

	"github.com/FatimaEzzahraLegchayri/workshop/internal/domain"
)

const dateLayout = "2006-01-02"

type WorkshopResponse struct {
	ID             string  `json:"id"`
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	Category       string  `json:"category"`
	Date           string  `json:"date"`
	StartTime      string  `json:"start_time"`
	EndTime        string  `json:"end_time"`
	Price          float64 `json:"price"`
	Capacity       int     `json:"capacity"`
	BookedSeats    int     `json:"booked_seats"`
	AvailableSeats int     `json:"available_seats"`
	Status         string  `json:"status"`
	ImageURL       *string `json:"image_url,omitempty"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at"`
}

type BookingResponse struct {
	ID            string  `json:"id"`
	WorkshopID    string  `json:"workshop_id"`
	WorkshopTitle string  `json:"workshop_title"`
	Name          string  `json:"name"`
	Phone         string  `json:"phone"`
	Email         *string `json:"email,omitempty"`
	Status        string  `json:"status"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

type AdminResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type LoginResponse struct {
	Token string        `json:"token"`
	Admin AdminResponse `json:"admin"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToWorkshopResponse(w *domain.Workshop) WorkshopResponse {
	return WorkshopResponse{
		ID:             w.ID,
		Title:          w.Title,
		Description:    w.Description,
		Category:       w.Category,
		Date:           w.Date.Format(dateLayout),
		StartTime:      w.StartTime,
		EndTime:        w.EndTime,
		Price:          w.Price,
		Capacity:       w.Capacity,
		BookedSeats:    w.BookedSeats,
		AvailableSeats: w.AvailableSeats(),
		Status:         string(w.Status),
		ImageURL:       w.ImageURL,
		CreatedAt:      w.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      w.UpdatedAt.Format(time.RFC3339),
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:            b.ID,
		WorkshopID:    b.WorkshopID,
		WorkshopTitle: b.WorkshopTitle,
		Name:          b.Name,
		Phone:         b.Phone,
		Email:         b.Email,
		Status:        string(b.Status),
		CreatedAt:     b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     b.UpdatedAt.Format(time.RFC3339),
	}
}

func ToAdminResponse(a *domain.Admin) AdminResponse {
	return AdminResponse{
		ID:        a.ID,
		Email:     a.Email,
		Name:      a.Name,
		Role:      a.Role,
		CreatedAt: a.CreatedAt.Format(time.RFC3339),
		UpdatedAt: a.UpdatedAt.Format(time.RFC3339),
	}
}
