package dto

// CreateBookingRequest intentionally carries no binding tags: missing
// required fields are collected by the service into a single validation
// message instead of failing one at a time at bind.
type CreateBookingRequest struct {
	WorkshopID string `json:"workshopId"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type CreateWorkshopRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Date        string  `json:"date"`
	StartTime   string  `json:"startTime"`
	EndTime     string  `json:"endTime"`
	Price       float64 `json:"price"`
	Capacity    int     `json:"capacity"`
	Status      *string `json:"status"`
}

type UpdateWorkshopRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	Date        *string  `json:"date"`
	StartTime   *string  `json:"startTime"`
	EndTime     *string  `json:"endTime"`
	Price       *float64 `json:"price"`
	Capacity    *int     `json:"capacity"`
	Status      *string  `json:"status"`
}

type SetWorkshopStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	Name            *string `json:"name"`
	Password        *string `json:"password"`
	CurrentPassword string  `json:"currentPassword"`
}
