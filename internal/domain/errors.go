package domain

import "errors"

var (
	ErrWorkshopNotFound = errors.New("workshop not found")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrAdminNotFound    = errors.New("admin not found")
)

var (
	ErrWorkshopNotAvailable = errors.New("workshop is not available for booking")
	ErrWorkshopFull         = errors.New("workshop is fully booked")
	ErrCapacityBelowBooked  = errors.New("capacity cannot be lowered below booked seats")
	ErrWorkshopHasBookings  = errors.New("workshop has active bookings")
)

var (
	ErrUnauthorized       = errors.New("admin role required")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email is already registered")
)

var (
	ErrValidation = errors.New("validation error")
	ErrUpload     = errors.New("image upload failed")
)
