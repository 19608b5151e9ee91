package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/FatimaEzzahraLegchayri/workshop/internal/domain"
	"github.com/FatimaEzzahraLegchayri/workshop/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

type BookingService struct {
	bookingRepo  ports.BookingRepo
	workshopRepo ports.WorkshopRepo
	notifier     ports.BookingNotifier
	logger       logger.Logger
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	workshopRepo ports.WorkshopRepo,
	notifier ports.BookingNotifier,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo:  bookingRepo,
		workshopRepo: workshopRepo,
		notifier:     notifier,
		logger:       logger,
	}
}

// Create validates and normalizes the booking request, then reserves a seat
// and persists the booking atomically through the repository. Repository
// failures (workshop missing, not published, full) pass through to the
// caller unchanged.
func (s *BookingService) Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error) {
	var missing []string
	if strings.TrimSpace(input.WorkshopID) == "" {
		missing = append(missing, "workshopId")
	}
	if strings.TrimSpace(input.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(input.Phone) == "" {
		missing = append(missing, "phone")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing required fields: %s", domain.ErrValidation, strings.Join(missing, ", "))
	}

	var email *string
	if trimmed := strings.TrimSpace(input.Email); trimmed != "" {
		if !validEmail(trimmed) {
			return nil, fmt.Errorf("%w: invalid email format", domain.ErrValidation)
		}
		normalized := strings.ToLower(trimmed)
		email = &normalized
	}

	now := time.Now().UTC()
	booking := &domain.Booking{
		ID:         uuid.New().String(),
		WorkshopID: strings.TrimSpace(input.WorkshopID),
		Name:       strings.TrimSpace(input.Name),
		Phone:      strings.TrimSpace(input.Phone),
		Email:      email,
		Status:     domain.BookingStatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("workshop_id", booking.WorkshopID),
	)

	// Notification is best-effort and must never fail the committed booking.
	workshop, err := s.workshopRepo.GetByID(ctx, booking.WorkshopID)
	if err != nil {
		s.logger.Error("failed to get workshop for notification",
			logger.String("workshop_id", booking.WorkshopID),
			logger.String("error", err.Error()),
		)
		return booking, nil
	}
	go s.notifier.NotifyBookingCreated(context.WithoutCancel(ctx), booking, workshop)

	return booking, nil
}

// UpdateStatus changes a booking's status; the repository adjusts the
// workshop seat counter in the same transaction. Authorization is enforced
// at the route boundary, not here.
func (s *BookingService) UpdateStatus(ctx context.Context, bookingID string, newStatus domain.BookingStatus) error {
	if !newStatus.Valid() {
		return fmt.Errorf("%w: invalid status %q, use 'pending', 'confirmed' or 'canceled'", domain.ErrValidation, newStatus)
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, newStatus); err != nil {
		return fmt.Errorf("update booking status: %w", err)
	}

	s.logger.Info("booking status updated",
		logger.String("booking_id", bookingID),
		logger.String("status", string(newStatus)),
	)

	return nil
}

func (s *BookingService) Get(ctx context.Context, id string) (*domain.Booking, error) {
	return s.bookingRepo.GetByID(ctx, id)
}

func (s *BookingService) List(ctx context.Context) ([]*domain.Booking, error) {
	return s.bookingRepo.List(ctx)
}

func (s *BookingService) ListByWorkshop(ctx context.Context, workshopID string) ([]*domain.Booking, error) {
	return s.bookingRepo.ListByWorkshop(ctx, workshopID)
}

// validEmail accepts local@domain.tld: a single @, a dot inside the domain,
// no whitespace anywhere.
func validEmail(s string) bool {
	if strings.ContainsAny(s, " \t\r\n") {
		return false
	}
	at := strings.Index(s, "@")
	if at <= 0 || at != strings.LastIndex(s, "@") || at == len(s)-1 {
		return false
	}
	dom := s[at+1:]
	dot := strings.LastIndex(dom, ".")
	return dot > 0 && dot < len(dom)-1
}
