package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/FatimaEzzahraLegchayri/workshop/internal/domain"
	"github.com/FatimaEzzahraLegchayri/workshop/internal/service/ports"
	"github.com/google/uuid"
)

const imageFolder = "workshops"

type WorkshopService struct {
	repo   ports.WorkshopRepo
	images ports.ImageStore
}

func NewWorkshopService(repo ports.WorkshopRepo, images ports.ImageStore) *WorkshopService {
	return &WorkshopService{repo: repo, images: images}
}

func (s *WorkshopService) Create(ctx context.Context, input domain.CreateWorkshopInput, img *ports.ImageUpload) (*domain.Workshop, error) {
	var missing []string
	if strings.TrimSpace(input.Title) == "" {
		missing = append(missing, "title")
	}
	if strings.TrimSpace(input.Description) == "" {
		missing = append(missing, "description")
	}
	if strings.TrimSpace(input.Category) == "" {
		missing = append(missing, "category")
	}
	if input.Date.IsZero() {
		missing = append(missing, "date")
	}
	if strings.TrimSpace(input.StartTime) == "" {
		missing = append(missing, "startTime")
	}
	if strings.TrimSpace(input.EndTime) == "" {
		missing = append(missing, "endTime")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing required fields: %s", domain.ErrValidation, strings.Join(missing, ", "))
	}
	if input.Capacity < 1 {
		return nil, fmt.Errorf("%w: capacity must be at least 1", domain.ErrValidation)
	}
	if input.Price < 0 {
		return nil, fmt.Errorf("%w: price cannot be negative", domain.ErrValidation)
	}

	status := domain.WorkshopStatusDraft
	if input.Status != nil {
		if !input.Status.Valid() {
			return nil, fmt.Errorf("%w: invalid status %q", domain.ErrValidation, *input.Status)
		}
		status = *input.Status
	}

	now := time.Now().UTC()
	workshop := &domain.Workshop{
		ID:          uuid.New().String(),
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		Category:    input.Category,
		Date:        input.Date,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		Price:       input.Price,
		Capacity:    input.Capacity,
		BookedSeats: 0,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if img != nil {
		url, err := s.images.Upload(ctx, imageFolder, *img)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrUpload, err)
		}
		workshop.ImageURL = &url
	}

	if err := s.repo.Create(ctx, workshop); err != nil {
		return nil, fmt.Errorf("create workshop: %w", err)
	}

	return workshop, nil
}

func (s *WorkshopService) Update(ctx context.Context, id string, input domain.UpdateWorkshopInput, img *ports.ImageUpload) (*domain.Workshop, error) {
	if input.Empty() && img == nil {
		return nil, fmt.Errorf("%w: no fields to update", domain.ErrValidation)
	}
	if input.Capacity != nil && *input.Capacity < 1 {
		return nil, fmt.Errorf("%w: capacity must be at least 1", domain.ErrValidation)
	}
	if input.Status != nil && !input.Status.Valid() {
		return nil, fmt.Errorf("%w: invalid status %q", domain.ErrValidation, *input.Status)
	}
	if input.Price != nil && *input.Price < 0 {
		return nil, fmt.Errorf("%w: price cannot be negative", domain.ErrValidation)
	}

	if img != nil {
		url, err := s.images.Upload(ctx, imageFolder, *img)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrUpload, err)
		}
		input.ImageURL = &url
	}

	workshop, err := s.repo.Update(ctx, id, input)
	if err != nil {
		return nil, fmt.Errorf("update workshop: %w", err)
	}

	return workshop, nil
}

func (s *WorkshopService) SetStatus(ctx context.Context, id string, status domain.WorkshopStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: invalid status %q", domain.ErrValidation, status)
	}

	if err := s.repo.SetStatus(ctx, id, status); err != nil {
		return fmt.Errorf("set workshop status: %w", err)
	}

	return nil
}

func (s *WorkshopService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete workshop: %w", err)
	}

	return nil
}

func (s *WorkshopService) Get(ctx context.Context, id string) (*domain.Workshop, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *WorkshopService) List(ctx context.Context) ([]*domain.Workshop, error) {
	return s.repo.List(ctx)
}

func (s *WorkshopService) ListPublished(ctx context.Context) ([]*domain.Workshop, error) {
	return s.repo.ListPublished(ctx)
}

// ReconcileStatuses keeps the derived fully_booked status in line with the
// seat counters. It never touches draft or cancelled workshops and never
// changes counters.
func (s *WorkshopService) ReconcileStatuses(ctx context.Context) (marked, reopened []string, err error) {
	marked, err = s.repo.MarkFullyBooked(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("mark fully booked: %w", err)
	}

	reopened, err = s.repo.ReopenAvailable(ctx)
	if err != nil {
		return marked, nil, fmt.Errorf("reopen available: %w", err)
	}

	return marked, reopened, nil
}
