package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/FatimaEzzahraLegchayri/workshop/internal/domain"
	"github.com/FatimaEzzahraLegchayri/workshop/internal/service/ports"
	"github.com/FatimaEzzahraLegchayri/workshop/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validCreateInput() domain.CreateWorkshopInput {
	return domain.CreateWorkshopInput{
		Title:       "Pottery Basics",
		Description: "Hands-on introduction to the wheel",
		Category:    "crafts",
		Date:        time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC),
		StartTime:   "10:00",
		EndTime:     "12:00",
		Price:       250,
		Capacity:    8,
	}
}

func TestWorkshopService_Create_Success(t *testing.T) {
	repo := mocks.NewMockWorkshopRepo(t)
	images := mocks.NewMockImageStore(t)
	svc := NewWorkshopService(repo, images)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	workshop, err := svc.Create(context.Background(), validCreateInput(), nil)

	require.NoError(t, err)
	assert.NotEmpty(t, workshop.ID)
	assert.Equal(t, domain.WorkshopStatusDraft, workshop.Status)
	assert.Equal(t, 0, workshop.BookedSeats)
	assert.Equal(t, 8, workshop.Capacity)
	assert.Nil(t, workshop.ImageURL)
}

func TestWorkshopService_Create_ExplicitStatus(t *testing.T) {
	repo := mocks.NewMockWorkshopRepo(t)
	images := mocks.NewMockImageStore(t)
	svc := NewWorkshopService(repo, images)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	input := validCreateInput()
	published := domain.WorkshopStatusPublished
	input.Status = &published

	workshop, err := svc.Create(context.Background(), input, nil)

	require.NoError(t, err)
	assert.Equal(t, domain.WorkshopStatusPublished, workshop.Status)
}

func TestWorkshopService_Create_MissingFields(t *testing.T) {
	repo := mocks.NewMockWorkshopRepo(t)
	images := mocks.NewMockImageStore(t)
	svc := NewWorkshopService(repo, images)

	_, err := svc.Create(context.Background(), domain.CreateWorkshopInput{Capacity: 5}, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
	for _, field := range []string{"title", "description", "category", "date", "startTime", "endTime"} {
		assert.Contains(t, err.Error(), field)
	}
}

func TestWorkshopService_Create_InvalidCapacity(t *testing.T) {
	repo := mocks.NewMockWorkshopRepo(t)
	images := mocks.NewMockImageStore(t)
	svc := NewWorkshopService(repo, images)

	input := validCreateInput()
	input.Capacity = 0

	_, err := svc.Create(context.Background(), input, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestWorkshopService_Create_NegativePrice(t *testing.T) {
	repo := mocks.NewMockWorkshopRepo(t)
	images := mocks.NewMockImageStore(t)
	svc := NewWorkshopService(repo, images)

	input := validCreateInput()
	input.Price = -1

	_, err := svc.Create(context.Background(), input, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestWorkshopService_Create_InvalidStatus(t *testing.T) {
	repo := mocks.NewMockWorkshopRepo(t)
	images := mocks.NewMockImageStore(t)
	svc := NewWorkshopService(repo, images)

	input := validCreateInput()
	bogus := domain.WorkshopStatus("archived")
	input.Status = &bogus

	_, err := svc.Create(context.Background(), input, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestWorkshopService_Create_WithImage(t *testing.T) {
	repo := mocks.NewMockWorkshopRepo(t)
	images := mocks.NewMockImageStore(t)
	svc := NewWorkshopService(repo, images)

	img := &ports.ImageUpload{
		Filename:    "cover.png",
		ContentType: "image/png",
		Body:        strings.NewReader("png bytes"),
	}

	images.EXPECT().Upload(mock.Anything, "workshops", *img).Return("https://bucket.s3.amazonaws.com/workshops/cover.png", nil)
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	workshop, err := svc.Create(context.Background(), validCreateInput(), img)

	require.NoError(t, err)
	require.NotNil(t, workshop.ImageURL)
	assert.Equal(t, "https://bucket.s3.amazonaws.com/workshops/cover.png", *workshop.ImageURL)
}

func TestWorkshopService_Create_UploadError(t *testing.T) {
	repo := mocks.NewMockWorkshopRepo(t)
	images := mocks.NewMockImageStore(t)
	svc := NewWorkshopService(repo, images)

	img := &ports.ImageUpload{Filename: "cover.png", ContentType: "image/png", Body: strings.NewReader("x")}

	images.EXPECT().Upload(mock.Anything, "workshops", *img).Return("", errors.New("s3 unreachable"))

	_, err := svc.Create(context.Background(), validCreateInput(), img)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUpload)
}

func TestWorkshopService_Update_Success(t *testing.T) {
	repo := mocks.NewMockWorkshopRepo(t)
	images := mocks.NewMockImageStore(t)
	svc := NewWorkshopService(repo, images)

	title := "New Title"
	input := domain.UpdateWorkshopInput{Title: &title}
	updated := &domain.Workshop{ID: "w1", Title: title}

	repo.EXPECT().Update(mock.Anything, "w1", input).Return(updated, nil)

	workshop, err := svc.Update(context.Background(), "w1", input, nil)

	require.NoError(t, err)
	assert.Equal(t, title, workshop.Title)
}

func TestWorkshopService_Update_NoFields(t *testing.T) {
	repo := mocks.NewMockWorkshopRepo(t)
	images := mocks.NewMockImageStore(t)
	svc := NewWorkshopService(repo, images)

	_, err := svc.Update(context.Background(), "w1", domain.UpdateWorkshopInput{}, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestWorkshopService_Update_CapacityBelowBooked(t *testing.T) {
	repo := mocks.NewMockWorkshopRepo(t)
	images := mocks.NewMockImageStore(t)
	svc := NewWorkshopService(repo, images)

	capacity := 2
	input := domain.UpdateWorkshopInput{Capacity: &capacity}

	repo.EXPECT().Update(mock.Anything, "w1", input).Return(nil, domain.ErrCapacityBelowBooked)

	_, err := svc.Update(context.Background(), "w1", input, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCapacityBelowBooked)
}

func TestWorkshopService_Update_ImageOnly(t *testing.T) {
	repo := mocks.NewMockWorkshopRepo(t)
	images := mocks.NewMockImageStore(t)
	svc := NewWorkshopService(repo, images)

	img := &ports.ImageUpload{Filename: "new.jpg", ContentType: "image/jpeg", Body: strings.NewReader("jpg")}
	url := "https://bucket.s3.amazonaws.com/workshops/new.jpg"

	images.EXPECT().Upload(mock.Anything, "workshops", *img).Return(url, nil)
	repo.EXPECT().Update(mock.Anything, "w1", domain.UpdateWorkshopInput{ImageURL: &url}).Return(&domain.Workshop{ID: "w1", ImageURL: &url}, nil)

	workshop, err := svc.Update(context.Background(), "w1", domain.UpdateWorkshopInput{}, img)

	require.NoError(t, err)
	require.NotNil(t, workshop.ImageURL)
	assert.Equal(t, url, *workshop.ImageURL)
}

func TestWorkshopService_SetStatus_Success(t *testing.T) {
	repo := mocks.NewMockWorkshopRepo(t)
	images := mocks.NewMockImageStore(t)
	svc := NewWorkshopService(repo, images)

	repo.EXPECT().SetStatus(mock.Anything, "w1", domain.WorkshopStatusPublished).Return(nil)

	err := svc.SetStatus(context.Background(), "w1", domain.WorkshopStatusPublished)

	require.NoError(t, err)
}

func TestWorkshopService_SetStatus_Invalid(t *testing.T) {
	repo := mocks.NewMockWorkshopRepo(t)
	images := mocks.NewMockImageStore(t)
	svc := NewWorkshopService(repo, images)

	err := svc.SetStatus(context.Background(), "w1", domain.WorkshopStatus("open"))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestWorkshopService_Delete_WithActiveBookings(t *testing.T) {
	repo := mocks.NewMockWorkshopRepo(t)
	images := mocks.NewMockImageStore(t)
	svc := NewWorkshopService(repo, images)

	repo.EXPECT().Delete(mock.Anything, "w1").Return(domain.ErrWorkshopHasBookings)

	err := svc.Delete(context.Background(), "w1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrWorkshopHasBookings)
}

func TestWorkshopService_ReconcileStatuses(t *testing.T) {
	repo := mocks.NewMockWorkshopRepo(t)
	images := mocks.NewMockImageStore(t)
	svc := NewWorkshopService(repo, images)

	repo.EXPECT().MarkFullyBooked(mock.Anything).Return([]string{"w1"}, nil)
	repo.EXPECT().ReopenAvailable(mock.Anything).Return([]string{"w2", "w3"}, nil)

	marked, reopened, err := svc.ReconcileStatuses(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"w1"}, marked)
	assert.Equal(t, []string{"w2", "w3"}, reopened)
}

func TestWorkshopService_ReconcileStatuses_MarkError(t *testing.T) {
	repo := mocks.NewMockWorkshopRepo(t)
	images := mocks.NewMockImageStore(t)
	svc := NewWorkshopService(repo, images)

	repo.EXPECT().MarkFullyBooked(mock.Anything).Return(nil, errors.New("db error"))

	_, _, err := svc.ReconcileStatuses(context.Background())

	require.Error(t, err)
}

func TestWorkshopService_AvailableSeatsClamped(t *testing.T) {
	w := &domain.Workshop{Capacity: 5, BookedSeats: 7}
	assert.Equal(t, 0, w.AvailableSeats())

	w = &domain.Workshop{Capacity: 5, BookedSeats: 2}
	assert.Equal(t, 3, w.AvailableSeats())
}
