package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/FatimaEzzahraLegchayri/workshop/internal/domain"
	"github.com/FatimaEzzahraLegchayri/workshop/internal/handler/dto"
	"github.com/FatimaEzzahraLegchayri/workshop/internal/middleware"
	"github.com/FatimaEzzahraLegchayri/workshop/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

const dateLayout = "2006-01-02"

type WorkshopSvc interface {
	Create(ctx context.Context, input domain.CreateWorkshopInput, img *ports.ImageUpload) (*domain.Workshop, error)
	Update(ctx context.Context, id string, input domain.UpdateWorkshopInput, img *ports.ImageUpload) (*domain.Workshop, error)
	SetStatus(ctx context.Context, id string, status domain.WorkshopStatus) error
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (*domain.Workshop, error)
	List(ctx context.Context) ([]*domain.Workshop, error)
	ListPublished(ctx context.Context) ([]*domain.Workshop, error)
}

type BookingSvc interface {
	Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, bookingID string, newStatus domain.BookingStatus) error
	Get(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context) ([]*domain.Booking, error)
	ListByWorkshop(ctx context.Context, workshopID string) ([]*domain.Booking, error)
}

type AdminSvc interface {
	Login(ctx context.Context, email, password string) (string, *domain.Admin, error)
	Profile(ctx context.Context, adminID string) (*domain.Admin, error)
	UpdateProfile(ctx context.Context, adminID string, input domain.UpdateProfileInput) (*domain.Admin, error)
}

type Handler struct {
	workshopService WorkshopSvc
	bookingService  BookingSvc
	adminService    AdminSvc
}

func NewHandler(workshopService WorkshopSvc, bookingService BookingSvc, adminService AdminSvc) *Handler {
	return &Handler{
		workshopService: workshopService,
		bookingService:  bookingService,
		adminService:    adminService,
	}
}

// Public: workshops

func (h *Handler) ListWorkshops(c *ginext.Context) {
	workshops, err := h.workshopService.ListPublished(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.WorkshopResponse, 0, len(workshops))
	for _, w := range workshops {
		resp = append(resp, dto.ToWorkshopResponse(w))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetWorkshop(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid workshop id"})
		return
	}

	workshop, err := h.workshopService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToWorkshopResponse(workshop))
}

// Public: bookings

func (h *Handler) CreateBooking(c *ginext.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.bookingService.Create(c.Request.Context(), domain.CreateBookingInput{
		WorkshopID: req.WorkshopID,
		Name:       req.Name,
		Phone:      req.Phone,
		Email:      req.Email,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

// Admin: bookings

func (h *Handler) ListBookings(c *ginext.Context) {
	var (
		bookings []*domain.Booking
		err      error
	)
	if workshopID := c.Query("workshop_id"); workshopID != "" {
		if _, parseErr := uuid.Parse(workshopID); parseErr != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid workshop id"})
			return
		}
		bookings, err = h.bookingService.ListByWorkshop(c.Request.Context(), workshopID)
	} else {
		bookings, err = h.bookingService.List(c.Request.Context())
	}
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	booking, err := h.bookingService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) UpdateBookingStatus(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	var req dto.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.bookingService.UpdateStatus(c.Request.Context(), id, domain.BookingStatus(req.Status)); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"success": true})
}

// Admin: workshops

func (h *Handler) ListAllWorkshops(c *ginext.Context) {
	workshops, err := h.workshopService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.WorkshopResponse, 0, len(workshops))
	for _, w := range workshops {
		resp = append(resp, dto.ToWorkshopResponse(w))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) CreateWorkshop(c *ginext.Context) {
	var req dto.CreateWorkshopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateWorkshopInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Price:       req.Price,
		Capacity:    req.Capacity,
	}
	if req.Date != "" {
		date, err := time.Parse(dateLayout, req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid date format, expected YYYY-MM-DD"})
			return
		}
		input.Date = date
	}
	if req.Status != nil {
		status := domain.WorkshopStatus(*req.Status)
		input.Status = &status
	}

	workshop, err := h.workshopService.Create(c.Request.Context(), input, nil)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToWorkshopResponse(workshop))
}

func (h *Handler) UpdateWorkshop(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid workshop id"})
		return
	}

	var req dto.UpdateWorkshopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.UpdateWorkshopInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Price:       req.Price,
		Capacity:    req.Capacity,
	}
	if req.Date != nil {
		date, err := time.Parse(dateLayout, *req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid date format, expected YYYY-MM-DD"})
			return
		}
		input.Date = &date
	}
	if req.Status != nil {
		status := domain.WorkshopStatus(*req.Status)
		input.Status = &status
	}

	workshop, err := h.workshopService.Update(c.Request.Context(), id, input, nil)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToWorkshopResponse(workshop))
}

func (h *Handler) SetWorkshopStatus(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid workshop id"})
		return
	}

	var req dto.SetWorkshopStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.workshopService.SetStatus(c.Request.Context(), id, domain.WorkshopStatus(req.Status)); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"success": true})
}

func (h *Handler) UploadWorkshopImage(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid workshop id"})
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "image file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "cannot read image file"})
		return
	}
	defer file.Close()

	img := &ports.ImageUpload{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Body:        file,
	}

	workshop, err := h.workshopService.Update(c.Request.Context(), id, domain.UpdateWorkshopInput{}, img)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToWorkshopResponse(workshop))
}

func (h *Handler) DeleteWorkshop(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid workshop id"})
		return
	}

	if err := h.workshopService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"success": true, "id": id})
}

// Auth / profile

func (h *Handler) Login(c *ginext.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	token, admin, err := h.adminService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Token: token,
		Admin: dto.ToAdminResponse(admin),
	})
}

func (h *Handler) GetProfile(c *ginext.Context) {
	adminID := c.GetString(middleware.ContextAdminID)

	admin, err := h.adminService.Profile(c.Request.Context(), adminID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAdminResponse(admin))
}

func (h *Handler) UpdateProfile(c *ginext.Context) {
	adminID := c.GetString(middleware.ContextAdminID)

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	admin, err := h.adminService.UpdateProfile(c.Request.Context(), adminID, domain.UpdateProfileInput{
		Name:            req.Name,
		Password:        req.Password,
		CurrentPassword: req.CurrentPassword,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAdminResponse(admin))
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrWorkshopNotFound),
		errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrAdminNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrWorkshopNotAvailable),
		errors.Is(err, domain.ErrWorkshopFull),
		errors.Is(err, domain.ErrCapacityBelowBooked),
		errors.Is(err, domain.ErrWorkshopHasBookings),
		errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrUpload):
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
