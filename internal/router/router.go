package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	ListWorkshops(c *ginext.Context)
	GetWorkshop(c *ginext.Context)
	CreateBooking(c *ginext.Context)
	Login(c *ginext.Context)

	ListAllWorkshops(c *ginext.Context)
	CreateWorkshop(c *ginext.Context)
	UpdateWorkshop(c *ginext.Context)
	SetWorkshopStatus(c *ginext.Context)
	UploadWorkshopImage(c *ginext.Context)
	DeleteWorkshop(c *ginext.Context)
	ListBookings(c *ginext.Context)
	GetBooking(c *ginext.Context)
	UpdateBookingStatus(c *ginext.Context)
	GetProfile(c *ginext.Context)
	UpdateProfile(c *ginext.Context)
}

func InitRouter(mode string, h Handler, adminGuard ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Public site
		api.GET("/workshops", h.ListWorkshops)
		api.GET("/workshops/:id", h.GetWorkshop)
		api.POST("/bookings", h.CreateBooking)
		api.POST("/auth/login", h.Login)

		// Admin dashboard
		admin := api.Group("/admin", adminGuard)
		{
			admin.GET("/workshops", h.ListAllWorkshops)
			admin.POST("/workshops", h.CreateWorkshop)
			admin.PATCH("/workshops/:id", h.UpdateWorkshop)
			admin.PATCH("/workshops/:id/status", h.SetWorkshopStatus)
			admin.PUT("/workshops/:id/image", h.UploadWorkshopImage)
			admin.DELETE("/workshops/:id", h.DeleteWorkshop)

			admin.GET("/bookings", h.ListBookings)
			admin.GET("/bookings/:id", h.GetBooking)
			admin.PATCH("/bookings/:id/status", h.UpdateBookingStatus)

			admin.GET("/profile", h.GetProfile)
			admin.PATCH("/profile", h.UpdateProfile)
		}
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
