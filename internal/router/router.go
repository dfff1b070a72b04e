package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	ListMedia(c *ginext.Context)
	UploadMedia(c *ginext.Context)
	ListWorkshops(c *ginext.Context)
	RegisterWorkshop(c *ginext.Context)
	CreateBooking(c *ginext.Context)
	EstimateBooking(c *ginext.Context)
	ListServices(c *ginext.Context)
	SendContact(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Media catalog
		api.GET("/media", h.ListMedia)
		api.POST("/media/upload", h.UploadMedia)

		// Workshops
		api.GET("/workshops", h.ListWorkshops)
		api.POST("/workshops/:id/register", h.RegisterWorkshop)

		// Bookings
		api.POST("/bookings", h.CreateBooking)
		api.POST("/bookings/estimate", h.EstimateBooking)
		api.GET("/services", h.ListServices)

		// Contact
		api.POST("/contact", h.SendContact)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
