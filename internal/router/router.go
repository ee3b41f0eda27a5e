package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	QuotePrice(c *ginext.Context)
	CreateBooking(c *ginext.Context)
	ConfirmPayment(c *ginext.Context)
	RescheduleBooking(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	ResolveTeacherNoShow(c *ginext.Context)
	CompleteBooking(c *ginext.Context)
	GetBooking(c *ginext.Context)
	RecordAttendance(c *ginext.Context)
	ListAttendance(c *ginext.Context)
	ListStudentBookings(c *ginext.Context)
	ListTeacherBookings(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Quotes
		api.POST("/quotes", h.QuotePrice)

		// Bookings
		api.POST("/bookings", h.CreateBooking)
		api.GET("/bookings/:id", h.GetBooking)
		api.POST("/bookings/:id/payment", h.ConfirmPayment)
		api.POST("/bookings/:id/reschedule", h.RescheduleBooking)
		api.POST("/bookings/:id/cancel", h.CancelBooking)
		api.POST("/bookings/:id/no-show", h.ResolveTeacherNoShow)
		api.POST("/bookings/:id/complete", h.CompleteBooking)

		// Attendance
		api.POST("/bookings/:id/attendance", h.RecordAttendance)
		api.GET("/bookings/:id/attendance", h.ListAttendance)

		// Participants
		api.GET("/students/:id/bookings", h.ListStudentBookings)
		api.GET("/teachers/:id/bookings", h.ListTeacherBookings)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
