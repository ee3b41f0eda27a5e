package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/ostrv1/LessonDesk/internal/domain"
	"github.com/ostrv1/LessonDesk/internal/handler/dto"
	"github.com/ostrv1/LessonDesk/internal/pricing"
	"github.com/shopspring/decimal"
	"github.com/wb-go/wbf/ginext"
)

type BookingSvc interface {
	Create(ctx context.Context, input domain.CreateBookingInput, now time.Time) (*domain.Booking, error)
	ConfirmPayment(ctx context.Context, bookingID, paymentRef string) (*domain.Booking, error)
	Reschedule(ctx context.Context, bookingID string, newStart time.Time, reason string, now time.Time) (*domain.Booking, error)
	Cancel(ctx context.Context, bookingID, reason string, now time.Time) (*domain.Booking, decimal.Decimal, error)
	CancelTeacherNoShow(ctx context.Context, bookingID string, now time.Time) (*domain.Booking, decimal.Decimal, error)
	MarkComplete(ctx context.Context, bookingID string, now time.Time) (*domain.Booking, error)
	Get(ctx context.Context, bookingID string) (*domain.Booking, error)
	ListByStudent(ctx context.Context, studentID string) ([]*domain.Booking, error)
	ListByTeacher(ctx context.Context, teacherID string) ([]*domain.Booking, error)
}

type AttendanceSvc interface {
	MarkJoin(ctx context.Context, bookingID, participantID string, now time.Time) (*domain.AttendanceRecord, error)
	MarkLeave(ctx context.Context, bookingID, participantID string, now time.Time) (*domain.AttendanceRecord, error)
	ReportAbsence(ctx context.Context, bookingID, participantID, reason string, now time.Time) (*domain.AttendanceRecord, error)
	ListByBooking(ctx context.Context, bookingID string) ([]*domain.AttendanceRecord, error)
}

type Handler struct {
	calculator        *pricing.Calculator
	bookingService    BookingSvc
	attendanceService AttendanceSvc
}

func NewHandler(calculator *pricing.Calculator, bookingService BookingSvc, attendanceService AttendanceSvc) *Handler {
	return &Handler{
		calculator:        calculator,
		bookingService:    bookingService,
		attendanceService: attendanceService,
	}
}

// Quotes

func (h *Handler) QuotePrice(c *ginext.Context) {
	var req dto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	rate, err := decimal.NewFromString(req.HourlyRate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid hourly_rate, expected a decimal string"})
		return
	}

	quantity := req.PackageQuantity
	if quantity == 0 {
		quantity = 1
	}

	quote, err := h.calculator.Quote(rate, domain.LessonType(req.LessonType), req.DurationMinutes, quantity)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToQuoteResponse(quote))
}

// Bookings

func (h *Handler) CreateBooking(c *ginext.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	rate, err := decimal.NewFromString(req.HourlyRate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid hourly_rate, expected a decimal string"})
		return
	}

	start, err := time.Parse(time.RFC3339, req.ScheduledStart)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid scheduled_start format, expected RFC3339"})
		return
	}

	quantity := req.PackageQuantity
	if quantity == 0 {
		quantity = 1
	}

	quote, err := h.calculator.Quote(rate, domain.LessonType(req.LessonType), req.DurationMinutes, quantity)
	if err != nil {
		h.handleError(c, err)
		return
	}

	input := domain.CreateBookingInput{
		StudentID:      req.StudentID,
		TeacherID:      req.TeacherID,
		Quote:          quote,
		ScheduledStart: start,
		Notes:          req.Notes,
	}

	booking, err := h.bookingService.Create(c.Request.Context(), input, time.Now().UTC())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) ConfirmPayment(c *ginext.Context) {
	id, ok := h.bookingID(c)
	if !ok {
		return
	}

	var req dto.ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, err := h.bookingService.ConfirmPayment(c.Request.Context(), id, req.PaymentRef)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) RescheduleBooking(c *ginext.Context) {
	id, ok := h.bookingID(c)
	if !ok {
		return
	}

	var req dto.RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	newStart, err := time.Parse(time.RFC3339, req.NewStart)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid new_start format, expected RFC3339"})
		return
	}

	booking, err := h.bookingService.Reschedule(c.Request.Context(), id, newStart, req.Reason, time.Now().UTC())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	id, ok := h.bookingID(c)
	if !ok {
		return
	}

	var req dto.CancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	booking, refund, err := h.bookingService.Cancel(c.Request.Context(), id, req.Reason, time.Now().UTC())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCancellationResponse(booking, refund))
}

func (h *Handler) ResolveTeacherNoShow(c *ginext.Context) {
	id, ok := h.bookingID(c)
	if !ok {
		return
	}

	booking, refund, err := h.bookingService.CancelTeacherNoShow(c.Request.Context(), id, time.Now().UTC())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCancellationResponse(booking, refund))
}

func (h *Handler) CompleteBooking(c *ginext.Context) {
	id, ok := h.bookingID(c)
	if !ok {
		return
	}

	booking, err := h.bookingService.MarkComplete(c.Request.Context(), id, time.Now().UTC())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) GetBooking(c *ginext.Context) {
	id, ok := h.bookingID(c)
	if !ok {
		return
	}

	booking, err := h.bookingService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) ListStudentBookings(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid student id"})
		return
	}

	bookings, err := h.bookingService.ListByStudent(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toBookingList(bookings))
}

func (h *Handler) ListTeacherBookings(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid teacher id"})
		return
	}

	bookings, err := h.bookingService.ListByTeacher(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toBookingList(bookings))
}

// Attendance

func (h *Handler) RecordAttendance(c *ginext.Context) {
	id, ok := h.bookingID(c)
	if !ok {
		return
	}

	var req dto.AttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	now := time.Now().UTC()
	ctx := c.Request.Context()

	var rec *domain.AttendanceRecord
	var err error
	switch domain.AttendanceEvent(req.Event) {
	case domain.AttendanceEventJoin:
		rec, err = h.attendanceService.MarkJoin(ctx, id, req.ParticipantID, now)
	case domain.AttendanceEventLeave:
		rec, err = h.attendanceService.MarkLeave(ctx, id, req.ParticipantID, now)
	case domain.AttendanceEventAbsent:
		rec, err = h.attendanceService.ReportAbsence(ctx, id, req.ParticipantID, req.Reason, now)
	default:
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "unknown attendance event"})
		return
	}
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAttendanceResponse(rec))
}

func (h *Handler) ListAttendance(c *ginext.Context) {
	id, ok := h.bookingID(c)
	if !ok {
		return
	}

	records, err := h.attendanceService.ListByBooking(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.AttendanceResponse, 0, len(records))
	for _, rec := range records {
		resp = append(resp, dto.ToAttendanceResponse(rec))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) bookingID(c *ginext.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return "", false
	}
	return id, true
}

func toBookingList(bookings []*domain.Booking) []dto.BookingResponse {
	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}
	return resp
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	var denied *domain.RescheduleDeniedError
	if errors.As(err, &denied) {
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{
			Error:  denied.Error(),
			Reason: string(denied.Reason),
		})
		return
	}

	switch {
	case errors.Is(err, domain.ErrInvalidParameter):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrBookingNotFound), errors.Is(err, domain.ErrAttendanceNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrPaymentRequired):
		c.JSON(http.StatusPaymentRequired, dto.ErrorResponse{Error: err.Error(), Reason: "payment_required"})
	case errors.Is(err, domain.ErrTooEarly):
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: err.Error(), Reason: "too_early"})
	case errors.Is(err, domain.ErrInvalidTransition):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error(), Reason: "invalid_transition"})
	case errors.Is(err, domain.ErrConflict):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error(), Reason: "conflict_retry"})
	case errors.Is(err, domain.ErrTeacherUnavailable):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error(), Reason: "teacher_unavailable"})
	case errors.Is(err, domain.ErrStorageUnavailable):
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
